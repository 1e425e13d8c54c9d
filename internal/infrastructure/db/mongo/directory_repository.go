package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/englishlessons/classroom-api/internal/core/domain"
)

const (
	collectionClasses = "classes"
	collectionLessons = "lessons"
)

// DirectoryRepository serves read-only class and lesson lookups from mongo.
type DirectoryRepository struct {
	classes *mongo.Collection
	lessons *mongo.Collection
}

func NewDirectoryRepository(db *mongo.Database) *DirectoryRepository {
	return &DirectoryRepository{
		classes: db.Collection(collectionClasses),
		lessons: db.Collection(collectionLessons),
	}
}

type mongoClass struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Students []string           `bson:"students"`
}

type mongoLesson struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ClassID   string             `bson:"classId"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	Questions []domain.Question  `bson:"questions"`
}

// ClassesForStudent returns all classes whose students array contains userID.
func (r *DirectoryRepository) ClassesForStudent(ctx context.Context, userID string) ([]domain.Class, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.classes.Find(ctx, bson.M{"students": userID})
	if err != nil {
		return nil, fmt.Errorf("find classes: %w", err)
	}
	defer cur.Close(ctx)

	classes := []domain.Class{}
	for cur.Next(ctx) {
		var mc mongoClass
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode class: %w", err)
		}
		classes = append(classes, domain.Class{
			ID:       mc.ID.Hex(),
			Name:     mc.Name,
			Students: mc.Students,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate classes: %w", err)
	}
	return classes, nil
}

// LessonsForClass returns all lessons scoped to classID. There is no
// existence check on the class; an unknown id yields an empty slice.
func (r *DirectoryRepository) LessonsForClass(ctx context.Context, classID string) ([]domain.Lesson, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.lessons.Find(ctx, bson.M{"classId": classID})
	if err != nil {
		return nil, fmt.Errorf("find lessons: %w", err)
	}
	defer cur.Close(ctx)

	lessons := []domain.Lesson{}
	for cur.Next(ctx) {
		var ml mongoLesson
		if err := cur.Decode(&ml); err != nil {
			return nil, fmt.Errorf("decode lesson: %w", err)
		}
		lessons = append(lessons, domain.Lesson{
			ID:        ml.ID.Hex(),
			ClassID:   ml.ClassID,
			Title:     ml.Title,
			Content:   ml.Content,
			Questions: ml.Questions,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate lessons: %w", err)
	}
	return lessons, nil
}

// EnsureIndexes creates the lookup indexes for both collections.
func (r *DirectoryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := r.classes.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "students", Value: 1}},
	}); err != nil {
		return err
	}
	_, err := r.lessons.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "classId", Value: 1}},
	})
	return err
}
