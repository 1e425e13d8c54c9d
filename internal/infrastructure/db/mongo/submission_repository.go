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

const collectionSubmissions = "submissions"

// SubmissionRepository is the mongo-backed submission ledger. Field names
// match the legacy submission documents, so an existing collection remains
// readable.
type SubmissionRepository struct {
	col *mongo.Collection
}

func NewSubmissionRepository(db *mongo.Database) *SubmissionRepository {
	return &SubmissionRepository{col: db.Collection(collectionSubmissions)}
}

type mongoSubmission struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	StudentName string             `bson:"studentName"`
	ClassID     string             `bson:"classId"`
	LessonID    string             `bson:"lessonId,omitempty"`
	Answers     []domain.Answer    `bson:"answers"`
	SubmittedAt time.Time          `bson:"date"`
	Grade       any                `bson:"grade"`
}

func (ms *mongoSubmission) toDomain() domain.Submission {
	return domain.Submission{
		ID:          ms.ID.Hex(),
		StudentName: ms.StudentName,
		ClassID:     ms.ClassID,
		LessonID:    ms.LessonID,
		Answers:     ms.Answers,
		SubmittedAt: ms.SubmittedAt,
		Grade:       ms.Grade,
	}
}

// Insert appends a new submission document and returns its hex id.
func (r *SubmissionRepository) Insert(ctx context.Context, s *domain.Submission) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoSubmission{
		StudentName: s.StudentName,
		ClassID:     s.ClassID,
		LessonID:    s.LessonID,
		Answers:     s.Answers,
		SubmittedAt: s.SubmittedAt,
		Grade:       s.Grade,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert submission: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert submission: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// FindAll returns every submission, unfiltered.
func (r *SubmissionRepository) FindAll(ctx context.Context) ([]domain.Submission, error) {
	return r.find(ctx, bson.M{})
}

// FindByStudent returns submissions whose stored student identity exactly
// equals studentName. Mongo string equality is case-sensitive, which is the
// contract here.
func (r *SubmissionRepository) FindByStudent(ctx context.Context, studentName string) ([]domain.Submission, error) {
	return r.find(ctx, bson.M{"studentName": studentName})
}

func (r *SubmissionRepository) find(ctx context.Context, filter bson.M) ([]domain.Submission, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find submissions: %w", err)
	}
	defer cur.Close(ctx)

	subs := []domain.Submission{}
	for cur.Next(ctx) {
		var ms mongoSubmission
		if err := cur.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode submission: %w", err)
		}
		subs = append(subs, ms.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate submissions: %w", err)
	}
	return subs, nil
}

// SetGrade overwrites the grade field of the submission with the given id.
// A malformed id is treated the same as an unknown one.
func (r *SubmissionRepository) SetGrade(ctx context.Context, id string, grade any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrSubmissionNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"grade": grade}})
	if err != nil {
		return fmt.Errorf("set grade: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrSubmissionNotFound
	}
	return nil
}

// EnsureIndexes creates the student lookup index.
func (r *SubmissionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "studentName", Value: 1}},
	})
	return err
}
