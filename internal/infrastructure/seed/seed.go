// Package seed inserts the out-of-band provisioned demo data: user accounts,
// one class with its enrollment, and its lessons. Seeding only runs against
// an empty users collection, so restarting the process never duplicates data.
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/englishlessons/classroom-api/internal/core/domain"
)

type seedUser struct {
	Username string
	Password string
	Role     string
}

var demoUsers = []seedUser{
	{Username: "alice", Password: "alice-pass", Role: domain.RoleStudent},
	{Username: "bob", Password: "bob-pass", Role: domain.RoleStudent},
	{Username: "mrs.smith", Password: "smith-pass", Role: domain.RoleTeacher},
}

// Run populates the demo accounts, class, and lessons when the users
// collection is empty. It is a no-op otherwise.
func Run(ctx context.Context, db *mongo.Database, log zerolog.Logger) error {
	users := db.Collection("users")

	n, err := users.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("seed: count users: %w", err)
	}
	if n > 0 {
		log.Debug().Int64("users", n).Msg("seed skipped, users already present")
		return nil
	}

	studentIDs := make([]string, 0, len(demoUsers))
	for _, u := range demoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed: hash password: %w", err)
		}

		res, err := users.InsertOne(ctx, bson.M{
			"username":     u.Username,
			"passwordHash": string(hash),
			"role":         u.Role,
		})
		if err != nil {
			return fmt.Errorf("seed: insert user %s: %w", u.Username, err)
		}
		if u.Role == domain.RoleStudent {
			studentIDs = append(studentIDs, res.InsertedID.(primitive.ObjectID).Hex())
		}
	}

	classRes, err := db.Collection("classes").InsertOne(ctx, bson.M{
		"name":     "English A1",
		"students": studentIDs,
	})
	if err != nil {
		return fmt.Errorf("seed: insert class: %w", err)
	}
	classID := classRes.InsertedID.(primitive.ObjectID).Hex()

	lessons := []any{
		bson.M{
			"classId": classID,
			"title":   "Greetings",
			"content": "Common greetings and introductions.",
			"questions": []bson.M{
				{"text": "How do you greet someone in the morning?"},
				{"text": "Introduce yourself in two sentences."},
			},
		},
		bson.M{
			"classId": classID,
			"title":   "Present Simple",
			"content": "Forms and everyday usage of the present simple tense.",
			"questions": []bson.M{
				{"text": "Write three sentences in present simple."},
			},
		},
	}
	if _, err := db.Collection("lessons").InsertMany(ctx, lessons); err != nil {
		return fmt.Errorf("seed: insert lessons: %w", err)
	}

	log.Info().Int("users", len(demoUsers)).Str("class_id", classID).Msg("seed data inserted")
	return nil
}
