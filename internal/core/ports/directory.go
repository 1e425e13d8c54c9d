package ports

import (
	"context"

	"github.com/englishlessons/classroom-api/internal/core/domain"
)

// DirectoryRepository defines read-only persistence lookups for classes and
// lessons. Both return an empty slice, not an error, when nothing matches.
type DirectoryRepository interface {
	ClassesForStudent(ctx context.Context, userID string) ([]domain.Class, error)
	LessonsForClass(ctx context.Context, classID string) ([]domain.Lesson, error)
}

// DirectoryService exposes enrollment-scoped lookups to the API layer.
type DirectoryService interface {
	// ListClassesForStudent returns all classes whose student set contains
	// userID; an empty result is not an error.
	ListClassesForStudent(ctx context.Context, userID string) ([]domain.Class, error)

	// ListLessonsForClass returns the lessons of a class. No existence check
	// is performed on classID; an unknown class yields an empty slice.
	ListLessonsForClass(ctx context.Context, classID string) ([]domain.Lesson, error)
}
