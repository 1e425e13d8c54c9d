package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/englishlessons/classroom-api/internal/core/domain"
	"github.com/englishlessons/classroom-api/internal/core/ports"
)

// DirectoryCache abstracts the read-through cache (Redis). Get methods return
// (nil, nil) on a miss. The cache is strictly best-effort: failures are logged
// and the lookup falls back to the repository.
type DirectoryCache interface {
	GetClasses(ctx context.Context, userID string) ([]domain.Class, error)
	SetClasses(ctx context.Context, userID string, classes []domain.Class) error
	GetLessons(ctx context.Context, classID string) ([]domain.Lesson, error)
	SetLessons(ctx context.Context, classID string, lessons []domain.Lesson) error
}

// DirectoryService serves read-only class and lesson lookups.
type DirectoryService struct {
	repo  ports.DirectoryRepository
	cache DirectoryCache // may be nil when no cache is configured
	log   zerolog.Logger
}

func NewDirectoryService(repo ports.DirectoryRepository, cache DirectoryCache, log zerolog.Logger) *DirectoryService {
	return &DirectoryService{repo: repo, cache: cache, log: log}
}

// ListClassesForStudent returns every class whose student set contains userID.
// Zero enrollments yield an empty slice, not an error.
func (s *DirectoryService) ListClassesForStudent(ctx context.Context, userID string) ([]domain.Class, error) {
	if s.cache != nil {
		classes, err := s.cache.GetClasses(ctx, userID)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("class cache read failed, falling back to store")
		} else if classes != nil {
			return classes, nil
		}
	}

	classes, err := s.repo.ClassesForStudent(ctx, userID)
	if err != nil {
		return nil, err
	}
	if classes == nil {
		classes = []domain.Class{}
	}

	if s.cache != nil {
		if err := s.cache.SetClasses(ctx, userID, classes); err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("class cache write failed")
		}
	}
	return classes, nil
}

// ListLessonsForClass returns the lessons of classID. No existence check is
// made on the class; an unknown id yields an empty slice.
func (s *DirectoryService) ListLessonsForClass(ctx context.Context, classID string) ([]domain.Lesson, error) {
	if s.cache != nil {
		lessons, err := s.cache.GetLessons(ctx, classID)
		if err != nil {
			s.log.Warn().Err(err).Str("class_id", classID).Msg("lesson cache read failed, falling back to store")
		} else if lessons != nil {
			return lessons, nil
		}
	}

	lessons, err := s.repo.LessonsForClass(ctx, classID)
	if err != nil {
		return nil, err
	}
	if lessons == nil {
		lessons = []domain.Lesson{}
	}

	if s.cache != nil {
		if err := s.cache.SetLessons(ctx, classID, lessons); err != nil {
			s.log.Warn().Err(err).Str("class_id", classID).Msg("lesson cache write failed")
		}
	}
	return lessons, nil
}
