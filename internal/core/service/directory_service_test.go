package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/englishlessons/classroom-api/internal/core/domain"
)

type stubDirectoryRepo struct {
	classes map[string][]domain.Class  // keyed by user id
	lessons map[string][]domain.Lesson // keyed by class id
	calls   int
}

func (r *stubDirectoryRepo) ClassesForStudent(_ context.Context, userID string) ([]domain.Class, error) {
	r.calls++
	return r.classes[userID], nil
}

func (r *stubDirectoryRepo) LessonsForClass(_ context.Context, classID string) ([]domain.Lesson, error) {
	r.calls++
	return r.lessons[classID], nil
}

type stubDirectoryCache struct {
	classes map[string][]domain.Class
	lessons map[string][]domain.Lesson
	err     error
}

func newStubDirectoryCache() *stubDirectoryCache {
	return &stubDirectoryCache{
		classes: make(map[string][]domain.Class),
		lessons: make(map[string][]domain.Lesson),
	}
}

func (c *stubDirectoryCache) GetClasses(_ context.Context, userID string) ([]domain.Class, error) {
	return c.classes[userID], c.err
}

func (c *stubDirectoryCache) SetClasses(_ context.Context, userID string, classes []domain.Class) error {
	if c.err != nil {
		return c.err
	}
	c.classes[userID] = classes
	return nil
}

func (c *stubDirectoryCache) GetLessons(_ context.Context, classID string) ([]domain.Lesson, error) {
	return c.lessons[classID], c.err
}

func (c *stubDirectoryCache) SetLessons(_ context.Context, classID string, lessons []domain.Lesson) error {
	if c.err != nil {
		return c.err
	}
	c.lessons[classID] = lessons
	return nil
}

func TestDirectoryService_ListClassesForStudent_EmptyEnrollment(t *testing.T) {
	repo := &stubDirectoryRepo{classes: map[string][]domain.Class{}}
	svc := NewDirectoryService(repo, nil, zerolog.Nop())

	classes, err := svc.ListClassesForStudent(context.Background(), "u1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if classes == nil || len(classes) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", classes)
	}
}

func TestDirectoryService_ListClassesForStudent_PopulatesCache(t *testing.T) {
	repo := &stubDirectoryRepo{classes: map[string][]domain.Class{
		"u1": {{ID: "c1", Name: "English A1", Students: []string{"u1"}}},
	}}
	cache := newStubDirectoryCache()
	svc := NewDirectoryService(repo, cache, zerolog.Nop())

	classes, err := svc.ListClassesForStudent(context.Background(), "u1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(classes) != 1 || classes[0].ID != "c1" {
		t.Fatalf("unexpected classes: %#v", classes)
	}
	if repo.calls != 1 {
		t.Fatalf("expected one repo call, got %d", repo.calls)
	}

	// Second lookup is served from cache.
	if _, err := svc.ListClassesForStudent(context.Background(), "u1"); err != nil {
		t.Fatalf("cached list failed: %v", err)
	}
	if repo.calls != 1 {
		t.Fatalf("expected cache hit, repo called %d times", repo.calls)
	}
}

func TestDirectoryService_CacheFailureFallsBackToStore(t *testing.T) {
	repo := &stubDirectoryRepo{lessons: map[string][]domain.Lesson{
		"c1": {{ID: "l1", ClassID: "c1", Title: "Greetings"}},
	}}
	cache := newStubDirectoryCache()
	cache.err = errors.New("redis down")
	svc := NewDirectoryService(repo, cache, zerolog.Nop())

	lessons, err := svc.ListLessonsForClass(context.Background(), "c1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(lessons) != 1 || lessons[0].ID != "l1" {
		t.Fatalf("unexpected lessons: %#v", lessons)
	}
}

func TestDirectoryService_ListLessonsForClass_UnknownClass(t *testing.T) {
	repo := &stubDirectoryRepo{lessons: map[string][]domain.Lesson{}}
	svc := NewDirectoryService(repo, nil, zerolog.Nop())

	lessons, err := svc.ListLessonsForClass(context.Background(), "no-such-class")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if lessons == nil || len(lessons) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", lessons)
	}
}
