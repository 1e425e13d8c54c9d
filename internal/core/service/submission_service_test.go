package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/englishlessons/classroom-api/internal/core/domain"
	"github.com/englishlessons/classroom-api/internal/core/ports"
)

type stubSubmissionRepo struct {
	subs   []domain.Submission
	nextID int
}

func (r *stubSubmissionRepo) Insert(_ context.Context, s *domain.Submission) (string, error) {
	r.nextID++
	id := fmt.Sprintf("sub-%d", r.nextID)
	stored := *s
	stored.ID = id
	r.subs = append(r.subs, stored)
	return id, nil
}

func (r *stubSubmissionRepo) FindAll(_ context.Context) ([]domain.Submission, error) {
	return append([]domain.Submission{}, r.subs...), nil
}

func (r *stubSubmissionRepo) FindByStudent(_ context.Context, studentName string) ([]domain.Submission, error) {
	var out []domain.Submission
	for _, s := range r.subs {
		if s.StudentName == studentName {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubSubmissionRepo) SetGrade(_ context.Context, id string, grade any) error {
	for i := range r.subs {
		if r.subs[i].ID == id {
			r.subs[i].Grade = grade
			return nil
		}
	}
	return domain.ErrSubmissionNotFound
}

func TestSubmissionService_Submit_NormalizesBareAnswers(t *testing.T) {
	repo := &stubSubmissionRepo{}
	svc := NewSubmissionService(repo, zerolog.Nop())

	_, err := svc.Submit(context.Background(), ports.SubmitInput{
		StudentName: "alice",
		ClassID:     "c1",
		LessonID:    "l1",
		Answers:     []any{"x", "y"},
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	sub := repo.subs[0]
	if sub.Grade != nil {
		t.Fatalf("expected nil grade on creation, got %v", sub.Grade)
	}
	want := []domain.Answer{
		{Question: "Q1", Answer: "x"},
		{Question: "Q2", Answer: "y"},
	}
	if len(sub.Answers) != len(want) {
		t.Fatalf("expected %d answers, got %d", len(want), len(sub.Answers))
	}
	for i, a := range sub.Answers {
		if a != want[i] {
			t.Fatalf("answer %d: expected %+v, got %+v", i, want[i], a)
		}
	}
	if sub.SubmittedAt.IsZero() {
		t.Fatalf("expected submission timestamp to be set")
	}
}

func TestSubmissionService_Submit_LabelledAnswersPassThrough(t *testing.T) {
	repo := &stubSubmissionRepo{}
	svc := NewSubmissionService(repo, zerolog.Nop())

	_, err := svc.Submit(context.Background(), ports.SubmitInput{
		StudentName: "alice",
		ClassID:     "c1",
		Answers: []any{
			map[string]any{"question": "How do you greet someone?", "answer": "Good morning"},
			"bare value",
		},
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	answers := repo.subs[0].Answers
	if answers[0].Question != "How do you greet someone?" || answers[0].Answer != "Good morning" {
		t.Fatalf("labelled answer mangled: %+v", answers[0])
	}
	if answers[1].Question != "Q2" || answers[1].Answer != "bare value" {
		t.Fatalf("bare answer not positionally labelled: %+v", answers[1])
	}
}

func TestSubmissionService_Grade_LastWriteWins(t *testing.T) {
	repo := &stubSubmissionRepo{}
	svc := NewSubmissionService(repo, zerolog.Nop())

	id, err := svc.Submit(context.Background(), ports.SubmitInput{
		StudentName: "alice",
		ClassID:     "c1",
		Answers:     []any{"x"},
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if err := svc.Grade(context.Background(), id, 85); err != nil {
		t.Fatalf("first grade failed: %v", err)
	}
	if err := svc.Grade(context.Background(), id, 90); err != nil {
		t.Fatalf("re-grade failed: %v", err)
	}

	if got := repo.subs[0].Grade; got != 90 {
		t.Fatalf("expected last write to win with 90, got %v", got)
	}
}

func TestSubmissionService_Grade_NotFound(t *testing.T) {
	svc := NewSubmissionService(&stubSubmissionRepo{}, zerolog.Nop())

	if err := svc.Grade(context.Background(), "missing", 100); err != domain.ErrSubmissionNotFound {
		t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
	}
}

func TestSubmissionService_ListByStudent_ExactMatch(t *testing.T) {
	repo := &stubSubmissionRepo{}
	svc := NewSubmissionService(repo, zerolog.Nop())

	for _, name := range []string{"alice", "Alice", "alice2", "alice"} {
		if _, err := svc.Submit(context.Background(), ports.SubmitInput{
			StudentName: name,
			ClassID:     "c1",
			Answers:     []any{"a"},
		}); err != nil {
			t.Fatalf("submit for %s failed: %v", name, err)
		}
	}

	subs, err := svc.ListByStudent(context.Background(), "alice")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("expected 2 submissions for alice, got %d", len(subs))
	}
	for _, s := range subs {
		if s.StudentName != "alice" {
			t.Fatalf("unexpected student in result: %s", s.StudentName)
		}
	}
}

func TestSubmissionService_ListByStudent_EmptyIsNotError(t *testing.T) {
	svc := NewSubmissionService(&stubSubmissionRepo{}, zerolog.Nop())

	subs, err := svc.ListByStudent(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if subs == nil || len(subs) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", subs)
	}
}
