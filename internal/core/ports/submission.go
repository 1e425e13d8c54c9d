package ports

import (
	"context"

	"github.com/englishlessons/classroom-api/internal/core/domain"
)

// SubmitInput carries everything needed to record a new submission.
// Answers may be bare values or pre-labelled {question, answer} objects;
// the service normalizes bare values to positional labels (Q1, Q2, …).
type SubmitInput struct {
	StudentName string
	ClassID     string
	LessonID    string
	Answers     []any
}

// SubmissionRepository defines persistence operations for submissions.
type SubmissionRepository interface {
	Insert(ctx context.Context, s *domain.Submission) (string, error)
	FindAll(ctx context.Context) ([]domain.Submission, error)
	FindByStudent(ctx context.Context, studentName string) ([]domain.Submission, error)
	// SetGrade unconditionally overwrites the grade of the submission with
	// the given id, returning domain.ErrSubmissionNotFound when absent.
	SetGrade(ctx context.Context, id string, grade any) error
}

// SubmissionService defines the submission lifecycle use cases. The service
// performs no authorization; gating submissions to roles is the caller's job.
type SubmissionService interface {
	Submit(ctx context.Context, input SubmitInput) (string, error)
	ListAll(ctx context.Context) ([]domain.Submission, error)
	ListByStudent(ctx context.Context, studentName string) ([]domain.Submission, error)
	Grade(ctx context.Context, submissionID string, grade any) error
}
