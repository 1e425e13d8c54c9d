package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/englishlessons/classroom-api/internal/core/domain"
	"github.com/englishlessons/classroom-api/internal/core/ports"
)

// SubmissionService implements the submission lifecycle: append on submit,
// targeted grade overwrite, and the two list views. It performs no
// authorization — gating is the API layer's job.
type SubmissionService struct {
	repo ports.SubmissionRepository
	log  zerolog.Logger
}

func NewSubmissionService(repo ports.SubmissionRepository, log zerolog.Logger) *SubmissionService {
	return &SubmissionService{repo: repo, log: log}
}

// Submit records a new submission with grade unset.
func (s *SubmissionService) Submit(ctx context.Context, input ports.SubmitInput) (string, error) {
	sub := &domain.Submission{
		StudentName: input.StudentName,
		ClassID:     input.ClassID,
		LessonID:    input.LessonID,
		Answers:     normalizeAnswers(input.Answers),
		SubmittedAt: time.Now().UTC(),
		Grade:       nil,
	}

	id, err := s.repo.Insert(ctx, sub)
	if err != nil {
		s.log.Error().Err(err).Str("student", input.StudentName).Str("class_id", input.ClassID).Msg("failed to save submission")
		return "", err
	}

	s.log.Info().Str("submission_id", id).Str("student", input.StudentName).Str("class_id", input.ClassID).Msg("submission saved")
	return id, nil
}

// ListAll returns every submission, ungated and unfiltered.
func (s *SubmissionService) ListAll(ctx context.Context) ([]domain.Submission, error) {
	subs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []domain.Submission{}
	}
	return subs, nil
}

// ListByStudent filters on the stored student identity, exact and
// case-sensitive: "alice" never matches "Alice" or "alice2".
func (s *SubmissionService) ListByStudent(ctx context.Context, studentName string) ([]domain.Submission, error) {
	subs, err := s.repo.FindByStudent(ctx, studentName)
	if err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []domain.Submission{}
	}
	return subs, nil
}

// Grade overwrites the grade of submissionID regardless of any prior value
// (last writer wins). Grade semantics are not validated here; any value the
// caller supplies is stored as-is.
func (s *SubmissionService) Grade(ctx context.Context, submissionID string, grade any) error {
	if err := s.repo.SetGrade(ctx, submissionID, grade); err != nil {
		return err
	}

	s.log.Info().Str("submission_id", submissionID).Interface("grade", grade).Msg("grade recorded")
	return nil
}

// normalizeAnswers converts a raw answer list into labelled pairs. Bare
// values receive positional labels: [a, b] becomes [{Q1, a}, {Q2, b}].
// Objects that already carry a question label pass through unchanged.
func normalizeAnswers(raw []any) []domain.Answer {
	answers := make([]domain.Answer, 0, len(raw))
	for i, v := range raw {
		if m, ok := v.(map[string]any); ok {
			if q, ok := m["question"].(string); ok && q != "" {
				answers = append(answers, domain.Answer{Question: q, Answer: m["answer"]})
				continue
			}
		}
		answers = append(answers, domain.Answer{Question: fmt.Sprintf("Q%d", i+1), Answer: v})
	}
	return answers
}
