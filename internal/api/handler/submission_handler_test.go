package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/englishlessons/classroom-api/internal/api/middleware"
	"github.com/englishlessons/classroom-api/internal/core/domain"
	"github.com/englishlessons/classroom-api/internal/core/ports"
)

type stubSubmissionService struct {
	submitFn        func(ctx context.Context, input ports.SubmitInput) (string, error)
	listAllFn       func(ctx context.Context) ([]domain.Submission, error)
	listByStudentFn func(ctx context.Context, studentName string) ([]domain.Submission, error)
	gradeFn         func(ctx context.Context, submissionID string, grade any) error
}

func (s *stubSubmissionService) Submit(ctx context.Context, input ports.SubmitInput) (string, error) {
	return s.submitFn(ctx, input)
}

func (s *stubSubmissionService) ListAll(ctx context.Context) ([]domain.Submission, error) {
	return s.listAllFn(ctx)
}

func (s *stubSubmissionService) ListByStudent(ctx context.Context, studentName string) ([]domain.Submission, error) {
	return s.listByStudentFn(ctx, studentName)
}

func (s *stubSubmissionService) Grade(ctx context.Context, submissionID string, grade any) error {
	return s.gradeFn(ctx, submissionID, grade)
}

func TestSubmissionHandler_Submit_UsesAuthenticatedIdentity(t *testing.T) {
	e := newTestEcho()
	stub := &stubSubmissionService{
		submitFn: func(_ context.Context, input ports.SubmitInput) (string, error) {
			if input.StudentName != "alice" {
				t.Fatalf("expected identity from token, got %s", input.StudentName)
			}
			if input.ClassID != "c1" || len(input.Answers) != 2 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return "sub-1", nil
		},
	}
	handler := NewSubmissionHandler(stub)

	body := strings.NewReader(`{"classId":"c1","lessonId":"l1","answers":["x","y"]}`)
	req := httptest.NewRequest(http.MethodPost, "/submit-answers", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.UserContextKey, &domain.User{ID: "u1", Username: "alice", Role: domain.RoleStudent})

	if err := handler.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "Answers saved!" {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}

func TestSubmissionHandler_Submit_MissingClassID(t *testing.T) {
	e := newTestEcho()
	stub := &stubSubmissionService{
		submitFn: func(context.Context, ports.SubmitInput) (string, error) {
			t.Fatalf("service should not be called")
			return "", nil
		},
	}
	handler := NewSubmissionHandler(stub)

	body := strings.NewReader(`{"answers":["x"]}`)
	req := httptest.NewRequest(http.MethodPost, "/submit-answers", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.UserContextKey, &domain.User{ID: "u1", Username: "alice", Role: domain.RoleStudent})

	if err := handler.Submit(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSubmissionHandler_Grades_RequiresStudentName(t *testing.T) {
	e := newTestEcho()
	stub := &stubSubmissionService{
		listByStudentFn: func(context.Context, string) ([]domain.Submission, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewSubmissionHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/grades", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Grades(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSubmissionHandler_Grades_ReturnsStudentSubmissions(t *testing.T) {
	e := newTestEcho()
	stub := &stubSubmissionService{
		listByStudentFn: func(_ context.Context, studentName string) ([]domain.Submission, error) {
			if studentName != "alice" {
				t.Fatalf("unexpected student name: %s", studentName)
			}
			return []domain.Submission{{ID: "sub-1", StudentName: "alice"}}, nil
		},
	}
	handler := NewSubmissionHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/grades?studentName=alice", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Grades(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "sub-1") {
		t.Fatalf("expected submission in body: %s", rec.Body.String())
	}
}
