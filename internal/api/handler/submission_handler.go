package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/englishlessons/classroom-api/internal/api/metrics"
	"github.com/englishlessons/classroom-api/internal/api/middleware"
	"github.com/englishlessons/classroom-api/internal/core/ports"
)

// SubmissionHandler covers the student-facing submission routes.
type SubmissionHandler struct {
	submissions ports.SubmissionService
}

func NewSubmissionHandler(submissions ports.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissions: submissions}
}

// Submit records the authenticated student's answers for a lesson.
//
// @Summary      Submit answers
// @Tags         submissions
// @Accept       json
// @Produce      plain
// @Security     BearerAuth
// @Param        body  body      submitAnswersRequest  true  "Answer set"
// @Success      200   {string}  string  "Answers saved!"
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /submit-answers [post]
func (h *SubmissionHandler) Submit(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req submitAnswersRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, err = h.submissions.Submit(c.Request().Context(), ports.SubmitInput{
		StudentName: user.Username,
		ClassID:     req.ClassID,
		LessonID:    req.LessonID,
		Answers:     req.Answers,
	})
	if err != nil {
		return err
	}

	metrics.SubmissionsSavedTotal.Inc()
	return c.String(http.StatusOK, "Answers saved!")
}

// Grades returns the submissions of a named student.
//
// @Summary      List a student's submissions and grades
// @Tags         submissions
// @Produce      json
// @Security     BearerAuth
// @Param        studentName  query     string  true  "Exact student name"
// @Success      200          {array}   domain.Submission
// @Failure      400          {object}  errorResponse
// @Failure      401          {object}  errorResponse
// @Router       /grades [get]
func (h *SubmissionHandler) Grades(c echo.Context) error {
	studentName := c.QueryParam("studentName")
	if studentName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "student name required")
	}

	subs, err := h.submissions.ListByStudent(c.Request().Context(), studentName)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, subs)
}
