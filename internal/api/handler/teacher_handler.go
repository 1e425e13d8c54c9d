package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/englishlessons/classroom-api/internal/api/metrics"
	"github.com/englishlessons/classroom-api/internal/core/ports"
)

// TeacherHandler covers the elevated teacher routes. Authorization (teacher
// role plus shared secret) happens in the TeacherGate middleware; the
// handlers themselves only orchestrate the ledger.
type TeacherHandler struct {
	submissions ports.SubmissionService
}

func NewTeacherHandler(submissions ports.SubmissionService) *TeacherHandler {
	return &TeacherHandler{submissions: submissions}
}

// ListSubmissions returns every submission, ungated and unfiltered.
//
// @Summary      Export all submissions
// @Tags         teacher
// @Produce      json
// @Security     BearerAuth
// @Param        password  query     string  true  "Shared teacher secret"
// @Success      200       {array}   domain.Submission
// @Failure      401       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Failure      500       {object}  errorResponse
// @Router       /teacher [get]
func (h *TeacherHandler) ListSubmissions(c echo.Context) error {
	subs, err := h.submissions.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, subs)
}

// Mark sets the grade of a submission, overwriting any previous value.
//
// @Summary      Grade a submission
// @Tags         teacher
// @Accept       json
// @Produce      plain
// @Security     BearerAuth
// @Param        password  query     string       true  "Shared teacher secret"
// @Param        body      body      markRequest  true  "Submission id and grade"
// @Success      200       {string}  string  "Grade saved!"
// @Failure      400       {object}  errorResponse
// @Failure      401       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /teacher/mark [post]
func (h *TeacherHandler) Mark(c echo.Context) error {
	var req markRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.submissions.Grade(c.Request().Context(), req.SubmissionID, req.Grade); err != nil {
		return err
	}

	metrics.GradesRecordedTotal.Inc()
	return c.String(http.StatusOK, "Grade saved!")
}
