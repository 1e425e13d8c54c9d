package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/englishlessons/classroom-api/internal/api/middleware"
	"github.com/englishlessons/classroom-api/internal/core/ports"
)

// DirectoryHandler serves enrollment-scoped class and lesson lookups.
type DirectoryHandler struct {
	directory ports.DirectoryService
}

func NewDirectoryHandler(directory ports.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

// ListClasses returns the classes the authenticated student is enrolled in.
// Zero enrollments yield an empty array, not an error.
//
// @Summary      List the caller's classes
// @Tags         directory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Class
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /classes [get]
func (h *DirectoryHandler) ListClasses(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	classes, err := h.directory.ListClassesForStudent(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, classes)
}

// ListLessons returns the lessons of a class. An unknown class id yields an
// empty array.
//
// @Summary      List lessons of a class
// @Tags         directory
// @Produce      json
// @Security     BearerAuth
// @Param        classId  path      string  true  "Class id"
// @Success      200      {array}   domain.Lesson
// @Failure      401      {object}  errorResponse
// @Router       /classes/{classId}/lessons [get]
func (h *DirectoryHandler) ListLessons(c echo.Context) error {
	lessons, err := h.directory.ListLessonsForClass(c.Request().Context(), c.Param("classId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lessons)
}
