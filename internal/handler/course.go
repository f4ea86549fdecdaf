package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/course-catalog/internal/model"
	"github.com/iliyamo/course-catalog/internal/queue"
	"github.com/iliyamo/course-catalog/internal/repository"
	queue_publisher "github.com/iliyamo/course-catalog/internal/service"
)

// CourseHandler bundles the course repository behind the catalog endpoints.
// Reads are public; every mutation sits behind the auth middleware and
// publishes an audit event after the write lands.  Publish is a field so
// tests can swap the RabbitMQ publisher for a recorder.
type CourseHandler struct {
	Courses *repository.CourseRepo
	Publish func(ctx context.Context, ev queue.CourseCreatedEvent) error
}

func NewCourseHandler(courses *repository.CourseRepo) *CourseHandler {
	if courses == nil {
		panic("nil repository passed to NewCourseHandler")
	}
	return &CourseHandler{Courses: courses, Publish: queue_publisher.PublishCourseCreated}
}

type courseReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Instructor  string `json:"instructor"`
}

func (r *courseReq) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.Instructor = strings.TrimSpace(r.Instructor)
}

type invalidCourse struct {
	Course courseReq `json:"course"`
	Error  string    `json:"error"`
}

// Create handles POST /api/courses.
func (h *CourseHandler) Create(c echo.Context) error {
	id, err := requestIdentity(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	var req courseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	req.normalize()
	if msg := validateCourse(req.Name, req.Description, req.Instructor); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": msg})
	}

	course := &model.Course{Name: req.Name, Description: req.Description, Instructor: req.Instructor}
	if err := h.Courses.Create(c.Request().Context(), course); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not create course"})
	}

	h.publishCreated(c, *course, id)
	return c.JSON(http.StatusCreated, course)
}

// BulkUpload handles POST /api/courses/bulk-upload.  Every entry is
// validated first; when any entry fails, nothing is written and the reply
// lists each offending course with its reason.
func (h *CourseHandler) BulkUpload(c echo.Context) error {
	id, err := requestIdentity(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	var reqs []courseReq
	if err := c.Bind(&reqs); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if len(reqs) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "no courses provided"})
	}

	invalid := []invalidCourse{}
	valid := make([]model.Course, 0, len(reqs))
	for _, r := range reqs {
		r.normalize()
		if msg := validateCourse(r.Name, r.Description, r.Instructor); msg != "" {
			invalid = append(invalid, invalidCourse{Course: r, Error: msg})
			continue
		}
		valid = append(valid, model.Course{Name: r.Name, Description: r.Description, Instructor: r.Instructor})
	}
	if len(invalid) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message":        "Some courses failed validation",
			"invalidCourses": invalid,
		})
	}

	saved, err := h.Courses.CreateBatch(c.Request().Context(), valid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not upload courses"})
	}
	for _, course := range saved {
		h.publishCreated(c, course, id)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":      "Courses uploaded successfully",
		"savedCourses": saved,
	})
}

// List handles GET /api/courses.
func (h *CourseHandler) List(c echo.Context) error {
	items, err := h.Courses.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}

// GetByID handles GET /api/course/:id.
func (h *CourseHandler) GetByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	course, err := h.Courses.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Course not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "db error"})
	}
	return c.JSON(http.StatusOK, course)
}

// Update handles PUT /api/course/:id.
func (h *CourseHandler) Update(c echo.Context) error {
	if _, err := requestIdentity(c); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req courseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	req.normalize()
	if msg := validateCourse(req.Name, req.Description, req.Instructor); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": msg})
	}

	if err := h.Courses.Update(c.Request().Context(), id, req.Name, req.Description, req.Instructor); err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Course not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "update failed"})
	}
	updated, err := h.Courses.GetByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "db error"})
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/course/:id.
func (h *CourseHandler) Delete(c echo.Context) error {
	if _, err := requestIdentity(c); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	if err := h.Courses.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Course not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Course deleted successfully"})
}

// publishCreated fires the audit event for a stored course.  Publishing is
// best effort; the returned error is already logged by the publisher.
func (h *CourseHandler) publishCreated(c echo.Context, course model.Course, actor identity) {
	if h.Publish == nil {
		return
	}
	createdAt := course.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_ = h.Publish(c.Request().Context(), queue.CourseCreatedEvent{
		CourseID:   course.ID,
		Name:       course.Name,
		Instructor: course.Instructor,
		ActorID:    actor.UserID,
		ActorEmail: actor.Email,
		CreatedAt:  createdAt.UTC().Format(time.RFC3339),
	})
}
