package api

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/nerkartran297/english-center-api/internal/catalog"
	"github.com/nerkartran297/english-center-api/internal/model"
	"github.com/nerkartran297/english-center-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type CourseHandler struct {
	courseService service.CourseService
	validate      *validator.Validate
}

func NewCourseHandler(courseService service.CourseService) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
		validate:      validator.New(),
	}
}

// ListCourses serves GET /api/courses. Filter and sort query parameters are
// optional; with none present the whole catalog comes back best-rated first.
// Garbage numeric filters are rejected here: once past this point they
// would exclude every course, so they never reach the engine.
func (h *CourseHandler) ListCourses(c *fiber.Ctx) error {
	var filters catalog.FilterState
	if err := c.QueryParser(&filters); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid filter parameters"})
	}
	if bad := badNumericFilter(filters.PriceFrom, filters.PriceTo, filters.MinRating, filters.MinStudents); bad != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Invalid numeric filter value %q", bad),
		})
	}

	courses, err := h.courseService.ListCourses(c.Context(), filters, catalog.SortKey(c.Query("sortBy")))
	if err != nil {
		slog.ErrorContext(c.UserContext(), "Error listing courses", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch courses"})
	}

	return c.Status(fiber.StatusOK).JSON(courses)
}

// badNumericFilter returns the first non-empty value that does not parse as
// a number, or "" when all are usable.
func badNumericFilter(values ...string) string {
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return v
		}
	}
	return ""
}

// GetCourseInformation serves GET /api/course-information/:id.
func (h *CourseHandler) GetCourseInformation(c *fiber.Ctx) error {
	course, err := h.courseService.GetCourse(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch course"})
	}
	return c.Status(fiber.StatusOK).JSON(course)
}

// GetCourseDetail serves GET /api/course-detail/:id, the purchase page's
// wrapped summary shape.
func (h *CourseHandler) GetCourseDetail(c *fiber.Ctx) error {
	course, err := h.courseService.GetCourse(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error":   "Not found",
				"message": "Course not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch course"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"course": course})
}

// GetClass serves GET /api/class/:id, gated on the caller's enrollment in
// the class's course.
func (h *CourseHandler) GetClass(c *fiber.Ctx) error {
	ident, err := CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
	}

	class, err := h.courseService.GetClassForStudent(c.Context(), c.Params("id"), ident.UserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClassNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
		case errors.Is(err, service.ErrNotEnrolled):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not enrolled in this course"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch class"})
		}
	}
	return c.Status(fiber.StatusOK).JSON(class)
}

type courseRequest struct {
	CourseID       string           `json:"courseID" validate:"required"`
	Name           string           `json:"name" validate:"required,min=3,max=200"`
	Description    string           `json:"description"`
	Teachers       []model.Teacher  `json:"teachers"`
	Price          float64          `json:"price" validate:"min=0"`
	CompareAtPrice float64          `json:"compareAtPrice" validate:"min=0"`
	Rating         float64          `json:"rating" validate:"min=0,max=5"`
	TotalVote      int              `json:"totalVote" validate:"min=0"`
	Target         model.StringList `json:"target"`
	Summary        model.StringList `json:"sumary"`
	StudentLimit   int              `json:"studentLimit" validate:"min=0"`
	CoverIMG       string           `json:"coverIMG"`
	StartDate      string           `json:"startDate"`
	EndDate        string           `json:"endDate"`
}

func (r courseRequest) toModel() *model.Course {
	return &model.Course{
		ID:             r.CourseID,
		Name:           r.Name,
		Description:    r.Description,
		Teachers:       r.Teachers,
		Price:          r.Price,
		CompareAtPrice: r.CompareAtPrice,
		Rating:         r.Rating,
		TotalVote:      r.TotalVote,
		Target:         r.Target,
		Summary:        r.Summary,
		StudentLimit:   r.StudentLimit,
		CoverIMG:       r.CoverIMG,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
	}
}

// AddCourse serves POST /api/add-course (staff).
func (h *CourseHandler) AddCourse(c *fiber.Ctx) error {
	var request courseRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	course := request.toModel()
	if err := h.courseService.CreateCourse(c.Context(), course); err != nil {
		slog.ErrorContext(c.UserContext(), "Error creating course", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create course"})
	}
	return c.Status(fiber.StatusCreated).JSON(course)
}

// UpdateCourse serves PUT /api/courses/:id (staff).
func (h *CourseHandler) UpdateCourse(c *fiber.Ctx) error {
	var request courseRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	request.CourseID = c.Params("id")
	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	course := request.toModel()
	if err := h.courseService.UpdateCourse(c.Context(), course); err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update course"})
	}
	return c.Status(fiber.StatusOK).JSON(course)
}

// DeleteCourse serves DELETE /api/courses/:id (staff).
func (h *CourseHandler) DeleteCourse(c *fiber.Ctx) error {
	if err := h.courseService.DeleteCourse(c.Context(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete course"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Course deleted"})
}

type classRequest struct {
	ClassID     string           `json:"classID" validate:"required"`
	Schedule    model.StringList `json:"schedule" validate:"required,min=1"`
	Name        string           `json:"name" validate:"required,min=3,max=200"`
	Description model.StringGrid `json:"description"`
	Teachers    []model.Teacher  `json:"teachers"`
	LessonList  model.StringList `json:"lessonList"`
	Progress    int              `json:"progress" validate:"min=0"`
	Documents   model.StringList `json:"documents"`
	IsActive    bool             `json:"isActive"`
	Meeting     string           `json:"meeting"`
	CoverIMG    string           `json:"coverIMG"`
	StartDate   string           `json:"startDate"`
	EndDate     string           `json:"endDate"`
	Color       string           `json:"colorScheme"`
}

func (r classRequest) toModel(courseID string) *model.Class {
	return &model.Class{
		ID:          r.ClassID,
		CourseID:    courseID,
		Schedule:    r.Schedule,
		Name:        r.Name,
		Description: r.Description,
		Teachers:    r.Teachers,
		LessonList:  r.LessonList,
		Progress:    r.Progress,
		Documents:   r.Documents,
		IsActive:    r.IsActive,
		Meeting:     r.Meeting,
		CoverIMG:    r.CoverIMG,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Color:       r.Color,
	}
}

// AddClass serves POST /api/courses/:id/classes (staff).
func (h *CourseHandler) AddClass(c *fiber.Ctx) error {
	var request classRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	class := request.toModel(c.Params("id"))
	if err := h.courseService.CreateClass(c.Context(), class); err != nil {
		switch {
		case errors.Is(err, service.ErrCourseNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
		case errors.Is(err, service.ErrInvalidSchedule):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid schedule", "message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create class"})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(class)
}

// UpdateClass serves PUT /api/courses/:id/classes/:classID (staff).
func (h *CourseHandler) UpdateClass(c *fiber.Ctx) error {
	var request classRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	request.ClassID = c.Params("classID")
	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	class := request.toModel(c.Params("id"))
	if err := h.courseService.UpdateClass(c.Context(), class); err != nil {
		switch {
		case errors.Is(err, service.ErrClassNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
		case errors.Is(err, service.ErrInvalidSchedule):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid schedule", "message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update class"})
		}
	}
	return c.Status(fiber.StatusOK).JSON(class)
}
