package api

import (
	"errors"
	"log/slog"

	"github.com/nerkartran297/english-center-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StudentHandler struct {
	studentService service.StudentService
}

func NewStudentHandler(studentService service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// GetRole serves GET /api/get-role. Response shape is what the legacy
// frontend's role probe expects.
func (h *StudentHandler) GetRole(c *fiber.Ctx) error {
	clerkUserID := c.Query("clerkUserID")
	if clerkUserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "clerkUserID is required"})
	}

	user, err := h.studentService.GetRole(c.Context(), clerkUserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch role"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"userRole":    user.Role,
		"mongoID":     user.ID,
		"isActivated": user.IsActivated,
	})
}

// GetStudentInformation serves GET /api/student-information.
func (h *StudentHandler) GetStudentInformation(c *fiber.Ctx) error {
	ident, err := CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
	}

	record, err := h.studentService.GetInformation(c.Context(), ident.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch student"})
	}
	return c.Status(fiber.StatusOK).JSON(record)
}

// ListStudents serves GET /api/all-students (staff).
func (h *StudentHandler) ListStudents(c *fiber.Ctx) error {
	students, err := h.studentService.ListStudents(c.Context())
	if err != nil {
		slog.ErrorContext(c.UserContext(), "Error listing students", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch students"})
	}
	return c.Status(fiber.StatusOK).JSON(students)
}

// MyClasses serves GET /api/my-classes: the caller's paid courses with
// their classes.
func (h *StudentHandler) MyClasses(c *fiber.Ctx) error {
	ident, err := CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
	}

	courses, err := h.studentService.MyClasses(c.Context(), ident.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch classes"})
	}
	return c.Status(fiber.StatusOK).JSON(courses)
}

// GetSalary serves GET /api/salary for staff members.
func (h *StudentHandler) GetSalary(c *fiber.Ctx) error {
	ident, err := CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
	}

	salaries, err := h.studentService.ListSalaries(c.Context(), ident.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch salary"})
	}
	return c.Status(fiber.StatusOK).JSON(salaries)
}
