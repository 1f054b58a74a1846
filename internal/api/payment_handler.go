package api

import (
	"errors"
	"log/slog"

	"github.com/nerkartran297/english-center-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	paymentService service.PaymentService
	validate       *validator.Validate
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		validate:       validator.New(),
	}
}

// PurchaseCourse serves PUT /api/purchase-course/:id. The proof image is
// sent as the multipart field "payProof".
func (h *PaymentHandler) PurchaseCourse(c *fiber.Ctx) error {
	ident, err := CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
	}

	courseID := c.Params("id")
	fileHeader, err := c.FormFile("payProof")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "payProof image is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Could not read payProof image"})
	}
	defer file.Close()

	payment, err := h.paymentService.SubmitPurchase(
		c.Context(),
		courseID,
		ident.UserID,
		file,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCourseNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
		case errors.Is(err, service.ErrAlreadyPurchased):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Course already purchased or pending review"})
		default:
			slog.ErrorContext(c.UserContext(), "Error submitting purchase",
				slog.String("courseID", courseID),
				slog.String("error", err.Error()))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not submit purchase"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(payment)
}

// ListPayments serves GET /api/staff/payments for the review queue.
func (h *PaymentHandler) ListPayments(c *fiber.Ctx) error {
	payments, err := h.paymentService.ListPayments(c.Context())
	if err != nil {
		slog.ErrorContext(c.UserContext(), "Error listing payments", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch payments"})
	}
	return c.Status(fiber.StatusOK).JSON(payments)
}

type verifyPaymentRequest struct {
	Approve bool    `json:"approve"`
	Reason  *string `json:"reason" validate:"omitempty,max=500"`
}

// VerifyPayment serves PUT /api/staff/payments/:id/verify.
func (h *PaymentHandler) VerifyPayment(c *fiber.Ctx) error {
	ident, err := CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
	}

	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment ID"})
	}

	var req verifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	payment, err := h.paymentService.Verify(c.Context(), paymentID, req.Approve, ident.ClerkUserID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaymentNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
		case errors.Is(err, service.ErrAlreadyVerified):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Payment has already been verified"})
		default:
			slog.ErrorContext(c.UserContext(), "Error verifying payment",
				slog.String("paymentID", paymentID.String()),
				slog.String("error", err.Error()))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not verify payment"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(payment)
}
