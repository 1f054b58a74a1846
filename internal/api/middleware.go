package api

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nerkartran297/english-center-api/internal/repository"

	"github.com/gofiber/fiber/v2"
	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of http request",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)
)

// Identity is the resolved caller: the platform account behind the external
// identity provider's user ID.
type Identity struct {
	UserID      uuid.UUID
	ClerkUserID string
	Role        string
	IsActivated bool
}

var ErrNoIdentity = errors.New("no identity resolved for request")

// IdentityMiddleware resolves who is calling. It accepts either the identity
// provider's session JWT in the Authorization header (HS256,
// CLERK_JWT_SECRET, clerk user ID in "sub") or the legacy clerkUserID query
// parameter the old pages send. Requests without either still pass; guarded
// handlers fail later through CurrentIdentity.
func IdentityMiddleware(students repository.StudentRepository) fiber.Handler {
	secret := []byte(os.Getenv("CLERK_JWT_SECRET"))

	return func(c *fiber.Ctx) error {
		clerkUserID := clerkIDFromBearer(c, secret)
		if clerkUserID == "" {
			clerkUserID = c.Query("clerkUserID")
		}
		if clerkUserID == "" {
			return c.Next()
		}

		user, err := students.FindByClerkID(c.Context(), clerkUserID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not resolve user"})
		}
		if user == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}

		c.Locals("identity", Identity{
			UserID:      user.ID,
			ClerkUserID: user.ClerkUserID,
			Role:        user.Role,
			IsActivated: user.IsActivated,
		})
		return c.Next()
	}
}

func clerkIDFromBearer(c *fiber.Ctx, secret []byte) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" || len(secret) == 0 {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	token, err := jwtv5.Parse(parts[1], func(token *jwtv5.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, jwtv5.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return ""
	}

	claims, ok := token.Claims.(jwtv5.MapClaims)
	if !ok {
		return ""
	}
	sub, _ := claims["sub"].(string)
	return sub
}

// CurrentIdentity returns the identity resolved by the middleware.
func CurrentIdentity(c *fiber.Ctx) (Identity, error) {
	ident, ok := c.Locals("identity").(Identity)
	if !ok {
		return Identity{}, ErrNoIdentity
	}
	return ident, nil
}

// RequireRole gates staff routes.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident, err := CurrentIdentity(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
		}
		for _, role := range roles {
			if ident.Role == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Insufficient role"})
	}
}

func PrometheusMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		duration := time.Since(start).Seconds()
		statusCode := c.Response().StatusCode()

		if err != nil {
			var e *fiber.Error
			if errors.As(err, &e) {
				statusCode = e.Code
			} else {
				statusCode = fiber.StatusInternalServerError
			}
		}

		method := c.Method()
		path := c.Path()
		statusStr := fmt.Sprintf("%d", statusCode)

		httpRequestTotal.WithLabelValues(method, path, statusStr).Inc()
		httpRequestDuration.WithLabelValues(method, path, statusStr).Observe(duration)

		return err
	}
}
