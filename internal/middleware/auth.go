package middleware

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/dashapi/internal/auth"
	"github.com/yourorg/dashapi/internal/models"
	"github.com/yourorg/dashapi/internal/store"
)

// UserFinder is the slice of the credential store the middleware needs.
type UserFinder interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

const currentUserKey = "currentUser"

// RequireAuth validates the bearer token and rehydrates the user it names.
// Token claims are convenience only: role and sector come from the freshly
// loaded record, so a deleted user or a sector reassignment takes effect on
// the very next request.
func RequireAuth(tokens *auth.TokenManager, users UserFinder, dbTimeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Detail: "not authenticated"})
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Detail: "invalid or expired token"})
		}

		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		user, err := users.FindByUsername(ctx, claims.Subject)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// Token subject no longer exists; same signal as a bad token.
				return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Detail: "invalid or expired token"})
			}
			log.Printf("❌ Error cargando usuario del token: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Detail: "internal server error"})
		}

		c.Locals(currentUserKey, user)
		return c.Next()
	}
}

// CurrentUser returns the user attached by RequireAuth, or nil outside it.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(currentUserKey).(*models.User)
	return user
}
