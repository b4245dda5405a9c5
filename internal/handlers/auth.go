package handlers

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

// UserFinder is the credential-store dependency of the auth handler.
type UserFinder interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

type AuthHandler struct {
	users     UserFinder
	tokens    *auth.TokenManager
	dbTimeout time.Duration
}

func NewAuthHandler(users UserFinder, tokens *auth.TokenManager, dbTimeout time.Duration) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, dbTimeout: dbTimeout}
}

// Login handles POST /api/auth/login.
//
// Unknown username and wrong password produce byte-identical responses so the
// endpoint cannot be used to enumerate users.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Detail: "invalid request body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse{Detail: "username and password required"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.dbTimeout)
	defer cancel()

	user, err := h.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return invalidCredentials(c)
		}
		log.Printf("❌ Error consultando usuario: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Detail: "internal server error"})
	}
	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		return invalidCredentials(c)
	}

	token, _, err := h.tokens.Issue(user)
	if err != nil {
		log.Printf("❌ Error firmando token: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Detail: "internal server error"})
	}

	c.Set("Cache-Control", "no-store")
	return c.Status(fiber.StatusOK).JSON(models.LoginResponse{
		Token: token,
		User:  user.DTO(),
	})
}

func invalidCredentials(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Detail: "invalid credentials"})
}
