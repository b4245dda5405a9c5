package handlers

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/dashapi/internal/middleware"
	"github.com/yourorg/dashapi/internal/models"
)

// DashboardLister is the dashboard-store dependency of the listing handler.
type DashboardLister interface {
	ListAll(ctx context.Context) ([]models.Dashboard, error)
	ListBySector(ctx context.Context, sector string) ([]models.Dashboard, error)
}

type DashboardHandler struct {
	dashboards DashboardLister
	dbTimeout  time.Duration
}

func NewDashboardHandler(dashboards DashboardLister, dbTimeout time.Duration) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards, dbTimeout: dbTimeout}
}

// List handles GET /api/dashboards. Visibility follows the reloaded user's
// role, not the token claims: secretaria sees everything, gestor sees only
// their own sector, anything else is rejected outright.
func (h *DashboardHandler) List(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Detail: "not authenticated"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.dbTimeout)
	defer cancel()

	var (
		dashboards []models.Dashboard
		err        error
	)
	switch user.Role {
	case models.RoleSecretaria:
		dashboards, err = h.dashboards.ListAll(ctx)
	case models.RoleGestor:
		dashboards, err = h.dashboards.ListBySector(ctx, user.Sector.String)
	default:
		return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse{Detail: "access not authorized"})
	}
	if err != nil {
		log.Printf("❌ Error consultando dashboards: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Detail: "internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(dashboards)
}
