package handlers

import (
	"tradepost/internal/domain"
	applog "tradepost/internal/log"
	"tradepost/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireTrader enforces a login; otherwise redirect to the login form.
func RequireTrader(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		t, err := auth.CurrentTrader(sid)
		if err != nil || t == nil {
			return c.Redirect("/login")
		}
		c.Locals("trader", t)
		return c.Next()
	}
}

// RequireOrganization additionally restricts a route to organization
// accounts.
func RequireOrganization(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		t, err := auth.CurrentTrader(sid)
		if err != nil || t == nil || t.Role != domain.RoleOrganization {
			applog.Security(c, "access.denied.org", map[string]any{"sid": sid})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Access denied"})
		}
		c.Locals("trader", t)
		return c.Next()
	}
}

// currentTrader fetches the trader that RequireTrader put on the context.
func currentTrader(c *fiber.Ctx) *domain.Trader {
	t, _ := c.Locals("trader").(*domain.Trader)
	return t
}
