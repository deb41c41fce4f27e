package handlers

import (
	"time"

	applog "tradepost/internal/log"
	"tradepost/internal/services"
	"tradepost/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	return sid
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	name := c.FormValue("name")
	pass := c.FormValue("password")
	if name == "" || pass == "" {
		return c.Redirect("/error/login_no_pwd_user")
	}
	if _, ok := validate.TraderName(name); !ok {
		applog.Security(c, "auth.login.fail", map[string]any{"name": name, "reason": "bad_format"})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid name or password"})
	}

	_, err := h.Auth.Login(sid, name, pass)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"name": name})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid name or password"})
	}

	applog.Audit(c, "auth.login.success", map[string]any{"name": name})
	return c.Redirect("/")
}

func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, "register", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	sid := ensureSID(c)
	name, ok := validate.TraderName(c.FormValue("name"))
	if !ok {
		return c.Redirect("/error/no_user_name")
	}
	pass := c.FormValue("password")
	if pass != c.FormValue("password_rep") {
		return c.Redirect("/error/pwd_rep_no_match")
	}
	if !validate.Password(pass) {
		return c.Redirect("/error/pwd_unsafe")
	}
	desc := validate.Description(c.FormValue("description"))
	org := c.FormValue("organization") == "on"

	if _, err := h.Auth.Register(name, pass, desc, org); err != nil {
		applog.Security(c, "auth.register.fail", map[string]any{"name": name})
		return failRedirect(c, err)
	}
	if _, err := h.Auth.Login(sid, name, pass); err != nil {
		return c.Redirect("/login")
	}

	applog.Audit(c, "auth.register.success", map[string]any{"name": name, "org": org})
	return c.Redirect("/")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	h.Auth.Logout(sid)
	// Expire cookie
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	applog.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.Redirect("/login")
}
