package auth

import (
	"database/sql"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/SoulShadow8326/Arista/app/config"
	"github.com/SoulShadow8326/Arista/app/database"
	"github.com/SoulShadow8326/Arista/app/models"
)

const cookieName = "access_token"

func SetupAuthRoutes(app *fiber.App) {
	api := app.Group("/api/auth")
	api.Post("/signin", SigninAPI)
	api.Post("/signout", SignoutAPI)

	app.Get("/api/me", AuthMiddleware, MeAPI)
}

// AuthMiddleware resolves the bearer token to a live user record. The cookie
// is checked before the Authorization header, matching existing clients. A
// valid signature over a deleted account still yields 401.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := extractToken(c)
	if tokenString == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Not authenticated")
	}

	userID, err := ValidateToken(tokenString)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
	}

	user, err := database.GetUserByID(config.GetDB(), userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
		}
		return err
	}

	c.Locals("user", user)
	return c.Next()
}

func extractToken(c *fiber.Ctx) string {
	// Cookie value carries the literal "Bearer " prefix.
	if cookie := c.Cookies(cookieName); cookie != "" {
		if strings.HasPrefix(cookie, "Bearer ") {
			return strings.TrimPrefix(cookie, "Bearer ")
		}
	}
	if header := c.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// RequireRoles gates a handler to the given role set.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if !user.HasRole(roles...) {
			return fiber.NewError(fiber.StatusForbidden, "Insufficient permissions")
		}
		return c.Next()
	}
}

// CurrentUser returns the user attached by AuthMiddleware.
func CurrentUser(c *fiber.Ctx) *models.User {
	return c.Locals("user").(*models.User)
}

// SetAuthCookie stores the token in the session cookie, Bearer prefix
// included.
func SetAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    "Bearer " + token,
		Path:     "/",
		MaxAge:   int((24 * time.Hour).Seconds()),
		HTTPOnly: true,
		Secure:   config.IsProduction(),
		SameSite: "Lax",
	})
}

func clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}
