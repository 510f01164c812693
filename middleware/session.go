package middleware

import (
	"lms/config"
	"lms/database"
	"lms/models"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SessionCookie is the name of the cookie carrying the session token.
// The cookie holds only an opaque lookup key, all trust lives in the
// server-side session row.
const SessionCookie = "lms_session"

// CreateSession stores a new session for the user and sets the cookie.
func CreateSession(c *fiber.Ctx, user models.User) (models.Session, error) {
	session := models.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		Role:      user.Role,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Duration(config.AppConfig.SessionTTLHours) * time.Hour),
	}

	if err := database.Database.Db.Create(&session).Error; err != nil {
		return models.Session{}, err
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    session.Token,
		Expires:  session.ExpiresAt,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return session, nil
}

// DestroySession deletes the current session row and clears the cookie.
// Idempotent: a missing or already-destroyed session is not an error.
func DestroySession(c *fiber.Ctx) {
	token := c.Cookies(SessionCookie)
	if token != "" {
		if err := database.Database.Db.Delete(&models.Session{}, "token = ?", token).Error; err != nil {
			log.Printf("Error deleting session: %v", err)
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// SessionMiddleware authenticates the request against the session store.
// Read-only: it never mutates the session row.
func SessionMiddleware(c *fiber.Ctx) error {
	token := c.Cookies(SessionCookie)
	if token == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Not authenticated!", nil)
	}

	var session models.Session
	if err := database.Database.Db.Where("token = ?", token).First(&session).Error; err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Not authenticated!", nil)
	}

	if session.Expired() {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Session expired!", nil)
	}

	c.Locals("userId", session.UserID)
	c.Locals("role", session.Role)

	return c.Next()
}

// RequireRoles returns a middleware rejecting sessions whose role is not
// in the allowed set. Must run after SessionMiddleware.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Not authenticated!", nil)
		}

		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}

		return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}
}
