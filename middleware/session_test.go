package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{SessionTTLHours: 24}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Get("/any", middleware.SessionMiddleware, func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "ok", fiber.Map{
			"userId": c.Locals("userId"),
			"role":   c.Locals("role"),
		})
	})
	app.Get("/admin", middleware.SessionMiddleware, middleware.RequireRoles(models.RoleAdmin),
		func(c *fiber.Ctx) error {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "ok", nil)
		})
	return app
}

func storeSession(t *testing.T, role string, expiresAt time.Time) *http.Cookie {
	t.Helper()

	session := models.Session{
		Token:     uuid.NewString(),
		UserID:    1,
		Role:      role,
		CreatedAt: time.Now(),
		ExpiresAt: expiresAt,
	}
	require.NoError(t, database.Database.Db.Create(&session).Error)
	return &http.Cookie{Name: middleware.SessionCookie, Value: session.Token}
}

func request(t *testing.T, app *fiber.App, path string, cookie *http.Cookie) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestSessionMiddlewareNoCookie(t *testing.T) {
	app := setupApp(t)

	resp := request(t, app, "/any", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSessionMiddlewareUnknownToken(t *testing.T) {
	app := setupApp(t)

	resp := request(t, app, "/any", &http.Cookie{Name: middleware.SessionCookie, Value: uuid.NewString()})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSessionMiddlewareExpired(t *testing.T) {
	app := setupApp(t)
	cookie := storeSession(t, models.RoleStudent, time.Now().Add(-time.Minute))

	resp := request(t, app, "/any", cookie)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSessionMiddlewareValid(t *testing.T) {
	app := setupApp(t)
	cookie := storeSession(t, models.RoleStudent, time.Now().Add(time.Hour))

	resp := request(t, app, "/any", cookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRolesForbidden(t *testing.T) {
	app := setupApp(t)
	cookie := storeSession(t, models.RoleStudent, time.Now().Add(time.Hour))

	resp := request(t, app, "/admin", cookie)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireRolesAllowed(t *testing.T) {
	app := setupApp(t)
	cookie := storeSession(t, models.RoleAdmin, time.Now().Add(time.Hour))

	resp := request(t, app, "/admin", cookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
