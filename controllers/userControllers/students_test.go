package userControllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseRoutes "lms/routers/courseRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		SaltRound:       10,
		SessionTTLHours: 24,
		TrendWindowDays: 7,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminRoutes(app)
	return app
}

func createUser(t *testing.T, username, email, role string) models.User {
	t.Helper()

	user := models.User{Username: username, Email: email, Role: role, Password: "x"}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	return user
}

func newSessionCookie(t *testing.T, user models.User) *http.Cookie {
	t.Helper()

	session := models.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		Role:      user.Role,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	require.NoError(t, database.Database.Db.Create(&session).Error)
	return &http.Cookie{Name: middleware.SessionCookie, Value: session.Token}
}

func get(t *testing.T, app *fiber.App, path string, cookie *http.Cookie) *http.Response {
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

func TestAdminListStudents(t *testing.T) {
	app := setupTestApp(t)
	admin := createUser(t, "admin", "admin@x.com", models.RoleAdmin)
	createUser(t, "alice", "a@x.com", models.RoleStudent)
	createUser(t, "bob", "b@x.com", models.RoleStudent)
	createUser(t, "teach", "t@x.com", models.RoleTeacher)

	resp := get(t, app, "/admin/students/", newSessionCookie(t, admin))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	students := body["data"].([]interface{})

	// Admins and teachers are not in the student list
	assert.Len(t, students, 2)
	for _, entry := range students {
		student := entry.(map[string]interface{})
		assert.Equal(t, models.RoleStudent, student["role"])
		assert.NotContains(t, student, "password")
	}
}

func TestAdminDeleteStudentRevokesSessions(t *testing.T) {
	app := setupTestApp(t)
	admin := createUser(t, "admin", "admin@x.com", models.RoleAdmin)
	student := createUser(t, "alice", "a@x.com", models.RoleStudent)

	adminCookie := newSessionCookie(t, admin)
	studentCookie := newSessionCookie(t, student)

	// Student is logged in before the deletion
	resp := get(t, app, "/user/enrollments", studentCookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("/admin/students/%d", student.ID), nil)
	require.NoError(t, err)
	req.AddCookie(adminCookie)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Existing sessions die with the account
	resp = get(t, app, "/user/enrollments", studentCookie)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Deleted students drop out of the listing
	resp = get(t, app, "/admin/students/", adminCookie)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body["data"])
}

func TestAdminDeleteStudentNotFound(t *testing.T) {
	app := setupTestApp(t)
	admin := createUser(t, "admin", "admin@x.com", models.RoleAdmin)

	req, err := http.NewRequest(http.MethodDelete, "/admin/students/999", nil)
	require.NoError(t, err)
	req.AddCookie(newSessionCookie(t, admin))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
