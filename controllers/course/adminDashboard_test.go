package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"lms/database"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createStudentAt backdates the creation timestamp so the row lands in
// an older trend bucket.
func createStudentAt(t *testing.T, username, email string, createdAt time.Time) models.User {
	t.Helper()

	user := models.User{
		Username: username,
		Email:    email,
		Role:     models.RoleStudent,
		Password: "x",
	}
	user.CreatedAt = createdAt
	require.NoError(t, database.Database.Db.Create(&user).Error)
	return user
}

func TestDashboardStats(t *testing.T) {
	app := setupTestApp(t)
	admin := createUser(t, "admin", "admin@x.com", models.RoleAdmin)
	alice := createUser(t, "alice", "a@x.com", models.RoleStudent)
	bob := createUser(t, "bob", "b@x.com", models.RoleStudent)
	course := createCourse(t, "chrm", 3)
	createEnrollment(t, alice, course, time.Now().AddDate(0, 0, 30))
	createEnrollment(t, bob, course, time.Now().Add(-time.Hour))
	adminCookie := newSessionCookie(t, admin)

	resp := doRequest(t, app, http.MethodGet, "/admin/dashboard/stats", nil, adminCookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := decodeBody(t, resp)["data"].(map[string]interface{})
	stats := data["stats"].(map[string]interface{})

	assert.Equal(t, float64(2), stats["total_students"])
	assert.Equal(t, float64(1), stats["total_courses"])
	assert.Equal(t, float64(1), stats["published_courses"])
	assert.Equal(t, float64(2), stats["total_enrollments"])
	assert.Equal(t, float64(1), stats["active_enrollments"])
	assert.Equal(t, float64(1), stats["expired_enrollments"])

	recent := data["recent_enrollments"].([]interface{})
	assert.Len(t, recent, 2)
}

func TestDashboardTrendsDefaultWindow(t *testing.T) {
	app := setupTestApp(t)
	admin := createUser(t, "admin", "admin@x.com", models.RoleAdmin)
	adminCookie := newSessionCookie(t, admin)

	// One student today, one three days back, plus a course today
	createUser(t, "alice", "a@x.com", models.RoleStudent)
	createStudentAt(t, "old", "old@x.com", time.Now().AddDate(0, 0, -3))
	createCourse(t, "chrm", 1)

	resp := doRequest(t, app, http.MethodGet, "/admin/dashboard/trends", nil, adminCookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := decodeBody(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, float64(7), data["window_days"])

	days := data["days"].([]interface{})
	require.Len(t, days, 7)
	// Oldest first, today last
	today := time.Now().Format("2006-01-02")
	assert.Equal(t, today, days[6])
	assert.Equal(t, time.Now().AddDate(0, 0, -6).Format("2006-01-02"), days[0])

	students := data["students"].([]interface{})
	require.Len(t, students, 7)
	assert.Equal(t, float64(1), students[6], "student created today")
	assert.Equal(t, float64(1), students[3], "student created three days ago")
	for _, i := range []int{0, 1, 2, 4, 5} {
		assert.Equal(t, float64(0), students[i], "empty day %d", i)
	}

	courses := data["courses"].([]interface{})
	require.Len(t, courses, 7)
	assert.Equal(t, float64(1), courses[6])

	enrollments := data["enrollments"].([]interface{})
	require.Len(t, enrollments, 7)
	for i := range enrollments {
		assert.Equal(t, float64(0), enrollments[i])
	}
}

func TestDashboardTrendsCustomWindow(t *testing.T) {
	app := setupTestApp(t)
	admin := createUser(t, "admin", "admin@x.com", models.RoleAdmin)
	adminCookie := newSessionCookie(t, admin)

	resp := doRequest(t, app, http.MethodGet, "/admin/dashboard/trends?days=3", nil, adminCookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := decodeBody(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["window_days"])
	assert.Len(t, data["days"].([]interface{}), 3)
	assert.Len(t, data["students"].([]interface{}), 3)
}

func TestDashboardTrendsRejectsOversizedWindow(t *testing.T) {
	app := setupTestApp(t)
	admin := createUser(t, "admin", "admin@x.com", models.RoleAdmin)
	adminCookie := newSessionCookie(t, admin)

	resp := doRequest(t, app, http.MethodGet, "/admin/dashboard/trends?days=91", nil, adminCookie)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDashboardRequiresAdmin(t *testing.T) {
	app := setupTestApp(t)
	student := createUser(t, "alice", "a@x.com", models.RoleStudent)
	studentCookie := newSessionCookie(t, student)

	resp := doRequest(t, app, http.MethodGet, "/admin/dashboard/stats", nil, studentCookie)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/admin/dashboard/stats", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminStudentProgress(t *testing.T) {
	app := setupTestApp(t)
	admin := createUser(t, "admin", "admin@x.com", models.RoleAdmin)
	student := createUser(t, "alice", "a@x.com", models.RoleStudent)
	course := createCourse(t, "chrm", 4)
	createEnrollment(t, student, course, time.Now().AddDate(0, 0, 30))
	adminCookie := newSessionCookie(t, admin)
	studentCookie := newSessionCookie(t, student)

	for _, index := range []int{0, 1} {
		resp := doRequest(t, app, http.MethodPost, "/enrollments/complete",
			map[string]interface{}{"courseSlug": "chrm", "moduleIndex": index}, studentCookie)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp := doRequest(t, app, http.MethodGet,
		fmt.Sprintf("/admin/students/%d/progress", student.ID), nil, adminCookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := decodeBody(t, resp)["data"].(map[string]interface{})
	progress := data["course_progress"].([]interface{})
	require.Len(t, progress, 1)

	entry := progress[0].(map[string]interface{})
	assert.Equal(t, "chrm", entry["course_slug"])
	assert.Equal(t, courseModels.StatusActive, entry["status"])
	assert.Equal(t, float64(2), entry["completed_modules"])
	assert.Equal(t, float64(4), entry["total_modules"])
	assert.Equal(t, float64(0), entry["quiz_attempts"])
}
