package controllers

import (
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

// AdminDashboardStats gets dashboard statistics
func AdminDashboardStats(c *fiber.Ctx) error {
	var totalStudents, totalCourses, publishedCourses, totalEnrollments, activeEnrollments, totalLiveClasses int64

	db := database.Database.Db

	db.Model(&models.User{}).Where("role = ? AND is_deleted = ?", models.RoleStudent, false).Count(&totalStudents)
	db.Model(&courseModels.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)
	db.Model(&courseModels.Course{}).Where("is_deleted = ? AND is_published = ?", false, true).Count(&publishedCourses)
	db.Model(&courseModels.Enrollment{}).Where("is_deleted = ?", false).Count(&totalEnrollments)
	db.Model(&courseModels.Enrollment{}).Where("is_deleted = ? AND valid_until > ?", false, time.Now()).Count(&activeEnrollments)
	db.Model(&courseModels.LiveClass{}).Where("is_deleted = ?", false).Count(&totalLiveClasses)

	// Get recent enrollments
	type RecentEnrollment struct {
		StudentName string    `json:"student_name"`
		CourseTitle string    `json:"course_title"`
		EnrolledAt  time.Time `json:"enrolled_at"`
	}

	var recentEnrollments []courseModels.Enrollment
	db.Where("is_deleted = ?", false).Order("created_at desc").Limit(5).Find(&recentEnrollments)

	recent := make([]RecentEnrollment, len(recentEnrollments))
	for i, e := range recentEnrollments {
		var student models.User
		var course courseModels.Course
		db.Where("id = ?", e.StudentID).First(&student)
		db.Where("id = ?", e.CourseID).First(&course)
		recent[i] = RecentEnrollment{
			StudentName: student.Username,
			CourseTitle: course.Title,
			EnrolledAt:  e.CreatedAt,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"stats": fiber.Map{
			"total_students":      totalStudents,
			"total_courses":       totalCourses,
			"published_courses":   publishedCourses,
			"total_enrollments":   totalEnrollments,
			"active_enrollments":  activeEnrollments,
			"expired_enrollments": totalEnrollments - activeEnrollments,
			"total_live_classes":  totalLiveClasses,
		},
		"recent_enrollments": recent,
	})
}

// countCreatedBetween counts rows of model created within [from, to),
// with optional extra filter.
func countCreatedBetween(model interface{}, from, to time.Time, filter string, args ...interface{}) int64 {
	var count int64
	db := database.Database.Db.Model(model).Where("created_at >= ? AND created_at < ?", from, to)
	if filter != "" {
		db = db.Where(filter, args...)
	}
	db.Count(&count)
	return count
}

// AdminDashboardTrends computes per-day creation counts for the
// trailing window, oldest first, zero-filled. Recomputed on every
// request, the client polls for fresh sparklines.
func AdminDashboardTrends(c *fiber.Ctx) error {
	windowDays := config.AppConfig.TrendWindowDays
	if days, ok := c.Locals("trendDays").(int); ok && days > 0 {
		windowDays = days
	}

	starts := utils.DayStarts(time.Now(), windowDays)

	days := make([]string, windowDays)
	students := make([]int64, windowDays)
	courses := make([]int64, windowDays)
	enrollments := make([]int64, windowDays)
	liveClasses := make([]int64, windowDays)

	for i := 0; i < windowDays; i++ {
		from, to := starts[i], starts[i+1]
		days[i] = from.Format("2006-01-02")
		students[i] = countCreatedBetween(&models.User{}, from, to, "role = ?", models.RoleStudent)
		courses[i] = countCreatedBetween(&courseModels.Course{}, from, to, "")
		enrollments[i] = countCreatedBetween(&courseModels.Enrollment{}, from, to, "")
		liveClasses[i] = countCreatedBetween(&courseModels.LiveClass{}, from, to, "")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard trends fetched successfully!", fiber.Map{
		"window_days":  windowDays,
		"days":         days,
		"students":     students,
		"courses":      courses,
		"enrollments":  enrollments,
		"live_classes": liveClasses,
	})
}

// AdminGetStudentProgress gets detailed progress for a student
func AdminGetStudentProgress(c *fiber.Ctx) error {
	studentID := c.Locals("studentID").(int)

	var student models.User
	if err := database.Database.Db.
		Where("id = ? AND role = ? AND is_deleted = ?", studentID, models.RoleStudent, false).
		First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.
		Where("student_id = ? AND is_deleted = ?", studentID, false).
		Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	type CourseProgress struct {
		CourseSlug       string    `json:"course_slug"`
		CourseTitle      string    `json:"course_title"`
		Status           string    `json:"status"`
		CompletedModules int64     `json:"completed_modules"`
		TotalModules     int64     `json:"total_modules"`
		QuizAttempts     int64     `json:"quiz_attempts"`
		EnrolledAt       time.Time `json:"enrolled_at"`
		ValidUntil       time.Time `json:"valid_until"`
	}

	progress := make([]CourseProgress, len(enrollments))
	for i, e := range enrollments {
		var course courseModels.Course
		database.Database.Db.Where("id = ?", e.CourseID).First(&course)

		var completed, attempts int64
		database.Database.Db.Model(&courseModels.ModuleCompletion{}).
			Where("enrollment_id = ?", e.ID).Count(&completed)
		database.Database.Db.Model(&courseModels.QuizAttempt{}).
			Where("enrollment_id = ?", e.ID).Count(&attempts)

		progress[i] = CourseProgress{
			CourseSlug:       course.Slug,
			CourseTitle:      course.Title,
			Status:           e.Status(),
			CompletedModules: completed,
			TotalModules:     moduleCount(course.ID),
			QuizAttempts:     attempts,
			EnrolledAt:       e.EnrollDate,
			ValidUntil:       e.ValidUntil,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student progress fetched successfully!", fiber.Map{
		"student": fiber.Map{
			"id":       student.ID,
			"username": student.Username,
			"email":    student.Email,
		},
		"course_progress": progress,
	})
}
