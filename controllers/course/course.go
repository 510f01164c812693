package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// findCourseBySlug loads an undeleted course by slug.
func findCourseBySlug(slug string) (courseModels.Course, error) {
	var course courseModels.Course
	err := database.Database.Db.Where("slug = ? AND is_deleted = ?", slug, false).First(&course).Error
	return course, err
}

// moduleCount returns the number of undeleted modules in a course,
// which is also the exclusive upper bound for module indices.
func moduleCount(courseID uint) int64 {
	var count int64
	database.Database.Db.Model(&courseModels.Module{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).Count(&count)
	return count
}

// GetAllCourses lists published courses for students.
func GetAllCourses(c *fiber.Ctx) error {
	var courses []courseModels.Course
	if err := database.Database.Db.
		Where("is_published = ? AND is_deleted = ?", true, false).
		Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetCourseDetails returns one course with its modules and live classes.
func GetCourseDetails(c *fiber.Ctx) error {
	slug := c.Locals("courseSlug").(string)

	course, err := findCourseBySlug(slug)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	role, _ := c.Locals("role").(string)
	if !course.IsPublished && role != models.RoleAdmin && role != models.RoleTeacher {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var modules []courseModels.Module
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", course.ID, false).
		Order("order_index asc").Find(&modules)

	var liveClasses []courseModels.LiveClass
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", course.ID, false).
		Order("starts_at asc").Find(&liveClasses)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":       course,
		"modules":      modules,
		"live_classes": liveClasses,
	})
}

// GetMyProgress returns the session student's progress in a course.
// Expired enrollments stay readable, only writes are rejected.
func GetMyProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Not authenticated!", nil)
	}

	slug := c.Locals("courseSlug").(string)

	course, err := findCourseBySlug(slug)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.
		Where("student_id = ? AND course_id = ? AND is_deleted = ?", userID, course.ID, false).
		First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Not enrolled in this course!", nil)
	}

	var completions []courseModels.ModuleCompletion
	database.Database.Db.Where("enrollment_id = ?", enrollment.ID).
		Order("module_index asc").Find(&completions)

	completedIndices := make([]int, len(completions))
	for i, completion := range completions {
		completedIndices[i] = completion.ModuleIndex
	}

	var attempts []courseModels.QuizAttempt
	database.Database.Db.Where("enrollment_id = ?", enrollment.ID).
		Order("created_at asc").Find(&attempts)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"course_slug":       course.Slug,
		"status":            enrollment.Status(),
		"valid_until":       enrollment.ValidUntil,
		"completed_modules": completedIndices,
		"total_modules":     moduleCount(course.ID),
		"quiz_attempts":     attempts,
	})
}
