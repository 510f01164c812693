package controllers

import (
	"encoding/json"
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	courseValidator "lms/validators/course"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

// findActiveEnrollment loads the student's enrollment for a progress
// write, applying the lazy expiry policy: missing is 404, expired is
// 409. When ok is false the response has already been written.
func findActiveEnrollment(c *fiber.Ctx, studentID uint, slug string) (courseModels.Enrollment, courseModels.Course, bool) {
	course, err := findCourseBySlug(slug)
	if err != nil {
		middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		return courseModels.Enrollment{}, course, false
	}

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.
		Where("student_id = ? AND course_id = ? AND is_deleted = ?", studentID, course.ID, false).
		First(&enrollment).Error; err != nil {
		middleware.JsonResponse(c, fiber.StatusNotFound, false, "Not enrolled in this course!", nil)
		return enrollment, course, false
	}

	if enrollment.Status() == courseModels.StatusExpired {
		middleware.JsonResponse(c, fiber.StatusConflict, false, "Enrollment has expired!", nil)
		return enrollment, course, false
	}

	return enrollment, course, true
}

// MarkModuleComplete adds a module index to the student's completed set.
func MarkModuleComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Not authenticated!", nil)
	}

	reqData, ok := c.Locals("validatedProgress").(*courseValidator.ProgressRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	enrollment, course, ok := findActiveEnrollment(c, userID, reqData.CourseSlug)
	if !ok {
		return nil
	}

	moduleIndex := *reqData.ModuleIndex
	if int64(moduleIndex) >= moduleCount(course.ID) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module index out of range!", nil)
	}

	// Single atomic set-add: the unique (enrollment, module) index plus
	// DO NOTHING makes re-marking a no-op even under concurrent requests.
	completion := courseModels.ModuleCompletion{
		EnrollmentID: enrollment.ID,
		ModuleIndex:  moduleIndex,
	}
	if err := database.Database.Db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&completion).Error; err != nil {
		log.Printf("Error saving module completion: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark module complete!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module marked complete!", fiber.Map{
		"course_slug":  course.Slug,
		"module_index": moduleIndex,
	})
}

// RecordQuizAttempt appends a quiz attempt. Attempts are history, never
// overwritten.
func RecordQuizAttempt(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Not authenticated!", nil)
	}

	reqData, ok := c.Locals("validatedQuizAttempt").(*courseValidator.QuizAttemptRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	enrollment, course, ok := findActiveEnrollment(c, userID, reqData.CourseSlug)
	if !ok {
		return nil
	}

	moduleIndex := *reqData.ModuleIndex
	if int64(moduleIndex) >= moduleCount(course.ID) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module index out of range!", nil)
	}

	answersJSON, err := json.Marshal(reqData.Answers)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid answers payload!", nil)
	}

	attempt := courseModels.QuizAttempt{
		EnrollmentID: enrollment.ID,
		ModuleIndex:  moduleIndex,
		Score:        *reqData.Score,
		Answers:      answersJSON,
	}
	if err := database.Database.Db.Create(&attempt).Error; err != nil {
		log.Printf("Error saving quiz attempt: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record quiz attempt!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz attempt recorded!", attempt)
}

// GetMyEnrollments lists the session student's enrollments with status.
func GetMyEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Not authenticated!", nil)
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.
		Where("student_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	type EnrollmentWithCourse struct {
		courseModels.Enrollment
		Status      string `json:"status"`
		CourseSlug  string `json:"course_slug"`
		CourseTitle string `json:"course_title"`
	}

	result := make([]EnrollmentWithCourse, len(enrollments))
	for i, e := range enrollments {
		var course courseModels.Course
		database.Database.Db.Where("id = ?", e.CourseID).First(&course)
		result[i] = EnrollmentWithCourse{
			Enrollment:  e,
			Status:      e.Status(),
			CourseSlug:  course.Slug,
			CourseTitle: course.Title,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", result)
}
