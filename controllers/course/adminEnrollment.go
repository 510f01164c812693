package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"
	courseValidator "lms/validators/course"
	"log"
	"time"

	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateEnrollment enrolls a student in a course. One enrollment
// per (student, course) pair; the store has no such constraint so the
// uniqueness check lives here.
func AdminCreateEnrollment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedEnrollment").(*courseValidator.CreateEnrollmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	validUntil := c.Locals("validUntil").(time.Time)

	// The store enforces no referential integrity, so both references
	// are validated here before the row is written.
	var student models.User
	if err := database.Database.Db.
		Where("id = ? AND role = ? AND is_deleted = ?", reqData.StudentID, models.RoleStudent, false).
		First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	course, err := findCourseBySlug(reqData.CourseSlug)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var existing courseModels.Enrollment
	if err := database.Database.Db.
		Where("student_id = ? AND course_id = ? AND is_deleted = ?", student.ID, course.ID, false).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Student already enrolled in this course!", nil)
	}

	enrollment := courseModels.Enrollment{
		StudentID:  student.ID,
		CourseID:   course.ID,
		EnrollDate: time.Now(),
		ValidUntil: validUntil,
	}

	if err := database.Database.Db.Create(&enrollment).Error; err != nil {
		log.Printf("Error creating enrollment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create enrollment!", nil)
	}

	go utils.SendEnrollmentEmail(student.Email, student.Username, course.Title)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrollment created successfully!", enrollment)
}

// AdminListEnrollments lists all enrollments with student and course info.
func AdminListEnrollments(c *fiber.Ctx) error {
	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.
		Where("is_deleted = ?", false).
		Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	type EnrollmentWithDetails struct {
		courseModels.Enrollment
		Status       string `json:"status"`
		StudentName  string `json:"student_name"`
		StudentEmail string `json:"student_email"`
		CourseSlug   string `json:"course_slug"`
		CourseTitle  string `json:"course_title"`
	}

	result := make([]EnrollmentWithDetails, len(enrollments))
	for i, e := range enrollments {
		var student models.User
		var course courseModels.Course
		database.Database.Db.Where("id = ?", e.StudentID).First(&student)
		database.Database.Db.Where("id = ?", e.CourseID).First(&course)
		result[i] = EnrollmentWithDetails{
			Enrollment:   e,
			Status:       e.Status(),
			StudentName:  student.Username,
			StudentEmail: student.Email,
			CourseSlug:   course.Slug,
			CourseTitle:  course.Title,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", result)
}

// AdminExtendEnrollment moves an enrollment's validity forward, which
// also reactivates an expired enrollment.
func AdminExtendEnrollment(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentID").(int)
	validUntil := c.Locals("validUntil").(time.Time)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ?", enrollmentID, false).
		First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	if err := database.Database.Db.Model(&enrollment).Update("valid_until", validUntil).Error; err != nil {
		log.Printf("Error extending enrollment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to extend enrollment!", nil)
	}

	enrollment.ValidUntil = validUntil
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment extended successfully!", fiber.Map{
		"enrollment": enrollment,
		"status":     enrollment.Status(),
	})
}
