package userControllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	"log"

	"github.com/gofiber/fiber/v2"
)

// AdminListStudents lists all student accounts.
func AdminListStudents(c *fiber.Ctx) error {
	var students []models.User
	if err := database.Database.Db.
		Where("role = ? AND is_deleted = ?", models.RoleStudent, false).
		Order("created_at desc").Find(&students).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully!", students)
}

// AdminDeleteStudent soft-deletes a student account and revokes all of
// their sessions so the deletion is effective immediately.
func AdminDeleteStudent(c *fiber.Ctx) error {
	studentID := c.Locals("studentID").(int)

	var student models.User
	if err := database.Database.Db.
		Where("id = ? AND role = ? AND is_deleted = ?", studentID, models.RoleStudent, false).
		First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	if err := database.Database.Db.Model(&student).Update("is_deleted", true).Error; err != nil {
		log.Printf("Error deleting student: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete student!", nil)
	}

	if err := database.Database.Db.Delete(&models.Session{}, "user_id = ?", student.ID).Error; err != nil {
		log.Printf("Error revoking sessions for student %d: %v", student.ID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student deleted successfully!", nil)
}
