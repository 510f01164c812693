package courseValidator

import (
	"lms/middleware"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CreateEnrollmentRequest is the validated admin enrollment body.
type CreateEnrollmentRequest struct {
	StudentID  uint   `json:"studentId"`
	CourseSlug string `json:"courseSlug"`
	ValidUntil string `json:"validUntil"` // RFC 3339
}

// ProgressRequest is the validated module-completion body.
type ProgressRequest struct {
	CourseSlug  string `json:"courseSlug"`
	ModuleIndex *int   `json:"moduleIndex"`
}

// QuizAttemptRequest is the validated quiz-attempt body.
type QuizAttemptRequest struct {
	CourseSlug  string        `json:"courseSlug"`
	ModuleIndex *int          `json:"moduleIndex"`
	Score       *int          `json:"score"`
	Answers     []interface{} `json:"answers"`
}

// CreateEnrollment validates the admin enrollment-creation body.
func CreateEnrollment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateEnrollmentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.StudentID == 0 {
			errors["studentId"] = "Student ID is required!"
		}
		if strings.TrimSpace(reqData.CourseSlug) == "" {
			errors["courseSlug"] = "Course slug is required!"
		}

		validUntil, err := time.Parse(time.RFC3339, reqData.ValidUntil)
		if err != nil {
			errors["validUntil"] = "Valid-until must be an RFC 3339 timestamp!"
		} else if !validUntil.After(time.Now()) {
			errors["validUntil"] = "Valid-until must be in the future!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnrollment", reqData)
		c.Locals("validUntil", validUntil)
		return c.Next()
	}
}

// ExtendEnrollment validates the enrollment id param and the new validity.
func ExtendEnrollment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		enrollmentID, err := strconv.Atoi(idStr)
		if err != nil || enrollmentID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment ID!", nil)
		}

		reqData := new(struct {
			ValidUntil string `json:"validUntil"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		validUntil, err := time.Parse(time.RFC3339, reqData.ValidUntil)
		if err != nil || !validUntil.After(time.Now()) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"validUntil": "Valid-until must be an RFC 3339 timestamp in the future!",
			})
		}

		c.Locals("enrollmentID", enrollmentID)
		c.Locals("validUntil", validUntil)
		return c.Next()
	}
}

// MarkModuleComplete validates the module-completion body. Range checking
// against the course's module list happens in the handler, where the
// course is loaded.
func MarkModuleComplete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.CourseSlug) == "" {
			errors["courseSlug"] = "Course slug is required!"
		}
		if reqData.ModuleIndex == nil || *reqData.ModuleIndex < 0 {
			errors["moduleIndex"] = "Module index must be zero or greater!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}

// RecordQuizAttempt validates the quiz-attempt body.
func RecordQuizAttempt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(QuizAttemptRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.CourseSlug) == "" {
			errors["courseSlug"] = "Course slug is required!"
		}
		if reqData.ModuleIndex == nil || *reqData.ModuleIndex < 0 {
			errors["moduleIndex"] = "Module index must be zero or greater!"
		}
		if reqData.Score == nil || *reqData.Score < 0 || *reqData.Score > 100 {
			errors["score"] = "Score must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuizAttempt", reqData)
		return c.Next()
	}
}
