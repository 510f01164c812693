package courseValidator

import (
	"lms/middleware"
	courseModels "lms/models/course"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CourseRequest is the validated course create/update body.
type CourseRequest struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// ModuleRequest is the validated module create/update body.
type ModuleRequest struct {
	Title     string   `json:"title"`
	VideoRefs []string `json:"videoRefs"`
	DocRefs   []string `json:"docRefs"`
	QuizRef   string   `json:"quizRef"`
}

// LiveClassRequest is the validated live-class body.
type LiveClassRequest struct {
	Topic       string `json:"topic"`
	StartsAt    string `json:"startsAt"` // RFC 3339
	MeetingLink string `json:"meetingLink"`
}

func isValidSlug(slug string) bool {
	if slug == "" {
		return false
	}
	for _, r := range slug {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return false
		}
	}
	return true
}

// CourseSlug validates the :slug route param.
func CourseSlug() fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := strings.TrimSpace(c.Params("slug"))
		if !isValidSlug(slug) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course slug!", nil)
		}

		c.Locals("courseSlug", slug)
		return c.Next()
	}
}

// CreateCourse validates the admin course-creation body.
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Slug = strings.TrimSpace(reqData.Slug)
		reqData.Type = strings.ToUpper(strings.TrimSpace(reqData.Type))
		if reqData.Type == "" {
			reqData.Type = courseModels.TypeStandalone
		}

		errors := make(map[string]string)

		if !isValidSlug(reqData.Slug) {
			errors["slug"] = "Slug must contain only lowercase letters, digits and hyphens!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.Type != courseModels.TypeStandalone && reqData.Type != courseModels.TypeWithMBA {
			errors["type"] = "Type must be STANDALONE or WITH_MBA!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validates the admin course-update body. Slug comes from
// the route, not the body.
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := strings.TrimSpace(c.Params("slug"))
		if !isValidSlug(slug) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course slug!", nil)
		}

		reqData := new(CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Type = strings.ToUpper(strings.TrimSpace(reqData.Type))

		errors := make(map[string]string)

		if reqData.Type != "" && reqData.Type != courseModels.TypeStandalone && reqData.Type != courseModels.TypeWithMBA {
			errors["type"] = "Type must be STANDALONE or WITH_MBA!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseSlug", slug)
		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CreateModule validates the admin module-creation body.
func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := strings.TrimSpace(c.Params("slug"))
		if !isValidSlug(slug) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course slug!", nil)
		}

		reqData := new(ModuleRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Title) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"title": "Title is required!"})
		}

		c.Locals("courseSlug", slug)
		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// ModuleIndexParam validates the :index route param for module routes.
func ModuleIndexParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := strings.TrimSpace(c.Params("slug"))
		if !isValidSlug(slug) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course slug!", nil)
		}

		indexStr := strings.TrimSpace(c.Params("index"))
		index, err := strconv.Atoi(indexStr)
		if err != nil || index < 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module index!", nil)
		}

		c.Locals("courseSlug", slug)
		c.Locals("moduleIndex", index)
		return c.Next()
	}
}

// CreateLiveClass validates the admin live-class body.
func CreateLiveClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := strings.TrimSpace(c.Params("slug"))
		if !isValidSlug(slug) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course slug!", nil)
		}

		reqData := new(LiveClassRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Topic) == "" {
			errors["topic"] = "Topic is required!"
		}

		startsAt, err := time.Parse(time.RFC3339, reqData.StartsAt)
		if err != nil {
			errors["startsAt"] = "Starts-at must be an RFC 3339 timestamp!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseSlug", slug)
		c.Locals("validatedLiveClass", reqData)
		c.Locals("startsAt", startsAt)
		return c.Next()
	}
}

// TrendQuery validates the optional ?days query for dashboard trends.
func TrendQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		days := c.QueryInt("days", 0)
		if days < 0 || days > 90 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Days must be between 1 and 90!", nil)
		}

		c.Locals("trendDays", days)
		return c.Next()
	}
}

// StudentIDParam validates the :id route param for admin student routes.
func StudentIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		studentID, err := strconv.Atoi(idStr)
		if err != nil || studentID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student ID!", nil)
		}

		c.Locals("studentID", studentID)
		return c.Next()
	}
}
