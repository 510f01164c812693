package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	"lms/models"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all student-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Published course catalog, any authenticated user
	courseGroup.Get("/list", middleware.SessionMiddleware, controllers.GetAllCourses)
	courseGroup.Get("/:slug", middleware.SessionMiddleware, validators.CourseSlug(), controllers.GetCourseDetails)

	// Progress, students only
	courseGroup.Get("/:slug/progress",
		middleware.SessionMiddleware, middleware.RequireRoles(models.RoleStudent),
		validators.CourseSlug(), controllers.GetMyProgress)

	enrollmentGroup := app.Group("/enrollments",
		middleware.SessionMiddleware, middleware.RequireRoles(models.RoleStudent))
	enrollmentGroup.Post("/complete", validators.MarkModuleComplete(), controllers.MarkModuleComplete)
	enrollmentGroup.Post("/quiz-attempt", validators.RecordQuizAttempt(), controllers.RecordQuizAttempt)

	userGroup := app.Group("/user",
		middleware.SessionMiddleware, middleware.RequireRoles(models.RoleStudent))
	userGroup.Get("/enrollments", controllers.GetMyEnrollments)
}
