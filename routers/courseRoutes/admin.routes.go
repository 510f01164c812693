package courseRoutes

import (
	controllers "lms/controllers/course"
	userControllers "lms/controllers/userControllers"
	"lms/middleware"
	"lms/models"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up all admin management routes
func SetupAdminRoutes(app *fiber.App) {
	adminOnly := []fiber.Handler{middleware.SessionMiddleware, middleware.RequireRoles(models.RoleAdmin)}

	// Enrollment management
	enrollGroup := app.Group("/admin/enrollments", adminOnly...)
	enrollGroup.Post("/", validators.CreateEnrollment(), controllers.AdminCreateEnrollment)
	enrollGroup.Get("/", controllers.AdminListEnrollments)
	enrollGroup.Patch("/:id/extend", validators.ExtendEnrollment(), controllers.AdminExtendEnrollment)

	// Course CRUD
	courseGroup := app.Group("/admin/course", adminOnly...)
	courseGroup.Post("/create", validators.CreateCourse(), controllers.AdminCreateCourse)
	courseGroup.Get("/list", controllers.AdminListCourses)
	courseGroup.Put("/:slug", validators.UpdateCourse(), controllers.AdminUpdateCourse)
	courseGroup.Delete("/:slug", validators.CourseSlug(), controllers.AdminDeleteCourse)
	courseGroup.Post("/:slug/publish", validators.CourseSlug(), controllers.AdminPublishCourse)

	// Module management
	courseGroup.Post("/:slug/module", validators.CreateModule(), controllers.AdminCreateModule)
	courseGroup.Get("/:slug/modules", validators.CourseSlug(), controllers.AdminListModules)
	courseGroup.Put("/:slug/module/:index", validators.ModuleIndexParam(), controllers.AdminUpdateModule)
	courseGroup.Delete("/:slug/module/:index", validators.ModuleIndexParam(), controllers.AdminDeleteModule)

	// Live classes
	courseGroup.Post("/:slug/live-class", validators.CreateLiveClass(), controllers.AdminCreateLiveClass)
	courseGroup.Get("/:slug/live-classes", validators.CourseSlug(), controllers.AdminListLiveClasses)

	// Student management
	studentGroup := app.Group("/admin/students", adminOnly...)
	studentGroup.Get("/", userControllers.AdminListStudents)
	studentGroup.Get("/:id/progress", validators.StudentIDParam(), controllers.AdminGetStudentProgress)
	studentGroup.Delete("/:id", validators.StudentIDParam(), userControllers.AdminDeleteStudent)

	// Dashboard
	dashGroup := app.Group("/admin/dashboard", adminOnly...)
	dashGroup.Get("/stats", controllers.AdminDashboardStats)
	dashGroup.Get("/trends", validators.TrendQuery(), controllers.AdminDashboardTrends)
}
