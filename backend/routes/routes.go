package routes

import (
	"eduplus/backend/config"
	"eduplus/backend/controllers"
	"eduplus/backend/middleware"
	"eduplus/backend/session"
	"eduplus/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, sessions *session.Manager, log *utils.Logger) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return utils.OK(c, nil)
	})

	// Auth routes
	authController := controllers.NewAuthController(db, cfg, log)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg, sessions)
	adminMiddleware := middleware.AdminMiddleware()

	// Public course routes
	coursesController := controllers.NewCoursesController(db, cfg, log)
	catalogController := controllers.NewCatalogController(db, cfg, log)
	commentsController := controllers.NewCommentsController(db, cfg, log)
	progressController := controllers.NewProgressController(db, cfg, log)

	courses := app.Group("/api/courses")
	courses.Get("/", coursesController.ListCourses)
	courses.Get("/catalog", catalogController.SearchCourses)
	courses.Get("/:id", coursesController.GetCourseDetails)
	courses.Get("/:id/modules", coursesController.GetCourseModules)
	courses.Get("/:id/comments", commentsController.GetCourseComments)
	courses.Post("/:id/comments", authMiddleware, commentsController.AddCourseComment)

	// Progress routes
	courses.Get("/:id/progress", authMiddleware, progressController.GetProgress)
	courses.Post("/:id/progress/advance", authMiddleware, progressController.Advance)
	courses.Post("/:id/progress/reset", authMiddleware, progressController.ResetProgress)
	courses.Post("/:id/progress/:index/complete", authMiddleware, progressController.MarkCompleted)
	courses.Post("/:id/progress/:index/toggle", authMiddleware, progressController.ToggleCompleted)

	// User routes
	userController := controllers.NewUserController(db, cfg, sessions, log)
	membershipController := controllers.NewMembershipController(db, cfg, log)
	user := app.Group("/api/user", authMiddleware)
	user.Get("/profile", userController.GetProfile)
	user.Put("/profile", userController.UpdateProfile)
	user.Get("/courses", membershipController.GetUserCourses)
	user.Post("/courses/:id/enroll", membershipController.EnrollCourse)
	user.Post("/courses/:id/complete", membershipController.CompleteCourse)
	user.Post("/favorites/:id", membershipController.ToggleFavorite)

	// Admin routes
	adminController := controllers.NewAdminController(db, cfg, sessions, log)
	analyticsController := controllers.NewAnalyticsController(db, cfg, log)
	admin := app.Group("/api/admin", authMiddleware, adminMiddleware)
	admin.Get("/courses", adminController.ListCourses)
	admin.Post("/courses", adminController.CreateCourse)
	admin.Put("/courses/:id", adminController.UpdateCourse)
	admin.Delete("/courses/:id", adminController.DeleteCourse)
	admin.Get("/users", adminController.ListUsers)
	admin.Post("/users/admin", adminController.PromoteUser)
	admin.Delete("/users/:id", adminController.DeleteUser)
	admin.Get("/reports", analyticsController.GetReport)
	admin.Post("/seed", adminController.SeedCourses)
}
