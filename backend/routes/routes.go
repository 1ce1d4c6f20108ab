package routes

import (
	"portal/backend/aigen"
	"portal/backend/config"
	"portal/backend/controllers"
	"portal/backend/importer"
	"portal/backend/middleware"
	"portal/backend/session"
	"portal/backend/store"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, st *store.Store, sess *session.Context, cfg *config.Config, gen aigen.Generator, src importer.Source) {
	// Auth routes
	authController := controllers.NewAuthController(st, sess, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)
	app.Post("/api/auth/logout", authController.Logout)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)

	// User routes
	userController := controllers.NewUserController(st, sess, cfg)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)
	app.Put("/api/user/profile", authMiddleware, userController.UpdateProfile)

	// Document routes
	documentsController := controllers.NewDocumentsController(st, cfg)
	app.Put("/api/courses/:courseId/units/:unit/document", authMiddleware, documentsController.Upload)
	app.Get("/api/courses/:courseId/units/:unit/document", authMiddleware, documentsController.Download)
	app.Delete("/api/courses/:courseId/units/:unit/document", authMiddleware, documentsController.Delete)
	app.Get("/api/documents/keys", authMiddleware, documentsController.ListKeys)
	app.Delete("/api/documents", authMiddleware, documentsController.ClearAll)

	// Per-course routes: notes, progress, media links
	coursesController := controllers.NewCoursesController(st, cfg)
	courses := app.Group("/api/courses", authMiddleware)
	courses.Put("/:courseId/note", coursesController.SaveNote)
	courses.Get("/:courseId/note", coursesController.GetNote)
	courses.Delete("/:courseId/note", coursesController.DeleteNote)
	courses.Put("/:courseId/progress", coursesController.SaveProgress)
	courses.Get("/:courseId/progress", coursesController.GetProgress)
	courses.Get("/:courseId/media", coursesController.GetMediaLink)
	courses.Put("/:courseId/media", coursesController.SetMediaLink)

	// Shared resources
	resourcesController := controllers.NewResourcesController(st, cfg)
	app.Post("/api/resources", authMiddleware, resourcesController.Share)
	app.Get("/api/resources", authMiddleware, resourcesController.List)

	// Direct messages
	messagesController := controllers.NewMessagesController(st, cfg)
	app.Post("/api/messages", authMiddleware, messagesController.Send)
	app.Get("/api/messages", authMiddleware, messagesController.ListMine)
	app.Put("/api/messages/:id/read", authMiddleware, messagesController.MarkRead)

	// Aggregate stats
	statsController := controllers.NewStatsController(st, cfg)
	app.Post("/api/stats/:name/increment", authMiddleware, statsController.Increment)
	app.Get("/api/stats/:name", authMiddleware, statsController.Get)

	// AI study aids
	studyAidsController := controllers.NewStudyAidsController(st, gen, cfg)
	courses.Post("/:courseId/study-aids", studyAidsController.Generate)

	// Mail/drive import
	importController := controllers.NewImportController(st, src, cfg)
	app.Get("/api/import/attachments", authMiddleware, importController.ListAttachments)
	app.Post("/api/import/:id", authMiddleware, importController.ImportAttachment)
}
