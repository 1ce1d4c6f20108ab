package main

import (
	"context"
	"log"

	"portal/backend/aigen"
	"portal/backend/config"
	"portal/backend/importer"
	"portal/backend/middleware"
	"portal/backend/routes"
	"portal/backend/session"
	"portal/backend/store"
	"portal/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Open the local store and bring the schema up to date
	st, err := store.Open(cfg)
	if err != nil {
		log.Fatalf("Cannot access local storage: %v", err)
	}

	// Restore the session once at startup; everything else goes through
	// the context's setters.
	sess := session.NewContext(session.NewStore(cfg.DataDir))

	// Initialize logger
	logger := utils.InitLogger()

	// External collaborators are optional; the portal runs without them.
	var gen aigen.Generator
	if cfg.GeminiAPIKey != "" {
		g, err := aigen.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("Error initializing study aid generator: %v", err)
		}
		gen = g
	}

	var src importer.Source
	if cfg.DriveCredentials != "" {
		d, err := importer.NewDrive(context.Background(), cfg.DriveCredentials)
		if err != nil {
			log.Fatalf("Error initializing drive import: %v", err)
		}
		src = d
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit: 50 * 1024 * 1024, // unit PDFs arrive as raw bodies
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, st, sess, cfg, gen, src)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
