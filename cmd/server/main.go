package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"

	"github.com/opencatalog/metacat/internal/config"
	"github.com/opencatalog/metacat/internal/database"
	"github.com/opencatalog/metacat/internal/handlers"
	"github.com/opencatalog/metacat/internal/logger"
	"github.com/opencatalog/metacat/internal/middleware"
	"github.com/opencatalog/metacat/internal/repository"
	"github.com/opencatalog/metacat/internal/services"

	_ "github.com/opencatalog/metacat/docs/api" // Swagger docs
)

// @title MetaCat API
// @version 1.0.0
// @description Metadata catalog service: assets, feedback, governance, and valid values over a metadata repository
// @contact.name API Support
// @contact.url https://github.com/opencatalog/metacat

// @host localhost:3000
// @BasePath /api/v1
// @schemes http https

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.LogJSON)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	// Connect to the local metadata repository
	db, err := database.Connect(cfg, zl)
	if err != nil {
		zl.Fatalw("Failed to connect to database", "error", err)
	}
	defer func() { _ = database.Close(db) }()

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		zl.Fatalw("Failed to run migrations", "error", err)
	}

	repo := repository.NewGormMetadata(db, zl)
	svcs := services.New(cfg, repo, zl)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      cfg.ServerName,
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New(cfg.ServerName)
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health probe
	healthHandler := &handlers.HealthHandler{Health: svcs.Health}
	app.Get("/health", healthHandler.GetHealth)

	registerRoutes(app, svcs)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		zl.Info("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	zl.Infow("Starting server", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		zl.Fatalw("Failed to start server", "error", err)
	}

	zl.Info("Server stopped")
}

// registerRoutes wires the catalog API. Every route is scoped to a caller
// through the :userId path parameter.
func registerRoutes(app *fiber.App, svcs *services.Services) {
	assetHandler := &handlers.AssetHandler{Assets: svcs.Asset}
	feedbackHandler := &handlers.FeedbackHandler{Comments: svcs.Comment, Likes: svcs.Like, Ratings: svcs.Rating}
	tagHandler := &handlers.TagHandler{Tags: svcs.Tag}
	governanceHandler := &handlers.GovernanceHandler{Certifications: svcs.Certification, Licenses: svcs.License}
	infraHandler := &handlers.InfrastructureHandler{
		Endpoints:      svcs.Endpoint,
		ConnectorTypes: svcs.ConnectorType,
		Capabilities:   svcs.Capability,
	}
	knowledgeHandler := &handlers.KnowledgeHandler{
		Meanings:        svcs.Meaning,
		Locations:       svcs.Location,
		NoteLogs:        svcs.NoteLog,
		LastAttachments: svcs.LastAttachment,
		Referenceables:  svcs.Referenceable,
	}
	validValuesHandler := &handlers.ValidValuesHandler{ValidValues: svcs.ValidValues}

	api := app.Group("/api/v1")
	api.Use(middleware.VersionMiddleware())

	user := api.Group("/:userId", middleware.CallerIdentity())

	// Assets
	user.Post("/assets", assetHandler.AddAsset)
	user.Get("/assets/by-name/:name", assetHandler.GetAssetsByName)
	user.Get("/assets/:assetGUID", assetHandler.GetAsset)
	user.Put("/assets/:assetGUID", assetHandler.UpdateAsset)
	user.Delete("/assets/:assetGUID", assetHandler.RemoveAsset)

	// Referenceables and attachments
	user.Get("/referenceables/:guid", knowledgeHandler.GetReferenceable)
	user.Get("/referenceables/:guid/last-attachment", knowledgeHandler.GetLastAttachment)

	// Comments
	user.Post("/referenceables/:guid/comments", feedbackHandler.AddComment)
	user.Get("/referenceables/:guid/comments/count", feedbackHandler.CountComments)
	user.Get("/referenceables/:guid/comments", feedbackHandler.GetComments)
	user.Delete("/referenceables/:guid/comments/:commentGUID", feedbackHandler.RemoveComment)
	user.Post("/comments/:commentGUID/replies", feedbackHandler.AddCommentReply)
	user.Put("/comments/:commentGUID", feedbackHandler.UpdateComment)

	// Likes
	user.Post("/referenceables/:guid/likes", feedbackHandler.AddLike)
	user.Get("/referenceables/:guid/likes/count", feedbackHandler.CountLikes)
	user.Get("/referenceables/:guid/likes", feedbackHandler.GetLikes)
	user.Delete("/referenceables/:guid/likes", feedbackHandler.RemoveLike)

	// Ratings
	user.Post("/referenceables/:guid/ratings", feedbackHandler.AddRating)
	user.Get("/referenceables/:guid/ratings/count", feedbackHandler.CountRatings)
	user.Get("/referenceables/:guid/ratings", feedbackHandler.GetRatings)
	user.Delete("/referenceables/:guid/ratings", feedbackHandler.RemoveRating)

	// Tags
	user.Post("/tags", tagHandler.CreateTag)
	user.Get("/tags/by-name/:name", tagHandler.GetTagsByName)
	user.Get("/tags/:tagGUID", tagHandler.GetTag)
	user.Put("/tags/:tagGUID", tagHandler.UpdateTagDescription)
	user.Delete("/tags/:tagGUID", tagHandler.DeleteTag)
	user.Post("/referenceables/:guid/tags/:tagGUID", tagHandler.AttachTag)
	user.Delete("/referenceables/:guid/tags/:tagGUID", tagHandler.DetachTag)
	user.Get("/referenceables/:guid/tags/count", tagHandler.CountTags)
	user.Get("/referenceables/:guid/tags", tagHandler.GetTags)

	// Certifications and licenses
	user.Post("/referenceables/:guid/certifications", governanceHandler.AddCertification)
	user.Get("/referenceables/:guid/certifications/count", governanceHandler.CountCertifications)
	user.Get("/referenceables/:guid/certifications", governanceHandler.GetCertifications)
	user.Delete("/referenceables/:guid/certifications/:certificationGUID", governanceHandler.RemoveCertification)
	user.Put("/certifications/:certificationGUID", governanceHandler.UpdateCertification)
	user.Post("/referenceables/:guid/licenses", governanceHandler.AddLicense)
	user.Get("/referenceables/:guid/licenses/count", governanceHandler.CountLicenses)
	user.Get("/referenceables/:guid/licenses", governanceHandler.GetLicenses)
	user.Delete("/referenceables/:guid/licenses/:licenseGUID", governanceHandler.RemoveLicense)
	user.Put("/licenses/:licenseGUID", governanceHandler.UpdateLicense)

	// Endpoints, connector types, capabilities
	user.Post("/endpoints", infraHandler.SaveEndpoint)
	user.Get("/endpoints/by-name/:qualifiedName", infraHandler.GetEndpointByName)
	user.Get("/endpoints/:endpointGUID", infraHandler.GetEndpointByGUID)
	user.Delete("/endpoints/:endpointGUID", infraHandler.RemoveEndpoint)
	user.Post("/connector-types", infraHandler.SaveConnectorType)
	user.Get("/connector-types/by-name/:qualifiedName", infraHandler.GetConnectorTypeByName)
	user.Get("/connector-types/:connectorTypeGUID", infraHandler.GetConnectorTypeByGUID)
	user.Delete("/connector-types/:connectorTypeGUID", infraHandler.RemoveConnectorType)
	user.Post("/capabilities", infraHandler.SaveCapability)
	user.Get("/capabilities/by-name/:qualifiedName", infraHandler.GetCapabilityByName)
	user.Get("/capabilities/:capabilityGUID", infraHandler.GetCapabilityByGUID)

	// Meanings, locations, note logs
	user.Get("/meanings/by-name/:name", knowledgeHandler.GetMeaningsByName)
	user.Get("/meanings/:termGUID", knowledgeHandler.GetMeaning)
	user.Get("/referenceables/:guid/meanings", knowledgeHandler.GetMeanings)
	user.Get("/locations/by-name/:name", knowledgeHandler.GetLocationsByName)
	user.Get("/locations/:locationGUID", knowledgeHandler.GetLocation)
	user.Post("/referenceables/:guid/locations/:locationGUID", knowledgeHandler.AddLocation)
	user.Delete("/referenceables/:guid/locations/:locationGUID", knowledgeHandler.RemoveLocation)
	user.Get("/referenceables/:guid/locations/count", knowledgeHandler.CountLocations)
	user.Get("/referenceables/:guid/note-logs/count", knowledgeHandler.CountNoteLogs)
	user.Get("/referenceables/:guid/note-logs", knowledgeHandler.GetNoteLogs)
	user.Get("/note-logs/:noteLogGUID/notes/count", knowledgeHandler.CountNotes)
	user.Get("/note-logs/:noteLogGUID/notes", knowledgeHandler.GetNotes)

	// Valid values
	user.Post("/valid-values/sets", validValuesHandler.CreateValidValueSet)
	user.Post("/valid-values/sets/:setGUID/members/:validValueGUID", validValuesHandler.AttachToSet)
	user.Delete("/valid-values/sets/:setGUID/members/:validValueGUID", validValuesHandler.DetachFromSet)
	user.Get("/valid-values/sets/:setGUID/members", validValuesHandler.GetSetMembers)
	user.Post("/valid-values", validValuesHandler.CreateValidValueDefinition)
	user.Get("/valid-values/by-name/:name", validValuesHandler.GetValidValuesByName)
	user.Post("/valid-values/:validValueGUID/consumers/:consumerGUID", validValuesHandler.AssignToConsumer)
	user.Delete("/valid-values/:validValueGUID/consumers/:consumerGUID", validValuesHandler.UnassignFromConsumer)
	user.Get("/valid-values/:validValueGUID/consumers", validValuesHandler.GetConsumers)
	user.Get("/valid-values/:validValueGUID/sets", validValuesHandler.GetSetsForValue)
	user.Get("/valid-values/:validValueGUID", validValuesHandler.GetValidValue)
	user.Put("/valid-values/:validValueGUID", validValuesHandler.UpdateValidValue)
	user.Delete("/valid-values/:validValueGUID", validValuesHandler.DeleteValidValue)
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
	})
}
