package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/photoclientpro/photoclient-backend/internal/config"
	"github.com/photoclientpro/photoclient-backend/internal/handler"
	"github.com/photoclientpro/photoclient-backend/internal/middleware"
	"github.com/photoclientpro/photoclient-backend/internal/models"
	"github.com/photoclientpro/photoclient-backend/internal/notify"
	"github.com/photoclientpro/photoclient-backend/internal/repository"
	"github.com/photoclientpro/photoclient-backend/internal/service"
	"github.com/photoclientpro/photoclient-backend/pkg/database"
	"github.com/photoclientpro/photoclient-backend/pkg/email"
	"github.com/photoclientpro/photoclient-backend/pkg/logger"
	"github.com/photoclientpro/photoclient-backend/pkg/storage"
	"github.com/photoclientpro/photoclient-backend/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.LoadConfig()

	zapLogger, err := logger.New()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()

	db := database.NewDatabase()

	// Repositories
	clientRepo := repository.NewClientRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	deliverableRepo := repository.NewDeliverableRepository(db)
	commentRepo := repository.NewPhotoCommentRepository(db)
	workflowStateRepo := repository.NewWorkflowStateRepository(db)

	// Storage
	r2Storage, err := storage.NewR2Storage(cfg)
	if err != nil {
		log.Fatal("Failed to initialize R2 storage:", err)
	}

	buckets := map[models.FolderType]string{
		models.FolderReferences:     cfg.Buckets.References,
		models.FolderAllPhotos:      cfg.Buckets.AllPhotos,
		models.FolderSelectedPhotos: cfg.Buckets.SelectedPhotos,
		models.FolderFinalPhotos:    cfg.Buckets.FinalPhotos,
	}

	// Email service
	emailService := email.NewEmailService(zapLogger)

	// Change notifications, one hub per process
	hub := notify.NewHub()

	// Services
	cleaners := []service.ClientDataCleaner{deliverableRepo, commentRepo, workflowStateRepo}
	clientService := service.NewClientService(clientRepo, packageRepo, cleaners, r2Storage, buckets, hub, zapLogger)
	packageService := service.NewPackageService(packageRepo)
	folderService := service.NewFolderService(clientRepo, packageRepo, r2Storage, buckets, hub, zapLogger)
	deliverableService := service.NewDeliverableService(deliverableRepo, clientRepo, packageRepo, hub, emailService, zapLogger)
	commentService := service.NewCommentService(commentRepo, clientRepo, folderService, zapLogger)
	workflowService := service.NewWorkflowService(clientRepo, packageRepo, deliverableRepo, workflowStateRepo, folderService, hub, zapLogger)

	validator := utils.NewValidator()

	// Handlers
	handler.SetLogger(zapLogger)
	clientHandler := handler.NewClientHandler(clientService, validator)
	packageHandler := handler.NewPackageHandler(packageService)
	folderHandler := handler.NewFolderHandler(folderService, validator)
	workflowHandler := handler.NewWorkflowHandler(workflowService, validator)
	deliverableHandler := handler.NewDeliverableHandler(deliverableService)
	commentHandler := handler.NewCommentHandler(commentService, validator)

	// Router
	app := fiber.New(fiber.Config{
		BodyLimit: 200 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     getAllowedOrigins(),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE",
		AllowCredentials: true,
	}))
	app.Use(fiberLogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api := app.Group("/api")

	// Shared (client-facing) routes, no auth. Mutations are limited to
	// deliverable approval and photo comments.
	shared := api.Group("/shared/clients/:id")
	shared.Get("/", clientHandler.GetSharedClient)
	shared.Get("/workflow", workflowHandler.GetSharedChecklist)
	shared.Get("/deliverables", deliverableHandler.ListSharedDeliverables)
	shared.Post("/deliverables/:name/approve", deliverableHandler.ApproveShared)
	shared.Get("/folders/:folderType/files", folderHandler.ListSharedFiles)
	shared.Get("/folders/:folderType/download", folderHandler.DownloadSharedFile)
	shared.Get("/comments", commentHandler.ListComments)
	shared.Post("/comments", commentHandler.AddComment)

	// Photographer routes
	api.Use(middleware.AuthMiddleware())

	api.Get("/packages", packageHandler.GetAllPackages)
	api.Get("/packages/:id", packageHandler.GetPackage)

	api.Get("/clients", clientHandler.ListClients)
	api.Get("/clients/categorized", clientHandler.CategorizedClients)
	api.Post("/clients", clientHandler.CreateClient)
	api.Get("/clients/:id", clientHandler.GetClient)
	api.Patch("/clients/:id", clientHandler.UpdateClient)
	api.Delete("/clients/:id", clientHandler.DeleteClient)

	api.Get("/clients/:id/folders/:folderType/files", folderHandler.ListFiles)
	api.Post("/clients/:id/folders/:folderType/files", folderHandler.UploadFiles)
	api.Get("/clients/:id/folders/:folderType/download", folderHandler.DownloadFile)
	api.Delete("/clients/:id/folders/:folderType/files", folderHandler.DeleteFile)
	api.Post("/clients/:id/folders/move", folderHandler.MoveFiles)

	api.Get("/clients/:id/workflow", workflowHandler.GetChecklist)
	api.Post("/clients/:id/workflow/toggle", workflowHandler.ToggleItem)

	api.Get("/clients/:id/deliverables", deliverableHandler.ListDeliverables)
	api.Post("/clients/:id/deliverables/:name/submit", deliverableHandler.SubmitForReview)
	api.Post("/clients/:id/deliverables/:name/approve", deliverableHandler.Approve)
	api.Post("/clients/:id/deliverables/:name/request-revisions", deliverableHandler.RequestRevisions)

	api.Get("/clients/:id/comments", commentHandler.ListComments)
	api.Post("/clients/:id/comments", commentHandler.AddComment)
	api.Post("/clients/:id/comments/resolve", commentHandler.ResolveComments)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Fatal(app.Listen(":" + port))
}

func getAllowedOrigins() string {
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		return origins
	}
	return "http://localhost:5173"
}
