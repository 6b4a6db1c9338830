package main

import (
	"log"
	"time"

	"github.com/FerasMahmoud/MustaqarRS-sub000/internal/application"
	"github.com/FerasMahmoud/MustaqarRS-sub000/internal/config"
	"github.com/FerasMahmoud/MustaqarRS-sub000/internal/email"
	"github.com/FerasMahmoud/MustaqarRS-sub000/internal/infrastructure/jsonstore"
	handlers "github.com/FerasMahmoud/MustaqarRS-sub000/internal/interfaces/http"
	"github.com/FerasMahmoud/MustaqarRS-sub000/internal/scheduler"
	services "github.com/FerasMahmoud/MustaqarRS-sub000/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	store, err := jsonstore.Open(cfg.DataFilePath)
	if err != nil {
		log.Fatalf("Error opening data file: %v", err)
	}
	log.Printf("Data file: %s", store.Path())

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
		ExposeHeaders:    "Content-Length",
		MaxAge:           86400,
	}))

	// Repositories
	studioRepo := jsonstore.NewStudioRepository(store)
	bookingRepo := jsonstore.NewBookingRepository(store)
	blockRepo := jsonstore.NewBlockRepository(store)
	galleryRepo := jsonstore.NewGalleryRepository(store)

	// Email client
	var emailClient *email.Client
	if cfg.EmailConfigured() {
		emailClient, err = email.NewClient(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPassword,
			cfg.SMTPFromName,
			cfg.SMTPFromEmail,
		)
		if err != nil {
			log.Printf("Warning: email client initialization failed: %v", err)
			emailClient = nil
		}
	} else {
		log.Println("SMTP not configured, confirmation emails disabled")
	}

	// S3 uploads
	var s3Service *services.S3Service
	if cfg.S3BucketName != "" {
		s3Service, err = services.NewS3Service(cfg.S3BucketName, cfg.S3Region)
		if err != nil {
			log.Printf("Warning: S3 initialization failed: %v", err)
			s3Service = nil
		}
	} else {
		log.Println("S3 bucket not configured, image uploads disabled")
	}

	// Services
	cache := application.NewBlockedDatesCache(5 * time.Minute)
	studioService := application.NewStudioService(studioRepo)
	availabilityService := application.NewAvailabilityService(bookingRepo, blockRepo, studioRepo, cfg.Engine, cache)
	bookingService := application.NewBookingService(bookingRepo, studioRepo, blockRepo, cfg.Engine, emailClient, cache)
	blockService := application.NewBlockService(blockRepo, studioRepo, cache)
	galleryService := application.NewGalleryService(galleryRepo, studioRepo)

	// The public booking form gets 5 submissions per IP per minute.
	bookingLimiter := application.NewRateLimiter(1*time.Minute, 5)

	// Handlers
	studioHandler := handlers.NewStudioHandler(studioService, availabilityService)
	bookingHandler := handlers.NewBookingHandler(bookingService, bookingLimiter)
	blockHandler := handlers.NewBlockHandler(blockService)
	galleryHandler := handlers.NewGalleryHandler(galleryService, s3Service)

	// Nightly sweep marking finished stays as completed.
	bookingScheduler := scheduler.NewBookingScheduler(bookingRepo)
	bookingScheduler.Start()
	defer bookingScheduler.Stop()

	api := app.Group("/api")

	studios := api.Group("/studios")
	studios.Get("/", studioHandler.GetStudios)
	studios.Get("/:id", studioHandler.GetStudio)
	studios.Get("/:id/availability", studioHandler.GetAvailability)
	studios.Get("/:id/blocked-dates", studioHandler.GetBlockedDates)
	studios.Get("/:id/quote", studioHandler.GetQuote)
	studios.Get("/:id/gallery", galleryHandler.GetStudioGallery)
	studios.Get("/:id/blocks", blockHandler.GetBlocks)
	studios.Post("/:id/blocks", blockHandler.CreateBlock)

	bookings := api.Group("/bookings")
	bookings.Post("/", bookingHandler.CreateBooking)
	bookings.Get("/", bookingHandler.GetBookingsInRange)
	bookings.Get("/:id", bookingHandler.GetBookingByID)
	bookings.Patch("/:id/status", bookingHandler.UpdateBookingStatus)
	bookings.Post("/:id/confirm", bookingHandler.ConfirmBooking)
	bookings.Post("/:id/cancel", bookingHandler.CancelBooking)

	api.Delete("/blocks/:id", blockHandler.DeleteBlock)
	api.Delete("/gallery/:id", galleryHandler.DeleteImage)

	upload := api.Group("/upload")
	upload.Post("/images", galleryHandler.UploadImage)

	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
