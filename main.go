package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"hometrack/internal/config"
	"hometrack/internal/graph"
	"hometrack/internal/repositories"
	"hometrack/internal/services"
	"hometrack/pkg/mongodb"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Error loading configuration: %v", err)
		return
	}

	// --- Connect to MongoDB ---
	// A connection failure is logged and halts further startup; the server
	// does not start without its store.
	ctx := context.Background()
	mongoClient, err := mongodb.NewClient(ctx, mongodb.Config{
		URI:      cfg.MongoURI,
		Database: cfg.MongoDatabase,
	})
	if err != nil {
		log.Printf("Error starting the server or connecting to MongoDB: %v", err)
		return
	}
	defer func() {
		if err := mongoClient.Close(context.Background()); err != nil {
			log.Printf("Error during MongoDB disconnect: %v", err)
		}
	}()

	// --- Initialize Repositories ---
	userRepo := repositories.NewMongoUserRepository(mongoClient.Database())
	calculationRepo := repositories.NewMongoCalculationRepository(mongoClient.Database())
	propertyRepo := repositories.NewMongoPropertyRepository(mongoClient.Database())

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("Error ensuring indexes: %v", err)
		return
	}

	// --- Initialize Services ---
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	mortgageService := services.NewMortgageService(calculationRepo, userRepo)
	propertyService := services.NewPropertyService(propertyRepo, userRepo)

	// --- Build the GraphQL schema ---
	resolver := graph.NewResolver(authService, mortgageService, propertyService)
	schema, err := graph.NewSchema(resolver)
	if err != nil {
		log.Printf("Error building GraphQL schema: %v", err)
		return
	}

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger

	// --- Routes ---
	// The GraphQL handler is a net/http handler, mounted through the
	// adaptor middleware. No other routes and no auth middleware: tokens
	// are issued by the mutations but never required by any operation.
	app.All("/graphql", adaptor.HTTPHandler(graph.NewHandler(&schema)))

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
