package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/jackc/pgx/v5/stdlib"

	"handcrafted-haven/internal/api"
	"handcrafted-haven/internal/events"
	"handcrafted-haven/internal/repository"
	"handcrafted-haven/internal/service"
	"handcrafted-haven/internal/session"
	"handcrafted-haven/internal/storage"
	"handcrafted-haven/internal/tracing"
	_ "handcrafted-haven/migrations"
)

func main() {
	if err := godotenv.Load(".env.dev"); err != nil {
		fmt.Println("No .env.dev file found, reading from environment variables provided by Docker")
	}

	api.SetupGlobalLogger("handcrafted-haven")

	shutdownTracer, err := tracing.InitTracerProvider("handcrafted-haven")
	if err != nil {
		log.Fatalf("Failed to initialize OpenTelemetry: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Error shutting down tracer provider: %v", err)
		}
	}()

	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		handleMigrations()
		return
	}

	db := connectDB()
	defer db.Close()

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("SESSION_SECRET environment variable is not set")
	}
	sessions := session.NewManager([]byte(sessionSecret), os.Getenv("APP_ENV") == "production")

	var publisher events.EventPublisher = events.NoopPublisher{}
	natsURL := os.Getenv("NATS_URL")
	if natsURL != "" {
		publisher, err = events.NewNatsPublisher(natsURL)
		if err != nil {
			slog.Warn("Failed to connect to NATS, lifecycle events disabled", "error", err)
			publisher = events.NoopPublisher{}
		}
	}

	presigner, err := storage.NewImagePresigner()
	if err != nil {
		log.Fatalf("Failed to configure image storage: %v", err)
	}

	artisanRepo := repository.NewPostgresArtisanRepository(db)
	categoryRepo := repository.NewPostgresCategoryRepository(db)
	productRepo := repository.NewPostgresProductRepository(db)
	eventRepo := repository.NewPostgresEventRepository(db)

	authService := service.NewAuthService(artisanRepo, publisher)
	productService := service.NewProductService(productRepo, categoryRepo, publisher)
	catalogService := service.NewCatalogService(artisanRepo, categoryRepo, productRepo, eventRepo)

	authHandler := api.NewAuthHandler(authService, sessions)
	productHandler := api.NewProductHandler(productService, sessions)
	catalogHandler := api.NewCatalogHandler(catalogService)
	uploadHandler := api.NewUploadHandler(presigner, sessions)

	app := fiber.New()
	app.Use(otelfiber.Middleware())
	app.Use(api.PrometheusMiddleware())
	app.Use(api.RouteGuard())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "handcrafted-haven"})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)
	app.Post("/logout", authHandler.Logout)

	app.Get("/products/featured", productHandler.Featured)
	app.Get("/products", productHandler.List)
	app.Get("/products/:id", productHandler.Get)
	app.Get("/categories", catalogHandler.Categories)
	app.Get("/artisans", catalogHandler.Artisans)
	app.Get("/artisans/:id", catalogHandler.ArtisanGallery)
	app.Get("/events", catalogHandler.UpcomingEvents)

	dashboard := app.Group("/dashboard")
	dashboard.Get("/me", authHandler.Me)
	dashboard.Get("/products", productHandler.MyProducts)
	dashboard.Get("/products/:id", productHandler.GetOwned)
	dashboard.Post("/products", productHandler.Create)
	dashboard.Put("/products/:id", productHandler.Update)
	dashboard.Delete("/products/:id", productHandler.Delete)
	dashboard.Post("/uploads", uploadHandler.Presign)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Listening handcrafted-haven on port %s", port)
	log.Fatal(app.Listen(":" + port))
}

func connectDB() *sqlx.DB {
	db, err := sqlx.Connect("pgx", databaseURL())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Successfully connected to the database.")
	return db
}

func databaseURL() string {
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPassword, dbHost, dbPort, dbName,
	)
}

func handleMigrations() {
	fmt.Println("Running database migrations...")

	db, err := sql.Open("pgx", databaseURL())
	if err != nil {
		log.Fatalf("failed to connect to database for migration: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("failed to set goose dialect: %v", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		log.Fatalf("goose: failed to run migrations: %v", err)
	}

	fmt.Println("Migrations applied successfully!")
}
