package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/catalog"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/config"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/domain/fiber/handler"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/middleware"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/model"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/repository"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/service"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return config.LoadAppConfig().Env == "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	cat, err := catalog.Load()
	if err != nil {
		log.Fatal("load catalog: ", err)
	}
	log.Printf("Catalog loaded with %d certifications", cat.Len())

	db := ConnectDB()

	cardRepo := repository.NewProfileCardRepository(db)

	var gemini service.TextGenerator
	if svc, err := service.NewGeminiService(ctx); err != nil {
		log.Println("AI explain disabled: ", err)
	} else {
		gemini = svc
	}

	recommendUC := usecase.NewRecommendUsecase(cat)
	cardUC := usecase.NewProfileCardUsecase(cardRepo, appConfig.BaseURL)
	explainUC := usecase.NewExplainUsecase(gemini)

	githubSvc := service.NewGitHubService()
	linkedinSvc := service.NewLinkedInService(service.NewHTTPProfileScraper())

	handler.NewRecommendHandler(recommendUC).RegisterRoutes(app)
	handler.NewProfileCardHandler(cardUC).RegisterRoutes(app)
	handler.NewEvalHandler(githubSvc, linkedinSvc).RegisterRoutes(app)
	handler.NewAIHandler(explainUC).RegisterRoutes(app)

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			log.Printf("Active goroutines: %d", runtime.NumGoroutine())
		}
	}()

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	if err := db.AutoMigrate(&model.ProfileCard{}); err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
