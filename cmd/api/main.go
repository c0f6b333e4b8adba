package main

import (
	_ "backend/api/swagger" // swagger docs
	"backend/internal/catalog"
	"backend/internal/gemini"
	"backend/internal/handler"
	"backend/internal/idgen"
	"backend/internal/middleware"
	"backend/internal/repository"
	"backend/internal/service"
	"backend/pkg/logging"
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Resort Front Desk API
// @version         1.0
// @description     Guest registration, amenity and food billing, invoice settlement and the generative concierge for the resort front desk.
// @host            localhost:8080
// @BasePath        /
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		logging.InfoLogger.Println("No configs/.env file found or error loading it")
	}

	// Set up stores (guest collection owns every ledger; rooms seeded from
	// the static catalog)
	guestRepo := repository.NewGuestRepository()
	orderRepo := repository.NewFoodOrderRepository()
	roomRepo := repository.NewRoomRepository()
	roomRepo.Seed(context.Background(), catalog.Rooms())

	ids := idgen.NewUUIDProvider()

	// Concierge backend
	geminiTimeout := 30 * time.Second
	if raw := os.Getenv("GEMINI_TIMEOUT_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			geminiTimeout = time.Duration(secs) * time.Second
		}
	}
	geminiClient := gemini.NewHTTPClient(os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_BASE_URL"), geminiTimeout)

	// Set up dependencies (Repository -> Service -> Handler)
	guestService := service.NewGuestService(guestRepo, roomRepo, ids)
	orderService := service.NewOrderService(orderRepo, guestRepo, ids)
	billingService := service.NewBillingService(guestRepo)
	roomService := service.NewRoomService(roomRepo)
	statisticsService := service.NewStatisticsService(guestRepo, orderRepo, roomRepo)
	conciergeService := service.NewConciergeService(geminiClient)

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		service.SeedDemoData(context.Background(), guestService, orderService)
	}

	// Initialize Handlers
	guestHandler := handler.NewGuestHandler(guestService, billingService)
	orderHandler := handler.NewOrderHandler(orderService)
	catalogHandler := handler.NewCatalogHandler()
	roomHandler := handler.NewRoomHandler(roomService)
	statisticsHandler := handler.NewStatisticsHandler(statisticsService)
	conciergeHandler := handler.NewConciergeHandler(conciergeService)

	// Set up Gin Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	origins := []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		origins = strings.Split(raw, ",")
	}
	corsConfig.AllowOrigins = origins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// Register API Routes
	guestHandler.RegisterRoutes(router.Group(""))
	orderHandler.RegisterRoutes(router.Group(""))
	catalogHandler.RegisterRoutes(router.Group(""))
	roomHandler.RegisterRoutes(router.Group(""))
	statisticsHandler.RegisterRoutes(router.Group(""))
	conciergeHandler.RegisterRoutes(router.Group(""))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logging.InfoLogger.Printf("Server listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		logging.ErrorLogger.Fatalf("Server failed: %v", err)
	}
}
