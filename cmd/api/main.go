package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-shop-api/internal/apperr"
	"go-shop-api/internal/gateway"
	"go-shop-api/internal/handler"
	"go-shop-api/internal/middleware"
	"go-shop-api/internal/model"
	"go-shop-api/internal/repository"
	"go-shop-api/internal/service"
	"go-shop-api/internal/ws"
	"go-shop-api/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.SizeProduct{},
		&model.Transaction{},
		&model.TransactionProduct{},
	)

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. External clients (built once, injected everywhere)
	payment := gateway.NewMidtransGateway(
		os.Getenv("MIDTRANS_SERVER_KEY"),
		os.Getenv("MIDTRANS_PRODUCTION") == "true",
	)
	uploader, err := gateway.NewCloudinaryUploader(os.Getenv("CLOUDINARY_URL"))
	if err != nil {
		log.Fatal("Failed to init cloudinary client: ", err)
	}

	// 5. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	productRepo := repository.NewProductRepo(db)
	sizeRepo := repository.NewSizeProductRepo(db)
	txRepo := repository.NewTransactionRepo(db)

	authService := service.NewAuthService(userRepo)
	catalogService := service.NewCatalogService(productRepo)
	checkoutService := service.NewCheckoutService(txRepo, userRepo, sizeRepo, payment, db)
	orderService := service.NewOrderService(txRepo, sizeRepo, db, wsHub)

	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	orderHandler := handler.NewOrderHandler(orderService)
	uploadHandler := handler.NewUploadHandler(uploader)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:      "Shop API v1.0",
		ErrorHandler: apperr.Handler,
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	app.Post("/admin/register", authHandler.RegisterAdmin)

	api := app.Group("/api")

	// ============ PUBLIC ROUTES ============
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Get("/products", catalogHandler.GetProducts)
	api.Get("/products/:id", catalogHandler.GetProduct)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth())

	protected.Post("/checkout", checkoutHandler.Checkout)
	protected.Post("/midtrans-token", checkoutHandler.GenerateToken)
	protected.Patch("/paid/:id", orderHandler.Paid)
	protected.Get("/histories", orderHandler.Histories)
	protected.Post("/upload", uploadHandler.Upload)

	// Admin catalog management
	protected.Post("/products", middleware.RequireRole(string(model.RoleAdmin)), catalogHandler.CreateProduct)
	protected.Put("/products/:id", middleware.RequireRole(string(model.RoleAdmin)), catalogHandler.UpdateProduct)

	// WebSocket Route (live stock feed)
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
