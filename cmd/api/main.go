package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go-catalog-api/internal/handler"
	"go-catalog-api/internal/middleware"
	"go-catalog-api/internal/model"
	"go-catalog-api/internal/repository"
	"go-catalog-api/internal/service"
	"go-catalog-api/internal/ws"
	"go-catalog-api/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.User{}, &model.Category{}, &model.Product{})

	// 3. Seed default admin user
	seedAdmin(db)

	// 4. Setup WebSocket Hub for catalog change events
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	categoryService := service.NewCategoryService(categoryRepo, productRepo, wsHub)
	productService := service.NewProductService(productRepo, wsHub)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	productHandler := handler.NewProductHandler(productService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Catalog API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	adminEmails := splitEmails(os.Getenv("ADMIN_EMAILS"))
	requireAdminRole := middleware.RequireRoles("admin")

	// 7. Routes
	api := app.Group("/api/v1")

	// Category routes (reads public, mutations admin-only)
	categories := api.Group("/categories")
	categories.Get("/", categoryHandler.GetCategories)
	categories.Get("/:id", categoryHandler.GetCategory)
	categories.Post("/", middleware.RequireAuth(), requireAdminRole, categoryHandler.CreateCategory)
	categories.Put("/:id", middleware.RequireAuth(), requireAdminRole, categoryHandler.UpdateCategory)
	categories.Delete("/:id", middleware.RequireAuth(), requireAdminRole, categoryHandler.DeleteCategory)

	// Product routes (mutations gated by the configured admin allow-list)
	products := api.Group("/products")
	products.Get("/", productHandler.GetProducts)
	products.Get("/category/:categoryId", productHandler.GetProductsByCategory)
	products.Get("/:id", productHandler.GetProduct)
	products.Post("/", middleware.RequireAuth(), middleware.RequireAdminEmail(adminEmails), productHandler.CreateProduct)
	products.Put("/:id", middleware.RequireAuth(), middleware.RequireAdminEmail(adminEmails), productHandler.UpdateProduct)
	products.Delete("/:id", middleware.RequireAuth(), middleware.RequireAdminEmail(adminEmails), productHandler.DeleteProduct)

	// User routes (profile registered before :id so it doesn't get captured)
	users := api.Group("/users")
	users.Post("/", userHandler.Register)
	users.Post("/login", authHandler.Login)
	users.Get("/", userHandler.GetUsers)
	users.Get("/profile", middleware.RequireAuth(), userHandler.GetProfile)
	users.Get("/:id", userHandler.GetUser)
	users.Put("/:id", middleware.RequireAuth(), userHandler.UpdateUser)
	users.Delete("/:id", middleware.RequireAuth(), userHandler.DeleteUser)

	// WebSocket Route
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

func splitEmails(raw string) []string {
	var emails []string
	for _, e := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(e); trimmed != "" {
			emails = append(emails, trimmed)
		}
	}
	return emails
}

// seedAdmin creates the default admin user if it doesn't exist
func seedAdmin(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123!"
	}
	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Administrator"
	}

	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		return
	}

	admin := &model.User{
		Name:  name,
		Email: email,
	}
	if err := admin.SetPassword(password); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := db.Create(admin).Error; err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Printf("Admin user created: %s", email)
	}
}
