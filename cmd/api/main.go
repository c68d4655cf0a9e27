package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-stockme/internal/authz"
	"go-stockme/internal/handler"
	"go-stockme/internal/middleware"
	"go-stockme/internal/model"
	"go-stockme/internal/repository"
	"go-stockme/internal/service"
	"go-stockme/pkg/database"

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
	db.AutoMigrate(&model.User{}, &model.Product{}, &model.Request{})

	// 3. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	requestRepo := repository.NewRequestRepo(db)
	userRepo := repository.NewUserRepo(db)

	catalogService := service.NewCatalogService(productRepo)
	requestService := service.NewRequestService(requestRepo, productRepo)
	authService := service.NewAuthService(userRepo)

	productHandler := handler.NewProductHandler(catalogService)
	requestHandler := handler.NewRequestHandler(requestService)
	authHandler := handler.NewAuthHandler(authService)

	// 4. Seed default users
	seedUsers(userRepo)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "StockMe API v1.0",
	})

	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true, "message": "StockMe API is running"})
	})

	// 6. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.RequireAuth(userRepo), authHandler.Me)

	// Catalog reads are public; a bearer token only widens visibility
	api.Get("/products", middleware.OptionalAuth(userRepo), productHandler.GetProducts)
	api.Get("/products/:id", productHandler.GetProduct)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Catalog writes (admin only, decided by the gate)
	protected.Post("/products", middleware.RequireRole(authz.ProductCreate), productHandler.CreateProduct)
	protected.Put("/products/:id", middleware.RequireRole(authz.ProductUpdate), productHandler.UpdateProduct)
	protected.Delete("/products/:id", middleware.RequireRole(authz.ProductDelete), productHandler.DeleteProduct)
	protected.Put("/products/:id/stock", middleware.RequireRole(authz.ProductSetStock), productHandler.UpdateStock)

	// Request workflow (ownership rules decided inside the service)
	protected.Get("/requests", requestHandler.GetRequests)
	protected.Post("/requests", requestHandler.CreateRequest)
	protected.Get("/requests/:id", requestHandler.GetRequest)
	protected.Put("/requests/:id", requestHandler.UpdateRequest)
	protected.Delete("/requests/:id", requestHandler.DeleteRequest)
	protected.Post("/requests/:id/cancel", requestHandler.CancelRequest)
	protected.Post("/requests/:id/approve", requestHandler.ApproveRequest)
	protected.Post("/requests/:id/reject", requestHandler.RejectRequest)

	// 7. Graceful Shutdown
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

// seedUsers creates the default admin and a demo staff account if absent
func seedUsers(userRepo repository.UserRepository) {
	seeds := []struct {
		name     string
		email    string
		password string
		role     authz.Role
	}{
		{"Administrator", "admin@stockme.local", "admin123", authz.RoleAdmin},
		{"Demo Staff", "staff@stockme.local", "staff123", authz.RoleStaff},
	}

	for _, seed := range seeds {
		if _, err := userRepo.FindByEmail(seed.email); err == nil {
			continue
		}

		user := &model.User{
			Name:  seed.name,
			Email: seed.email,
			Role:  seed.role,
		}
		if err := user.SetPassword(seed.password); err != nil {
			log.Printf("Warning: failed to hash password for %s: %v", seed.email, err)
			continue
		}
		if err := userRepo.Create(user); err != nil {
			log.Printf("Warning: failed to seed user %s: %v", seed.email, err)
		} else {
			log.Printf("Seeded user %s (%s)", seed.email, seed.role)
		}
	}
}
