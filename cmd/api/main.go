package main

import (
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go-products-api/internal/handler"
	"go-products-api/internal/middleware"
	"go-products-api/internal/model"
	"go-products-api/internal/repository"
	"go-products-api/internal/service"
	"go-products-api/internal/ws"
	"go-products-api/pkg/database"

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
	db.AutoMigrate(&model.User{}, &model.Privilege{}, &model.Role{}, &model.Product{})

	// 3. Seed default privileges, roles, and admin user
	seedPrivilegesRolesAndAdmin(db)

	// 4. Upload directory for product images
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	if err := os.MkdirAll(filepath.Join(uploadDir, "products"), 0o755); err != nil {
		log.Fatal("Failed to create upload directory: ", err)
	}

	// 5. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 6. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	productRepo := repository.NewProductRepo(db)

	authService := service.NewAuthService(userRepo)
	productService := service.NewProductService(productRepo, wsHub)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService, uploadDir)

	// 7. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Products API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 8. Routes
	api := app.Group("/api/v1")

	// Auth routes. Login is public; logout needs a live session and
	// accepts any method, matching the original behavior.
	auth := api.Group("/auth")
	auth.Get("/login", authHandler.LoginForm)
	auth.Post("/login", authHandler.Login)
	auth.All("/logout", middleware.RequireAuth(userRepo), authHandler.Logout)

	// Product routes: session plus the add privilege
	products := api.Group("/products", middleware.RequireAuth(userRepo))
	products.Get("/create", middleware.RequirePrivilege(model.PrivProductAdd), productHandler.CreateForm)
	products.Post("/create", middleware.RequirePrivilege(model.PrivProductAdd), productHandler.Create)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Attach(c)
		defer wsHub.Detach(c)

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 9. Graceful Shutdown
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

// seedPrivilegesRolesAndAdmin creates default privileges, roles, and admin user if they don't exist
func seedPrivilegesRolesAndAdmin(db *gorm.DB) {
	privilegeRepo := repository.NewPrivilegeRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	userRepo := repository.NewUserRepo(db)

	// 1. Seed privileges first
	if err := privilegeRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed privileges: %v", err)
	}

	// 2. Seed roles
	if err := roleRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed roles: %v", err)
	}

	// 3. Assign privileges to roles
	allPrivileges, _ := privilegeRepo.FindAll()

	// ADMIN gets all privileges
	adminRole, err := roleRepo.FindByCode(model.RoleAdmin)
	if err == nil && len(adminRole.Privileges) == 0 {
		db.Model(adminRole).Association("Privileges").Replace(allPrivileges)
		log.Println("ADMIN role assigned all privileges")
	}

	// VIEWER only sees the catalog
	viewerRole, err := roleRepo.FindByCode(model.RoleViewer)
	if err == nil && len(viewerRole.Privileges) == 0 {
		viewPrivileges, _ := privilegeRepo.FindByCodes([]string{"product:view"})
		db.Model(viewerRole).Association("Privileges").Replace(viewPrivileges)
		log.Println("VIEWER role assigned view privilege")
	}

	// 4. Create default admin user with ADMIN role
	_, err = userRepo.FindByUsername("admin")
	if err != nil {
		adminRole, err := roleRepo.FindByCode(model.RoleAdmin)
		if err != nil {
			log.Printf("Warning: ADMIN role missing, cannot seed admin user: %v", err)
			return
		}

		admin := &model.User{
			Username:   "admin",
			FullName:   "Administrator",
			RoleID:     &adminRole.ID,
			IsActive:   true,
			Privileges: adminRole.Privileges,
		}

		password := os.Getenv("ADMIN_PASSWORD")
		if password == "" {
			password = "admin123"
		}
		if err := admin.SetPassword(password); err != nil {
			log.Printf("Warning: Failed to hash admin password: %v", err)
			return
		}

		if err := userRepo.Create(admin); err != nil {
			log.Printf("Warning: Failed to create admin user: %v", err)
		} else {
			log.Println("Admin user created: admin (ADMIN)")
		}
	}
}
