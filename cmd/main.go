package main

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"rentfolio/internal/config"
	"rentfolio/internal/handlers"
	"rentfolio/internal/middleware"
	"rentfolio/internal/repositories"
	"rentfolio/internal/services"
	"rentfolio/pkg/database"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("configuration error: %v", err)
	}

	pool, err := database.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	logoSvc, err := services.NewLogoService(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioUseSSL, cfg.MinioBucket)
	if err != nil {
		logrus.Fatalf("failed to initialize logo storage: %v", err)
	}
	if err := logoSvc.EnsureBucketExists(context.Background()); err != nil {
		logrus.Warnf("logo bucket check failed: %v", err)
	}

	// Repositories
	propertyRepo := repositories.NewPropertyRepository(pool)
	agentRepo := repositories.NewAgentRepository(pool)
	tenantRepo := repositories.NewTenantRepository(pool)
	rentalRepo := repositories.NewRentalRepository(pool)
	userRepo := repositories.NewUserRepository(pool)

	// Services
	propertySvc := services.NewPropertyService(propertyRepo)
	agentSvc := services.NewAgentService(agentRepo)
	tenantSvc := services.NewTenantService(tenantRepo)
	rentalSvc := services.NewRentalService(rentalRepo, propertyRepo, agentRepo, tenantRepo)
	userSvc := services.NewUserService(userRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)

	// Handlers
	propertyHandlers := handlers.NewPropertyHandlers(propertySvc, rentalSvc)
	agentHandlers := handlers.NewAgentHandlers(agentSvc, logoSvc)
	tenantHandlers := handlers.NewTenantHandlers(tenantSvc)
	rentalHandlers := handlers.NewRentalHandlers(rentalSvc)
	userHandlers := handlers.NewUserHandlers(userSvc, authSvc)
	authHandlers := handlers.NewAuthHandlers(authSvc)
	healthHandlers := handlers.NewHealthHandlers(pool)

	e := echo.New()
	e.HideBanner = true

	// Global middleware
	e.Pre(echoMiddleware.RemoveTrailingSlash())
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	// Access gates: reads are open, mutations need a principal, destructive
	// deletes additionally need the admin flag.
	authenticated := middleware.Authenticated(cfg.JWTSecret)
	adminOnly := middleware.AdminOnly()

	// Health endpoints
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)

	// Property routes (delete is a soft archive)
	e.GET("/properties", propertyHandlers.ListProperties)
	e.GET("/properties/:id", propertyHandlers.GetProperty)
	e.GET("/properties/:id/rentals", propertyHandlers.ListPropertyRentals)
	e.POST("/properties", propertyHandlers.CreateProperty, authenticated)
	e.PUT("/properties/:id", propertyHandlers.UpdateProperty, authenticated)
	e.DELETE("/properties/:id", propertyHandlers.DeleteProperty, authenticated, adminOnly)

	// Agent routes
	e.GET("/agents", agentHandlers.ListAgents)
	e.GET("/agents/:id", agentHandlers.GetAgent)
	e.GET("/agents/:id/logo", agentHandlers.GetLogo)
	e.POST("/agents", agentHandlers.CreateAgent, authenticated)
	e.POST("/agents/:id/logo", agentHandlers.UploadLogo, authenticated)
	e.PUT("/agents/:id", agentHandlers.UpdateAgent, authenticated)
	e.DELETE("/agents/:id", agentHandlers.DeleteAgent, authenticated, adminOnly)

	// Tenant routes
	e.GET("/tenants", tenantHandlers.ListTenants)
	e.GET("/tenants/:id", tenantHandlers.GetTenant)
	e.POST("/tenants", tenantHandlers.CreateTenant, authenticated)
	e.PUT("/tenants/:id", tenantHandlers.UpdateTenant, authenticated)
	e.DELETE("/tenants/:id", tenantHandlers.DeleteTenant, authenticated, adminOnly)

	// Rental routes
	e.GET("/rentals", rentalHandlers.ListRentals)
	e.GET("/rentals/:id", rentalHandlers.GetRental)
	e.POST("/rentals", rentalHandlers.CreateRental, authenticated)
	e.PUT("/rentals/:id", rentalHandlers.UpdateRental, authenticated)
	e.DELETE("/rentals/:id", rentalHandlers.DeleteRental, authenticated, adminOnly)

	// User and auth routes
	e.POST("/users", userHandlers.Register)
	e.GET("/users/me", userHandlers.Me, authenticated)
	e.POST("/auth", authHandlers.Login)

	logrus.Infof("rentfolio v%s starting on port %s", version, cfg.Port)
	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", cfg.Port)))
}
