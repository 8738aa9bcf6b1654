package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	auditapp "github.com/landryjoias/crm/internal/application/audit"
	catalogapp "github.com/landryjoias/crm/internal/application/catalog"
	identityapp "github.com/landryjoias/crm/internal/application/identity"
	partnerapp "github.com/landryjoias/crm/internal/application/partner"
	reportapp "github.com/landryjoias/crm/internal/application/report"
	salesapp "github.com/landryjoias/crm/internal/application/sales"
	"github.com/landryjoias/crm/internal/infrastructure/auth"
	"github.com/landryjoias/crm/internal/infrastructure/config"
	"github.com/landryjoias/crm/internal/infrastructure/logger"
	"github.com/landryjoias/crm/internal/infrastructure/persistence"
	"github.com/landryjoias/crm/internal/interfaces/http/handler"
	"github.com/landryjoias/crm/internal/interfaces/http/middleware"
	"github.com/landryjoias/crm/internal/interfaces/http/router"
	"go.uber.org/zap"
)

//	@title			Landry Joias CRM API
//	@version		1.0
//	@description	CRM backend para gestão de clientes, oportunidades, produtos e pedidos

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting CRM Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	clientRepo := persistence.NewGormClientRepository(db.DB)
	contactRepo := persistence.NewGormContactRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)
	opportunityRepo := persistence.NewGormOpportunityRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	auditEntryRepo := persistence.NewGormAuditEntryRepository(db.DB)
	dashboardRepo := persistence.NewGormDashboardRepository(db.DB)

	// Token blacklist: Redis when configured, in-memory fallback otherwise
	var blacklist auth.TokenBlacklist
	if cfg.Redis.Host != "" {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		blacklist = redisBlacklist
		log.Info("Token blacklist backed by Redis",
			zap.String("host", cfg.Redis.Host),
			zap.Int("port", cfg.Redis.Port),
		)
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
		log.Info("Token blacklist running in-memory")
	}

	// Audit recorder shared by every service that writes activity entries
	recorder := auditapp.NewRecorder(auditEntryRepo, log)

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, recorder, log)
	userService := identityapp.NewUserService(userRepo, recorder)
	employeeService := identityapp.NewEmployeeService(employeeRepo, recorder)
	clientService := partnerapp.NewClientService(clientRepo, recorder)
	contactService := partnerapp.NewContactService(contactRepo)
	productService := catalogapp.NewProductService(productRepo, recorder)
	opportunityService := salesapp.NewOpportunityService(opportunityRepo, clientRepo, recorder)
	orderService := salesapp.NewOrderService(orderRepo, opportunityRepo, productRepo, recorder, cfg.Orders)
	entryService := auditapp.NewEntryService(auditEntryRepo)
	dashboardService := reportapp.NewDashboardService(dashboardRepo)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	clientHandler := handler.NewClientHandler(clientService, opportunityService)
	contactHandler := handler.NewContactHandler(contactService)
	productHandler := handler.NewProductHandler(productService)
	opportunityHandler := handler.NewOpportunityHandler(opportunityService)
	orderHandler := handler.NewOrderHandler(orderService)
	auditLogHandler := handler.NewAuditLogHandler(entryService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	systemHandler := handler.NewSystemHandler(db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", systemHandler.Health)

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// JWT authentication on API routes, with public endpoints skipped
	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths: []string{
			"/api/v1/health",
			"/api/v1/auth/login",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Identity domain (authentication and session)
	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/logout", authHandler.Logout)
	authRoutes.GET("/me", authHandler.Me)

	// Partner domain (clients and their contacts)
	clientRoutes := router.NewDomainGroup("clients", "/clients")
	clientRoutes.POST("", clientHandler.Create)
	clientRoutes.GET("", clientHandler.List)
	clientRoutes.GET("/:id", clientHandler.GetByID)
	clientRoutes.PUT("/:id", clientHandler.Update)
	clientRoutes.DELETE("/:id", clientHandler.Delete)
	clientRoutes.GET("/:id/opportunities", clientHandler.ListOpportunities)

	contactRoutes := router.NewDomainGroup("contacts", "/contacts")
	contactRoutes.POST("", contactHandler.Create)
	contactRoutes.GET("/:id", contactHandler.GetByID)
	contactRoutes.PUT("/:id", contactHandler.Update)
	contactRoutes.DELETE("/:id", contactHandler.Delete)

	// Catalog domain (jewelry products)
	productRoutes := router.NewDomainGroup("products", "/products")
	productRoutes.POST("", productHandler.Create)
	productRoutes.GET("", productHandler.List)
	productRoutes.GET("/:id", productHandler.GetByID)
	productRoutes.PUT("/:id", productHandler.Update)
	productRoutes.DELETE("/:id", productHandler.Delete)

	// Sales domain (opportunities and orders)
	opportunityRoutes := router.NewDomainGroup("opportunities", "/opportunities")
	opportunityRoutes.POST("", opportunityHandler.Create)
	opportunityRoutes.GET("", opportunityHandler.List)
	opportunityRoutes.GET("/:id", opportunityHandler.GetByID)
	opportunityRoutes.PUT("/:id", opportunityHandler.Update)
	opportunityRoutes.DELETE("/:id", opportunityHandler.Delete)

	orderRoutes := router.NewDomainGroup("orders", "/orders")
	orderRoutes.POST("", orderHandler.Submit)
	orderRoutes.GET("", orderHandler.List)
	orderRoutes.GET("/:id", orderHandler.GetByID)
	orderRoutes.PUT("/:id", orderHandler.Update)
	orderRoutes.DELETE("/:id", orderHandler.Delete)
	orderRoutes.POST("/:id/items/procedure", orderHandler.AddItem)

	// Identity domain (system users and employees)
	userRoutes := router.NewDomainGroup("users", "/users")
	userRoutes.POST("", userHandler.Create)
	userRoutes.GET("", userHandler.List)
	userRoutes.GET("/:id", userHandler.GetByID)
	userRoutes.PUT("/:id", userHandler.Update)
	userRoutes.DELETE("/:id", userHandler.Delete)

	employeeRoutes := router.NewDomainGroup("employees", "/employees")
	employeeRoutes.POST("", employeeHandler.Create)
	employeeRoutes.GET("", employeeHandler.List)
	employeeRoutes.GET("/:id", employeeHandler.GetByID)
	employeeRoutes.PUT("/:id", employeeHandler.Update)
	employeeRoutes.DELETE("/:id", employeeHandler.Delete)

	// Audit domain (activity log)
	logRoutes := router.NewDomainGroup("logs", "/logs")
	logRoutes.POST("", auditLogHandler.Create)
	logRoutes.GET("", auditLogHandler.List)
	logRoutes.GET("/:id", auditLogHandler.GetByID)
	logRoutes.PUT("/:id", auditLogHandler.Update)
	logRoutes.DELETE("/:id", auditLogHandler.Delete)

	// Report domain (dashboard aggregates)
	dashboardRoutes := router.NewDomainGroup("dashboard", "/dashboard")
	dashboardRoutes.GET("/summary", dashboardHandler.Summary)
	dashboardRoutes.GET("/chart", dashboardHandler.MonthlyRevenue)

	// System routes (versioned health alias)
	systemRoutes := router.NewDomainGroup("system", "/health")
	systemRoutes.GET("", systemHandler.Health)

	r.Register(authRoutes).
		Register(clientRoutes).
		Register(contactRoutes).
		Register(productRoutes).
		Register(opportunityRoutes).
		Register(orderRoutes).
		Register(userRoutes).
		Register(employeeRoutes).
		Register(logRoutes).
		Register(dashboardRoutes).
		Register(systemRoutes)

	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
