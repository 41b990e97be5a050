package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotel-booking-backend/config"
	deliveryHttp "hotel-booking-backend/internal/delivery/http"
	"hotel-booking-backend/internal/delivery/http/handler"
	"hotel-booking-backend/internal/delivery/http/middleware"
	"hotel-booking-backend/internal/infrastructure/cache"
	"hotel-booking-backend/internal/infrastructure/database"
	"hotel-booking-backend/internal/repository"
	"hotel-booking-backend/internal/service"
	"hotel-booking-backend/internal/usecase"
	"hotel-booking-backend/pkg/jwt"
	"hotel-booking-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Sweep       *service.BookingSweepService
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Apply database migrations before opening the pool
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, err
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server, sweep, err := initializeServer(cfg, db, redisClient)
	if err != nil {
		return nil, err
	}
	app.Server = server
	app.Sweep = sweep

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer wires repositories, services, usecases, and handlers
// into the HTTP server and the background sweep
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, *service.BookingSweepService, error) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roomTypeRepo := repository.NewRoomTypeRepository()
	roomClassRepo := repository.NewRoomClassRepository()
	roomRepo := repository.NewRoomRepository()
	serviceRepo := repository.NewServiceRepository()
	bookingRepo := repository.NewBookingRepository()
	proofRepo := repository.NewPaymentProofRepository()
	ticketRepo := repository.NewTicketRepository()
	auditRepo := repository.NewAuditLogRepository()

	// Initialize domain services
	pricingService := service.NewPricingService()
	auditService := service.NewAuditService(log, auditRepo)
	notifier := service.NewSMTPNotifier(cfg.SMTP)
	notificationService := service.NewNotificationService(notifier, log)
	draftService := service.NewBookingDraftService(redisClient, log, cfg.Booking.DraftTTL)
	lifecycleService := service.NewBookingLifecycleService(db, log, bookingRepo, notificationService, cfg.Booking.ReviewWindow)
	sweepService := service.NewBookingSweepService(db, log, bookingRepo, lifecycleService, cfg.Booking.SweepInterval)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService, redisClient, auditService)
	catalogUsecase := usecase.NewCatalogUsecase(db, log, roomTypeRepo, roomClassRepo, roomRepo, bookingRepo, serviceRepo, pricingService)
	guestBookingUsecase := usecase.NewGuestBookingUsecase(db, log, cfg.Booking,
		bookingRepo, roomRepo, roomClassRepo, serviceRepo, proofRepo,
		pricingService, draftService, lifecycleService, notificationService, auditService)
	staffBookingUsecase := usecase.NewStaffBookingUsecase(db, log, bookingRepo, roomRepo, lifecycleService, notificationService, auditService)
	inventoryUsecase := usecase.NewInventoryUsecase(db, log, roomTypeRepo, roomClassRepo, roomRepo, serviceRepo, auditService)
	ticketUsecase := usecase.NewTicketUsecase(db, log, ticketRepo, userRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditRepo)

	// Seed the initial administrator account
	if err := authUsecase.EnsureAdminAccount(context.Background(), cfg.Admin); err != nil {
		return nil, nil, fmt.Errorf("failed to seed admin account: %w", err)
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	catalogHandler := handler.NewCatalogHandler(catalogUsecase, customValidator)
	guestBookingHandler := handler.NewGuestBookingHandler(guestBookingUsecase, customValidator, cfg.Storage)
	staffBookingHandler := handler.NewStaffBookingHandler(staffBookingUsecase, customValidator)
	inventoryHandler := handler.NewInventoryHandler(inventoryUsecase, customValidator)
	ticketHandler := handler.NewTicketHandler(ticketUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	capabilityMiddleware := middleware.NewCapabilityMiddleware()
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		catalogHandler,
		guestBookingHandler,
		staffBookingHandler,
		inventoryHandler,
		ticketHandler,
		auditLogHandler,
		authMiddleware,
		capabilityMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}

	return server, sweepService, nil
}

// Run starts the HTTP server, the booking sweep, and handles graceful
// shutdown
func (app *App) Run() {
	app.Sweep.Start(context.Background())

	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	app.Sweep.Stop()

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
