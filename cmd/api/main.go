package main

import (
	"log"

	"github.com/ahmadfaris/kasirku-api/internal/application/service"
	"github.com/ahmadfaris/kasirku-api/internal/config"
	"github.com/ahmadfaris/kasirku-api/internal/infrastructure/database"
	"github.com/ahmadfaris/kasirku-api/internal/infrastructure/repository"
	"github.com/ahmadfaris/kasirku-api/internal/presentation/http/handler"
	"github.com/ahmadfaris/kasirku-api/internal/presentation/http/routes"
	"github.com/ahmadfaris/kasirku-api/pkg/printer"
	"github.com/ahmadfaris/kasirku-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	cashEntryRepo := repository.NewCashEntryRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	backupRepo := repository.NewBackupRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, jwtManager)
	productService := service.NewProductService(productRepo)
	checkoutService := service.NewCheckoutService(transactionRepo, productRepo, customerRepo, settingsRepo)
	customerService := service.NewCustomerService(customerRepo)
	cashbookService := service.NewCashbookService(cashEntryRepo)
	attendanceService := service.NewAttendanceService(attendanceRepo, userRepo)
	reportService := service.NewReportService(transactionRepo, cashEntryRepo, productRepo, settingsRepo)
	dashboardService := service.NewDashboardService(transactionRepo, cashEntryRepo, productRepo, customerRepo, userRepo, settingsRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	userService := service.NewUserService(userRepo)
	backupService := service.NewBackupService(backupRepo, productRepo, transactionRepo, cashEntryRepo, customerRepo, attendanceRepo, settingsRepo)

	// Thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, transactionRepo, settingsRepo, cfg.Printer.Type)

	handlers := &routes.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Product:    handler.NewProductHandler(productService),
		Checkout:   handler.NewCheckoutHandler(checkoutService),
		Customer:   handler.NewCustomerHandler(customerService),
		Cashbook:   handler.NewCashbookHandler(cashbookService),
		Attendance: handler.NewAttendanceHandler(attendanceService),
		Report:     handler.NewReportHandler(reportService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
		Settings:   handler.NewSettingsHandler(settingsService),
		User:       handler.NewUserHandler(userService),
		Backup:     handler.NewBackupHandler(backupService),
		Printer:    handler.NewPrinterHandler(printerService),
	}

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
