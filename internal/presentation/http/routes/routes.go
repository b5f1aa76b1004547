package routes

import (
	"time"

	"github.com/ahmadfaris/kasirku-api/internal/config"
	"github.com/ahmadfaris/kasirku-api/internal/domain/entity"
	domainRepo "github.com/ahmadfaris/kasirku-api/internal/domain/repository"
	"github.com/ahmadfaris/kasirku-api/internal/presentation/http/handler"
	"github.com/ahmadfaris/kasirku-api/internal/presentation/http/middleware"
	"github.com/ahmadfaris/kasirku-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration
type Handlers struct {
	Auth       *handler.AuthHandler
	Product    *handler.ProductHandler
	Checkout   *handler.CheckoutHandler
	Customer   *handler.CustomerHandler
	Cashbook   *handler.CashbookHandler
	Attendance *handler.AttendanceHandler
	Report     *handler.ReportHandler
	Dashboard  *handler.DashboardHandler
	Settings   *handler.SettingsHandler
	User       *handler.UserHandler
	Backup     *handler.BackupHandler
	Printer    *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/login", h.Auth.Login)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewIPRateLimiter(middleware.RateLimiterConfig{
			Requests:        deps.Cfg.RateLimit.Requests,
			WindowSeconds:   deps.Cfg.RateLimit.Duration,
			CleanupInterval: 5 * time.Minute,
			EntryTTL:        10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	managers := middleware.RequireRole(entity.RoleAdmin, entity.RoleManager)
	admins := middleware.RequireRole(entity.RoleAdmin)

	// Profile
	protected.GET("/auth/me", h.Auth.Me)
	protected.PUT("/auth/password", h.Auth.ChangePassword)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.Summary)

	// Products: everyone can look up, managers maintain the catalog
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/:id", h.Product.Get)
		products.GET("/sku/:sku", h.Product.GetBySKU)
		products.POST("", managers, h.Product.Create)
		products.PUT("/:id", managers, h.Product.Update)
		products.DELETE("/:id", managers, h.Product.Delete)
		products.POST("/:id/adjust-stock", managers, h.Product.AdjustStock)
	}

	// Checkout and transaction history
	transactions := protected.Group("/transactions")
	{
		transactions.POST("/preview", h.Checkout.Preview)
		// Checkout replays through idempotency keys so a double submit
		// never decrements stock twice
		transactions.POST("", middleware.Idempotency(deps.IdempotencyRepo), h.Checkout.Checkout)
		transactions.GET("", h.Checkout.List)
		transactions.GET("/:id", h.Checkout.Get)
		transactions.DELETE("/:id", managers, h.Checkout.Delete)
	}

	// Customers
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.GET("/:id", h.Customer.Get)
		customers.GET("/card/:card_number", h.Customer.GetByCard)
		customers.POST("", h.Customer.Create)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", managers, h.Customer.Delete)
	}

	// Cash ledger
	cashbook := protected.Group("/cashbook")
	{
		cashbook.GET("", h.Cashbook.List)
		cashbook.GET("/summary", h.Cashbook.Summary)
		cashbook.GET("/:id", h.Cashbook.Get)
		cashbook.POST("", managers, h.Cashbook.Create)
		cashbook.DELETE("/:id", managers, h.Cashbook.Delete)
	}

	// Attendance
	attendance := protected.Group("/attendance")
	{
		attendance.POST("/check-in", h.Attendance.CheckIn)
		attendance.POST("/check-out", h.Attendance.CheckOut)
		attendance.GET("", managers, h.Attendance.List)
	}

	// Reports
	reports := protected.Group("/reports")
	reports.Use(managers)
	{
		reports.GET("/profit-loss", h.Report.ProfitLoss)
		reports.GET("/stock", h.Report.Stock)
	}

	// Staff management
	users := protected.Group("/users")
	users.Use(admins)
	{
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.GET("/:id/card", h.User.Card)
		users.POST("", h.User.Create)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
	}

	// Settings
	protected.GET("/settings", h.Settings.Get)
	protected.PUT("/settings", managers, h.Settings.Update)

	// Backup
	backup := protected.Group("/backup")
	backup.Use(admins)
	{
		backup.GET("/export", h.Backup.Export)
		backup.POST("/import", h.Backup.Import)
		backup.POST("/reset", h.Backup.Reset)
	}

	// Printer
	printer := protected.Group("/printer")
	{
		printer.GET("/status", h.Printer.Status)
		printer.POST("/test", managers, h.Printer.Test)
		printer.GET("/receipt/:id", h.Printer.Receipt)
		printer.POST("/receipt/:id", h.Printer.Print)
	}
}
