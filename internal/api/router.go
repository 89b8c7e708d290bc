package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/photosbyzee/studio-portal/internal/api/handler"
	"github.com/photosbyzee/studio-portal/internal/api/middleware"
	"github.com/photosbyzee/studio-portal/internal/core/domain"
	"github.com/photosbyzee/studio-portal/internal/core/service"
	"github.com/photosbyzee/studio-portal/internal/infrastructure/db/postgres"
	"github.com/photosbyzee/studio-portal/pkg/logger"
	"github.com/photosbyzee/studio-portal/pkg/token"
)

// RouterDeps carries the shared infrastructure the router wires into
// handlers. Services and repositories are constructed here.
type RouterDeps struct {
	DB            *gorm.DB
	Redis         *redis.Client
	Tokens        *token.Manager
	Views         handler.ViewTracker
	Contact       handler.ContactSender
	SecureCookies bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("studio"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(deps.DB)
	bookingRepo := postgres.NewBookingRepository(deps.DB)
	galleryRepo := postgres.NewGalleryRepository(deps.DB)
	orderRepo := postgres.NewOrderRepository(deps.DB)
	slotRepo := postgres.NewAvailabilityRepository(deps.DB)
	analyticsRepo := postgres.NewAnalyticsRepository(deps.DB)

	authService := service.NewAuthService(userRepo, deps.Tokens)
	bookingService := service.NewBookingService(bookingRepo, logger.Get())
	galleryService := service.NewGalleryService(galleryRepo, logger.Get())
	orderService := service.NewOrderService(orderRepo, galleryRepo, logger.Get())
	availabilityService := service.NewAvailabilityService(slotRepo, bookingRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo, logger.Get())

	authHandler := handler.NewAuthHandler(authService, deps.SecureCookies)
	bookingHandler := handler.NewBookingHandler(bookingService)
	galleryHandler := handler.NewGalleryHandler(galleryService, deps.Views)
	orderHandler := handler.NewOrderHandler(orderService)
	availabilityHandler := handler.NewAvailabilityHandler(availabilityService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	contactHandler := handler.NewContactHandler(deps.Contact, logger.Get())

	authed := middleware.Auth(deps.Tokens)

	// --- Public routes ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/api/health", handler.NewHealthHandler().Liveness)
	e.GET("/api/health/ready", handler.NewReadinessHandler(deps.DB, deps.Redis).Readiness)
	e.POST("/api/contact", contactHandler.Submit)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/client/register", authHandler.Register)
	auth.POST("/client/login", authHandler.LoginClient)
	auth.POST("/manager/login", authHandler.LoginManager)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/verify", authHandler.Verify, authed)

	// --- Client area ---
	client := e.Group("/api/client", authed, middleware.RequireRole(domain.RoleClient))
	client.GET("/bookings", bookingHandler.ClientList)
	client.POST("/bookings", bookingHandler.ClientCreate)
	client.GET("/availability", availabilityHandler.ClientAvailability)
	client.GET("/galleries", galleryHandler.ClientList)
	client.GET("/galleries/:id", galleryHandler.ClientGet)
	client.GET("/orders", orderHandler.ClientList)
	client.POST("/orders", orderHandler.ClientCreate)

	// --- Manager area ---
	manager := e.Group("/api/manager", authed, middleware.RequireRole(domain.RoleManager))
	manager.GET("/bookings", bookingHandler.ManagerList)
	manager.POST("/bookings", bookingHandler.ManagerCreate)
	manager.GET("/bookings/:id", bookingHandler.Get)
	manager.PUT("/bookings/:id", bookingHandler.Update)
	manager.DELETE("/bookings/:id", bookingHandler.Delete)
	manager.GET("/galleries", galleryHandler.ManagerList)
	manager.POST("/galleries", galleryHandler.ManagerCreate)
	manager.GET("/galleries/:id", galleryHandler.ManagerGet)
	manager.PUT("/galleries/:id", galleryHandler.ManagerUpdate)
	manager.DELETE("/galleries/:id", galleryHandler.ManagerDelete)
	manager.GET("/galleries/:id/images", galleryHandler.ManagerListImages)
	manager.POST("/galleries/:id/images", galleryHandler.ManagerAddImage)
	manager.GET("/availability", availabilityHandler.ManagerList)
	manager.POST("/availability", availabilityHandler.ManagerCreate)
	manager.DELETE("/availability/:id", availabilityHandler.ManagerDelete)
	manager.GET("/analytics", analyticsHandler.Report)

	return e
}
