package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/orderhub/order-api/internal/api/handler"
	"github.com/orderhub/order-api/internal/api/middleware"
	"github.com/orderhub/order-api/internal/core/domain"
	"github.com/orderhub/order-api/internal/core/service"
	"github.com/orderhub/order-api/internal/infrastructure/config"
	mongodb "github.com/orderhub/order-api/internal/infrastructure/db/mongo"
	redisdb "github.com/orderhub/order-api/internal/infrastructure/db/redis"
	"github.com/orderhub/order-api/internal/infrastructure/queue"
)

// NewRouter builds the Echo instance with all routes registered and returns
// it together with the event dispatcher, which the caller must Start.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("orderhub"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Repositories ---
	seq := mongodb.NewSequencer(db)
	orderRepo := mongodb.NewOrderRepository(db, seq)
	customerRepo := mongodb.NewCustomerRepository(db, seq)
	productRepo := mongodb.NewProductRepository(db, seq)
	userRepo := mongodb.NewUserRepository(db, seq)
	eventRepo := mongodb.NewEventRepository(db)

	// --- Services ---
	page := service.PageParams{
		DefaultLimit: cfg.Page.DefaultLimit,
		MaxLimit:     cfg.Page.MaxLimit,
	}
	etaService := service.NewETAService(orderRepo, customerRepo, service.DeliveryParams{
		Warehouse:        domain.Coordinate{Lat: cfg.Delivery.WarehouseLat, Lng: cfg.Delivery.WarehouseLng},
		AvgSpeedKmPerMin: cfg.Delivery.AvgSpeedKmPerMin,
		CO2PerKmGrams:    cfg.Delivery.CO2PerKmGrams,
		MergeRadiusKm:    cfg.Delivery.MergeRadiusKm,
	}, log)
	orderService := service.NewOrderService(orderRepo, customerRepo, productRepo, etaService, page, log)
	customerService := service.NewCustomerService(customerRepo, page, log)
	productService := service.NewProductService(productRepo, page, log)
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)

	dedup := redisdb.NewEventDedup(rdb)
	eventService := service.NewEventService(orderRepo, eventRepo, dedup, log)
	dispatcher := queue.NewDispatcher(cfg.EventWorkers, eventService, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	orderHandler := handler.NewOrderHandler(orderService, etaService)
	customerHandler := handler.NewCustomerHandler(customerService)
	productHandler := handler.NewProductHandler(productService)
	eventHandler := handler.NewEventHandler(dispatcher)

	authRequired := middleware.Auth(cfg.JWT.Secret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	auth := e.Group("/api/v1/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// --- Order routes ---
	orders := e.Group("/api/v1/orders", authRequired)
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.PUT("/:id", orderHandler.Replace)
	orders.PATCH("/:id", orderHandler.UpdateStatus)
	orders.DELETE("/:id", orderHandler.Delete, adminOnly)
	orders.POST("/:id/cancel", orderHandler.Cancel)
	orders.PATCH("/:id/address", orderHandler.UpdateAddress)
	orders.GET("/:id/eta", orderHandler.Eta)

	// --- Customer routes ---
	customers := e.Group("/api/v1/customers", authRequired)
	customers.POST("", customerHandler.Create)
	customers.GET("", customerHandler.List)
	customers.GET("/:id", customerHandler.Get)
	customers.PUT("/:id", customerHandler.Update)
	customers.DELETE("/:id", customerHandler.Delete, adminOnly)

	// --- Product routes (mutations restricted to admins) ---
	products := e.Group("/api/v1/products", authRequired)
	products.POST("", productHandler.Create, adminOnly)
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.PUT("/:id", productHandler.Update, adminOnly)
	products.DELETE("/:id", productHandler.Delete, adminOnly)

	// --- Event ingestion (courier callbacks) ---
	events := e.Group("/api/v1/events", authRequired)
	events.POST("", eventHandler.Receive)
	events.POST("/batch", eventHandler.ReceiveBatch)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, dispatcher
}
