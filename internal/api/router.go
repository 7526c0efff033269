package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stockpile/inventory-system/internal/api/handler"
	"github.com/stockpile/inventory-system/internal/api/middleware"
	"github.com/stockpile/inventory-system/internal/core/domain"
	"github.com/stockpile/inventory-system/internal/core/ports"
)

// Dependencies bundles everything the router needs. Mongo and Redis are nil
// unless the corresponding backend is configured; the readiness probe only
// checks what is present.
type Dependencies struct {
	AuthService    ports.AuthService
	ProductService ports.ProductService
	JWTSecret      string
	Mongo          *mongo.Database
	Redis          *redis.Client
	Logger         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("inventory"))

	authMW := middleware.Auth(deps.JWTSecret)
	adminMW := middleware.RBAC(domain.RoleAdmin)

	// --- Public routes ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	authHandler := handler.NewAuthHandler(deps.AuthService)
	e.POST("/auth/login", authHandler.Login)

	// --- Products (any valid identity reads, admin writes) ---
	productHandler := handler.NewProductHandler(deps.ProductService)
	products := e.Group("/products", authMW)
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.GET("/:id/profit-margin", productHandler.ProfitMargin)
	products.GET("/search/:name", productHandler.Search)
	products.POST("", productHandler.Create, adminMW)
	products.PUT("/:id", productHandler.Update, adminMW)
	products.DELETE("/:id", productHandler.Delete, adminMW)

	// --- Inventory ---
	inventoryHandler := handler.NewInventoryHandler(deps.ProductService)
	inventory := e.Group("/inventory", authMW)
	inventory.POST("/adjust", inventoryHandler.Adjust, adminMW)
	inventory.GET("/low-stock", inventoryHandler.LowStock)
	inventory.GET("/value", inventoryHandler.Value)

	return e
}
