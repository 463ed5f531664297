package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/01moynul/flordelima-golang/internal/handlers"
	"github.com/01moynul/flordelima-golang/internal/middleware"
)

type RouterConfig struct {
	// AllowedOrigins are the storefront origins allowed to send the session cookie.
	AllowedOrigins []string
	ServiceName    string
	Tracing        bool
	Log            *zap.Logger
}

// CORSMiddleware lets the storefront call us with credentials.
func CORSMiddleware(origins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

func SetupRouter(h *handlers.Handlers, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(cfg.Log))
	router.Use(gin.Recovery())
	router.Use(CORSMiddleware(cfg.AllowedOrigins))
	if cfg.Tracing {
		router.Use(otelgin.Middleware(cfg.ServiceName))
	}

	api := router.Group("/api")
	{
		api.GET("/ping", h.Ping)
		api.GET("/health", h.Health)

		// --- Public Catalog Routes ---
		api.GET("/products", h.ListProducts)
		api.GET("/products/:id", h.GetProduct)
		api.GET("/categories", h.GetCategories)

		// --- Auth Routes (Public) ---
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
		api.POST("/auth/logout", h.Logout)

		// --- Protected Routes (Login Required) ---
		auth := api.Group("/")
		auth.Use(middleware.AuthMiddleware(h.Tokens))
		{
			auth.GET("/auth/me", h.Me)

			// Cart
			auth.GET("/cart", h.GetCart)
			auth.POST("/cart", h.AddToCart)
			auth.DELETE("/cart", h.RemoveFromCart)
			auth.PATCH("/cart", h.UpdateCartItem)
			auth.POST("/cart/restore", h.RestoreCart)

			// Favorites
			auth.GET("/favorites", h.GetFavorites)
			auth.POST("/favorites", h.ToggleFavorite)

			// Orders
			auth.GET("/orders", h.GetMyOrders)
			auth.POST("/orders", h.CreateOrder)
			auth.GET("/orders/:orderId", h.GetOrderDetails)
			auth.PATCH("/orders/:orderId", h.UpdateOrder)

			// Payments
			auth.GET("/payments", h.GetMyPayments)
			auth.POST("/payments", h.SubmitPayment)
			auth.PATCH("/payments/bank-login", h.ConfirmBankLogin)
			auth.GET("/pix-payment/:orderId", h.CreatePixPayment)

			// Delivery address
			auth.GET("/address", h.GetAddress)
			auth.POST("/address", h.SaveAddress)
		}
	}

	return router
}
