package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/01moynul/flordelima-golang/internal/apperr"
	"github.com/01moynul/flordelima-golang/internal/auth"
	"github.com/01moynul/flordelima-golang/internal/catalog"
	"github.com/01moynul/flordelima-golang/internal/middleware"
	"github.com/01moynul/flordelima-golang/internal/services"
)

// Pinger reports whether the document store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handlers holds all dependencies for our handlers.
type Handlers struct {
	Carts     *services.CartService
	Orders    *services.OrderService
	Payments  *services.PaymentService
	Favorites *services.FavoritesService
	Users     *services.UserService
	Addresses *services.AddressService
	Catalog   *catalog.Catalog
	Tokens    *auth.TokenService
	DB        Pinger
	// SecureCookies marks the session cookie Secure (production only).
	SecureCookies bool
	Log           *zap.Logger
}

// respondError writes err as {"error": msg} with the status of its kind.
// Internal causes are logged, never sent.
func (h *Handlers) respondError(c *gin.Context, err error) {
	appErr, ok := apperr.As(err)
	if !ok {
		appErr = apperr.Internal("Internal server error", err)
	}
	_ = c.Error(err)

	if appErr.Kind == apperr.KindInternal {
		h.Log.Error(appErr.Message,
			zap.Error(appErr.Err),
			zap.String("path", c.FullPath()),
			zap.String("request_id", middleware.GetRequestID(c)),
		)
	}

	body := gin.H{"error": appErr.Message}
	if appErr.Details != nil {
		body["details"] = appErr.Details
	}
	c.JSON(appErr.HTTPStatus(), body)
}

func (h *Handlers) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong!"})
}

// Health checks the database connection.
func (h *Handlers) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.DB.Ping(ctx); err != nil {
		h.Log.Warn("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
