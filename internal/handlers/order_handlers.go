package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/flordelima-golang/internal/middleware"
	"github.com/01moynul/flordelima-golang/internal/models"
)

//
// --- Order Handlers (Login Required) ---
//

type CreateOrderInput struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// UpdateOrderInput is a partial update; empty strings count as absent.
type UpdateOrderInput struct {
	Status string `json:"status"`
	PixKey string `json:"pixKey"`
}

// CreateOrder turns the cart into a pending order.
func (h *Handlers) CreateOrder(c *gin.Context) {
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payment method is required"})
		return
	}

	order, err := h.Orders.Create(c.Request.Context(), middleware.UserID(c), input.PaymentMethod)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order": order})
}

// GetMyOrders lists the user's orders, newest first.
func (h *Handlers) GetMyOrders(c *gin.Context) {
	orders, err := h.Orders.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handlers) GetOrderDetails(c *gin.Context) {
	details, err := h.Orders.Get(c.Request.Context(), middleware.UserID(c), c.Param("orderId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *Handlers) UpdateOrder(c *gin.Context) {
	var input UpdateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var upd models.OrderUpdate
	if input.Status != "" {
		upd.Status = &input.Status
	}
	if input.PixKey != "" {
		upd.PixKey = &input.PixKey
	}

	order, err := h.Orders.Update(c.Request.Context(), middleware.UserID(c), c.Param("orderId"), upd)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order updated", "order": order})
}
