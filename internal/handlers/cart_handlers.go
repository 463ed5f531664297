package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/flordelima-golang/internal/middleware"
	"github.com/01moynul/flordelima-golang/internal/services"
)

//
// --- Cart Handlers (Login Required) ---
//

// AddToCartInput defines the JSON for adding an item to the cart.
// Name and price are accepted for compatibility; the catalog's values win.
type AddToCartInput struct {
	ProductID int64   `json:"productId" binding:"required,gt=0"`
	Quantity  int     `json:"quantity" binding:"required,gte=1,lte=999"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

type RemoveFromCartInput struct {
	ProductID int64 `json:"productId" binding:"required,gt=0"`
}

type UpdateCartItemInput struct {
	ProductID int64 `json:"productId" binding:"required,gt=0"`
	Quantity  int   `json:"quantity" binding:"required,gte=1,lte=999"`
}

func (h *Handlers) GetCart(c *gin.Context) {
	cart, err := h.Carts.Get(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *Handlers) AddToCart(c *gin.Context) {
	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	cart, err := h.Carts.AddItem(c.Request.Context(), middleware.UserID(c), services.AddItemInput{
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		Name:      input.Name,
		Price:     input.Price,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *Handlers) RemoveFromCart(c *gin.Context) {
	var input RemoveFromCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
		return
	}

	cart, err := h.Carts.RemoveItem(c.Request.Context(), middleware.UserID(c), input.ProductID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *Handlers) UpdateCartItem(c *gin.Context) {
	var input UpdateCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID and valid quantity are required"})
		return
	}

	cart, err := h.Carts.UpdateQuantity(c.Request.Context(), middleware.UserID(c), input.ProductID, input.Quantity)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// RestoreCart brings back the items of the last checkout, e.g. when the user
// leaves the payment page.
func (h *Handlers) RestoreCart(c *gin.Context) {
	cart, err := h.Carts.Restore(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": cart.Items, "total": cart.Total})
}
