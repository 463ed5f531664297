package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/flordelima-golang/internal/middleware"
)

type ToggleFavoriteInput struct {
	ProductID int64  `json:"productId" binding:"required,gt=0"`
	Action    string `json:"action" binding:"required,oneof=add remove"`
}

func (h *Handlers) GetFavorites(c *gin.Context) {
	ids, err := h.Favorites.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ids)
}

func (h *Handlers) ToggleFavorite(c *gin.Context) {
	var input ToggleFavoriteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID and action (add/remove) are required"})
		return
	}

	ids, err := h.Favorites.Toggle(c.Request.Context(), middleware.UserID(c), input.ProductID, input.Action)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ids)
}
