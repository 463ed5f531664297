package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/flordelima-golang/internal/middleware"
	"github.com/01moynul/flordelima-golang/internal/models"
)

type SaveAddressInput struct {
	RecipientName string `json:"recipientName" binding:"required"`
	StreetType    string `json:"streetType"`
	StreetName    string `json:"streetName" binding:"required"`
	StreetNumber  string `json:"streetNumber" binding:"required"`
	Complement    string `json:"complement"`
	Neighborhood  string `json:"neighborhood" binding:"required"`
	ZipCode       string `json:"zipCode" binding:"required"`
	City          string `json:"city" binding:"required"`
	State         string `json:"state" binding:"required"`
}

func (h *Handlers) GetAddress(c *gin.Context) {
	addr, err := h.Addresses.Get(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, addr)
}

func (h *Handlers) SaveAddress(c *gin.Context) {
	var input SaveAddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	addr, err := h.Addresses.Save(c.Request.Context(), middleware.UserID(c), models.Address{
		RecipientName: input.RecipientName,
		StreetType:    input.StreetType,
		StreetName:    input.StreetName,
		StreetNumber:  input.StreetNumber,
		Complement:    input.Complement,
		Neighborhood:  input.Neighborhood,
		ZipCode:       input.ZipCode,
		City:          input.City,
		State:         input.State,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Endereço salvo com sucesso!", "address": addr})
}
