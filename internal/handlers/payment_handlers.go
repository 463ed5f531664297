package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/flordelima-golang/internal/middleware"
	"github.com/01moynul/flordelima-golang/internal/services"
)

//
// --- Payment Handlers (Login Required) ---
//

type SubmitPaymentInput struct {
	OrderID       string `json:"orderId" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
	CardNumber    string `json:"cardNumber"`
	CardHolder    string `json:"cardHolder"`
	ExpiryDate    string `json:"expiryDate"`
	CVV           string `json:"cvv"`
	CPF           string `json:"cpf"`
	Parcelas      int    `json:"parcelas" binding:"gte=0"`
	Bank          string `json:"bank"`
}

type BankLoginInput struct {
	OrderID   string `json:"orderId" binding:"required"`
	BankLogin struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	} `json:"bankLogin" binding:"required"`
}

func (h *Handlers) SubmitPayment(c *gin.Context) {
	var input SubmitPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	payment, err := h.Payments.Submit(c.Request.Context(), middleware.UserID(c), services.SubmitPaymentInput{
		OrderID:       input.OrderID,
		PaymentMethod: input.PaymentMethod,
		CardNumber:    input.CardNumber,
		CardHolder:    input.CardHolder,
		ExpiryDate:    input.ExpiryDate,
		CVV:           input.CVV,
		CPF:           input.CPF,
		Installments:  input.Parcelas,
		Bank:          input.Bank,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Payment details saved", "payment": payment})
}

func (h *Handlers) GetMyPayments(c *gin.Context) {
	payments, err := h.Payments.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// ConfirmBankLogin is the credit-card confirmation step. The password is
// checked by the bank authorizer and never stored.
func (h *Handlers) ConfirmBankLogin(c *gin.Context) {
	var input BankLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	payment, err := h.Payments.ConfirmBankLogin(c.Request.Context(), middleware.UserID(c),
		input.OrderID, input.BankLogin.Username, input.BankLogin.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Bank login saved",
		"reference": payment.BankConfirmation.Reference,
	})
}

// CreatePixPayment asks the gateway for a QR code for the order.
func (h *Handlers) CreatePixPayment(c *gin.Context) {
	tx, err := h.Payments.CreatePixTransaction(c.Request.Context(), middleware.UserID(c), c.Param("orderId"), c.ClientIP())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tx)
}
