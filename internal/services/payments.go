package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/01moynul/flordelima-golang/internal/apperr"
	"github.com/01moynul/flordelima-golang/internal/bank"
	"github.com/01moynul/flordelima-golang/internal/models"
	"github.com/01moynul/flordelima-golang/internal/pix"
	"github.com/01moynul/flordelima-golang/internal/telemetry"
)

// pixExpiration is how long a generated QR code stays payable, in seconds.
const pixExpiration = 3600

type PaymentService struct {
	payments      PaymentStore
	orders        OrderStore
	users         UserStore
	gateway       PixGateway
	bank          bank.Authorizer
	publicBaseURL string
	metrics       *telemetry.Metrics
	log           *zap.Logger
}

type PaymentDeps struct {
	Payments      PaymentStore
	Orders        OrderStore
	Users         UserStore
	Gateway       PixGateway
	Bank          bank.Authorizer
	PublicBaseURL string
	Metrics       *telemetry.Metrics
	Log           *zap.Logger
}

func NewPaymentService(d PaymentDeps) *PaymentService {
	return &PaymentService{
		payments:      d.Payments,
		orders:        d.Orders,
		users:         d.Users,
		gateway:       d.Gateway,
		bank:          d.Bank,
		publicBaseURL: d.PublicBaseURL,
		metrics:       d.Metrics,
		log:           d.Log,
	}
}

// SubmitPaymentInput is what the checkout form posts. CardNumber and CVV are
// checked for presence and then dropped; only the last four digits are stored.
type SubmitPaymentInput struct {
	OrderID       string
	PaymentMethod string
	CardNumber    string
	CardHolder    string
	ExpiryDate    string
	CVV           string
	CPF           string
	Installments  int
	Bank          string
}

type PixTransaction struct {
	PixCode string  `json:"pixCode"`
	Amount  float64 `json:"amount"`
}

// Submit records a payment attempt for one of the user's orders.
func (s *PaymentService) Submit(ctx context.Context, userID string, in SubmitPaymentInput) (*models.Payment, error) {
	// 1. --- Validate ---
	if in.OrderID == "" || in.PaymentMethod == "" {
		return nil, apperr.Validation("Missing required fields")
	}
	if !models.ValidPaymentMethod(in.PaymentMethod) {
		return nil, apperr.Validation("Invalid payment method")
	}
	if in.PaymentMethod == models.PaymentMethodCreditCard {
		if blank(in.CardNumber) || blank(in.CardHolder) || blank(in.ExpiryDate) || blank(in.CVV) {
			return nil, apperr.Validation("Missing card details")
		}
	}

	// 2. --- The order must be the user's and match the method ---
	order, err := s.orders.FindOne(ctx, userID, in.OrderID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, apperr.NotFound("Order not found")
	}
	if err != nil {
		return nil, apperr.Internal("Failed to save payment details", err)
	}
	if order.PaymentMethod != in.PaymentMethod {
		return nil, apperr.Validation("Payment method does not match the order")
	}

	// 3. --- Store ---
	now := time.Now().UTC()
	payment := &models.Payment{
		OrderID:       in.OrderID,
		UserID:        userID,
		PaymentMethod: in.PaymentMethod,
		CPF:           strings.TrimSpace(in.CPF),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if in.PaymentMethod == models.PaymentMethodCreditCard {
		payment.CardLast4 = models.LastFour(in.CardNumber)
		payment.CardHolder = strings.TrimSpace(in.CardHolder)
		payment.ExpiryDate = strings.TrimSpace(in.ExpiryDate)
		payment.Installments = in.Installments
		payment.Bank = strings.TrimSpace(in.Bank)
	}
	if err := s.payments.Insert(ctx, payment); err != nil {
		return nil, apperr.Internal("Failed to save payment details", err)
	}

	s.metrics.PaymentRecorded(ctx, in.PaymentMethod)
	s.log.Info("payment recorded",
		zap.String("order_id", in.OrderID),
		zap.String("user_id", userID),
		zap.String("payment_method", in.PaymentMethod),
	)
	return payment, nil
}

// ConfirmBankLogin passes the credentials to the bank and stores only the
// confirmation on the latest payment for the order.
func (s *PaymentService) ConfirmBankLogin(ctx context.Context, userID, orderID, username, password string) (*models.Payment, error) {
	if orderID == "" || blank(username) || password == "" {
		return nil, apperr.Validation("Missing required fields")
	}

	payment, err := s.payments.FindLatest(ctx, userID, orderID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, apperr.NotFound("Payment not found")
	}
	if err != nil {
		return nil, apperr.Internal("Failed to save bank login", err)
	}
	if payment.PaymentMethod != models.PaymentMethodCreditCard {
		return nil, apperr.Validation("Bank login is only for credit card payments")
	}

	conf, err := s.bank.Authorize(ctx, orderID, username, password)
	if errors.Is(err, bank.ErrRejected) {
		return nil, apperr.Validation("Bank login rejected")
	}
	if err != nil {
		return nil, apperr.Internal("Failed to save bank login", err)
	}

	payment.BankConfirmation = &models.BankConfirmation{
		Username:    strings.TrimSpace(username),
		Reference:   conf.Reference,
		ConfirmedAt: conf.ConfirmedAt,
	}
	payment.UpdatedAt = time.Now().UTC()
	if err := s.payments.Update(ctx, payment); err != nil {
		return nil, apperr.Internal("Failed to save bank login", err)
	}

	s.log.Info("bank login confirmed", zap.String("order_id", orderID), zap.String("reference", conf.Reference))
	return payment, nil
}

func (s *PaymentService) List(ctx context.Context, userID string) ([]models.Payment, error) {
	payments, err := s.payments.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("Failed to fetch payments", err)
	}
	return payments, nil
}

// CreatePixTransaction asks the gateway for a QR code for the order's total.
func (s *PaymentService) CreatePixTransaction(ctx context.Context, userID, orderID, clientIP string) (*PixTransaction, error) {
	ctx, span := tracer.Start(ctx, "PaymentService.CreatePixTransaction")
	defer span.End()
	span.SetAttributes(attribute.String("order.id", orderID))

	// 1. --- Order and customer ---
	order, err := s.orders.FindOne(ctx, userID, orderID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, apperr.NotFound("Order not found")
	}
	if err != nil {
		return nil, apperr.Internal("Internal server error", err)
	}
	user, err := s.users.FindByID(ctx, order.UserID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, apperr.NotFound("User not found")
	}
	if err != nil {
		return nil, apperr.Internal("Internal server error", err)
	}

	// 2. --- Gateway call ---
	if clientIP == "" {
		clientIP = "unknown"
	}
	req := pix.TransactionRequest{
		Amount:        models.ToMinorUnits(order.Total),
		PaymentMethod: models.PaymentMethodPix,
		ReferenceID:   orderID,
		Currency:      "BRL",
		Description:   "Payment for order #" + orderID,
		Items:         make([]pix.Item, 0, len(order.Items)),
		Customer:      pix.Customer{Name: user.Name, Email: user.Email},
		Pix:           pix.Options{Expiration: pixExpiration},
		PostbackURL:   s.publicBaseURL + "/api/webhooks/payonhub",
		ExternalRef:   orderID,
		IP:            clientIP,
	}
	for _, item := range order.Items {
		req.Items = append(req.Items, pix.Item{
			Name:        item.Name,
			Title:       item.Name,
			Quantity:    item.Quantity,
			UnitPrice:   models.ToMinorUnits(item.Price),
			Description: item.Name,
			Tangible:    true,
		})
	}

	resp, err := s.gateway.CreateTransaction(ctx, req)
	s.metrics.PixRequested(ctx, err == nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "pix transaction failed")
		return nil, s.gatewayError(orderID, err)
	}

	return &PixTransaction{PixCode: resp.Pix.QRCode, Amount: order.Total}, nil
}

func (s *PaymentService) gatewayError(orderID string, err error) error {
	var gwErr *pix.GatewayError
	switch {
	case errors.As(err, &gwErr):
		s.log.Warn("payonhub rejected transaction",
			zap.String("order_id", orderID),
			zap.Int("status", gwErr.StatusCode),
			zap.String("message", gwErr.Message),
		)
		return apperr.Upstream(gwErr.StatusCode, gwErr.Message, gwErr.Details)
	case errors.Is(err, pix.ErrNotConfigured):
		return apperr.Internal("Internal server error", err)
	default:
		return apperr.Upstream(http.StatusBadGateway, "Failed to create PIX transaction", nil)
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
