package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/01moynul/flordelima-golang/internal/auth"
	"github.com/01moynul/flordelima-golang/internal/bank"
	"github.com/01moynul/flordelima-golang/internal/catalog"
	"github.com/01moynul/flordelima-golang/internal/handlers"
	"github.com/01moynul/flordelima-golang/internal/memstore"
	"github.com/01moynul/flordelima-golang/internal/pix"
	"github.com/01moynul/flordelima-golang/internal/routes"
	"github.com/01moynul/flordelima-golang/internal/services"
)

const pixKey = "chave-pix@flordelima.com.br"

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateTransaction(ctx context.Context, req pix.TransactionRequest) (*pix.TransactionResponse, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*pix.TransactionResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type testApp struct {
	router  *gin.Engine
	gateway *MockGateway
	cookie  *http.Cookie
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()

	carts := memstore.NewCarts()
	orders := memstore.NewOrders()
	users := memstore.NewUsers()
	tokens := auth.NewTokenService("test-secret", time.Hour)
	gateway := new(MockGateway)
	products := catalog.Default()

	h := &handlers.Handlers{
		Carts:  services.NewCartService(carts, products, log),
		Orders: services.NewOrderService(orders, carts, memstore.Tx{}, pixKey, nil, log),
		Payments: services.NewPaymentService(services.PaymentDeps{
			Payments:      memstore.NewPayments(),
			Orders:        orders,
			Users:         users,
			Gateway:       gateway,
			Bank:          bank.Stub{},
			PublicBaseURL: "https://flordelima.test",
			Log:           log,
		}),
		Favorites: services.NewFavoritesService(memstore.NewFavorites(), log),
		Users:     services.NewUserService(users, tokens, log),
		Addresses: services.NewAddressService(memstore.NewAddresses(), log),
		Catalog:   products,
		Tokens:    tokens,
		DB:        fakePinger{},
		Log:       log,
	}

	router := routes.SetupRouter(h, routes.RouterConfig{
		AllowedOrigins: []string{"http://localhost:3000"},
		Log:            log,
	})
	return &testApp{router: router, gateway: gateway}
}

func (a *testApp) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if a.cookie != nil {
		req.AddCookie(a.cookie)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// login registers a fresh account and keeps its session cookie.
func (a *testApp) login(t *testing.T, email string) {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/auth/register", gin.H{"name": "Maria", "email": email, "password": "segredo1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = a.do(t, http.MethodPost, "/api/auth/login", gin.H{"email": email, "password": "segredo1"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	for _, c := range w.Result().Cookies() {
		if c.Name == auth.CookieName {
			a.cookie = c
		}
	}
	require.NotNil(t, a.cookie, "login must set the session cookie")
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	decode(t, w, &body)
	return body.Error
}

type cartBody struct {
	Items []struct {
		ProductID int64   `json:"productId"`
		Quantity  int     `json:"quantity"`
		Price     float64 `json:"price"`
	} `json:"items"`
	Total float64 `json:"total"`
}

type orderBody struct {
	Order struct {
		ID            string  `json:"_id"`
		Status        string  `json:"status"`
		Total         float64 `json:"total"`
		PaymentMethod string  `json:"paymentMethod"`
	} `json:"order"`
	Pix *struct {
		ChavePix string  `json:"chavePix"`
		Amount   float64 `json:"amount"`
	} `json:"pix"`
}

func TestProtectedRoutes_RequireSession(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/api/cart", "/api/orders", "/api/favorites", "/api/payments", "/api/address", "/api/auth/me"} {
		w := app.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.Equal(t, "Not authenticated", errorMessage(t, w), path)
	}

	app.cookie = &http.Cookie{Name: auth.CookieName, Value: "not-a-jwt"}
	w := app.do(t, http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid token", errorMessage(t, w))
}

func TestAuth_LoginMeLogout(t *testing.T) {
	app := newTestApp(t)
	app.login(t, "Maria@Example.com")

	assert.True(t, app.cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, app.cookie.SameSite)

	w := app.do(t, http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var me struct {
		User struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"user"`
	}
	decode(t, w, &me)
	assert.Equal(t, "maria@example.com", me.User.Email)
	assert.Equal(t, "Maria", me.User.Name)
	assert.NotEmpty(t, me.User.ID)

	w = app.do(t, http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cleared *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.CookieName {
			cleared = c
		}
	}
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}

func TestAuth_WrongPassword(t *testing.T) {
	app := newTestApp(t)
	app.login(t, "ana@example.com")

	w := app.do(t, http.MethodPost, "/api/auth/login", gin.H{"email": "ana@example.com", "password": "errada"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", errorMessage(t, w))
}

func TestAuth_RegisterPasswordTooLong(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/api/auth/register", gin.H{
		"name":     "Ana",
		"email":    "ana@example.com",
		"password": strings.Repeat("a", 80),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuth_DuplicateRegistration(t *testing.T) {
	app := newTestApp(t)
	body := gin.H{"name": "Ana", "email": "ana@example.com", "password": "segredo1"}

	require.Equal(t, http.StatusCreated, app.do(t, http.MethodPost, "/api/auth/register", body).Code)
	w := app.do(t, http.MethodPost, "/api/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already registered", errorMessage(t, w))
}

// A user fills the cart, checks out with PIX and sees the PIX key on the order.
func TestCheckout_PixOrder(t *testing.T) {
	app := newTestApp(t)
	app.login(t, "cliente@example.com")

	// 1. --- Fill the cart ---
	w := app.do(t, http.MethodPost, "/api/cart", gin.H{"productId": 7, "quantity": 1})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = app.do(t, http.MethodPost, "/api/cart", gin.H{"productId": 1, "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var cart cartBody
	decode(t, w, &cart)
	require.Len(t, cart.Items, 2)
	assert.InDelta(t, 599.70, cart.Total, 0.001)

	// 2. --- Place the order ---
	w = app.do(t, http.MethodPost, "/api/orders", gin.H{"paymentMethod": "pix"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created orderBody
	decode(t, w, &created)
	assert.Equal(t, "pending", created.Order.Status)
	assert.InDelta(t, 599.70, created.Order.Total, 0.001)
	require.NotEmpty(t, created.Order.ID)

	// 3. --- The cart is empty ---
	w = app.do(t, http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &cart)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)

	// 4. --- Order details carry the PIX key ---
	w = app.do(t, http.MethodGet, "/api/orders/"+created.Order.ID, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var details orderBody
	decode(t, w, &details)
	require.NotNil(t, details.Pix)
	assert.Equal(t, pixKey, details.Pix.ChavePix)
	assert.InDelta(t, 599.70, details.Pix.Amount, 0.001)

	// 5. --- Listed ---
	w = app.do(t, http.MethodGet, "/api/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	decode(t, w, &list)
	assert.Len(t, list, 1)
}

// The user leaves the payment page and gets the cart back.
func TestCheckout_RestoreCart(t *testing.T) {
	app := newTestApp(t)
	app.login(t, "volta@example.com")

	require.Equal(t, http.StatusOK, app.do(t, http.MethodPost, "/api/cart", gin.H{"productId": 5, "quantity": 3}).Code)
	require.Equal(t, http.StatusCreated, app.do(t, http.MethodPost, "/api/orders", gin.H{"paymentMethod": "creditCard"}).Code)

	w := app.do(t, http.MethodPost, "/api/cart/restore", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var restored cartBody
	decode(t, w, &restored)
	require.Len(t, restored.Items, 1)
	assert.Equal(t, 3, restored.Items[0].Quantity)
	assert.InDelta(t, 269.70, restored.Total, 0.001)

	w = app.do(t, http.MethodPost, "/api/cart/restore", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No previous cart to restore", errorMessage(t, w))
}

func TestCheckout_EmptyCart(t *testing.T) {
	app := newTestApp(t)
	app.login(t, "vazio@example.com")

	w := app.do(t, http.MethodPost, "/api/orders", gin.H{"paymentMethod": "pix"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCart_SameProductIncrementsQuantity(t *testing.T) {
	app := newTestApp(t)
	app.login(t, "buque@example.com")

	w := app.do(t, http.MethodPost, "/api/cart", gin.H{"productId": 7, "quantity": 1})
	require.Equal(t, http.StatusOK, w.Code)
	var cart cartBody
	decode(t, w, &cart)
	assert.InDelta(t, 299.90, cart.Total, 0.001)

	w = app.do(t, http.MethodPost, "/api/cart", gin.H{"productId": 7, "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.InDelta(t, 899.70, cart.Total, 0.001)

	// Removing a product that is not there leaves the cart as it was.
	w = app.do(t, http.MethodDelete, "/api/cart", gin.H{"productId": 12})
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &cart)
	require.Len(t, cart.Items, 1)
	assert.InDelta(t, 899.70, cart.Total, 0.001)
}

func TestOrders_InvalidStatusLeavesOrderUnchanged(t *testing.T) {
	app := newTestApp(t)
	app.login(t, "status@example.com")

	require.Equal(t, http.StatusOK, app.do(t, http.MethodPost, "/api/cart", gin.H{"productId": 1, "quantity": 1}).Code)
	w := app.do(t, http.MethodPost, "/api/orders", gin.H{"paymentMethod": "pix"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created orderBody
	decode(t, w, &created)
	path := "/api/orders/" + created.Order.ID

	w = app.do(t, http.MethodPatch, path, gin.H{"status": "invalid"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got orderBody
	decode(t, w, &got)
	assert.Equal(t, "pending", got.Order.Status)
	assert.InDelta(t, 149.90, got.Order.Total, 0.001)
}

func TestCart_QuantityLimit(t *testing.T) {
	app := newTestApp(t)
	app.login(t, "muitos@example.com")

	w := app.do(t, http.MethodPost, "/api/cart", gin.H{"productId": 1, "quantity": math.MaxInt64})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	require.Equal(t, http.StatusOK, app.do(t, http.MethodPost, "/api/cart", gin.H{"productId": 1, "quantity": 999}).Code)
	w = app.do(t, http.MethodPost, "/api/cart", gin.H{"productId": 1, "quantity": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Quantity cannot exceed 999 per product", errorMessage(t, w))

	w = app.do(t, http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cart cartBody
	decode(t, w, &cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 999, cart.Items[0].Quantity)
}

func TestCart_UpdateAndRemove(t *testing.T) {
	app := newTestApp(t)
	app.login(t, "carrinho@example.com")

	require.Equal(t, http.StatusOK, app.do(t, http.MethodPost, "/api/cart", gin.H{"productId": 2, "quantity": 1}).Code)

	w := app.do(t, http.MethodPatch, "/api/cart", gin.H{"productId": 2, "quantity": 4})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var cart cartBody
	decode(t, w, &cart)
	assert.InDelta(t, 479.60, cart.Total, 0.001)

	w = app.do(t, http.MethodPatch, "/api/cart", gin.H{"productId": 99, "quantity": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Item not found in cart", errorMessage(t, w))

	w = app.do(t, http.MethodDelete, "/api/cart", gin.H{"productId": 2})
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &cart)
	assert.Empty(t, cart.Items)

	w = app.do(t, http.MethodPost, "/api/cart", gin.H{"productId": 2, "quantity": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// Card payment followed by the bank confirmation step.
func TestPayments_CardAndBankLogin(t *testing.T) {
	app := newTestApp(t)
	app.login(t, "cartao@example.com")

	require.Equal(t, http.StatusOK, app.do(t, http.MethodPost, "/api/cart", gin.H{"productId": 3, "quantity": 1}).Code)
	w := app.do(t, http.MethodPost, "/api/orders", gin.H{"paymentMethod": "creditCard"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created orderBody
	decode(t, w, &created)

	w = app.do(t, http.MethodPost, "/api/payments", gin.H{
		"orderId":       created.Order.ID,
		"paymentMethod": "creditCard",
		"cardNumber":    "4111 1111 1111 1234",
		"cardHolder":    "MARIA SILVA",
		"expiryDate":    "12/30",
		"cvv":           "123",
		"cpf":           "123.456.789-00",
		"parcelas":      3,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Payment details saved", gjsonString(t, w, "message"))
	assert.NotContains(t, w.Body.String(), "4111")
	assert.NotContains(t, w.Body.String(), "\"cvv\"")

	w = app.do(t, http.MethodPatch, "/api/payments/bank-login", gin.H{
		"orderId":   created.Order.ID,
		"bankLogin": gin.H{"username": "maria", "password": "banco123"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Bank login saved", gjsonString(t, w, "message"))

	w = app.do(t, http.MethodGet, "/api/payments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "banco123")
}

func TestPayments_MissingFields(t *testing.T) {
	app := newTestApp(t)
	app.login(t, "faltando@example.com")

	w := app.do(t, http.MethodPost, "/api/payments", gin.H{"paymentMethod": "pix"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields", errorMessage(t, w))
}

func TestPixPayment(t *testing.T) {
	app := newTestApp(t)
	app.login(t, "pix@example.com")

	require.Equal(t, http.StatusOK, app.do(t, http.MethodPost, "/api/cart", gin.H{"productId": 10, "quantity": 2}).Code)
	w := app.do(t, http.MethodPost, "/api/orders", gin.H{"paymentMethod": "pix"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created orderBody
	decode(t, w, &created)

	t.Run("gateway returns a QR code", func(t *testing.T) {
		resp := &pix.TransactionResponse{ID: "tx_1", Status: "waiting_payment"}
		resp.Pix.QRCode = "00020126580014BR.GOV.BCB.PIX"
		app.gateway.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(req pix.TransactionRequest) bool {
			return req.Amount == 15980 && req.ReferenceID == created.Order.ID
		})).Return(resp, nil).Once()

		w := app.do(t, http.MethodGet, "/api/pix-payment/"+created.Order.ID, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var body services.PixTransaction
		decode(t, w, &body)
		assert.Equal(t, "00020126580014BR.GOV.BCB.PIX", body.PixCode)
		assert.InDelta(t, 159.80, body.Amount, 0.001)
	})

	t.Run("gateway rejection mirrors its status", func(t *testing.T) {
		app.gateway.On("CreateTransaction", mock.Anything, mock.Anything).
			Return(nil, &pix.GatewayError{
				StatusCode: http.StatusUnprocessableEntity,
				Message:    "Invalid customer",
				Details:    map[string]any{"field": "customer.document"},
			}).Once()

		w := app.do(t, http.MethodGet, "/api/pix-payment/"+created.Order.ID, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var body struct {
			Error   string         `json:"error"`
			Details map[string]any `json:"details"`
		}
		decode(t, w, &body)
		assert.Equal(t, "Invalid customer", body.Error)
		assert.Equal(t, "customer.document", body.Details["field"])
	})

	t.Run("network failure is a bad gateway", func(t *testing.T) {
		app.gateway.On("CreateTransaction", mock.Anything, mock.Anything).
			Return(nil, errors.New("connection reset")).Once()

		w := app.do(t, http.MethodGet, "/api/pix-payment/"+created.Order.ID, nil)
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("unknown order", func(t *testing.T) {
		w := app.do(t, http.MethodGet, "/api/pix-payment/64b7f0f0f0f0f0f0f0f0f0f0", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	app.gateway.AssertExpectations(t)
}

func TestOrders_UpdateAndOwnership(t *testing.T) {
	app := newTestApp(t)
	app.login(t, "dona@example.com")

	require.Equal(t, http.StatusOK, app.do(t, http.MethodPost, "/api/cart", gin.H{"productId": 4, "quantity": 1}).Code)
	w := app.do(t, http.MethodPost, "/api/orders", gin.H{"paymentMethod": "pix"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created orderBody
	decode(t, w, &created)
	path := "/api/orders/" + created.Order.ID

	w = app.do(t, http.MethodPatch, path, gin.H{"status": "completed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated orderBody
	decode(t, w, &updated)
	assert.Equal(t, "completed", updated.Order.Status)

	w = app.do(t, http.MethodPatch, path, gin.H{"status": "bogus"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Another user cannot see it.
	owner := app.cookie
	app.login(t, "outra@example.com")
	w = app.do(t, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Order not found", errorMessage(t, w))
	app.cookie = owner

	w = app.do(t, http.MethodGet, "/api/orders/not-an-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFavorites(t *testing.T) {
	app := newTestApp(t)
	app.login(t, "fav@example.com")

	w := app.do(t, http.MethodGet, "/api/favorites", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	app.do(t, http.MethodPost, "/api/favorites", gin.H{"productId": 3, "action": "add"})
	w = app.do(t, http.MethodPost, "/api/favorites", gin.H{"productId": 3, "action": "add"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[3]", w.Body.String())

	w = app.do(t, http.MethodPost, "/api/favorites", gin.H{"productId": 3, "action": "remove"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = app.do(t, http.MethodPost, "/api/favorites", gin.H{"productId": 3, "action": "toggle"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddress(t *testing.T) {
	app := newTestApp(t)
	app.login(t, "endereco@example.com")

	w := app.do(t, http.MethodGet, "/api/address", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.do(t, http.MethodPost, "/api/address", gin.H{
		"recipientName": "Maria Silva",
		"streetType":    "Rua",
		"streetName":    "das Flores",
		"streetNumber":  "42",
		"neighborhood":  "Centro",
		"zipCode":       "01001-000",
		"city":          "São Paulo",
		"state":         "SP",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Endereço salvo com sucesso!", gjsonString(t, w, "message"))

	w = app.do(t, http.MethodGet, "/api/address", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "das Flores", gjsonString(t, w, "streetName"))

	w = app.do(t, http.MethodPost, "/api/address", gin.H{"recipientName": "Sem rua"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProducts(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all []map[string]any
	decode(t, w, &all)
	assert.NotEmpty(t, all)

	w = app.do(t, http.MethodGet, "/api/products/7", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.InDelta(t, 299.90, gjsonNumber(t, w, "price"), 0.001)

	assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodGet, "/api/products/9999", nil).Code)
	assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodGet, "/api/products/abc", nil).Code)

	w = app.do(t, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var categories []struct {
		Name         string `json:"name"`
		Slug         string `json:"slug"`
		ProductCount int    `json:"productCount"`
	}
	decode(t, w, &categories)
	require.NotEmpty(t, categories)
	assert.NotEmpty(t, categories[0].Slug)
	assert.Positive(t, categories[0].ProductCount)

	w = app.do(t, http.MethodGet, "/api/products?category=buques&q=rosas", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)
	w := app.do(t, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func gjsonString(t *testing.T, w *httptest.ResponseRecorder, key string) string {
	t.Helper()
	var m map[string]any
	decode(t, w, &m)
	s, _ := m[key].(string)
	return s
}

func gjsonNumber(t *testing.T, w *httptest.ResponseRecorder, key string) float64 {
	t.Helper()
	var m map[string]any
	decode(t, w, &m)
	f, _ := m[key].(float64)
	return f
}
