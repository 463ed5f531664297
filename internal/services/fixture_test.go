package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/01moynul/flordelima-golang/internal/apperr"
	"github.com/01moynul/flordelima-golang/internal/bank"
	"github.com/01moynul/flordelima-golang/internal/catalog"
	"github.com/01moynul/flordelima-golang/internal/memstore"
	"github.com/01moynul/flordelima-golang/internal/models"
	"github.com/01moynul/flordelima-golang/internal/pix"
	"github.com/01moynul/flordelima-golang/internal/services"
)

const testPixKey = "chave-pix@flordelima.com.br"

// MockGateway is a testify mock of the PIX gateway.
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

// failingCarts saves normally until failSave is set.
type failingCarts struct {
	*memstore.Carts
	failSave bool
}

func (f *failingCarts) Save(ctx context.Context, cart *models.Cart) error {
	if f.failSave {
		return errors.New("write concern timeout")
	}
	return f.Carts.Save(ctx, cart)
}

type fixture struct {
	carts     *failingCarts
	orders    *memstore.Orders
	payments  *memstore.Payments
	users     *memstore.Users
	favorites *memstore.Favorites
	addresses *memstore.Addresses
	gateway   *MockGateway
	tx        *memstore.Tx

	cart    *services.CartService
	order   *services.OrderService
	payment *services.PaymentService
	fav     *services.FavoritesService
	account *services.UserService
	address *services.AddressService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := zap.NewNop()

	f := &fixture{
		carts:     &failingCarts{Carts: memstore.NewCarts()},
		orders:    memstore.NewOrders(),
		payments:  memstore.NewPayments(),
		users:     memstore.NewUsers(),
		favorites: memstore.NewFavorites(),
		addresses: memstore.NewAddresses(),
		gateway:   new(MockGateway),
		tx:        &memstore.Tx{},
	}

	f.cart = services.NewCartService(f.carts, catalog.Default(), log)
	f.order = services.NewOrderService(f.orders, f.carts, f.tx, testPixKey, nil, log)
	f.payment = services.NewPaymentService(services.PaymentDeps{
		Payments:      f.payments,
		Orders:        f.orders,
		Users:         f.users,
		Gateway:       f.gateway,
		Bank:          bank.Stub{},
		PublicBaseURL: "https://flordelima.test",
		Log:           log,
	})
	f.fav = services.NewFavoritesService(f.favorites, log)
	f.account = services.NewUserService(f.users, staticTokens{}, log)
	f.address = services.NewAddressService(f.addresses, log)
	return f
}

type staticTokens struct{}

func (staticTokens) GenerateToken(id, email, name string) (string, error) {
	return "token-for-" + id, nil
}

// checkout fills the cart with items and places an order.
func (f *fixture) checkout(t *testing.T, userID, method string, items ...services.AddItemInput) *models.Order {
	t.Helper()
	for _, in := range items {
		_, err := f.cart.AddItem(context.Background(), userID, in)
		require.NoError(t, err)
	}
	order, err := f.order.Create(context.Background(), userID, method)
	require.NoError(t, err)
	return order
}

func assertKind(t *testing.T, err error, kind apperr.Kind) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperr.As(err)
	require.True(t, ok, "expected *apperr.Error, got %T: %v", err, err)
	assert.Equal(t, kind, appErr.Kind, appErr.Message)
}
