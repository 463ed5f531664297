// Package memstore keeps every collection in memory. It backs the service and
// handler tests and behaves like the MongoDB repositories: the same sentinel
// errors, the same ordering, and copies in and out so callers never share state.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/01moynul/flordelima-golang/internal/models"
)

// Carts

type Carts struct {
	mu     sync.Mutex
	byUser map[string]models.Cart
}

func NewCarts() *Carts {
	return &Carts{byUser: map[string]models.Cart{}}
}

func (s *Carts) FindByUser(_ context.Context, userID string) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byUser[userID]
	if !ok {
		return nil, models.ErrNotFound
	}
	c = copyCart(c)
	return &c, nil
}

func (s *Carts) Save(_ context.Context, cart *models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart.Normalize()
	if existing, ok := s.byUser[cart.UserID]; ok {
		cart.ID = existing.ID
	} else if cart.ID.IsZero() {
		cart.ID = primitive.NewObjectID()
	}
	s.byUser[cart.UserID] = copyCart(*cart)
	return nil
}

func copyCart(c models.Cart) models.Cart {
	c.Items = models.CopyItems(c.Items)
	c.LastCart = models.CopyItems(c.LastCart)
	return c
}

// Orders

type Orders struct {
	mu     sync.Mutex
	orders []models.Order
}

func NewOrders() *Orders {
	return &Orders{}
}

func (s *Orders) Insert(_ context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	s.orders = append(s.orders, copyOrder(*order))
	return nil
}

func (s *Orders) ListByUser(_ context.Context, userID string) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Order{}
	// Walk backwards so equal timestamps still come out newest first.
	for i := len(s.orders) - 1; i >= 0; i-- {
		if s.orders[i].UserID == userID {
			out = append(out, copyOrder(s.orders[i]))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Orders) FindOne(_ context.Context, userID, orderID string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(userID, orderID)
	if i < 0 {
		return nil, models.ErrNotFound
	}
	o := copyOrder(s.orders[i])
	return &o, nil
}

func (s *Orders) Update(_ context.Context, userID, orderID, expectedStatus string, upd models.OrderUpdate) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(userID, orderID)
	if i < 0 || s.orders[i].Status != expectedStatus {
		return nil, models.ErrNotFound
	}
	if upd.Status != nil {
		s.orders[i].Status = *upd.Status
	}
	if upd.PixKey != nil {
		s.orders[i].PixKey = *upd.PixKey
	}
	s.orders[i].UpdatedAt = time.Now().UTC()
	o := copyOrder(s.orders[i])
	return &o, nil
}

func (s *Orders) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *Orders) CancelPendingBefore(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for i := range s.orders {
		if s.orders[i].Status == models.OrderStatusPending && s.orders[i].CreatedAt.Before(cutoff) {
			s.orders[i].Status = models.OrderStatusCancelled
			s.orders[i].UpdatedAt = time.Now().UTC()
			n++
		}
	}
	return n, nil
}

// Count returns how many orders are stored for all users.
func (s *Orders) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

func (s *Orders) index(userID, orderID string) int {
	id, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return -1
	}
	for i := range s.orders {
		if s.orders[i].ID == id && s.orders[i].UserID == userID {
			return i
		}
	}
	return -1
}

func copyOrder(o models.Order) models.Order {
	o.Items = models.CopyItems(o.Items)
	return o
}

// Favorites

type Favorites struct {
	mu     sync.Mutex
	byUser map[string]models.Favorites
}

func NewFavorites() *Favorites {
	return &Favorites{byUser: map[string]models.Favorites{}}
}

func (s *Favorites) FindByUser(_ context.Context, userID string) (*models.Favorites, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.byUser[userID]
	if !ok {
		return nil, models.ErrNotFound
	}
	f.ProductIDs = append([]int64{}, f.ProductIDs...)
	return &f, nil
}

func (s *Favorites) Save(_ context.Context, fav *models.Favorites) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fav.ID.IsZero() {
		fav.ID = primitive.NewObjectID()
	}
	stored := *fav
	stored.ProductIDs = append([]int64{}, fav.ProductIDs...)
	s.byUser[fav.UserID] = stored
	return nil
}

// Payments

type Payments struct {
	mu       sync.Mutex
	payments []models.Payment
}

func NewPayments() *Payments {
	return &Payments{}
}

func (s *Payments) Insert(_ context.Context, payment *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	s.payments = append(s.payments, copyPayment(*payment))
	return nil
}

func (s *Payments) FindLatest(_ context.Context, userID, orderID string) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.payments) - 1; i >= 0; i-- {
		if p := s.payments[i]; p.UserID == userID && p.OrderID == orderID {
			p = copyPayment(p)
			return &p, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *Payments) Update(_ context.Context, payment *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.payments {
		if s.payments[i].ID == payment.ID {
			s.payments[i] = copyPayment(*payment)
			return nil
		}
	}
	return models.ErrNotFound
}

func (s *Payments) ListByUser(_ context.Context, userID string) ([]models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Payment{}
	for i := len(s.payments) - 1; i >= 0; i-- {
		if s.payments[i].UserID == userID {
			out = append(out, copyPayment(s.payments[i]))
		}
	}
	return out, nil
}

func copyPayment(p models.Payment) models.Payment {
	if p.BankConfirmation != nil {
		bc := *p.BankConfirmation
		p.BankConfirmation = &bc
	}
	return p
}

// Users

type Users struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]models.User
}

func NewUsers() *Users {
	return &Users{users: map[primitive.ObjectID]models.User{}}
}

func (s *Users) Insert(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return models.ErrDuplicate
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.users[user.ID] = *user
	return nil
}

func (s *Users) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email = models.NormalizeEmail(email)
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *Users) FindByID(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}
	u, ok := s.users[oid]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &u, nil
}

// Addresses

type Addresses struct {
	mu     sync.Mutex
	byUser map[string]models.Address
}

func NewAddresses() *Addresses {
	return &Addresses{byUser: map[string]models.Address{}}
}

func (s *Addresses) FindByUser(_ context.Context, userID string) (*models.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.byUser[userID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &a, nil
}

func (s *Addresses) Save(_ context.Context, addr *models.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.byUser[addr.UserID]; ok {
		addr.ID = existing.ID
	} else if addr.ID.IsZero() {
		addr.ID = primitive.NewObjectID()
	}
	s.byUser[addr.UserID] = *addr
	return nil
}

// Tx runs fn directly. Transactions reports what Atomic returns, so tests can
// exercise both the transactional and the compensating checkout path.
type Tx struct {
	Transactions bool
}

func (t Tx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (t Tx) Atomic() bool {
	return t.Transactions
}
