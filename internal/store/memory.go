package store

import (
	"context"
	"sync"

	"shoplite_back_end/internal/models"
)

// In-memory stores used when no ScyllaDB is configured and by the tests.
// Same contracts as the Scylla implementations, guarded by a RWMutex.

type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]models.User // keyed by email
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]models.User)}
}

func (s *MemoryUserStore) Insert(_ context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[user.Email]; exists {
		return ErrDuplicate
	}
	s.users[user.Email] = user
	return nil
}

func (s *MemoryUserStore) GetByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[email]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

type MemoryOrderStore struct {
	mu     sync.RWMutex
	orders map[string]models.Order
}

func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{orders: make(map[string]models.Order)}
}

func (s *MemoryOrderStore) Insert(_ context.Context, order models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[order.ID] = order
	return nil
}

func (s *MemoryOrderStore) GetByID(_ context.Context, id string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return models.Order{}, ErrNotFound
	}
	return o, nil
}

func (s *MemoryOrderStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

type MemoryPaymentStore struct {
	mu       sync.RWMutex
	payments map[string][]models.Payment // keyed by order id, insertion order
}

func NewMemoryPaymentStore() *MemoryPaymentStore {
	return &MemoryPaymentStore{payments: make(map[string][]models.Payment)}
}

func (s *MemoryPaymentStore) Insert(_ context.Context, payment models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments[payment.OrderID] = append(s.payments[payment.OrderID], payment)
	return nil
}

func (s *MemoryPaymentStore) LatestByOrderID(_ context.Context, orderID string) (models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	attempts := s.payments[orderID]
	if len(attempts) == 0 {
		return models.Payment{}, ErrNotFound
	}
	return attempts[len(attempts)-1], nil
}
