package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gocql/gocql"
	"github.com/shopspring/decimal"

	"shoplite_back_end/internal/models"
)

// Amounts are stored as text; decimals never go through float64.

// --- Users ---

type ScyllaUserStore struct {
	session *gocql.Session
}

func NewScyllaUserStore(session *gocql.Session) *ScyllaUserStore {
	return &ScyllaUserStore{session: session}
}

func (s *ScyllaUserStore) Insert(ctx context.Context, user models.User) error {
	// LWT enforces email uniqueness at the storage layer.
	previous := make(map[string]interface{})
	applied, err := s.session.Query(
		`INSERT INTO users_by_email (email, user_id, password, role, provider, created_at)
		 VALUES (?, ?, ?, ?, ?, ?) IF NOT EXISTS`,
		user.Email, user.ID, user.Password, user.Role, user.Provider, user.CreatedAt,
	).WithContext(ctx).MapScanCAS(previous)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	if !applied {
		return ErrDuplicate
	}
	return nil
}

func (s *ScyllaUserStore) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := s.session.Query(
		`SELECT email, user_id, password, role, provider, created_at
		 FROM users_by_email WHERE email = ?`, email,
	).WithContext(ctx).Scan(&u.Email, &u.ID, &u.Password, &u.Role, &u.Provider, &u.CreatedAt)
	if errors.Is(err, gocql.ErrNotFound) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// --- Orders ---

type ScyllaOrderStore struct {
	session *gocql.Session
}

func NewScyllaOrderStore(session *gocql.Session) *ScyllaOrderStore {
	return &ScyllaOrderStore{session: session}
}

func (s *ScyllaOrderStore) Insert(ctx context.Context, order models.Order) error {
	// One logged batch: the order row and its item rows commit together.
	batch := s.session.NewBatch(gocql.LoggedBatch).WithContext(ctx)
	batch.Query(
		`INSERT INTO orders (order_id, customer_id, total_amount, created_at) VALUES (?, ?, ?, ?)`,
		order.ID, order.CustomerID, order.TotalAmount.String(), order.CreatedAt,
	)
	for i, item := range order.Items {
		batch.Query(
			`INSERT INTO order_items (order_id, item_index, product_id, quantity, unit_price) VALUES (?, ?, ?, ?, ?)`,
			order.ID, i, item.ProductID, item.Quantity, item.UnitPrice.String(),
		)
	}
	if err := s.session.ExecuteBatch(batch); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (s *ScyllaOrderStore) GetByID(ctx context.Context, id string) (models.Order, error) {
	var (
		o     models.Order
		total string
	)
	err := s.session.Query(
		`SELECT order_id, customer_id, total_amount, created_at FROM orders WHERE order_id = ?`, id,
	).WithContext(ctx).Scan(&o.ID, &o.CustomerID, &total, &o.CreatedAt)
	if errors.Is(err, gocql.ErrNotFound) {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("get order: %w", err)
	}

	o.TotalAmount, err = decimal.NewFromString(total)
	if err != nil {
		return models.Order{}, fmt.Errorf("decode order total: %w", err)
	}

	// item_index is the clustering key, so items come back in submission order.
	iter := s.session.Query(
		`SELECT product_id, quantity, unit_price FROM order_items WHERE order_id = ?`, id,
	).WithContext(ctx).Iter()

	var (
		item  models.OrderItem
		price string
	)
	for iter.Scan(&item.ProductID, &item.Quantity, &price) {
		item.UnitPrice, err = decimal.NewFromString(price)
		if err != nil {
			iter.Close()
			return models.Order{}, fmt.Errorf("decode item price: %w", err)
		}
		o.Items = append(o.Items, item)
		item = models.OrderItem{}
	}
	if err := iter.Close(); err != nil {
		return models.Order{}, fmt.Errorf("read order items: %w", err)
	}

	return o, nil
}

// --- Payments ---

type ScyllaPaymentStore struct {
	session *gocql.Session
}

func NewScyllaPaymentStore(session *gocql.Session) *ScyllaPaymentStore {
	return &ScyllaPaymentStore{session: session}
}

func (s *ScyllaPaymentStore) Insert(ctx context.Context, payment models.Payment) error {
	err := s.session.Query(
		`INSERT INTO payments_by_order (order_id, processed_at, payment_id, amount, method, status)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		payment.OrderID, payment.ProcessedAt, payment.ID,
		payment.Amount.String(), payment.Method, string(payment.Status),
	).WithContext(ctx).Exec()
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

func (s *ScyllaPaymentStore) LatestByOrderID(ctx context.Context, orderID string) (models.Payment, error) {
	var (
		p           models.Payment
		amount      string
		status      string
		processedAt time.Time
	)
	// processed_at clusters DESC, LIMIT 1 is the newest attempt.
	err := s.session.Query(
		`SELECT order_id, processed_at, payment_id, amount, method, status
		 FROM payments_by_order WHERE order_id = ? LIMIT 1`, orderID,
	).WithContext(ctx).Scan(&p.OrderID, &processedAt, &p.ID, &amount, &p.Method, &status)
	if errors.Is(err, gocql.ErrNotFound) {
		return models.Payment{}, ErrNotFound
	}
	if err != nil {
		return models.Payment{}, fmt.Errorf("get payment: %w", err)
	}

	p.ProcessedAt = processedAt
	p.Status = models.PaymentStatus(status)
	p.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return models.Payment{}, fmt.Errorf("decode payment amount: %w", err)
	}
	return p, nil
}
