// Package store defines the persistence interfaces each service receives by
// constructor injection, with a ScyllaDB implementation for production and
// an in-memory one for dev mode and tests.
package store

import (
	"context"
	"errors"

	"shoplite_back_end/internal/models"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate key")
)

type UserStore interface {
	// Insert persists a new user; ErrDuplicate when the email is taken.
	Insert(ctx context.Context, user models.User) error
	GetByEmail(ctx context.Context, email string) (models.User, error)
}

type OrderStore interface {
	// Insert persists the order and all its items as one unit of work.
	Insert(ctx context.Context, order models.Order) error
	GetByID(ctx context.Context, id string) (models.Order, error)
}

type PaymentStore interface {
	Insert(ctx context.Context, payment models.Payment) error
	// LatestByOrderID returns the most recent payment attempt for the order.
	LatestByOrderID(ctx context.Context, orderID string) (models.Payment, error)
}
