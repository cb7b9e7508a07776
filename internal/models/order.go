package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID          string          `json:"id" db:"order_id"`
	CustomerID  string          `json:"customerId" db:"customer_id"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
	TotalAmount decimal.Decimal `json:"totalAmount" db:"total_amount"`
	Items       []OrderItem     `json:"items"`
}

// OrderItem snapshots the unit price at order time; it lives and dies with
// its parent order.
type OrderItem struct {
	ProductID int64           `json:"productId" db:"product_id"`
	Quantity  int             `json:"quantity" db:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice" db:"unit_price"`
}
