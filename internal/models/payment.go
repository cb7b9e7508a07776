package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPaid   PaymentStatus = "PAID"
	PaymentFailed PaymentStatus = "FAILED"
)

type Payment struct {
	ID          string          `json:"id" db:"payment_id"`
	OrderID     string          `json:"orderId" db:"order_id"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Method      string          `json:"method" db:"method"`
	Status      PaymentStatus   `json:"status" db:"status"`
	ProcessedAt time.Time       `json:"processedAt" db:"processed_at"`
}
