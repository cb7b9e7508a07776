package models

import "github.com/shopspring/decimal"

// Product mirrors the remote catalog payload. This service never owns
// product data, it only proxies and caches it.
type Product struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image,omitempty"`
	Rating      *ProductRating  `json:"rating,omitempty"`
}

type ProductRating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}
