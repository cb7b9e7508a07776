// Package order accepts customer orders, snapshots unit prices, computes
// exact decimal totals and persists the order with its items as one unit.
package order

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"shoplite_back_end/internal/httperr"
	"shoplite_back_end/internal/models"
	"shoplite_back_end/internal/store"
	"shoplite_back_end/internal/utils"
	"shoplite_back_end/internal/validators"
)

// PriceSource resolves the unit price of a product at order time.
type PriceSource interface {
	UnitPrice(ctx context.Context, productID int64) (decimal.Decimal, error)
}

// StaticPriceSource returns the same price for every product. Known
// simplification: there is no real pricing integration in this system.
type StaticPriceSource struct {
	Price decimal.Decimal
}

func NewStaticPriceSource() StaticPriceSource {
	return StaticPriceSource{Price: decimal.RequireFromString("9.99")}
}

func (s StaticPriceSource) UnitPrice(context.Context, int64) (decimal.Decimal, error) {
	return s.Price, nil
}

type Handler struct {
	orders store.OrderStore
	prices PriceSource
	mailer *utils.Mailer
}

func NewHandler(orders store.OrderStore, prices PriceSource, mailer *utils.Mailer) *Handler {
	return &Handler{orders: orders, prices: prices, mailer: mailer}
}

type itemRequest struct {
	ProductID *int64 `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

type createOrderRequest struct {
	CustomerID string        `json:"customerId"`
	Items      []itemRequest `json:"items"`
}

func (h *Handler) Create(c *gin.Context) {
	var input createOrderRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		httperr.Abort(c, httperr.BadRequest("Invalid JSON body"))
		return
	}

	v := validators.Violations{}
	validators.Required(v, "customerId", input.CustomerID)
	if len(input.Items) == 0 {
		v.Add("items", "Order must contain at least one item")
	}
	for i, item := range input.Items {
		prefix := "items[" + strconv.Itoa(i) + "]."
		validators.RequiredInt64(v, prefix+"productId", item.ProductID)
		validators.PositiveInt(v, prefix+"quantity", item.Quantity)
	}
	if !v.Empty() {
		httperr.Abort(c, httperr.Validation(v))
		return
	}

	ctx := c.Request.Context()
	order := models.Order{
		ID:          uuid.NewString(),
		CustomerID:  input.CustomerID,
		CreatedAt:   time.Now().UTC(),
		TotalAmount: decimal.Zero,
		Items:       make([]models.OrderItem, 0, len(input.Items)),
	}

	for _, item := range input.Items {
		price, err := h.prices.UnitPrice(ctx, *item.ProductID)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		order.Items = append(order.Items, models.OrderItem{
			ProductID: *item.ProductID,
			Quantity:  *item.Quantity,
			UnitPrice: price,
		})
		order.TotalAmount = order.TotalAmount.Add(price.Mul(decimal.NewFromInt(int64(*item.Quantity))))
	}

	if err := h.orders.Insert(ctx, order); err != nil {
		httperr.Abort(c, err)
		return
	}

	h.sendConfirmation(order)

	c.JSON(http.StatusCreated, order)
}

func (h *Handler) GetByID(c *gin.Context) {
	id := c.Param("id")

	order, err := h.orders.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.Abort(c, httperr.NotFound("Order not found with id: "+id))
			return
		}
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// sendConfirmation emails the customer when the customer id is an email
// address (auth identifies customers by email). Failures are logged only;
// the order is already committed.
func (h *Handler) sendConfirmation(order models.Order) {
	if h.mailer == nil || !strings.Contains(order.CustomerID, "@") {
		return
	}
	go func() {
		if err := h.mailer.SendOrderConfirmation(order.CustomerID, order); err != nil {
			log.Println("⚠️  Order confirmation email failed:", err)
		}
	}()
}
