// Package payment records payment attempts. The outcome stands in for a
// real gateway: an injected decider, a uniform coin flip in production.
package payment

import (
	"errors"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"shoplite_back_end/internal/httperr"
	"shoplite_back_end/internal/models"
	"shoplite_back_end/internal/store"
	"shoplite_back_end/internal/validators"
)

// OutcomeDecider reports whether a payment attempt succeeds. Injectable so
// tests can force either outcome.
type OutcomeDecider func() bool

func CoinFlip() bool { return rand.IntN(2) == 0 }

type Handler struct {
	payments store.PaymentStore
	decide   OutcomeDecider
}

func NewHandler(payments store.PaymentStore, decide OutcomeDecider) *Handler {
	if decide == nil {
		decide = CoinFlip
	}
	return &Handler{payments: payments, decide: decide}
}

type paymentRequest struct {
	OrderID string          `json:"orderId"`
	Amount  decimal.Decimal `json:"amount"`
	Method  string          `json:"method"`
}

func (h *Handler) Process(c *gin.Context) {
	var input paymentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		httperr.Abort(c, httperr.BadRequest("Invalid JSON body"))
		return
	}

	v := validators.Violations{}
	validators.Required(v, "orderId", input.OrderID)
	validators.Required(v, "method", input.Method)
	validators.PositiveAmount(v, "amount", input.Amount)
	if !v.Empty() {
		httperr.Abort(c, httperr.Validation(v))
		return
	}

	status := models.PaymentFailed
	if h.decide() {
		status = models.PaymentPaid
	}

	payment := models.Payment{
		ID:          uuid.NewString(),
		OrderID:     input.OrderID,
		Amount:      input.Amount,
		Method:      input.Method,
		Status:      status,
		ProcessedAt: time.Now().UTC(),
	}

	if err := h.payments.Insert(c.Request.Context(), payment); err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

func (h *Handler) GetByOrderID(c *gin.Context) {
	orderID := c.Param("orderId")

	payment, err := h.payments.LatestByOrderID(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.Abort(c, httperr.NotFound("Payment not found for order ID: "+orderID))
			return
		}
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}
