package order_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoplite_back_end/internal/handlers/order"
	"shoplite_back_end/internal/models"
	"shoplite_back_end/internal/routes"
	"shoplite_back_end/internal/store"
)

// mapPrices resolves per-product prices so totals are distinguishable.
type mapPrices map[int64]string

func (m mapPrices) UnitPrice(_ context.Context, productID int64) (decimal.Decimal, error) {
	return decimal.NewFromString(m[productID])
}

func newOrderRouter(prices order.PriceSource) (*gin.Engine, *store.MemoryOrderStore) {
	gin.SetMode(gin.TestMode)
	orders := store.NewMemoryOrderStore()
	r := gin.New()
	routes.RegisterOrderRoutes(r, order.NewHandler(orders, prices, nil))
	return r, orders
}

func post(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestCreateOrderComputesExactTotal(t *testing.T) {
	r, _ := newOrderRouter(mapPrices{1: "2.50", 2: "10.05"})

	w := post(t, r, "/orders", `{"customerId":"cust-1","items":[{"productId":1,"quantity":2},{"productId":2,"quantity":1}]}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// 2×2.50 + 1×10.05 — no floating point drift allowed.
	assert.True(t, created.TotalAmount.Equal(decimal.RequireFromString("15.05")),
		"got total %s", created.TotalAmount)
	require.Len(t, created.Items, 2)
	assert.True(t, created.Items[0].UnitPrice.Equal(decimal.RequireFromString("2.50")))
	assert.True(t, created.Items[1].UnitPrice.Equal(decimal.RequireFromString("10.05")))
	assert.Equal(t, "cust-1", created.CustomerID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.NotEmpty(t, created.ID)
}

func TestGetOrderReproducesCreatedOrder(t *testing.T) {
	r, _ := newOrderRouter(mapPrices{7: "1.10", 8: "3.33"})

	w := post(t, r, "/orders", `{"customerId":"cust-2","items":[{"productId":7,"quantity":3},{"productId":8,"quantity":2}]}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = get(t, r, "/orders/"+created.ID)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))

	assert.Equal(t, created.ID, fetched.ID)
	assert.True(t, fetched.TotalAmount.Equal(created.TotalAmount))
	require.Len(t, fetched.Items, 2)
	// Items come back in submission order.
	assert.Equal(t, int64(7), fetched.Items[0].ProductID)
	assert.Equal(t, int64(8), fetched.Items[1].ProductID)
}

func TestCreateOrderValidation(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		wantFields []string
	}{
		{
			name:       "empty items",
			body:       `{"customerId":"cust-1","items":[]}`,
			wantFields: []string{"items"},
		},
		{
			name:       "blank customer and missing quantity",
			body:       `{"customerId":"  ","items":[{"productId":1}]}`,
			wantFields: []string{"customerId", "items[0].quantity"},
		},
		{
			name:       "missing product id and zero quantity",
			body:       `{"customerId":"cust-1","items":[{"quantity":0}]}`,
			wantFields: []string{"items[0].productId", "items[0].quantity"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, orders := newOrderRouter(mapPrices{})

			w := post(t, r, "/orders", tc.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var body struct {
				Message string            `json:"message"`
				Details map[string]string `json:"details"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "Validation failed", body.Message)
			for _, field := range tc.wantFields {
				assert.Contains(t, body.Details, field)
			}

			// Nothing was persisted.
			assert.Equal(t, 0, orders.Len())
		})
	}
}

func TestGetOrderNotFound(t *testing.T) {
	r, _ := newOrderRouter(mapPrices{})

	w := get(t, r, "/orders/missing-id")
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Order not found with id: missing-id", body["message"])
}
