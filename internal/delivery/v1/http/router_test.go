package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DRSN-tech/retail-core/internal/repository/memory"
	"github.com/DRSN-tech/retail-core/internal/usecase"
	"github.com/DRSN-tech/retail-core/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T, limiter *RateLimiter) (http.Handler, *usecase.Store) {
	t.Helper()

	store, err := usecase.NewStore(context.Background(), memory.NewSnapshotRepo())
	require.NoError(t, err)

	mux := chi.NewRouter()
	NewRouter(mux, logger.Nop{}, limiter).Init(store)
	return mux, store
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 && rec.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func TestRecordSale_ServerQuote(t *testing.T) {
	h, store := newTestAPI(t, nil)

	rec, body := doJSON(t, h, http.MethodPost, "/api/v1/sales", `{
		"customerId": "1",
		"items": [{"productId": "1", "quantity": 3, "price": "600"}],
		"discount": 0,
		"paymentMethod": "CASH"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	assert.Equal(t, "INV-1001", body["invoiceNumber"])
	assert.Equal(t, "1800", body["subtotal"])
	assert.Equal(t, "90", body["tax"])
	assert.Equal(t, "1890", body["total"])
	assert.Equal(t, "450", body["profit"])
	assert.Equal(t, "Walk-in Customer", body["customerName"])

	state := store.Snapshot()
	assert.Equal(t, 47, state.Products[0].Stock)
	assert.Equal(t, "1890", state.Customers[0].TotalPurchase.String())
}

func TestRecordSale_ClientTotals(t *testing.T) {
	h, _ := newTestAPI(t, nil)

	rec, body := doJSON(t, h, http.MethodPost, "/api/v1/sales", `{
		"items": [{"productId": "2", "name": "Rice", "quantity": 1, "price": 850}],
		"subtotal": "850", "discount": "50", "tax": "0", "total": "800",
		"paymentMethod": "CARD"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "800", body["total"])
	assert.Equal(t, "Guest", body["customerName"])
}

func TestRecordSale_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		code    int
		message string
	}{
		{
			name:    "empty cart",
			body:    `{"items": [], "paymentMethod": "CASH"}`,
			code:    http.StatusBadRequest,
			message: "cart is empty",
		},
		{
			name:    "inconsistent totals",
			body:    `{"items": [{"productId": "1", "quantity": 1, "price": "600"}], "subtotal": "500", "tax": "0", "total": "500", "paymentMethod": "CASH"}`,
			code:    http.StatusBadRequest,
			message: "sale totals are inconsistent with line items",
		},
		{
			name:    "invalid payment",
			body:    `{"items": [{"productId": "1", "quantity": 1, "price": "600"}], "paymentMethod": "CHEQUE"}`,
			code:    http.StatusBadRequest,
			message: "invalid payment method",
		},
		{
			name:    "zero quantity",
			body:    `{"items": [{"productId": "1", "quantity": 0, "price": "600"}], "paymentMethod": "CASH"}`,
			code:    http.StatusBadRequest,
			message: "quantity must be between 1 and 1000000",
		},
		{
			name:    "price precision",
			body:    `{"items": [{"productId": "1", "quantity": 1, "price": "600.001"}], "paymentMethod": "CASH"}`,
			code:    http.StatusBadRequest,
			message: "price must have at most 2 decimal places",
		},
		{
			name:    "sub-cent discount",
			body:    `{"items": [{"productId": "1", "quantity": 1, "price": "600"}], "discount": "0.005", "paymentMethod": "CASH"}`,
			code:    http.StatusBadRequest,
			message: "price must have at most 2 decimal places",
		},
		{
			name:    "sub-cent client total",
			body:    `{"items": [{"productId": "1", "quantity": 1, "price": "600"}], "subtotal": "600", "tax": "0.001", "total": "600.001", "paymentMethod": "CASH"}`,
			code:    http.StatusBadRequest,
			message: "price must have at most 2 decimal places",
		},
		{
			name:    "discount above cap",
			body:    `{"items": [{"productId": "1", "quantity": 1, "price": "600"}], "discount": "1000000001", "paymentMethod": "CASH"}`,
			code:    http.StatusBadRequest,
			message: "invalid price",
		},
		{
			name:    "quantity above limit",
			body:    `{"items": [{"productId": "1", "quantity": 9223372036854775807, "price": "0"}], "paymentMethod": "CASH"}`,
			code:    http.StatusBadRequest,
			message: "quantity must be between 1 and 1000000",
		},
		{
			name:    "unknown field",
			body:    `{"items": [], "paymentMethod": "CASH", "coupon": "X"}`,
			code:    http.StatusBadRequest,
			message: "invalid json body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, store := newTestAPI(t, nil)

			rec, body := doJSON(t, h, http.MethodPost, "/api/v1/sales", tt.body)
			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.message, body["message"])
			assert.Empty(t, store.Snapshot().Sales)
			assert.Zero(t, store.Snapshot().InvoiceSeq)
		})
	}
}

func TestQuoteSale(t *testing.T) {
	h, _ := newTestAPI(t, nil)

	rec, body := doJSON(t, h, http.MethodPost, "/api/v1/sales/quote", `{
		"items": [{"productId": "1", "quantity": 2, "price": "600"}],
		"discount": "20"
	}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1200", body["subtotal"])
	assert.Equal(t, "60", body["tax"])
	assert.Equal(t, "1240", body["total"])
}

func TestQuoteSale_RejectsSubCentDiscount(t *testing.T) {
	h, _ := newTestAPI(t, nil)

	rec, body := doJSON(t, h, http.MethodPost, "/api/v1/sales/quote", `{
		"items": [{"productId": "1", "quantity": 1, "price": "600"}],
		"discount": "0.005"
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "price must have at most 2 decimal places", body["message"])
}

func TestSales_ListAndFind(t *testing.T) {
	h, _ := newTestAPI(t, nil)

	for i := 0; i < 2; i++ {
		rec, _ := doJSON(t, h, http.MethodPost, "/api/v1/sales",
			`{"items": [{"productId": "1", "quantity": 1, "price": "600"}], "paymentMethod": "MOBILE"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec, body := doJSON(t, h, http.MethodGet, "/api/v1/sales/INV-1002", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "INV-1002", body["invoiceNumber"])

	rec, _ = doJSON(t, h, http.MethodGet, "/api/v1/sales/INV-9999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sales", nil)
	list := httptest.NewRecorder()
	h.ServeHTTP(list, req)
	require.Equal(t, http.StatusOK, list.Code)

	var sales []map[string]any
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &sales))
	require.Len(t, sales, 2)
	assert.Equal(t, "INV-1002", sales[0]["invoiceNumber"])
}

func TestProducts_Lifecycle(t *testing.T) {
	h, store := newTestAPI(t, nil)

	rec, body := doJSON(t, h, http.MethodPost, "/api/v1/products", `{
		"name": "Green Tea", "category": "Beverage",
		"purchasePrice": "120.50", "sellingPrice": 180,
		"stock": 30, "minStock": 5, "sku": "TEA001"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := body["id"].(string)
	assert.NotEmpty(t, id)
	assert.Equal(t, "120.5", body["purchasePrice"])

	rec, body = doJSON(t, h, http.MethodPatch, "/api/v1/products/"+id, `{"stock": 3}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(3), body["stock"])
	assert.Equal(t, "Green Tea", body["name"])

	rec, _ = doJSON(t, h, http.MethodDelete, "/api/v1/products/"+id, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Len(t, store.Snapshot().Products, 2)

	rec, body = doJSON(t, h, http.MethodPatch, "/api/v1/products/"+id, `{"stock": 1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "product not found", body["message"])

	rec, _ = doJSON(t, h, http.MethodDelete, "/api/v1/products/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProducts_Validation(t *testing.T) {
	h, _ := newTestAPI(t, nil)

	rec, body := doJSON(t, h, http.MethodPost, "/api/v1/products", `{"name": " ", "purchasePrice": "1", "sellingPrice": "2"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "name is required", body["message"])

	rec, body = doJSON(t, h, http.MethodPost, "/api/v1/products", `{"name": "X", "purchasePrice": "-1", "sellingPrice": "2"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid price", body["message"])

	rec, _ = doJSON(t, h, http.MethodPost, "/api/v1/products", `{"name": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCustomers(t *testing.T) {
	h, _ := newTestAPI(t, nil)

	rec, body := doJSON(t, h, http.MethodPost, "/api/v1/customers", `{"name": "Rahim", "phone": "01711", "address": "Dhaka"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "0", body["totalPurchase"])

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers?q=017", nil)
	list := httptest.NewRecorder()
	h.ServeHTTP(list, req)

	var customers []map[string]any
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &customers))
	require.Len(t, customers, 1)
	assert.Equal(t, "Rahim", customers[0]["name"])
}

func TestDashboard(t *testing.T) {
	h, _ := newTestAPI(t, nil)

	rec, _ := doJSON(t, h, http.MethodPost, "/api/v1/sales",
		`{"items": [{"productId": "1", "quantity": 3, "price": "600"}], "paymentMethod": "CASH"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, body := doJSON(t, h, http.MethodGet, "/api/v1/reports/dashboard?top=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1890", body["totalSales"])
	assert.Equal(t, "450", body["totalProfit"])
	assert.Equal(t, float64(1), body["salesCount"])
	assert.Len(t, body["bestSellers"], 1)
	assert.Len(t, body["lowStock"], 1)

	rec, _ = doJSON(t, h, http.MethodGet, "/api/v1/reports/dashboard?top=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSession(t *testing.T) {
	h, store := newTestAPI(t, nil)

	rec, body := doJSON(t, h, http.MethodPost, "/api/v1/session/language", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "bn", body["language"])

	rec, _ = doJSON(t, h, http.MethodPost, "/api/v1/session/logout", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Nil(t, store.Snapshot().CurrentUser)

	rec, body = doJSON(t, h, http.MethodGet, "/api/v1/state", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "bn", body["language"])
	assert.Nil(t, body["currentUser"])
}

func TestRateLimit(t *testing.T) {
	h, _ := newTestAPI(t, NewRateLimiter(0.001, 1, logger.Nop{}))

	cart := `{"items": [{"productId": "1", "quantity": 1, "price": "600"}]}`

	rec, _ := doJSON(t, h, http.MethodPost, "/api/v1/sales/quote", cart)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, body := doJSON(t, h, http.MethodPost, "/api/v1/sales/quote", cart)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "too many requests", body["message"])

	// чтение журнала лимитом не ограничено
	rec, _ = doJSON(t, h, http.MethodGet, "/api/v1/sales", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_IgnoresForwardedHeaders(t *testing.T) {
	h, _ := newTestAPI(t, NewRateLimiter(0.001, 1, logger.Nop{}))

	quote := func(remoteAddr, forwardedFor string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/sales/quote",
			strings.NewReader(`{"items": [{"productId": "1", "quantity": 1, "price": "600"}]}`))
		req.RemoteAddr = remoteAddr
		if forwardedFor != "" {
			req.Header.Set("X-Forwarded-For", forwardedFor)
			req.Header.Set("X-Real-IP", forwardedFor)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, quote("10.0.0.1:5000", "203.0.113.1"))
	for i := 2; i <= 5; i++ {
		addr := fmt.Sprintf("203.0.113.%d", i)
		assert.Equal(t, http.StatusTooManyRequests, quote("10.0.0.1:5001", addr), "forwarded for %s", addr)
	}

	// другой адрес соединения получает собственный лимит
	assert.Equal(t, http.StatusOK, quote("10.0.0.2:5000", "203.0.113.1"))
}
