package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/domain/entity"
	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/domain/enum"
	"github.com/muhammadwafiq/smartkasir-kasir-app/pkg/apperror"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return New(srv.URL, 5*time.Second), srv
}

func TestStatus(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/status", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]bool{"online": true})
	}))
	defer srv.Close()

	online, err := client.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, online)
}

func TestStatusTransportError(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := client.Status(context.Background())
	assert.Error(t, err)
}

func TestProducts(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"products": []entity.Product{
				{ID: 1, Name: "Kopi", Price: 15000, Category: "Minuman", Stock: 10},
			},
		})
	}))
	defer srv.Close()

	products, err := client.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Kopi", products[0].Name)
	assert.Equal(t, int64(15000), products[0].Price)
}

func TestProductByBarcode(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		if body["barcode"] == "8991234" {
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  "success",
				"product": entity.Product{ID: 7, Name: "Teh Botol", Price: 5000, Stock: 3},
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "error"})
	}))
	defer srv.Close()

	product, err := client.ProductByBarcode(context.Background(), "8991234")
	require.NoError(t, err)
	assert.Equal(t, int64(7), product.ID)

	_, err = client.ProductByBarcode(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCreateTransaction(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/transactions", r.URL.Path)

		var req CreateTransactionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(8500), req.TotalAmount)
		assert.Equal(t, enum.PaymentCash, req.PaymentMethod)
		require.Len(t, req.Items, 1)
		assert.Equal(t, "Kopi", req.Items[0].Name)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{"status": "success", "id": 42})
	}))
	defer srv.Close()

	id, err := client.CreateTransaction(context.Background(), &CreateTransactionRequest{
		TotalAmount:   8500,
		PaymentMethod: enum.PaymentCash,
		Items:         []entity.TransactionItem{{ID: 1, Name: "Kopi", Price: 8500, Qty: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestCreateTransactionBackendError(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "message": "stok tidak mencukupi"})
	}))
	defer srv.Close()

	_, err := client.CreateTransaction(context.Background(), &CreateTransactionRequest{})
	require.Error(t, err)

	// The backend message is relayed verbatim.
	assert.Equal(t, "stok tidak mencukupi", apperror.GetAppError(err).Message)
}

func TestGenerateQRIS(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(8500), body["amount"])

		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":       "success",
			"qr_base64":    "data:image/png;base64,AAAA",
			"display_text": "REF-001",
		})
	}))
	defer srv.Close()

	result, err := client.GenerateQRIS(context.Background(), 8500, "SmartKasir Payment")
	require.NoError(t, err)
	assert.Equal(t, "REF-001", result.DisplayText)
	assert.Contains(t, result.QRBase64, "base64")
}

func TestTodayTransactions(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/transactions/today", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"transactions": []entity.TransactionSummary{
				{ID: 1, TotalAmount: 8500, PaymentMethod: enum.PaymentCash, CreatedAt: "2025-01-02 10:00"},
			},
		})
	}))
	defer srv.Close()

	history, err := client.TodayTransactions(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, int64(8500), history[0].TotalAmount)
}
