// Package upstream implements the HTTP client for the backend POS API.
// The backend itself is an external collaborator; this package only
// consumes its /api/* contract.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/domain/entity"
	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/domain/enum"
	"github.com/muhammadwafiq/smartkasir-kasir-app/pkg/apperror"
)

// ErrProductNotFound is returned by ProductByBarcode when the backend
// reports no product for the scanned code.
var ErrProductNotFound = errors.New("upstream: product not found")

// Client talks JSON over HTTP to the backend POS API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a backend client. A zero timeout leaves calls unbounded;
// production configs should set one.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// InitResult is the /api/init response.
type InitResult struct {
	OfflineMode bool   `json:"offline_mode"`
	Message     string `json:"message"`
}

// Init performs the session bootstrap call.
func (c *Client) Init(ctx context.Context) (*InitResult, error) {
	var out InitResult
	if err := c.post(ctx, "/api/init", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Status asks the backend liveness endpoint whether it is online.
func (c *Client) Status(ctx context.Context) (bool, error) {
	var out struct {
		Online bool `json:"online"`
	}
	if err := c.get(ctx, "/api/status", &out); err != nil {
		return false, err
	}
	return out.Online, nil
}

// Products fetches the full product catalog.
func (c *Client) Products(ctx context.Context) ([]entity.Product, error) {
	var out struct {
		Products []entity.Product `json:"products"`
	}
	if err := c.get(ctx, "/api/products", &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

// Categories fetches the category list.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var out struct {
		Categories []string `json:"categories"`
	}
	if err := c.get(ctx, "/api/categories", &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

// ProductByBarcode looks up a product by scanned barcode. Returns
// ErrProductNotFound when the backend reports no match.
func (c *Client) ProductByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	var out struct {
		Status  string         `json:"status"`
		Product entity.Product `json:"product"`
	}
	body := map[string]string{"barcode": barcode}
	if err := c.post(ctx, "/api/product/barcode", body, &out); err != nil {
		return nil, err
	}
	if out.Status != "success" {
		return nil, ErrProductNotFound
	}
	return &out.Product, nil
}

// CreateTransactionRequest is the outbound transaction payload.
type CreateTransactionRequest struct {
	TotalAmount   int64                    `json:"total_amount"`
	PaymentMethod enum.PaymentMethod       `json:"payment_method"`
	Items         []entity.TransactionItem `json:"items"`
	Notes         string                   `json:"notes"`
}

// CreateTransaction submits a completed sale. The backend assigns and
// returns the transaction id; a business error carries the backend's
// message verbatim.
func (c *Client) CreateTransaction(ctx context.Context, req *CreateTransactionRequest) (int64, error) {
	var out struct {
		Status  string `json:"status"`
		ID      int64  `json:"id"`
		Message string `json:"message"`
	}
	if err := c.post(ctx, "/api/transactions", req, &out); err != nil {
		return 0, err
	}
	if out.Status != "success" {
		return 0, apperror.NewUpstreamError(out.Message)
	}
	return out.ID, nil
}

// TodayTransactions fetches today's transaction history.
func (c *Client) TodayTransactions(ctx context.Context) ([]entity.TransactionSummary, error) {
	var out struct {
		Transactions []entity.TransactionSummary `json:"transactions"`
	}
	if err := c.get(ctx, "/api/transactions/today", &out); err != nil {
		return nil, err
	}
	return out.Transactions, nil
}

// QRISResult carries the backend-generated QR image and reference text.
// The client only displays these; generation is entirely the backend's.
type QRISResult struct {
	QRBase64    string `json:"qr_base64"`
	DisplayText string `json:"display_text"`
}

// GenerateQRIS requests a QRIS payment code for the given amount.
func (c *Client) GenerateQRIS(ctx context.Context, amount int64, description string) (*QRISResult, error) {
	var out struct {
		Status string `json:"status"`
		QRISResult
	}
	body := map[string]interface{}{"amount": amount, "description": description}
	if err := c.post(ctx, "/api/qris/generate", body, &out); err != nil {
		return nil, err
	}
	if out.Status != "success" {
		return nil, apperror.NewUpstreamError("QRIS generation failed")
	}
	return &out.QRISResult, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("upstream: build request %s: %w", path, err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("upstream: encode request %s: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("upstream: build request %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upstream: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("upstream: %s %s: unexpected status %d", req.Method, req.URL.Path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("upstream: decode response %s: %w", req.URL.Path, err)
	}
	return nil
}
