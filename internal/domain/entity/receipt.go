package entity

import (
	"time"

	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/domain/enum"
)

// ReceiptHeader holds the store header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// Receipt is a value object holding a rendered sales receipt. It is
// composed from the completed transaction at render time; the terminal
// keeps only the most recent one.
type Receipt struct {
	TransactionID int64              `json:"transaction_id"`
	Text          string             `json:"text"`
	Total         int64              `json:"total"`
	PaymentMethod enum.PaymentMethod `json:"payment_method"`
	RenderedAt    time.Time          `json:"rendered_at"`
}
