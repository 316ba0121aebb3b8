package entity

// DisplayMode is the customer display mirror's rendering mode.
type DisplayMode string

const (
	DisplayIdle  DisplayMode = "idle"
	DisplayOrder DisplayMode = "order"
)

// DisplayItem is one order line as shown on the customer display.
type DisplayItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	LineTotal int64  `json:"line_total"`
}

// DisplayState is what the customer-facing screen currently shows: either
// a dated waiting screen or an itemized summary of the completed order.
type DisplayState struct {
	Mode          DisplayMode   `json:"mode"`
	Date          string        `json:"date,omitempty"`
	TransactionID int64         `json:"transaction_id,omitempty"`
	Items         []DisplayItem `json:"items,omitempty"`
	Total         int64         `json:"total,omitempty"`
	MethodLabel   string        `json:"method_label,omitempty"`
}
