package request

// ScanRequest is the request body for a complete barcode scan.
type ScanRequest struct {
	Barcode string `json:"barcode" binding:"required"`
}

// KeysRequest is the request body for raw scanner keystrokes. The keys
// string is fed through the debouncing buffer one rune at a time.
type KeysRequest struct {
	Keys string `json:"keys" binding:"required"`
}
