package enum

// PaymentMethod identifies how a transaction is paid. Values match the
// backend wire format.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
	PaymentQRIS     PaymentMethod = "qris"
)

// Valid reports whether the method is one of the known payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer, PaymentQRIS:
		return true
	}
	return false
}

// RequiresSufficientPayment reports whether checkout must verify the amount
// received covers the total. QRIS payment is confirmed out-of-band by the
// QR flow and is exempt.
func (m PaymentMethod) RequiresSufficientPayment() bool {
	return m != PaymentQRIS
}

// ReceiptLabel returns the label printed on receipts. Unknown methods pass
// through verbatim.
func (m PaymentMethod) ReceiptLabel() string {
	switch m {
	case PaymentCash:
		return "Tunai"
	case PaymentCard:
		return "Kartu"
	case PaymentTransfer:
		return "Transfer"
	}
	return string(m)
}

// DisplayLabel returns the label shown on the customer display mirror.
// Unknown methods pass through verbatim.
func (m PaymentMethod) DisplayLabel() string {
	switch m {
	case PaymentCash:
		return "TUNAI"
	case PaymentCard:
		return "KARTU KREDIT"
	case PaymentTransfer:
		return "TRANSFER BANK"
	case PaymentQRIS:
		return "QRIS/E-WALLET"
	}
	return string(m)
}
