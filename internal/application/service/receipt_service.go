package service

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/domain/entity"
	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/domain/enum"
	"github.com/muhammadwafiq/smartkasir-kasir-app/pkg/apperror"
	"github.com/muhammadwafiq/smartkasir-kasir-app/pkg/money"
	"github.com/muhammadwafiq/smartkasir-kasir-app/pkg/printer"
)

const receiptDivider = "--------------------------------"

// ReceiptService renders fixed-width sales receipts and hands them to the
// thermal printer façade. The terminal keeps only the most recent receipt;
// history lives on the backend.
type ReceiptService struct {
	header     entity.ReceiptHeader
	printer    printer.Printer
	paperWidth int
	now        func() time.Time

	mu   sync.Mutex
	last *entity.Receipt
}

// NewReceiptService creates a receipt service printing through p.
func NewReceiptService(header entity.ReceiptHeader, p printer.Printer, paperWidth int) *ReceiptService {
	return &ReceiptService{
		header:     header,
		printer:    p,
		paperWidth: paperWidth,
		now:        time.Now,
	}
}

// Render builds the receipt text for a completed transaction and stores it
// as the current receipt. Item names are padded or truncated to 14
// characters, quantities right-aligned to 2 digits, amounts grouped in the
// Indonesian style.
func (s *ReceiptService) Render(transactionID, total int64, method enum.PaymentMethod, lines []entity.CartLine) *entity.Receipt {
	now := s.now()

	var b strings.Builder
	b.WriteString("================================\n")
	fmt.Fprintf(&b, "%s\n", centered(s.header.StoreName, 32))
	fmt.Fprintf(&b, "%s\n", centered(fmt.Sprintf("Struk Penjualan No. %d", transactionID), 32))
	b.WriteString("================================\n\n")
	fmt.Fprintf(&b, "Waktu: %s\n", now.Format("02/01/2006 15.04.05"))
	b.WriteString(receiptDivider + "\n")
	b.WriteString("ITEM              QTY    HARGA\n")
	b.WriteString(receiptDivider + "\n")

	for _, l := range lines {
		fmt.Fprintf(&b, "%-14.14s x%2d  Rp %s\n", l.Name, l.Quantity, money.Format(l.Total()))
	}

	b.WriteString(receiptDivider + "\n")
	fmt.Fprintf(&b, "TOTAL: Rp %s\n", money.Format(total))
	fmt.Fprintf(&b, "Metode: %s\n", method.ReceiptLabel())
	b.WriteString(receiptDivider + "\n\n")
	b.WriteString("Terima Kasih!\n")
	b.WriteString("Barang yang dibeli tidak dapat ditukar\n")

	receipt := &entity.Receipt{
		TransactionID: transactionID,
		Text:          b.String(),
		Total:         total,
		PaymentMethod: method,
		RenderedAt:    now,
	}

	s.mu.Lock()
	s.last = receipt
	s.mu.Unlock()
	return receipt
}

// Last returns the current receipt, or nil when none has been rendered
// since the last new-transaction reset.
func (s *ReceiptService) Last() *entity.Receipt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Clear drops the current receipt (the "new transaction" action closes the
// receipt view).
func (s *ReceiptService) Clear() {
	s.mu.Lock()
	s.last = nil
	s.mu.Unlock()
}

// Print sends the current receipt to the printer verbatim, one monospace
// text line per printed line. Printing failure is reported to the caller
// but is never fatal to the session.
func (s *ReceiptService) Print() error {
	receipt := s.Last()
	if receipt == nil {
		return apperror.NewNotFoundError("Receipt")
	}

	doc := printer.NewDocument(s.paperWidth)
	for _, line := range strings.Split(strings.TrimRight(receipt.Text, "\n"), "\n") {
		doc.Text(line)
	}
	doc.FeedLines(3).PartialCut()

	if err := s.printer.Print(doc.Bytes()); err != nil {
		log.Printf("receipt: print failed (transaction %d): %v", receipt.TransactionID, err)
		return fmt.Errorf("failed to print receipt: %w", err)
	}
	return nil
}

// PrinterConnected reports whether the configured printer is reachable.
func (s *ReceiptService) PrinterConnected() bool {
	return s.printer.IsConnected()
}

func centered(text string, width int) string {
	if len(text) >= width {
		return text
	}
	pad := (width - len(text)) / 2
	return strings.Repeat(" ", pad) + text
}
