package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/domain/entity"
	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/domain/enum"
)

type capturePrinter struct {
	printed [][]byte
	err     error
}

func (p *capturePrinter) Print(data []byte) error {
	if p.err != nil {
		return p.err
	}
	p.printed = append(p.printed, data)
	return nil
}

func (p *capturePrinter) IsConnected() bool { return true }

func newReceiptFixture(p *capturePrinter) *ReceiptService {
	s := NewReceiptService(entity.ReceiptHeader{StoreName: "SmartKasir"}, p, 32)
	s.now = func() time.Time { return time.Date(2025, time.January, 6, 10, 30, 0, 0, time.UTC) }
	return s
}

func TestRenderReceiptContent(t *testing.T) {
	s := newReceiptFixture(&capturePrinter{})

	lines := []entity.CartLine{
		{Name: "Kopi", UnitPrice: 15000, Quantity: 2},
	}
	receipt := s.Render(42, 30000, enum.PaymentCash, lines)

	assert.Contains(t, receipt.Text, "SmartKasir")
	assert.Contains(t, receipt.Text, "Struk Penjualan No. 42")
	assert.Contains(t, receipt.Text, "Waktu: 06/01/2025 10.30.00")
	assert.Contains(t, receipt.Text, "Kopi")
	assert.Contains(t, receipt.Text, "x 2")
	assert.Contains(t, receipt.Text, "30.000")
	assert.Contains(t, receipt.Text, "TOTAL: Rp 30.000")
	assert.Contains(t, receipt.Text, "Metode: Tunai")
	assert.Contains(t, receipt.Text, "Terima Kasih!")
}

func TestRenderPadsAndTruncatesItemNames(t *testing.T) {
	s := newReceiptFixture(&capturePrinter{})

	lines := []entity.CartLine{
		{Name: "Nasi Goreng Spesial Pedas", UnitPrice: 25000, Quantity: 1},
	}
	receipt := s.Render(1, 25000, enum.PaymentCard, lines)

	// Names are cut to the 14-character item column.
	assert.Contains(t, receipt.Text, "Nasi Goreng Sp x 1")
	assert.NotContains(t, receipt.Text, "Spesial")
}

func TestRenderUnknownMethodPassesThrough(t *testing.T) {
	s := newReceiptFixture(&capturePrinter{})

	receipt := s.Render(1, 1000, enum.PaymentMethod("voucher"), nil)
	assert.Contains(t, receipt.Text, "Metode: voucher")
}

func TestPrintSendsRenderedReceipt(t *testing.T) {
	p := &capturePrinter{}
	s := newReceiptFixture(p)

	s.Render(42, 30000, enum.PaymentCash, []entity.CartLine{{Name: "Kopi", UnitPrice: 15000, Quantity: 2}})
	require.NoError(t, s.Print())

	require.Len(t, p.printed, 1)
	assert.Contains(t, string(p.printed[0]), "Struk Penjualan No. 42")
}

func TestPrintWithoutReceipt(t *testing.T) {
	s := newReceiptFixture(&capturePrinter{})
	assert.Error(t, s.Print())
}

func TestPrintFailureIsReportedNotFatal(t *testing.T) {
	p := &capturePrinter{err: errors.New("paper jam")}
	s := newReceiptFixture(p)

	s.Render(1, 1000, enum.PaymentCash, nil)
	err := s.Print()
	require.Error(t, err)

	// The receipt stays available as text after a failed print.
	assert.NotNil(t, s.Last())
}

func TestClearDropsReceipt(t *testing.T) {
	s := newReceiptFixture(&capturePrinter{})

	s.Render(1, 1000, enum.PaymentCash, nil)
	require.NotNil(t, s.Last())

	s.Clear()
	assert.Nil(t, s.Last())
}
