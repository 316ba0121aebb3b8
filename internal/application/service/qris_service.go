package service

import (
	"context"

	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/infrastructure/upstream"
)

// QRISGenerator is the slice of the upstream client the QRIS flow needs.
type QRISGenerator interface {
	GenerateQRIS(ctx context.Context, amount int64, description string) (*upstream.QRISResult, error)
}

// QRISService requests QR payment codes from the backend for the current
// order total. The client only displays the returned image and reference
// text; generation and payment confirmation are entirely out-of-band.
type QRISService struct {
	upstream    QRISGenerator
	session     *SessionService
	description string
}

// NewQRISService creates the QRIS display flow.
func NewQRISService(generator QRISGenerator, session *SessionService, description string) *QRISService {
	return &QRISService{upstream: generator, session: session, description: description}
}

// GenerateForCurrentTotal requests a QR code covering the current pricing
// total (subtotal minus discount).
func (s *QRISService) GenerateForCurrentTotal(ctx context.Context) (*upstream.QRISResult, error) {
	return s.upstream.GenerateQRIS(ctx, s.session.Snapshot().Total, s.description)
}
