package booking

import (
	"time"

	"github.com/edog39/FindMyFade-sub000/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel aplica a transição Confirmed* -> Cancelled e, para prepay,
// calcula reembolso e taxa pela política de janela. A dedução de pontos
// e o crédito na carteira ficam a cargo do caso de uso.
func Cancel(ap *models.Appointment, now time.Time) (*RefundQuote, error) {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return nil, err
	}

	wasPrepaid := PaymentMethod(ap.PaymentMethod) == PaymentPrepay

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now

	if !wasPrepaid {
		// pay-later: nada foi cobrado, nada a devolver
		return nil, nil
	}

	quote := EvaluateCancellation(ap.StartTime, now, ap.ChargedPrice)
	ap.RefundAmount = &quote.Refund
	ap.CancellationFee = &quote.Fee
	return &quote, nil
}

// Settle aplica a transição Confirmed* -> Completed. Devolve os pontos
// a creditar: pay-later ganha os pontos adiados aqui (pagamento feito
// na barbearia); prepay já ganhou os pontos na reserva.
func Settle(ap *models.Appointment, now time.Time) (int, error) {
	if err := CanSettle(Status(ap.Status)); err != nil {
		return 0, err
	}

	earned := 0
	if PaymentMethod(ap.PaymentMethod) == PaymentPayLater {
		earned = PointsForBooking(ap.ChargedPrice, PaymentPayLater)
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return earned, nil
}
