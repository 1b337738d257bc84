package booking

import "time"

// ===============================
// Cancellation Policy
// ===============================

// Janela de cancelamento: até 48h antes do horário, reembolso integral;
// depois disso, metade com taxa de cancelamento.
const CancellationWindow = 48 * time.Hour

type RefundQuote struct {
	Fraction float64 `json:"fraction"`
	Refund   float64 `json:"refund"`
	Fee      float64 `json:"fee"`
}

// EvaluateCancellation é pura: dado o horário agendado, o instante do
// cancelamento e o valor cobrado, devolve reembolso e taxa.
// Horários já passados caem na janela de <48h (reembolso parcial).
func EvaluateCancellation(scheduledAt, now time.Time, price float64) RefundQuote {
	if scheduledAt.Sub(now) < CancellationWindow {
		return RefundQuote{
			Fraction: 0.5,
			Refund:   price * 0.5,
			Fee:      price * 0.5,
		}
	}
	return RefundQuote{
		Fraction: 1.0,
		Refund:   price,
		Fee:      0,
	}
}
