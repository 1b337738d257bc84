package wallet

import "context"

// ===============================
// Payment Provider (top-up)
// ===============================

type ChargeInput struct {
	Amount          float64
	CardToken       string
	PaymentMethodID string
	PayerEmail      string
	Description     string
}

// PaymentProvider cobra o valor da recarga num meio externo e devolve a
// referência do pagamento. Rejeição do provedor vem como erro de negócio
// payment_rejected.
type PaymentProvider interface {
	Charge(ctx context.Context, in ChargeInput) (string, error)
}
