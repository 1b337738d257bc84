package payments

import (
	"context"

	"github.com/edog39/FindMyFade-sub000/internal/domain/wallet"
	"github.com/edog39/FindMyFade-sub000/internal/httperr"
)

// DisabledProvider recusa toda cobrança. Usado quando o token do
// provedor não está configurado no ambiente.
type DisabledProvider struct{}

func (DisabledProvider) Charge(ctx context.Context, in wallet.ChargeInput) (string, error) {
	return "", httperr.ErrBusiness("payment_rejected")
}

var _ wallet.PaymentProvider = DisabledProvider{}
