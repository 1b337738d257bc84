package payments

import (
	"context"
	"fmt"
	"strconv"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"

	"github.com/edog39/FindMyFade-sub000/internal/domain/wallet"
	"github.com/edog39/FindMyFade-sub000/internal/httperr"
)

// MercadoPagoProvider cobra recargas de carteira via Mercado Pago.
type MercadoPagoProvider struct {
	client payment.Client
}

func NewMercadoPagoProvider(accessToken string) (*MercadoPagoProvider, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &MercadoPagoProvider{
		client: payment.NewClient(cfg),
	}, nil
}

func (p *MercadoPagoProvider) Charge(ctx context.Context, in wallet.ChargeInput) (string, error) {
	resource, err := p.client.Create(ctx, payment.Request{
		TransactionAmount: in.Amount,
		Token:             in.CardToken,
		PaymentMethodID:   in.PaymentMethodID,
		Installments:      1,
		Description:       in.Description,
		Payer: &payment.PayerRequest{
			Email: in.PayerEmail,
		},
	})
	if err != nil {
		return "", err
	}

	// só creditamos a carteira com pagamento aprovado
	if resource.Status != "approved" {
		return "", httperr.ErrBusiness("payment_rejected")
	}

	return strconv.Itoa(resource.ID), nil
}

// Compile-time check
var _ wallet.PaymentProvider = (*MercadoPagoProvider)(nil)
