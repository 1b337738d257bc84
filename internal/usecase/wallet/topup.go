package wallet

import (
	"context"
	"fmt"

	"github.com/edog39/FindMyFade-sub000/internal/audit"
	domain "github.com/edog39/FindMyFade-sub000/internal/domain/wallet"
	"github.com/edog39/FindMyFade-sub000/internal/httperr"
	"github.com/edog39/FindMyFade-sub000/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type TopUpInput struct {
	UserID uint
	Amount float64

	CardToken       string
	PaymentMethodID string
	PayerEmail      string
}

// ======================================================
// USE CASE
// ======================================================

type TopUpWallet struct {
	repo     domain.Repository
	provider domain.PaymentProvider
	audit    *audit.Dispatcher
}

func NewTopUpWallet(
	repo domain.Repository,
	provider domain.PaymentProvider,
	audit *audit.Dispatcher,
) *TopUpWallet {
	return &TopUpWallet{
		repo:     repo,
		provider: provider,
		audit:    audit,
	}
}

func (uc *TopUpWallet) Execute(
	ctx context.Context,
	in TopUpInput,
) (*models.WalletAccount, error) {

	if in.Amount <= 0 {
		return nil, httperr.ErrBusiness("invalid_amount")
	}

	// cobra no provedor antes de creditar; rejeição não muda nada
	ref, err := uc.provider.Charge(ctx, domain.ChargeInput{
		Amount:          in.Amount,
		CardToken:       in.CardToken,
		PaymentMethodID: in.PaymentMethodID,
		PayerEmail:      in.PayerEmail,
		Description:     "Recarga de carteira FindMyFade",
	})
	if err != nil {
		return nil, err
	}

	entry := domain.Entry{
		UserID:      in.UserID,
		AmountDelta: in.Amount,
		Records: []models.WalletTransaction{
			domain.NewRecord(
				in.UserID,
				domain.TxWalletTopup,
				in.Amount,
				0,
				fmt.Sprintf("Recarga aprovada (pagamento %s)", ref),
			),
		},
	}

	acct, err := uc.repo.Apply(ctx, entry)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID: &in.UserID,
		Action: "wallet_topup",
		Entity: "wallet",
	})

	return acct, nil
}
