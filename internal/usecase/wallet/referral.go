package wallet

import (
	"context"
	"fmt"

	"github.com/edog39/FindMyFade-sub000/internal/audit"
	domain "github.com/edog39/FindMyFade-sub000/internal/domain/wallet"
	"github.com/edog39/FindMyFade-sub000/internal/httperr"
	"github.com/edog39/FindMyFade-sub000/internal/models"
)

// ClaimReferral credita o bônus de indicação uma única vez por usuário.
type ClaimReferral struct {
	repo  domain.Repository
	bonus float64
	audit *audit.Dispatcher
}

func NewClaimReferral(
	repo domain.Repository,
	bonus float64,
	audit *audit.Dispatcher,
) *ClaimReferral {
	return &ClaimReferral{
		repo:  repo,
		bonus: bonus,
		audit: audit,
	}
}

func (uc *ClaimReferral) Execute(
	ctx context.Context,
	userID uint,
	code string,
) (*models.WalletAccount, error) {

	referrer, err := uc.repo.GetUserByReferralCode(ctx, code)
	if err != nil || referrer.ID == userID {
		return nil, httperr.ErrBusiness("invalid_referral_code")
	}

	claimed, err := uc.repo.HasTransactionOfType(ctx, userID, domain.TxReferralBonus)
	if err != nil {
		return nil, err
	}
	if claimed {
		return nil, httperr.ErrBusiness("referral_already_claimed")
	}

	entry := domain.Entry{
		UserID:      userID,
		AmountDelta: uc.bonus,
		Records: []models.WalletTransaction{
			domain.NewRecord(
				userID,
				domain.TxReferralBonus,
				uc.bonus,
				0,
				fmt.Sprintf("Bônus de indicação (%s)", referrer.Name),
			),
		},
	}

	acct, err := uc.repo.Apply(ctx, entry)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID: &userID,
		Action: "referral_bonus",
		Entity: "wallet",
	})

	return acct, nil
}
