package wallet

import (
	"context"

	"github.com/edog39/FindMyFade-sub000/internal/audit"
	domain "github.com/edog39/FindMyFade-sub000/internal/domain/wallet"
	"github.com/edog39/FindMyFade-sub000/internal/httperr"
	"github.com/edog39/FindMyFade-sub000/internal/models"
	"github.com/edog39/FindMyFade-sub000/internal/timezone"
)

type RedeemReward struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRedeemReward(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RedeemReward {
	return &RedeemReward{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RedeemReward) Execute(
	ctx context.Context,
	userID uint,
	rewardID uint,
) (*models.RedeemedReward, *models.WalletAccount, error) {

	reward, err := uc.repo.GetReward(ctx, rewardID)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("reward_not_found")
	}

	account, err := uc.repo.GetAccount(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	redeemed, entry, err := domain.Redeem(account, reward, timezone.Now())
	if err != nil {
		return nil, nil, err
	}

	// débito de pontos + certificado na mesma transação; o guard do
	// Entry re-checa o saldo de pontos com a conta travada
	account, err = uc.repo.ApplyWithRedemption(ctx, entry, redeemed)
	if err != nil {
		return nil, nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "reward_redeemed",
		Entity:   "reward",
		EntityID: &reward.ID,
	})

	return redeemed, account, nil
}
