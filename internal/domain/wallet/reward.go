package wallet

import (
	"fmt"
	"time"

	"github.com/edog39/FindMyFade-sub000/internal/httperr"
	"github.com/edog39/FindMyFade-sub000/internal/models"
)

// ===============================
// Reward Redemption Gate
// ===============================

// Validade de uma recompensa resgatada, contada a partir do resgate.
const RedemptionValidity = 30 * 24 * time.Hour

func CanRedeem(account *models.WalletAccount, reward *models.Reward) error {
	if !reward.Active {
		return httperr.ErrBusiness("reward_not_found")
	}
	if account.Points < reward.Cost {
		return httperr.ErrBusiness("insufficient_points")
	}
	return nil
}

// Redeem debita os pontos e produz o certificado de desconto junto com
// a mutação do ledger (amount zero, pontos negativos).
func Redeem(account *models.WalletAccount, reward *models.Reward, now time.Time) (*models.RedeemedReward, Entry, error) {
	if err := CanRedeem(account, reward); err != nil {
		return nil, Entry{}, err
	}

	redeemed := &models.RedeemedReward{
		UserID:    account.UserID,
		RewardID:  reward.ID,
		Title:     reward.Title,
		Discount:  reward.Discount,
		ExpiresAt: now.Add(RedemptionValidity),
		Used:      false,
	}

	entry := Entry{
		UserID:      account.UserID,
		PointsDelta: -reward.Cost,
		GuardPoints: true,
		Records: []models.WalletTransaction{
			NewRecord(
				account.UserID,
				TxLoyaltyRedemption,
				0,
				-reward.Cost,
				fmt.Sprintf("Resgate de recompensa: %s", reward.Title),
			),
		},
	}

	return redeemed, entry, nil
}

// ApplyToBooking consome a recompensa: usável no máximo uma vez e só
// dentro da validade. Marca used apenas em memória; quem persiste é a
// criação do agendamento, na mesma transação.
func ApplyToBooking(redeemed *models.RedeemedReward, now time.Time) (float64, error) {
	if redeemed.Used || !redeemed.ExpiresAt.After(now) {
		return 0, httperr.ErrBusiness("reward_expired_or_used")
	}

	redeemed.Used = true
	redeemed.UsedAt = &now
	return redeemed.Discount, nil
}
