package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/edog39/FindMyFade-sub000/internal/domain/wallet"
	"github.com/edog39/FindMyFade-sub000/internal/models"
)

type WalletGormRepository struct {
	db *gorm.DB
}

func NewWalletGormRepository(db *gorm.DB) *WalletGormRepository {
	return &WalletGormRepository{db: db}
}

// --------------------------------------------------
// Account
// --------------------------------------------------

// GetAccount é leitura pura: usuário sem movimentação enxerga uma
// carteira zerada, sem gravar linha nenhuma. A linha nasce na primeira
// mutação, dentro de applyEntryTx.
func (r *WalletGormRepository) GetAccount(
	ctx context.Context,
	userID uint,
) (*models.WalletAccount, error) {

	var acct models.WalletAccount
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&acct).Error

	if err == nil {
		return &acct, nil
	}

	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	return &models.WalletAccount{UserID: userID}, nil
}

func (r *WalletGormRepository) ListTransactions(
	ctx context.Context,
	userID uint,
) ([]models.WalletTransaction, error) {

	var txs []models.WalletTransaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&txs).Error; err != nil {
		return nil, err
	}

	return txs, nil
}

// --------------------------------------------------
// Ledger
// --------------------------------------------------

func (r *WalletGormRepository) Apply(
	ctx context.Context,
	entry domain.Entry,
) (*models.WalletAccount, error) {

	var acct *models.WalletAccount

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		acct, err = applyEntryTx(tx, entry)
		return err
	})
	if err != nil {
		return nil, err
	}

	return acct, nil
}

func (r *WalletGormRepository) ApplyWithRedemption(
	ctx context.Context,
	entry domain.Entry,
	redeemed *models.RedeemedReward,
) (*models.WalletAccount, error) {

	var acct *models.WalletAccount

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		acct, err = applyEntryTx(tx, entry)
		if err != nil {
			return err
		}
		return tx.Create(redeemed).Error
	})
	if err != nil {
		return nil, err
	}

	return acct, nil
}

// --------------------------------------------------
// Rewards
// --------------------------------------------------

func (r *WalletGormRepository) GetReward(
	ctx context.Context,
	rewardID uint,
) (*models.Reward, error) {

	var reward models.Reward
	if err := r.db.WithContext(ctx).First(&reward, rewardID).Error; err != nil {
		return nil, err
	}
	return &reward, nil
}

func (r *WalletGormRepository) ListActiveRewards(
	ctx context.Context,
) ([]models.Reward, error) {

	var rewards []models.Reward
	if err := r.db.WithContext(ctx).
		Where("active = true").
		Order("cost ASC").
		Find(&rewards).Error; err != nil {
		return nil, err
	}

	return rewards, nil
}

func (r *WalletGormRepository) ListRedeemedRewards(
	ctx context.Context,
	userID uint,
) ([]models.RedeemedReward, error) {

	var redeemed []models.RedeemedReward
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&redeemed).Error; err != nil {
		return nil, err
	}

	return redeemed, nil
}

// --------------------------------------------------
// Referral
// --------------------------------------------------

func (r *WalletGormRepository) GetUserByReferralCode(
	ctx context.Context,
	code string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("referral_code = ?", code).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *WalletGormRepository) HasTransactionOfType(
	ctx context.Context,
	userID uint,
	txType string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.WalletTransaction{}).
		Where("user_id = ? AND type = ?", userID, txType).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Compile-time check
var _ domain.Repository = (*WalletGormRepository)(nil)
