package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/edog39/FindMyFade-sub000/internal/domain/wallet"
	"github.com/edog39/FindMyFade-sub000/internal/httperr"
	"github.com/edog39/FindMyFade-sub000/internal/models"
)

// applyEntryTx comete um Entry do ledger dentro da transação recebida:
// trava a linha da conta, aplica os deltas e grava os registros.
// Débito maior que o saldo é rejeitado; pontos podem ficar negativos,
// a dedução de cancelamento vira dívida.
func applyEntryTx(tx *gorm.DB, entry wallet.Entry) (*models.WalletAccount, error) {

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	var acct models.WalletAccount
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", entry.UserID).
		First(&acct).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		acct = models.WalletAccount{UserID: entry.UserID}
		if err := tx.Create(&acct).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if entry.AmountDelta < 0 && acct.Balance+entry.AmountDelta < 0 {
		return nil, httperr.ErrBusiness("insufficient_funds")
	}

	if entry.GuardPoints && acct.Points+entry.PointsDelta < 0 {
		return nil, httperr.ErrBusiness("insufficient_points")
	}

	acct.Balance += entry.AmountDelta
	acct.Points += entry.PointsDelta

	if err := tx.Save(&acct).Error; err != nil {
		return nil, err
	}

	for i := range entry.Records {
		if err := tx.Create(&entry.Records[i]).Error; err != nil {
			return nil, err
		}
	}

	return &acct, nil
}
