package wallet

import (
	"errors"

	"github.com/google/uuid"

	"github.com/edog39/FindMyFade-sub000/internal/models"
)

// ===============================
// Transaction Types
// ===============================

const (
	TxBookingPayment    = "booking_payment"
	TxWalletTopup       = "wallet_topup"
	TxRefund            = "refund"
	TxCancellationFee   = "cancellation_fee"
	TxReferralBonus     = "referral_bonus"
	TxLoyaltyRedemption = "loyalty_redemption"
)

const TxStatusCompleted = "completed"

// ===============================
// Ledger Entry
// ===============================

// Entry é uma mutação atômica da carteira: os deltas são aplicados à
// conta junto com os registros, tudo ou nada. Um registro pode existir
// sem delta próprio: a taxa de cancelamento, por exemplo, apenas
// documenta o valor retido do estorno, sem debitar a carteira de novo.
type Entry struct {
	UserID      uint
	AmountDelta float64
	PointsDelta int

	// GuardPoints rejeita a mutação se os pontos ficariam negativos
	// (resgate de recompensa). Sem o guard, a dedução do cancelamento
	// pode deixar os pontos negativos: vira dívida, sem clamp.
	GuardPoints bool

	Records []models.WalletTransaction
}

// Toda mutação da carteira precisa de pelo menos um registro pareado.
func (e Entry) Validate() error {
	if len(e.Records) == 0 && (e.AmountDelta != 0 || e.PointsDelta != 0) {
		return errors.New("wallet: ledger entry without transaction record")
	}
	return nil
}

// NewRecord monta um WalletTransaction já completado, com referência
// própria. Sinal do amount: negativo = débito, positivo = crédito.
func NewRecord(userID uint, txType string, amount float64, points int, description string) models.WalletTransaction {
	return models.WalletTransaction{
		UserID:       userID,
		Reference:    uuid.NewString(),
		Type:         txType,
		Amount:       amount,
		PointsEarned: points,
		Description:  description,
		Status:       TxStatusCompleted,
	}
}
