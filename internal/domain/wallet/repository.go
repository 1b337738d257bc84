package wallet

import (
	"context"

	"github.com/edog39/FindMyFade-sub000/internal/models"
)

type Repository interface {
	// -------- Account --------

	// GetAccount é leitura pura: nunca cria a linha da conta. Usuário
	// sem movimentação recebe uma carteira zerada.
	GetAccount(
		ctx context.Context,
		userID uint,
	) (*models.WalletAccount, error)

	// ListTransactions devolve o histórico do mais novo para o mais
	// antigo. Contrato rígido, a UI depende dessa ordem.
	ListTransactions(
		ctx context.Context,
		userID uint,
	) ([]models.WalletTransaction, error)

	// -------- Ledger --------

	// Apply comete um Entry: deltas + registros na mesma transação,
	// com a linha da conta travada. Débito sem saldo falha com
	// insufficient_funds; a dedução de pontos pode ficar negativa.
	Apply(
		ctx context.Context,
		entry Entry,
	) (*models.WalletAccount, error)

	// ApplyWithRedemption comete o Entry e cria o RedeemedReward na
	// mesma transação.
	ApplyWithRedemption(
		ctx context.Context,
		entry Entry,
		redeemed *models.RedeemedReward,
	) (*models.WalletAccount, error)

	// -------- Rewards --------
	GetReward(
		ctx context.Context,
		rewardID uint,
	) (*models.Reward, error)

	ListActiveRewards(
		ctx context.Context,
	) ([]models.Reward, error)

	ListRedeemedRewards(
		ctx context.Context,
		userID uint,
	) ([]models.RedeemedReward, error)

	// -------- Referral --------
	GetUserByReferralCode(
		ctx context.Context,
		code string,
	) (*models.User, error)

	HasTransactionOfType(
		ctx context.Context,
		userID uint,
		txType string,
	) (bool, error)
}
