package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"

	"github.com/edog39/FindMyFade-sub000/internal/models"
)

// WalletMirror espelha o estado da carteira num KV durável. Não é um
// cache descartável: quando o Postgres está fora, a leitura cai aqui.
// Por isso toda mutação faz write-through logo após o commit.
type WalletMirror struct {
	client *redis.Client
}

func NewWalletMirror(client *redis.Client) *WalletMirror {
	return &WalletMirror{client: client}
}

func walletKey(userID uint) string       { return fmt.Sprintf("wallet:%d", userID) }
func transactionsKey(userID uint) string { return fmt.Sprintf("wallet:txs:%d", userID) }
func rewardsKey(userID uint) string      { return fmt.Sprintf("rewards:%d", userID) }
func bookingsKey(userID uint) string     { return fmt.Sprintf("bookings:%d", userID) }

func (m *WalletMirror) set(ctx context.Context, key string, value any) {
	b, err := json.Marshal(value)
	if err != nil {
		log.Printf("wallet mirror: marshal %s: %v", key, err)
		return
	}
	if err := m.client.Set(ctx, key, b, 0).Err(); err != nil {
		log.Printf("wallet mirror: set %s: %v", key, err)
	}
}

func (m *WalletMirror) StoreAccount(ctx context.Context, acct *models.WalletAccount) {
	m.set(ctx, walletKey(acct.UserID), acct)
}

// StoreTransactions grava o histórico já na ordem do contrato
// (mais novo primeiro).
func (m *WalletMirror) StoreTransactions(ctx context.Context, userID uint, txs []models.WalletTransaction) {
	m.set(ctx, transactionsKey(userID), txs)
}

func (m *WalletMirror) StoreRedeemedRewards(ctx context.Context, userID uint, rewards []models.RedeemedReward) {
	m.set(ctx, rewardsKey(userID), rewards)
}

func (m *WalletMirror) StoreBookings(ctx context.Context, userID uint, aps []models.Appointment) {
	m.set(ctx, bookingsKey(userID), aps)
}

func (m *WalletMirror) GetAccount(ctx context.Context, userID uint) (*models.WalletAccount, error) {
	b, err := m.client.Get(ctx, walletKey(userID)).Bytes()
	if err != nil {
		return nil, err
	}

	var acct models.WalletAccount
	if err := json.Unmarshal(b, &acct); err != nil {
		return nil, err
	}
	return &acct, nil
}

func (m *WalletMirror) GetTransactions(ctx context.Context, userID uint) ([]models.WalletTransaction, error) {
	b, err := m.client.Get(ctx, transactionsKey(userID)).Bytes()
	if err != nil {
		return nil, err
	}

	var txs []models.WalletTransaction
	if err := json.Unmarshal(b, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (m *WalletMirror) GetBookings(ctx context.Context, userID uint) ([]models.Appointment, error) {
	b, err := m.client.Get(ctx, bookingsKey(userID)).Bytes()
	if err != nil {
		return nil, err
	}

	var aps []models.Appointment
	if err := json.Unmarshal(b, &aps); err != nil {
		return nil, err
	}
	return aps, nil
}
