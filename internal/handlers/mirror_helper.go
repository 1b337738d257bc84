package handlers

import (
	"context"

	booking "github.com/edog39/FindMyFade-sub000/internal/domain/booking"
	wallet "github.com/edog39/FindMyFade-sub000/internal/domain/wallet"
	"github.com/edog39/FindMyFade-sub000/internal/infra/cache"
)

// MirrorRefresher re-espelha o estado do usuário no KV depois de uma
// mutação que tocou carteira ou agenda. Falha de espelho não falha a
// requisição; o write-through seguinte corrige.
type MirrorRefresher struct {
	bookings booking.Repository
	wallets  wallet.Repository
	mirror   *cache.WalletMirror
}

func NewMirrorRefresher(
	bookings booking.Repository,
	wallets wallet.Repository,
	mirror *cache.WalletMirror,
) *MirrorRefresher {
	return &MirrorRefresher{
		bookings: bookings,
		wallets:  wallets,
		mirror:   mirror,
	}
}

func (r *MirrorRefresher) refreshWallet(ctx context.Context, userID uint) {
	if acct, err := r.wallets.GetAccount(ctx, userID); err == nil {
		r.mirror.StoreAccount(ctx, acct)
	}
	if txs, err := r.wallets.ListTransactions(ctx, userID); err == nil {
		r.mirror.StoreTransactions(ctx, userID, txs)
	}
}

func (r *MirrorRefresher) refreshRewards(ctx context.Context, userID uint) {
	if rewards, err := r.wallets.ListRedeemedRewards(ctx, userID); err == nil {
		r.mirror.StoreRedeemedRewards(ctx, userID, rewards)
	}
}

func (r *MirrorRefresher) refreshBookings(ctx context.Context, clientID uint) {
	if aps, err := r.bookings.ListForClient(ctx, clientID); err == nil {
		r.mirror.StoreBookings(ctx, clientID, aps)
	}
}
