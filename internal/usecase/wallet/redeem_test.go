package wallet

import (
	"context"
	"testing"

	domain "github.com/edog39/FindMyFade-sub000/internal/domain/wallet"
	"github.com/edog39/FindMyFade-sub000/internal/httperr"
	"github.com/edog39/FindMyFade-sub000/internal/models"
)

func TestRedeemReward(t *testing.T) {
	repo := newFakeRepo()
	repo.rewards[3] = &models.Reward{ID: 3, Title: "R$15 de desconto", Discount: 15, Cost: 150, Active: true}
	repo.account(10).Points = 200

	uc := NewRedeemReward(repo, testDispatcher())

	redeemed, out, err := uc.Execute(context.Background(), 10, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Points != 50 {
		t.Errorf("points = %d, want 50", out.Points)
	}
	if out.Balance != 0 {
		t.Errorf("redemption must not touch the balance, got %v", out.Balance)
	}

	if redeemed.UserID != 10 || redeemed.Discount != 15 || redeemed.Used {
		t.Errorf("redeemed = %+v", redeemed)
	}
	if len(repo.redeemed) != 1 {
		t.Errorf("stored redemptions = %d, want 1", len(repo.redeemed))
	}

	txs, _ := repo.ListTransactions(context.Background(), 10)
	if len(txs) != 1 || txs[0].Type != domain.TxLoyaltyRedemption {
		t.Errorf("transactions = %+v", txs)
	}
	if txs[0].PointsEarned != -150 {
		t.Errorf("redemption record points = %d, want -150", txs[0].PointsEarned)
	}
}

func TestRedeemRewardInsufficientPoints(t *testing.T) {
	repo := newFakeRepo()
	repo.rewards[3] = &models.Reward{ID: 3, Cost: 150, Active: true}

	acct := repo.account(10)
	acct.Points = 100

	uc := NewRedeemReward(repo, testDispatcher())

	_, _, err := uc.Execute(context.Background(), 10, 3)
	if !httperr.IsBusiness(err, "insufficient_points") {
		t.Fatalf("error = %v, want insufficient_points", err)
	}

	if acct.Points != 100 {
		t.Error("points must be unchanged after a rejected redemption")
	}
	if len(repo.redeemed) != 0 {
		t.Error("no redemption must be stored")
	}
}

func TestRedeemUnknownReward(t *testing.T) {
	repo := newFakeRepo()

	uc := NewRedeemReward(repo, testDispatcher())

	_, _, err := uc.Execute(context.Background(), 10, 99)
	if !httperr.IsBusiness(err, "reward_not_found") {
		t.Errorf("error = %v, want reward_not_found", err)
	}
}

func TestRedeemInactiveReward(t *testing.T) {
	repo := newFakeRepo()
	repo.rewards[3] = &models.Reward{ID: 3, Cost: 10, Active: false}
	repo.account(10).Points = 500

	uc := NewRedeemReward(repo, testDispatcher())

	_, _, err := uc.Execute(context.Background(), 10, 3)
	if !httperr.IsBusiness(err, "reward_not_found") {
		t.Errorf("error = %v, want reward_not_found", err)
	}
}
