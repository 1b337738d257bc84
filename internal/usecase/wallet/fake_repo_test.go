package wallet

import (
	"context"
	"errors"

	"github.com/edog39/FindMyFade-sub000/internal/audit"
	domain "github.com/edog39/FindMyFade-sub000/internal/domain/wallet"
	"github.com/edog39/FindMyFade-sub000/internal/httperr"
	"github.com/edog39/FindMyFade-sub000/internal/models"
)

var errNotFound = errors.New("not found")

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

type fakeRepo struct {
	accounts map[uint]*models.WalletAccount
	txs      []models.WalletTransaction

	rewards  map[uint]*models.Reward
	redeemed []*models.RedeemedReward

	users map[string]*models.User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		accounts: map[uint]*models.WalletAccount{},
		rewards:  map[uint]*models.Reward{},
		users:    map[string]*models.User{},
	}
}

// account persiste a linha, como applyEntryTx faz na primeira mutação.
func (f *fakeRepo) account(userID uint) *models.WalletAccount {
	if acct, ok := f.accounts[userID]; ok {
		return acct
	}
	acct := &models.WalletAccount{ID: userID, UserID: userID}
	f.accounts[userID] = acct
	return acct
}

// GetAccount é leitura pura, espelhando o contrato do repositório:
// usuário sem linha recebe carteira zerada e nada é gravado.
func (f *fakeRepo) GetAccount(_ context.Context, userID uint) (*models.WalletAccount, error) {
	if acct, ok := f.accounts[userID]; ok {
		return acct, nil
	}
	return &models.WalletAccount{UserID: userID}, nil
}

func (f *fakeRepo) ListTransactions(_ context.Context, userID uint) ([]models.WalletTransaction, error) {
	var out []models.WalletTransaction
	for i := len(f.txs) - 1; i >= 0; i-- {
		if f.txs[i].UserID == userID {
			out = append(out, f.txs[i])
		}
	}
	return out, nil
}

func (f *fakeRepo) Apply(ctx context.Context, entry domain.Entry) (*models.WalletAccount, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	acct := f.account(entry.UserID)

	newBalance := acct.Balance + entry.AmountDelta
	if newBalance < 0 {
		return nil, httperr.ErrBusiness("insufficient_funds")
	}

	newPoints := acct.Points + entry.PointsDelta
	if entry.GuardPoints && newPoints < 0 {
		return nil, httperr.ErrBusiness("insufficient_points")
	}

	acct.Balance = newBalance
	acct.Points = newPoints
	f.txs = append(f.txs, entry.Records...)
	return acct, nil
}

func (f *fakeRepo) ApplyWithRedemption(ctx context.Context, entry domain.Entry, redeemed *models.RedeemedReward) (*models.WalletAccount, error) {
	acct, err := f.Apply(ctx, entry)
	if err != nil {
		return nil, err
	}
	redeemed.ID = uint(len(f.redeemed) + 1)
	f.redeemed = append(f.redeemed, redeemed)
	return acct, nil
}

func (f *fakeRepo) GetReward(_ context.Context, rewardID uint) (*models.Reward, error) {
	if r, ok := f.rewards[rewardID]; ok {
		return r, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) ListActiveRewards(_ context.Context) ([]models.Reward, error) {
	var out []models.Reward
	for _, r := range f.rewards {
		if r.Active {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListRedeemedRewards(_ context.Context, userID uint) ([]models.RedeemedReward, error) {
	var out []models.RedeemedReward
	for _, r := range f.redeemed {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetUserByReferralCode(_ context.Context, code string) (*models.User, error) {
	if u, ok := f.users[code]; ok {
		return u, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) HasTransactionOfType(_ context.Context, userID uint, txType string) (bool, error) {
	for _, tx := range f.txs {
		if tx.UserID == userID && tx.Type == txType {
			return true, nil
		}
	}
	return false, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

func creditEntry(userID uint, amount float64) domain.Entry {
	return domain.Entry{
		UserID:      userID,
		AmountDelta: amount,
		Records: []models.WalletTransaction{
			domain.NewRecord(userID, domain.TxWalletTopup, amount, 0, "Crédito"),
		},
	}
}

// fakeProvider aprova ou recusa todas as cobranças.
type fakeProvider struct {
	reject  bool
	charges []domain.ChargeInput
}

func (p *fakeProvider) Charge(_ context.Context, in domain.ChargeInput) (string, error) {
	if p.reject {
		return "", httperr.ErrBusiness("payment_rejected")
	}
	p.charges = append(p.charges, in)
	return "pay-123", nil
}
