package booking

import (
	"context"
	"errors"
	"time"

	domain "github.com/edog39/FindMyFade-sub000/internal/domain/booking"
	"github.com/edog39/FindMyFade-sub000/internal/domain/wallet"
	"github.com/edog39/FindMyFade-sub000/internal/httperr"
	"github.com/edog39/FindMyFade-sub000/internal/models"
)

var errNotFound = errors.New("not found")

// fakeRepo reproduz em memória o contrato do repositório: conta
// travada, saldo nunca negativo, registros pareados com os deltas.
type fakeRepo struct {
	barber  *models.User
	profile *models.BarberProfile

	services map[uint]*models.Service
	redeemed map[uint]*models.RedeemedReward
	consumed map[uint]bool

	accounts map[uint]*models.WalletAccount
	txs      []models.WalletTransaction

	appointments []*models.Appointment
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		barber:  &models.User{ID: 20, Name: "Zé Navalha", Role: models.RoleBarber},
		profile: &models.BarberProfile{UserID: 20, ShopName: "Navalha de Ouro", Timezone: "America/Sao_Paulo"},
		services: map[uint]*models.Service{
			1: {ID: 1, BarberID: 20, Name: "Corte degradê", DurationMin: 45, Price: 80, Active: true},
			2: {ID: 2, BarberID: 20, Name: "Barba", DurationMin: 0, Price: 50, Active: true},
		},
		redeemed: map[uint]*models.RedeemedReward{},
		consumed: map[uint]bool{},
		accounts: map[uint]*models.WalletAccount{},
		nextID:   1,
	}
}

func (f *fakeRepo) account(userID uint) *models.WalletAccount {
	if acct, ok := f.accounts[userID]; ok {
		return acct
	}
	acct := &models.WalletAccount{ID: userID, UserID: userID}
	f.accounts[userID] = acct
	return acct
}

func (f *fakeRepo) applyEntry(entry wallet.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	acct := f.account(entry.UserID)

	newBalance := acct.Balance + entry.AmountDelta
	if newBalance < 0 {
		return httperr.ErrBusiness("insufficient_funds")
	}

	newPoints := acct.Points + entry.PointsDelta
	if entry.GuardPoints && newPoints < 0 {
		return httperr.ErrBusiness("insufficient_points")
	}

	acct.Balance = newBalance
	acct.Points = newPoints
	f.txs = append(f.txs, entry.Records...)
	return nil
}

// -------- domain.Repository --------

func (f *fakeRepo) GetBarber(_ context.Context, barberID uint) (*models.User, error) {
	if f.barber != nil && f.barber.ID == barberID {
		return f.barber, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetBarberProfile(_ context.Context, barberID uint) (*models.BarberProfile, error) {
	if f.profile != nil && f.profile.UserID == barberID {
		return f.profile, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetService(_ context.Context, barberID, serviceID uint) (*models.Service, error) {
	if s, ok := f.services[serviceID]; ok && s.BarberID == barberID && s.Active {
		return s, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetRedeemedReward(_ context.Context, userID, redeemedID uint) (*models.RedeemedReward, error) {
	if r, ok := f.redeemed[redeemedID]; ok && r.UserID == userID {
		return r, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) CreateConfirmed(
	ctx context.Context,
	ap *models.Appointment,
	charge *wallet.Entry,
	redeemed *models.RedeemedReward,
) error {

	if err := f.AssertNoTimeConflict(ctx, ap.BarberID, ap.StartTime, ap.EndTime); err != nil {
		return err
	}

	if redeemed != nil {
		if f.consumed[redeemed.ID] {
			return httperr.ErrBusiness("reward_expired_or_used")
		}
		f.consumed[redeemed.ID] = true
	}

	if charge != nil {
		if err := f.applyEntry(*charge); err != nil {
			return err
		}
	}

	ap.ID = f.nextID
	f.nextID++
	f.appointments = append(f.appointments, ap)
	return nil
}

func (f *fakeRepo) AssertNoTimeConflict(_ context.Context, barberID uint, start, end time.Time) error {
	for _, other := range f.appointments {
		if other.BarberID != barberID {
			continue
		}
		if !domain.IsConfirmed(domain.Status(other.Status)) {
			continue
		}
		if start.Before(other.EndTime) && end.After(other.StartTime) {
			return httperr.ErrBusiness("time_conflict")
		}
	}
	return nil
}

func (f *fakeRepo) GetBookingForClient(_ context.Context, appointmentID, clientID uint) (*models.Appointment, error) {
	for _, ap := range f.appointments {
		if ap.ID == appointmentID && ap.ClientID == clientID {
			return ap, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetBookingForBarber(_ context.Context, appointmentID, barberID uint) (*models.Appointment, error) {
	for _, ap := range f.appointments {
		if ap.ID == appointmentID && ap.BarberID == barberID {
			return ap, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) Finalize(_ context.Context, ap *models.Appointment, entry *wallet.Entry) error {
	if entry != nil {
		return f.applyEntry(*entry)
	}
	return nil
}

func (f *fakeRepo) ListForClient(_ context.Context, clientID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for i := len(f.appointments) - 1; i >= 0; i-- {
		if f.appointments[i].ClientID == clientID {
			out = append(out, *f.appointments[i])
		}
	}
	return out, nil
}

func (f *fakeRepo) ListForBarberPeriod(_ context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID == barberID && !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

func (f *fakeRepo) txCountOfType(txType string) int {
	count := 0
	for _, tx := range f.txs {
		if tx.Type == txType {
			count++
		}
	}
	return count
}
