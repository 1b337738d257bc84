package booking

import (
	"context"
	"testing"
	"time"

	"github.com/edog39/FindMyFade-sub000/internal/audit"
	"github.com/edog39/FindMyFade-sub000/internal/domain/wallet"
	"github.com/edog39/FindMyFade-sub000/internal/httperr"
	"github.com/edog39/FindMyFade-sub000/internal/models"
)

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		ClientID:      10,
		BarberID:      20,
		ServiceID:     1,
		Date:          "2030-05-10",
		Time:          "14:00",
		PaymentMethod: "prepay",
	}
}

func TestCreateBookingPrepay(t *testing.T) {
	repo := newFakeRepo()
	repo.account(10).Balance = 100

	uc := NewCreateBooking(repo, testDispatcher())

	ap, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.Status != "confirmed_prepaid" {
		t.Errorf("status = %s, want confirmed_prepaid", ap.Status)
	}
	if ap.ChargedPrice != 80 || ap.Price != 80 {
		t.Errorf("charged = %v, price = %v, want 80", ap.ChargedPrice, ap.Price)
	}
	if ap.DurationMin != 45 {
		t.Errorf("duration = %d, want 45", ap.DurationMin)
	}
	if want := ap.StartTime.Add(45 * time.Minute); !ap.EndTime.Equal(want) {
		t.Errorf("end = %v, want %v", ap.EndTime, want)
	}
	// a view de criação mostra o nome do barbeiro sem novo fetch
	if ap.Barber.Name != "Zé Navalha" {
		t.Errorf("barber name = %q, want resolved barber", ap.Barber.Name)
	}

	acct := repo.account(10)
	if acct.Balance != 20 {
		t.Errorf("balance = %v, want 20", acct.Balance)
	}
	if acct.Points != 120 {
		t.Errorf("points = %d, want 120 (ceil of 80 x 1.5)", acct.Points)
	}
	if got := repo.txCountOfType(wallet.TxBookingPayment); got != 1 {
		t.Errorf("booking_payment transactions = %d, want 1", got)
	}
}

func TestCreateBookingPayLaterKeepsWalletUntouched(t *testing.T) {
	repo := newFakeRepo()
	repo.account(10).Balance = 5

	uc := NewCreateBooking(repo, testDispatcher())

	in := validInput()
	in.PaymentMethod = "pay_later"

	ap, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.Status != "confirmed_pay_later" {
		t.Errorf("status = %s, want confirmed_pay_later", ap.Status)
	}

	acct := repo.account(10)
	if acct.Balance != 5 || acct.Points != 0 {
		t.Errorf("wallet changed: balance %v, points %d", acct.Balance, acct.Points)
	}
	if len(repo.txs) != 0 {
		t.Errorf("pay later booking must not record transactions, got %d", len(repo.txs))
	}
}

func TestCreateBookingInsufficientFunds(t *testing.T) {
	repo := newFakeRepo()
	repo.account(10).Balance = 10

	uc := NewCreateBooking(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), validInput())
	if !httperr.IsBusiness(err, "insufficient_funds") {
		t.Fatalf("error = %v, want insufficient_funds", err)
	}

	// nada pode ter sido criado: reserva e cobrança são atômicas
	if len(repo.appointments) != 0 {
		t.Error("appointment must not be created when the charge fails")
	}
	if repo.account(10).Balance != 10 {
		t.Error("balance must be unchanged after a rejected charge")
	}
}

func TestCreateBookingTimeConflict(t *testing.T) {
	repo := newFakeRepo()
	repo.account(10).Balance = 500

	uc := NewCreateBooking(repo, testDispatcher())

	if _, err := uc.Execute(context.Background(), validInput()); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	in := validInput()
	in.Time = "14:30" // sobrepõe 14:00-14:45
	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "time_conflict") {
		t.Fatalf("error = %v, want time_conflict", err)
	}
}

func TestCreateBookingCancelledSlotIsFree(t *testing.T) {
	repo := newFakeRepo()
	repo.account(10).Balance = 500

	uc := NewCreateBooking(repo, testDispatcher())

	ap, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}

	ap.Status = "cancelled"

	// mesmo horário volta a ficar disponível
	if _, err := uc.Execute(context.Background(), validInput()); err != nil {
		t.Errorf("rebooking a cancelled slot failed: %v", err)
	}
}

func TestCreateBookingWithReward(t *testing.T) {
	repo := newFakeRepo()
	repo.account(10).Balance = 100

	redeemedID := uint(9)
	repo.redeemed[redeemedID] = &models.RedeemedReward{
		ID:        redeemedID,
		UserID:    10,
		Discount:  15,
		ExpiresAt: time.Now().Add(48 * time.Hour),
	}

	uc := NewCreateBooking(repo, testDispatcher())

	in := validInput()
	in.RedeemedRewardID = &redeemedID

	ap, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.ChargedPrice != 65 || ap.Discount != 15 {
		t.Errorf("charged = %v, discount = %v, want 65/15", ap.ChargedPrice, ap.Discount)
	}
	if ap.RedeemedRewardID == nil || *ap.RedeemedRewardID != redeemedID {
		t.Error("appointment must reference the consumed reward")
	}

	acct := repo.account(10)
	if acct.Balance != 35 {
		t.Errorf("balance = %v, want 35", acct.Balance)
	}
	// pontos sobre o valor efetivamente cobrado: ceil(65 x 1.5) = 98
	if acct.Points != 98 {
		t.Errorf("points = %d, want 98", acct.Points)
	}
}

func TestCreateBookingRejectsExpiredReward(t *testing.T) {
	repo := newFakeRepo()
	repo.account(10).Balance = 100

	redeemedID := uint(9)
	repo.redeemed[redeemedID] = &models.RedeemedReward{
		ID:        redeemedID,
		UserID:    10,
		Discount:  15,
		ExpiresAt: time.Now().Add(-time.Hour),
	}

	uc := NewCreateBooking(repo, testDispatcher())

	in := validInput()
	in.RedeemedRewardID = &redeemedID

	// recompensa vencida rejeita a reserva inteira, sem desconto parcial
	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "reward_expired_or_used") {
		t.Fatalf("error = %v, want reward_expired_or_used", err)
	}
	if len(repo.appointments) != 0 {
		t.Error("appointment must not be created with an expired reward")
	}
	if repo.account(10).Balance != 100 {
		t.Error("wallet must be unchanged")
	}
}

func TestCreateBookingRejectsUsedReward(t *testing.T) {
	repo := newFakeRepo()
	repo.account(10).Balance = 100

	redeemedID := uint(9)
	repo.redeemed[redeemedID] = &models.RedeemedReward{
		ID:        redeemedID,
		UserID:    10,
		Discount:  15,
		Used:      true,
		ExpiresAt: time.Now().Add(48 * time.Hour),
	}

	uc := NewCreateBooking(repo, testDispatcher())

	in := validInput()
	in.RedeemedRewardID = &redeemedID

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "reward_expired_or_used") {
		t.Fatalf("error = %v, want reward_expired_or_used", err)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	repo := newFakeRepo()
	repo.account(10).Balance = 500
	uc := NewCreateBooking(repo, testDispatcher())

	tests := []struct {
		name     string
		mutate   func(*CreateBookingInput)
		wantCode string
	}{
		{"unknown payment method", func(in *CreateBookingInput) { in.PaymentMethod = "pix" }, "invalid_payment_method"},
		{"unknown barber", func(in *CreateBookingInput) { in.BarberID = 99 }, "barber_not_found"},
		{"unknown service", func(in *CreateBookingInput) { in.ServiceID = 99 }, "service_not_found"},
		{"bad date", func(in *CreateBookingInput) { in.Date = "10/05/2030" }, "invalid_date_or_time"},
		{"bad time", func(in *CreateBookingInput) { in.Time = "25:99" }, "invalid_date_or_time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			if !httperr.IsBusiness(err, tt.wantCode) {
				t.Errorf("error = %v, want %s", err, tt.wantCode)
			}
		})
	}
}

func TestCreateBookingDefaultDuration(t *testing.T) {
	repo := newFakeRepo()

	uc := NewCreateBooking(repo, testDispatcher())

	in := validInput()
	in.ServiceID = 2 // serviço sem duração cadastrada
	in.PaymentMethod = "pay_later"

	ap, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.DurationMin != 30 {
		t.Errorf("duration = %d, want default 30", ap.DurationMin)
	}
	if want := ap.StartTime.Add(30 * time.Minute); !ap.EndTime.Equal(want) {
		t.Errorf("end = %v, want %v", ap.EndTime, want)
	}
}
