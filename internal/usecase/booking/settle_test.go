package booking

import (
	"context"
	"testing"
	"time"

	domain "github.com/edog39/FindMyFade-sub000/internal/domain/booking"
	"github.com/edog39/FindMyFade-sub000/internal/domain/wallet"
	"github.com/edog39/FindMyFade-sub000/internal/httperr"
)

func TestSettlePayLaterCreditsDeferredPoints(t *testing.T) {
	repo := newFakeRepo()
	acct := repo.account(10)

	ap := seedAppointment(repo, domain.PaymentPayLater, -time.Hour, 80)

	uc := NewSettleBooking(repo, testDispatcher())

	out, err := uc.Execute(context.Background(), 20, ap.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Status != "completed" {
		t.Errorf("status = %s, want completed", out.Status)
	}

	// pagamento em caixa: carteira intocada, pontos x1.0
	if acct.Balance != 0 {
		t.Errorf("balance = %v, want 0", acct.Balance)
	}
	if acct.Points != 80 {
		t.Errorf("points = %d, want 80", acct.Points)
	}

	if got := repo.txCountOfType(wallet.TxBookingPayment); got != 1 {
		t.Fatalf("booking_payment transactions = %d, want 1", got)
	}
	for _, tx := range repo.txs {
		if tx.Type == wallet.TxBookingPayment && tx.Amount != 0 {
			t.Errorf("deferred points record amount = %v, want 0", tx.Amount)
		}
	}
}

func TestSettlePrepayOnlyChangesState(t *testing.T) {
	repo := newFakeRepo()
	acct := repo.account(10)
	acct.Points = 120

	ap := seedAppointment(repo, domain.PaymentPrepay, -time.Hour, 80)

	uc := NewSettleBooking(repo, testDispatcher())

	out, err := uc.Execute(context.Background(), 20, ap.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Status != "completed" {
		t.Errorf("status = %s, want completed", out.Status)
	}
	// pontos do prepay já entraram na reserva
	if acct.Points != 120 {
		t.Errorf("points = %d, want 120", acct.Points)
	}
	if len(repo.txs) != 0 {
		t.Errorf("prepay settle must not record transactions, got %d", len(repo.txs))
	}
}

func TestSettleCancelledRejected(t *testing.T) {
	repo := newFakeRepo()

	ap := seedAppointment(repo, domain.PaymentPayLater, -time.Hour, 80)
	ap.Status = "cancelled"

	uc := NewSettleBooking(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), 20, ap.ID)
	if !httperr.IsBusiness(err, "already_cancelled") {
		t.Errorf("error = %v, want already_cancelled", err)
	}
}

func TestSettleOtherBarbersBooking(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(repo, domain.PaymentPayLater, -time.Hour, 80)

	uc := NewSettleBooking(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), 99, ap.ID)
	if !httperr.IsBusiness(err, "booking_not_found") {
		t.Errorf("error = %v, want booking_not_found", err)
	}
}

func TestSettleTwiceRejected(t *testing.T) {
	repo := newFakeRepo()
	acct := repo.account(10)

	ap := seedAppointment(repo, domain.PaymentPayLater, -time.Hour, 80)

	uc := NewSettleBooking(repo, testDispatcher())

	if _, err := uc.Execute(context.Background(), 20, ap.ID); err != nil {
		t.Fatalf("first settle: %v", err)
	}

	_, err := uc.Execute(context.Background(), 20, ap.ID)
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("second settle error = %v, want invalid_state", err)
	}

	// pontos adiados entram uma única vez
	if acct.Points != 80 {
		t.Errorf("points = %d, want 80", acct.Points)
	}
}
