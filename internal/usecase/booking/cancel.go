package booking

import (
	"context"
	"fmt"

	"github.com/edog39/FindMyFade-sub000/internal/audit"
	domain "github.com/edog39/FindMyFade-sub000/internal/domain/booking"
	"github.com/edog39/FindMyFade-sub000/internal/domain/wallet"
	"github.com/edog39/FindMyFade-sub000/internal/httperr"
	"github.com/edog39/FindMyFade-sub000/internal/models"
	"github.com/edog39/FindMyFade-sub000/internal/timezone"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	clientID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetBookingForClient(ctx, appointmentID, clientID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := timezone.Now()

	quote, err := domain.Cancel(ap, now)
	if err != nil {
		return nil, err
	}

	// Prepay devolve conforme a janela; a dedução de pontos é fixa
	// (ceil do valor cobrado), independente da fração reembolsada.
	var entry *wallet.Entry
	if quote != nil {
		deduction := domain.CancellationPointsDeduction(ap.ChargedPrice)

		records := []models.WalletTransaction{
			wallet.NewRecord(
				clientID,
				wallet.TxRefund,
				quote.Refund,
				-deduction,
				fmt.Sprintf("Reembolso: %s", ap.ServiceName),
			),
		}

		if quote.Fee > 0 {
			// registro do valor retido; não debita a carteira de novo
			records = append(records, wallet.NewRecord(
				clientID,
				wallet.TxCancellationFee,
				-quote.Fee,
				0,
				"Taxa de cancelamento",
			))
		}

		entry = &wallet.Entry{
			UserID:      clientID,
			AmountDelta: quote.Refund,
			PointsDelta: -deduction,
			Records:     records,
		}
	}

	if err := uc.repo.Finalize(ctx, ap, entry); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &clientID,
		Action:   "booking_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
