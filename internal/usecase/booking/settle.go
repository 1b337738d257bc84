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

// SettleBooking: o barbeiro acerta um atendimento feito. Pay-later
// ganha aqui os pontos adiados (pagamento em caixa, carteira intocada);
// prepay só muda de estado.
type SettleBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSettleBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SettleBooking {
	return &SettleBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *SettleBooking) Execute(
	ctx context.Context,
	barberID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetBookingForBarber(ctx, appointmentID, barberID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := timezone.Now()

	earned, err := domain.Settle(ap, now)
	if err != nil {
		return nil, err
	}

	var entry *wallet.Entry
	if earned > 0 {
		entry = &wallet.Entry{
			UserID:      ap.ClientID,
			PointsDelta: earned,
			Records: []models.WalletTransaction{
				wallet.NewRecord(
					ap.ClientID,
					wallet.TxBookingPayment,
					0,
					earned,
					fmt.Sprintf("Pagamento na barbearia: %s", ap.ServiceName),
				),
			},
		}
	}

	if err := uc.repo.Finalize(ctx, ap, entry); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &barberID,
		Action:   "booking_settled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
