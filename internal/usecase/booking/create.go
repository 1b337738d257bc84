package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/edog39/FindMyFade-sub000/internal/audit"
	domain "github.com/edog39/FindMyFade-sub000/internal/domain/booking"
	"github.com/edog39/FindMyFade-sub000/internal/domain/wallet"
	"github.com/edog39/FindMyFade-sub000/internal/httperr"
	"github.com/edog39/FindMyFade-sub000/internal/models"
	"github.com/edog39/FindMyFade-sub000/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ClientID uint
	BarberID uint

	ServiceID uint

	Date string
	Time string

	PaymentMethod string

	RedeemedRewardID *uint

	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	pm := domain.PaymentMethod(in.PaymentMethod)
	if !domain.IsValidPaymentMethod(pm) {
		return nil, httperr.ErrBusiness("invalid_payment_method")
	}

	// --------------------------------------------------
	// Barbeiro + fuso da barbearia
	// --------------------------------------------------
	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	tz := ""
	if profile, err := uc.repo.GetBarberProfile(ctx, in.BarberID); err == nil {
		tz = profile.Timezone
	}

	// --------------------------------------------------
	// Data / hora chegam como strings separadas
	// --------------------------------------------------
	start, err := timezone.ParseDateTimeIn(tz, in.Date, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// Serviço (preço e duração vêm do catálogo)
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.BarberID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	duration := service.DurationMin
	if duration <= 0 {
		duration = 30
	}
	end := start.Add(time.Duration(duration) * time.Minute)

	// --------------------------------------------------
	// Recompensa (opcional): expirada ou usada REJEITA a
	// reserva, nada de desconto silencioso
	// --------------------------------------------------
	now := timezone.NowIn(tz)

	var redeemed *models.RedeemedReward
	discount := 0.0

	if in.RedeemedRewardID != nil {
		redeemed, err = uc.repo.GetRedeemedReward(ctx, in.ClientID, *in.RedeemedRewardID)
		if err != nil {
			return nil, httperr.ErrBusiness("reward_not_found")
		}

		discount, err = wallet.ApplyToBooking(redeemed, now)
		if err != nil {
			return nil, err
		}
	}

	charged := domain.DiscountedPrice(service.Price, discount)

	// --------------------------------------------------
	// Conflito de horário (pré-checagem; a definitiva roda
	// com lock dentro de CreateConfirmed)
	// --------------------------------------------------
	if err := uc.repo.AssertNoTimeConflict(ctx, in.BarberID, start, end); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Agendamento confirmado na criação
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientID:      in.ClientID,
		BarberID:      in.BarberID,
		ServiceID:     service.ID,
		ServiceName:   service.Name,
		StartTime:     start,
		EndTime:       end,
		DurationMin:   duration,
		Price:         service.Price,
		Discount:      service.Price - charged,
		ChargedPrice:  charged,
		PaymentMethod: string(pm),
		Status:        string(domain.ConfirmedStatus(pm)),
		Notes:         in.Notes,
	}
	if redeemed != nil {
		ap.RedeemedRewardID = &redeemed.ID
	}

	// --------------------------------------------------
	// Prepay debita a carteira na hora; pay-later não toca
	// na carteira (pontos adiados para o acerto)
	// --------------------------------------------------
	var charge *wallet.Entry
	if pm == domain.PaymentPrepay {
		earned := domain.PointsForBooking(charged, pm)
		charge = &wallet.Entry{
			UserID:      in.ClientID,
			AmountDelta: -charged,
			PointsDelta: earned,
			Records: []models.WalletTransaction{
				wallet.NewRecord(
					in.ClientID,
					wallet.TxBookingPayment,
					-charged,
					earned,
					fmt.Sprintf("Reserva: %s", service.Name),
				),
			},
		}
	}

	if err := uc.repo.CreateConfirmed(ctx, ap, charge, redeemed); err != nil {
		return nil, err
	}

	// a resposta da criação sai com o barbeiro já resolvido
	ap.Barber = *barber

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ClientID,
		Action:   "booking_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
