package booking

import (
	"context"
	"time"

	"github.com/edog39/FindMyFade-sub000/internal/domain/wallet"
	"github.com/edog39/FindMyFade-sub000/internal/models"
)

type Repository interface {
	// -------- Barber / Service --------
	GetBarber(
		ctx context.Context,
		barberID uint,
	) (*models.User, error)

	// GetBarberProfile resolve o perfil (e o fuso horário) da barbearia.
	GetBarberProfile(
		ctx context.Context,
		barberID uint,
	) (*models.BarberProfile, error)

	GetService(
		ctx context.Context,
		barberID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Reward lookup (booking flow) --------
	GetRedeemedReward(
		ctx context.Context,
		userID uint,
		redeemedID uint,
	) (*models.RedeemedReward, error)

	// -------- Appointment (create / conflict) --------

	// CreateConfirmed persiste o agendamento, a mutação da carteira e o
	// consumo da recompensa numa única transação: ou tudo entra, ou nada.
	// Um charge com débito maior que o saldo falha com insufficient_funds
	// e o agendamento não é criado.
	CreateConfirmed(
		ctx context.Context,
		ap *models.Appointment,
		charge *wallet.Entry,
		redeemed *models.RedeemedReward,
	) error

	AssertNoTimeConflict(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) error

	// -------- Appointment (state change) --------
	GetBookingForClient(
		ctx context.Context,
		appointmentID uint,
		clientID uint,
	) (*models.Appointment, error)

	GetBookingForBarber(
		ctx context.Context,
		appointmentID uint,
		barberID uint,
	) (*models.Appointment, error)

	// Finalize grava a mudança de estado junto com a mutação da carteira
	// (reembolso no cancelamento, pontos adiados no acerto), atômico.
	Finalize(
		ctx context.Context,
		ap *models.Appointment,
		entry *wallet.Entry,
	) error

	// -------- Listing --------
	ListForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)

	ListForBarberPeriod(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
