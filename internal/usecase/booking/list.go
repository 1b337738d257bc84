package booking

import (
	"context"
	"time"

	domain "github.com/edog39/FindMyFade-sub000/internal/domain/booking"
	"github.com/edog39/FindMyFade-sub000/internal/models"
)

type ListClientBookings struct {
	repo domain.Repository
}

func NewListClientBookings(repo domain.Repository) *ListClientBookings {
	return &ListClientBookings{repo: repo}
}

func (uc *ListClientBookings) Execute(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {
	return uc.repo.ListForClient(ctx, clientID)
}

// Get devolve um agendamento do próprio cliente.
func (uc *ListClientBookings) Get(
	ctx context.Context,
	clientID uint,
	appointmentID uint,
) (*models.Appointment, error) {
	return uc.repo.GetBookingForClient(ctx, appointmentID, clientID)
}

type ListBarberSchedule struct {
	repo domain.Repository
}

func NewListBarberSchedule(repo domain.Repository) *ListBarberSchedule {
	return &ListBarberSchedule{repo: repo}
}

// Execute lista a agenda do barbeiro para um dia.
func (uc *ListBarberSchedule) Execute(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]models.Appointment, error) {

	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24 * time.Hour)

	return uc.repo.ListForBarberPeriod(ctx, barberID, start, end)
}
