package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/edog39/FindMyFade-sub000/internal/domain/booking"
	"github.com/edog39/FindMyFade-sub000/internal/domain/wallet"
	"github.com/edog39/FindMyFade-sub000/internal/httperr"
	"github.com/edog39/FindMyFade-sub000/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

var confirmedStatuses = []string{
	string(domain.StatusConfirmedPrepaid),
	string(domain.StatusConfirmedPayLater),
}

// --------------------------------------------------
// Barber / Service
// --------------------------------------------------

func (r *BookingGormRepository) GetBarber(
	ctx context.Context,
	barberID uint,
) (*models.User, error) {

	var barber models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND role = ?", barberID, models.RoleBarber).
		First(&barber).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *BookingGormRepository) GetBarberProfile(
	ctx context.Context,
	barberID uint,
) (*models.BarberProfile, error) {

	var profile models.BarberProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", barberID).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	barberID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barber_id = ? AND active = true", serviceID, barberID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Reward (booking flow)
// --------------------------------------------------

func (r *BookingGormRepository) GetRedeemedReward(
	ctx context.Context,
	userID uint,
	redeemedID uint,
) (*models.RedeemedReward, error) {

	var redeemed models.RedeemedReward
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", redeemedID, userID).
		First(&redeemed).Error; err != nil {
		return nil, err
	}
	return &redeemed, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) CreateConfirmed(
	ctx context.Context,
	ap *models.Appointment,
	charge *wallet.Entry,
	redeemed *models.RedeemedReward,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"barber_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
				ap.BarberID,
				confirmedStatuses,
				ap.EndTime,
				ap.StartTime,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("time_conflict")
		}

		if redeemed != nil {
			// consumo exatamente-uma-vez: o UPDATE condicional garante
			// que duas reservas concorrentes não gastem a mesma recompensa
			res := tx.
				Model(&models.RedeemedReward{}).
				Where("id = ? AND used = false", redeemed.ID).
				Updates(map[string]any{"used": true, "used_at": redeemed.UsedAt})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return httperr.ErrBusiness("reward_expired_or_used")
			}
		}

		if err := tx.Create(ap).Error; err != nil {
			return err
		}

		if charge != nil {
			for i := range charge.Records {
				charge.Records[i].AppointmentID = &ap.ID
			}
			if _, err := applyEntryTx(tx, *charge); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *BookingGormRepository) AssertNoTimeConflict(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) error {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"barber_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
			barberID,
			confirmedStatuses,
			end,
			start,
		).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness("time_conflict")
	}

	return nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingForClient(
	ctx context.Context,
	appointmentID uint,
	clientID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND client_id = ?", appointmentID, clientID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) GetBookingForBarber(
	ctx context.Context,
	appointmentID uint,
	barberID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barber_id = ?", appointmentID, barberID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) Finalize(
	ctx context.Context,
	ap *models.Appointment,
	entry *wallet.Entry,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Save(ap).Error; err != nil {
			return err
		}

		if entry != nil {
			for i := range entry.Records {
				entry.Records[i].AppointmentID = &ap.ID
			}
			if _, err := applyEntryTx(tx, *entry); err != nil {
				return err
			}
		}

		return nil
	})
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *BookingGormRepository) ListForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Service").
		Where("client_id = ?", clientID).
		Order("start_time DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *BookingGormRepository) ListForBarberPeriod(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where(
			"barber_id = ? AND start_time >= ? AND start_time < ?",
			barberID,
			start,
			end,
		).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
