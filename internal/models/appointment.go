package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint `json:"client_id"`
	Client   User `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	BarberID uint `json:"barber_id"`
	Barber   User `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ServiceID   uint    `json:"service_id"`
	Service     Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`
	ServiceName string  `gorm:"size:100" json:"service_name"`

	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	DurationMin int       `json:"duration_min"`

	Price        float64 `json:"price"`
	Discount     float64 `json:"discount"`
	ChargedPrice float64 `json:"charged_price"`

	PaymentMethod string `gorm:"size:20" json:"payment_method"`
	Status        string `gorm:"size:30;default:'pending_confirmation'" json:"status"`

	RedeemedRewardID *uint `json:"redeemed_reward_id"`

	RefundAmount    *float64 `json:"refund_amount"`
	CancellationFee *float64 `json:"cancellation_fee"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
