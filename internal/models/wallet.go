package models

import "time"

// Uma carteira por usuário. Balance e Points mudam somente junto com
// um WalletTransaction, na mesma transação de banco.
type WalletAccount struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex" json:"user_id"`

	Balance float64 `json:"balance"`
	Points  int     `json:"points"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WalletTransaction struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index" json:"user_id"`

	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	Type         string  `gorm:"size:30;not null" json:"type"`
	Amount       float64 `json:"amount"`
	PointsEarned int     `json:"points_earned"`

	Description string `gorm:"size:255" json:"description"`
	Status      string `gorm:"size:20;default:'completed'" json:"status"`

	AppointmentID *uint `json:"appointment_id"`

	CreatedAt time.Time `json:"created_at"`
}
