package models

import "time"

// Catálogo de recompensas compráveis com pontos.
type Reward struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string  `gorm:"size:100;not null" json:"title"`
	Description string  `gorm:"size:255" json:"description"`
	Discount    float64 `json:"discount"`
	Cost        int     `json:"cost"`
	Active      bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Recompensa já resgatada por um usuário: desconto de uso único,
// válido por 30 dias a partir do resgate.
type RedeemedReward struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index" json:"user_id"`

	RewardID uint   `json:"reward_id"`
	Reward   Reward `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"reward"`

	Title    string  `gorm:"size:100" json:"title"`
	Discount float64 `json:"discount"`

	ExpiresAt time.Time  `json:"expires_at"`
	Used      bool       `gorm:"default:false" json:"used"`
	UsedAt    *time.Time `json:"used_at"`

	CreatedAt time.Time `json:"created_at"`
}
