package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/edog39/FindMyFade-sub000/internal/httperr"
	"github.com/edog39/FindMyFade-sub000/internal/httpresp"
	"github.com/edog39/FindMyFade-sub000/internal/middleware"
	"github.com/edog39/FindMyFade-sub000/internal/models"
	"github.com/edog39/FindMyFade-sub000/internal/timezone"
)

// ProfileHandler: perfil da barbearia do barbeiro logado.
type ProfileHandler struct {
	db *gorm.DB
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

type UpdateProfileRequest struct {
	ShopName *string `json:"shop_name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Bio      *string `json:"bio"`
	Timezone *string `json:"timezone"`
}

// GET /barber/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var profile models.BarberProfile
	if err := h.db.
		Where("user_id = ?", barberID).
		First(&profile).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Perfil não encontrado.")
		return
	}

	httpresp.OK(c, profile)
}

// PATCH /barber/profile
func (h *ProfileHandler) Update(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var profile models.BarberProfile
	if err := h.db.
		Where("user_id = ?", barberID).
		First(&profile).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Perfil não encontrado.")
		return
	}

	if req.ShopName != nil && *req.ShopName != "" {
		profile.ShopName = *req.ShopName
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Address != nil {
		profile.Address = *req.Address
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Fuso horário inválido.")
			return
		}
		profile.Timezone = *req.Timezone
	}

	if err := h.db.Save(&profile).Error; err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, profile)
}
