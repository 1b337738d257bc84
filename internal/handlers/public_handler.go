package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/edog39/FindMyFade-sub000/internal/httperr"
	"github.com/edog39/FindMyFade-sub000/internal/httpresp"
	"github.com/edog39/FindMyFade-sub000/internal/models"
)

// PublicHandler: descoberta de barbearias, sem autenticação.
type PublicHandler struct {
	db *gorm.DB
}

func NewPublicHandler(db *gorm.DB) *PublicHandler {
	return &PublicHandler{db: db}
}

// GET /public/barbershops?q=
func (h *PublicHandler) ListBarbershops(c *gin.Context) {
	query := h.db.Model(&models.BarberProfile{})

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			"LOWER(shop_name) LIKE ? OR LOWER(address) LIKE ?",
			like, like,
		)
	}

	var profiles []models.BarberProfile
	if err := query.Order("shop_name ASC").Find(&profiles).Error; err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.List(c, profiles)
}

// GET /public/barbershops/:slug
func (h *PublicHandler) GetBarbershop(c *gin.Context) {
	slug := strings.ToLower(c.Param("slug"))

	var profile models.BarberProfile
	if err := h.db.
		Where("slug = ?", slug).
		First(&profile).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbearia não encontrada.")
		return
	}

	var services []models.Service
	if err := h.db.
		Where("barber_id = ? AND active = ?", profile.UserID, true).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"barbershop": profile,
		"services":   services,
	})
}
