package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edog39/FindMyFade-sub000/internal/dto"
	"github.com/edog39/FindMyFade-sub000/internal/httperr"
	"github.com/edog39/FindMyFade-sub000/internal/httpresp"
	"github.com/edog39/FindMyFade-sub000/internal/infra/cache"
	"github.com/edog39/FindMyFade-sub000/internal/middleware"
	"github.com/edog39/FindMyFade-sub000/internal/timezone"
	usecase "github.com/edog39/FindMyFade-sub000/internal/usecase/booking"
)

type BookingHandler struct {
	createUC   *usecase.CreateBooking
	cancelUC   *usecase.CancelBooking
	settleUC   *usecase.SettleBooking
	listUC     *usecase.ListClientBookings
	scheduleUC *usecase.ListBarberSchedule

	idem    *cache.IdempotencyStore
	refresh *MirrorRefresher
}

func NewBookingHandler(
	createUC *usecase.CreateBooking,
	cancelUC *usecase.CancelBooking,
	settleUC *usecase.SettleBooking,
	listUC *usecase.ListClientBookings,
	scheduleUC *usecase.ListBarberSchedule,
	idem *cache.IdempotencyStore,
	refresh *MirrorRefresher,
) *BookingHandler {
	return &BookingHandler{
		createUC:   createUC,
		cancelUC:   cancelUC,
		settleUC:   settleUC,
		listUC:     listUC,
		scheduleUC: scheduleUC,
		idem:       idem,
		refresh:    refresh,
	}
}

// --------- Requests ---------

type CreateBookingRequest struct {
	BarberID  uint `json:"barber_id" binding:"required"`
	ServiceID uint `json:"service_id" binding:"required"`

	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`

	PaymentMethod string `json:"payment_method" binding:"required"`

	RedeemedRewardID *uint `json:"redeemed_reward_id"`

	Notes string `json:"notes"`
}

// --------- Client side ---------

// POST /appointments
func (h *BookingHandler) Create(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ctx := c.Request.Context()

	// Retry com a mesma Idempotency-Key devolve a reserva original.
	idemKey := c.GetHeader("Idempotency-Key")
	if idemKey != "" && h.idem != nil {
		if apID, found, err := h.idem.Lookup(ctx, clientID, idemKey); err == nil && found {
			if ap, err := h.listUC.Get(ctx, clientID, apID); err == nil {
				httpresp.OK(c, dto.NewClientAppointmentView(*ap))
				return
			}
		}
	}

	ap, err := h.createUC.Execute(ctx, usecase.CreateBookingInput{
		ClientID:         clientID,
		BarberID:         req.BarberID,
		ServiceID:        req.ServiceID,
		Date:             req.Date,
		Time:             req.Time,
		PaymentMethod:    req.PaymentMethod,
		RedeemedRewardID: req.RedeemedRewardID,
		Notes:            req.Notes,
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	if idemKey != "" && h.idem != nil {
		if err := h.idem.Store(ctx, clientID, idemKey, ap.ID); err != nil {
			log.Printf("booking: idempotency store: %v", err)
		}
	}

	h.refresh.refreshWallet(ctx, clientID)
	h.refresh.refreshRewards(ctx, clientID)
	h.refresh.refreshBookings(ctx, clientID)

	httpresp.Created(c, dto.NewClientAppointmentView(*ap))
}

// GET /appointments
func (h *BookingHandler) ListMine(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)
	ctx := c.Request.Context()

	aps, err := h.listUC.Execute(ctx, clientID)
	if err != nil {
		// Postgres fora: serve o último espelho conhecido
		if cached, cerr := h.refresh.mirror.GetBookings(ctx, clientID); cerr == nil {
			httpresp.List(c, dto.NewClientAppointmentViews(cached))
			return
		}
		httperr.Handle(c, err)
		return
	}

	h.refresh.refreshBookings(ctx, clientID)

	httpresp.List(c, dto.NewClientAppointmentViews(aps))
}

// POST /appointments/:id/cancel
func (h *BookingHandler) Cancel(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	apID, err := parseIDParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	ctx := c.Request.Context()

	ap, err := h.cancelUC.Execute(ctx, clientID, apID)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	h.refresh.refreshWallet(ctx, clientID)
	h.refresh.refreshBookings(ctx, clientID)

	httpresp.OK(c, dto.NewClientAppointmentView(*ap))
}

// --------- Barber side ---------

// GET /barber/schedule?date=YYYY-MM-DD
func (h *BookingHandler) Schedule(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		dateStr = timezone.Now().Format("2006-01-02")
	}

	date, err := timezone.ParseDateIn(c.Query("tz"), dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data inválida.")
		return
	}

	aps, err := h.scheduleUC.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.List(c, dto.NewBarberAppointmentViews(aps))
}

// POST /barber/appointments/:id/settle
func (h *BookingHandler) Settle(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	apID, err := parseIDParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	ctx := c.Request.Context()

	ap, err := h.settleUC.Execute(ctx, barberID, apID)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	// pontos adiados caem na carteira do cliente
	h.refresh.refreshWallet(ctx, ap.ClientID)
	h.refresh.refreshBookings(ctx, ap.ClientID)

	httpresp.OK(c, dto.NewBarberAppointmentView(*ap))
}

// --------- Helpers ---------

var errInvalidID = errors.New("invalid id param")

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}
