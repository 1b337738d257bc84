package dto

import "github.com/edog39/FindMyFade-sub000/internal/models"

// ======================================================
// APPOINTMENT VIEWS
// ======================================================
// Data e hora saem como strings separadas, já formatadas no
// horário gravado do agendamento.

type ClientAppointmentView struct {
	ID uint `json:"id"`

	BarberID   uint   `json:"barber_id"`
	BarberName string `json:"barber_name"`

	ServiceID   uint   `json:"service_id"`
	ServiceName string `json:"service_name"`

	Date        string `json:"date"`
	Time        string `json:"time"`
	DurationMin int    `json:"duration_min"`

	Price        float64 `json:"price"`
	Discount     float64 `json:"discount"`
	ChargedPrice float64 `json:"charged_price"`

	PaymentMethod string `json:"payment_method"`
	Status        string `json:"status"`

	RefundAmount    *float64 `json:"refund_amount,omitempty"`
	CancellationFee *float64 `json:"cancellation_fee,omitempty"`

	Notes string `json:"notes,omitempty"`
}

type BarberAppointmentView struct {
	ID uint `json:"id"`

	ClientID    uint   `json:"client_id"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`

	ServiceID   uint   `json:"service_id"`
	ServiceName string `json:"service_name"`

	Date        string `json:"date"`
	Time        string `json:"time"`
	DurationMin int    `json:"duration_min"`

	ChargedPrice  float64 `json:"charged_price"`
	PaymentMethod string  `json:"payment_method"`
	Status        string  `json:"status"`

	Notes string `json:"notes,omitempty"`
}

func NewClientAppointmentView(ap models.Appointment) ClientAppointmentView {
	return ClientAppointmentView{
		ID:              ap.ID,
		BarberID:        ap.BarberID,
		BarberName:      ap.Barber.Name,
		ServiceID:       ap.ServiceID,
		ServiceName:     ap.ServiceName,
		Date:            ap.StartTime.Format("2006-01-02"),
		Time:            ap.StartTime.Format("15:04"),
		DurationMin:     ap.DurationMin,
		Price:           ap.Price,
		Discount:        ap.Discount,
		ChargedPrice:    ap.ChargedPrice,
		PaymentMethod:   ap.PaymentMethod,
		Status:          ap.Status,
		RefundAmount:    ap.RefundAmount,
		CancellationFee: ap.CancellationFee,
		Notes:           ap.Notes,
	}
}

func NewBarberAppointmentView(ap models.Appointment) BarberAppointmentView {
	return BarberAppointmentView{
		ID:            ap.ID,
		ClientID:      ap.ClientID,
		ClientName:    ap.Client.Name,
		ClientPhone:   ap.Client.Phone,
		ServiceID:     ap.ServiceID,
		ServiceName:   ap.ServiceName,
		Date:          ap.StartTime.Format("2006-01-02"),
		Time:          ap.StartTime.Format("15:04"),
		DurationMin:   ap.DurationMin,
		ChargedPrice:  ap.ChargedPrice,
		PaymentMethod: ap.PaymentMethod,
		Status:        ap.Status,
		Notes:         ap.Notes,
	}
}

func NewClientAppointmentViews(aps []models.Appointment) []ClientAppointmentView {
	views := make([]ClientAppointmentView, 0, len(aps))
	for _, ap := range aps {
		views = append(views, NewClientAppointmentView(ap))
	}
	return views
}

func NewBarberAppointmentViews(aps []models.Appointment) []BarberAppointmentView {
	views := make([]BarberAppointmentView, 0, len(aps))
	for _, ap := range aps {
		views = append(views, NewBarberAppointmentView(ap))
	}
	return views
}
