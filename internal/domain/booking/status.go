package booking

import "github.com/edog39/FindMyFade-sub000/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPendingConfirmation Status = "pending_confirmation"
	StatusConfirmedPrepaid    Status = "confirmed_prepaid"
	StatusConfirmedPayLater   Status = "confirmed_pay_later"
	StatusCancelled           Status = "cancelled"
	StatusCompleted           Status = "completed"
)

type PaymentMethod string

const (
	PaymentPrepay   PaymentMethod = "prepay"
	PaymentPayLater PaymentMethod = "pay_later"
)

func IsValidPaymentMethod(pm PaymentMethod) bool {
	return pm == PaymentPrepay || pm == PaymentPayLater
}

// ===============================
// Validations
// ===============================

func IsConfirmed(current Status) bool {
	return current == StatusConfirmedPrepaid || current == StatusConfirmedPayLater
}

// CanCancel define se um agendamento pode ser cancelado.
// Cancelado é terminal: nunca volta para nenhum outro estado.
func CanCancel(current Status) error {
	if current == StatusCancelled {
		return httperr.ErrBusiness("already_cancelled")
	}
	if !IsConfirmed(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanSettle define se um agendamento pode ser concluído/acertado
func CanSettle(current Status) error {
	if current == StatusCancelled {
		return httperr.ErrBusiness("already_cancelled")
	}
	if !IsConfirmed(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// ConfirmedStatus valida o status inicial de um agendamento novo.
// Um agendamento nunca nasce cancelado: o "pending" existe apenas
// durante a criação e é confirmado na mesma operação.
func ConfirmedStatus(pm PaymentMethod) Status {
	if pm == PaymentPrepay {
		return StatusConfirmedPrepaid
	}
	return StatusConfirmedPayLater
}
