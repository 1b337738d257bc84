package httperr

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// Mensagens amigáveis para os códigos de negócio conhecidos.
var businessMessages = map[string]string{
	"insufficient_funds":     "Saldo insuficiente na carteira.",
	"insufficient_points":    "Pontos insuficientes para o resgate.",
	"reward_expired_or_used": "Recompensa expirada ou já utilizada.",
	"already_cancelled":      "Agendamento já cancelado.",
	"booking_not_found":      "Agendamento não encontrado.",
	"invalid_state":          "Agendamento não permite essa operação.",
	"time_conflict":          "Conflito de horário.",
	"invalid_payment_method": "Forma de pagamento inválida.",
	"invalid_date_or_time":   "Data ou hora inválida.",
	"service_not_found":      "Serviço não encontrado.",
	"barber_not_found":       "Barbeiro não encontrado.",
	"reward_not_found":       "Recompensa não encontrada.",
	"invalid_amount":         "Valor inválido.",
	"referral_already_claimed": "Bônus de indicação já utilizado.",
	"invalid_referral_code":    "Código de indicação inválido.",
	"payment_rejected":         "Pagamento recusado pelo provedor.",
}

// Handle mapeia um erro de caso de uso para a resposta HTTP:
// erro de negócio -> 4xx com código estável; deadline -> 504; resto -> 500.
func Handle(c *gin.Context, err error) {
	if be, ok := AsBusiness(err); ok {
		status := http.StatusBadRequest
		if strings.HasSuffix(be.Code, "_not_found") {
			status = http.StatusNotFound
		}
		msg := businessMessages[be.Code]
		if msg == "" {
			msg = "Operação não permitida."
		}
		Write(c, status, be.Code, msg)
		return
	}

	if errors.Is(err, context.DeadlineExceeded) {
		Write(c, http.StatusGatewayTimeout, "request_timed_out", "A operação excedeu o tempo limite.")
		return
	}

	Internal(c, "internal_error", "Erro interno.")
}
