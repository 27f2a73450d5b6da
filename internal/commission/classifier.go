package commission

import (
	"strconv"
	"strings"

	"github.com/kleandaily/klean-daily-api/internal/domain"
	"github.com/kleandaily/klean-daily-api/pkg/utils"
)

var paymentTokens = map[string]domain.PaymentMethod{
	"contado":           domain.PaymentMethodCash,
	"pagocontado":       domain.PaymentMethodCash,
	"efectivo":          domain.PaymentMethodCash,
	"cash":              domain.PaymentMethodCash,
	"credito":           domain.PaymentMethodCreditTerm,
	"acredito":          domain.PaymentMethodCreditTerm,
	"creditoterm":       domain.PaymentMethodCreditTerm,
	"creditterm":        domain.PaymentMethodCreditTerm,
	"credit":            domain.PaymentMethodCreditTerm,
	"contraentrega":     domain.PaymentMethodCashOnDelivery,
	"pagocontraentrega": domain.PaymentMethodCashOnDelivery,
	"cashondelivery":    domain.PaymentMethodCashOnDelivery,
	"cod":               domain.PaymentMethodCashOnDelivery,
}

var statusTokens = map[string]domain.ConfirmationStatus{
	"pendiente":          domain.StatusPendingConfirm,
	"pendienteconfirmar": domain.StatusPendingConfirm,
	"porconfirmar":       domain.StatusPendingConfirm,
	"pendingconfirm":     domain.StatusPendingConfirm,
	"confirmada":         domain.StatusConfirmed,
	"confirmado":         domain.StatusConfirmed,
	"confirmed":          domain.StatusConfirmed,
	"rechazada":          domain.StatusRejected,
	"rechazado":          domain.StatusRejected,
	"rejected":           domain.StatusRejected,
	"eliminada":          domain.StatusRemoved,
	"eliminado":          domain.StatusRemoved,
	"removed":            domain.StatusRemoved,
}

var eventTokens = map[string]domain.EventType{
	"abono":          domain.EventTypePartialPayment,
	"pagoparcial":    domain.EventTypePartialPayment,
	"partialpayment": domain.EventTypePartialPayment,
	"pazysalvo":      domain.EventTypeFullSettlement,
	"pagototal":      domain.EventTypeFullSettlement,
	"fullsettlement": domain.EventTypeFullSettlement,
}

// ParsePaymentMethod classifica o texto livre da forma de pagamento.
// Valores desconhecidos viram PaymentMethodUnknown, que não é crédito.
func ParsePaymentMethod(raw string) domain.PaymentMethod {
	if method, ok := paymentTokens[utils.NormalizeToken(raw)]; ok {
		return method
	}
	return domain.PaymentMethodUnknown
}

// ParseConfirmationStatus classifica o status da preventa; desconhecido vira StatusUnknown.
func ParseConfirmationStatus(raw string) domain.ConfirmationStatus {
	if status, ok := statusTokens[utils.NormalizeToken(raw)]; ok {
		return status
	}
	return domain.StatusUnknown
}

// ParseEventType classifica o tipo do evento de cobrança (abono ou paz y salvo).
func ParseEventType(raw string) domain.EventType {
	if eventType, ok := eventTokens[utils.NormalizeToken(raw)]; ok {
		return eventType
	}
	return domain.EventTypeUnknown
}

// ParseProductLine valida um par (produto, quantidade) vindo do banco.
// Retorna false quando um dos lados está vazio ou a quantidade não é numérica/positiva.
func ParseProductLine(product, quantity string) (domain.ProductLine, bool) {
	product = strings.TrimSpace(product)
	quantity = strings.ReplaceAll(strings.TrimSpace(quantity), ",", ".")
	if product == "" || quantity == "" {
		return domain.ProductLine{}, false
	}

	qty, err := strconv.ParseFloat(quantity, 64)
	if err != nil || qty <= 0 {
		return domain.ProductLine{}, false
	}

	return domain.ProductLine{Product: product, Quantity: qty}, true
}
