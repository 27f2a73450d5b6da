package commission

import (
	"testing"

	"github.com/kleandaily/klean-daily-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestParsePaymentMethod(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.PaymentMethod
		credit   bool
	}{
		{input: "Contado", expected: domain.PaymentMethodCash},
		{input: " EFECTIVO ", expected: domain.PaymentMethodCash},
		{input: "Crédito", expected: domain.PaymentMethodCreditTerm, credit: true},
		{input: "credito", expected: domain.PaymentMethodCreditTerm, credit: true},
		{input: "CreditTerm", expected: domain.PaymentMethodCreditTerm, credit: true},
		{input: "Contra Entrega", expected: domain.PaymentMethodCashOnDelivery},
		{input: "contra-entrega", expected: domain.PaymentMethodCashOnDelivery},
		{input: "Transferencia", expected: domain.PaymentMethodUnknown},
		{input: "", expected: domain.PaymentMethodUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			method := ParsePaymentMethod(tt.input)
			assert.Equal(t, tt.expected, method)
			assert.Equal(t, tt.credit, method.IsCredit())
		})
	}
}

func TestParseConfirmationStatus(t *testing.T) {
	assert.Equal(t, domain.StatusConfirmed, ParseConfirmationStatus("Confirmada"))
	assert.Equal(t, domain.StatusPendingConfirm, ParseConfirmationStatus("Pendiente confirmar"))
	assert.Equal(t, domain.StatusRejected, ParseConfirmationStatus("RECHAZADA"))
	assert.Equal(t, domain.StatusRemoved, ParseConfirmationStatus("eliminado"))
	assert.Equal(t, domain.StatusUnknown, ParseConfirmationStatus("en ruta"))
}

func TestParseEventType(t *testing.T) {
	assert.Equal(t, domain.EventTypeFullSettlement, ParseEventType("Paz y Salvo"))
	assert.Equal(t, domain.EventTypeFullSettlement, ParseEventType("paz_y_salvo"))
	assert.Equal(t, domain.EventTypePartialPayment, ParseEventType("Abono"))
	assert.Equal(t, domain.EventTypeUnknown, ParseEventType("nota"))
}

func TestParseProductLine(t *testing.T) {
	tests := []struct {
		name     string
		product  string
		quantity string
		expected domain.ProductLine
		ok       bool
	}{
		{name: "Par completo", product: "Derma Plus", quantity: "2", expected: domain.ProductLine{Product: "Derma Plus", Quantity: 2}, ok: true},
		{name: "Remove espaços", product: "  Klean Dental ", quantity: " 3 ", expected: domain.ProductLine{Product: "Klean Dental", Quantity: 3}, ok: true},
		{name: "Vírgula decimal", product: "Klean Shampoo", quantity: "1,5", expected: domain.ProductLine{Product: "Klean Shampoo", Quantity: 1.5}, ok: true},
		{name: "Produto sem quantidade", product: "Derma Plus", quantity: "", ok: false},
		{name: "Quantidade sem produto", product: "", quantity: "2", ok: false},
		{name: "Quantidade não numérica", product: "Derma Plus", quantity: "dos", ok: false},
		{name: "Quantidade zero", product: "Derma Plus", quantity: "0", ok: false},
		{name: "Quantidade negativa", product: "Derma Plus", quantity: "-1", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, ok := ParseProductLine(tt.product, tt.quantity)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, line)
		})
	}
}
