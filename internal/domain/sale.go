package domain

import "time"

// MaxProductLines é o número de pares (produto, quantidade) de uma venda
const MaxProductLines = 4

// PaymentMethod é a forma de pagamento já classificada na ingestão
type PaymentMethod string

const (
	PaymentMethodCash           PaymentMethod = "contado"
	PaymentMethodCreditTerm     PaymentMethod = "credito"
	PaymentMethodCashOnDelivery PaymentMethod = "contraentrega"
	PaymentMethodUnknown        PaymentMethod = "desconocido"
)

// IsCredit indica se o pagamento é diferido. Formas desconhecidas não são crédito.
func (p PaymentMethod) IsCredit() bool {
	return p == PaymentMethodCreditTerm
}

type ConfirmationStatus string

const (
	StatusPendingConfirm ConfirmationStatus = "pendiente"
	StatusConfirmed      ConfirmationStatus = "confirmada"
	StatusRejected       ConfirmationStatus = "rechazada"
	StatusRemoved        ConfirmationStatus = "eliminada"
	StatusUnknown        ConfirmationStatus = "desconocido"
)

type ProductLine struct {
	Product  string  `json:"product"`
	Quantity float64 `json:"quantity"`
}

// SaleRecord representa uma linha de venda (preventa confirmada ou não)
type SaleRecord struct {
	ID            string             `json:"id"`
	SellerID      string             `json:"seller_id"`
	VetID         *string            `json:"vet_id,omitempty"`
	DocumentID    string             `json:"document_id"`
	Lines         []ProductLine      `json:"lines"`
	PaymentMethod PaymentMethod      `json:"payment_method"`
	Status        ConfirmationStatus `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
}
