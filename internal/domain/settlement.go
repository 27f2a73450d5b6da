package domain

import "time"

type EventType string

const (
	EventTypePartialPayment EventType = "abono"
	EventTypeFullSettlement EventType = "paz_y_salvo"
	EventTypeUnknown        EventType = "desconocido"
)

// SettlementEvent é um evento de cobrança (cartera) vinculado a uma venda
type SettlementEvent struct {
	ID         string    `json:"id"`
	SaleID     string    `json:"sale_id"`
	Type       EventType `json:"type"`
	Amount     float64   `json:"amount"`
	OccurredAt time.Time `json:"occurred_at"`
}
