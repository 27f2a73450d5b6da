package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/kleandaily/klean-daily-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSettlementRow_SaleConfirmed(t *testing.T) {
	tests := []struct {
		name     string
		status   sql.NullString
		expected bool
	}{
		{name: "Venda confirmada", status: nullString("Confirmada"), expected: true},
		{name: "Venda confirmada com acento e caixa", status: nullString(" CONFIRMADO "), expected: true},
		{name: "Venda rechazada", status: nullString("Rechazada"), expected: false},
		{name: "Venda eliminada", status: nullString("eliminada"), expected: false},
		{name: "Venda pendente", status: nullString("Pendiente confirmar"), expected: false},
		{name: "Status nulo", status: sql.NullString{}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := settlementRow{ID: "E1", SaleID: "S1", SaleStatus: tt.status}
			assert.Equal(t, tt.expected, row.saleConfirmed())
		})
	}
}

func TestSettlementRow_ToDomain(t *testing.T) {
	occurredAt := time.Date(2024, 4, 10, 15, 0, 0, 0, time.UTC)

	row := settlementRow{
		ID:         "E1",
		SaleID:     "S1",
		EventType:  nullString("Paz y Salvo"),
		Amount:     sql.NullFloat64{Float64: 250000, Valid: true},
		OccurredAt: sql.NullTime{Time: occurredAt, Valid: true},
	}

	assert.Equal(t, domain.SettlementEvent{
		ID:         "E1",
		SaleID:     "S1",
		Type:       domain.EventTypeFullSettlement,
		Amount:     250000,
		OccurredAt: occurredAt,
	}, row.toDomain())
}

func TestSettlementRow_Targets(t *testing.T) {
	var row settlementRow

	assert.Len(t, row.targets(false), 5)
	assert.Len(t, row.targets(true), 6)
}
