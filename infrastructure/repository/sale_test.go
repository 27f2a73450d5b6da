package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/kleandaily/klean-daily-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func TestSaleRow_ToDomain(t *testing.T) {
	createdAt := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		row      saleRow
		validate func(t *testing.T, sale domain.SaleRecord)
	}{
		{
			name: "Venda completa com texto livre classificado",
			row: saleRow{
				ID:            "S1",
				SellerID:      "asesor-01",
				VetID:         nullString("vet-01"),
				DocumentID:    nullString("900123"),
				Products:      [4]sql.NullString{nullString("Derma Plus"), nullString("Klean Ótico")},
				Quantities:    [4]sql.NullString{nullString("10"), nullString("2,5")},
				PaymentMethod: nullString(" Crédito "),
				Status:        nullString("CONFIRMADA"),
				CreatedAt:     sql.NullTime{Time: createdAt, Valid: true},
			},
			validate: func(t *testing.T, sale domain.SaleRecord) {
				assert.Equal(t, "S1", sale.ID)
				assert.Equal(t, "vet-01", *sale.VetID)
				assert.Equal(t, "900123", sale.DocumentID)
				assert.Equal(t, domain.PaymentMethodCreditTerm, sale.PaymentMethod)
				assert.Equal(t, domain.StatusConfirmed, sale.Status)
				assert.Equal(t, createdAt, sale.CreatedAt)
				assert.Equal(t, []domain.ProductLine{
					{Product: "Derma Plus", Quantity: 10},
					{Product: "Klean Ótico", Quantity: 2.5},
				}, sale.Lines)
			},
		},
		{
			name: "Slots incompletos ou inválidos são descartados",
			row: saleRow{
				ID:         "S2",
				SellerID:   "asesor-01",
				Products:   [4]sql.NullString{nullString("Derma Plus"), {}, nullString("Klean Dental"), nullString("Klean Shampoo")},
				Quantities: [4]sql.NullString{{}, nullString("3"), nullString("abc"), nullString("4")},
			},
			validate: func(t *testing.T, sale domain.SaleRecord) {
				assert.Nil(t, sale.VetID)
				assert.True(t, sale.CreatedAt.IsZero())
				assert.Equal(t, domain.PaymentMethodUnknown, sale.PaymentMethod)
				assert.Equal(t, domain.StatusUnknown, sale.Status)
				assert.Equal(t, []domain.ProductLine{{Product: "Klean Shampoo", Quantity: 4}}, sale.Lines)
			},
		},
		{
			name: "Veterinário vazio é tratado como ausente",
			row: saleRow{
				ID:       "S3",
				SellerID: "asesor-02",
				VetID:    nullString(""),
			},
			validate: func(t *testing.T, sale domain.SaleRecord) {
				assert.Nil(t, sale.VetID)
				assert.Empty(t, sale.Lines)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, tt.row.toDomain())
		})
	}
}

func TestSaleRow_TargetsMatchColumns(t *testing.T) {
	var row saleRow
	assert.Len(t, row.targets(), len(saleColumns))
}
