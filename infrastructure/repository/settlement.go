package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/kleandaily/klean-daily-api/infrastructure/database/postgres"
	"github.com/kleandaily/klean-daily-api/internal/commission"
	"github.com/kleandaily/klean-daily-api/internal/domain"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

const (
	settlementEventsTable = "settlement_events se"
)

type SettlementRepository interface {
	ListBySaleIDs(ctx context.Context, saleIDs []string) ([]domain.SettlementEvent, error)
	ListPaymentsByVet(ctx context.Context, vetID string, window domain.PeriodWindow) ([]domain.SettlementEvent, error)
}

type settlementRepository struct {
	conn postgres.Conn
}

func NewSettlementRepository(conn postgres.Conn) SettlementRepository {
	return &settlementRepository{
		conn: conn,
	}
}

func (r *settlementRepository) ListBySaleIDs(ctx context.Context, saleIDs []string) ([]domain.SettlementEvent, error) {
	if len(saleIDs) == 0 {
		return []domain.SettlementEvent{}, nil
	}

	query, args, err := squirrel.
		Select("se.id", "se.sale_id", "se.event_type", "se.amount", "se.occurred_at").
		From(settlementEventsTable).
		Where("se.sale_id = ANY(?)", pq.Array(saleIDs)).
		OrderBy("se.occurred_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	return r.query(ctx, false, query, args...)
}

// ListPaymentsByVet retorna os eventos de cobrança dentro da janela das vendas confirmadas indicadas pelo veterinário.
// O status da venda é texto livre, por isso o filtro usa a mesma classificação da apuração dos vendedores.
func (r *settlementRepository) ListPaymentsByVet(ctx context.Context, vetID string, window domain.PeriodWindow) ([]domain.SettlementEvent, error) {
	query, args, err := squirrel.
		Select("se.id", "se.sale_id", "se.event_type", "se.amount", "se.occurred_at", "s.status").
		From(settlementEventsTable).
		Join("sales s ON s.id = se.sale_id").
		Where(squirrel.Eq{"s.vet_id": vetID}).
		Where(squirrel.GtOrEq{"se.occurred_at": window.Start}).
		Where(squirrel.Lt{"se.occurred_at": window.End}).
		OrderBy("se.occurred_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	return r.query(ctx, true, query, args...)
}

type settlementRow struct {
	ID         string
	SaleID     string
	EventType  sql.NullString
	Amount     sql.NullFloat64
	OccurredAt sql.NullTime
	SaleStatus sql.NullString
}

func (row *settlementRow) targets(withSaleStatus bool) []any {
	targets := []any{&row.ID, &row.SaleID, &row.EventType, &row.Amount, &row.OccurredAt}
	if withSaleStatus {
		targets = append(targets, &row.SaleStatus)
	}
	return targets
}

func (row *settlementRow) saleConfirmed() bool {
	return commission.ParseConfirmationStatus(row.SaleStatus.String) == domain.StatusConfirmed
}

func (row *settlementRow) toDomain() domain.SettlementEvent {
	event := domain.SettlementEvent{
		ID:     row.ID,
		SaleID: row.SaleID,
		Type:   commission.ParseEventType(row.EventType.String),
		Amount: row.Amount.Float64,
	}
	if row.OccurredAt.Valid {
		event.OccurredAt = row.OccurredAt.Time
	}
	return event
}

// query escaneia eventos; com onlyConfirmedSales a última coluna é o status da venda
func (r *settlementRepository) query(ctx context.Context, onlyConfirmedSales bool, query string, args ...any) ([]domain.SettlementEvent, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryError(err, "erro ao executar a query de eventos de cobrança")
	}
	defer rows.Close()

	events := make([]domain.SettlementEvent, 0)
	for rows.Next() {
		var row settlementRow
		if err := rows.Scan(row.targets(onlyConfirmedSales)...); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear evento de cobrança")
		}

		if onlyConfirmedSales && !row.saleConfirmed() {
			continue
		}

		events = append(events, row.toDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return events, nil
}
