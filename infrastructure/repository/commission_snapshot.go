package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/kleandaily/klean-daily-api/infrastructure/database/postgres"
	"github.com/kleandaily/klean-daily-api/internal/domain"
	"github.com/pkg/errors"
)

const (
	commissionSnapshotsTable = "commission_snapshots cs"
)

type CommissionSnapshotRepository interface {
	ListByPeriod(ctx context.Context, period string) ([]domain.CommissionSnapshot, error)
	ReplacePeriod(ctx context.Context, period string, snapshots []*domain.CommissionSnapshot) error
}

type commissionSnapshotRepository struct {
	conn postgres.Conn
}

func NewCommissionSnapshotRepository(conn postgres.Conn) CommissionSnapshotRepository {
	return &commissionSnapshotRepository{
		conn: conn,
	}
}

func (r *commissionSnapshotRepository) ListByPeriod(ctx context.Context, period string) ([]domain.CommissionSnapshot, error) {
	query, args, err := squirrel.
		Select(
			"cs.id",
			"cs.seller_id",
			"cs.period",
			"cs.earned_period",
			"cs.withheld_period",
			"cs.earned_all_time",
			"cs.withheld_all_time",
			"cs.position",
			"cs.position_change",
			"cs.previous_position",
			"cs.created_at",
			"cs.updated_at",
		).
		From(commissionSnapshotsTable).
		Where(squirrel.Eq{"cs.period": period}).
		OrderBy("cs.position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryError(err, "erro ao executar a query de snapshots")
	}
	defer rows.Close()

	snapshots := make([]domain.CommissionSnapshot, 0)
	for rows.Next() {
		var item domain.CommissionSnapshot
		err := rows.Scan(
			&item.ID,
			&item.SellerID,
			&item.Period,
			&item.EarnedPeriod,
			&item.WithheldPeriod,
			&item.EarnedAllTime,
			&item.WithheldAllTime,
			&item.Position,
			&item.PositionChange,
			&item.PreviousPosition,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear snapshot de comissão")
		}
		snapshots = append(snapshots, item)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return snapshots, nil
}

// ReplacePeriod troca atomicamente todos os snapshots de um período.
// Vendedores que deixaram de ter vendas saem do ranking.
func (r *commissionSnapshotRepository) ReplacePeriod(ctx context.Context, period string, snapshots []*domain.CommissionSnapshot) error {
	deleteQuery, deleteArgs, err := squirrel.
		Delete("commission_snapshots").
		Where(squirrel.Eq{"period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir query de remoção")
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return wrapQueryError(err, "erro ao remover snapshots do período")
		}

		if len(snapshots) == 0 {
			return nil
		}

		insertQuery, insertArgs, err := buildSnapshotInsert(snapshots, time.Now())
		if err != nil {
			return errors.Wrap(err, "erro ao construir query de inserção")
		}

		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return wrapQueryError(err, "erro ao executar query de inserção")
		}

		return nil
	})
}

func buildSnapshotInsert(snapshots []*domain.CommissionSnapshot, now time.Time) (string, []any, error) {
	query := squirrel.StatementBuilder.
		Insert("commission_snapshots").
		Columns(
			"id",
			"seller_id",
			"period",
			"earned_period",
			"withheld_period",
			"earned_all_time",
			"withheld_all_time",
			"position",
			"position_change",
			"previous_position",
			"created_at",
			"updated_at",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, snapshot := range snapshots {
		createdAt := snapshot.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}

		query = query.Values(
			snapshot.ID,
			snapshot.SellerID,
			snapshot.Period,
			snapshot.EarnedPeriod,
			snapshot.WithheldPeriod,
			snapshot.EarnedAllTime,
			snapshot.WithheldAllTime,
			snapshot.Position,
			snapshot.PositionChange,
			snapshot.PreviousPosition,
			createdAt,
			now,
		)
	}

	return query.ToSql()
}
