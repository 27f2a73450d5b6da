// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/kleandaily/klean-daily-api/infrastructure/database/postgres"
	"github.com/kleandaily/klean-daily-api/internal/commission"
	"github.com/kleandaily/klean-daily-api/internal/domain"
	"github.com/pkg/errors"
)

const (
	salesTable = "sales s"
)

var saleColumns = []string{
	"s.id",
	"s.seller_id",
	"s.vet_id",
	"s.document_id",
	"s.product_1", "s.quantity_1",
	"s.product_2", "s.quantity_2",
	"s.product_3", "s.quantity_3",
	"s.product_4", "s.quantity_4",
	"s.payment_method",
	"s.status",
	"s.created_at",
}

type SaleRepository interface {
	ListBySeller(ctx context.Context, sellerID string) ([]domain.SaleRecord, error)
	ListSellerIDs(ctx context.Context, before time.Time) ([]string, error)
}

type saleRepository struct {
	conn postgres.Conn
}

func NewSaleRepository(conn postgres.Conn) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// ListBySeller retorna todas as vendas do vendedor, de qualquer status, já classificadas
func (r *saleRepository) ListBySeller(ctx context.Context, sellerID string) ([]domain.SaleRecord, error) {
	query, args, err := squirrel.
		Select(saleColumns...).
		From(salesTable).
		Where(squirrel.Eq{"s.seller_id": sellerID}).
		OrderBy("s.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryError(err, "erro ao executar a query de vendas")
	}
	defer rows.Close()

	sales := make([]domain.SaleRecord, 0)
	for rows.Next() {
		var row saleRow
		if err := rows.Scan(row.targets()...); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear venda")
		}
		sales = append(sales, row.toDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return sales, nil
}

// ListSellerIDs retorna os vendedores com alguma venda registrada antes da data informada
func (r *saleRepository) ListSellerIDs(ctx context.Context, before time.Time) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT s.seller_id").
		From(salesTable).
		Where(squirrel.Lt{"s.created_at": before}).
		Where(squirrel.NotEq{"s.seller_id": ""}).
		OrderBy("s.seller_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryError(err, "erro ao executar a query de vendedores")
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear vendedor")
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return ids, nil
}

// saleRow espelha a tabela sales; os campos de texto livre são classificados em toDomain
type saleRow struct {
	ID            string
	SellerID      string
	VetID         sql.NullString
	DocumentID    sql.NullString
	Products      [domain.MaxProductLines]sql.NullString
	Quantities    [domain.MaxProductLines]sql.NullString
	PaymentMethod sql.NullString
	Status        sql.NullString
	CreatedAt     sql.NullTime
}

func (row *saleRow) targets() []any {
	targets := []any{&row.ID, &row.SellerID, &row.VetID, &row.DocumentID}
	for i := 0; i < domain.MaxProductLines; i++ {
		targets = append(targets, &row.Products[i], &row.Quantities[i])
	}
	return append(targets, &row.PaymentMethod, &row.Status, &row.CreatedAt)
}

func (row *saleRow) toDomain() domain.SaleRecord {
	sale := domain.SaleRecord{
		ID:            row.ID,
		SellerID:      row.SellerID,
		DocumentID:    row.DocumentID.String,
		Lines:         make([]domain.ProductLine, 0, domain.MaxProductLines),
		PaymentMethod: commission.ParsePaymentMethod(row.PaymentMethod.String),
		Status:        commission.ParseConfirmationStatus(row.Status.String),
	}

	if row.VetID.Valid && row.VetID.String != "" {
		vetID := row.VetID.String
		sale.VetID = &vetID
	}

	if row.CreatedAt.Valid {
		sale.CreatedAt = row.CreatedAt.Time
	}

	for i := 0; i < domain.MaxProductLines; i++ {
		line, ok := commission.ParseProductLine(row.Products[i].String, row.Quantities[i].String)
		if ok {
			sale.Lines = append(sale.Lines, line)
		}
	}

	return sale
}
