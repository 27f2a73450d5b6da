package repository

import (
	"github.com/kleandaily/klean-daily-api/infrastructure/database/postgres"
	"github.com/pkg/errors"
)

var (
	ErrSchemaNotMigrated = errors.New("tabela inexistente, execute infrastructure/migration/script")
	ErrSnapshotConflict  = errors.New("snapshot duplicado para vendedor e período")
)

// wrapQueryError identifica os códigos do Postgres tratados pelos repositórios
func wrapQueryError(err error, message string) error {
	switch {
	case postgres.IsUndefinedTable(err):
		return errors.Wrapf(ErrSchemaNotMigrated, "%s: %v", message, err)
	case postgres.IsUniqueViolation(err):
		return errors.Wrapf(ErrSnapshotConflict, "%s: %v", message, err)
	default:
		return errors.Wrap(err, message)
	}
}
