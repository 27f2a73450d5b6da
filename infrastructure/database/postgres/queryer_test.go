package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	unique := fmt.Errorf("erro ao inserir: %w", &pq.Error{Code: "23505"})
	undefined := &pq.Error{Code: "42P01"}

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsUniqueViolation(undefined))
	assert.True(t, IsUndefinedTable(undefined))
	assert.False(t, IsUndefinedTable(errors.New("qualquer")))
	assert.False(t, IsUniqueViolation(nil))
}
