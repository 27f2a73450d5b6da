package commissioning

import (
	"errors"
	"fmt"
)

var (
	// Erros de validação
	ErrSellerIDRequired = errors.New("seller ID is required")
	ErrVetIDRequired    = errors.New("vet ID is required")
	ErrInvalidWindow    = errors.New("invalid period window")
	ErrInvalidPeriod    = errors.New("invalid period, expected mm-yyyy")

	// Erros de banco de dados
	ErrFetchSales       = errors.New("error fetching sales from database")
	ErrFetchSettlements = errors.New("error fetching settlement events from database")
	ErrFetchSnapshots   = errors.New("error fetching commission snapshots from database")
)

// CommissionError é um erro com contexto adicional para a apuração de comissões
type CommissionError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *CommissionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CommissionError) Unwrap() error {
	return e.Err
}

func NewCommissionError(err error, code string, details string) *CommissionError {
	return &CommissionError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// IsValidationError verifica se o erro veio de parâmetros inválidos
func IsValidationError(err error) bool {
	return errors.Is(err, ErrSellerIDRequired) ||
		errors.Is(err, ErrVetIDRequired) ||
		errors.Is(err, ErrInvalidWindow) ||
		errors.Is(err, ErrInvalidPeriod)
}

// APICode retorna o código usado na resposta HTTP
func (e *CommissionError) APICode() string {
	return e.Code
}
