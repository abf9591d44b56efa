package sales

import (
	"errors"
	"fmt"

	"github.com/vfg2006/influencer-sales-api/internal/domain"
	"github.com/vfg2006/influencer-sales-api/pkg/apiErrors"
)

// Tipos de falha das operações de venda
var (
	ErrValidation       = errors.New("dados da venda inválidos")
	ErrNotFound         = errors.New("registro não encontrado")
	ErrDuplicate        = errors.New("número de pedido já cadastrado")
	ErrConflictAnalysis = errors.New("importação possui linhas inválidas")
	ErrStorageFailure   = errors.New("erro ao acessar o armazenamento de vendas")
)

// SalesError carrega o tipo da falha, o código da API e a mensagem para o cliente.
// Analysis só é preenchido quando a confirmação de uma importação é recusada.
type SalesError struct {
	Err      error
	Code     string
	Details  string
	Analysis *domain.ImportAnalysis
}

// Error implementa a interface error
func (e *SalesError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *SalesError) Unwrap() error {
	return e.Err
}

// NewSalesError cria um novo SalesError
func NewSalesError(err error, code string, details string) *SalesError {
	return &SalesError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func newValidationError(details string) *SalesError {
	return NewSalesError(ErrValidation, apiErrors.ErrSaleValidation, details)
}

func newNotFoundError(details string) *SalesError {
	return NewSalesError(ErrNotFound, apiErrors.ErrSaleNotFound, details)
}

func newDuplicateError() *SalesError {
	return NewSalesError(ErrDuplicate, apiErrors.ErrSaleDuplicate, "Pedido ja cadastrado.")
}

func newConflictError(analysis *domain.ImportAnalysis) *SalesError {
	return &SalesError{
		Err:      ErrConflictAnalysis,
		Code:     apiErrors.ErrImportHasConflicts,
		Details:  "Existem linhas com erro. Corrija antes de confirmar a importacao.",
		Analysis: analysis,
	}
}

func newStorageError(details string) *SalesError {
	return NewSalesError(ErrStorageFailure, apiErrors.ErrDatabaseOperation, details)
}
