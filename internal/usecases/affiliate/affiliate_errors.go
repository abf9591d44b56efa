package affiliate

import (
	"errors"
	"fmt"

	"github.com/vfg2006/influencer-sales-api/pkg/apiErrors"
)

// Erros específicos do cadastro de influenciadoras
var (
	ErrInvalidID          = errors.New("id inválido")
	ErrAffiliateNotFound  = errors.New("influenciadora não encontrada")
	ErrAffiliateConflict  = errors.New("influenciadora já cadastrada")
	ErrInvalidPayload     = errors.New("dados da influenciadora inválidos")
	ErrAccessDenied       = errors.New("acesso negado")
	ErrDatabaseOperation  = errors.New("erro ao realizar operação no banco de dados")
	ErrMissingCredentials = errors.New("usuário não autenticado")
)

// AffiliateError é um erro com contexto adicional para influenciadoras
type AffiliateError struct {
	Err         error    // Erro base
	Code        string   // Código de erro para API
	AffiliateID int64    // ID da influenciadora (quando aplicável)
	Details     string   // Mensagem para o cliente
	Fields      []string // Campos obrigatórios ausentes
}

// Error implementa a interface error
func (e *AffiliateError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AffiliateError) Unwrap() error {
	return e.Err
}

// NewAffiliateError cria um novo AffiliateError
func NewAffiliateError(err error, code string, details string) *AffiliateError {
	return &AffiliateError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewAffiliateErrorWithID cria um novo AffiliateError com o ID da influenciadora
func NewAffiliateErrorWithID(err error, code string, affiliateID int64, details string) *AffiliateError {
	return &AffiliateError{
		Err:         err,
		Code:        code,
		AffiliateID: affiliateID,
		Details:     details,
	}
}

func newValidationError(details string) *AffiliateError {
	return NewAffiliateError(ErrInvalidPayload, apiErrors.ErrAffiliateValidation, details)
}

func newNotFoundError(affiliateID int64) *AffiliateError {
	return NewAffiliateErrorWithID(ErrAffiliateNotFound, apiErrors.ErrAffiliateNotFound, affiliateID, "Influenciadora nao encontrada.")
}

func newDatabaseError(details string) *AffiliateError {
	return NewAffiliateError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, details)
}
