package accepting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/influencer-sales-api/pkg/apiErrors"
)

var (
	ErrMissingCredentials = errors.New("usuário não autenticado")
	ErrNotInfluencer      = errors.New("aceite restrito a influenciadoras")
	ErrMissingEmail       = errors.New("email da influenciadora não cadastrado")
	ErrInvalidCode        = errors.New("código de verificação inválido")
	ErrExpiredCode        = errors.New("código de verificação expirado")
	ErrDeliveryFailure    = errors.New("falha ao enviar o código")
	ErrDatabaseOperation  = errors.New("erro ao realizar operação no banco de dados")
)

// AcceptanceError é um erro com contexto adicional para o aceite do termo
type AcceptanceError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	UserID  int64  // Usuário que tentou o aceite
	Details string // Mensagem para o cliente
}

func (e *AcceptanceError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AcceptanceError) Unwrap() error {
	return e.Err
}

func NewAcceptanceError(err error, code string, userID int64, details string) *AcceptanceError {
	return &AcceptanceError{
		Err:     err,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}

func newDatabaseError(userID int64) *AcceptanceError {
	return NewAcceptanceError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, "Nao foi possivel registrar o aceite.")
}
