package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de autenticação
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de roteamento
	ErrNotFound         = "RT_001" // Rota inexistente
	ErrMethodNotAllowed = "RT_002" // Método não suportado na rota

	// Erros de vendas
	ErrSaleValidation     = "SALE_001" // Dados da venda inválidos
	ErrSaleNotFound       = "SALE_002" // Venda ou cupom não encontrado
	ErrSaleDuplicate      = "SALE_003" // Número de pedido já cadastrado
	ErrImportHasConflicts = "SALE_004" // Importação com linhas inválidas

	// Erros de influenciadoras
	ErrAffiliateNotFound   = "AFF_001" // Influenciadora não encontrada
	ErrAffiliateConflict   = "AFF_002" // Cupom, instagram ou usuário já vinculado
	ErrAffiliateValidation = "AFF_003" // Dados da influenciadora inválidos

	// Erros do aceite do termo
	ErrAcceptanceValidation = "TERM_001" // Código ou cadastro inválido para o aceite
	ErrAcceptanceCode       = "TERM_002" // Código inválido, usado ou expirado

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrNotFound:              http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrSaleValidation:        http.StatusBadRequest,
	ErrSaleNotFound:          http.StatusNotFound,
	ErrSaleDuplicate:         http.StatusConflict,
	ErrImportHasConflicts:    http.StatusConflict,
	ErrAffiliateNotFound:     http.StatusNotFound,
	ErrAffiliateConflict:     http.StatusConflict,
	ErrAffiliateValidation:   http.StatusBadRequest,
	ErrAcceptanceValidation:  http.StatusBadRequest,
	ErrAcceptanceCode:        http.StatusBadRequest,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
}

// StatusFor retorna o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status := StatusFor(code)

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
