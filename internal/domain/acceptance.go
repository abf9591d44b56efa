package domain

import "time"

// Canal e situação gravados em cada aceite
const (
	AcceptanceChannelEmailCode = "token_email"
	AcceptanceStatusAccepted   = "aceito"
)

// VerificationCode é o código de 6 dígitos enviado por email para confirmar o aceite
type VerificationCode struct {
	ID        int64
	UserID    int64
	Code      string
	ExpiresAt time.Time
	Used      bool
}

// TermsAcceptance registra o aceite de uma versão do termo de parceria
type TermsAcceptance struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	TermsVersion string    `json:"versaoTermo"`
	TermsHash    string    `json:"hashTermo"`
	AcceptedAt   time.Time `json:"dataAceite"`
	IPAddress    string    `json:"ipUsuario,omitempty"`
	UserAgent    string    `json:"userAgent,omitempty"`
	Channel      string    `json:"canalAutenticacao"`
	Status       string    `json:"status"`
}

// AcceptanceOrigin identifica de onde veio a confirmação
type AcceptanceOrigin struct {
	IPAddress string
	UserAgent string
}

type AcceptanceRecord struct {
	AcceptedAt time.Time `json:"dataAceite"`
	TermsHash  string    `json:"hashTermo"`
}

// AcceptanceStatus informa se o usuário já aceitou a versão vigente do termo
type AcceptanceStatus struct {
	Accepted       bool              `json:"aceito"`
	CurrentVersion string            `json:"versaoAtual"`
	Role           string            `json:"role,omitempty"`
	Record         *AcceptanceRecord `json:"registro"`
}
