package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Perfis de acesso
const (
	RoleMaster     = 1
	RoleInfluencer = 2
)

type Claims struct {
	UserID   int64  `json:"userId"`
	UserName string `json:"userName,omitempty"`
	Role     int    `json:"role"`
	jwt.RegisteredClaims
}

// IsMaster indica acesso irrestrito ao programa
func (c *Claims) IsMaster() bool {
	return c != nil && c.Role == RoleMaster
}
