package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Perfis emitidos pelo serviço de autenticação
const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RoleSeller     = "asesor"
	RoleVet        = "veterinario"
	RoleCredit     = "cartera"
	RoleCallCenter = "callcenter"
)

// Claims são as claims do token emitido pelo serviço de autenticação
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"user_role"`
	jwt.RegisteredClaims
}

func (c *Claims) UserID() string {
	return c.Subject
}

func (c *Claims) IsManager() bool {
	return c.Role == RoleAdmin || c.Role == RoleSupervisor
}
