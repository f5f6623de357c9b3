package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as informações do token emitido pelo backend do painel
type Claims struct {
	UserID   int    `json:"user_id"`
	UserName string `json:"user_name"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// IsAdmin indica se o usuário pode disparar jobs manualmente
func (c *Claims) IsAdmin() bool {
	return c.Role == "admin"
}
