package domain

import "time"

// Credential guarda as credenciais de assinatura e os tokens de uma loja.
// Invariante: um access token não nulo sempre acompanha um refresh token.
type Credential struct {
	ShopID       int64     `json:"shop_id"`
	PartnerID    int64     `json:"partner_id"`
	PartnerKey   string    `json:"-"`
	AccessToken  string    `json:"-"`
	RefreshToken string    `json:"-"`
	ExpiresAt    time.Time `json:"expires_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasTokens indica se a loja já completou o fluxo de autorização
func (c *Credential) HasTokens() bool {
	return c.AccessToken != "" && c.RefreshToken != ""
}

// ExpiresWithin indica se o access token expira dentro da janela informada
func (c *Credential) ExpiresWithin(buffer time.Duration) bool {
	if c.ExpiresAt.IsZero() {
		return true
	}
	return time.Until(c.ExpiresAt) < buffer
}
