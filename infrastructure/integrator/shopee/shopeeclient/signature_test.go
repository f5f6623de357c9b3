package shopeeclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSign_StringCanonica(t *testing.T) {
	// Vetor calculado externamente com HMAC-SHA256 sobre
	// partner_id + path + timestamp + access_token + shop_id
	sign := Sign(123456, "/api/v2/ads/get_total_balance", 1700000000, "token-abc", 400123, "chave-secreta")

	assert.Equal(t, "c6a3f0b5316fc3e5193d05030af1bbc2c834967267ce021349dae3b1cfa04a88", sign)
}

func TestSignPublic_StringCanonica(t *testing.T) {
	// Chamadas públicas não carregam access token nem shop id
	sign := SignPublic(123456, "/api/v2/auth/access_token/get", 1700000000, "chave-secreta")

	assert.Equal(t, "af24eba9e9c03b522e302b44b9c1db75dbd67b5ffc38ba0afab334daeb0bc915", sign)
}

func TestSign_ComponentesAlteramAssinatura(t *testing.T) {
	base := Sign(123456, "/api/v2/order/get_order_list", 1700000000, "token-abc", 400123, "chave-secreta")

	assert.NotEqual(t, base, Sign(123457, "/api/v2/order/get_order_list", 1700000000, "token-abc", 400123, "chave-secreta"))
	assert.NotEqual(t, base, Sign(123456, "/api/v2/order/get_order_detail", 1700000000, "token-abc", 400123, "chave-secreta"))
	assert.NotEqual(t, base, Sign(123456, "/api/v2/order/get_order_list", 1700000001, "token-abc", 400123, "chave-secreta"))
	assert.NotEqual(t, base, Sign(123456, "/api/v2/order/get_order_list", 1700000000, "token-xyz", 400123, "chave-secreta"))
	assert.NotEqual(t, base, Sign(123456, "/api/v2/order/get_order_list", 1700000000, "token-abc", 400124, "chave-secreta"))
	assert.NotEqual(t, base, Sign(123456, "/api/v2/order/get_order_list", 1700000000, "token-abc", 400123, "outra-chave"))
}
