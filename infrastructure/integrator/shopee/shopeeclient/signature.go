package shopeeclient

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Sign calcula a assinatura de uma chamada autenticada por loja.
// String canônica: partner_id + path + timestamp + access_token + shop_id,
// assinada com HMAC-SHA256 usando a partner key, em hexadecimal.
func Sign(partnerID int64, path string, timestamp int64, accessToken string, shopID int64, partnerKey string) string {
	base := fmt.Sprintf("%d%s%d%s%d", partnerID, path, timestamp, accessToken, shopID)
	return signBase(base, partnerKey)
}

// SignPublic calcula a assinatura das chamadas públicas (fluxo de token),
// que não carregam access token nem shop id na string canônica.
func SignPublic(partnerID int64, path string, timestamp int64, partnerKey string) string {
	base := fmt.Sprintf("%d%s%d", partnerID, path, timestamp)
	return signBase(base, partnerKey)
}

func signBase(base, partnerKey string) string {
	mac := hmac.New(sha256.New, []byte(partnerKey))
	mac.Write([]byte(base))
	return hex.EncodeToString(mac.Sum(nil))
}
