package shopeeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	shopeedomain "github.com/kiendt120702/shopee-ads-sync/infrastructure/integrator/shopee/domain"
)

// PathAccessTokenGet é o endpoint de troca de refresh token por access token
const PathAccessTokenGet = "/api/v2/auth/access_token/get"

type accessTokenRequest struct {
	PartnerID    int64  `json:"partner_id"`
	ShopID       int64  `json:"shop_id"`
	RefreshToken string `json:"refresh_token"`
}

// FetchAccessToken troca o refresh token por um novo par de tokens.
// Chamada pública: assinada apenas com partner_id + path + timestamp.
// Com proxy de saída configurado, a chamada passa pelo proxy como as demais.
func FetchAccessToken(
	ctx context.Context,
	httpClient *http.Client,
	baseURL string,
	proxyBaseURL string,
	partnerID int64,
	partnerKey string,
	shopID int64,
	refreshToken string,
) (*shopeedomain.AccessTokenResponse, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("refresh token não pode ser vazio")
	}

	timestamp := time.Now().Unix()
	sign := SignPublic(partnerID, PathAccessTokenGet, timestamp, partnerKey)

	params := url.Values{}
	params.Set("partner_id", fmt.Sprintf("%d", partnerID))
	params.Set("timestamp", fmt.Sprintf("%d", timestamp))
	params.Set("sign", sign)

	requestURL := fmt.Sprintf("%s%s?%s", baseURL, PathAccessTokenGet, params.Encode())
	if proxyBaseURL != "" {
		proxyQuery := url.Values{}
		proxyQuery.Set("url", requestURL)
		requestURL = fmt.Sprintf("%s/forward?%s", proxyBaseURL, proxyQuery.Encode())
	}

	payload, err := json.Marshal(accessTokenRequest{
		PartnerID:    partnerID,
		ShopID:       shopID,
		RefreshToken: refreshToken,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar requisição de token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("erro ao montar requisição de token: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao chamar a API de token da Shopee: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta da API de token: %w", err)
	}

	var tokenResp shopeedomain.AccessTokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta de token: %w", err)
	}

	if !tokenResp.IsOK() {
		return nil, &shopeedomain.AuthError{
			ShopID:    shopID,
			Code:      tokenResp.Error,
			Message:   tokenResp.Message,
			RequestID: tokenResp.RequestID,
		}
	}

	if tokenResp.AccessToken == "" || tokenResp.RefreshToken == "" {
		return nil, fmt.Errorf("a API de token retornou tokens vazios (request_id: %s)", tokenResp.RequestID)
	}

	return &tokenResp, nil
}

// CalculateTokenExpiration calcula o instante de expiração a partir da
// validade em segundos, descontando uma margem para renovar antes do limite
func CalculateTokenExpiration(expireIn int64, buffer time.Duration) time.Time {
	safeExpireIn := time.Duration(expireIn)*time.Second - buffer
	if safeExpireIn <= 0 {
		safeExpireIn = time.Duration(expireIn) * time.Second / 2
	}

	return time.Now().Add(safeExpireIn)
}
