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

	"github.com/sirupsen/logrus"

	shopeedomain "github.com/kiendt120702/shopee-ads-sync/infrastructure/integrator/shopee/domain"
	"github.com/kiendt120702/shopee-ads-sync/internal/config"
	"github.com/kiendt120702/shopee-ads-sync/internal/domain"
)

// Client é o dispatcher de requisições assinadas para a API da Shopee
type Client interface {
	Get(ctx context.Context, shopID int64, path string, params url.Values, out any) error
	Post(ctx context.Context, shopID int64, path string, body any, out any) error
}

// ShopeeClient assina cada requisição com a credencial da loja e faz exatamente
// uma retentativa após renovar o token quando a API sinaliza falha de
// autenticação. A segunda falha é terminal para a chamada.
type ShopeeClient struct {
	cfg        *config.Config
	creds      CredentialStore
	refresher  *Refresher
	httpClient *http.Client
}

// NewClient cria o dispatcher de requisições assinadas
func NewClient(cfg *config.Config, creds CredentialStore, refresher *Refresher) Client {
	return &ShopeeClient{
		cfg:       cfg,
		creds:     creds,
		refresher: refresher,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Shopee.RequestTimeoutSeconds) * time.Second,
		},
	}
}

func (c *ShopeeClient) Get(ctx context.Context, shopID int64, path string, params url.Values, out any) error {
	return c.call(ctx, shopID, http.MethodGet, path, params, nil, out)
}

func (c *ShopeeClient) Post(ctx context.Context, shopID int64, path string, body any, out any) error {
	return c.call(ctx, shopID, http.MethodPost, path, nil, body, out)
}

func (c *ShopeeClient) call(ctx context.Context, shopID int64, method, path string, params url.Values, body any, out any) error {
	cred, err := c.creds.GetByShopID(ctx, shopID)
	if err != nil {
		return fmt.Errorf("erro ao buscar credencial da loja %d: %w", shopID, err)
	}
	if cred == nil {
		return fmt.Errorf("loja %d sem credencial cadastrada", shopID)
	}

	// Renovação proativa quando o token está na margem de expiração
	cred, err = c.refresher.EnsureValid(ctx, cred)
	if err != nil {
		return err
	}

	env, err := c.do(ctx, cred, method, path, params, body, out)
	if err != nil {
		return err
	}

	if env.IsAuthError() {
		logrus.WithFields(logrus.Fields{
			"shop_id":    shopID,
			"path":       path,
			"error_code": env.Error,
			"request_id": env.RequestID,
		}).Warn("Falha de autenticação na API da Shopee, renovando token e retentando uma vez")

		if _, err := c.refresher.Refresh(ctx, shopID); err != nil {
			return err
		}

		// Reler a credencial mais recente e reemitir a mesma requisição
		// lógica com nova assinatura e novo timestamp
		cred, err = c.creds.GetByShopID(ctx, shopID)
		if err != nil {
			return fmt.Errorf("erro ao reler credencial da loja %d: %w", shopID, err)
		}

		env, err = c.do(ctx, cred, method, path, params, body, out)
		if err != nil {
			return err
		}

		if env.IsAuthError() {
			// Segunda falha é terminal; não há terceira tentativa
			return &shopeedomain.AuthError{
				ShopID:    shopID,
				Code:      env.Error,
				Message:   env.Message,
				RequestID: env.RequestID,
			}
		}
	}

	switch {
	case env.IsOK():
		return nil
	case env.IsParamError():
		return &shopeedomain.ValidationError{Message: env.Message, RequestID: env.RequestID}
	case env.IsRateLimit():
		return &shopeedomain.RateLimitError{Message: env.Message, RequestID: env.RequestID}
	default:
		return &shopeedomain.APIError{Code: env.Error, Message: env.Message, RequestID: env.RequestID}
	}
}

// do executa uma única requisição assinada e decodifica o envelope de resposta
func (c *ShopeeClient) do(ctx context.Context, cred *domain.Credential, method, path string, params url.Values, body any, out any) (*shopeedomain.BaseResponse, error) {
	partnerID, partnerKey := c.signingCredential(cred)

	timestamp := time.Now().Unix()
	sign := Sign(partnerID, path, timestamp, cred.AccessToken, cred.ShopID, partnerKey)

	query := url.Values{}
	for key, values := range params {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	query.Set("partner_id", fmt.Sprintf("%d", partnerID))
	query.Set("timestamp", fmt.Sprintf("%d", timestamp))
	query.Set("access_token", cred.AccessToken)
	query.Set("shop_id", fmt.Sprintf("%d", cred.ShopID))
	query.Set("sign", sign)

	targetURL := fmt.Sprintf("%s%s?%s", c.cfg.Shopee.BaseURL, path, query.Encode())
	requestURL := targetURL

	// Com proxy de saída configurado, a URL alvo vai embutida como parâmetro
	if c.cfg.Shopee.ProxyBaseURL != "" {
		proxyQuery := url.Values{}
		proxyQuery.Set("url", targetURL)
		requestURL = fmt.Sprintf("%s/forward?%s", c.cfg.Shopee.ProxyBaseURL, proxyQuery.Encode())
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("erro ao serializar corpo da requisição: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar requisição: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao chamar a API da Shopee (%s): %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta da API da Shopee (%s): %w", path, err)
	}

	var env shopeedomain.BaseResponse
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("erro ao decodificar envelope da resposta (%s): %w", path, err)
	}

	if env.IsOK() && out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return nil, fmt.Errorf("erro ao decodificar resposta (%s): %w", path, err)
		}
	}

	return &env, nil
}

// signingCredential resolve a credencial de assinatura: a da loja quando
// cadastrada, senão a credencial global de fallback da configuração
func (c *ShopeeClient) signingCredential(cred *domain.Credential) (int64, string) {
	if cred.PartnerID != 0 && cred.PartnerKey != "" {
		return cred.PartnerID, cred.PartnerKey
	}
	return c.cfg.Shopee.PartnerID, c.cfg.Shopee.PartnerKey
}
