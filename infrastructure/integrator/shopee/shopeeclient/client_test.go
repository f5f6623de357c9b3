package shopeeclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	shopeedomain "github.com/kiendt120702/shopee-ads-sync/infrastructure/integrator/shopee/domain"
	"github.com/kiendt120702/shopee-ads-sync/internal/config"
	"github.com/kiendt120702/shopee-ads-sync/internal/domain"
)

const testAPIPath = "/api/v2/ads/get_total_balance"

// memoryCredentialStore guarda uma única credencial em memória, simulando o
// repositório para que o refresher possa persistir e o dispatcher reler
type memoryCredentialStore struct {
	cred     *domain.Credential
	getCalls int
	saves    int
}

func (s *memoryCredentialStore) GetByShopID(_ context.Context, shopID int64) (*domain.Credential, error) {
	s.getCalls++
	if s.cred == nil || s.cred.ShopID != shopID {
		return nil, nil
	}
	copied := *s.cred
	return &copied, nil
}

func (s *memoryCredentialStore) Save(_ context.Context, cred *domain.Credential) error {
	s.saves++
	copied := *cred
	s.cred = &copied
	return nil
}

func newClientTestConfig(baseURL string) *config.Config {
	return &config.Config{
		Shopee: config.Shopee{
			BaseURL:                  baseURL,
			PartnerID:                123456,
			PartnerKey:               "chave-global",
			RequestTimeoutSeconds:    5,
			TokenExpiryBufferMinutes: 10,
		},
	}
}

func newTestCredential() *domain.Credential {
	return &domain.Credential{
		ShopID:       400123,
		PartnerID:    123456,
		PartnerKey:   "chave-secreta",
		AccessToken:  "token-atual",
		RefreshToken: "refresh-atual",
		ExpiresAt:    time.Now().Add(4 * time.Hour),
	}
}

func writeJSON(t *testing.T, w http.ResponseWriter, payload any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(payload))
}

func TestShopeeClient_Get_Sucesso(t *testing.T) {
	store := &memoryCredentialStore{cred: newTestCredential()}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, testAPIPath, r.URL.Path)

		query := r.URL.Query()
		assert.Equal(t, "123456", query.Get("partner_id"))
		assert.Equal(t, "400123", query.Get("shop_id"))
		assert.Equal(t, "token-atual", query.Get("access_token"))
		assert.Equal(t, "10", query.Get("limit"))

		// A assinatura deve ser reproduzível a partir dos próprios parâmetros
		timestamp, err := strconv.ParseInt(query.Get("timestamp"), 10, 64)
		require.NoError(t, err)
		expectedSign := Sign(123456, testAPIPath, timestamp, "token-atual", 400123, "chave-secreta")
		assert.Equal(t, expectedSign, query.Get("sign"))

		writeJSON(t, w, map[string]any{
			"error":      "",
			"request_id": "req-1",
			"response":   map[string]any{"total_balance": 250.5},
		})
	}))
	defer srv.Close()

	cfg := newClientTestConfig(srv.URL)
	client := NewClient(cfg, store, NewRefresher(cfg, store))

	var out struct {
		Response struct {
			TotalBalance float64 `json:"total_balance"`
		} `json:"response"`
	}
	params := url.Values{"limit": {"10"}}

	err := client.Get(context.Background(), 400123, testAPIPath, params, &out)

	require.NoError(t, err)
	assert.Equal(t, 250.5, out.Response.TotalBalance)
}

func TestShopeeClient_Get_RenovaTokenERetentaUmaVez(t *testing.T) {
	store := &memoryCredentialStore{cred: newTestCredential()}

	var apiCalls, tokenCalls atomic.Int32
	var retryToken string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case PathAccessTokenGet:
			tokenCalls.Add(1)
			writeJSON(t, w, map[string]any{
				"error":         "",
				"access_token":  "token-novo",
				"refresh_token": "refresh-novo",
				"expire_in":     14400,
			})
		case testAPIPath:
			call := apiCalls.Add(1)
			if call == 1 {
				writeJSON(t, w, map[string]any{
					"error":      shopeedomain.ErrorCodeInvalidToken,
					"message":    "Invalid access_token",
					"request_id": "req-auth-1",
				})
				return
			}
			retryToken = r.URL.Query().Get("access_token")
			writeJSON(t, w, map[string]any{"error": "", "request_id": "req-2"})
		default:
			t.Errorf("rota inesperada: %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	cfg := newClientTestConfig(srv.URL)
	client := NewClient(cfg, store, NewRefresher(cfg, store))

	err := client.Get(context.Background(), 400123, testAPIPath, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, int32(2), apiCalls.Load())
	assert.Equal(t, int32(1), tokenCalls.Load())
	assert.Equal(t, "token-novo", retryToken, "a retentativa deve usar o token renovado")
	assert.Equal(t, "token-novo", store.cred.AccessToken)
	assert.Equal(t, "refresh-novo", store.cred.RefreshToken)
	assert.GreaterOrEqual(t, store.saves, 1)
}

func TestShopeeClient_Get_SegundaFalhaDeAutenticacaoETerminal(t *testing.T) {
	store := &memoryCredentialStore{cred: newTestCredential()}

	var apiCalls, tokenCalls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case PathAccessTokenGet:
			tokenCalls.Add(1)
			writeJSON(t, w, map[string]any{
				"error":         "",
				"access_token":  "token-novo",
				"refresh_token": "refresh-novo",
				"expire_in":     14400,
			})
		case testAPIPath:
			apiCalls.Add(1)
			writeJSON(t, w, map[string]any{
				"error":      shopeedomain.ErrorCodeInvalidToken,
				"message":    "Invalid access_token",
				"request_id": fmt.Sprintf("req-auth-%d", apiCalls.Load()),
			})
		default:
			t.Errorf("rota inesperada: %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	cfg := newClientTestConfig(srv.URL)
	client := NewClient(cfg, store, NewRefresher(cfg, store))

	err := client.Get(context.Background(), 400123, testAPIPath, nil, nil)

	require.Error(t, err)
	var authErr *shopeedomain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, int64(400123), authErr.ShopID)
	assert.Equal(t, shopeedomain.ErrorCodeInvalidToken, authErr.Code)

	// Exatamente uma renovação e duas tentativas; não há terceira
	assert.Equal(t, int32(2), apiCalls.Load())
	assert.Equal(t, int32(1), tokenCalls.Load())
}

func TestShopeeClient_Get_ErroDeParametroNaoRetenta(t *testing.T) {
	store := &memoryCredentialStore{cred: newTestCredential()}

	var apiCalls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiCalls.Add(1)
		writeJSON(t, w, map[string]any{
			"error":      shopeedomain.ErrorCodeParam,
			"message":    "time_from is invalid",
			"request_id": "req-param-1",
		})
	}))
	defer srv.Close()

	cfg := newClientTestConfig(srv.URL)
	client := NewClient(cfg, store, NewRefresher(cfg, store))

	err := client.Get(context.Background(), 400123, testAPIPath, nil, nil)

	require.Error(t, err)
	var validationErr *shopeedomain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, int32(1), apiCalls.Load())
}

func TestShopeeClient_Get_LojaSemCredencial(t *testing.T) {
	store := &memoryCredentialStore{}

	cfg := newClientTestConfig("http://localhost:0")
	client := NewClient(cfg, store, NewRefresher(cfg, store))

	err := client.Get(context.Background(), 999, testAPIPath, nil, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sem credencial")
}

func TestShopeeClient_Post_EnviaCorpoJSON(t *testing.T) {
	store := &memoryCredentialStore{cred: newTestCredential()}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(777), body["campaign_id"])
		assert.Equal(t, 150.0, body["budget"])

		writeJSON(t, w, map[string]any{"error": "", "request_id": "req-post-1"})
	}))
	defer srv.Close()

	cfg := newClientTestConfig(srv.URL)
	client := NewClient(cfg, store, NewRefresher(cfg, store))

	err := client.Post(context.Background(), 400123, "/api/v2/ads/edit_manual_product_ads", map[string]any{
		"campaign_id": 777,
		"budget":      150.0,
	}, nil)

	require.NoError(t, err)
}

func TestShopeeClient_Get_ErroDeRedeNaoViraAuthError(t *testing.T) {
	store := &memoryCredentialStore{cred: newTestCredential()}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // servidor já encerrado força falha de conexão

	cfg := newClientTestConfig(srv.URL)
	client := NewClient(cfg, store, NewRefresher(cfg, store))

	err := client.Get(context.Background(), 400123, testAPIPath, nil, nil)

	require.Error(t, err)
	var authErr *shopeedomain.AuthError
	assert.False(t, errors.As(err, &authErr))
}
