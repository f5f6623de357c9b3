package shopeeclient

import (
	"context"
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
)

func TestRefresher_EnsureValid_TokenLongeDeExpirarNaoRenova(t *testing.T) {
	var tokenCalls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenCalls.Add(1)
	}))
	defer srv.Close()

	store := &memoryCredentialStore{cred: newTestCredential()}
	refresher := NewRefresher(newClientTestConfig(srv.URL), store)

	cred, err := refresher.EnsureValid(context.Background(), store.cred)

	require.NoError(t, err)
	assert.Equal(t, "token-atual", cred.AccessToken)
	assert.Equal(t, int32(0), tokenCalls.Load())
}

func TestRefresher_EnsureValid_RenovaProativamenteDentroDaMargem(t *testing.T) {
	var tokenCalls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, PathAccessTokenGet, r.URL.Path)
		tokenCalls.Add(1)
		writeJSON(t, w, map[string]any{
			"error":         "",
			"access_token":  "token-novo",
			"refresh_token": "refresh-novo",
			"expire_in":     14400,
		})
	}))
	defer srv.Close()

	expiring := newTestCredential()
	expiring.ExpiresAt = time.Now().Add(2 * time.Minute) // dentro da margem de 10 minutos
	store := &memoryCredentialStore{cred: expiring}
	refresher := NewRefresher(newClientTestConfig(srv.URL), store)

	cred, err := refresher.EnsureValid(context.Background(), expiring)

	require.NoError(t, err)
	assert.Equal(t, int32(1), tokenCalls.Load())
	assert.Equal(t, "token-novo", cred.AccessToken)
	assert.Equal(t, "token-novo", store.cred.AccessToken, "a credencial renovada deve estar persistida")
	assert.True(t, cred.ExpiresAt.After(time.Now().Add(time.Hour)))
}

func TestRefresher_EnsureValid_CredencialSemExpiracaoRenovaImediatamente(t *testing.T) {
	var tokenCalls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenCalls.Add(1)
		writeJSON(t, w, map[string]any{
			"error":         "",
			"access_token":  "token-novo",
			"refresh_token": "refresh-novo",
			"expire_in":     14400,
		})
	}))
	defer srv.Close()

	// Loja cadastrada por seed: expires_at nulo no banco vira zero value
	semExpiracao := newTestCredential()
	semExpiracao.ExpiresAt = time.Time{}
	store := &memoryCredentialStore{cred: semExpiracao}
	refresher := NewRefresher(newClientTestConfig(srv.URL), store)

	cred, err := refresher.EnsureValid(context.Background(), semExpiracao)

	require.NoError(t, err)
	assert.Equal(t, int32(1), tokenCalls.Load())
	assert.Equal(t, "token-novo", cred.AccessToken)
	assert.False(t, cred.ExpiresAt.IsZero())
}

func TestRefresher_EnsureValid_LojaSemTokens(t *testing.T) {
	store := &memoryCredentialStore{}
	refresher := NewRefresher(newClientTestConfig("http://localhost:0"), store)

	cred := newTestCredential()
	cred.AccessToken = ""
	cred.RefreshToken = ""

	_, err := refresher.EnsureValid(context.Background(), cred)

	require.Error(t, err)
	var authErr *shopeedomain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, shopeedomain.ErrorCodeAuth, authErr.Code)
}

func TestRefresher_Refresh_LojaSemParceiroProprioAssinaComCredencialGlobal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, PathAccessTokenGet, r.URL.Path)
		require.Equal(t, "123456", r.URL.Query().Get("partner_id"))

		timestamp, err := strconv.ParseInt(r.URL.Query().Get("timestamp"), 10, 64)
		require.NoError(t, err)
		expected := SignPublic(123456, PathAccessTokenGet, timestamp, "chave-global")
		require.Equal(t, expected, r.URL.Query().Get("sign"))

		writeJSON(t, w, map[string]any{
			"error":         "",
			"access_token":  "token-novo",
			"refresh_token": "refresh-novo",
			"expire_in":     14400,
		})
	}))
	defer srv.Close()

	semParceiro := newTestCredential()
	semParceiro.PartnerID = 0
	semParceiro.PartnerKey = ""
	store := &memoryCredentialStore{cred: semParceiro}
	refresher := NewRefresher(newClientTestConfig(srv.URL), store)

	cred, err := refresher.Refresh(context.Background(), 400123)

	require.NoError(t, err)
	assert.Equal(t, "token-novo", cred.AccessToken)
	assert.Equal(t, "refresh-novo", store.cred.RefreshToken)
}

func TestRefresher_Refresh_PassaPeloProxyDeSaida(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/forward", r.URL.Path)

		target, err := url.Parse(r.URL.Query().Get("url"))
		require.NoError(t, err)
		require.Equal(t, PathAccessTokenGet, target.Path)
		require.Equal(t, "123456", target.Query().Get("partner_id"))

		writeJSON(t, w, map[string]any{
			"error":         "",
			"access_token":  "token-novo",
			"refresh_token": "refresh-novo",
			"expire_in":     14400,
		})
	}))
	defer srv.Close()

	cfg := newClientTestConfig("https://partner.shopeemobile.com")
	cfg.Shopee.ProxyBaseURL = srv.URL

	store := &memoryCredentialStore{cred: newTestCredential()}
	refresher := NewRefresher(cfg, store)

	cred, err := refresher.Refresh(context.Background(), 400123)

	require.NoError(t, err)
	assert.Equal(t, "token-novo", cred.AccessToken)
}

func TestRefresher_Refresh_FalhaDaAPIDeTokenSobeComoAuthError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{
			"error":      shopeedomain.ErrorCodeAuth,
			"message":    "refresh token expired",
			"request_id": "req-refresh-1",
		})
	}))
	defer srv.Close()

	store := &memoryCredentialStore{cred: newTestCredential()}
	refresher := NewRefresher(newClientTestConfig(srv.URL), store)

	_, err := refresher.Refresh(context.Background(), 400123)

	require.Error(t, err)
	var authErr *shopeedomain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, shopeedomain.ErrorCodeAuth, authErr.Code)
	assert.Equal(t, "token-atual", store.cred.AccessToken, "credencial não deve ser alterada em caso de falha")
}

func TestCalculateTokenExpiration(t *testing.T) {
	now := time.Now()

	// Margem descontada da validade informada
	exp := CalculateTokenExpiration(14400, 10*time.Minute)
	assert.WithinDuration(t, now.Add(4*time.Hour-10*time.Minute), exp, 2*time.Second)

	// Validade menor que a margem cai para metade da validade
	exp = CalculateTokenExpiration(300, 10*time.Minute)
	assert.WithinDuration(t, now.Add(150*time.Second), exp, 2*time.Second)
}
