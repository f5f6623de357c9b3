package shopeeclient

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	shopeedomain "github.com/kiendt120702/shopee-ads-sync/infrastructure/integrator/shopee/domain"
	"github.com/kiendt120702/shopee-ads-sync/internal/config"
	"github.com/kiendt120702/shopee-ads-sync/internal/domain"
)

// CredentialStore é a visão mínima do repositório de credenciais que o
// cliente precisa. A credencial é sempre relida do armazenamento antes de
// assinar uma nova tentativa; nada fica em cache no processo.
type CredentialStore interface {
	GetByShopID(ctx context.Context, shopID int64) (*domain.Credential, error)
	Save(ctx context.Context, cred *domain.Credential) error
}

// Refresher troca o refresh token por um novo access token e persiste o
// resultado. Nunca retenta por conta própria: o retry é responsabilidade do
// dispatcher, para evitar laços infinitos de renovação.
type Refresher struct {
	cfg        *config.Config
	store      CredentialStore
	httpClient *http.Client
	mu         sync.Mutex
}

// NewRefresher cria o gerenciador de renovação de credenciais
func NewRefresher(cfg *config.Config, store CredentialStore) *Refresher {
	return &Refresher{
		cfg:   cfg,
		store: store,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Shopee.RequestTimeoutSeconds) * time.Second,
		},
	}
}

// EnsureValid devolve uma credencial pronta para assinar uma chamada,
// renovando proativamente quando o access token está dentro da margem de
// expiração configurada.
func (r *Refresher) EnsureValid(ctx context.Context, cred *domain.Credential) (*domain.Credential, error) {
	if !cred.HasTokens() {
		return nil, &shopeedomain.AuthError{
			ShopID:  cred.ShopID,
			Code:    shopeedomain.ErrorCodeAuth,
			Message: "loja sem tokens de acesso; é necessário reautorizar pelo painel",
		}
	}

	buffer := time.Duration(r.cfg.Shopee.TokenExpiryBufferMinutes) * time.Minute
	if cred.ExpiresWithin(buffer) {
		logrus.WithFields(logrus.Fields{
			"shop_id":    cred.ShopID,
			"expires_at": cred.ExpiresAt.Format(time.RFC3339),
		}).Info("Access token próximo de expirar, renovando proativamente")

		return r.Refresh(ctx, cred.ShopID)
	}

	return cred, nil
}

// Refresh executa uma única troca de refresh token por access token e
// persiste a nova credencial antes de devolvê-la. Em caso de falha o erro
// sobe inalterado para o chamador.
func (r *Refresher) Refresh(ctx context.Context, shopID int64) (*domain.Credential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Reler a credencial mais recente: outra invocação pode ter renovado
	// enquanto esperávamos o lock
	cred, err := r.store.GetByShopID(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("erro ao reler credencial da loja %d: %w", shopID, err)
	}
	if cred == nil || cred.RefreshToken == "" {
		return nil, &shopeedomain.AuthError{
			ShopID:  shopID,
			Code:    shopeedomain.ErrorCodeAuth,
			Message: "loja sem refresh token cadastrado",
		}
	}

	// Mesma regra de assinatura do dispatcher: credencial da loja quando
	// cadastrada, senão a credencial global da configuração
	partnerID, partnerKey := cred.PartnerID, cred.PartnerKey
	if partnerID == 0 || partnerKey == "" {
		partnerID, partnerKey = r.cfg.Shopee.PartnerID, r.cfg.Shopee.PartnerKey
	}

	tokenResp, err := FetchAccessToken(
		ctx,
		r.httpClient,
		r.cfg.Shopee.BaseURL,
		r.cfg.Shopee.ProxyBaseURL,
		partnerID,
		partnerKey,
		cred.ShopID,
		cred.RefreshToken,
	)
	if err != nil {
		return nil, err
	}

	buffer := time.Duration(r.cfg.Shopee.TokenExpiryBufferMinutes) * time.Minute
	cred.AccessToken = tokenResp.AccessToken
	cred.RefreshToken = tokenResp.RefreshToken
	cred.ExpiresAt = CalculateTokenExpiration(tokenResp.ExpireIn, buffer)
	cred.UpdatedAt = time.Now()

	// Persistir antes de devolver: a retentativa do dispatcher depende da
	// credencial já estar gravada
	if err := r.store.Save(ctx, cred); err != nil {
		return nil, fmt.Errorf("erro ao persistir credencial renovada da loja %d: %w", shopID, err)
	}

	logrus.WithFields(logrus.Fields{
		"shop_id":    cred.ShopID,
		"expires_at": cred.ExpiresAt.Format(time.RFC3339),
	}).Info("Credencial da loja renovada e persistida com sucesso")

	return cred, nil
}
