package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/kiendt120702/shopee-ads-sync/infrastructure/database/postgres"
	"github.com/kiendt120702/shopee-ads-sync/internal/domain"
)

const credentialsTable = "shop_credentials"

// CredentialRepository é o adaptador de armazenamento de credenciais.
// A gravação é sempre upsert-on-conflict: corridas entre invocações são
// resolvidas por último-escritor-vence, nunca por lock.
type CredentialRepository interface {
	GetByShopID(ctx context.Context, shopID int64) (*domain.Credential, error)
	Save(ctx context.Context, cred *domain.Credential) error
}

type credentialRepository struct {
	conn *postgres.Connection
}

func NewCredentialRepository(conn *postgres.Connection) CredentialRepository {
	return &credentialRepository{conn: conn}
}

func (r *credentialRepository) GetByShopID(ctx context.Context, shopID int64) (*domain.Credential, error) {
	query, args, err := squirrel.
		Select("shop_id, partner_id, partner_key, access_token, refresh_token, expires_at, updated_at").
		From(credentialsTable).
		Where(squirrel.Eq{"shop_id": shopID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	cred := &domain.Credential{}
	var expiresAt sql.NullTime
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&cred.ShopID,
		&cred.PartnerID,
		&cred.PartnerKey,
		&cred.AccessToken,
		&cred.RefreshToken,
		&expiresAt,
		&cred.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear credencial: %w", err)
	}

	// expires_at nulo (loja recém-autorizada via seed) vira zero value,
	// o que força a renovação na primeira chamada
	if expiresAt.Valid {
		cred.ExpiresAt = expiresAt.Time
	}

	return cred, nil
}

func (r *credentialRepository) Save(ctx context.Context, cred *domain.Credential) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(credentialsTable).
		Columns("shop_id", "partner_id", "partner_key", "access_token", "refresh_token", "expires_at").
		Values(
			cred.ShopID,
			cred.PartnerID,
			cred.PartnerKey,
			cred.AccessToken,
			cred.RefreshToken,
			cred.ExpiresAt,
		).
		Suffix(`
			ON CONFLICT (shop_id) DO UPDATE SET
				partner_id = EXCLUDED.partner_id,
				partner_key = EXCLUDED.partner_key,
				access_token = EXCLUDED.access_token,
				refresh_token = EXCLUDED.refresh_token,
				expires_at = EXCLUDED.expires_at,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
