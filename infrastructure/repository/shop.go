package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/kiendt120702/shopee-ads-sync/infrastructure/database/postgres"
	"github.com/kiendt120702/shopee-ads-sync/internal/domain"
)

const shopsTable = "shops"

type ShopRepository interface {
	GetByID(ctx context.Context, shopID int64) (*domain.Shop, error)
	ListActive(ctx context.Context) ([]*domain.Shop, error)
	SaveOrUpdate(ctx context.Context, shop *domain.Shop) error
}

type shopRepository struct {
	conn *postgres.Connection
}

func NewShopRepository(conn *postgres.Connection) ShopRepository {
	return &shopRepository{conn: conn}
}

func (r *shopRepository) GetByID(ctx context.Context, shopID int64) (*domain.Shop, error) {
	query, args, err := squirrel.
		Select("shop_id, name, region, active, created_at, updated_at").
		From(shopsTable).
		Where(squirrel.Eq{"shop_id": shopID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	shop := &domain.Shop{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&shop.ShopID,
		&shop.Name,
		&shop.Region,
		&shop.Active,
		&shop.CreatedAt,
		&shop.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear loja: %w", err)
	}

	return shop, nil
}

func (r *shopRepository) ListActive(ctx context.Context) ([]*domain.Shop, error) {
	query, args, err := squirrel.
		Select("shop_id, name, region, active, created_at, updated_at").
		From(shopsTable).
		Where(squirrel.Eq{"active": true}).
		OrderBy("shop_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	shops := make([]*domain.Shop, 0)
	for rows.Next() {
		shop := &domain.Shop{}
		err := rows.Scan(
			&shop.ShopID,
			&shop.Name,
			&shop.Region,
			&shop.Active,
			&shop.CreatedAt,
			&shop.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear loja: %w", err)
		}
		shops = append(shops, shop)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return shops, nil
}

func (r *shopRepository) SaveOrUpdate(ctx context.Context, shop *domain.Shop) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(shopsTable).
		Columns("shop_id", "name", "region", "active").
		Values(shop.ShopID, shop.Name, shop.Region, shop.Active).
		Suffix(`
			ON CONFLICT (shop_id) DO UPDATE SET
				name = EXCLUDED.name,
				region = EXCLUDED.region,
				active = EXCLUDED.active,
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
