package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/kiendt120702/shopee-ads-sync/infrastructure/database/postgres"
	"github.com/kiendt120702/shopee-ads-sync/internal/domain"
)

const campaignsTable = "campaigns"

type CampaignRepository interface {
	SaveOrUpdate(ctx context.Context, campaign *domain.Campaign) error
	ListIDsByShop(ctx context.Context, shopID int64) ([]int64, error)
	ListByShop(ctx context.Context, shopID int64) ([]*domain.Campaign, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{conn: conn}
}

func (r *campaignRepository) SaveOrUpdate(ctx context.Context, campaign *domain.Campaign) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(campaignsTable).
		Columns("shop_id", "campaign_id", "type", "name", "status", "budget", "placement", "bidding_method", "item_count").
		Values(
			campaign.ShopID,
			campaign.CampaignID,
			string(campaign.Type),
			campaign.Name,
			string(campaign.Status),
			campaign.Budget,
			campaign.Placement,
			campaign.BiddingMethod,
			campaign.ItemCount,
		).
		Suffix(`
			ON CONFLICT (shop_id, campaign_id) DO UPDATE SET
				type = EXCLUDED.type,
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				budget = EXCLUDED.budget,
				placement = EXCLUDED.placement,
				bidding_method = EXCLUDED.bidding_method,
				item_count = EXCLUDED.item_count,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *campaignRepository) ListIDsByShop(ctx context.Context, shopID int64) ([]int64, error) {
	query, args, err := squirrel.
		Select("campaign_id").
		From(campaignsTable).
		Where(squirrel.Eq{"shop_id": shopID}).
		Where(squirrel.NotEq{"status": []string{
			string(domain.CampaignStatusDeleted),
			string(domain.CampaignStatusClosed),
		}}).
		OrderBy("campaign_id ASC").
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

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao escanear campaign_id: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ids, nil
}

func (r *campaignRepository) ListByShop(ctx context.Context, shopID int64) ([]*domain.Campaign, error) {
	query, args, err := squirrel.
		Select("shop_id, campaign_id, type, name, status, budget, placement, bidding_method, item_count, created_at, updated_at").
		From(campaignsTable).
		Where(squirrel.Eq{"shop_id": shopID}).
		OrderBy("campaign_id ASC").
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

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign := &domain.Campaign{}
		var campaignType, status string

		err := rows.Scan(
			&campaign.ShopID,
			&campaign.CampaignID,
			&campaignType,
			&campaign.Name,
			&status,
			&campaign.Budget,
			&campaign.Placement,
			&campaign.BiddingMethod,
			&campaign.ItemCount,
			&campaign.CreatedAt,
			&campaign.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}

		campaign.Type = domain.CampaignType(campaignType)
		campaign.Status = domain.CampaignStatus(status)
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}
