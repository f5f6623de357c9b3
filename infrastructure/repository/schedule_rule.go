package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/kiendt120702/shopee-ads-sync/infrastructure/database/postgres"
	"github.com/kiendt120702/shopee-ads-sync/internal/domain"
)

const scheduleRulesTable = "schedule_rules"

type ScheduleRuleRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ScheduleRule, error)
	ListActive(ctx context.Context) ([]*domain.ScheduleRule, error)
	ListByShop(ctx context.Context, shopID int64) ([]*domain.ScheduleRule, error)
}

type scheduleRuleRepository struct {
	conn *postgres.Connection
}

func NewScheduleRuleRepository(conn *postgres.Connection) ScheduleRuleRepository {
	return &scheduleRuleRepository{conn: conn}
}

func (r *scheduleRuleRepository) GetByID(ctx context.Context, id string) (*domain.ScheduleRule, error) {
	rules, err := r.list(ctx, squirrel.Eq{"id": id})
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return nil, nil
	}
	return rules[0], nil
}

func (r *scheduleRuleRepository) ListActive(ctx context.Context) ([]*domain.ScheduleRule, error) {
	return r.list(ctx, squirrel.Eq{"active": true})
}

func (r *scheduleRuleRepository) ListByShop(ctx context.Context, shopID int64) ([]*domain.ScheduleRule, error) {
	return r.list(ctx, squirrel.Eq{"shop_id": shopID})
}

func (r *scheduleRuleRepository) list(ctx context.Context, where squirrel.Eq) ([]*domain.ScheduleRule, error) {
	query, args, err := squirrel.
		Select("id, shop_id, campaign_id, ad_type, start_hour, start_minute, end_hour, end_minute, budget, days_of_week, dates, active, created_at").
		From(scheduleRulesTable).
		Where(where).
		OrderBy("created_at ASC").
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

	rules := make([]*domain.ScheduleRule, 0)
	for rows.Next() {
		rule := &domain.ScheduleRule{}
		var daysOfWeek pq.Int64Array
		var dates pq.StringArray

		err := rows.Scan(
			&rule.ID,
			&rule.ShopID,
			&rule.CampaignID,
			&rule.AdType,
			&rule.StartHour,
			&rule.StartMinute,
			&rule.EndHour,
			&rule.EndMinute,
			&rule.Budget,
			&daysOfWeek,
			&dates,
			&rule.Active,
			&rule.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear regra de agendamento: %w", err)
		}

		rule.DaysOfWeek = make([]int, 0, len(daysOfWeek))
		for _, d := range daysOfWeek {
			rule.DaysOfWeek = append(rule.DaysOfWeek, int(d))
		}
		rule.Dates = []string(dates)

		rules = append(rules, rule)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return rules, nil
}
