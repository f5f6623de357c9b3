package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/kiendt120702/shopee-ads-sync/infrastructure/database/postgres"
	"github.com/kiendt120702/shopee-ads-sync/internal/domain"
)

const executionLogsTable = "execution_logs"

type ExecutionLogRepository interface {
	Append(ctx context.Context, log *domain.ExecutionLog) error
	HasRecentSuccess(ctx context.Context, scheduleID string, since time.Time) (bool, error)
	ListByScheduleID(ctx context.Context, scheduleID string, limit uint64) ([]*domain.ExecutionLog, error)
}

type executionLogRepository struct {
	conn *postgres.Connection
}

func NewExecutionLogRepository(conn *postgres.Connection) ExecutionLogRepository {
	return &executionLogRepository{conn: conn}
}

func (r *executionLogRepository) Append(ctx context.Context, log *domain.ExecutionLog) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(executionLogsTable).
		Columns("schedule_id", "shop_id", "campaign_id", "budget", "outcome", "error_text", "executed_at").
		Values(
			log.ScheduleID,
			log.ShopID,
			log.CampaignID,
			log.Budget,
			log.Outcome,
			log.ErrorText,
			log.ExecutedAt,
		).
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

func (r *executionLogRepository) HasRecentSuccess(ctx context.Context, scheduleID string, since time.Time) (bool, error) {
	query, args, err := squirrel.
		Select("COUNT(1)").
		From(executionLogsTable).
		Where(squirrel.Eq{
			"schedule_id": scheduleID,
			"outcome":     domain.ExecutionOutcomeSuccess,
		}).
		Where(squirrel.GtOrEq{"executed_at": since}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return count > 0, nil
}

func (r *executionLogRepository) ListByScheduleID(ctx context.Context, scheduleID string, limit uint64) ([]*domain.ExecutionLog, error) {
	builder := squirrel.
		Select("id, schedule_id, shop_id, campaign_id, budget, outcome, error_text, executed_at").
		From(executionLogsTable).
		Where(squirrel.Eq{"schedule_id": scheduleID}).
		OrderBy("executed_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	logs := make([]*domain.ExecutionLog, 0)
	for rows.Next() {
		log := &domain.ExecutionLog{}
		err := rows.Scan(
			&log.ID,
			&log.ScheduleID,
			&log.ShopID,
			&log.CampaignID,
			&log.Budget,
			&log.Outcome,
			&log.ErrorText,
			&log.ExecutedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de execução: %w", err)
		}
		logs = append(logs, log)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return logs, nil
}
