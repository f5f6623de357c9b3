package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/kiendt120702/shopee-ads-sync/infrastructure/database/postgres"
	"github.com/kiendt120702/shopee-ads-sync/internal/domain"
)

const shopPerformanceTable = "shop_performance"

type ShopPerformanceRepository interface {
	SaveOrUpdate(ctx context.Context, record *domain.ShopPerformanceRecord) error
	GetByKey(ctx context.Context, shopID int64, date time.Time, hour *int) (*domain.ShopPerformanceRecord, error)
}

type shopPerformanceRepository struct {
	conn *postgres.Connection
}

func NewShopPerformanceRepository(conn *postgres.Connection) ShopPerformanceRepository {
	return &shopPerformanceRepository{conn: conn}
}

func (r *shopPerformanceRepository) SaveOrUpdate(ctx context.Context, record *domain.ShopPerformanceRecord) error {
	metricsJSON, err := json.Marshal(record.Metrics)
	if err != nil {
		return fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(shopPerformanceTable).
		Columns("shop_id", "date", "hour", "metrics").
		Values(
			record.ShopID,
			record.Date.Format("2006-01-02"),
			hourKey(record.Hour),
			metricsJSON,
		).
		Suffix(`
			ON CONFLICT (shop_id, date, hour) DO UPDATE SET
				metrics = EXCLUDED.metrics,
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

func (r *shopPerformanceRepository) GetByKey(ctx context.Context, shopID int64, date time.Time, hour *int) (*domain.ShopPerformanceRecord, error) {
	query, args, err := squirrel.
		Select("shop_id, date, hour, metrics, created_at, updated_at").
		From(shopPerformanceTable).
		Where(squirrel.Eq{
			"shop_id": shopID,
			"date":    date.Format("2006-01-02"),
			"hour":    hourKey(hour),
		}).
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

	if !rows.Next() {
		return nil, rows.Err()
	}

	record := &domain.ShopPerformanceRecord{}
	var metricsJSON []byte
	var hourStored int

	err = rows.Scan(
		&record.ShopID,
		&record.Date,
		&hourStored,
		&metricsJSON,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear registro de desempenho da loja: %w", err)
	}

	record.Hour = hourFromKey(hourStored)

	if metricsJSON != nil {
		metrics := &domain.AdMetrics{}
		if err := json.Unmarshal(metricsJSON, metrics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de métricas: %w", err)
		}
		record.Metrics = metrics
	}

	return record, rows.Err()
}
