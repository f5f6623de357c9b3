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

const campaignPerformanceTable = "campaign_performance"

// hourKey converte a hora opcional na chave armazenada (-1 = registro diário)
func hourKey(hour *int) int {
	if hour == nil {
		return -1
	}
	return *hour
}

func hourFromKey(key int) *int {
	if key < 0 {
		return nil
	}
	return &key
}

type PerformanceRepository interface {
	SaveOrUpdate(ctx context.Context, record *domain.PerformanceRecord) error
	GetByKey(ctx context.Context, shopID, campaignID int64, date time.Time, hour *int) (*domain.PerformanceRecord, error)
	ListByShopAndDate(ctx context.Context, shopID int64, date time.Time, hour *int) ([]*domain.PerformanceRecord, error)
	ListDistinctHours(ctx context.Context, shopID int64, date time.Time) ([]int, error)
}

type performanceRepository struct {
	conn *postgres.Connection
}

func NewPerformanceRepository(conn *postgres.Connection) PerformanceRepository {
	return &performanceRepository{conn: conn}
}

func (r *performanceRepository) SaveOrUpdate(ctx context.Context, record *domain.PerformanceRecord) error {
	metricsJSON, err := json.Marshal(record.Metrics)
	if err != nil {
		return fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(campaignPerformanceTable).
		Columns("shop_id", "campaign_id", "date", "hour", "metrics").
		Values(
			record.ShopID,
			record.CampaignID,
			record.Date.Format("2006-01-02"),
			hourKey(record.Hour),
			metricsJSON,
		).
		Suffix(`
			ON CONFLICT (shop_id, campaign_id, date, hour) DO UPDATE SET
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

func (r *performanceRepository) GetByKey(ctx context.Context, shopID, campaignID int64, date time.Time, hour *int) (*domain.PerformanceRecord, error) {
	query, args, err := squirrel.
		Select("shop_id, campaign_id, date, hour, metrics, created_at, updated_at").
		From(campaignPerformanceTable).
		Where(squirrel.Eq{
			"shop_id":     shopID,
			"campaign_id": campaignID,
			"date":        date.Format("2006-01-02"),
			"hour":        hourKey(hour),
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

	record, err := scanPerformanceRow(rows)
	if err != nil {
		return nil, err
	}

	return record, rows.Err()
}

func (r *performanceRepository) ListByShopAndDate(ctx context.Context, shopID int64, date time.Time, hour *int) ([]*domain.PerformanceRecord, error) {
	query, args, err := squirrel.
		Select("shop_id, campaign_id, date, hour, metrics, created_at, updated_at").
		From(campaignPerformanceTable).
		Where(squirrel.Eq{
			"shop_id": shopID,
			"date":    date.Format("2006-01-02"),
			"hour":    hourKey(hour),
		}).
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

	records := make([]*domain.PerformanceRecord, 0)
	for rows.Next() {
		record, err := scanPerformanceRow(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *performanceRepository) ListDistinctHours(ctx context.Context, shopID int64, date time.Time) ([]int, error) {
	query, args, err := squirrel.
		Select("DISTINCT hour").
		From(campaignPerformanceTable).
		Where(squirrel.Eq{
			"shop_id": shopID,
			"date":    date.Format("2006-01-02"),
		}).
		Where(squirrel.GtOrEq{"hour": 0}).
		OrderBy("hour ASC").
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

	hours := make([]int, 0)
	for rows.Next() {
		var hour int
		if err := rows.Scan(&hour); err != nil {
			return nil, fmt.Errorf("erro ao escanear hora: %w", err)
		}
		hours = append(hours, hour)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return hours, nil
}

type performanceScanner interface {
	Scan(dest ...any) error
}

func scanPerformanceRow(row performanceScanner) (*domain.PerformanceRecord, error) {
	record := &domain.PerformanceRecord{}
	var metricsJSON []byte
	var hour int

	err := row.Scan(
		&record.ShopID,
		&record.CampaignID,
		&record.Date,
		&hour,
		&metricsJSON,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear registro de desempenho: %w", err)
	}

	record.Hour = hourFromKey(hour)

	if metricsJSON != nil {
		metrics := &domain.AdMetrics{}
		if err := json.Unmarshal(metricsJSON, metrics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de métricas: %w", err)
		}
		record.Metrics = metrics
	}

	return record, nil
}
