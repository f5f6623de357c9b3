package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/kiendt120702/shopee-ads-sync/infrastructure/database/postgres"
	"github.com/kiendt120702/shopee-ads-sync/internal/domain"
)

const syncCheckpointsTable = "sync_checkpoints"

type SyncCheckpointRepository interface {
	GetByShopID(ctx context.Context, shopID int64) (*domain.SyncCheckpoint, error)
	Save(ctx context.Context, checkpoint *domain.SyncCheckpoint) error
}

type syncCheckpointRepository struct {
	conn *postgres.Connection
}

func NewSyncCheckpointRepository(conn *postgres.Connection) SyncCheckpointRepository {
	return &syncCheckpointRepository{conn: conn}
}

func (r *syncCheckpointRepository) GetByShopID(ctx context.Context, shopID int64) (*domain.SyncCheckpoint, error) {
	query, args, err := squirrel.
		Select("shop_id, unit, chunk_end, completed_units, syncing, last_error, updated_at").
		From(syncCheckpointsTable).
		Where(squirrel.Eq{"shop_id": shopID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	checkpoint := &domain.SyncCheckpoint{}
	var completedUnits pq.StringArray

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&checkpoint.ShopID,
		&checkpoint.Unit,
		&checkpoint.ChunkEnd,
		&completedUnits,
		&checkpoint.Syncing,
		&checkpoint.LastError,
		&checkpoint.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear checkpoint de sincronização: %w", err)
	}

	checkpoint.CompletedUnits = []string(completedUnits)

	return checkpoint, nil
}

// Save persiste o checkpoint inteiro; o registro é substituído em bloco
// para que o estado em disco seja sempre um snapshot consistente.
func (r *syncCheckpointRepository) Save(ctx context.Context, checkpoint *domain.SyncCheckpoint) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(syncCheckpointsTable).
		Columns("shop_id", "unit", "chunk_end", "completed_units", "syncing", "last_error").
		Values(
			checkpoint.ShopID,
			checkpoint.Unit,
			checkpoint.ChunkEnd,
			pq.Array(checkpoint.CompletedUnits),
			checkpoint.Syncing,
			checkpoint.LastError,
		).
		Suffix(`
			ON CONFLICT (shop_id) DO UPDATE SET
				unit = EXCLUDED.unit,
				chunk_end = EXCLUDED.chunk_end,
				completed_units = EXCLUDED.completed_units,
				syncing = EXCLUDED.syncing,
				last_error = EXCLUDED.last_error,
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
