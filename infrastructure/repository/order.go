package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/kiendt120702/shopee-ads-sync/infrastructure/database/postgres"
	"github.com/kiendt120702/shopee-ads-sync/internal/domain"
)

const ordersTable = "orders"

type OrderRepository interface {
	SaveOrUpdate(ctx context.Context, order *domain.Order) error
	CountByShopAndPeriod(ctx context.Context, shopID int64, from, to string) (int64, error)
}

type orderRepository struct {
	conn *postgres.Connection
}

func NewOrderRepository(conn *postgres.Connection) OrderRepository {
	return &orderRepository{conn: conn}
}

func (r *orderRepository) SaveOrUpdate(ctx context.Context, order *domain.Order) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(ordersTable).
		Columns("shop_id", "order_sn", "status", "total_amount", "currency", "buyer_username", "item_count", "create_time", "update_time", "pay_time").
		Values(
			order.ShopID,
			order.OrderSN,
			order.Status,
			order.TotalAmount,
			order.Currency,
			order.BuyerUsername,
			order.ItemCount,
			order.CreateTime,
			order.UpdateTime,
			order.PayTime,
		).
		Suffix(`
			ON CONFLICT (shop_id, order_sn) DO UPDATE SET
				status = EXCLUDED.status,
				total_amount = EXCLUDED.total_amount,
				currency = EXCLUDED.currency,
				buyer_username = EXCLUDED.buyer_username,
				item_count = EXCLUDED.item_count,
				update_time = EXCLUDED.update_time,
				pay_time = EXCLUDED.pay_time,
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

func (r *orderRepository) CountByShopAndPeriod(ctx context.Context, shopID int64, from, to string) (int64, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(ordersTable).
		Where(squirrel.Eq{"shop_id": shopID}).
		Where(squirrel.GtOrEq{"create_time": from}).
		Where(squirrel.LtOrEq{"create_time": to}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar pedidos: %w", err)
	}

	return count, nil
}
