package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{
	"o.id", "o.user_id", "u.email", "o.date_placed", "o.status", "o.is_pickup",
	"o.shipping_address_id", "o.payment_method_id", "o.total_amount", "o.payment_ref",
	"o.shipping_snapshot", "o.card_type", "o.card_last4",
}

var itemColumns = []string{
	"id", "order_id", "product_id", "product_name", "quantity", "purchased_price",
}

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) selectOrders() sq.SelectBuilder {
	return r.qb.Select(orderColumns...).
		From("orders o").
		LeftJoin("users u ON u.id = o.user_id")
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error) {
	query, args := r.selectOrders().
		Where(sq.Eq{"o.id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	orders, err := r.withItems(ctx, []Order{order})
	if err != nil {
		return entities.Order{}, err
	}
	return orders[0], nil
}

func (r *postgresRepo) OrdersByUser(ctx context.Context, userID int64) ([]entities.Order, error) {
	query, args := r.selectOrders().
		Where(sq.Eq{"o.user_id": userID}).
		OrderBy("o.date_placed DESC", "o.id DESC").
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	return r.withItems(ctx, orders)
}

func (r *postgresRepo) OrdersPage(ctx context.Context, offset, limit int) ([]entities.Order, error) {
	query, args := r.selectOrders().
		OrderBy("o.date_placed DESC", "o.id DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders page: %w", err)
	}
	return r.withItems(ctx, orders)
}

func (r *postgresRepo) CountOrders(ctx context.Context) (int64, error) {
	query, args := r.qb.Select("COUNT(*)").From("orders").MustSql()

	var count int64
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

// withItems подгружает позиции одним запросом для всех заказов
func (r *postgresRepo) withItems(ctx context.Context, orders []Order) ([]entities.Order, error) {
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]int64, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	query, args := r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("id").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	itemsMap := make(map[int64][]Item, len(orders))
	for _, it := range items {
		itemsMap[it.OrderID] = append(itemsMap[it.OrderID], it)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		order, err := OrderToEntity(o, itemsMap[o.ID])
		if err != nil {
			return nil, fmt.Errorf("failed to decode order %d: %w", o.ID, err)
		}
		result = append(result, order)
	}
	return result, nil
}

// SaveOrder inserts the order with its items and assigns o.ID.
func (r *postgresRepo) SaveOrder(ctx context.Context, o *entities.Order) error {
	snapshot, err := snapshotAddress(o.ShippingAddress)
	if err != nil {
		return fmt.Errorf("failed to encode address snapshot: %w", err)
	}

	var cardType, cardLast4 sql.NullString
	if o.Payment != nil {
		cardType = sql.NullString{String: o.Payment.CardType, Valid: true}
		cardLast4 = sql.NullString{String: o.Payment.Last4, Valid: true}
	}

	query, args := r.qb.Insert("orders").
		Columns(
			"user_id", "date_placed", "status", "is_pickup",
			"shipping_address_id", "payment_method_id", "total_amount", "payment_ref",
			"shipping_snapshot", "card_type", "card_last4",
		).
		Values(
			o.UserID, o.DatePlaced, string(o.Status), o.IsPickup,
			nullInt64(o.ShippingAddressID), nullInt64(o.PaymentMethodID), o.TotalAmount, nullString(o.PaymentRef),
			snapshot, cardType, cardLast4,
		).
		Suffix("RETURNING id").
		MustSql()

	if err := r.getContext(ctx, &o.ID, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	if len(o.Items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "product_id", "product_name", "quantity", "purchased_price")
	for _, it := range o.Items {
		q = q.Values(o.ID, it.ProductID, it.Name, it.Quantity, it.PurchasedPrice)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

// UpdateStatus moves the order from one status to another. The WHERE on the current
// status makes concurrent transitions of the same order mutually exclusive.
func (r *postgresRepo) UpdateStatus(ctx context.Context, orderID int64, from, to entities.Status) error {
	query, args := r.qb.Update("orders").
		Set("status", string(to)).
		Where(sq.Eq{"id": orderID, "status": string(from)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if affected > 0 {
		return nil
	}

	exists, err := r.exists(ctx, "orders", orderID)
	if err != nil {
		return err
	}
	if !exists {
		return entities.ErrOrderNotFound
	}
	return entities.ErrInvalidStateTransition
}

func (r *postgresRepo) Stats(ctx context.Context, limit int) (entities.OrderStats, error) {
	completed := sq.Eq{"o.status": string(entities.StatusCompleted)}

	query, args := r.qb.Select("COALESCE(SUM(oi.quantity), 0)").
		From("order_items oi").
		Join("orders o ON o.id = oi.order_id").
		Where(completed).
		MustSql()

	var stats entities.OrderStats
	if err := r.getContext(ctx, &stats.TotalSoldItems, query, args...); err != nil {
		return entities.OrderStats{}, fmt.Errorf("failed to count sold items: %w", err)
	}

	top := func(value string) ([]entities.ProductStat, error) {
		query, args := r.qb.Select("oi.product_id", "p.name", value+" AS value").
			From("order_items oi").
			Join("orders o ON o.id = oi.order_id").
			Join("products p ON p.id = oi.product_id").
			Where(completed).
			GroupBy("oi.product_id", "p.name").
			OrderBy("value DESC", "oi.product_id").
			Limit(uint64(limit)).
			MustSql()

		var rows []ProductStat
		if err := r.selectContext(ctx, &rows, query, args...); err != nil {
			return nil, err
		}
		return StatsToEntity(rows), nil
	}

	var err error
	if stats.MostPopular, err = top("SUM(oi.quantity)"); err != nil {
		return entities.OrderStats{}, fmt.Errorf("failed to select popular products: %w", err)
	}
	if stats.MostProfitable, err = top("SUM((oi.purchased_price - p.wholesale_price) * oi.quantity)"); err != nil {
		return entities.OrderStats{}, fmt.Errorf("failed to select profitable products: %w", err)
	}
	return stats, nil
}

func (r *postgresRepo) exists(ctx context.Context, table string, id int64) (bool, error) {
	query, args := r.qb.Select("1").
		Prefix("SELECT EXISTS (").
		From(table).
		Where(sq.Eq{"id": id}).
		Suffix(")").
		MustSql()

	var exists bool
	if err := r.getContext(ctx, &exists, query, args...); err != nil {
		return false, fmt.Errorf("failed to check %s existence: %w", table, err)
	}
	return exists, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt64(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
