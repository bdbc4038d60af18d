package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) FindProduct(ctx context.Context, productID int64) (entities.Product, error) {
	query, args := r.qb.Select("id", "name", "retail_price", "wholesale_price", "quantity").
		From("products").
		Where(sq.Eq{"id": productID}).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, fmt.Errorf("%w: %d", entities.ErrProductNotFound, productID)
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(product), nil
}

// Reserve decrements stock in a single conditional UPDATE. The row lock it takes
// serializes concurrent reservations of the same product, and the quantity guard
// keeps the stock from going negative.
func (r *postgresRepo) Reserve(ctx context.Context, productID int64, qty int) error {
	query, args := r.qb.Update("products").
		Set("quantity", sq.Expr("quantity - ?", qty)).
		Where(sq.Eq{"id": productID}).
		Where(sq.GtOrEq{"quantity": qty}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to reserve stock: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to reserve stock: %w", err)
	}
	if affected > 0 {
		return nil
	}

	exists, err := r.exists(ctx, "products", productID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %d", entities.ErrProductNotFound, productID)
	}
	return &entities.InsufficientInventoryError{ProductID: productID}
}

func (r *postgresRepo) Release(ctx context.Context, productID int64, qty int) error {
	query, args := r.qb.Update("products").
		Set("quantity", sq.Expr("quantity + ?", qty)).
		Where(sq.Eq{"id": productID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to release stock: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to release stock: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %d", entities.ErrProductNotFound, productID)
	}
	return nil
}
