package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) FindUser(ctx context.Context, userID int64) (entities.User, error) {
	query, args := r.qb.Select("id", "email").
		From("users").
		Where(sq.Eq{"id": userID}).
		MustSql()

	var user User
	err := r.getContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return entities.User{ID: user.ID, Email: user.Email}, nil
}

func (r *postgresRepo) FindAddress(ctx context.Context, addressID int64) (entities.Address, error) {
	query, args := r.qb.Select(
		"id", "user_id", "full_name", "address_line1", "address_line2",
		"city", "state", "zip_code", "country").
		From("addresses").
		Where(sq.Eq{"id": addressID}).
		MustSql()

	var address Address
	err := r.getContext(ctx, &address, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Address{}, entities.ErrAddressNotFound
	}
	if err != nil {
		return entities.Address{}, fmt.Errorf("failed to get address: %w", err)
	}
	return AddressToEntity(address), nil
}

func (r *postgresRepo) SaveAddress(ctx context.Context, a *entities.Address) error {
	query, args := r.qb.Insert("addresses").
		Columns("user_id", "full_name", "address_line1", "address_line2", "city", "state", "zip_code", "country").
		Values(a.UserID, a.FullName, a.AddressLine1, nullString(a.AddressLine2), a.City, a.State, a.ZipCode, a.Country).
		Suffix("RETURNING id").
		MustSql()

	if err := r.getContext(ctx, &a.ID, query, args...); err != nil {
		return fmt.Errorf("failed to save address: %w", err)
	}
	return nil
}

func (r *postgresRepo) FindPaymentMethod(ctx context.Context, paymentMethodID int64) (entities.PaymentMethod, error) {
	query, args := r.qb.Select("id", "user_id", "card_holder", "card_type", "last4", "expiry_date").
		From("payment_methods").
		Where(sq.Eq{"id": paymentMethodID}).
		MustSql()

	var pm PaymentMethod
	err := r.getContext(ctx, &pm, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.PaymentMethod{}, entities.ErrPaymentMethodNotFound
	}
	if err != nil {
		return entities.PaymentMethod{}, fmt.Errorf("failed to get payment method: %w", err)
	}
	return PaymentMethodToEntity(pm), nil
}

func (r *postgresRepo) SavePaymentMethod(ctx context.Context, p *entities.PaymentMethod) error {
	query, args := r.qb.Insert("payment_methods").
		Columns("user_id", "card_holder", "card_type", "last4", "expiry_date").
		Values(p.UserID, p.CardHolder, p.CardType, p.Last4, p.ExpiryDate).
		Suffix("RETURNING id").
		MustSql()

	if err := r.getContext(ctx, &p.ID, query, args...); err != nil {
		return fmt.Errorf("failed to save payment method: %w", err)
	}
	return nil
}
