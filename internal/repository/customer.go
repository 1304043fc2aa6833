package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/infosoft-ph/video-rental-service/internal/errs"
	"github.com/infosoft-ph/video-rental-service/internal/model"
)

func (r *repository) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	query, args, err := qb.Select("id", "first_name", "last_name", "created_at").
		From(customerTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	customers := make([]model.Customer, 0)
	if err := r.db.SelectContext(ctx, &customers, query, args...); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *repository) GetCustomer(ctx context.Context, id int) (model.Customer, error) {
	query, args, err := qb.Select("id", "first_name", "last_name", "created_at").
		From(customerTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Customer{}, err
	}

	var customer model.Customer
	if err := r.db.GetContext(ctx, &customer, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Customer{}, errors.Wrap(errs.ErrNotFound, "customer")
		}
		return model.Customer{}, err
	}
	return customer, nil
}

func (r *repository) CreateCustomer(ctx context.Context, customer model.Customer) (model.Customer, error) {
	query, args, err := qb.Insert(customerTableName).
		Columns("first_name", "last_name", "created_at").
		Values(customer.FirstName, customer.LastName, customer.CreatedAt).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Customer{}, err
	}

	var created model.Customer
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		r.log.Error("CreateCustomer", zap.String("q", query), zap.Any("args", args))
		return model.Customer{}, wrapPgError(err)
	}
	return created, nil
}

func (r *repository) UpdateCustomer(ctx context.Context, customer model.Customer) (model.Customer, error) {
	query, args, err := qb.Update(customerTableName).
		Set("first_name", customer.FirstName).
		Set("last_name", customer.LastName).
		Where(sq.Eq{"id": customer.ID}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Customer{}, err
	}

	var updated model.Customer
	if err := r.db.GetContext(ctx, &updated, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Customer{}, errors.Wrap(errs.ErrNotFound, "customer")
		}
		return model.Customer{}, wrapPgError(err)
	}
	return updated, nil
}

func (r *repository) DeleteCustomer(ctx context.Context, id int) error {
	query, args, err := qb.Delete(customerTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapPgError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.Wrap(errs.ErrNotFound, "customer")
	}
	return nil
}
