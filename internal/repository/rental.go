package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/infosoft-ph/video-rental-service/internal/errs"
	"github.com/infosoft-ph/video-rental-service/internal/model"
)

// rentalRow is the flat shape of a rental joined with its customer and video.
type rentalRow struct {
	model.Rental
	CustomerFirstName string    `db:"customer_first_name"`
	CustomerLastName  string    `db:"customer_last_name"`
	CustomerCreatedAt time.Time `db:"customer_created_at"`
	VideoTitle        string    `db:"video_title"`
	VideoCategory     string    `db:"video_category"`
	VideoPrice        float64   `db:"video_price"`
	VideoQuantity     int       `db:"video_quantity"`
	VideoRentDays     int       `db:"video_rent_days"`
	VideoVersion      int       `db:"video_version"`
}

func (row rentalRow) toModel() model.Rental {
	rental := row.Rental
	rental.Customer = &model.Customer{
		ID:        rental.CustomerID,
		FirstName: row.CustomerFirstName,
		LastName:  row.CustomerLastName,
		CreatedAt: row.CustomerCreatedAt,
	}
	rental.Video = &model.Video{
		ID:       rental.VideoID,
		Title:    row.VideoTitle,
		Category: row.VideoCategory,
		Price:    row.VideoPrice,
		Quantity: row.VideoQuantity,
		RentDays: row.VideoRentDays,
		Version:  row.VideoVersion,
	}
	return rental
}

func rentalSelect() sq.SelectBuilder {
	return qb.Select(
		"r.id", "r.customer_id", "r.video_id", "r.price", "r.quantity",
		"r.borrowed_at", "r.overdue_at", "r.returned_at", "r.returned", "r.version",
		"c.first_name as customer_first_name",
		"c.last_name as customer_last_name",
		"c.created_at as customer_created_at",
		"v.title as video_title",
		"v.category as video_category",
		"v.price as video_price",
		"v.quantity as video_quantity",
		"v.rent_days as video_rent_days",
		"v.version as video_version",
	).
		From(rentalTableName + " r").
		Join(customerTableName + " c on c.id = r.customer_id").
		Join(videoTableName + " v on v.id = r.video_id")
}

func (r *repository) ListRentals(ctx context.Context) ([]model.Rental, error) {
	query, args, err := rentalSelect().OrderBy("r.id").ToSql()
	if err != nil {
		return nil, err
	}

	var rows []rentalRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	rentals := make([]model.Rental, 0, len(rows))
	for _, row := range rows {
		rentals = append(rentals, row.toModel())
	}
	return rentals, nil
}

func (r *repository) GetRental(ctx context.Context, id int) (model.Rental, error) {
	query, args, err := rentalSelect().Where(sq.Eq{"r.id": id}).ToSql()
	if err != nil {
		return model.Rental{}, err
	}

	var row rentalRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Rental{}, errors.Wrap(errs.ErrNotFound, "rental")
		}
		return model.Rental{}, err
	}
	return row.toModel(), nil
}

const decrementStockQuery = `
update video
    set quantity = quantity - $2, version = version + 1
where id = $1 and quantity >= $2`

// CreateRental decrements the video stock and inserts the rental in one
// transaction; neither change is visible unless both succeed.
func (r *repository) CreateRental(ctx context.Context, rental model.Rental) (model.Rental, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Rental{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	res, err := tx.ExecContext(ctx, decrementStockQuery, rental.VideoID, rental.Quantity)
	if err != nil {
		return model.Rental{}, wrapPgError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return model.Rental{}, err
	}
	if n == 0 {
		var exists bool
		if err := tx.GetContext(ctx, &exists,
			`select exists(select 1 from video where id = $1)`, rental.VideoID); err != nil {
			return model.Rental{}, err
		}
		if !exists {
			return model.Rental{}, errors.Wrap(errs.ErrNotFound, "video")
		}
		return model.Rental{}, errors.Wrapf(errs.ErrValidation, "quantity %d exceeds stock", rental.Quantity)
	}

	query, args, err := qb.Insert(rentalTableName).
		Columns("customer_id", "video_id", "price", "quantity", "borrowed_at", "overdue_at", "returned").
		Values(rental.CustomerID, rental.VideoID, rental.Price, rental.Quantity,
			rental.BorrowedAt, rental.OverdueAt, false).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Rental{}, err
	}

	var created model.Rental
	if err := tx.GetContext(ctx, &created, query, args...); err != nil {
		r.log.Error("CreateRental", zap.String("q", query), zap.Any("args", args))
		return model.Rental{}, wrapPgError(err)
	}

	if err := tx.Commit(); err != nil {
		return model.Rental{}, wrapPgError(err)
	}
	return created, nil
}

const completeReturnQuery = `
update rental
    set returned = true, returned_at = $2, price = $3, version = version + 1
where id = $1 and version = $4 and not returned`

// CompleteReturn marks the rental returned with its final price. A missing
// row is not found; an existing row that no longer matches the version (or
// was already returned) is a conflict.
func (r *repository) CompleteReturn(ctx context.Context, id, version int, returnedAt time.Time, newPrice float64) error {
	res, err := r.db.ExecContext(ctx, completeReturnQuery, id, returnedAt, newPrice, version)
	if err != nil {
		return wrapPgError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var exists bool
		if err := r.db.GetContext(ctx, &exists,
			`select exists(select 1 from rental where id = $1)`, id); err != nil {
			return err
		}
		if !exists {
			return errors.Wrap(errs.ErrNotFound, "rental")
		}
		return errors.Wrap(errs.ErrConflict, "rental was modified concurrently")
	}
	return nil
}
