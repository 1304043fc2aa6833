package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/infosoft-ph/video-rental-service/internal/errs"
	"github.com/infosoft-ph/video-rental-service/internal/model"
)

type Repository interface {
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	GetCustomer(ctx context.Context, id int) (model.Customer, error)
	CreateCustomer(ctx context.Context, customer model.Customer) (model.Customer, error)
	UpdateCustomer(ctx context.Context, customer model.Customer) (model.Customer, error)
	DeleteCustomer(ctx context.Context, id int) error

	ListVideos(ctx context.Context) ([]model.Video, error)
	GetVideo(ctx context.Context, id int) (model.Video, error)
	CreateVideo(ctx context.Context, video model.Video) (model.Video, error)
	UpdateVideo(ctx context.Context, video model.Video) (model.Video, error)
	DeleteVideo(ctx context.Context, id int) error

	ListRentals(ctx context.Context) ([]model.Rental, error)
	GetRental(ctx context.Context, id int) (model.Rental, error)
	CreateRental(ctx context.Context, rental model.Rental) (model.Rental, error)
	CompleteReturn(ctx context.Context, id, version int, returnedAt time.Time, newPrice float64) error

	VideoInventory(ctx context.Context) ([]model.InventoryReportRow, error)
	ActiveRentalsByCustomer(ctx context.Context, customerID int) ([]model.CustomerRental, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	customerTableName = `customer`
	videoTableName    = `video`
	rentalTableName   = `rental`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// wrapPgError classifies constraint and serialization failures so callers
// see the domain taxonomy instead of raw driver errors.
func wrapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgerrcode.IsIntegrityConstraintViolation(pgErr.Code):
			return errors.Wrap(errs.ErrValidation, pgErr.Message)
		case pgerrcode.IsTransactionRollback(pgErr.Code):
			return errors.Wrap(errs.ErrConflict, pgErr.Message)
		}
	}
	return err
}
