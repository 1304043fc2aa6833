package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/infosoft-ph/video-rental-service/internal/model"
)

// quantityRented counts active rental rows, not summed units; that is the
// observed product behavior and a multi-unit rental counts as one.
// totalQuantity adds the units currently out back onto the stock counter.
const videoInventoryQuery = `
select v.id,
       v.title,
       v.category,
       (v.quantity + coalesce(sum(r.quantity) filter (where not r.returned), 0))::int            as total_quantity,
       (count(r.id) filter (where not r.returned))::int                                          as quantity_rented,
       (v.quantity + coalesce(sum(r.quantity) filter (where not r.returned), 0)
           - count(r.id) filter (where not r.returned))::int                                     as quantity_inside
from video v
         left join rental r on r.video_id = v.id
group by v.id
order by v.title asc`

func (r *repository) VideoInventory(ctx context.Context) ([]model.InventoryReportRow, error) {
	rows := make([]model.InventoryReportRow, 0)
	if err := r.db.SelectContext(ctx, &rows, videoInventoryQuery); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ActiveRentalsByCustomer(ctx context.Context, customerID int) ([]model.CustomerRental, error) {
	query, args, err := qb.Select(
		"r.id as rental_id", "v.title", "v.category", "r.price", "r.quantity", "r.overdue_at").
		From(rentalTableName + " r").
		Join(videoTableName + " v on v.id = r.video_id").
		Where(sq.Eq{"r.customer_id": customerID, "r.returned": false}).
		OrderBy("r.overdue_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	rentals := make([]model.CustomerRental, 0)
	if err := r.db.SelectContext(ctx, &rentals, query, args...); err != nil {
		return nil, err
	}
	return rentals, nil
}
