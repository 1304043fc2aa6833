// Package pricing holds the rental price rules: fixed per-category unit
// prices and the per-day surcharge applied past the due date.
package pricing

import (
	"time"

	"github.com/pkg/errors"

	"github.com/infosoft-ph/video-rental-service/internal/errs"
	"github.com/infosoft-ph/video-rental-service/internal/model"
)

const (
	DVDUnitPrice = 50.0
	VCDUnitPrice = 25.0

	DailyOverdueRate = 5.0
)

func UnitPrice(category string) (float64, error) {
	switch category {
	case model.CategoryDVD:
		return DVDUnitPrice, nil
	case model.CategoryVCD:
		return VCDUnitPrice, nil
	default:
		return 0, errors.Wrapf(errs.ErrValidation, "category must be either DVD or VCD, got %q", category)
	}
}

// OverdueCharge is zero for an on-time return, otherwise the calendar-day
// difference between due and return dates times dailyRate. Hours past the
// due timestamp on the same day do not count.
func OverdueCharge(dueDate, returnDate time.Time, dailyRate float64) float64 {
	if !returnDate.After(dueDate) {
		return 0
	}
	return float64(daysBetween(dueDate, returnDate)) * dailyRate
}

// DaysRemaining is the calendar days from now until due; negative means overdue.
func DaysRemaining(dueDate, now time.Time) int {
	return daysBetween(now, dueDate)
}

func daysBetween(from, to time.Time) int {
	from, to = from.UTC(), to.UTC()
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
