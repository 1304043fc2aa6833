package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/infosoft-ph/video-rental-service/internal/errs"
	"github.com/infosoft-ph/video-rental-service/internal/model"
	"github.com/infosoft-ph/video-rental-service/internal/pricing"
)

func (s *Service) ListRentals(ctx context.Context) ([]model.Rental, error) {
	return s.repo.ListRentals(ctx)
}

func (s *Service) GetRental(ctx context.Context, id int) (model.Rental, error) {
	return s.repo.GetRental(ctx, id)
}

// Rent charges unit price times quantity up front and sets the due date
// from the video's rent period. Stock decrement and rental insert happen
// in one repository transaction.
func (s *Service) Rent(ctx context.Context, req model.RentRequest) (model.Rental, error) {
	if req.Quantity < 1 {
		return model.Rental{}, errors.Wrap(errs.ErrValidation, "quantity must be at least 1")
	}

	customer, err := s.repo.GetCustomer(ctx, req.CustomerID)
	if err != nil {
		return model.Rental{}, err
	}
	video, err := s.repo.GetVideo(ctx, req.VideoID)
	if err != nil {
		return model.Rental{}, err
	}
	if req.Quantity > video.Quantity {
		return model.Rental{}, errors.Wrapf(errs.ErrValidation,
			"quantity %d exceeds stock %d", req.Quantity, video.Quantity)
	}
	unit, err := pricing.UnitPrice(video.Category)
	if err != nil {
		return model.Rental{}, err
	}

	now := time.Now().UTC()
	created, err := s.repo.CreateRental(ctx, model.Rental{
		CustomerID: customer.ID,
		VideoID:    video.ID,
		Price:      unit * float64(req.Quantity),
		Quantity:   req.Quantity,
		BorrowedAt: now,
		OverdueAt:  now.AddDate(0, 0, video.RentDays),
	})
	if err != nil {
		return model.Rental{}, err
	}

	if fresh, err := s.repo.GetVideo(ctx, video.ID); err == nil {
		video = fresh
	} else {
		s.log.Warn("Rent: refetch video", zap.Int("videoId", video.ID), zap.Error(err))
	}
	created.Customer = &customer
	created.Video = &video
	return created, nil
}

// Return is the only transition out of the active state. The overdue
// surcharge is added once here; the total never decreases. Stock is not
// restored on return.
func (s *Service) Return(ctx context.Context, id int) (model.Rental, error) {
	rental, err := s.repo.GetRental(ctx, id)
	if err != nil {
		return model.Rental{}, err
	}
	if rental.Returned {
		return model.Rental{}, errors.Wrap(errs.ErrConflict, "rental is already returned")
	}

	now := time.Now().UTC()
	charge := pricing.OverdueCharge(rental.OverdueAt, now, pricing.DailyOverdueRate)
	if err := s.repo.CompleteReturn(ctx, rental.ID, rental.Version, now, rental.Price+charge); err != nil {
		return model.Rental{}, err
	}
	return s.repo.GetRental(ctx, id)
}
