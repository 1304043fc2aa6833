package service

import (
	"context"
	"time"

	"github.com/infosoft-ph/video-rental-service/internal/model"
	"github.com/infosoft-ph/video-rental-service/internal/pricing"
)

func (s *Service) VideoInventory(ctx context.Context) ([]model.InventoryReportRow, error) {
	return s.repo.VideoInventory(ctx)
}

func (s *Service) CustomerRentals(ctx context.Context, customerID int) (model.CustomerRentalReport, error) {
	customer, err := s.repo.GetCustomer(ctx, customerID)
	if err != nil {
		return model.CustomerRentalReport{}, err
	}

	rentals, err := s.repo.ActiveRentalsByCustomer(ctx, customerID)
	if err != nil {
		return model.CustomerRentalReport{}, err
	}

	now := time.Now().UTC()
	for i := range rentals {
		rentals[i].DaysRemaining = pricing.DaysRemaining(rentals[i].OverdueAt, now)
	}
	if rentals == nil {
		rentals = []model.CustomerRental{}
	}

	return model.CustomerRentalReport{
		Customer:       customer,
		CurrentRentals: rentals,
	}, nil
}
