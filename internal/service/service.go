package service

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/infosoft-ph/video-rental-service/internal/errs"
	"github.com/infosoft-ph/video-rental-service/internal/model"
	"github.com/infosoft-ph/video-rental-service/internal/pricing"
	"github.com/infosoft-ph/video-rental-service/internal/repository"
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository
}

func NewService(repo repository.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

func (s *Service) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	return s.repo.ListCustomers(ctx)
}

func (s *Service) GetCustomer(ctx context.Context, id int) (model.Customer, error) {
	return s.repo.GetCustomer(ctx, id)
}

func (s *Service) CreateCustomer(ctx context.Context, req model.CreateCustomerRequest) (model.Customer, error) {
	if err := validateNames(req.FirstName, req.LastName); err != nil {
		return model.Customer{}, err
	}
	return s.repo.CreateCustomer(ctx, model.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *Service) UpdateCustomer(ctx context.Context, req model.UpdateCustomerRequest) (model.Customer, error) {
	if err := validateNames(req.FirstName, req.LastName); err != nil {
		return model.Customer{}, err
	}
	return s.repo.UpdateCustomer(ctx, model.Customer{
		ID:        req.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
}

func (s *Service) DeleteCustomer(ctx context.Context, id int) error {
	return s.repo.DeleteCustomer(ctx, id)
}

func validateNames(firstName, lastName string) error {
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return errors.Wrap(errs.ErrValidation, "first and last name are required")
	}
	return nil
}

func (s *Service) ListVideos(ctx context.Context) ([]model.Video, error) {
	return s.repo.ListVideos(ctx)
}

func (s *Service) GetVideo(ctx context.Context, id int) (model.Video, error) {
	return s.repo.GetVideo(ctx, id)
}

func (s *Service) CreateVideo(ctx context.Context, req model.CreateVideoRequest) (model.Video, error) {
	if err := validateVideoAttrs(req.Category, req.Price, req.Quantity, req.RentDays); err != nil {
		return model.Video{}, err
	}
	return s.repo.CreateVideo(ctx, model.Video{
		Title:    req.Title,
		Category: req.Category,
		Price:    req.Price,
		Quantity: req.Quantity,
		RentDays: req.RentDays,
	})
}

func (s *Service) UpdateVideo(ctx context.Context, req model.UpdateVideoRequest) (model.Video, error) {
	if err := validateVideoAttrs(req.Category, req.Price, req.Quantity, req.RentDays); err != nil {
		return model.Video{}, err
	}
	return s.repo.UpdateVideo(ctx, model.Video{
		ID:       req.ID,
		Title:    req.Title,
		Category: req.Category,
		Price:    req.Price,
		Quantity: req.Quantity,
		RentDays: req.RentDays,
		Version:  req.Version,
	})
}

func (s *Service) DeleteVideo(ctx context.Context, id int) error {
	return s.repo.DeleteVideo(ctx, id)
}

func validateVideoAttrs(category string, price float64, quantity, rentDays int) error {
	unit, err := pricing.UnitPrice(category)
	if err != nil {
		return err
	}
	if price != unit {
		return errors.Wrapf(errs.ErrValidation, "%s must be priced at exactly %v", category, unit)
	}
	if rentDays < 1 || rentDays > 3 {
		return errors.Wrap(errs.ErrValidation, "rentDays must be between 1 and 3")
	}
	if quantity < 0 {
		return errors.Wrap(errs.ErrValidation, "quantity must not be negative")
	}
	return nil
}
