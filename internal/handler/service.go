package handler

import (
	"context"

	"github.com/infosoft-ph/video-rental-service/internal/model"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=service_mocks

type CustomerService interface {
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	GetCustomer(ctx context.Context, id int) (model.Customer, error)
	CreateCustomer(ctx context.Context, req model.CreateCustomerRequest) (model.Customer, error)
	UpdateCustomer(ctx context.Context, req model.UpdateCustomerRequest) (model.Customer, error)
	DeleteCustomer(ctx context.Context, id int) error
}

type VideoService interface {
	ListVideos(ctx context.Context) ([]model.Video, error)
	GetVideo(ctx context.Context, id int) (model.Video, error)
	CreateVideo(ctx context.Context, req model.CreateVideoRequest) (model.Video, error)
	UpdateVideo(ctx context.Context, req model.UpdateVideoRequest) (model.Video, error)
	DeleteVideo(ctx context.Context, id int) error
}

type RentalService interface {
	ListRentals(ctx context.Context) ([]model.Rental, error)
	GetRental(ctx context.Context, id int) (model.Rental, error)
	Rent(ctx context.Context, req model.RentRequest) (model.Rental, error)
	Return(ctx context.Context, id int) (model.Rental, error)
}

type ReportService interface {
	VideoInventory(ctx context.Context) ([]model.InventoryReportRow, error)
	CustomerRentals(ctx context.Context, customerID int) (model.CustomerRentalReport, error)
}
