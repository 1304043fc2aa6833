package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/infosoft-ph/video-rental-service/internal/errs"
	"github.com/infosoft-ph/video-rental-service/internal/model"
	"github.com/infosoft-ph/video-rental-service/internal/service"
)

type repoMock struct {
	listCustomersFn  func(ctx context.Context) ([]model.Customer, error)
	getCustomerFn    func(ctx context.Context, id int) (model.Customer, error)
	createCustomerFn func(ctx context.Context, customer model.Customer) (model.Customer, error)
	updateCustomerFn func(ctx context.Context, customer model.Customer) (model.Customer, error)
	deleteCustomerFn func(ctx context.Context, id int) error

	listVideosFn  func(ctx context.Context) ([]model.Video, error)
	getVideoFn    func(ctx context.Context, id int) (model.Video, error)
	createVideoFn func(ctx context.Context, video model.Video) (model.Video, error)
	updateVideoFn func(ctx context.Context, video model.Video) (model.Video, error)
	deleteVideoFn func(ctx context.Context, id int) error

	listRentalsFn    func(ctx context.Context) ([]model.Rental, error)
	getRentalFn      func(ctx context.Context, id int) (model.Rental, error)
	createRentalFn   func(ctx context.Context, rental model.Rental) (model.Rental, error)
	completeReturnFn func(ctx context.Context, id, version int, returnedAt time.Time, newPrice float64) error

	videoInventoryFn          func(ctx context.Context) ([]model.InventoryReportRow, error)
	activeRentalsByCustomerFn func(ctx context.Context, customerID int) ([]model.CustomerRental, error)
}

func (m *repoMock) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	return m.listCustomersFn(ctx)
}

func (m *repoMock) GetCustomer(ctx context.Context, id int) (model.Customer, error) {
	return m.getCustomerFn(ctx, id)
}

func (m *repoMock) CreateCustomer(ctx context.Context, customer model.Customer) (model.Customer, error) {
	return m.createCustomerFn(ctx, customer)
}

func (m *repoMock) UpdateCustomer(ctx context.Context, customer model.Customer) (model.Customer, error) {
	return m.updateCustomerFn(ctx, customer)
}

func (m *repoMock) DeleteCustomer(ctx context.Context, id int) error {
	return m.deleteCustomerFn(ctx, id)
}

func (m *repoMock) ListVideos(ctx context.Context) ([]model.Video, error) {
	return m.listVideosFn(ctx)
}

func (m *repoMock) GetVideo(ctx context.Context, id int) (model.Video, error) {
	return m.getVideoFn(ctx, id)
}

func (m *repoMock) CreateVideo(ctx context.Context, video model.Video) (model.Video, error) {
	return m.createVideoFn(ctx, video)
}

func (m *repoMock) UpdateVideo(ctx context.Context, video model.Video) (model.Video, error) {
	return m.updateVideoFn(ctx, video)
}

func (m *repoMock) DeleteVideo(ctx context.Context, id int) error {
	return m.deleteVideoFn(ctx, id)
}

func (m *repoMock) ListRentals(ctx context.Context) ([]model.Rental, error) {
	return m.listRentalsFn(ctx)
}

func (m *repoMock) GetRental(ctx context.Context, id int) (model.Rental, error) {
	return m.getRentalFn(ctx, id)
}

func (m *repoMock) CreateRental(ctx context.Context, rental model.Rental) (model.Rental, error) {
	return m.createRentalFn(ctx, rental)
}

func (m *repoMock) CompleteReturn(ctx context.Context, id, version int, returnedAt time.Time, newPrice float64) error {
	return m.completeReturnFn(ctx, id, version, returnedAt, newPrice)
}

func (m *repoMock) VideoInventory(ctx context.Context) ([]model.InventoryReportRow, error) {
	return m.videoInventoryFn(ctx)
}

func (m *repoMock) ActiveRentalsByCustomer(ctx context.Context, customerID int) ([]model.CustomerRental, error) {
	return m.activeRentalsByCustomerFn(ctx, customerID)
}

func newService(m *repoMock) *service.Service {
	return service.NewService(m, zap.NewExample().Named("test"))
}

func TestRent(t *testing.T) {
	t.Parallel()

	customer := model.Customer{ID: 7, FirstName: "Juan", LastName: "Dela Cruz"}
	video := model.Video{ID: 3, Title: "Matrix", Category: "DVD", Price: 50, Quantity: 3, RentDays: 3, Version: 1}

	t.Run("charges unit price times quantity and sets due date", func(t *testing.T) {
		t.Parallel()

		var inserted model.Rental
		m := &repoMock{
			getCustomerFn: func(ctx context.Context, id int) (model.Customer, error) {
				require.Equal(t, 7, id)
				return customer, nil
			},
			getVideoFn: func(ctx context.Context, id int) (model.Video, error) {
				return video, nil
			},
			createRentalFn: func(ctx context.Context, rental model.Rental) (model.Rental, error) {
				inserted = rental
				rental.ID = 11
				rental.Version = 1
				return rental, nil
			},
		}
		before := time.Now().UTC()
		got, err := newService(m).Rent(context.Background(), model.RentRequest{CustomerID: 7, VideoID: 3, Quantity: 2})
		require.NoError(t, err)

		require.Equal(t, 100.0, inserted.Price)
		require.Equal(t, 2, inserted.Quantity)
		require.False(t, inserted.BorrowedAt.Before(before))
		require.Equal(t, inserted.BorrowedAt.AddDate(0, 0, 3), inserted.OverdueAt)
		require.False(t, inserted.Returned)
		require.Nil(t, inserted.ReturnedAt)

		require.Equal(t, 11, got.ID)
		require.NotNil(t, got.Customer)
		require.NotNil(t, got.Video)
	})

	t.Run("vcd unit price", func(t *testing.T) {
		t.Parallel()

		vcd := video
		vcd.Category = "VCD"
		vcd.Price = 25
		m := &repoMock{
			getCustomerFn: func(ctx context.Context, id int) (model.Customer, error) { return customer, nil },
			getVideoFn:    func(ctx context.Context, id int) (model.Video, error) { return vcd, nil },
			createRentalFn: func(ctx context.Context, rental model.Rental) (model.Rental, error) {
				require.Equal(t, 75.0, rental.Price)
				return rental, nil
			},
		}
		_, err := newService(m).Rent(context.Background(), model.RentRequest{CustomerID: 7, VideoID: 3, Quantity: 3})
		require.NoError(t, err)
	})

	t.Run("err. unknown customer", func(t *testing.T) {
		t.Parallel()

		m := &repoMock{
			getCustomerFn: func(ctx context.Context, id int) (model.Customer, error) {
				return model.Customer{}, errors.Wrap(errs.ErrNotFound, "customer")
			},
		}
		_, err := newService(m).Rent(context.Background(), model.RentRequest{CustomerID: 99, VideoID: 3, Quantity: 1})
		require.True(t, errors.Is(err, errs.ErrNotFound))
	})

	t.Run("err. quantity exceeds stock", func(t *testing.T) {
		t.Parallel()

		m := &repoMock{
			getCustomerFn: func(ctx context.Context, id int) (model.Customer, error) { return customer, nil },
			getVideoFn:    func(ctx context.Context, id int) (model.Video, error) { return video, nil },
		}
		_, err := newService(m).Rent(context.Background(), model.RentRequest{CustomerID: 7, VideoID: 3, Quantity: 4})
		require.True(t, errors.Is(err, errs.ErrValidation))
	})

	t.Run("err. quantity below one", func(t *testing.T) {
		t.Parallel()

		_, err := newService(&repoMock{}).Rent(context.Background(), model.RentRequest{CustomerID: 7, VideoID: 3, Quantity: 0})
		require.True(t, errors.Is(err, errs.ErrValidation))
	})
}

func TestReturn(t *testing.T) {
	t.Parallel()

	active := model.Rental{
		ID:         11,
		CustomerID: 7,
		VideoID:    3,
		Price:      100,
		Quantity:   2,
		BorrowedAt: time.Now().UTC().AddDate(0, 0, -5),
		OverdueAt:  time.Now().UTC().AddDate(0, 0, -2),
		Version:    1,
	}

	t.Run("adds overdue surcharge, never decreases the total", func(t *testing.T) {
		t.Parallel()

		var priceOnReturn float64
		m := &repoMock{
			getRentalFn: func(ctx context.Context, id int) (model.Rental, error) { return active, nil },
			completeReturnFn: func(ctx context.Context, id, version int, returnedAt time.Time, newPrice float64) error {
				require.Equal(t, 11, id)
				require.Equal(t, 1, version)
				priceOnReturn = newPrice
				return nil
			},
		}
		_, err := newService(m).Return(context.Background(), 11)
		require.NoError(t, err)
		// two days past due at 5 per day
		require.Equal(t, 110.0, priceOnReturn)
	})

	t.Run("on-time return keeps the price", func(t *testing.T) {
		t.Parallel()

		onTime := active
		onTime.OverdueAt = time.Now().UTC().AddDate(0, 0, 1)
		m := &repoMock{
			getRentalFn: func(ctx context.Context, id int) (model.Rental, error) { return onTime, nil },
			completeReturnFn: func(ctx context.Context, id, version int, returnedAt time.Time, newPrice float64) error {
				require.Equal(t, 100.0, newPrice)
				return nil
			},
		}
		_, err := newService(m).Return(context.Background(), 11)
		require.NoError(t, err)
	})

	t.Run("err. already returned", func(t *testing.T) {
		t.Parallel()

		returned := active
		returned.Returned = true
		m := &repoMock{
			getRentalFn: func(ctx context.Context, id int) (model.Rental, error) { return returned, nil },
		}
		_, err := newService(m).Return(context.Background(), 11)
		require.True(t, errors.Is(err, errs.ErrConflict))
	})

	t.Run("err. missing rental", func(t *testing.T) {
		t.Parallel()

		m := &repoMock{
			getRentalFn: func(ctx context.Context, id int) (model.Rental, error) {
				return model.Rental{}, errors.Wrap(errs.ErrNotFound, "rental")
			},
		}
		_, err := newService(m).Return(context.Background(), 99)
		require.True(t, errors.Is(err, errs.ErrNotFound))
	})
}

func TestCreateVideo_Validation(t *testing.T) {
	t.Parallel()

	svc := newService(&repoMock{
		createVideoFn: func(ctx context.Context, video model.Video) (model.Video, error) {
			return video, nil
		},
	})

	tests := []struct {
		name    string
		req     model.CreateVideoRequest
		wantErr bool
	}{
		{"dvd at 50", model.CreateVideoRequest{Title: "Matrix", Category: "DVD", Price: 50, Quantity: 3, RentDays: 3}, false},
		{"vcd at 25", model.CreateVideoRequest{Title: "Alien", Category: "VCD", Price: 25, Quantity: 1, RentDays: 1}, false},
		{"bad category", model.CreateVideoRequest{Title: "Matrix", Category: "BLURAY", Price: 50, Quantity: 3, RentDays: 3}, true},
		{"dvd at wrong price", model.CreateVideoRequest{Title: "Matrix", Category: "DVD", Price: 25, Quantity: 3, RentDays: 3}, true},
		{"vcd at wrong price", model.CreateVideoRequest{Title: "Alien", Category: "VCD", Price: 50, Quantity: 3, RentDays: 3}, true},
		{"rent days too long", model.CreateVideoRequest{Title: "Matrix", Category: "DVD", Price: 50, Quantity: 3, RentDays: 4}, true},
		{"rent days zero", model.CreateVideoRequest{Title: "Matrix", Category: "DVD", Price: 50, Quantity: 3, RentDays: 0}, true},
		{"negative quantity", model.CreateVideoRequest{Title: "Matrix", Category: "DVD", Price: 50, Quantity: -1, RentDays: 3}, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.CreateVideo(context.Background(), tt.req)
			if tt.wantErr {
				require.True(t, errors.Is(err, errs.ErrValidation))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCreateCustomer_Validation(t *testing.T) {
	t.Parallel()

	svc := newService(&repoMock{
		createCustomerFn: func(ctx context.Context, customer model.Customer) (model.Customer, error) {
			require.False(t, customer.CreatedAt.IsZero())
			return customer, nil
		},
	})

	_, err := svc.CreateCustomer(context.Background(), model.CreateCustomerRequest{FirstName: "Juan", LastName: "Dela Cruz"})
	require.NoError(t, err)

	_, err = svc.CreateCustomer(context.Background(), model.CreateCustomerRequest{FirstName: "  ", LastName: "Dela Cruz"})
	require.True(t, errors.Is(err, errs.ErrValidation))

	_, err = svc.CreateCustomer(context.Background(), model.CreateCustomerRequest{FirstName: "Juan"})
	require.True(t, errors.Is(err, errs.ErrValidation))
}

func TestCustomerRentals(t *testing.T) {
	t.Parallel()

	customer := model.Customer{ID: 7, FirstName: "Juan", LastName: "Dela Cruz"}

	t.Run("empty list for a customer with no active rentals", func(t *testing.T) {
		t.Parallel()

		m := &repoMock{
			getCustomerFn: func(ctx context.Context, id int) (model.Customer, error) { return customer, nil },
			activeRentalsByCustomerFn: func(ctx context.Context, customerID int) ([]model.CustomerRental, error) {
				return nil, nil
			},
		}
		report, err := newService(m).CustomerRentals(context.Background(), 7)
		require.NoError(t, err)
		require.NotNil(t, report.CurrentRentals)
		require.Empty(t, report.CurrentRentals)
	})

	t.Run("days remaining is negative when overdue", func(t *testing.T) {
		t.Parallel()

		m := &repoMock{
			getCustomerFn: func(ctx context.Context, id int) (model.Customer, error) { return customer, nil },
			activeRentalsByCustomerFn: func(ctx context.Context, customerID int) ([]model.CustomerRental, error) {
				return []model.CustomerRental{
					{RentalID: 11, Title: "Matrix", OverdueAt: time.Now().UTC().AddDate(0, 0, -2)},
					{RentalID: 12, Title: "Alien", OverdueAt: time.Now().UTC().AddDate(0, 0, 3)},
				}, nil
			},
		}
		report, err := newService(m).CustomerRentals(context.Background(), 7)
		require.NoError(t, err)
		require.Len(t, report.CurrentRentals, 2)
		require.Equal(t, -2, report.CurrentRentals[0].DaysRemaining)
		require.Equal(t, 3, report.CurrentRentals[1].DaysRemaining)
	})

	t.Run("err. unknown customer", func(t *testing.T) {
		t.Parallel()

		m := &repoMock{
			getCustomerFn: func(ctx context.Context, id int) (model.Customer, error) {
				return model.Customer{}, errors.Wrap(errs.ErrNotFound, "customer")
			},
		}
		_, err := newService(m).CustomerRentals(context.Background(), 99)
		require.True(t, errors.Is(err, errs.ErrNotFound))
	})
}
