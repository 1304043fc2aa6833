package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/infosoft-ph/video-rental-service/internal/errs"
	"github.com/infosoft-ph/video-rental-service/internal/handler"
	service_mocks "github.com/infosoft-ph/video-rental-service/internal/handler/mocks"
	"github.com/infosoft-ph/video-rental-service/internal/model"
)

type mockSet struct {
	customers *service_mocks.MockCustomerService
	videos    *service_mocks.MockVideoService
	rentals   *service_mocks.MockRentalService
	reports   *service_mocks.MockReportService
}

func newTestRouter(t *testing.T) (*mockSet, http.Handler) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)

	m := &mockSet{
		customers: service_mocks.NewMockCustomerService(c),
		videos:    service_mocks.NewMockVideoService(c),
		rentals:   service_mocks.NewMockRentalService(c),
		reports:   service_mocks.NewMockReportService(c),
	}
	h := handler.New(m.customers, m.videos, m.rentals, m.reports, zap.NewExample().Named("test"))
	return m, h.NewRouter()
}

func TestHandler_RentVideo(t *testing.T) {
	t.Parallel()

	borrowed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	overdue := borrowed.AddDate(0, 0, 3)
	created := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	okRental := model.Rental{
		ID:         11,
		CustomerID: 7,
		VideoID:    3,
		Price:      100,
		Quantity:   2,
		BorrowedAt: borrowed,
		OverdueAt:  overdue,
		Version:    1,
		Customer: &model.Customer{
			ID: 7, FirstName: "Juan", LastName: "Dela Cruz", CreatedAt: created,
		},
		Video: &model.Video{
			ID: 3, Title: "Matrix", Category: "DVD", Price: 50, Quantity: 1, RentDays: 3, Version: 2,
		},
	}

	tests := []struct {
		name         string
		body         string
		mockBehavior func(m *mockSet)
		expectedCode int
		expectedBody string
	}{
		{
			name: "ok",
			body: `{"customerId":7,"videoId":3,"quantity":2}`,
			mockBehavior: func(m *mockSet) {
				m.rentals.EXPECT().
					Rent(context.Background(), model.RentRequest{CustomerID: 7, VideoID: 3, Quantity: 2}).
					Return(okRental, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"id":11,"customerId":7,"videoId":3,"price":100,"quantity":2,"borrowedAt":"2024-05-01T10:00:00Z","overdueAt":"2024-05-04T10:00:00Z","returned":false,"version":1,"customer":{"id":7,"firstName":"Juan","lastName":"Dela Cruz","createdAt":"2024-04-01T00:00:00Z"},"video":{"id":3,"title":"Matrix","category":"DVD","price":50,"quantity":1,"rentDays":3,"version":2}}`,
		},
		{
			name: "err. video not found",
			body: `{"customerId":7,"videoId":99,"quantity":1}`,
			mockBehavior: func(m *mockSet) {
				m.rentals.EXPECT().
					Rent(context.Background(), model.RentRequest{CustomerID: 7, VideoID: 99, Quantity: 1}).
					Return(model.Rental{}, errors.Wrap(errs.ErrNotFound, "video"))
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"video: not found"}`,
		},
		{
			name: "err. quantity exceeds stock",
			body: `{"customerId":7,"videoId":3,"quantity":5}`,
			mockBehavior: func(m *mockSet) {
				m.rentals.EXPECT().
					Rent(context.Background(), model.RentRequest{CustomerID: 7, VideoID: 3, Quantity: 5}).
					Return(model.Rental{}, errors.Wrapf(errs.ErrValidation, "quantity %d exceeds stock %d", 5, 1))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"quantity 5 exceeds stock 1: invalid input"}`,
		},
		{
			name:         "err. zero quantity rejected before service",
			body:         `{"customerId":7,"videoId":3,"quantity":0}`,
			mockBehavior: func(m *mockSet) {},
			expectedCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, router := newTestRouter(t)
			tt.mockBehavior(m)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/rentals/rent", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedBody != "" {
				require.Equal(t, tt.expectedBody, strings.TrimRight(rec.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_ReturnVideo(t *testing.T) {
	t.Parallel()

	t.Run("conflict on double return", func(t *testing.T) {
		t.Parallel()
		m, router := newTestRouter(t)
		m.rentals.EXPECT().
			Return(context.Background(), 11).
			Return(model.Rental{}, errors.Wrap(errs.ErrConflict, "rental is already returned"))

		req := httptest.NewRequest(http.MethodPut, "/api/v1/rentals/return/11", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusConflict, rec.Code)
		require.Equal(t, `{"message":"rental is already returned: conflict"}`, strings.TrimRight(rec.Body.String(), "\n"))
	})

	t.Run("bad id", func(t *testing.T) {
		t.Parallel()
		_, router := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPut, "/api/v1/rentals/return/abc", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_CreateVideo(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		m, router := newTestRouter(t)
		m.videos.EXPECT().
			CreateVideo(context.Background(), model.CreateVideoRequest{
				Title: "Matrix", Category: "DVD", Price: 50, Quantity: 3, RentDays: 3,
			}).
			Return(model.Video{ID: 3, Title: "Matrix", Category: "DVD", Price: 50, Quantity: 3, RentDays: 3, Version: 1}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/videos",
			strings.NewReader(`{"title":"Matrix","category":"DVD","price":50,"quantity":3,"rentDays":3}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t,
			`{"id":3,"title":"Matrix","category":"DVD","price":50,"quantity":3,"rentDays":3,"version":1}`,
			strings.TrimRight(rec.Body.String(), "\n"))
	})

	t.Run("err. bad category rejected by validator", func(t *testing.T) {
		t.Parallel()
		_, router := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/videos",
			strings.NewReader(`{"title":"Matrix","category":"BLURAY","price":50,"quantity":3,"rentDays":3}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("err. price mismatch", func(t *testing.T) {
		t.Parallel()
		m, router := newTestRouter(t)
		m.videos.EXPECT().
			CreateVideo(context.Background(), model.CreateVideoRequest{
				Title: "Matrix", Category: "VCD", Price: 50, Quantity: 3, RentDays: 3,
			}).
			Return(model.Video{}, errors.Wrap(errs.ErrValidation, "VCD must be priced at exactly 25"))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/videos",
			strings.NewReader(`{"title":"Matrix","category":"VCD","price":50,"quantity":3,"rentDays":3}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, `{"message":"VCD must be priced at exactly 25: invalid input"}`, strings.TrimRight(rec.Body.String(), "\n"))
	})
}

func TestHandler_UpdateCustomer(t *testing.T) {
	t.Parallel()

	t.Run("err. id mismatch", func(t *testing.T) {
		t.Parallel()
		_, router := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPut, "/api/v1/customers/7",
			strings.NewReader(`{"id":8,"firstName":"Juan","lastName":"Dela Cruz"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, `{"message":"id in path and body differ"}`, strings.TrimRight(rec.Body.String(), "\n"))
	})
}

func TestHandler_CustomerRentalsReport(t *testing.T) {
	t.Parallel()

	created := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("ok. empty list, not 404", func(t *testing.T) {
		t.Parallel()
		m, router := newTestRouter(t)
		m.reports.EXPECT().
			CustomerRentals(context.Background(), 7).
			Return(model.CustomerRentalReport{
				Customer:       model.Customer{ID: 7, FirstName: "Juan", LastName: "Dela Cruz", CreatedAt: created},
				CurrentRentals: []model.CustomerRental{},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/customer-rentals/7", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t,
			`{"customer":{"id":7,"firstName":"Juan","lastName":"Dela Cruz","createdAt":"2024-04-01T00:00:00Z"},"currentRentals":[]}`,
			strings.TrimRight(rec.Body.String(), "\n"))
	})

	t.Run("err. unknown customer", func(t *testing.T) {
		t.Parallel()
		m, router := newTestRouter(t)
		m.reports.EXPECT().
			CustomerRentals(context.Background(), 99).
			Return(model.CustomerRentalReport{}, errors.Wrap(errs.ErrNotFound, "customer"))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/customer-rentals/99", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_InternalErrorBodyIsGeneric(t *testing.T) {
	t.Parallel()

	m, router := newTestRouter(t)
	m.customers.EXPECT().
		GetCustomer(context.Background(), 7).
		Return(model.Customer{}, errors.New("pq: connection reset by peer"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, `{"message":"internal server error"}`, strings.TrimRight(rec.Body.String(), "\n"))
	require.NotContains(t, rec.Body.String(), "pq:")
}

func TestHandler_VideoInventoryReport(t *testing.T) {
	t.Parallel()

	m, router := newTestRouter(t)
	m.reports.EXPECT().
		VideoInventory(context.Background()).
		Return([]model.InventoryReportRow{
			{ID: 3, Title: "Alien", Category: "VCD", TotalQuantity: 2, QuantityRented: 0, QuantityInside: 2},
			{ID: 1, Title: "Matrix", Category: "DVD", TotalQuantity: 3, QuantityRented: 1, QuantityInside: 2},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/video-inventory", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t,
		`[{"id":3,"title":"Alien","category":"VCD","totalQuantity":2,"quantityRented":0,"quantityInside":2},{"id":1,"title":"Matrix","category":"DVD","totalQuantity":3,"quantityRented":1,"quantityInside":2}]`,
		strings.TrimRight(rec.Body.String(), "\n"))
}
