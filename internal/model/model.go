package model

import (
	"time"
)

const (
	CategoryDVD = "DVD"
	CategoryVCD = "VCD"
)

type Customer struct {
	ID        int       `json:"id" db:"id"`
	FirstName string    `json:"firstName" db:"first_name"`
	LastName  string    `json:"lastName" db:"last_name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type CreateCustomerRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

type UpdateCustomerRequest struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

type Video struct {
	ID       int     `json:"id" db:"id"`
	Title    string  `json:"title" db:"title"`
	Category string  `json:"category" db:"category"`
	Price    float64 `json:"price" db:"price"`
	Quantity int     `json:"quantity" db:"quantity"`
	RentDays int     `json:"rentDays" db:"rent_days"`
	Version  int     `json:"version" db:"version"`
}

type CreateVideoRequest struct {
	Title    string  `json:"title" validate:"required"`
	Category string  `json:"category" validate:"required,oneof=DVD VCD"`
	Price    float64 `json:"price" validate:"required"`
	Quantity int     `json:"quantity" validate:"min=0"`
	RentDays int     `json:"rentDays" validate:"required,min=1,max=3"`
}

// UpdateVideoRequest carries the version the client read; a stale version
// is rejected with a conflict instead of overwriting a concurrent update.
type UpdateVideoRequest struct {
	ID       int     `json:"id"`
	Title    string  `json:"title" validate:"required"`
	Category string  `json:"category" validate:"required,oneof=DVD VCD"`
	Price    float64 `json:"price" validate:"required"`
	Quantity int     `json:"quantity" validate:"min=0"`
	RentDays int     `json:"rentDays" validate:"required,min=1,max=3"`
	Version  int     `json:"version" validate:"required,min=1"`
}

type Rental struct {
	ID         int        `json:"id" db:"id"`
	CustomerID int        `json:"customerId" db:"customer_id"`
	VideoID    int        `json:"videoId" db:"video_id"`
	Price      float64    `json:"price" db:"price"`
	Quantity   int        `json:"quantity" db:"quantity"`
	BorrowedAt time.Time  `json:"borrowedAt" db:"borrowed_at"`
	OverdueAt  time.Time  `json:"overdueAt" db:"overdue_at"`
	ReturnedAt *time.Time `json:"returnedAt,omitempty" db:"returned_at"`
	Returned   bool       `json:"returned" db:"returned"`
	Version    int        `json:"version" db:"version"`

	Customer *Customer `json:"customer,omitempty" db:"-"`
	Video    *Video    `json:"video,omitempty" db:"-"`
}

type RentRequest struct {
	CustomerID int `json:"customerId" validate:"required,min=1"`
	VideoID    int `json:"videoId" validate:"required,min=1"`
	Quantity   int `json:"quantity" validate:"required,min=1"`
}

type InventoryReportRow struct {
	ID             int    `json:"id" db:"id"`
	Title          string `json:"title" db:"title"`
	Category       string `json:"category" db:"category"`
	TotalQuantity  int    `json:"totalQuantity" db:"total_quantity"`
	QuantityRented int    `json:"quantityRented" db:"quantity_rented"`
	QuantityInside int    `json:"quantityInside" db:"quantity_inside"`
}

type CustomerRental struct {
	RentalID      int       `json:"rentalId" db:"rental_id"`
	Title         string    `json:"title" db:"title"`
	Category      string    `json:"category" db:"category"`
	Price         float64   `json:"price" db:"price"`
	Quantity      int       `json:"quantity" db:"quantity"`
	OverdueAt     time.Time `json:"overdueAt" db:"overdue_at"`
	DaysRemaining int       `json:"daysRemaining" db:"-"`
}

type CustomerRentalReport struct {
	Customer       Customer         `json:"customer"`
	CurrentRentals []CustomerRental `json:"currentRentals"`
}
