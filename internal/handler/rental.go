package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/infosoft-ph/video-rental-service/internal/model"
)

// GetRentals godoc
// @Summary List rentals with nested customer and video
// @Tags rentals
// @Produce json
// @Success 200 {array} model.Rental
// @Router /rentals [get]
func (h *Handler) GetRentals(c echo.Context) error {
	rentals, err := h.rentalSvc.ListRentals(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, rentals)
}

// GetRental godoc
// @Summary Get rental by id
// @Tags rentals
// @Produce json
// @Param id path int true "rental id"
// @Success 200 {object} model.Rental
// @Failure 404 {object} echo.HTTPError
// @Router /rentals/{id} [get]
func (h *Handler) GetRental(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	rental, err := h.rentalSvc.GetRental(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, rental)
}

// RentVideo godoc
// @Summary Rent a video
// @Description Charges unit price times quantity and decrements stock atomically with the insert.
// @Tags rentals
// @Accept json
// @Produce json
// @Param rental body model.RentRequest true "rental"
// @Success 201 {object} model.Rental
// @Failure 400 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Router /rentals/rent [post]
func (h *Handler) RentVideo(c echo.Context) error {
	var req model.RentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	rental, err := h.rentalSvc.Rent(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, rental)
}

// ReturnVideo godoc
// @Summary Return a rented video
// @Description Applies the per-day overdue surcharge. Returning an already returned rental is a conflict.
// @Tags rentals
// @Produce json
// @Param id path int true "rental id"
// @Success 200 {object} model.Rental
// @Failure 404 {object} echo.HTTPError
// @Failure 409 {object} echo.HTTPError
// @Router /rentals/return/{id} [put]
func (h *Handler) ReturnVideo(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	rental, err := h.rentalSvc.Return(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, rental)
}
