package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// VideoInventoryReport godoc
// @Summary Inventory availability per video, ordered by title
// @Tags reports
// @Produce json
// @Success 200 {array} model.InventoryReportRow
// @Router /reports/video-inventory [get]
func (h *Handler) VideoInventoryReport(c echo.Context) error {
	report, err := h.reportSvc.VideoInventory(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, report)
}

// CustomerRentalsReport godoc
// @Summary Active rentals for a customer
// @Description A customer without active rentals gets an empty list, not a 404.
// @Tags reports
// @Produce json
// @Param customerId path int true "customer id"
// @Success 200 {object} model.CustomerRentalReport
// @Failure 404 {object} echo.HTTPError
// @Router /reports/customer-rentals/{customerId} [get]
func (h *Handler) CustomerRentalsReport(c echo.Context) error {
	customerID, err := pathID(c, "customerId")
	if err != nil {
		return err
	}
	report, err := h.reportSvc.CustomerRentals(c.Request().Context(), customerID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, report)
}
