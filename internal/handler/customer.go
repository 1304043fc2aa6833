package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/infosoft-ph/video-rental-service/internal/model"
)

// GetCustomers godoc
// @Summary List customers
// @Tags customers
// @Produce json
// @Success 200 {array} model.Customer
// @Router /customers [get]
func (h *Handler) GetCustomers(c echo.Context) error {
	customers, err := h.customerSvc.ListCustomers(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, customers)
}

// GetCustomer godoc
// @Summary Get customer by id
// @Tags customers
// @Produce json
// @Param id path int true "customer id"
// @Success 200 {object} model.Customer
// @Failure 404 {object} echo.HTTPError
// @Router /customers/{id} [get]
func (h *Handler) GetCustomer(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	customer, err := h.customerSvc.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, customer)
}

// CreateCustomer godoc
// @Summary Create customer
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body model.CreateCustomerRequest true "customer"
// @Success 201 {object} model.Customer
// @Failure 400 {object} echo.HTTPError
// @Router /customers [post]
func (h *Handler) CreateCustomer(c echo.Context) error {
	var req model.CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	customer, err := h.customerSvc.CreateCustomer(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, customer)
}

// UpdateCustomer godoc
// @Summary Update customer names
// @Tags customers
// @Accept json
// @Produce json
// @Param id path int true "customer id"
// @Param customer body model.UpdateCustomerRequest true "customer"
// @Success 200 {object} model.Customer
// @Failure 400 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Router /customers/{id} [put]
func (h *Handler) UpdateCustomer(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req model.UpdateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.ID != 0 && req.ID != id {
		return echo.NewHTTPError(http.StatusBadRequest, "id in path and body differ")
	}
	req.ID = id
	if err := c.Validate(req); err != nil {
		return err
	}
	customer, err := h.customerSvc.UpdateCustomer(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, customer)
}

// DeleteCustomer godoc
// @Summary Delete customer
// @Tags customers
// @Param id path int true "customer id"
// @Success 204
// @Failure 404 {object} echo.HTTPError
// @Router /customers/{id} [delete]
func (h *Handler) DeleteCustomer(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.customerSvc.DeleteCustomer(c.Request().Context(), id); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
