package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/orderhub/order-api/internal/core/domain"
	"github.com/orderhub/order-api/internal/core/ports"
)

// CustomerHandler handles HTTP requests for customer operations.
type CustomerHandler struct {
	customers ports.CustomerService
}

func NewCustomerHandler(customers ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

type customerRequest struct {
	FullName string  `json:"full_name" validate:"required"`
	Email    string  `json:"email"     validate:"required,email"`
	Lat      float64 `json:"lat"       validate:"gte=-90,lte=90"`
	Lng      float64 `json:"lng"       validate:"gte=-180,lte=180"`
}

type customerResponse struct {
	ID       int64   `json:"id"`
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

type listCustomersResponse struct {
	Data       []customerResponse `json:"data"`
	NextCursor *string            `json:"next_cursor"`
}

func toCustomerResponse(c *domain.Customer) customerResponse {
	return customerResponse{
		ID:       c.ID,
		FullName: c.FullName,
		Email:    c.Email,
		Lat:      c.Location.Lat,
		Lng:      c.Location.Lng,
	}
}

func (r customerRequest) toInput() ports.CustomerInput {
	return ports.CustomerInput{FullName: r.FullName, Email: r.Email, Lat: r.Lat, Lng: r.Lng}
}

// Create handles POST /api/v1/customers.
//
// @Summary      Create a new customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      customerRequest  true  "Customer details"
// @Success      201   {object}  customerResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/v1/customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customer, err := h.customers.CreateCustomer(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toCustomerResponse(customer))
}

// List handles GET /api/v1/customers with cursor pagination.
//
// @Summary      List customers (cursor-based)
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query     int     false  "Items per page"
// @Param        cursor  query     string  false  "Opaque cursor from previous page"
// @Success      200     {object}  listCustomersResponse
// @Failure      400     {object}  errorResponse
// @Router       /api/v1/customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	var limit int
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be an integer")
		}
		limit = parsed
	}

	page, err := h.customers.ListCustomers(c.Request().Context(), ports.ListInput{
		Limit:  limit,
		Cursor: c.QueryParam("cursor"),
	})
	if err != nil {
		return err
	}

	data := make([]customerResponse, 0, len(page.Items))
	for _, cust := range page.Items {
		data = append(data, toCustomerResponse(cust))
	}
	return c.JSON(http.StatusOK, listCustomersResponse{Data: data, NextCursor: page.NextCursor})
}

// Get handles GET /api/v1/customers/:id.
//
// @Summary      Get customer by id
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Customer id"
// @Success      200  {object}  customerResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/customers/{id} [get]
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	customer, err := h.customers.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCustomerResponse(customer))
}

// Update handles PUT /api/v1/customers/:id.
//
// @Summary      Replace customer data
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int              true  "Customer id"
// @Param        body  body      customerRequest  true  "Customer details"
// @Success      200   {object}  customerResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/customers/{id} [put]
func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customer, err := h.customers.UpdateCustomer(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCustomerResponse(customer))
}

// Delete handles DELETE /api/v1/customers/:id.
//
// @Summary      Delete a customer
// @Tags         customers
// @Security     BearerAuth
// @Param        id  path  int  true  "Customer id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/customers/{id} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.customers.DeleteCustomer(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
