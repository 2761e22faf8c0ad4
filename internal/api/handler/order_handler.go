package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/orderhub/order-api/internal/core/domain"
	"github.com/orderhub/order-api/internal/core/ports"
)

// OrderHandler handles HTTP requests for order operations.
type OrderHandler struct {
	orders ports.OrderService
	eta    ports.ETAService
}

func NewOrderHandler(orders ports.OrderService, eta ports.ETAService) *OrderHandler {
	return &OrderHandler{orders: orders, eta: eta}
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// Create handles POST /api/v1/orders.
//
// @Summary      Create a new order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Order details"
// @Success      201   {object}  orderResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.orders.CreateOrder(c.Request().Context(), ports.CreateOrderInput{
		CustomerID: req.CustomerID,
		Items:      toItemInputs(req.Items),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toOrderResponse(order))
}

// List handles GET /api/v1/orders with cursor pagination.
//
// @Summary      List orders (cursor-based)
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query     int     false  "Items per page"
// @Param        cursor  query     string  false  "Opaque cursor from previous page"
// @Success      200     {object}  listOrdersResponse
// @Failure      400     {object}  errorResponse
// @Router       /api/v1/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	var limit int
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be an integer")
		}
		limit = parsed
	}

	page, err := h.orders.ListOrders(c.Request().Context(), ports.ListInput{
		Limit:  limit,
		Cursor: c.QueryParam("cursor"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListOrdersResponse(page))
}

// Get handles GET /api/v1/orders/:id.
//
// @Summary      Get order by id
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Order id"
// @Success      200  {object}  orderResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	order, err := h.orders.GetOrder(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(order))
}

// Replace handles PUT /api/v1/orders/:id.
//
// @Summary      Replace an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Order id"
// @Param        body  body      replaceOrderRequest  true  "New status and items"
// @Success      200   {object}  orderResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/orders/{id} [put]
func (h *OrderHandler) Replace(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req replaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.orders.ReplaceOrder(c.Request().Context(), id, ports.ReplaceOrderInput{
		Status: req.Status,
		Items:  toItemInputs(req.Items),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(order))
}

// UpdateStatus handles PATCH /api/v1/orders/:id.
//
// @Summary      Update order status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Order id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  orderResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/v1/orders/{id} [patch]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.orders.UpdateOrderStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(order))
}

// Cancel handles POST /api/v1/orders/:id/cancel.
//
// @Summary      Cancel an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Order id"
// @Success      200  {object}  orderResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /api/v1/orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	order, err := h.orders.CancelOrder(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(order))
}

// Delete handles DELETE /api/v1/orders/:id.
//
// @Summary      Delete an order
// @Tags         orders
// @Security     BearerAuth
// @Param        id  path  int  true  "Order id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.orders.DeleteOrder(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateAddress handles PATCH /api/v1/orders/:id/address. It moves the
// customer's delivery coordinate and returns the recalculated estimate.
//
// @Summary      Update delivery address
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Order id"
// @Param        body  body      updateAddressRequest  true  "New coordinates"
// @Success      200   {object}  etaResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/orders/{id}/address [patch]
func (h *OrderHandler) UpdateAddress(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req updateAddressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.orders.UpdateOrderAddress(c.Request().Context(), id, domain.Coordinate{Lat: req.Lat, Lng: req.Lng})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEtaResponse(result))
}

// Eta handles GET /api/v1/orders/:id/eta.
//
// @Summary      Get ETA for an order
// @Description  Returns distance from warehouse to customer, estimated
// @Description  delivery time, CO2 footprint, and the id of another pending
// @Description  order close enough to merge into one trip.
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Order id"
// @Success      200  {object}  etaResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/orders/{id}/eta [get]
func (h *OrderHandler) Eta(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	result, err := h.eta.EstimateOrder(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEtaResponse(result))
}
