package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/orderhub/order-api/internal/core/domain"
	"github.com/orderhub/order-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for product operations.
type ProductHandler struct {
	products ports.ProductService
}

func NewProductHandler(products ports.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

type productRequest struct {
	Name  string  `json:"name"  validate:"required"`
	SKU   string  `json:"sku"   validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
}

type productResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	SKU   string  `json:"sku"`
	Price float64 `json:"price"`
}

type listProductsResponse struct {
	Data       []productResponse `json:"data"`
	NextCursor *string           `json:"next_cursor"`
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{ID: p.ID, Name: p.Name, SKU: p.SKU, Price: p.Price}
}

// Create handles POST /api/v1/products (admin only).
//
// @Summary      Create a new product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/v1/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.products.CreateProduct(c.Request().Context(), ports.ProductInput{
		Name:  req.Name,
		SKU:   req.SKU,
		Price: req.Price,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toProductResponse(product))
}

// List handles GET /api/v1/products with cursor pagination.
//
// @Summary      List products (cursor-based)
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query     int     false  "Items per page"
// @Param        cursor  query     string  false  "Opaque cursor from previous page"
// @Success      200     {object}  listProductsResponse
// @Failure      400     {object}  errorResponse
// @Router       /api/v1/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	var limit int
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be an integer")
		}
		limit = parsed
	}

	page, err := h.products.ListProducts(c.Request().Context(), ports.ListInput{
		Limit:  limit,
		Cursor: c.QueryParam("cursor"),
	})
	if err != nil {
		return err
	}

	data := make([]productResponse, 0, len(page.Items))
	for _, p := range page.Items {
		data = append(data, toProductResponse(p))
	}
	return c.JSON(http.StatusOK, listProductsResponse{Data: data, NextCursor: page.NextCursor})
}

// Get handles GET /api/v1/products/:id.
//
// @Summary      Get product by id
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	product, err := h.products.GetProduct(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Update handles PUT /api/v1/products/:id (admin only).
//
// @Summary      Replace product data
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Product id"
// @Param        body  body      productRequest  true  "Product details"
// @Success      200   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.products.UpdateProduct(c.Request().Context(), id, ports.ProductInput{
		Name:  req.Name,
		SKU:   req.SKU,
		Price: req.Price,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Delete handles DELETE /api/v1/products/:id (admin only).
//
// @Summary      Delete a product
// @Tags         products
// @Security     BearerAuth
// @Param        id  path  int  true  "Product id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.products.DeleteProduct(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
