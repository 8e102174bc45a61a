package http

import (
	"errors"
	"net/http"
	"storefront/db"
	"storefront/entities"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type productRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       entities.Money `json:"price"`
	Stock       int            `json:"stock"`
}

func (h Handler) GetProducts(c echo.Context) error {
	products, err := h.productRepo.GetAll(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, products)
}

func (h Handler) GetProductByID(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	product, err := h.productRepo.ProductByID(c.Request().Context(), productID)
	if errors.Is(err, db.ErrProductNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}

func (h Handler) PostProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if req.Stock < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "stock must not be negative")
	}

	product := entities.Product{
		ProductID:   uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	}

	if err := h.productRepo.Create(c.Request().Context(), product); err != nil {
		return err
	}

	h.broadcaster.Broadcast("newProduct", product)

	return c.JSON(http.StatusCreated, product)
}

func (h Handler) PutProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if req.Stock < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "stock must not be negative")
	}

	product := entities.Product{
		ProductID:   productID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	}

	err = h.productRepo.Update(c.Request().Context(), product)
	if errors.Is(err, db.ErrProductNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return err
	}

	h.broadcaster.Broadcast("updatedProduct", product)

	return c.JSON(http.StatusOK, product)
}

func (h Handler) DeleteProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	err = h.productRepo.Delete(c.Request().Context(), productID)
	if errors.Is(err, db.ErrProductNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return err
	}

	h.broadcaster.Broadcast("deleteProduct", map[string]string{"product_id": productID.String()})

	return c.NoContent(http.StatusNoContent)
}
