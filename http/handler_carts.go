package http

import (
	"errors"
	"net/http"
	"storefront/db"
	"storefront/entities"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type cartRequest struct {
	Lines []entities.CartLine `json:"lines"`
}

func (h Handler) PostCart(c echo.Context) error {
	var req cartRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	if len(req.Lines) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "cart must have at least one line")
	}
	for _, line := range req.Lines {
		if line.Quantity < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "line quantity must be greater than 0")
		}
	}

	cart := entities.Cart{
		CartID: uuid.New(),
		Lines:  req.Lines,
	}

	if err := h.cartRepo.Create(c.Request().Context(), cart); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, cart)
}

func (h Handler) GetCartByID(c echo.Context) error {
	cartID, err := uuid.Parse(c.Param("cart_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid cart id")
	}

	cart, err := h.cartRepo.CartByID(c.Request().Context(), cartID)
	if errors.Is(err, db.ErrCartNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "cart not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cart)
}
