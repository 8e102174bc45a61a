package http

import (
	"errors"
	"net/http"
	"storefront/db"
	"storefront/fulfillment"
	"storefront/observability"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PostPlaceOrder fulfills the cart and responds with the true split between
// fulfilled and waitlisted quantities. Everything downstream of "order
// persisted" is asynchronous; the client never learns whether notifications
// succeeded.
func (h Handler) PostPlaceOrder(c echo.Context) error {
	cartID, err := uuid.Parse(c.Param("cart_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid cart id")
	}

	ctx := c.Request().Context()

	result, err := h.fulfillmentSvc.PlaceOrder(ctx, cartID)
	switch {
	case errors.Is(err, db.ErrCartNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "cart not found")
	case errors.Is(err, db.ErrProductNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	case errors.Is(err, fulfillment.ErrPartialPersistence):
		observability.FromContext(ctx).WithError(err).
			WithField("cart_id", cartID).
			Error("Order left in unknown fulfillment state, manual reconciliation needed")
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	case err != nil:
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h Handler) GetOrders(c echo.Context) error {
	orders, err := h.orderRepo.GetAll(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orders)
}

func (h Handler) GetOrderByID(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("order_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	order, err := h.orderRepo.OrderByID(c.Request().Context(), orderID)
	if errors.Is(err, db.ErrOrderNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, order)
}
