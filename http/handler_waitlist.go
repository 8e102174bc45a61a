package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h Handler) GetWaitlist(c echo.Context) error {
	entries, err := h.waitlistRepo.GetAll(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, entries)
}
