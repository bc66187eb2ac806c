package middlewares

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type binder struct {
	echo.DefaultBinder
}

// NewBinder returns a wrapp of the default binder implementation with extra checks.
// All the API endpoints are POST with a JSON body.
func NewBinder() echo.Binder {
	return &binder{}
}

// Bind implements the echo.Bind interface.
func (b *binder) Bind(i any, c echo.Context) (err error) {
	if c.Request().ContentLength == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Request body can't be empty.")
	}
	return b.DefaultBinder.BindBody(c, i)
}
