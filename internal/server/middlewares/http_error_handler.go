package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mdouchement/simpleauthstore/internal/sferror"
	"github.com/sirupsen/logrus"
)

// HTTPErrorHandler returns a middleware that formats rendered errors as `{"error": "message"}`.
func HTTPErrorHandler(logger logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		switch err := err.(type) {
		case *echo.HTTPError:
			if err.Internal != nil {
				logger.WithError(err.Internal).Warn("echo error")
			}
			_ = c.JSON(err.Code, sferror.New(err.Code, fmt.Sprint(err.Message)))
		case *sferror.SFError:
			status := sferror.StatusCode(err)
			if status < 500 {
				_ = c.JSON(status, err)
				return
			}

			internal(logger, err, c)
		default:
			internal(logger, err, c)
		}
	}
}

func internal(logger logrus.FieldLogger, err error, c echo.Context) {
	id := uuid.Must(uuid.NewV4()).String()
	logger.WithField("id", id).WithError(err).Error("internal error")

	_ = c.JSON(http.StatusInternalServerError, sferror.New(
		http.StatusInternalServerError,
		fmt.Sprintf("Unexpected error (id: %s)", id),
	))
}
