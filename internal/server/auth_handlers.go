package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mdouchement/simpleauthstore/internal/database"
	"github.com/mdouchement/simpleauthstore/internal/server/serializer"
	"github.com/mdouchement/simpleauthstore/internal/server/service"
	"github.com/mdouchement/simpleauthstore/internal/server/session"
	"github.com/mdouchement/simpleauthstore/internal/sferror"
)

// auth contains all authentication handlers.
type auth struct {
	db       database.Client
	sessions session.Manager
}

///// Signup
////
//

// Signup handler is used to register the user and opens its first session.
func (h *auth) Signup(c echo.Context) error {
	params, err := h.params(c)
	if err != nil {
		return err
	}

	service := service.NewUser(h.db, h.sessions)
	signup, err := service.Signup(params)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, serializer.Global(signup))
}

///// Login
////
//

// Login used for authenticates a user and returns a new session id.
func (h *auth) Login(c echo.Context) error {
	params, err := h.params(c)
	if err != nil {
		return err
	}

	service := service.NewUser(h.db, h.sessions)
	login, err := service.Login(params)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, serializer.Global(login))
}

// Filter params
func (h *auth) params(c echo.Context) (service.AuthParams, error) {
	var params service.AuthParams
	if err := c.Bind(&params); err != nil {
		return params, sferror.New(http.StatusBadRequest, "Could not get credentials.")
	}
	params.UserAgent = c.Request().UserAgent()

	if params.Username == "" || params.Password == "" {
		return params, sferror.New(http.StatusBadRequest, "No username or password provided.")
	}
	return params, nil
}
