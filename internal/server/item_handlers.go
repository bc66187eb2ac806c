package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mdouchement/simpleauthstore/internal/database"
	"github.com/mdouchement/simpleauthstore/internal/model"
	"github.com/mdouchement/simpleauthstore/internal/server/serializer"
	"github.com/mdouchement/simpleauthstore/internal/server/service"
	"github.com/mdouchement/simpleauthstore/internal/server/session"
	"github.com/mdouchement/simpleauthstore/internal/sferror"
)

// data contains all USER and SHARED item handlers.
type data struct {
	db       database.Client
	sessions session.Manager
}

///// Read
////
//

// Read handler returns a USER or a SHARED item.
// SHARED items can be read anonymously when shared with ANYONE.
func (h *data) Read(c echo.Context) error {
	var params service.ItemParams
	if err := c.Bind(&params); err != nil {
		return sferror.New(http.StatusBadRequest, "Could not get parameters.")
	}

	if params.ItemSortKey == "" {
		return sferror.New(http.StatusBadRequest, "No item sort key provided.")
	}

	var (
		render service.Render
		user   *model.User
		err    error
	)
	switch params.ItemKey {
	case service.KeyUser:
		if user, err = currentUser(h.sessions, params.SessionID); err != nil {
			return err
		}
		render, err = service.NewUser(h.db, h.sessions).Read(user, params.ItemSortKey)
	case service.KeyShared:
		if params.SessionID != "" {
			if user, err = currentUser(h.sessions, params.SessionID); err != nil {
				return err
			}
		}
		render, err = service.NewItem(h.db).Read(user, params.ItemSortKey)
	default:
		return sferror.New(http.StatusBadRequest, "Invalid item key.")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, serializer.Global(render))
}

///// Update
////
//

// Update handler stores the data of a USER or a SHARED item.
func (h *data) Update(c echo.Context) error {
	var params service.UpdateParams
	if err := c.Bind(&params); err != nil {
		return sferror.New(http.StatusBadRequest, "Could not get parameters.")
	}

	user, err := currentUser(h.sessions, params.SessionID)
	if err != nil {
		return err
	}

	if params.ItemSortKey == "" {
		return sferror.New(http.StatusBadRequest, "No item sort key provided.")
	}

	var render service.Render
	switch params.ItemKey {
	case service.KeyUser:
		render, err = service.NewUser(h.db, h.sessions).Update(user, params)
	case service.KeyShared:
		render, err = service.NewItem(h.db).Update(user, params)
	default:
		return sferror.New(http.StatusBadRequest, "Invalid item key.")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, serializer.Global(render))
}

///// Create shared item
////
//

// CreateSharedItem handler creates a SHARED item owned by the current user.
func (h *data) CreateSharedItem(c echo.Context) error {
	var params service.CreateItemParams
	if err := c.Bind(&params); err != nil {
		return sferror.New(http.StatusBadRequest, "Could not get parameters.")
	}

	user, err := currentUser(h.sessions, params.SessionID)
	if err != nil {
		return err
	}

	if params.Description == "" {
		return sferror.New(http.StatusBadRequest, "No description provided.")
	}

	item, err := service.NewItem(h.db).Create(user, params)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, serializer.Global(item))
}

///// Read owned items
////
//

// ReadOwnedItems handler returns all the SHARED items owned by the current user.
func (h *data) ReadOwnedItems(c echo.Context) error {
	var params service.Params
	if err := c.Bind(&params); err != nil {
		return sferror.New(http.StatusBadRequest, "Could not get parameters.")
	}

	user, err := currentUser(h.sessions, params.SessionID)
	if err != nil {
		return err
	}

	items, err := service.NewItem(h.db).ReadOwned(user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, serializer.Global(items))
}

///// Manage access
////
//

// ManageAccess handler grants or revokes a role on a SHARED item.
func (h *data) ManageAccess(c echo.Context) error {
	var params service.AccessParams
	if err := c.Bind(&params); err != nil {
		return sferror.New(http.StatusBadRequest, "Could not get parameters.")
	}

	user, err := currentUser(h.sessions, params.SessionID)
	if err != nil {
		return err
	}

	if params.ItemKey != service.KeyShared {
		return sferror.New(http.StatusBadRequest, "Invalid item key.")
	}
	if params.SubjectUserID == "" || params.ItemSortKey == "" {
		return sferror.New(http.StatusBadRequest, "No subject user ID or item sort key provided.")
	}

	access, err := service.NewItem(h.db).ManageAccess(user, params)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, serializer.Global(access))
}
