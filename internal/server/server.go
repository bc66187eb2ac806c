package server

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mdouchement/simpleauthstore/internal/database"
	"github.com/mdouchement/simpleauthstore/internal/model"
	"github.com/mdouchement/simpleauthstore/internal/server/middlewares"
	"github.com/mdouchement/simpleauthstore/internal/server/session"
	"github.com/mdouchement/simpleauthstore/internal/sferror"
	"github.com/sirupsen/logrus"
)

// A Controller is an Iversion Of Control pattern used to init the server package.
type Controller struct {
	Version        string
	Database       database.Client
	Logger         logrus.FieldLogger
	NoRegistration bool
	// Session params
	SessionTTL time.Duration
}

// EchoEngine instantiates the wep server.
func EchoEngine(ctrl Controller) *echo.Echo {
	if ctrl.Logger == nil {
		ctrl.Logger = logrus.StandardLogger()
	}

	engine := echo.New()
	engine.HideBanner = true
	engine.Use(middleware.Recover())
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.DefaultCORSConfig))
	engine.Use(middleware.Gzip())

	engine.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "[${status}] ${method} ${uri} (${bytes_in}) ${latency_human}\n",
	}))
	engine.Binder = middlewares.NewBinder()
	// Error handler
	engine.HTTPErrorHandler = middlewares.HTTPErrorHandler(ctrl.Logger)

	////////////
	// Router //
	////////////

	sessions := session.NewManager(ctrl.Database, ctrl.SessionTTL)
	router := engine.Group("")

	// generic handlers
	//
	router.GET("/version", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"version": ctrl.Version,
		})
	})

	//
	// auth handlers
	//
	auth := &auth{
		db:       ctrl.Database,
		sessions: sessions,
	}
	if !ctrl.NoRegistration {
		router.POST("/auth/signup", auth.Signup)
	}
	router.POST("/auth/login", auth.Login)

	//
	// data handlers
	//
	data := &data{
		db:       ctrl.Database,
		sessions: sessions,
	}
	router.POST("/data/read", data.Read)
	router.POST("/data/update", data.Update)
	router.POST("/data/create_shared_item", data.CreateSharedItem)
	router.POST("/data/read_owned_items", data.ReadOwnedItems)
	router.POST("/data/manage_access", data.ManageAccess)

	return engine
}

// PrintRoutes prints the Echo engin exposed routes.
func PrintRoutes(e *echo.Echo) {
	ignored := map[string]bool{
		"":   true,
		".":  true,
		"/*": true,
	}

	routes := e.Routes()
	sort.Slice(routes, func(i int, j int) bool {
		return routes[i].Path < routes[j].Path
	})

	fmt.Println("Routes:")
	for _, route := range routes {
		if ignored[route.Path] {
			continue
		}
		fmt.Printf("%6s %s\n", route.Method, route.Path)
	}
}

// currentUser returns the user of the given session id.
func currentUser(sessions session.Manager, sessionID string) (*model.User, error) {
	if sessionID == "" {
		return nil, sferror.New(http.StatusUnauthorized, "No session ID provided.")
	}
	return sessions.User(sessionID)
}
