package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// homePage is the view-model for the home template.
type homePage struct {
	basePage
}

// Home renders the landing page, greeting the session's user when one
// is authenticated.
func Home(c echo.Context) error {
	return c.Render(http.StatusOK, "home", homePage{basePage: pageFor(c, "Home")})
}

// Health is a plain liveness endpoint for load balancers and
// monitoring.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
