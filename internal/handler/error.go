package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hotsauce86/Stream-TV/internal/logging"
)

// HTTPErrorHandler is the outermost request boundary.  Unknown routes
// get the not-found page; everything else, store failures included,
// is logged and rendered as the generic failure page.  Internal
// detail never reaches the client.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}

	if code == http.StatusNotFound {
		_ = renderNotFound(c, pageFor(c, ""), "Page not found.")
		return
	}

	logging.Error().Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Request().URL.Path).
		Int("status", code).
		Msg("request failed")

	if rerr := c.Render(code, "error", struct{ basePage }{pageFor(c, "Error")}); rerr != nil {
		_ = c.String(code, "server error")
	}
}
