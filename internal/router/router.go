// Package router defines how HTTP routes are registered for the
// application.  Route registration is split by concern: base routes,
// the authentication forms and the catalog/queue pages.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/hotsauce86/Stream-TV/internal/config"
	"github.com/hotsauce86/Stream-TV/internal/handler"
	"github.com/hotsauce86/Stream-TV/internal/middleware"
)

// RegisterBase wires the error boundary and the routes every visitor
// can reach regardless of catalog or account state.
func RegisterBase(e *echo.Echo) {
	e.HTTPErrorHandler = handler.HTTPErrorHandler
	// Liveness endpoint for load balancers and monitoring.
	e.GET("/healthz", handler.Health)
	e.GET("/", handler.Home)
}

// RegisterAuth registers the login, registration and logout routes.
// The form POSTs sit behind the per-IP rate limiter so credential
// guessing is throttled; rendering the empty forms is not.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, rateCfg config.AuthRateConfig, rdb *redis.Client) {
	limited := middleware.AuthRateLimit(rateCfg, rdb)

	e.GET("/login", a.ShowLogin)
	e.POST("/login", a.Login, limited)
	e.GET("/register", a.ShowRegister)
	e.POST("/register", a.Register, limited)
	e.GET("/logout", a.Logout)
}

// RegisterCatalog registers the read-only catalog pages and the
// search form.  Catalog GETs run behind the anonymous page cache.
// The /search/:showID route is show detail, not search; the name is
// kept for compatibility with the original URL scheme.
func RegisterCatalog(e *echo.Echo, cat *handler.CatalogHandler, s *handler.SearchHandler,
	cacheCfg config.PageCacheConfig, rdb *redis.Client, sessionCookie string) {
	cached := middleware.PageCache(cacheCfg, rdb, sessionCookie)

	e.GET("/search/:showID", cat.ShowDetail, cached)
	e.GET("/shows/:showID", cat.ShowEpisodes, cached)
	e.GET("/episode/:episodeID", cat.EpisodeDetail, cached)
	e.GET("/actor/:actID", cat.ActorDetail, cached)

	e.GET("/search", s.Search)
	e.POST("/search", s.Search)
}

// RegisterQueue registers the watch-queue pages.  Authorization is
// enforced inside the handlers against the request's session.
func RegisterQueue(e *echo.Echo, q *handler.QueueHandler) {
	e.GET("/queue/:custID", q.List)
	// A distinct prefix; Echo cannot hold two param names on one
	// segment.
	e.POST("/queue/add/:showID", q.Add)
}
