package main // Entry point package

import (
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/hotsauce86/Stream-TV/internal/config"
	"github.com/hotsauce86/Stream-TV/internal/database"
	"github.com/hotsauce86/Stream-TV/internal/handler"
	"github.com/hotsauce86/Stream-TV/internal/logging"
	"github.com/hotsauce86/Stream-TV/internal/middleware"
	"github.com/hotsauce86/Stream-TV/internal/queue"
	"github.com/hotsauce86/Stream-TV/internal/repository"
	"github.com/hotsauce86/Stream-TV/internal/router"
	"github.com/hotsauce86/Stream-TV/internal/service"
	"github.com/hotsauce86/Stream-TV/internal/session"
	"github.com/hotsauce86/Stream-TV/internal/view"
)

func main() {
	// .env is optional; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	logging.Init(logging.FromEnv())
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("database open failed")
	}
	dispatcher := database.NewDispatcher(db)

	customers := repository.NewCustomerRepo(dispatcher)
	shows := repository.NewShowRepo(dispatcher)
	actors := repository.NewActorRepo(dispatcher)
	queues := repository.NewQueueRepo(dispatcher)
	search := repository.NewSearchRepo(dispatcher)

	// Redis is optional: without it sessions live in process memory
	// and the cache/limiter middlewares pass through.
	rdb := config.NewRedisClient()
	var sessions session.Store
	if rdb != nil {
		sessions = session.NewRedisStore(rdb, cfg.SessionTTL)
	} else {
		logging.Warn().Msg("redis unavailable; sessions are in-process only")
		sessions = session.NewMemoryStore(cfg.SessionTTL)
	}

	// Watch-queue events: background consumer plus per-request
	// publisher.
	go queue.StartShowQueuedConsumer()
	publisher := service.NewQueuePublisher()

	renderer, err := view.New()
	if err != nil {
		logging.Fatal().Err(err).Msg("template parse failed")
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Use(middleware.LoadSession(sessions, cfg.SessionCookie))

	router.RegisterBase(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, customers, sessions), config.LoadAuthRateConfig(), rdb)
	router.RegisterCatalog(e, handler.NewCatalogHandler(shows, actors), handler.NewSearchHandler(search),
		config.LoadPageCacheConfig(), rdb, cfg.SessionCookie)
	router.RegisterQueue(e, handler.NewQueueHandler(queues, shows, publisher))

	addr := ":" + cfg.Port
	logging.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
	if err := e.Start(addr); err != nil {
		logging.Fatal().Err(err).Msg("server stopped")
	}
}
