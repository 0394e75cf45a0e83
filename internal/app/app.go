package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/crypto-viewer/internal/cache"
	"github.com/NastyaGoryachaya/crypto-viewer/internal/config"
	"github.com/NastyaGoryachaya/crypto-viewer/internal/indicator"
	"github.com/NastyaGoryachaya/crypto-viewer/internal/infra/coingecko"
	"github.com/NastyaGoryachaya/crypto-viewer/internal/infra/db"
	repopg "github.com/NastyaGoryachaya/crypto-viewer/internal/repository/postgres"
	"github.com/NastyaGoryachaya/crypto-viewer/internal/scheduler"
	"github.com/NastyaGoryachaya/crypto-viewer/internal/service/dashboard"
	botpkg "github.com/NastyaGoryachaya/crypto-viewer/internal/transport/bot"
	"github.com/NastyaGoryachaya/crypto-viewer/internal/transport/httptransport"
	"github.com/NastyaGoryachaya/crypto-viewer/internal/transport/ws"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

type App struct {
	cfg config.Config
	log *slog.Logger

	db   *pgxpool.Pool
	e    *echo.Echo
	serv *http.Server

	hub       *ws.Hub
	dashboard *dashboard.Controller

	updater *scheduler.Scheduler

	bot *botpkg.Bot
}

func NewApp(cfg config.Config, log *slog.Logger) (*App, error) {
	app := &App{cfg: cfg, log: log}

	store, err := app.newCacheStore()
	if err != nil {
		return nil, err
	}

	provider := coingecko.NewClient(cfg.CoinGecko, log)
	app.hub = ws.NewHub(log)

	app.dashboard = dashboard.NewController(provider, store, app.hub, app.hub, dashboard.Options{
		Currency:      cfg.Dashboard.Currency,
		Currencies:    cfg.Dashboard.Currencies,
		Count:         cfg.Dashboard.Count,
		TimeframeDays: cfg.Dashboard.TimeframeDays,
		TTL:           cfg.Cache.TTL,
		Params: indicator.Params{
			MAPeriod:     cfg.Dashboard.MAPeriod,
			BBPeriod:     cfg.Dashboard.BBPeriod,
			BBMultiplier: cfg.Dashboard.BBMultiplier,
		},
		Clock: dashboard.NewRealClock(),
	}, log)
	app.hub.OnVisibility(app.dashboard.SetVisible)

	e := httptransport.NewEcho(log)
	app.e = e
	dh := httptransport.NewDashboardHandler(log, app.dashboard, app.hub, cfg.Server.RequestTimeout)
	dh.RegisterRoutes(e)

	app.serv = &http.Server{
		Addr:         cfg.Server.Addr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Handler:      e,
	}

	if cfg.Scheduler.Enabled {
		app.updater = scheduler.NewScheduler(app.dashboard, cfg.Scheduler.Interval, log)
	}

	if cfg.Telegram.Enabled {
		// Если бот включён, отсутствие токена — ошибка конфигурации
		token := strings.TrimSpace(cfg.Telegram.Token)
		if token == "" {
			log.Error("telegram enabled but TELEGRAM_BOT_TOKEN is empty")
			app.closeDB()
			return nil, errors.New("telegram token is empty")
		}
		tg := cfg.Telegram
		tg.Token = token

		botApp, err := botpkg.New(tg, app.dashboard, cfg.Server.RequestTimeout, log)
		if err != nil {
			log.Error("telegram init failed", slog.String("error", err.Error()))
			app.closeDB()
			return nil, err
		}
		app.bot = botApp
	}
	log.Info("app initialized",
		slog.String("cache_backend", cfg.Cache.Backend),
		slog.Bool("scheduler_enabled", app.updater != nil),
		slog.Bool("bot_attached", app.bot != nil),
		slog.String("http_addr", cfg.Server.Addr),
	)
	return app, nil
}

// newCacheStore — память по умолчанию, postgres по настройке cache.backend
func (a *App) newCacheStore() (cache.Store, error) {
	switch strings.ToLower(strings.TrimSpace(a.cfg.Cache.Backend)) {
	case "", "memory":
		return cache.NewMemoryStore(a.log), nil
	case "postgres":
		pool, err := db.NewPool(&a.cfg.Postgres)
		if err != nil {
			a.log.Error("postgres init failed", slog.String("error", err.Error()))
			return nil, err
		}
		a.db = pool
		return repopg.NewSnapshotRepository(pool), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", a.cfg.Cache.Backend)
	}
}

// Run — запускает сервер, планировщик и бота; возвращается после остановки ctx
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	if a.updater != nil {
		a.log.Info("starting updater")
		g.Go(func() error {
			a.updater.Start(gctx)
			return nil
		})
	} else {
		// без планировщика первая загрузка всё равно нужна
		g.Go(func() error {
			if err := a.dashboard.LoadMarkets(gctx, false); err != nil {
				a.log.Warn("initial load failed", slog.String("error", err.Error()))
			}
			return nil
		})
	}

	if a.bot != nil {
		a.log.Info("starting bot")
		g.Go(func() error {
			a.bot.Start(gctx)
			return nil
		})
	}

	a.log.Info("starting server", slog.String("addr", a.cfg.Server.Addr))
	g.Go(func() error {
		if err := a.e.StartServer(a.serv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", slog.String("error", err.Error()))
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		return a.Shutdown(context.Background())
	})

	return g.Wait()
}

func (a *App) Shutdown(ctx context.Context) error {
	timeout := a.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if a.e != nil {
		if err := a.e.Shutdown(shCtx); err != nil {
			a.log.Error("http shutdown error", slog.String("error", err.Error()))
		}
	}

	a.closeDB()

	a.log.Info("application stopped")
	return nil
}

func (a *App) closeDB() {
	if a.db != nil {
		a.db.Close()
		a.db = nil
	}
}
