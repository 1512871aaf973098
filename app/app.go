package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/AhmedMHR/PadelPal/app/eventbus"
	"github.com/AhmedMHR/PadelPal/app/modules/auth"
	"github.com/AhmedMHR/PadelPal/app/modules/match"
	matchdb "github.com/AhmedMHR/PadelPal/app/modules/match/infrastructure/repositories"
	"github.com/AhmedMHR/PadelPal/app/modules/notification"
	notificationdb "github.com/AhmedMHR/PadelPal/app/modules/notification/infrastructure/repositories"
	"github.com/AhmedMHR/PadelPal/app/modules/user"
	userdb "github.com/AhmedMHR/PadelPal/app/modules/user/infrastructure/repositories"
	"github.com/AhmedMHR/PadelPal/app/modules/venue"
	venuedb "github.com/AhmedMHR/PadelPal/app/modules/venue/infrastructure/repositories"
	"github.com/AhmedMHR/PadelPal/app/observability"
	"github.com/AhmedMHR/PadelPal/app/shared/attr"
	"github.com/AhmedMHR/PadelPal/app/shared/utils"
	"github.com/AhmedMHR/PadelPal/config"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// module is the lifecycle every feature module implements.
type module interface {
	Run(ctx context.Context, wg *sync.WaitGroup)
	Close() error
}

// App wires the modules to the database, the event bus and the HTTP server.
type App struct {
	Config        *config.Config
	Observability observability.Observability
	DB            *bun.DB
	EventBus      eventbus.EventBus
	Router        *message.Router
	HTTPRouter    *chi.Mux

	AuthModule         *auth.Module
	UserModule         *user.Module
	VenueModule        *venue.Module
	MatchModule        *match.Module
	NotificationModule *notification.Module

	modules   []module
	wg        sync.WaitGroup
	closeOnce sync.Once
	closeErr  error
}

// New builds the application on an open database and event bus. Nothing runs
// until Run is called.
func New(ctx context.Context, cfg *config.Config, obs observability.Observability, db *bun.DB, bus eventbus.EventBus) (*App, error) {
	logger := obs.Logger

	router, err := message.NewRouter(message.RouterConfig{CloseTimeout: 30 * time.Second}, watermill.NewSlogLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create message router: %w", err)
	}

	app := &App{
		Config:        cfg,
		Observability: obs,
		DB:            db,
		EventBus:      bus,
		Router:        router,
		HTTPRouter:    NewHTTPRouter(obs, db),
	}

	if err := app.initializeModules(ctx); err != nil {
		return nil, err
	}
	return app, nil
}

func (app *App) initializeModules(ctx context.Context) error {
	obs := app.Observability
	helper := utils.NewHelper()

	var idb bun.IDB
	if app.DB != nil {
		idb = app.DB
	}
	userRepo := userdb.NewRepository(idb)
	venueRepo := venuedb.NewRepository(idb)
	matchRepo := matchdb.NewRepository(idb)
	notificationRepo := notificationdb.NewRepository(idb)

	authModule, err := auth.NewModule(ctx, app.Config, obs, app.HTTPRouter)
	if err != nil {
		return fmt.Errorf("failed to initialize auth module: %w", err)
	}
	app.AuthModule = authModule
	api := authModule.APIRouter()

	app.UserModule, err = user.NewUserModule(ctx, obs, userRepo, app.DB, app.EventBus, helper, api)
	if err != nil {
		return fmt.Errorf("failed to initialize user module: %w", err)
	}

	app.VenueModule, err = venue.NewVenueModule(ctx, obs, venueRepo, matchRepo, app.DB, api)
	if err != nil {
		return fmt.Errorf("failed to initialize venue module: %w", err)
	}

	app.MatchModule, err = match.NewMatchModule(ctx, obs, matchRepo, userRepo, venueRepo, app.DB, app.EventBus, helper, api)
	if err != nil {
		return fmt.Errorf("failed to initialize match module: %w", err)
	}

	app.NotificationModule, err = notification.NewNotificationModule(
		ctx,
		app.Config,
		obs,
		notificationRepo,
		userRepo,
		app.MatchModule.MatchService,
		app.DB,
		api,
		app.Router,
		app.EventBus,
		helper,
	)
	if err != nil {
		return fmt.Errorf("failed to initialize notification module: %w", err)
	}

	app.modules = []module{app.AuthModule, app.UserModule, app.VenueModule, app.MatchModule, app.NotificationModule}
	return nil
}

// Run starts the modules, the message router and the HTTP servers, and blocks
// until ctx is cancelled or a server fails. It then shuts everything down.
func (app *App) Run(ctx context.Context) error {
	logger := app.Observability.Logger
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for _, m := range app.modules {
		app.wg.Add(1)
		go m.Run(ctx, &app.wg)
	}

	errCh := make(chan error, 3)
	go func() {
		if err := app.Router.Run(ctx); err != nil {
			errCh <- fmt.Errorf("message router stopped: %w", err)
		}
	}()

	servers := []*http.Server{{
		Addr:              app.Config.HTTP.Address,
		Handler:           app.HTTPRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}}
	if addr := app.Config.Observability.MetricsAddress; addr != "" && addr != app.Config.HTTP.Address {
		servers = append(servers, &http.Server{
			Addr:              addr,
			Handler:           MetricsHandler(app.Observability.Registry),
			ReadHeaderTimeout: 10 * time.Second,
		})
	}
	for _, srv := range servers {
		go func(srv *http.Server) {
			logger.InfoContext(ctx, "HTTP server listening", attr.String("address", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("http server on %s: %w", srv.Addr, err)
			}
		}(srv)
	}

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown requested")
	case runErr = <-errCh:
		logger.Error("Component failed, shutting down", attr.Error(runErr))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown failed", attr.String("address", srv.Addr), attr.Error(err))
		}
	}

	cancel()
	return errors.Join(runErr, app.Close())
}

// Close stops the modules and releases the router, event bus and database.
// Only the first call has any effect.
func (app *App) Close() error {
	app.closeOnce.Do(func() { app.closeErr = app.close() })
	return app.closeErr
}

func (app *App) close() error {
	var errs []error
	for _, m := range app.modules {
		if err := m.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	app.wg.Wait()

	if app.Router != nil {
		if err := app.Router.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close message router: %w", err))
		}
	}
	if app.EventBus != nil {
		if err := app.EventBus.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close event bus: %w", err))
		}
	}
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
	}
	return errors.Join(errs...)
}
