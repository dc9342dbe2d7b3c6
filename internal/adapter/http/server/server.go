package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/kavitasoren02/greencart-logistics/config"
	"github.com/kavitasoren02/greencart-logistics/internal/adapter/http/handler"
	"github.com/kavitasoren02/greencart-logistics/internal/adapter/http/middleware"
	"github.com/kavitasoren02/greencart-logistics/internal/domain/types"
	"github.com/kavitasoren02/greencart-logistics/pkg/logger"
	wrap "github.com/kavitasoren02/greencart-logistics/pkg/logger/wrapper"
	ws "github.com/kavitasoren02/greencart-logistics/pkg/wsHub"
)

type API struct {
	mode   types.ServiceMode
	mux    *http.ServeMux
	server *http.Server
	routes *handlers // routes/handlers
	m      *middleware.Middleware

	addr string
	log  logger.Logger
}

type handlers struct {
	health     *handler.Health
	simulation *handler.Simulation
	reference  *handler.Reference
	feed       *handler.SimulationFeed
}

// New builds the simulation API. A nil feed gets a hub of its own; checks are
// reported by /health.
func New(
	cfg config.Config,
	simulationService handler.SimulationService,
	referenceService handler.ReferenceService,
	feed *handler.SimulationFeed,
	logger logger.Logger,
	checks ...handler.DependencyCheck,
) (*API, error) {
	if cfg.Mode != types.SimulationService {
		return nil, fmt.Errorf("invalid mode: %s", cfg.Mode)
	}
	if simulationService == nil {
		return nil, errors.New("simulation service is required")
	}
	if referenceService == nil {
		return nil, errors.New("reference service is required")
	}
	if feed == nil {
		feed = handler.NewSimulationFeed(ws.NewConnHub(logger), logger)
	}

	api := &API{
		mode: cfg.Mode,

		mux: http.NewServeMux(),
		routes: &handlers{
			health:     handler.NewHealth(cfg.Mode.String(), logger, checks...),
			simulation: handler.NewSimulation(simulationService, logger),
			reference:  handler.NewReference(referenceService, logger),
			feed:       feed,
		},
		m:    middleware.NewMiddleware(logger),
		addr: cfg.Server.Addr(),
		log:  logger,
	}

	api.server = &http.Server{
		Addr:              api.addr,
		Handler:           api.withMiddleware(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	api.setupRoutes()

	return api, nil
}

func (a *API) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	ctx = wrap.WithAction(ctx, "http_server_stop")

	a.log.Debug(ctx, "shutting down HTTP server...", "address", a.addr)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	a.log.Debug(ctx, "shutting down HTTP server completed")

	return nil
}

func (a *API) Run(ctx context.Context, errCh chan<- error) {
	go func() {
		ctx = wrap.WithAction(ctx, "http_server_start")
		a.log.Info(ctx, "started http server", "address", a.addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start HTTP server: %w", err)
			return
		}
	}()
}

// Handler returns the mux wrapped in the middleware chain.
func (a *API) Handler() http.Handler {
	return a.server.Handler
}

// withMiddleware applies middlewares to the mux
func (a *API) withMiddleware() http.Handler {
	return a.m.Recover(a.m.RequestID(a.m.Logging(a.m.Metrics(a.mode.String())(a.mux))))
}
