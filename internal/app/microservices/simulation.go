package microservices

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/kavitasoren02/greencart-logistics/config"
	"github.com/kavitasoren02/greencart-logistics/internal/adapter/cache"
	"github.com/kavitasoren02/greencart-logistics/internal/adapter/http/handler"
	"github.com/kavitasoren02/greencart-logistics/internal/adapter/http/server"
	repo "github.com/kavitasoren02/greencart-logistics/internal/adapter/postgres"
	rabbitadapter "github.com/kavitasoren02/greencart-logistics/internal/adapter/rabbit"
	"github.com/kavitasoren02/greencart-logistics/internal/service/reference"
	"github.com/kavitasoren02/greencart-logistics/internal/service/simulation"
	"github.com/kavitasoren02/greencart-logistics/pkg/logger"
	wrap "github.com/kavitasoren02/greencart-logistics/pkg/logger/wrapper"
	"github.com/kavitasoren02/greencart-logistics/pkg/postgres"
	"github.com/kavitasoren02/greencart-logistics/pkg/rabbit"
	"github.com/kavitasoren02/greencart-logistics/pkg/redis"
	"github.com/kavitasoren02/greencart-logistics/pkg/trm"
	ws "github.com/kavitasoren02/greencart-logistics/pkg/wsHub"
)

type SimulationService struct {
	postgresDB *postgres.PostgreDB
	rabbit     *rabbit.RabbitMQ
	redis      *redis.Client
	hub        *ws.ConnectionHub
	feed       *handler.SimulationFeed
	consumer   *rabbitadapter.FeedConsumer
	httpServer *server.API

	cfg config.Config
	log logger.Logger
}

func NewSimulation(ctx context.Context, cfg config.Config, log logger.Logger) (_ *SimulationService, err error) {
	s := &SimulationService{
		cfg: cfg,
		log: log,
	}
	// Release whatever was opened before a later step failed.
	defer func() {
		if err != nil {
			s.close(ctx)
		}
	}()

	s.postgresDB, err = postgres.New(ctx, cfg.Database)
	if err != nil {
		log.Error(ctx, "Failed to setup database", err)
		return nil, err
	}

	s.rabbit, err = rabbit.New(ctx, cfg.RabbitMQ.GetDSN(), log)
	if err != nil {
		log.Error(ctx, "Failed to setup rabbitMQ", err)
		return nil, err
	}

	publisher := rabbitadapter.NewSimulationPublisher(s.rabbit, cfg.Simulation.Exchange)
	if err = publisher.DeclareExchange(ctx); err != nil {
		log.Error(ctx, "Failed to declare simulation exchange", err)
		return nil, err
	}

	var runs simulation.SimulationStore = repo.NewSimulationRepo(s.postgresDB.Pool)
	if cfg.Redis.Enabled {
		runs = s.withCache(ctx, runs)
	}

	drivers := repo.NewDriverRepo(s.postgresDB.Pool)
	routes := repo.NewRouteRepo(s.postgresDB.Pool)
	orders := repo.NewOrderRepo(s.postgresDB.Pool)

	simulationService := simulation.NewService(
		drivers,
		routes,
		orders,
		runs,
		publisher,
		trm.New(s.postgresDB.Pool),
		log,
	)

	s.hub = ws.NewConnHub(log)
	s.feed = handler.NewSimulationFeed(s.hub, log)
	s.consumer = rabbitadapter.NewFeedConsumer(s.rabbit, cfg.Simulation.Exchange, cfg.Simulation.FeedQueue, log.With("component", "feed_consumer"))

	referenceService := reference.NewService(drivers, routes, orders)

	s.httpServer, err = server.New(cfg, simulationService, referenceService, s.feed, log, s.dependencyChecks()...)
	if err != nil {
		log.Error(ctx, "Failed to setup http server", err)
		return nil, err
	}

	return s, nil
}

// withCache puts the Redis read-through cache in front of runs. Redis being
// down only costs the cache, so the service starts without it.
func (s *SimulationService) withCache(ctx context.Context, runs simulation.SimulationStore) simulation.SimulationStore {
	client, err := redis.New(ctx, redis.Config{
		Addr:     s.cfg.Redis.Addr,
		Password: s.cfg.Redis.Password,
		DB:       s.cfg.Redis.DB,
	})
	if err != nil {
		s.log.Warn(ctx, "redis unavailable, simulation cache disabled", "error", err)
		return runs
	}

	s.redis = client
	s.log.Info(ctx, "simulation cache enabled", "addr", s.cfg.Redis.Addr, "ttl", s.cfg.Redis.TTL.String())

	return cache.NewSimulationStore(runs, client, s.cfg.Redis.TTL, s.log.With("component", "simulation_cache"))
}

// dependencyChecks lists what /health checks. Redis is reported only when the cache is on.
func (s *SimulationService) dependencyChecks() []handler.DependencyCheck {
	checks := []handler.DependencyCheck{
		{Name: "postgres", Check: s.postgresDB.Pool.Ping},
		{Name: "rabbitmq", Check: func(context.Context) error {
			if s.rabbit.IsConnectionClosed() {
				return rabbit.ErrClientClosed
			}
			return nil
		}},
	}
	if s.redis != nil {
		checks = append(checks, handler.DependencyCheck{Name: "redis", Check: func(ctx context.Context) error {
			return s.redis.Ping(ctx).Err()
		}})
	}
	return checks
}

func (s *SimulationService) Start(ctx context.Context) error {
	errCh := make(chan error, 2)

	consumerCtx, stopConsumer := context.WithCancel(ctx)
	var wg sync.WaitGroup

	s.httpServer.Run(ctx, errCh)

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := s.consumer.Consume(consumerCtx, s.feed.Publish); err != nil {
			errCh <- err
		}
	}()

	defer func() {
		stopConsumer()
		wg.Wait()
		s.close(ctx)
		s.log.Info(ctx, "simulation service closed")
	}()

	// Waiting signal
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(shutdownCh)

	s.log.Info(ctx, "Simulation service has been started", "address", s.cfg.Server.Addr())

	select {
	case errRun := <-errCh:
		return errRun
	case sig := <-shutdownCh:
		s.log.Info(ctx, "shuting down application", "signal", sig.String())
		return nil
	case <-ctx.Done():
		return nil
	}
}

func (s *SimulationService) close(ctx context.Context) {
	ctx = wrap.WithAction(ctx, "simulation_service_close")

	if s.httpServer != nil {
		if err := s.httpServer.Stop(ctx); err != nil {
			s.log.Warn(ctx, "Failed to gracefully close http server", "error", err.Error())
		}
	}

	if s.hub != nil {
		s.hub.Close()
	}

	if s.rabbit != nil {
		closeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := s.rabbit.Close(closeCtx); err != nil {
			s.log.Warn(ctx, "Failed to close rabbitMQ", "error", err.Error())
		}
		cancel()
	}

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.log.Warn(ctx, "Failed to close redis", "error", err.Error())
		}
	}

	if s.postgresDB != nil {
		s.postgresDB.Close()
	}
}
