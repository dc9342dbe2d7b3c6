package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/kavitasoren02/greencart-logistics/internal/domain/models"
	"github.com/kavitasoren02/greencart-logistics/internal/domain/types"
	"github.com/kavitasoren02/greencart-logistics/internal/service/simulation"
	"github.com/kavitasoren02/greencart-logistics/pkg/logger"
	wrap "github.com/kavitasoren02/greencart-logistics/pkg/logger/wrapper"
	"github.com/kavitasoren02/greencart-logistics/pkg/metrics"
)

const keyPrefix = "greencart:simulation:"

// SimulationStore serves FindByID from Redis before falling back to the
// wrapped store. Runs never change once saved, so entries are only expired.
type SimulationStore struct {
	next simulation.SimulationStore
	rdb  redis.Cmdable
	ttl  time.Duration
	l    logger.Logger
}

var _ simulation.SimulationStore = (*SimulationStore)(nil)

func NewSimulationStore(next simulation.SimulationStore, rdb redis.Cmdable, ttl time.Duration, l logger.Logger) *SimulationStore {
	return &SimulationStore{
		next: next,
		rdb:  rdb,
		ttl:  ttl,
		l:    l,
	}
}

// entry keeps the assignment fields that the public JSON form omits.
type entry struct {
	Run     models.SimulationRun `json:"run"`
	Drivers []int64              `json:"drivers"`
	Actual  []int                `json:"actual_time_min"`
}

func newEntry(run *models.SimulationRun) entry {
	e := entry{
		Run:     *run,
		Drivers: make([]int64, len(run.Assignments)),
		Actual:  make([]int, len(run.Assignments)),
	}
	for i, a := range run.Assignments {
		e.Drivers[i] = a.DriverID
		e.Actual[i] = a.ActualTimeMin
	}
	return e
}

func (e entry) run() (*models.SimulationRun, error) {
	if len(e.Drivers) != len(e.Run.Assignments) || len(e.Actual) != len(e.Run.Assignments) {
		return nil, errors.New("corrupt cache entry")
	}
	run := e.Run
	for i := range run.Assignments {
		run.Assignments[i].DriverID = e.Drivers[i]
		run.Assignments[i].ActualTimeMin = e.Actual[i]
	}
	return &run, nil
}

func key(id uuid.UUID) string {
	return keyPrefix + id.String()
}

// Save goes to the wrapped store only; entries are filled on first read.
func (s *SimulationStore) Save(ctx context.Context, run *models.SimulationRun) error {
	return s.next.Save(ctx, run)
}

func (s *SimulationStore) FindByID(ctx context.Context, id uuid.UUID) (*models.SimulationRun, error) {
	logCtx := wrap.WithAction(ctx, types.ActionCacheFailed)

	run, err := s.get(ctx, id)
	switch {
	case err == nil:
		metrics.RecordCacheLookup(true)
		return run, nil
	case errors.Is(err, types.ErrCacheMiss):
		metrics.RecordCacheLookup(false)
	default:
		metrics.RecordCacheLookup(false)
		s.l.Warn(logCtx, "failed to read simulation from cache", "simulation_id", id.String(), "error", err)
	}

	run, err = s.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.set(ctx, run); err != nil {
		s.l.Warn(logCtx, "failed to cache simulation", "simulation_id", id.String(), "error", err)
	}

	return run, nil
}

func (s *SimulationStore) get(ctx context.Context, id uuid.UUID) (*models.SimulationRun, error) {
	data, err := s.rdb.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, types.ErrCacheMiss
		}
		return nil, fmt.Errorf("get: %w", err)
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return e.run()
}

func (s *SimulationStore) set(ctx context.Context, run *models.SimulationRun) error {
	data, err := json.Marshal(newEntry(run))
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := s.rdb.Set(ctx, key(run.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("set: %w", err)
	}
	return nil
}

func (s *SimulationStore) List(ctx context.Context, filters models.Filters) ([]models.SimulationSummary, int, error) {
	return s.next.List(ctx, filters)
}

func (s *SimulationStore) Stats(ctx context.Context) (models.SimulationStats, error) {
	return s.next.Stats(ctx)
}
