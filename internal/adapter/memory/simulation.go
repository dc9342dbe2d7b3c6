package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/kavitasoren02/greencart-logistics/internal/domain/models"
	"github.com/kavitasoren02/greencart-logistics/internal/domain/types"
)

// SimulationStore keeps runs in memory in insertion order.
type SimulationStore struct {
	runs []*models.SimulationRun
	mu   sync.RWMutex
}

func NewSimulationStore() *SimulationStore {
	return &SimulationStore{}
}

func (s *SimulationStore) Save(ctx context.Context, run *models.SimulationRun) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.runs {
		if r.ID == run.ID {
			return types.ErrSimulationExists
		}
	}
	cp := *run
	cp.Assignments = slices.Clone(run.Assignments)
	s.runs = append(s.runs, &cp)
	return nil
}

func (s *SimulationStore) FindByID(ctx context.Context, id uuid.UUID) (*models.SimulationRun, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.runs {
		if r.ID == id {
			cp := *r
			cp.Assignments = slices.Clone(r.Assignments)
			return &cp, nil
		}
	}
	return nil, types.ErrSimulationNotFound
}

func (s *SimulationStore) List(ctx context.Context, filters models.Filters) ([]models.SimulationSummary, int, error) {
	select {
	case <-ctx.Done():
		return nil, 0, ctx.Err()
	default:
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.SimulationSummary, 0, len(s.runs))
	for _, r := range s.runs {
		result = append(result, r.Summary())
	}

	desc := filters.SortDirection() == "DESC"
	column := filters.SortColumn()
	slices.SortStableFunc(result, func(a, b models.SimulationSummary) int {
		var c int
		switch column {
		case "total_profit":
			c = cmp.Compare(a.Results.TotalProfit, b.Results.TotalProfit)
		case "efficiency_score":
			c = cmp.Compare(a.Results.EfficiencyScore, b.Results.EfficiencyScore)
		default:
			c = a.CreatedAt.Compare(b.CreatedAt)
		}
		if desc {
			return -c
		}
		return c
	})

	page, total := paginate(result, filters)
	return page, total, nil
}

func (s *SimulationStore) Stats(ctx context.Context) (models.SimulationStats, error) {
	select {
	case <-ctx.Done():
		return models.SimulationStats{}, ctx.Err()
	default:
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats models.SimulationStats
	if len(s.runs) == 0 {
		return stats, nil
	}

	stats.TotalSimulations = len(s.runs)
	stats.BestEfficiency = s.runs[0].Results.EfficiencyScore
	stats.WorstEfficiency = s.runs[0].Results.EfficiencyScore

	var profit, efficiency float64
	for _, r := range s.runs {
		profit += r.Results.TotalProfit
		efficiency += r.Results.EfficiencyScore
		stats.BestEfficiency = max(stats.BestEfficiency, r.Results.EfficiencyScore)
		stats.WorstEfficiency = min(stats.WorstEfficiency, r.Results.EfficiencyScore)
	}
	stats.AverageProfit = profit / float64(len(s.runs))
	stats.AverageEfficiency = efficiency / float64(len(s.runs))

	return stats, nil
}
