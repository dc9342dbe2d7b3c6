package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/kavitasoren02/greencart-logistics/internal/adapter/http/handler/dto"
	"github.com/kavitasoren02/greencart-logistics/internal/domain/models"
	"github.com/kavitasoren02/greencart-logistics/internal/domain/types"
	"github.com/kavitasoren02/greencart-logistics/pkg/logger"
	wrap "github.com/kavitasoren02/greencart-logistics/pkg/logger/wrapper"
	"github.com/kavitasoren02/greencart-logistics/pkg/validator"
)

type SimulationService interface {
	Run(ctx context.Context, in models.SimulationInputs) (*models.SimulationRun, error)
	Get(ctx context.Context, id uuid.UUID) (*models.SimulationRun, error)
	History(ctx context.Context, filters models.Filters) ([]models.SimulationSummary, models.Metadata, error)
	Stats(ctx context.Context) (models.SimulationStats, error)
}

type Simulation struct {
	s SimulationService
	l logger.Logger
}

func NewSimulation(s SimulationService, l logger.Logger) *Simulation {
	return &Simulation{
		s: s,
		l: l,
	}
}

// Run godoc
// @Summary      Run a delivery simulation
// @Description  Assigns current orders to the first availableDrivers drivers and returns the KPIs
// @Tags         Simulations
// @Accept       json
// @Produce      json
// @Param        request  body      dto.RunSimulationRequest  true  "Simulation inputs"
// @Success      201      {object}  models.SimulationRun
// @Failure      400      {object}  map[string]string
// @Failure      422      {object}  map[string]any
// @Failure      500      {object}  map[string]string
// @Router       /simulations [post]
func (h *Simulation) Run(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionRunSimulation)

	var req dto.RunSimulationRequest
	if err := readJSON(w, r, &req); err != nil {
		h.l.Warn(ctx, "failed to read request JSON data", "error", err)
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	req.Validate(v)
	if !v.Valid() {
		h.l.Warn(ctx, "invalid request data", "errors", v.Errors)
		failedValidationResponse(w, v.Errors)
		return
	}

	run, err := h.s.Run(ctx, req.ToModel())
	if err != nil {
		var ve *types.ValidationError
		if errors.As(err, &ve) {
			failedValidationResponse(w, ve.Errors)
			return
		}
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to run simulation", err)
		serviceErrorResponse(w, err)
		return
	}

	response := envelope{
		"message":      "simulation completed",
		"simulationId": run.ID,
		"inputs":       run.Inputs,
		"results":      run.Results,
		"assignments":  run.Assignments,
		"createdAt":    run.CreatedAt,
	}

	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w)
	}
}

// Get godoc
// @Summary      Get a simulation
// @Description  Returns a stored run with its per-order assignments
// @Tags         Simulations
// @Produce      json
// @Param        simulation_id  path      string  true  "Simulation ID"
// @Success      200            {object}  models.SimulationRun
// @Failure      400            {object}  map[string]string
// @Failure      404            {object}  map[string]string
// @Router       /simulations/{simulation_id} [get]
func (h *Simulation) Get(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "get_simulation")

	id, err := uuid.Parse(r.PathValue("simulation_id"))
	if err != nil {
		h.l.Warn(ctx, "invalid simulation uuid format")
		badRequestResponse(w, types.ErrInvalidSimulationID.Error())
		return
	}
	ctx = wrap.WithSimulationID(ctx, id.String())

	run, err := h.s.Get(ctx, id)
	if err != nil {
		if errors.Is(err, types.ErrSimulationNotFound) {
			h.l.Debug(ctx, "simulation not found")
		} else {
			h.l.Error(wrap.ErrorCtx(ctx, err), "failed to get simulation", err)
		}
		serviceErrorResponse(w, err)
		return
	}

	response := envelope{
		"simulationId": run.ID,
		"inputs":       run.Inputs,
		"results":      run.Results,
		"assignments":  run.Assignments,
		"createdAt":    run.CreatedAt,
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w)
	}
}

// List godoc
// @Summary      List simulations
// @Description  Returns one page of stored runs without their assignments
// @Tags         Simulations
// @Produce      json
// @Param        page       query     int     false  "Page number"  default(1)
// @Param        page_size  query     int     false  "Page size"    default(10)
// @Param        sort       query     string  false  "Sort key, prefix with - for descending"  default(-created_at)
// @Success      200        {object}  map[string]any
// @Failure      422        {object}  map[string]any
// @Router       /simulations [get]
func (h *Simulation) List(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "list_simulations")

	v := validator.New()
	qs := r.URL.Query()

	page := readInt(qs, "page", models.DefaultPage, v)
	pageSize := readInt(qs, "page_size", models.DefaultPageSize, v)
	sort := readString(qs, "sort", models.SimulationSortSafelist[0])

	filters, err := models.NewFilters(page, pageSize, sort, models.SimulationSortSafelist)
	if err != nil {
		h.l.Error(ctx, "failed to build filters", err)
		internalErrorResponse(w)
		return
	}

	filters.Validate(v)
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	runs, metadata, err := h.s.History(ctx, filters)
	if err != nil {
		var ve *types.ValidationError
		if errors.As(err, &ve) {
			failedValidationResponse(w, ve.Errors)
			return
		}
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to list simulations", err)
		serviceErrorResponse(w, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"simulations": runs, "metadata": metadata}, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w)
	}
}

// Stats godoc
// @Summary      Simulation statistics
// @Description  Aggregates over every stored run
// @Tags         Simulations
// @Produce      json
// @Success      200  {object}  models.SimulationStats
// @Failure      500  {object}  map[string]string
// @Router       /simulations/stats [get]
func (h *Simulation) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "simulation_stats")

	stats, err := h.s.Stats(ctx)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to get simulation stats", err)
		serviceErrorResponse(w, err)
		return
	}

	response := envelope{
		"total_simulations":  stats.TotalSimulations,
		"average_profit":     stats.AverageProfit,
		"average_efficiency": stats.AverageEfficiency,
		"best_efficiency":    stats.BestEfficiency,
		"worst_efficiency":   stats.WorstEfficiency,
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w)
	}
}
