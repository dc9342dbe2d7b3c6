package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/kavitasoren02/greencart-logistics/internal/adapter/http/handler/dto"
	"github.com/kavitasoren02/greencart-logistics/internal/domain/models"
	"github.com/kavitasoren02/greencart-logistics/internal/domain/types"
	"github.com/kavitasoren02/greencart-logistics/pkg/logger"
	wrap "github.com/kavitasoren02/greencart-logistics/pkg/logger/wrapper"
	"github.com/kavitasoren02/greencart-logistics/pkg/validator"
)

type ReferenceService interface {
	ListDrivers(ctx context.Context, filters models.Filters) ([]models.Driver, models.Metadata, error)
	GetDriver(ctx context.Context, id int64) (models.Driver, error)
	ListRoutes(ctx context.Context, filters models.Filters) ([]models.Route, models.Metadata, error)
	GetRoute(ctx context.Context, id int) (models.Route, error)
	ListOrders(ctx context.Context, filters models.OrderFilters) ([]models.Order, models.Metadata, error)
	GetOrder(ctx context.Context, id string) (models.Order, error)
}

// Reference serves the drivers, routes and orders a simulation reads.
type Reference struct {
	s ReferenceService
	l logger.Logger
}

func NewReference(s ReferenceService, l logger.Logger) *Reference {
	return &Reference{
		s: s,
		l: l,
	}
}

// ListDrivers godoc
// @Summary      List drivers
// @Description  Returns one page of drivers with their derived fatigue flag
// @Tags         Reference
// @Produce      json
// @Param        page       query     int     false  "Page number"  default(1)
// @Param        page_size  query     int     false  "Page size"    default(10)
// @Param        sort       query     string  false  "Sort key, prefix with - for descending"  default(id)
// @Success      200        {object}  map[string]any
// @Failure      422        {object}  map[string]any
// @Router       /drivers [get]
func (h *Reference) ListDrivers(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "list_drivers")

	v := validator.New()
	filters := readFilters(r.URL.Query(), models.DriverSortSafelist, v)
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	drivers, metadata, err := h.s.ListDrivers(ctx, filters)
	if err != nil {
		h.listError(ctx, w, err, "failed to list drivers")
		return
	}

	h.write(ctx, w, envelope{"drivers": dto.NewDriverResponses(drivers), "metadata": metadata})
}

// GetDriver godoc
// @Summary      Get a driver
// @Tags         Reference
// @Produce      json
// @Param        driver_id  path      int  true  "Driver ID"
// @Success      200        {object}  dto.DriverResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /drivers/{driver_id} [get]
func (h *Reference) GetDriver(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "get_driver")

	id, err := strconv.ParseInt(r.PathValue("driver_id"), 10, 64)
	if err != nil || id < 1 {
		badRequestResponse(w, types.ErrInvalidID.Error())
		return
	}

	driver, err := h.s.GetDriver(ctx, id)
	if err != nil {
		h.getError(ctx, w, err, "failed to get driver")
		return
	}

	h.write(ctx, w, envelope{"driver": dto.NewDriverResponse(driver)})
}

// ListRoutes godoc
// @Summary      List routes
// @Tags         Reference
// @Produce      json
// @Param        page       query     int     false  "Page number"  default(1)
// @Param        page_size  query     int     false  "Page size"    default(10)
// @Param        sort       query     string  false  "Sort key, prefix with - for descending"  default(route_id)
// @Success      200        {object}  map[string]any
// @Failure      422        {object}  map[string]any
// @Router       /routes [get]
func (h *Reference) ListRoutes(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "list_routes")

	v := validator.New()
	filters := readFilters(r.URL.Query(), models.RouteSortSafelist, v)
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	routes, metadata, err := h.s.ListRoutes(ctx, filters)
	if err != nil {
		h.listError(ctx, w, err, "failed to list routes")
		return
	}

	h.write(ctx, w, envelope{"routes": routes, "metadata": metadata})
}

// GetRoute godoc
// @Summary      Get a route
// @Tags         Reference
// @Produce      json
// @Param        route_id  path      int  true  "Route ID"
// @Success      200       {object}  models.Route
// @Failure      400       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /routes/{route_id} [get]
func (h *Reference) GetRoute(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "get_route")

	id, err := strconv.Atoi(r.PathValue("route_id"))
	if err != nil || id < 1 {
		badRequestResponse(w, types.ErrInvalidID.Error())
		return
	}

	route, err := h.s.GetRoute(ctx, id)
	if err != nil {
		h.getError(ctx, w, err, "failed to get route")
		return
	}

	h.write(ctx, w, envelope{"route": route})
}

// ListOrders godoc
// @Summary      List orders
// @Description  Returns one page of orders with the outcome of the last simulation that assigned them
// @Tags         Reference
// @Produce      json
// @Param        page          query     int     false  "Page number"  default(1)
// @Param        page_size     query     int     false  "Page size"    default(10)
// @Param        sort          query     string  false  "Sort key, prefix with - for descending"  default(order_id)
// @Param        route_id      query     int     false  "Only orders on this route"
// @Param        is_delivered  query     bool    false  "Only delivered or undelivered orders"
// @Success      200           {object}  map[string]any
// @Failure      422           {object}  map[string]any
// @Router       /orders [get]
func (h *Reference) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "list_orders")

	v := validator.New()
	qs := r.URL.Query()
	filters := models.OrderFilters{
		Filters:     readFilters(qs, models.OrderSortSafelist, v),
		RouteID:     readOptionalInt(qs, "route_id", v),
		IsDelivered: readOptionalBool(qs, "is_delivered", v),
	}
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	orders, metadata, err := h.s.ListOrders(ctx, filters)
	if err != nil {
		h.listError(ctx, w, err, "failed to list orders")
		return
	}

	h.write(ctx, w, envelope{"orders": orders, "metadata": metadata})
}

// GetOrder godoc
// @Summary      Get an order
// @Tags         Reference
// @Produce      json
// @Param        order_id  path      string  true  "Order ID"
// @Success      200       {object}  models.Order
// @Failure      404       {object}  map[string]string
// @Router       /orders/{order_id} [get]
func (h *Reference) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "get_order")

	order, err := h.s.GetOrder(ctx, r.PathValue("order_id"))
	if err != nil {
		h.getError(ctx, w, err, "failed to get order")
		return
	}

	h.write(ctx, w, envelope{"order": order})
}

// readFilters reads page, page_size and sort. The first safelist entry is the
// default sort.
func readFilters(qs url.Values, safelist []string, v *validator.Validator) models.Filters {
	f := models.Filters{
		Page:         readInt(qs, "page", models.DefaultPage, v),
		PageSize:     readInt(qs, "page_size", models.DefaultPageSize, v),
		Sort:         readString(qs, "sort", safelist[0]),
		SortSafelist: safelist,
	}
	f.Validate(v)
	return f
}

func (h *Reference) listError(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	var ve *types.ValidationError
	if errors.As(err, &ve) {
		failedValidationResponse(w, ve.Errors)
		return
	}
	h.l.Error(wrap.ErrorCtx(ctx, err), msg, err)
	serviceErrorResponse(w, err)
}

func (h *Reference) getError(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	if GetCode(err) == http.StatusNotFound {
		h.l.Debug(ctx, "reference record not found", "error", err)
	} else {
		h.l.Error(wrap.ErrorCtx(ctx, err), msg, err)
	}
	serviceErrorResponse(w, err)
}

func (h *Reference) write(ctx context.Context, w http.ResponseWriter, data envelope) {
	if err := writeJSON(w, http.StatusOK, data, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w)
	}
}
