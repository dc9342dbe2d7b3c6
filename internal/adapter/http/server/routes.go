package server

import (
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/kavitasoren02/greencart-logistics/docs"
)

// setupRoutes - setups http routes
func (a *API) setupRoutes() {
	// System Health
	a.mux.HandleFunc("GET /health", a.routes.health.HealthCheck)

	a.setupSimulationRoutes()
	a.setupReferenceRoutes()
	a.setupSwaggerRoutes()
	a.setupMetricsRoute()
}

// setupSimulationRoutes setups routes for simulation service
func (a *API) setupSimulationRoutes() {
	a.mux.HandleFunc("POST /simulations", a.routes.simulation.Run)                // Run a simulation
	a.mux.HandleFunc("GET /simulations", a.routes.simulation.List)                // Paginated run history
	a.mux.HandleFunc("GET /simulations/stats", a.routes.simulation.Stats)         // Aggregate statistics
	a.mux.HandleFunc("GET /simulations/{simulation_id}", a.routes.simulation.Get) // One run with assignments
	a.mux.HandleFunc("GET /ws/simulations", a.routes.feed.HandleWS)               // Live feed of completed runs
}

// setupReferenceRoutes setups read only routes for drivers, routes and orders
func (a *API) setupReferenceRoutes() {
	a.mux.HandleFunc("GET /drivers", a.routes.reference.ListDrivers)           // Paginated drivers with fatigue flag
	a.mux.HandleFunc("GET /drivers/{driver_id}", a.routes.reference.GetDriver) // One driver
	a.mux.HandleFunc("GET /routes", a.routes.reference.ListRoutes)             // Paginated routes
	a.mux.HandleFunc("GET /routes/{route_id}", a.routes.reference.GetRoute)    // One route
	a.mux.HandleFunc("GET /orders", a.routes.reference.ListOrders)             // Orders, filterable by route_id and is_delivered
	a.mux.HandleFunc("GET /orders/{order_id}", a.routes.reference.GetOrder)    // One order with its last outcome
}

// setupSwaggerRoutes configures Swagger UI endpoints
func (a *API) setupSwaggerRoutes() {
	swaggerURL := httpSwagger.InstanceName(docs.SwaggerInfo.InstanceName())
	a.mux.HandleFunc("/swagger/", httpSwagger.Handler(swaggerURL))
}

// setupMetricsRoute configures the Prometheus metrics endpoint
func (a *API) setupMetricsRoute() {
	a.mux.Handle("GET /metrics", promhttp.Handler())
}
