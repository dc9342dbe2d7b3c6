package docs

// @title           GreenCart Simulation Service API
// @version         1.0
// @description     Runs delivery simulations over the current drivers, routes and orders and serves the stored runs.

// @contact.name   GreenCart Logistics

// @host      localhost:5000
// @BasePath  /

// Regenerate docs.go after changing handler annotations:
//   swag init -g docs/swagger_simulation.go -o docs --instanceName simulation
