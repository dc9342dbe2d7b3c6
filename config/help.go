package config

import (
	"fmt"
	"io"
	"os"
)

const HelpMessage = `GreenCart Logistics simulation service

Usage:
  greencart [--mode=simulation-service] [--config-path=config.yaml]
  greencart --help

Options:
  --mode          Service to run. Supported: simulation-service
  --config-path   Path to the YAML config file (default: config.yaml)
  --help          Show this message

Every config key may be overridden with an environment variable,
e.g. DATABASE_HOST, RABBITMQ_HOST, REDIS_ADDR, SERVER_PORT, LOG_LEVEL.
A .env file in the working directory is loaded first when present.
`

func PrintHelp() {
	fmt.Print(HelpMessage)
}

// PrintConfig prints non secret settings so operators can confirm what was loaded.
func PrintConfig(cfg *Config) {
	fprintConfig(os.Stdout, cfg)
}

func fprintConfig(w io.Writer, cfg *Config) {
	fmt.Fprintf(w, "mode:       %s\n", cfg.Mode)
	fmt.Fprintf(w, "log level:  %s\n", cfg.Log.Level)
	fmt.Fprintf(w, "http:       %s\n", cfg.Server.Addr())
	fmt.Fprintf(w, "database:   %s@%s:%s/%s\n", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database)
	fmt.Fprintf(w, "rabbitmq:   %s@%s:%s exchange=%s\n", cfg.RabbitMQ.User, cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.Simulation.Exchange)
	if cfg.Redis.Enabled {
		fmt.Fprintf(w, "redis:      %s db=%d ttl=%s\n", cfg.Redis.Addr, cfg.Redis.DB, cfg.Redis.TTL)
	} else {
		fmt.Fprintln(w, "redis:      disabled")
	}
}
