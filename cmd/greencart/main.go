// Command greencart serves the delivery simulation API.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/kavitasoren02/greencart-logistics/config"
	"github.com/kavitasoren02/greencart-logistics/internal/app"
	"github.com/kavitasoren02/greencart-logistics/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		help       = flag.Bool("help", false, "Show help message")
		configPath = flag.String("config-path", "config.yaml", "Path to the config yaml file")
	)
	flag.Parse()

	if *help {
		config.PrintHelp()
		return 0
	}

	ctx := context.Background()
	bootLog := logger.InitLogger("greencart", logger.LevelDebug)

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		bootLog.Error(ctx, "failed to configure application", err)
		config.PrintHelp()
		return 1
	}
	config.PrintConfig(cfg)

	level := cfg.Log.Level
	if !logger.ValidateLogLevel(level) {
		bootLog.Warn(ctx, "unknown log level, using INFO", "level", level)
		level = logger.LevelInfo
	}
	log := logger.InitLogger(cfg.Mode.String(), level)

	application, err := app.NewApplication(ctx, *cfg, log)
	if err != nil {
		log.Error(ctx, "failed to init application", err)
		return 1
	}

	if err := application.Run(ctx); err != nil {
		log.Error(ctx, "failed to run application", err)
		return 1
	}
	return 0
}
