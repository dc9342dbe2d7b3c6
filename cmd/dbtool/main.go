// Command dbtool applies the database schema and loads reference data.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/kavitasoren02/greencart-logistics/config"
	repo "github.com/kavitasoren02/greencart-logistics/internal/adapter/postgres"
	"github.com/kavitasoren02/greencart-logistics/internal/seed"
	"github.com/kavitasoren02/greencart-logistics/migrations"
	"github.com/kavitasoren02/greencart-logistics/pkg/logger"
	wrap "github.com/kavitasoren02/greencart-logistics/pkg/logger/wrapper"
	"github.com/kavitasoren02/greencart-logistics/pkg/postgres"
	"github.com/kavitasoren02/greencart-logistics/pkg/trm"
)

var (
	configPath = flag.String("config-path", "config.yaml", "Path to the config yaml file")
	schemaFlag = flag.Bool("schema", false, "Apply the embedded database schema")
	seedPath   = flag.String("seed", "", "Replace drivers, routes and orders with the given JSON fixture")
	timeout    = flag.Duration("timeout", 30*time.Second, "Overall time limit")
)

func main() {
	flag.Parse()

	log := logger.InitLogger("dbtool", logger.LevelInfo)

	if !*schemaFlag && *seedPath == "" {
		fmt.Fprintln(os.Stderr, "nothing to do: pass -schema and/or -seed <file>")
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, log); err != nil {
		log.Error(wrap.ErrorCtx(ctx, err), "dbtool failed", err)
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, log logger.Logger) error {
	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	db, err := postgres.New(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	seeds := repo.NewSeedRepo(db.Pool)

	if *schemaFlag {
		ctx := wrap.WithAction(ctx, "apply_schema")
		if err := seeds.ApplySchema(ctx, migrations.Schema); err != nil {
			return wrap.Error(ctx, err)
		}
		log.Info(ctx, "schema applied")
	}

	if *seedPath != "" {
		ctx := wrap.WithAction(ctx, "seed_reference_data")

		f, err := os.Open(*seedPath)
		if err != nil {
			return wrap.Error(ctx, fmt.Errorf("open fixture: %w", err))
		}
		defer f.Close()

		ds, err := seed.Decode(f)
		if err != nil {
			return wrap.Error(ctx, fmt.Errorf("%s: %w", *seedPath, err))
		}

		err = trm.New(db.Pool).Do(ctx, func(ctx context.Context) error {
			return seeds.Replace(ctx, ds.Drivers, ds.Routes, ds.Orders)
		})
		if err != nil {
			return wrap.Error(ctx, err)
		}

		log.Info(ctx, "reference data loaded",
			"drivers", len(ds.Drivers),
			"routes", len(ds.Routes),
			"orders", len(ds.Orders),
		)
	}

	return nil
}
