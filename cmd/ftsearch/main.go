package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Adithya-Monish-Kumar-K/ftsearch/internal/corpus"
	"github.com/Adithya-Monish-Kumar-K/ftsearch/internal/indexer"
	"github.com/Adithya-Monish-Kumar-K/ftsearch/pkg/config"
	"github.com/Adithya-Monish-Kumar-K/ftsearch/pkg/health"
	"github.com/Adithya-Monish-Kumar-K/ftsearch/pkg/logger"
	"github.com/Adithya-Monish-Kumar-K/ftsearch/pkg/metrics"
	"github.com/urfave/cli"
)

var (
	appName = "ftsearch"
	appSha  = "populated-at-link-time"
)

func main() {
	if err := makeApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func makeApp() *cli.App {
	app := cli.NewApp()
	app.Name = appName
	app.Version = appSha
	app.Usage = "in-memory full-text search over a line-oriented command stream"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "config",
			EnvVar: "FT_CONFIG",
			Usage:  "Path to a YAML config file",
		},
		cli.BoolFlag{
			Name:  "ignore-case",
			Usage: "Fold indexed text, queries and lookups to lower case",
		},
		cli.BoolFlag{
			Name:  "strict",
			Usage: "Reject malformed queries instead of dropping fragments",
		},
		cli.StringFlag{
			Name:  "corpus",
			Usage: "YAML file of {id, text, payload} documents indexed at startup",
		},
		cli.IntFlag{
			Name:  "metrics-port",
			Usage: "Expose Prometheus metrics on this port (0 keeps the config setting)",
		},
	}
	app.Action = runMain
	return app
}

func runMain(appCtx *cli.Context) error {
	cfg, err := config.Load(appCtx.String("config"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if appCtx.Bool("ignore-case") {
		cfg.Engine.IgnoreCase = true
	}
	if appCtx.Bool("strict") {
		cfg.Engine.StrictQueries = true
	}
	if port := appCtx.Int("metrics-port"); port > 0 {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Port = port
	}

	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Info("starting ftsearch",
		"ignore_case", cfg.Engine.IgnoreCase,
		"strict", cfg.Engine.StrictQueries,
		"delimiters", cfg.Engine.Delimiters,
	)

	m := metrics.New(nil)
	engine, err := indexer.NewEngine(cfg.Engine,
		indexer.WithMetrics(m),
		indexer.WithLogger(logger.WithComponent("indexer")),
	)
	if err != nil {
		return err
	}
	shared := indexer.NewShared(engine)

	if path := appCtx.String("corpus"); path != "" {
		docs, err := corpus.Load(path)
		if err != nil {
			return err
		}
		if err := corpus.IndexAll(shared, docs); err != nil {
			slog.Warn("corpus partially indexed", "path", path, "error", err)
		}
		slog.Info("corpus loaded", "path", path, "documents", shared.Count())
	}

	if cfg.Metrics.Enabled {
		checker := health.NewChecker()
		checker.Register("index", func(ctx context.Context) health.ComponentHealth {
			return health.ComponentHealth{
				Status:  health.StatusUp,
				Message: fmt.Sprintf("%d documents", shared.Count()),
			}
		})
		shutdown := metrics.StartServer(cfg.Metrics.Port, m.Handler(), checker)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(ctx); err != nil {
				slog.Error("metrics server shutdown failed", "error", err)
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = newShell(shared, os.Stdout).Run(ctx, os.Stdin)
	slog.Info("ftsearch stopped", "documents", shared.Count())
	return err
}
