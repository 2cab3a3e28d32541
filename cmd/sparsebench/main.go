// Command sparsebench compares sparsevec.Vector against a dense slice and a
// Go map on a random set of unique IDs.
//
// Usage:
//
//	sparsebench -count 1000 -max-id 10000 -kinds dense,map,sparse
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/hupe1980/sparsevec/internal/bench"
)

var (
	count    = flag.Int("count", 1000, "number of unique IDs")
	maxID    = flag.Int("max-id", 10000, "largest ID")
	seed     = flag.Int64("seed", 42, "random seed")
	parallel = flag.Int("parallel", 1, "stores measured concurrently")
	kinds    = flag.String("kinds", "dense,map,sparse", "comma-separated store kinds")
	verbose  = flag.Bool("v", false, "debug logging")
	jsonLogs = flag.Bool("json", false, "JSON log output")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "sparsebench: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := bench.NewTextLogger(level)
	if *jsonLogs {
		logger = bench.NewJSONLogger(level)
	}

	cfg := bench.Config{
		Count:       *count,
		MaxID:       *maxID,
		Seed:        *seed,
		Parallelism: *parallel,
	}
	for _, name := range strings.Split(*kinds, ",") {
		k, err := bench.ParseKind(strings.TrimSpace(name))
		if err != nil {
			return err
		}
		cfg.Kinds = append(cfg.Kinds, k)
	}

	metrics := &bench.BasicMetricsCollector{}
	results, err := bench.Run(ctx, cfg,
		bench.WithLogger(logger),
		bench.WithMetricsCollector(metrics),
	)
	if err != nil {
		return err
	}

	stats := metrics.GetStats()
	logger.InfoContext(ctx, "run completed",
		"scenarios", stats.Scenarios,
		"add_avg_ns", stats.AddAvgNanos,
		"read_avg_ns", stats.ReadAvgNanos,
	)
	return bench.Report(os.Stdout, results)
}
