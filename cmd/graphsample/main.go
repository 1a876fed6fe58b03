// SPDX-License-Identifier: MIT

// Command graphsample estimates shortest-path statistics of a large directed
// graph from a random sample of BFS start nodes: the mean distance, a
// distance histogram, and the top in/out closeness nodes.
//
// Usage:
//
//	graphsample [-config graphsample.yaml] [-graph amazon0302.txt] [-samples 500]
//
// When no sample size is configured the command asks for one on stdin.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/graphsample/internal/config"
	"github.com/katalvlaran/graphsample/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout)
	stop()

	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	default:
		slog.Error("graphsample failed", "err", err)
		os.Exit(1)
	}
}

// run parses args, configures logging and executes one report.
func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := parseConfig(args)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()
	slog.SetDefault(logger)

	return newApp(cfg, logger, stdin, stdout).report(ctx)
}

// parseConfig loads -config (if any) and applies explicitly set flags on top.
func parseConfig(args []string) (config.Config, error) {
	fs := flag.NewFlagSet("graphsample", flag.ContinueOnError)
	def := config.Default()

	path := fs.String("config", "", "YAML configuration file")
	graph := fs.String("graph", def.Graph, "edge-list file, one \"from to\" pair per line")
	samples := fs.Int("samples", 0, "sample size (0 asks on stdin)")
	seed := fs.Int64("seed", 0, "sampler seed (0 uses the clock)")
	workers := fs.Int("workers", 0, "parallel BFS runs (0 uses GOMAXPROCS)")
	top := fs.Int("top", def.Top, "closeness entries to print per direction")
	width := fs.Int("width", def.Width, "maximum histogram bar width")
	logLevel := fs.String("log-level", def.Log.Level, "debug, info, warn or error")
	logFormat := fs.String("log-format", def.Log.Format, "text or json")
	logFile := fs.String("log-file", "", "rotating log file (default stderr)")
	metricsFile := fs.String("metrics-file", "", "write prometheus metrics to this file")
	randomNodes := fs.Int("random-nodes", 0, "use a random G(n,p) graph with this many nodes (O(n²) to build, at most 20000)")
	randomP := fs.Float64("random-p", def.Random.P, "edge probability for -random-nodes")

	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(*path)
	if err != nil {
		return cfg, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "graph":
			cfg.Graph = *graph
		case "samples":
			cfg.Samples = *samples
		case "seed":
			cfg.Seed = *seed
		case "workers":
			cfg.Workers = *workers
		case "top":
			cfg.Top = *top
		case "width":
			cfg.Width = *width
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log-format":
			cfg.Log.Format = *logFormat
		case "log-file":
			cfg.Log.File = *logFile
		case "metrics-file":
			cfg.Metrics.File = *metricsFile
		case "random-nodes":
			cfg.Random.Nodes = *randomNodes
		case "random-p":
			cfg.Random.P = *randomP
		}
	})

	if err = cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
