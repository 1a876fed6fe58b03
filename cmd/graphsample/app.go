// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/katalvlaran/graphsample/builder"
	"github.com/katalvlaran/graphsample/closeness"
	"github.com/katalvlaran/graphsample/core"
	"github.com/katalvlaran/graphsample/distance"
	"github.com/katalvlaran/graphsample/edgelist"
	"github.com/katalvlaran/graphsample/internal/config"
	"github.com/katalvlaran/graphsample/internal/metrics"
	"github.com/katalvlaran/graphsample/render"
	"github.com/katalvlaran/graphsample/runner"
	"github.com/katalvlaran/graphsample/sample"
)

const samplePrompt = "What sample size would you like to use? Note: higher sample size increases runtime"

// effectiveDiameterQuantile is the conventional 90th-percentile cut.
const effectiveDiameterQuantile = 0.9

// errBadSampleSize is returned when the sample size read from stdin does not
// parse as a non-negative integer.
var errBadSampleSize = errors.New("graphsample: not a valid sample size")

// app is one report run.
type app struct {
	cfg     config.Config
	log     *slog.Logger
	stdin   io.Reader
	out     io.Writer
	metrics *metrics.Metrics
}

func newApp(cfg config.Config, log *slog.Logger, stdin io.Reader, stdout io.Writer) *app {
	return &app{
		cfg:     cfg,
		log:     log.With("run", uuid.NewString()),
		stdin:   stdin,
		out:     stdout,
		metrics: metrics.New(),
	}
}

// report prompts (if needed), loads the graph and prints every estimate.
func (a *app) report(ctx context.Context) error {
	k, err := a.sampleSize()
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "sample_size: %d\n", k)

	began := time.Now()

	g, err := a.loadGraph()
	if err != nil {
		return err
	}
	a.metrics.ObserveGraph(g)
	fmt.Fprintf(a.out, "Graph: %s nodes, %s edges\n",
		humanize.Comma(int64(g.Order())), humanize.Comma(int64(g.Size())))

	seed := a.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a.log.Info("sampling", "samples", k, "seed", seed, "workers", a.cfg.Workers)
	rng := sample.NewRand(seed)

	rep, err := distance.Collect(ctx, g, k, rng, a.runOpts(metrics.PhaseDistance)...)
	if err != nil {
		return fmt.Errorf("distance pass: %w", err)
	}
	a.metrics.ObserveReport(rep)
	a.log.Debug("distance pass done", "samples", len(rep.Samples), "observations", rep.Count)

	fmt.Fprintf(a.out, "Average shortest path for %d samples: %.2f\n", k, rep.Mean)
	if err = render.Histogram(a.out, rep.Histogram, a.cfg.Width); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Effective diameter (%.0fth percentile): %g\n",
		effectiveDiameterQuantile*100, rep.Histogram.Quantile(effectiveDiameterQuantile))

	in, err := a.rank(ctx, metrics.PhaseIn, closeness.RankIn, g, k, rng)
	if err != nil {
		return err
	}
	out, err := a.rank(ctx, metrics.PhaseOut, closeness.RankOut, g, k, rng)
	if err != nil {
		return err
	}
	if err = render.Ranking(a.out, fmt.Sprintf("Top %d In Closenesses:", a.cfg.Top), in, a.cfg.Top); err != nil {
		return err
	}
	if err = render.Ranking(a.out, fmt.Sprintf("Top %d Out Closenesses:", a.cfg.Top), out, a.cfg.Top); err != nil {
		return err
	}

	elapsed := time.Since(began)
	fmt.Fprintf(a.out, "Elapsed: %s\n", elapsed)
	a.log.Info("report done", "elapsed", elapsed)

	if a.cfg.Metrics.File != "" {
		if err = a.metrics.WriteFile(a.cfg.Metrics.File); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		a.log.Info("metrics written", "file", a.cfg.Metrics.File)
	}
	return nil
}

type rankFunc func(context.Context, *core.Graph, int, *rand.Rand, ...runner.Option) (closeness.Ranking, error)

func (a *app) rank(ctx context.Context, phase string, fn rankFunc, g *core.Graph, k int, rng *rand.Rand) (closeness.Ranking, error) {
	r, err := fn(ctx, g, k, rng, a.runOpts(phase)...)
	if err != nil {
		return nil, fmt.Errorf("%s pass: %w", phase, err)
	}
	a.metrics.ObserveSamples(phase, len(r))

	s := r.Summary()
	a.log.Debug("closeness pass done", "phase", phase,
		"scored", s.Scored, "nan", s.NaN, "mean", s.Mean, "stddev", s.StdDev)
	return r, nil
}

func (a *app) runOpts(phase string) []runner.Option {
	return []runner.Option{
		runner.WithWorkers(a.cfg.Workers),
		runner.WithObserver(a.metrics.Phase(phase)),
	}
}

// sampleSize returns the configured size or asks for one on stdin.
func (a *app) sampleSize() (int, error) {
	if a.cfg.Samples > 0 {
		return a.cfg.Samples, nil
	}
	fmt.Fprintln(a.out, samplePrompt)

	line, err := bufio.NewReader(a.stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("read sample size: %w", err)
	}
	k, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || k < 0 {
		return 0, fmt.Errorf("%w: %q", errBadSampleSize, strings.TrimSpace(line))
	}
	return k, nil
}

// loadGraph reads the edge list, or generates a random graph when
// configured to.
func (a *app) loadGraph() (*core.Graph, error) {
	if a.cfg.Synthetic() {
		rc := a.cfg.Random
		seed := rc.Seed
		if seed == 0 {
			seed = sample.DefaultSeed
		}
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(rc.Nodes, rc.P),
		)
		if err != nil {
			return nil, fmt.Errorf("random graph: %w", err)
		}
		a.log.Info("graph generated", "nodes", rc.Nodes, "p", rc.P, "seed", seed)
		return g, nil
	}

	info, err := os.Stat(a.cfg.Graph)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", edgelist.ErrRead, err)
	}
	g, st, err := edgelist.Load(a.cfg.Graph)
	if err != nil {
		return nil, err
	}
	a.log.Info("graph loaded",
		"file", a.cfg.Graph,
		"size", humanize.Bytes(uint64(info.Size())),
		"lines", st.Lines,
		"edges", st.Edges,
		"skipped", st.Skipped,
	)
	return g, nil
}
