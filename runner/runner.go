// SPDX-License-Identifier: MIT
//
// Package runner fans per-start-node work out over a bounded set of
// goroutines.
//
// Estimators draw their sample first (single-threaded, so the RNG is never
// shared), then hand the start nodes to Run. Each call of fn must write only
// to state it owns, typically slot i of a pre-sized result slice, so the
// single aggregation pass happens after Run returns.
//
// Workers <= 1 runs everything sequentially on the caller's goroutine, in
// input order. The first error cancels the context passed to the remaining
// calls and is returned.
package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("runner: invalid option supplied")

// Observer receives one notification per completed start node.
type Observer interface {
	// ObserveRun is called after fn(start) returns nil, with its wall time.
	ObserveRun(start int, elapsed time.Duration)
}

// Option configures Run.
type Option func(*Options)

// Options holds Run parameters.
type Options struct {
	// Workers is the number of concurrent fn calls; <= 1 means sequential.
	Workers int

	// Observer, if set, is notified after each successful call.
	Observer Observer

	err error
}

// DefaultOptions runs sequentially with no observer.
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// WithWorkers sets the parallelism. 0 selects runtime.GOMAXPROCS(0);
// negative values are rejected.
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = runtime.GOMAXPROCS(0)
		default:
			o.Workers = n
		}
	}
}

// WithObserver attaches an Observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// Resolve applies opts over DefaultOptions and reports the first invalid one.
func Resolve(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// Run calls fn(ctx, i, starts[i]) for every index of starts.
func Run(ctx context.Context, starts []int, fn func(ctx context.Context, i, start int) error, opts ...Option) error {
	o, err := Resolve(opts...)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if o.Workers <= 1 || len(starts) <= 1 {
		for i, s := range starts {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := o.call(ctx, fn, i, s); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i, s := range starts {
		i, s := i, s
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return o.call(gctx, fn, i, s)
		})
	}
	return g.Wait()
}

func (o Options) call(ctx context.Context, fn func(context.Context, int, int) error, i, start int) error {
	began := time.Now()
	if err := fn(ctx, i, start); err != nil {
		return err
	}
	if o.Observer != nil {
		o.Observer.ObserveRun(start, time.Since(began))
	}
	return nil
}
