// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/ava-labs/windowsampler/api/metrics"
	"github.com/ava-labs/windowsampler/api/server"
	"github.com/ava-labs/windowsampler/config"
	"github.com/ava-labs/windowsampler/utils/logging"
	"github.com/ava-labs/windowsampler/utils/metric"
	"github.com/ava-labs/windowsampler/utils/mixture"
	"github.com/ava-labs/windowsampler/utils/random"
	"github.com/ava-labs/windowsampler/utils/sampler"
	"github.com/ava-labs/windowsampler/utils/timer"
)

const (
	// ctxCheckInterval is the number of draws between cancellation checks
	// and progress updates.
	ctxCheckInterval = 1024

	progressWindow = 5

	exitCodeInterrupted = 1
)

var (
	_ App = (*samplerApp)(nil)

	errAlreadyStarted = errors.New("already started")
)

type samplerApp struct {
	config config.Config
	log    logging.Logger

	evaluator *mixture.Evaluator
	sampler   *sampler.Reloadable
	// instrumented wraps [sampler] and is what the workers draw from.
	instrumented sampler.Weighted

	componentsLock sync.RWMutex
	components     []mixture.Component

	server *server.Server
	// serverErr receives the result of Dispatch.
	serverErr chan error

	completed atomic.Uint64
	progress  *timer.Progress
	limiter   *rate.Limiter

	countsLock sync.Mutex
	counts     []int

	started bool
	ctx     context.Context
	cancel  context.CancelFunc
	workers *errgroup.Group
}

// New returns an application that evaluates the configured mixture, builds a
// sampler over it and draws from it across the configured workers.
func New(config config.Config, log logging.Logger) (App, error) {
	evaluator, err := mixture.NewEvaluator(config.Floor)
	if err != nil {
		return nil, err
	}
	return &samplerApp{
		config:     config,
		log:        log,
		evaluator:  evaluator,
		components: config.Components,
		progress:   timer.NewProgress(progressWindow, uint64(config.Draws)),
		limiter:    rate.NewLimiter(rate.Every(config.ProgressFrequency), 1),
		counts:     make([]int, len(config.Positions)),
	}, nil
}

func (a *samplerApp) Start() error {
	if err := a.start(); err != nil {
		a.log.Error("couldn't start sampling",
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (a *samplerApp) start() error {
	if a.started {
		return errAlreadyStarted
	}
	a.started = true

	weights, err := a.evaluator.Evaluate(a.components, a.config.Positions)
	if err != nil {
		return fmt.Errorf("couldn't evaluate mixture: %w", err)
	}

	registry, metricsHandler := metrics.NewService()
	builder, err := metric.NewBuilder(a.config.MetricsNamespace, registry)
	if err != nil {
		return fmt.Errorf("couldn't register build metrics: %w", err)
	}
	a.sampler, err = sampler.NewReloadableFunc(
		func(weights []float64) (sampler.Weighted, error) {
			return builder.Build(a.config.Strategy, weights)
		},
		weights,
	)
	if err != nil {
		return fmt.Errorf("couldn't build sampler: %w", err)
	}
	a.instrumented, err = metric.NewWeighted(a.config.MetricsNamespace, registry, a.sampler)
	if err != nil {
		return fmt.Errorf("couldn't register sample metrics: %w", err)
	}

	a.log.Info("built sampler",
		zap.Stringer("strategy", a.config.Strategy),
		zap.Int("length", a.sampler.Len()),
		zap.Float64("total", a.sampler.Total()),
		zap.Int("components", len(a.components)),
	)

	if a.config.HTTPPort != 0 {
		if err := a.startServer(metricsHandler); err != nil {
			return err
		}
	}

	a.ctx, a.cancel = context.WithCancel(context.Background())
	a.workers, a.ctx = errgroup.WithContext(a.ctx)
	for i, draws := range splitDraws(a.config.Draws, a.config.Workers) {
		i, draws := i, draws
		a.workers.Go(func() error {
			return a.work(a.ctx, i, draws)
		})
	}

	a.log.Info("sampling started",
		zap.Int("draws", a.config.Draws),
		zap.Int("workers", a.config.Workers),
		zap.String("randomSource", a.config.RandomSource),
		zap.Uint64("seed", a.config.Seed),
	)
	return nil
}

func (a *samplerApp) Stop() error {
	if a.cancel != nil {
		a.cancel()
	}
	return nil
}

func (a *samplerApp) ExitCode() (int, error) {
	err := a.workers.Wait()
	a.cancel()

	a.countsLock.Lock()
	counts := a.counts
	a.countsLock.Unlock()

	a.log.Info("sampling finished",
		zap.Uint64("completed", a.completed.Load()),
		zap.Ints("counts", counts),
	)

	if a.server != nil {
		if err := a.server.Shutdown(); err != nil {
			a.log.Warn("couldn't shut down the API server",
				zap.Error(err),
			)
		}
		if err := <-a.serverErr; err != nil {
			a.log.Warn("API server stopped unexpectedly",
				zap.Error(err),
			)
		}
	}

	switch {
	case err == nil:
		return 0, nil
	case errors.Is(err, context.Canceled):
		a.log.Info("sampling interrupted")
		return exitCodeInterrupted, nil
	default:
		a.log.Error("sampling failed",
			zap.Error(err),
		)
		return 1, err
	}
}

// newSource returns the source of worker [id]. Each worker is seeded
// independently so a run is reproducible for a fixed worker count.
func (a *samplerApp) newSource(id int) random.Source {
	if a.config.RandomSource == config.Ran1Source {
		return random.NewRan1(int32(a.config.Seed) + int32(id))
	}
	return random.NewMT19937(a.config.Seed + uint64(id))
}

func (a *samplerApp) work(ctx context.Context, id int, draws int) error {
	source := a.newSource(id)
	counts := make([]int, a.sampler.Len())
	defer a.merge(counts)

	// Shared progress is only updated every [ctxCheckInterval] draws.
	var pending uint64
	defer func() {
		a.completed.Add(pending)
	}()

	for i := 0; i < draws; i++ {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			if pending > 0 {
				completed := a.completed.Add(pending)
				pending = 0
				if a.limiter.Allow() {
					a.logProgress(completed)
				}
			}
		}

		index, err := a.instrumented.Sample(source)
		if err != nil {
			return fmt.Errorf("worker %d draw %d: %w", id, i, err)
		}
		counts[index]++
		pending++
	}
	return nil
}

func (a *samplerApp) merge(counts []int) {
	a.countsLock.Lock()
	defer a.countsLock.Unlock()

	for i, count := range counts {
		a.counts[i] += count
	}
}

func (a *samplerApp) logProgress(completed uint64) {
	percent, eta, ok := a.progress.Observe(completed, time.Now())
	if !ok {
		a.log.Info("sampling",
			zap.Uint64("completed", completed),
			zap.Float64("percent", percent),
		)
		return
	}
	a.log.Info("sampling",
		zap.Uint64("completed", completed),
		zap.Float64("percent", percent),
		zap.Duration("eta", eta),
	)
}

// splitDraws spreads [draws] over [workers] as evenly as possible.
func splitDraws(draws, workers int) []int {
	shares := make([]int, workers)
	for i := range shares {
		shares[i] = draws / workers
		if i < draws%workers {
			shares[i]++
		}
	}
	return shares
}
