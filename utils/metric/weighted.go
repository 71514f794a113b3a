// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/windowsampler/utils/random"
	"github.com/ava-labs/windowsampler/utils/sampler"
	"github.com/ava-labs/windowsampler/utils/wrappers"
)

const (
	resultLabel  = "result"
	successLabel = "success"
	failureLabel = "failure"
)

var _ sampler.Weighted = (*weighted)(nil)

type weighted struct {
	sampler.Weighted

	successes prometheus.Counter
	failures  prometheus.Counter
}

// NewWeighted returns a sampler that counts the outcome of every draw made
// through it. Draws are delegated to [w] unchanged.
func NewWeighted(
	namespace string,
	registerer prometheus.Registerer,
	w sampler.Weighted,
) (sampler.Weighted, error) {
	samples := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "samples",
			Help:      "Number of draws, by result",
		},
		[]string{resultLabel},
	)
	if err := registerer.Register(samples); err != nil {
		return nil, err
	}
	return &weighted{
		Weighted:  w,
		successes: samples.WithLabelValues(successLabel),
		failures:  samples.WithLabelValues(failureLabel),
	}, nil
}

func (w *weighted) SampleValue(value float64) (int, error) {
	return w.observe(w.Weighted.SampleValue(value))
}

func (w *weighted) Sample(source random.Source) (int, error) {
	return w.observe(w.Weighted.Sample(source))
}

func (w *weighted) observe(index int, err error) (int, error) {
	if err != nil {
		w.failures.Inc()
		return index, err
	}
	w.successes.Inc()
	return index, nil
}

// Builder builds samplers and records how long each build took and how many
// weights it covered.
type Builder struct {
	buildDuration *prometheus.HistogramVec
	buildLength   prometheus.Histogram
	buildErrors   *prometheus.CounterVec
}

func NewBuilder(namespace string, registerer prometheus.Registerer) (*Builder, error) {
	b := &Builder{
		buildDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "build_duration",
				Help:      "Time spent building a sampler (ns)",
				Buckets:   NanosecondsBuckets,
			},
			[]string{"strategy"},
		),
		buildLength: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "build_length",
				Help:      "Number of weights in each built sampler",
				Buckets:   LengthBuckets,
			},
		),
		buildErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "build_errors",
				Help:      "Number of rejected distributions",
			},
			[]string{"strategy"},
		),
	}

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(b.buildDuration),
		registerer.Register(b.buildLength),
		registerer.Register(b.buildErrors),
	)
	if errs.Errored() {
		return nil, errs.Err
	}
	return b, nil
}

// Build builds a sampler over [weights] with [strategy].
func (b *Builder) Build(strategy sampler.Strategy, weights []float64) (sampler.Weighted, error) {
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(seconds float64) {
		b.buildDuration.WithLabelValues(strategy.String()).Observe(seconds * 1e9)
	}))
	w, err := sampler.NewWeightedWithStrategy(strategy, weights)
	timer.ObserveDuration()
	if err != nil {
		b.buildErrors.WithLabelValues(strategy.String()).Inc()
		return nil, err
	}
	b.buildLength.Observe(float64(len(weights)))
	return w, nil
}
