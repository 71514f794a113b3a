// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package app

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/ava-labs/windowsampler/api/server"
	"github.com/ava-labs/windowsampler/utils/mixture"
)

const (
	metricsBase = "metrics"
	samplerBase = "sampler"

	// maxMixtureBody bounds the size of a mixture update.
	maxMixtureBody = 1 << 20
)

// ProgressReply is the body served at /ext/sampler/progress
type ProgressReply struct {
	Completed uint64  `json:"completed"`
	Target    uint64  `json:"target"`
	Strategy  string  `json:"strategy"`
	Length    int     `json:"length"`
	Total     float64 `json:"total"`
}

// MixtureArgs is the body accepted at /ext/sampler/mixture
type MixtureArgs struct {
	Components []mixture.Component `json:"components"`
}

// MixtureReply is the body served at /ext/sampler/mixture
type MixtureReply struct {
	Components []mixture.Component `json:"components"`
	Total      float64             `json:"total"`
}

func (a *samplerApp) startServer(metricsHandler http.Handler) error {
	a.server = server.New(a.log, a.config.HTTPHost, a.config.HTTPPort, []string{"*"})

	routes := []struct {
		handler        http.Handler
		base, endpoint string
	}{
		{metricsHandler, metricsBase, ""},
		{http.HandlerFunc(a.serveProgress), samplerBase, "/progress"},
		{http.HandlerFunc(a.serveMixture), samplerBase, "/mixture"},
	}
	for _, route := range routes {
		if err := a.server.AddRoute(route.handler, route.base, route.endpoint); err != nil {
			return fmt.Errorf("couldn't add route: %w", err)
		}
	}

	a.serverErr = make(chan error, 1)
	go func() {
		a.serverErr <- a.server.Dispatch()
	}()
	return nil
}

func (a *samplerApp) serveProgress(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	a.writeJSON(w, ProgressReply{
		Completed: a.completed.Load(),
		Target:    a.progress.Target(),
		Strategy:  a.config.Strategy.String(),
		Length:    a.sampler.Len(),
		Total:     a.sampler.Total(),
	})
}

// serveMixture returns the current components on GET and replaces them on
// PUT. A replacement is evaluated over the configured positions and swapped
// in atomically, draws in flight complete against the previous sampler.
func (a *samplerApp) serveMixture(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		a.componentsLock.RLock()
		components := a.components
		a.componentsLock.RUnlock()

		a.writeJSON(w, MixtureReply{
			Components: components,
			Total:      a.sampler.Total(),
		})
	case http.MethodPut:
		var args MixtureArgs
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxMixtureBody)).Decode(&args); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := a.setComponents(args.Components); err != nil {
			a.log.Warn("rejected mixture update",
				zap.Error(err),
			)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		a.writeJSON(w, MixtureReply{
			Components: args.Components,
			Total:      a.sampler.Total(),
		})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (a *samplerApp) setComponents(components []mixture.Component) error {
	a.componentsLock.Lock()
	defer a.componentsLock.Unlock()

	weights, err := a.evaluator.Evaluate(components, a.config.Positions)
	if err != nil {
		return err
	}
	if err := a.sampler.Rebuild(weights); err != nil {
		return err
	}
	a.components = components

	a.log.Info("rebuilt sampler",
		zap.Int("components", len(components)),
		zap.Float64("total", a.sampler.Total()),
	)
	return nil
}

func (a *samplerApp) writeJSON(w http.ResponseWriter, reply interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(reply); err != nil {
		a.log.Debug("couldn't write reply",
			zap.Error(err),
		)
	}
}
