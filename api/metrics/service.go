// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewService returns a new prometheus registry and the handler exposing it.
// Requests to the handler are themselves counted in the registry.
func NewService() (*prometheus.Registry, http.Handler) {
	registerer := prometheus.NewRegistry()
	handler := promhttp.InstrumentMetricHandler(
		registerer,
		promhttp.HandlerFor(
			registerer,
			promhttp.HandlerOpts{},
		),
	)
	return registerer, handler
}
