// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package respond

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"
)

// Option configures a Responder session.
type Option func(*Responder)

// WithLogger enables debug logging of format resolution and warning logs
// for unknown-format failures on the given logger.
//
// Example:
//
//	r := respond.New(req, res, respond.WithLogger(slog.Default()))
func WithLogger(logger *slog.Logger) Option {
	return func(r *Responder) {
		if logger == nil {
			return
		}
		r.ensureObserver().logger = logger
	}
}

// WithMeterProvider enables OpenTelemetry metrics for the session:
// a counter of format resolutions (by format and source) and a counter of
// unknown-format failures.
//
// Example:
//
//	r := respond.New(req, res, respond.WithMeterProvider(provider))
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(r *Responder) {
		if mp == nil {
			return
		}
		r.ensureObserver().instrument(mp)
	}
}

func (r *Responder) ensureObserver() *observer {
	if r.observer == nil {
		r.observer = &observer{}
	}
	return r.observer
}
