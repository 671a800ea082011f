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
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName identifies this instrumentation scope.
const meterName = "rivaas.dev/restkit/respond"

// observer collects the optional observability sinks for a session. All
// methods are safe on a nil receiver: sessions without observability carry
// no observer at all.
type observer struct {
	logger      *slog.Logger
	resolvedCtr metric.Int64Counter
	unknownCtr  metric.Int64Counter
}

// resolved records a completed format resolution.
func (o *observer) resolved(ctx context.Context, f Format, source string) {
	if o == nil {
		return
	}
	if o.logger != nil {
		o.logger.DebugContext(ctx, "resolved response format",
			"format", f.String(), "source", source)
	}
	if o.resolvedCtr != nil {
		o.resolvedCtr.Add(ctx, 1, metric.WithAttributes(
			attribute.String("format", f.String()),
			attribute.String("source", source),
		))
	}
}

// unknownFormat records a session that finalized without a handler for its
// resolved format.
func (o *observer) unknownFormat(ctx context.Context, f Format, registered []Format) {
	if o == nil {
		return
	}
	if o.logger != nil {
		names := make([]string, len(registered))
		for i, r := range registered {
			names[i] = r.String()
		}
		o.logger.WarnContext(ctx, "no handler for resolved format",
			"format", f.String(), "registered", names)
	}
	if o.unknownCtr != nil {
		o.unknownCtr.Add(ctx, 1, metric.WithAttributes(
			attribute.String("format", f.String()),
		))
	}
}

// instrument creates the counters on o from the given provider. Instrument
// creation errors leave the corresponding counter nil; metrics are
// best-effort and never affect dispatch.
func (o *observer) instrument(mp metric.MeterProvider) {
	meter := mp.Meter(meterName)

	if ctr, err := meter.Int64Counter("respond.format.resolved",
		metric.WithDescription("Format resolutions, by format and source."),
	); err == nil {
		o.resolvedCtr = ctr
	}

	if ctr, err := meter.Int64Counter("respond.format.unknown",
		metric.WithDescription("Sessions finalized without a handler for the resolved format."),
	); err == nil {
		o.unknownCtr = ctr
	}
}
