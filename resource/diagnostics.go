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

package resource

// DiagnosticEvent describes a route expansion anomaly or noteworthy step.
// Diagnostics are optional: expansion behaves identically whether they are
// collected or not.
type DiagnosticEvent struct {
	Kind    DiagnosticKind
	Message string
	Fields  map[string]any
}

// DiagnosticKind categorizes diagnostic events.
type DiagnosticKind string

const (
	// DiagRouteRegistered is emitted for every route pushed to the
	// registrar.
	DiagRouteRegistered DiagnosticKind = "route_registered"

	// DiagEmptyActionSet is emitted when Only/Except filtering leaves a
	// declaration with no actions at all, which registers nothing.
	// Usually a typo in an action name.
	DiagEmptyActionSet DiagnosticKind = "empty_action_set"
)

// DiagnosticHandler receives diagnostic events from route expansion.
// Implementations may log, count, or ignore them.
//
// Example:
//
//	handler := resource.DiagnosticHandlerFunc(func(e resource.DiagnosticEvent) {
//	    slog.Warn(e.Message, "kind", e.Kind, "fields", e.Fields)
//	})
//	m := resource.NewMapper(reg, resource.WithDiagnostics(handler))
type DiagnosticHandler interface {
	OnDiagnostic(DiagnosticEvent)
}

// DiagnosticHandlerFunc is a function adapter for DiagnosticHandler.
type DiagnosticHandlerFunc func(DiagnosticEvent)

func (f DiagnosticHandlerFunc) OnDiagnostic(e DiagnosticEvent) {
	f(e)
}
