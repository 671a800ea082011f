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

import (
	"log/slog"

	"rivaas.dev/restkit/inflect"
)

// declaration is one resource declaration being expanded. It lives for a
// single declare call.
type declaration struct {
	name   string
	plural bool
	cfg    declarationConfig
	parent *parentContext
}

// controller returns the handler controller identifier.
func (d declaration) controller() string {
	if d.cfg.controller != "" {
		return d.cfg.controller
	}
	return d.name
}

// pathSegment returns the URL path segment for the resource.
func (d declaration) pathSegment() string {
	if d.cfg.path != "" {
		return d.cfg.path
	}
	return d.name
}

// baseName returns the route base name: the singularized name for plural
// declarations, the name itself for singular ones, or the As override.
func (d declaration) baseName() string {
	if d.cfg.as != "" {
		return d.cfg.as
	}
	if d.plural {
		return inflect.Singularize(d.name)
	}
	return d.name
}

// routeEntry is one generated registration, handed to the Registrar and
// then forgotten; the registrar owns the route table.
type routeEntry struct {
	method string
	path   string
	name   string
}

// expand generates the route set for a declaration and pushes every entry
// to the registrar.
func (m *Mapper) expand(d declaration) {
	defaults := pluralActions
	if !d.plural {
		defaults = singularActions
	}

	actions := effectiveActions(defaults, d.cfg.only, d.cfg.except)
	if len(actions) == 0 {
		m.diagnostic(DiagnosticEvent{
			Kind:    DiagEmptyActionSet,
			Message: "resource declaration expands to no actions",
			Fields:  map[string]any{"resource": d.name},
		})
		return
	}

	to := d.controller()
	for _, action := range actions {
		handler := to + "." + string(action)
		for _, entry := range d.routesFor(action) {
			m.register(entry, handler)
		}
	}
}

// routeName applies the parent prefix to a base name that already carries
// its action prefix, so a nested new route is named parent_new_child.
func (d declaration) routeName(base string) string {
	if d.parent != nil {
		return d.parent.name + "_" + base
	}
	return base
}

// routesFor computes the registrations for one action. Update produces two
// entries, PATCH and PUT, against the one logical action.
func (d declaration) routesFor(action Action) []routeEntry {
	base := "/" + d.pathSegment()
	if d.parent != nil {
		prefix := "/" + d.parent.path
		// Singular parents are addressed without an identifier, so the
		// child path carries no placeholder.
		if d.parent.plural {
			prefix += "/:" + d.parent.name + "_id"
		}
		base = prefix + base
	}

	// Singular resources are addressed without an identifier segment.
	idSegment := ""
	if d.plural {
		idSegment = "/:id"
	}

	name := d.routeName(d.baseName())

	switch action {
	case ActionIndex:
		return []routeEntry{{"GET", base, d.routeName(inflect.Pluralize(d.baseName()))}}
	case ActionNew:
		return []routeEntry{{"GET", base + "/new", d.routeName("new_" + d.baseName())}}
	case ActionCreate:
		return []routeEntry{{"POST", base, name}}
	case ActionEdit:
		return []routeEntry{{"GET", base + idSegment + "/edit", d.routeName("edit_" + d.baseName())}}
	case ActionShow:
		return []routeEntry{{"GET", base + idSegment, name}}
	case ActionUpdate:
		return []routeEntry{
			{"PATCH", base + idSegment, name},
			{"PUT", base + idSegment, name},
		}
	case ActionDestroy:
		return []routeEntry{{"DELETE", base + idSegment, name}}
	default:
		return nil
	}
}

// register pushes one entry to the registrar through its method-specific
// registration, then reports it to the optional observers.
func (m *Mapper) register(entry routeEntry, to string) {
	switch entry.method {
	case "GET":
		m.reg.GET(entry.path, to, entry.name)
	case "POST":
		m.reg.POST(entry.path, to, entry.name)
	case "PATCH":
		m.reg.PATCH(entry.path, to, entry.name)
	case "PUT":
		m.reg.PUT(entry.path, to, entry.name)
	case "DELETE":
		m.reg.DELETE(entry.path, to, entry.name)
	default:
		return
	}

	if m.logger != nil {
		m.logger.Debug("registered resource route",
			slog.String("method", entry.method),
			slog.String("path", entry.path),
			slog.String("to", to),
			slog.String("name", entry.name),
		)
	}
	m.diagnostic(DiagnosticEvent{
		Kind:    DiagRouteRegistered,
		Message: "resource route registered",
		Fields: map[string]any{
			"method": entry.method,
			"path":   entry.path,
			"to":     to,
			"name":   entry.name,
		},
	})
}
