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

// Mapper expands resource declarations into route registrations on a
// Registrar. It is meant to run during the application's startup routing
// phase; it keeps no route state of its own and is not safe for
// concurrent declaration.
type Mapper struct {
	reg         Registrar
	diagnostics DiagnosticHandler
	logger      *slog.Logger
}

// MapperOption configures a Mapper.
type MapperOption func(*Mapper)

// WithDiagnostics sets a handler for route expansion diagnostics. Without
// a handler, diagnostics are silently dropped.
func WithDiagnostics(h DiagnosticHandler) MapperOption {
	return func(m *Mapper) {
		m.diagnostics = h
	}
}

// WithLogger enables debug logging of every route registration.
func WithLogger(logger *slog.Logger) MapperOption {
	return func(m *Mapper) {
		m.logger = logger
	}
}

// NewMapper returns a Mapper pushing registrations to reg.
func NewMapper(reg Registrar, opts ...MapperOption) *Mapper {
	m := &Mapper{reg: reg}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Resources declares a plural (collection) resource: the full conventional
// route set including index.
//
//	m.Resources("books")
//	// GET    /books          books.index    → "books"
//	// GET    /books/new      books.new      → "new_book"
//	// POST   /books          books.create   → "book"
//	// GET    /books/:id/edit books.edit     → "edit_book"
//	// GET    /books/:id      books.show     → "book"
//	// PATCH  /books/:id      books.update   → "book"
//	// PUT    /books/:id      books.update   → "book"
//	// DELETE /books/:id      books.destroy  → "book"
func (m *Mapper) Resources(name string, opts ...Option) {
	m.declare(name, true, nil, opts)
}

// Resource declares a singular resource: one instance addressed without an
// ID segment, and no index action.
//
//	m.Resource("profile")
//	// GET    /profile/new   profile.new     → "new_profile"
//	// POST   /profile       profile.create  → "profile"
//	// GET    /profile/edit  profile.edit    → "edit_profile"
//	// GET    /profile       profile.show    → "profile"
//	// PATCH  /profile       profile.update  → "profile"
//	// PUT    /profile       profile.update  → "profile"
//	// DELETE /profile       profile.destroy → "profile"
func (m *Mapper) Resource(name string, opts ...Option) {
	m.declare(name, false, nil, opts)
}

// parentContext scopes a nested declaration: the parent's path segment,
// the name used for the ID placeholder and name prefix, and the parent's
// cardinality. Only plural parents contribute an ID placeholder.
type parentContext struct {
	path   string
	name   string
	plural bool
}

// declare applies options, expands the declaration, and opens a nesting
// scope when requested.
func (m *Mapper) declare(name string, plural bool, parent *parentContext, opts []Option) {
	cfg := declarationConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	d := declaration{name: name, plural: plural, cfg: cfg, parent: parent}
	m.expand(d)

	if cfg.nest != nil {
		seg := d.pathSegment()
		parentName := seg
		if plural {
			parentName = inflect.Singularize(seg)
		}
		cfg.nest(&Scope{
			mapper: m,
			parent: parentContext{path: seg, name: parentName, plural: plural},
		})
	}
}

func (m *Mapper) diagnostic(e DiagnosticEvent) {
	if m.diagnostics != nil {
		m.diagnostics.OnDiagnostic(e)
	}
}
