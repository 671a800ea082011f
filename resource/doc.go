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

// Package resource expands declarative RESTful resource declarations into
// conventional route registrations on an external router.
//
// A declaration names a resource; the Mapper turns it into the full
// conventional route set, with controller identifiers, path templates, and
// route names derived from the name. The router stays external behind the
// Registrar interface; this package computes registrations and pushes
// them, it never stores routes.
//
// # Key Features
//
//   - Plural (Resources) and singular (Resource) cardinality
//   - Only/Except action filtering, controller/path/name overrides
//   - Nested parent/child declarations via Nest blocks
//   - PATCH and PUT both registered for update
//   - Optional diagnostics and slog logging of registrations
//
// # Quick Start
//
//	m := resource.NewMapper(reg)
//
//	m.Resources("books")
//	m.Resources("posts", resource.Nest(func(s *resource.Scope) {
//	    s.Resources("comments", resource.Only(resource.ActionIndex, resource.ActionCreate))
//	}))
//	m.Resource("profile")
//
// reg is any Registrar; the adapter package provides implementations for
// gin and echo.
//
// Route names follow the convention: the index route uses the pluralized
// base name ("books"), every other action uses the singular base with an
// optional action prefix ("book", "new_book", "edit_book"). Nested routes
// prefix the singularized parent outside the whole name ("post_comments",
// "post_new_comment").
//
// Name derivation uses the naive rules in rivaas.dev/restkit/inflect;
// resources with irregular plurals should set WithAs explicitly.
package resource
