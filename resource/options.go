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

// Option configures a single resource declaration.
type Option func(*declarationConfig)

// declarationConfig holds the recognized per-declaration options.
type declarationConfig struct {
	only       []Action
	except     []Action
	controller string
	path       string
	as         string
	nest       func(*Scope)
}

// Only limits the declaration to the given actions. Only wins over Except
// when both are given. Names outside the default action set silently
// never match.
//
// Example:
//
//	m.Resources("books", resource.Only(resource.ActionIndex, resource.ActionShow))
func Only(actions ...Action) Option {
	return func(c *declarationConfig) {
		c.only = actions
	}
}

// Except removes the given actions from the declaration's default set.
//
// Example:
//
//	m.Resources("books", resource.Except(resource.ActionDestroy))
func Except(actions ...Action) Option {
	return func(c *declarationConfig) {
		c.except = actions
	}
}

// WithController overrides the controller identifier, which otherwise
// defaults to the resource name.
func WithController(name string) Option {
	return func(c *declarationConfig) {
		c.controller = name
	}
}

// WithPath overrides the URL path segment, which otherwise defaults to the
// resource name.
func WithPath(path string) Option {
	return func(c *declarationConfig) {
		c.path = path
	}
}

// WithAs overrides the route base name used when naming the generated
// routes.
func WithAs(name string) Option {
	return func(c *declarationConfig) {
		c.as = name
	}
}

// Nest declares child resources scoped under this declaration. The scope's
// paths gain the parent segment and its ID placeholder, and its route
// names gain the singularized parent as a prefix.
//
// Example:
//
//	m.Resources("posts", resource.Nest(func(s *resource.Scope) {
//	    s.Resources("comments")
//	}))
//	// GET /posts/:post_id/comments  → name "post_comments"
func Nest(fn func(*Scope)) Option {
	return func(c *declarationConfig) {
		c.nest = fn
	}
}
