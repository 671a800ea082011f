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

// Scope is the declaration context inside a Nest block. It captures the
// enclosing resource's path segment and exposes the same Resources and
// Resource entry points, producing child routes under
// /<parent>/:<parent_singular>_id/ with <parent_singular>_ prefixed route
// names; the parent prefix wraps the whole child name, so a nested new
// route is named post_new_comment. A singular parent contributes its path
// segment without an ID placeholder and prefixes names with its own name.
//
// Nesting scopes to the immediate parent: a Nest block inside a nested
// declaration uses that declaration's own segment as the parent, it does
// not compose the full ancestor chain. The Scope only lives for the
// duration of the block.
type Scope struct {
	mapper *Mapper
	parent parentContext
}

// Resources declares a plural child resource under the scope's parent.
func (s *Scope) Resources(name string, opts ...Option) {
	s.mapper.declare(name, true, &s.parent, opts)
}

// Resource declares a singular child resource under the scope's parent.
func (s *Scope) Resource(name string, opts ...Option) {
	s.mapper.declare(name, false, &s.parent, opts)
}
