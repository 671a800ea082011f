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

// Renderer is the host framework's view pipeline. The respond package
// never renders anything itself; it only decides which format a handler
// runs for and what defaults a render call inside that handler receives.
type Renderer interface {
	// Render renders the named view with the given data and fully
	// resolved options.
	Render(view string, data any, opts RenderOptions) error
}

// RenderOptions is the resolved option set passed to the host Renderer.
type RenderOptions struct {
	// Format is the representation the view should be rendered as.
	Format Format

	// Layout reports whether the view should be wrapped in the
	// application layout. Defaults to true for HTML and false for every
	// other format.
	Layout bool
}

// RenderOption overrides a default in a View.Render call.
type RenderOption func(*renderConfig)

type renderConfig struct {
	format    Format
	layout    bool
	formatSet bool
	layoutSet bool
}

// WithRenderFormat forces the render format, overriding the format the
// View was dispatched for.
func WithRenderFormat(f Format) RenderOption {
	return func(c *renderConfig) {
		c.format = f
		c.formatSet = true
	}
}

// WithLayout overrides the layout default for a render call. HTML views
// default to a layout; all other formats default to none.
func WithLayout(enabled bool) RenderOption {
	return func(c *renderConfig) {
		c.layout = enabled
		c.layoutSet = true
	}
}

// View is the render decorator a dispatched handler receives. It wraps the
// host Renderer and injects per-format defaults into every Render call:
// the dispatched format, and layout off for non-HTML formats.
//
// A View is a per-dispatch value, never a mutation of the shared response.
// It goes out of scope with the handler, so there is nothing to restore
// afterward, even when the handler returns an error.
type View struct {
	renderer Renderer
	format   Format
}

// Format returns the format this view was dispatched for.
func (v *View) Format() Format {
	return v.format
}

// Render renders the named view through the host Renderer, applying the
// view's format and layout defaults unless opts override them.
//
// When the session was opened without a response collaborator the call is
// a no-op returning nil; the package favors availability over strictness
// for absent collaborators.
func (v *View) Render(view string, data any, opts ...RenderOption) error {
	cfg := renderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	resolved := RenderOptions{
		Format: v.format,
		Layout: v.format == FormatHTML,
	}
	if cfg.formatSet {
		resolved.Format = cfg.format
	}
	if cfg.layoutSet {
		resolved.Layout = cfg.layout
	}

	if v.renderer == nil {
		return nil
	}
	return v.renderer.Render(view, data, resolved)
}
