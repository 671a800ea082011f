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
	"net/http"
	"path"
	"slices"
	"strings"
)

// Response is the host framework's response collaborator. Only a narrow
// surface is consumed: header access for the Content-Type side effect, a
// format field, and the render pipeline.
//
// A nil Response is tolerated: format and header mutations become no-ops
// and renders do nothing, rather than failing the request.
type Response interface {
	// Header returns the response header map for mutation.
	Header() http.Header

	// SetFormat records the resolved format on the response.
	SetFormat(Format)

	Renderer
}

// HandlerFunc is a per-format response handler. It receives the View
// decorator for the dispatched format.
type HandlerFunc func(v *View) error

// Sources a format resolution can come from, in precedence order.
const (
	sourceQuery     = "query"
	sourceExtension = "extension"
	sourceAccept    = "accept"
	sourceDefault   = "default"
)

// Responder is a per-request dispatch session. A handler function opens a
// session, registers handlers for the formats it can produce, and
// finalizes with Respond:
//
//	err := respond.New(req, res).
//		HTML(func(v *respond.View) error { return v.Render("show", book) }).
//		JSON(func(v *respond.View) error { return v.Render("show", book) }).
//		Respond()
//
// The target format is computed from the request alone (format query
// parameter, then path extension, then Accept negotiation, then an HTML
// default), lazily on the first registration and cached for the session.
// The matching handler runs inline during its registration; Respond
// reports *UnknownFormatError when no registered handler matched.
//
// A Responder is request-scoped and not safe for concurrent use.
type Responder struct {
	req *http.Request
	res Response

	registered []Format
	resolved   Format
	source     string
	resolvedOK bool

	dispatched bool
	handlerErr error

	observer *observer
}

// New opens a dispatch session for the given request and response
// collaborators. Either may be nil; see Response and the resolution rules
// on Responder.
func New(req *http.Request, res Response, opts ...Option) *Responder {
	r := &Responder{req: req, res: res}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// HTML registers the handler for HTML requests.
func (r *Responder) HTML(fn HandlerFunc) *Responder { return r.On(FormatHTML, fn) }

// JSON registers the handler for JSON requests.
func (r *Responder) JSON(fn HandlerFunc) *Responder { return r.On(FormatJSON, fn) }

// XML registers the handler for XML requests.
func (r *Responder) XML(fn HandlerFunc) *Responder { return r.On(FormatXML, fn) }

// Markdown registers the handler for Markdown requests.
func (r *Responder) Markdown(fn HandlerFunc) *Responder { return r.On(FormatMarkdown, fn) }

// On registers fn as the handler for format f. If f is the session's
// resolved format and no handler has run yet, fn executes inline before On
// returns. Registrations for FormatUnknown or with a nil fn are ignored,
// and a format registered more than once is recorded once.
func (r *Responder) On(f Format, fn HandlerFunc) *Responder {
	if f == FormatUnknown || fn == nil {
		return r
	}

	if !slices.Contains(r.registered, f) {
		r.registered = append(r.registered, f)
	}

	if r.dispatched || f != r.resolve() {
		return r
	}
	r.dispatch(f, fn)
	return r
}

// Respond finalizes the session. It returns the error from the dispatched
// handler, or *UnknownFormatError when the resolved format had no handler.
func (r *Responder) Respond() error {
	f := r.resolve()

	if !r.dispatched {
		r.observer.unknownFormat(r.ctx(), f, r.registered)
		return &UnknownFormatError{
			Format:     f,
			Registered: slices.Clone(r.registered),
		}
	}

	return r.handlerErr
}

// Format returns the session's resolved format, computing and caching it
// if needed.
func (r *Responder) Format() Format {
	return r.resolve()
}

// resolve computes the target format once per session and caches it. The
// result depends only on the request, never on which handlers were
// registered.
func (r *Responder) resolve() Format {
	if r.resolvedOK {
		return r.resolved
	}

	r.resolved, r.source = resolveFormat(r.req)
	r.resolvedOK = true
	r.observer.resolved(r.ctx(), r.resolved, r.source)

	return r.resolved
}

// dispatch runs fn for format f, applying the response side effects first:
// the response format field and the Content-Type header.
func (r *Responder) dispatch(f Format, fn HandlerFunc) {
	r.dispatched = true

	var renderer Renderer
	if r.res != nil {
		r.res.SetFormat(f)
		if h := r.res.Header(); h != nil {
			h.Set("Content-Type", f.ContentType())
		}
		renderer = r.res
	}

	r.handlerErr = fn(&View{renderer: renderer, format: f})
}

func (r *Responder) ctx() context.Context {
	if r.req != nil {
		return r.req.Context()
	}
	return context.Background()
}

// resolveFormat applies the resolution precedence: explicit format query
// parameter, path extension, Accept negotiation, HTML default. A nil
// request resolves to HTML immediately.
func resolveFormat(req *http.Request) (Format, string) {
	if req == nil || req.URL == nil {
		return FormatHTML, sourceDefault
	}

	if v := req.URL.Query().Get("format"); v != "" {
		if f, ok := ParseFormat(v); ok {
			return f, sourceQuery
		}
	}

	if ext := path.Ext(req.URL.Path); ext != "" {
		if f, ok := ParseFormat(strings.TrimPrefix(ext, ".")); ok {
			return f, sourceExtension
		}
	}

	if f := negotiate(req.Header.Get("Accept")); f != FormatUnknown {
		return f, sourceAccept
	}

	return FormatHTML, sourceDefault
}
