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

package adapter

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"rivaas.dev/restkit/resource"
)

// EchoResolver maps a "controller.action" handler identifier to an echo
// handler. Returning nil skips the registration.
type EchoResolver func(to string) echo.HandlerFunc

// Echo returns a resource.Registrar registering named routes on an echo
// instance. Route names computed by the expansion become echo route names,
// usable with echo's Reverse.
//
// Example:
//
//	e := echo.New()
//	m := resource.NewMapper(adapter.Echo(e, resolveHandler))
//	m.Resources("books")
//	e.Reverse("book", 42) // "/books/42"
func Echo(e *echo.Echo, resolve EchoResolver) resource.Registrar {
	return &echoRegistrar{e: e, resolve: resolve}
}

type echoRegistrar struct {
	e       *echo.Echo
	resolve EchoResolver
}

func (r *echoRegistrar) GET(path, to, as string) { r.handle(http.MethodGet, path, to, as) }
func (r *echoRegistrar) POST(path, to, as string) { r.handle(http.MethodPost, path, to, as) }
func (r *echoRegistrar) PATCH(path, to, as string) { r.handle(http.MethodPatch, path, to, as) }
func (r *echoRegistrar) PUT(path, to, as string) { r.handle(http.MethodPut, path, to, as) }
func (r *echoRegistrar) DELETE(path, to, as string) { r.handle(http.MethodDelete, path, to, as) }

func (r *echoRegistrar) handle(method, path, to, as string) {
	if r.resolve == nil {
		return
	}
	h := r.resolve(to)
	if h == nil {
		return
	}
	route := r.e.Add(method, path, h)
	if as != "" {
		route.Name = as
	}
}
