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

	"github.com/gin-gonic/gin"

	"rivaas.dev/restkit/resource"
)

// GinResolver maps a "controller.action" handler identifier to a gin
// handler. Returning nil skips the registration.
type GinResolver func(to string) gin.HandlerFunc

// Gin returns a resource.Registrar registering routes on a gin router.
//
// gin has no route naming, so the route name computed by the expansion is
// dropped. Use the echo adapter or a custom Registrar when reverse
// routing by name is needed.
//
// Example:
//
//	engine := gin.New()
//	m := resource.NewMapper(adapter.Gin(engine, resolveHandler))
//	m.Resources("books")
func Gin(r gin.IRouter, resolve GinResolver) resource.Registrar {
	return &ginRegistrar{r: r, resolve: resolve}
}

type ginRegistrar struct {
	r       gin.IRouter
	resolve GinResolver
}

func (g *ginRegistrar) GET(path, to, _ string) { g.handle(http.MethodGet, path, to) }
func (g *ginRegistrar) POST(path, to, _ string) { g.handle(http.MethodPost, path, to) }
func (g *ginRegistrar) PATCH(path, to, _ string) { g.handle(http.MethodPatch, path, to) }
func (g *ginRegistrar) PUT(path, to, _ string) { g.handle(http.MethodPut, path, to) }
func (g *ginRegistrar) DELETE(path, to, _ string) { g.handle(http.MethodDelete, path, to) }

func (g *ginRegistrar) handle(method, path, to string) {
	if g.resolve == nil {
		return
	}
	h := g.resolve(to)
	if h == nil {
		return
	}
	g.r.Handle(method, path, h)
}
