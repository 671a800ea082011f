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

// Registrar is the external router collaborator. The route expansion
// pushes one registration per generated route; the registrar owns the
// route table, this package stores nothing.
//
// path is a template with colon-prefixed parameter placeholders
// ("/posts/:post_id/comments/:id"), to is the handler identifier in
// "controller.action" form, and as is the route name for reverse lookup.
// Registrars without route naming may ignore as.
type Registrar interface {
	GET(path, to, as string)
	POST(path, to, as string)
	PATCH(path, to, as string)
	PUT(path, to, as string)
	DELETE(path, to, as string)
}
