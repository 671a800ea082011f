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

// RouteEntry is a registration captured by a Recorder.
type RouteEntry struct {
	Method string
	Path   string
	To     string
	As     string
}

// Recorder is a Registrar that records registrations in order. It is
// intended for tests and for inspecting what a declaration expands to.
//
//	rec := &resource.Recorder{}
//	resource.NewMapper(rec).Resources("books")
//	for _, e := range rec.Entries { ... }
type Recorder struct {
	Entries []RouteEntry
}

func (r *Recorder) GET(path, to, as string) { r.record("GET", path, to, as) }
func (r *Recorder) POST(path, to, as string) { r.record("POST", path, to, as) }
func (r *Recorder) PATCH(path, to, as string) { r.record("PATCH", path, to, as) }
func (r *Recorder) PUT(path, to, as string) { r.record("PUT", path, to, as) }
func (r *Recorder) DELETE(path, to, as string) { r.record("DELETE", path, to, as) }

func (r *Recorder) record(method, path, to, as string) {
	r.Entries = append(r.Entries, RouteEntry{Method: method, Path: path, To: to, As: as})
}

// Find returns the first recorded entry matching method and path.
func (r *Recorder) Find(method, path string) (RouteEntry, bool) {
	for _, e := range r.Entries {
		if e.Method == method && e.Path == path {
			return e, true
		}
	}
	return RouteEntry{}, false
}
