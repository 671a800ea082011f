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

// Package respond dispatches a request handler's per-format response
// blocks based on the format the incoming request asks for.
//
// A handler declares one block per representation it can produce; the
// package resolves the request's target format and runs exactly the
// matching block, setting the response format and Content-Type on the way
// in and handing the block a render decorator with per-format defaults.
//
// # Key Features
//
//   - Closed format set: HTML, JSON, XML, Markdown
//   - Three-source format resolution with fixed precedence:
//     format query parameter, path extension, Accept negotiation
//   - Accept quality-value parsing with an HTML-favoring HTML/XML
//     tie-break
//   - Render decorator that injects format and layout defaults for the
//     dispatched block only
//   - Typed UnknownFormatError carrying the resolved format and the
//     registered handler set
//   - Optional slog logging and OpenTelemetry metrics
//
// # Quick Start
//
//	func showBook(w http.ResponseWriter, req *http.Request) {
//	    book := loadBook(req)
//
//	    err := respond.New(req, res).
//	        HTML(func(v *respond.View) error {
//	            return v.Render("books/show", book)
//	        }).
//	        JSON(func(v *respond.View) error {
//	            return v.Render("books/show", book)
//	        }).
//	        Respond()
//	    if err != nil {
//	        // errors.Is(err, respond.ErrUnknownFormat) → 406
//	    }
//	}
//
// res is any Response implementation bridging to the host framework's
// response and view pipeline.
//
// # Resolution Rules
//
// The target format is computed once per session, from the request alone:
//
//  1. ?format=json style query parameter, if it names a supported format.
//  2. Path extension: /articles.xml resolves to XML.
//  3. Accept header negotiation: application/json above quality 0.5 wins;
//     with both text/html and an XML type present, XML must beat HTML's
//     quality by more than 0.1 or HTML wins; lone HTML resolves to HTML;
//     lone XML resolves only above quality 0.5.
//  4. Otherwise HTML.
//
// Requests without a request object at all (nil) resolve to HTML, and a
// nil Response turns all side effects into no-ops; absent collaborators
// degrade, they do not fail.
package respond
