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

// Format identifies a response representation. The set is closed: adding a
// format means adding a variant here, its MIME mapping, and a registration
// method on Responder.
type Format uint8

const (
	// FormatUnknown is the zero value; it never matches a handler.
	FormatUnknown Format = iota

	// FormatHTML renders text/html.
	FormatHTML

	// FormatJSON renders application/json.
	FormatJSON

	// FormatXML renders application/xml.
	FormatXML

	// FormatMarkdown renders text/markdown.
	FormatMarkdown
)

// String returns the short identifier for the format ("html", "json",
// "xml", "md"). FormatUnknown returns "unknown".
func (f Format) String() string {
	switch f {
	case FormatHTML:
		return "html"
	case FormatJSON:
		return "json"
	case FormatXML:
		return "xml"
	case FormatMarkdown:
		return "md"
	default:
		return "unknown"
	}
}

// ContentType returns the MIME type sent in the Content-Type header when a
// handler for the format is dispatched.
func (f Format) ContentType() string {
	switch f {
	case FormatHTML:
		return "text/html"
	case FormatJSON:
		return "application/json"
	case FormatXML:
		return "application/xml"
	case FormatMarkdown:
		return "text/markdown"
	default:
		return ""
	}
}

// ParseFormat maps a short identifier to its Format. The second return
// value reports whether the identifier named a supported format.
func ParseFormat(s string) (Format, bool) {
	switch s {
	case "html":
		return FormatHTML, true
	case "json":
		return FormatJSON, true
	case "xml":
		return FormatXML, true
	case "md":
		return FormatMarkdown, true
	default:
		return FormatUnknown, false
	}
}
