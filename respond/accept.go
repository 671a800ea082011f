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
	"slices"
	"strconv"
	"strings"
)

// Negotiation policy constants. Both values are historical: they match the
// behavior clients have come to depend on, and are not derived from any
// RFC. Do not tune them without an API break.
const (
	// jsonQualityFloor is the minimum quality an application/json entry
	// must exceed before JSON wins negotiation outright.
	jsonQualityFloor = 0.5

	// xmlPreferenceMargin is how much an XML entry's quality must exceed
	// an HTML entry's quality before XML wins. Anything closer resolves
	// to HTML.
	xmlPreferenceMargin = 0.1
)

// acceptSpec is a parsed Accept header entry with its quality value.
type acceptSpec struct {
	value   string
	quality float64
}

// parseAccept parses an Accept-style header into specs using manual byte
// scanning, one spec per comma-separated part. Parts with an empty media
// type are skipped.
func parseAccept(header string) []acceptSpec {
	if header == "" {
		return nil
	}

	specs := make([]acceptSpec, 0, 4)

	start := 0
	for i := 0; i <= len(header); i++ {
		if i == len(header) || header[i] == ',' {
			if i > start {
				if spec := parseAcceptPart(header[start:i]); spec.value != "" {
					specs = append(specs, spec)
				}
			}
			start = i + 1
		}
	}

	return specs
}

// parseAcceptPart parses a single Accept header part (between commas).
// Quality defaults to 1.0; parameters other than q are ignored.
func parseAcceptPart(part string) acceptSpec {
	spec := acceptSpec{quality: 1.0}

	start, end := trimWhitespace(part)
	if start >= end {
		return spec
	}

	// Find semicolon separator between media type and parameters.
	semicolon := -1
	for i := start; i < end; i++ {
		if part[i] == ';' {
			semicolon = i
			break
		}
	}

	if semicolon == -1 {
		spec.value = strings.ToLower(part[start:end])
		return spec
	}

	vStart, vEnd := trimWhitespace(part[start:semicolon])
	spec.value = strings.ToLower(part[start+vStart : start+vEnd])

	// Scan parameters after the semicolon, looking only for q.
	paramStart := semicolon + 1
	for i := paramStart; i <= end; i++ {
		if i == end || part[i] == ';' {
			if i > paramStart {
				parseQualityParam(part[paramStart:i], &spec)
			}
			paramStart = i + 1
		}
	}

	return spec
}

// parseQualityParam updates spec.quality if param is a q parameter.
// Malformed quality values are swallowed and leave the default 1.0 in
// place; a bad q must never fail negotiation.
func parseQualityParam(param string, spec *acceptSpec) {
	start, end := trimWhitespace(param)
	if start >= end {
		return
	}

	equals := -1
	for i := start; i < end; i++ {
		if param[i] == '=' {
			equals = i
			break
		}
	}
	if equals == -1 {
		return
	}

	kStart, kEnd := trimWhitespace(param[start:equals])
	if param[start+kStart:start+kEnd] != "q" {
		return
	}

	vStart, vEnd := trimWhitespace(param[equals+1 : end])
	if vStart >= vEnd {
		return
	}
	value := param[equals+1+vStart : equals+1+vEnd]

	if q := parseQuality(value); q >= 0 {
		spec.quality = float64(q) / 1000.0
	} else if q, err := strconv.ParseFloat(value, 64); err == nil && q >= 0 && q <= 1 {
		spec.quality = q
	}
}

// parseQuality parses an HTTP q-value ("1", "1.0", "0.9", "0.85") into
// integer thousandths (1000, 1000, 900, 850). Returns -1 on parse error.
//
// Quality values are defined as:
//
//	qvalue = ( "0" [ "." 0*3DIGIT ] ) / ( "1" [ "." 0*3("0") ] )
func parseQuality(s string) int {
	if len(s) == 0 || len(s) > 5 { // Max valid: "1.000" or "0.999"
		return -1
	}

	if s[0] == '1' {
		if len(s) == 1 {
			return 1000
		}
		if len(s) < 3 || s[1] != '.' {
			return -1
		}
		for i := 2; i < len(s); i++ {
			if s[i] != '0' {
				return -1
			}
		}
		return 1000
	}

	if s[0] == '0' {
		if len(s) == 1 {
			return 0
		}
		if len(s) < 3 || s[1] != '.' {
			return -1
		}

		result := 0
		multiplier := 100
		for i := 2; i < len(s) && i < 5; i++ {
			if s[i] < '0' || s[i] > '9' {
				return -1
			}
			result += int(s[i]-'0') * multiplier
			multiplier /= 10
		}
		return result
	}

	return -1
}

// trimWhitespace returns start and end indices of non-whitespace content,
// relative to the input string.
func trimWhitespace(s string) (start, end int) {
	start = 0
	for start < len(s) && (s[start] == ' ' || s[start] == '\t') {
		start++
	}

	end = len(s)
	for end > start && (s[end-1] == ' ' || s[end-1] == '\t') {
		end--
	}

	return start, end
}

// negotiate resolves a Format from an Accept header value. It returns
// FormatUnknown when no rule applies; the caller decides the fallback.
//
// The rules are asymmetric on purpose:
//   - an application/json entry above jsonQualityFloor wins outright,
//   - when both HTML and XML are offered, XML must beat HTML's quality by
//     more than xmlPreferenceMargin or HTML wins the tie,
//   - lone HTML always resolves; lone XML only above jsonQualityFloor.
func negotiate(header string) Format {
	specs := parseAccept(header)
	if len(specs) == 0 {
		return FormatUnknown
	}

	// Stable sort keeps header order for equal qualities.
	slices.SortStableFunc(specs, func(a, b acceptSpec) int {
		switch {
		case a.quality > b.quality:
			return -1
		case a.quality < b.quality:
			return 1
		default:
			return 0
		}
	})

	var (
		htmlQuality, xmlQuality float64
		hasHTML, hasXML         bool
	)

	for _, spec := range specs {
		switch spec.value {
		case "application/json":
			if spec.quality > jsonQualityFloor {
				return FormatJSON
			}
		case "text/html":
			if !hasHTML {
				hasHTML = true
				htmlQuality = spec.quality
			}
		case "application/xml", "text/xml":
			if !hasXML {
				hasXML = true
				xmlQuality = spec.quality
			}
		}
	}

	switch {
	case hasHTML && hasXML:
		if xmlQuality-htmlQuality > xmlPreferenceMargin {
			return FormatXML
		}
		return FormatHTML
	case hasHTML:
		return FormatHTML
	case hasXML && xmlQuality > jsonQualityFloor:
		return FormatXML
	default:
		return FormatUnknown
	}
}
