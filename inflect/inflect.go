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

// Package inflect provides the naive English inflections used by route
// naming conventions.
//
// The rules are intentionally minimal: Pluralize appends "s" and
// Singularize strips a trailing "s". Irregular plurals (person/people,
// mouse/mice, status/statuses) are NOT handled. This is a known limitation
// of the convention layer, not a bug; resource names that inflect badly
// can always be overridden at the declaration site.
package inflect

import "strings"

// Pluralize returns the plural form of word. Words already ending in "s"
// are returned unchanged, which makes Pluralize idempotent.
//
//	Pluralize("book")  // "books"
//	Pluralize("books") // "books"
func Pluralize(word string) string {
	if strings.HasSuffix(word, "s") {
		return word
	}
	return word + "s"
}

// Singularize returns the singular form of word by stripping one trailing
// "s" if present.
//
//	Singularize("books") // "book"
//	Singularize("book")  // "book"
func Singularize(word string) string {
	return strings.TrimSuffix(word, "s")
}
