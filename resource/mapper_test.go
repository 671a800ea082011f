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

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expand(opts ...MapperOption) (*Mapper, *Recorder) {
	rec := &Recorder{}
	return NewMapper(rec, opts...), rec
}

func TestPluralResourceFullRouteSet(t *testing.T) {
	t.Parallel()

	m, rec := expand()
	m.Resources("books")

	// 7 logical actions, 8 registrations (update is PATCH and PUT).
	require.Len(t, rec.Entries, 8)

	expected := []RouteEntry{
		{"GET", "/books", "books.index", "books"},
		{"GET", "/books/new", "books.new", "new_book"},
		{"POST", "/books", "books.create", "book"},
		{"GET", "/books/:id/edit", "books.edit", "edit_book"},
		{"GET", "/books/:id", "books.show", "book"},
		{"PATCH", "/books/:id", "books.update", "book"},
		{"PUT", "/books/:id", "books.update", "book"},
		{"DELETE", "/books/:id", "books.destroy", "book"},
	}
	assert.Equal(t, expected, rec.Entries)
}

func TestSingularResourceRouteSet(t *testing.T) {
	t.Parallel()

	m, rec := expand()
	m.Resource("profile")

	// 6 logical actions (no index), 7 registrations.
	require.Len(t, rec.Entries, 7)

	expected := []RouteEntry{
		{"GET", "/profile/new", "profile.new", "new_profile"},
		{"POST", "/profile", "profile.create", "profile"},
		{"GET", "/profile/edit", "profile.edit", "edit_profile"},
		{"GET", "/profile", "profile.show", "profile"},
		{"PATCH", "/profile", "profile.update", "profile"},
		{"PUT", "/profile", "profile.update", "profile"},
		{"DELETE", "/profile", "profile.destroy", "profile"},
	}
	assert.Equal(t, expected, rec.Entries)
}

func TestOnlyFilter(t *testing.T) {
	t.Parallel()

	m, rec := expand()
	m.Resources("books", Only(ActionIndex, ActionShow))

	expected := []RouteEntry{
		{"GET", "/books", "books.index", "books"},
		{"GET", "/books/:id", "books.show", "book"},
	}
	assert.Equal(t, expected, rec.Entries)
}

func TestExceptFilter(t *testing.T) {
	t.Parallel()

	m, rec := expand()
	m.Resources("books", Except(ActionDestroy, ActionNew, ActionEdit))

	require.Len(t, rec.Entries, 5)
	for _, e := range rec.Entries {
		assert.NotEqual(t, "DELETE", e.Method)
		assert.NotContains(t, e.To, ".new")
		assert.NotContains(t, e.To, ".edit")
	}
}

func TestOnlyWinsOverExcept(t *testing.T) {
	t.Parallel()

	m, rec := expand()
	m.Resources("books", Only(ActionIndex), Except(ActionIndex))

	require.Len(t, rec.Entries, 1)
	assert.Equal(t, RouteEntry{"GET", "/books", "books.index", "books"}, rec.Entries[0])
}

func TestUnknownActionNamesShrinkSilently(t *testing.T) {
	t.Parallel()

	t.Run("only with unknown action", func(t *testing.T) {
		t.Parallel()
		m, rec := expand()
		m.Resources("books", Only(Action("archive")))
		assert.Empty(t, rec.Entries)
	})

	t.Run("index invalid for singular resource", func(t *testing.T) {
		t.Parallel()
		m, rec := expand()
		m.Resource("profile", Only(ActionIndex))
		assert.Empty(t, rec.Entries)
	})

	t.Run("except with unknown action is a no-op", func(t *testing.T) {
		t.Parallel()
		m, rec := expand()
		m.Resources("books", Except(Action("archive")))
		assert.Len(t, rec.Entries, 8)
	})
}

func TestDeclarationOverrides(t *testing.T) {
	t.Parallel()

	t.Run("controller override", func(t *testing.T) {
		t.Parallel()
		m, rec := expand()
		m.Resources("books", WithController("admin_books"), Only(ActionIndex))
		require.Len(t, rec.Entries, 1)
		assert.Equal(t, "admin_books.index", rec.Entries[0].To)
		assert.Equal(t, "/books", rec.Entries[0].Path)
	})

	t.Run("path override", func(t *testing.T) {
		t.Parallel()
		m, rec := expand()
		m.Resources("books", WithPath("library"), Only(ActionIndex))
		require.Len(t, rec.Entries, 1)
		assert.Equal(t, "/library", rec.Entries[0].Path)
		assert.Equal(t, "books.index", rec.Entries[0].To)
		assert.Equal(t, "books", rec.Entries[0].As)
	})

	t.Run("as override", func(t *testing.T) {
		t.Parallel()
		m, rec := expand()
		m.Resources("books", WithAs("tome"), Only(ActionIndex, ActionShow, ActionNew))
		entry, ok := rec.Find("GET", "/books")
		require.True(t, ok)
		assert.Equal(t, "tomes", entry.As)
		entry, ok = rec.Find("GET", "/books/:id")
		require.True(t, ok)
		assert.Equal(t, "tome", entry.As)
		entry, ok = rec.Find("GET", "/books/new")
		require.True(t, ok)
		assert.Equal(t, "new_tome", entry.As)
	})
}

func TestNestedResources(t *testing.T) {
	t.Parallel()

	m, rec := expand()
	m.Resources("posts", Nest(func(s *Scope) {
		s.Resources("comments")
	}))

	// Parent set plus nested set.
	entry, ok := rec.Find("GET", "/posts/:post_id/comments")
	require.True(t, ok)
	assert.Equal(t, "post_comments", entry.As)
	assert.Equal(t, "comments.index", entry.To)

	entry, ok = rec.Find("GET", "/posts/:post_id/comments/:id")
	require.True(t, ok)
	assert.Equal(t, "post_comment", entry.As)

	// The parent prefix wraps the action-prefixed name.
	entry, ok = rec.Find("GET", "/posts/:post_id/comments/new")
	require.True(t, ok)
	assert.Equal(t, "post_new_comment", entry.As)

	entry, ok = rec.Find("GET", "/posts/:post_id/comments/:id/edit")
	require.True(t, ok)
	assert.Equal(t, "post_edit_comment", entry.As)

	// The parent's own routes are untouched by nesting.
	entry, ok = rec.Find("GET", "/posts")
	require.True(t, ok)
	assert.Equal(t, "posts", entry.As)
}

func TestNestedPrefixedRouteNames(t *testing.T) {
	t.Parallel()

	m, rec := expand()
	m.Resources("posts", Nest(func(s *Scope) {
		s.Resources("comments", Only(ActionNew, ActionEdit))
	}))

	expected := []RouteEntry{
		{"GET", "/posts/:post_id/comments/new", "comments.new", "post_new_comment"},
		{"GET", "/posts/:post_id/comments/:id/edit", "comments.edit", "post_edit_comment"},
	}
	assert.Equal(t, expected, rec.Entries[8:])
}

func TestNestedSingularResource(t *testing.T) {
	t.Parallel()

	m, rec := expand()
	m.Resources("posts", Nest(func(s *Scope) {
		s.Resource("author", Only(ActionShow))
	}))

	entry, ok := rec.Find("GET", "/posts/:post_id/author")
	require.True(t, ok)
	assert.Equal(t, "post_author", entry.As)
	assert.Equal(t, "author.show", entry.To)
}

func TestNestedUnderSingularParent(t *testing.T) {
	t.Parallel()

	m, rec := expand()
	m.Resource("profile", Only(ActionShow), Nest(func(s *Scope) {
		s.Resources("emails", Only(ActionIndex, ActionShow))
	}))

	// A singular parent has no identifier, so its children nest under the
	// bare segment with the parent name as prefix.
	expected := []RouteEntry{
		{"GET", "/profile", "profile.show", "profile"},
		{"GET", "/profile/emails", "emails.index", "profile_emails"},
		{"GET", "/profile/emails/:id", "emails.show", "profile_email"},
	}
	assert.Equal(t, expected, rec.Entries)
}

func TestNestedScopeUsesPathOverride(t *testing.T) {
	t.Parallel()

	m, rec := expand()
	m.Resources("posts", WithPath("articles"), Nest(func(s *Scope) {
		s.Resources("comments", Only(ActionIndex))
	}))

	// The nesting scope derives from the effective path segment, and the
	// parent placeholder singularizes that segment.
	entry, ok := rec.Find("GET", "/articles/:article_id/comments")
	require.True(t, ok)
	assert.Equal(t, "article_comments", entry.As)
}

func TestNestedDeclarationFilters(t *testing.T) {
	t.Parallel()

	m, rec := expand()
	m.Resources("posts", Only(ActionIndex), Nest(func(s *Scope) {
		s.Resources("comments", Only(ActionIndex, ActionCreate))
	}))

	require.Len(t, rec.Entries, 3)
	assert.Equal(t, RouteEntry{"GET", "/posts", "posts.index", "posts"}, rec.Entries[0])
	assert.Equal(t, RouteEntry{"GET", "/posts/:post_id/comments", "comments.index", "post_comments"}, rec.Entries[1])
	assert.Equal(t, RouteEntry{"POST", "/posts/:post_id/comments", "comments.create", "post_comment"}, rec.Entries[2])
}

func TestDiagnostics(t *testing.T) {
	t.Parallel()

	t.Run("empty action set reported", func(t *testing.T) {
		t.Parallel()
		var events []DiagnosticEvent
		m, rec := expand(WithDiagnostics(DiagnosticHandlerFunc(func(e DiagnosticEvent) {
			events = append(events, e)
		})))

		m.Resources("books", Only(Action("archive")))

		assert.Empty(t, rec.Entries)
		require.Len(t, events, 1)
		assert.Equal(t, DiagEmptyActionSet, events[0].Kind)
		assert.Equal(t, "books", events[0].Fields["resource"])
	})

	t.Run("registration events", func(t *testing.T) {
		t.Parallel()
		var events []DiagnosticEvent
		m, _ := expand(WithDiagnostics(DiagnosticHandlerFunc(func(e DiagnosticEvent) {
			events = append(events, e)
		})))

		m.Resources("books", Only(ActionIndex))

		require.Len(t, events, 1)
		assert.Equal(t, DiagRouteRegistered, events[0].Kind)
		assert.Equal(t, "/books", events[0].Fields["path"])
		assert.Equal(t, "books.index", events[0].Fields["to"])
	})
}

func TestRegistrationLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m, _ := expand(WithLogger(logger))
	m.Resources("books", Only(ActionIndex))

	assert.Contains(t, buf.String(), "registered resource route")
	assert.Contains(t, buf.String(), "path=/books")
}

func TestEffectiveActions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		defaults []Action
		only     []Action
		except   []Action
		expected []Action
	}{
		{
			name:     "no filters returns defaults",
			defaults: pluralActions,
			expected: pluralActions,
		},
		{
			name:     "only intersects in default order",
			defaults: pluralActions,
			only:     []Action{ActionShow, ActionIndex},
			expected: []Action{ActionIndex, ActionShow},
		},
		{
			name:     "except removes",
			defaults: singularActions,
			except:   []Action{ActionDestroy},
			expected: []Action{ActionNew, ActionCreate, ActionEdit, ActionShow, ActionUpdate},
		},
		{
			name:     "only outside defaults yields empty",
			defaults: singularActions,
			only:     []Action{ActionIndex},
			expected: []Action{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := effectiveActions(tt.defaults, tt.only, tt.except)
			assert.Equal(t, tt.expected, got)
		})
	}
}
