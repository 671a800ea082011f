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

// Action names one of the conventional RESTful actions a resource
// declaration can expand to.
type Action string

const (
	// ActionIndex lists the collection. Plural resources only.
	ActionIndex Action = "index"

	// ActionNew serves the form for a new resource item.
	ActionNew Action = "new"

	// ActionCreate creates a resource item.
	ActionCreate Action = "create"

	// ActionShow displays a resource item.
	ActionShow Action = "show"

	// ActionEdit serves the form for editing a resource item.
	ActionEdit Action = "edit"

	// ActionUpdate updates a resource item. Registered for both PATCH
	// and PUT.
	ActionUpdate Action = "update"

	// ActionDestroy removes a resource item.
	ActionDestroy Action = "destroy"
)

// pluralActions is the default action set for a plural resource
// declaration, in registration order. Static segments (/new, /:id/edit)
// are ordered before the bare /:id routes so routers that match in
// registration order resolve them correctly.
var pluralActions = []Action{
	ActionIndex,
	ActionNew,
	ActionCreate,
	ActionEdit,
	ActionShow,
	ActionUpdate,
	ActionDestroy,
}

// singularActions is the default action set for a singular resource
// declaration: the plural set minus index.
var singularActions = []Action{
	ActionNew,
	ActionCreate,
	ActionEdit,
	ActionShow,
	ActionUpdate,
	ActionDestroy,
}

// effectiveActions filters the default action set by the only/except
// options. Only wins over except when both are given (intersection with
// the defaults, in default order). Action names outside the default set
// are not an error; they simply never match, which can leave the result
// empty.
func effectiveActions(defaults []Action, only, except []Action) []Action {
	if len(only) > 0 {
		out := make([]Action, 0, len(defaults))
		for _, a := range defaults {
			if containsAction(only, a) {
				out = append(out, a)
			}
		}
		return out
	}

	if len(except) > 0 {
		out := make([]Action, 0, len(defaults))
		for _, a := range defaults {
			if !containsAction(except, a) {
				out = append(out, a)
			}
		}
		return out
	}

	return defaults
}

func containsAction(actions []Action, target Action) bool {
	for _, a := range actions {
		if a == target {
			return true
		}
	}
	return false
}
