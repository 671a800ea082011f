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

// Package adapter bridges resource route expansion onto real routers.
//
// Each adapter implements resource.Registrar for one router. Handler
// identifiers arrive as "controller.action" strings; since Go routers take
// function values rather than string targets, every adapter is constructed
// with a resolver mapping identifiers to that router's handler type.
// Identifiers the resolver cannot map (nil return) are skipped, matching
// the expansion's soft-failure posture.
//
// Both gin and echo use the same colon-prefixed parameter placeholders as
// the generated templates, so paths pass through unmodified.
package adapter
