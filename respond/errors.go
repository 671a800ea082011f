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
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is the sentinel matched by errors.Is for
// *UnknownFormatError values.
var ErrUnknownFormat = errors.New("no handler registered for resolved format")

// UnknownFormatError is returned by Responder.Respond when the format
// resolved from the request had no registered handler. It carries the
// resolved format and the formats that were registered, for diagnostics.
type UnknownFormatError struct {
	// Format is the format resolved from the request.
	Format Format

	// Registered lists the formats that had handlers, in registration
	// order.
	Registered []Format
}

func (e *UnknownFormatError) Error() string {
	if len(e.Registered) == 0 {
		return fmt.Sprintf("respond: no handler registered for %q (no formats registered)", e.Format)
	}

	names := make([]string, len(e.Registered))
	for i, f := range e.Registered {
		names[i] = f.String()
	}
	return fmt.Sprintf("respond: no handler registered for %q (registered: %s)",
		e.Format, strings.Join(names, ", "))
}

// Is reports whether target is ErrUnknownFormat, so callers can match with
// errors.Is without asserting the concrete type.
func (e *UnknownFormatError) Is(target error) bool {
	return target == ErrUnknownFormat
}
