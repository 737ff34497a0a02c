// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package machine

import "fmt"

// Failure provides structural information about a violated constraint.  No
// recovery is ever attempted: a failure aborts the proving or verification
// attempt for the chip (or the whole machine, for a global argument), and
// carries enough detail to diagnose without re-running.
type Failure interface {
	// Message provides a suitable error message.
	Message() string
}

// ConstraintFailure names the chip, constraint and row on which a
// permutation constraint did not vanish.
type ConstraintFailure struct {
	// Chip on which the constraint failed.
	Chip string
	// Handle of the failing constraint.
	Handle string
	// Row on which the constraint failed.
	Row uint
}

// Message provides a suitable error message.
func (p *ConstraintFailure) Message() string {
	return fmt.Sprintf("chip %s: constraint %q failed (row %d)", p.Chip, p.Handle, p.Row)
}

func (p *ConstraintFailure) String() string {
	return p.Message()
}
