// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the Options Snapshot and Pivot Selection
//
// Purpose:
//   - Expose the internal options snapshot and the pivot row selection to
//     matrix_test ONLY.
//   - The _TestOnly suffix marks the surface; production code must not call it.

// OptionsSnapshot mirrors the effective, unexported Options fields.
type OptionsSnapshot struct {
	Pivoting Pivoting
}

// GatherOptionsSnapshot_TestOnly resolves opts over the documented defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Pivoting: o.pivoting}
}

// SelectPivotRow_TestOnly reports the row PivotMaxAbs or PivotFirst would
// swap in for pivot column col, scanning rows from top downward.
func SelectPivotRow_TestOnly(m *Dense, top, col int, policy Pivoting) int {
	return m.selectPivotRow(top, col, policy)
}
