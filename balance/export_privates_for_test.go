// SPDX-License-Identifier: MIT

package balance

import "github.com/katalvlaran/stoic/matrix"

// OptionsSnapshot mirrors the effective, unexported Options fields for
// balance_test.
type OptionsSnapshot struct {
	Strict   bool
	Multi    MultiSolution
	Pivoting matrix.Pivoting
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Strict: o.strict, Multi: o.multi, Pivoting: o.pivoting}
}
