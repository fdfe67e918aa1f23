// SPDX-License-Identifier: MIT

package stoich

import (
	"fmt"

	"github.com/katalvlaran/stoic/equation"
)

// AtomicMass returns the atomic weight of symbol in g/mol.
func AtomicMass(symbol string) (float64, bool) {
	m, ok := atomicMass[symbol]

	return m, ok
}

// MolarMass returns Σ count·mass over the compound's elements, in g/mol.
// The coefficient is not applied.
//
// Errors:
//   - ErrUnknownElement naming the first unknown symbol.
func MolarMass(c equation.Compound) (float64, error) {
	var sum float64
	for _, el := range c.Elements {
		m, ok := atomicMass[el.Symbol]
		if !ok {
			return 0, fmt.Errorf("%s: %w: %q", opMolarMass, ErrUnknownElement, el.Symbol)
		}
		sum += float64(el.Count) * m
	}

	return sum, nil
}
