// SPDX-License-Identifier: MIT

package stoich

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownElement indicates a symbol missing from the atomic mass table.
	ErrUnknownElement = errors.New("stoich: unknown element")

	// ErrAmountCount indicates len(amounts) != number of compounds.
	ErrAmountCount = errors.New("stoich: one amount per compound required")

	// ErrNoLimiting indicates that no reactant carries a finite amount.
	ErrNoLimiting = errors.New("stoich: no limiting reactant")

	// ErrInvalidAmount indicates an unparsable or negative amount.
	ErrInvalidAmount = errors.New("stoich: invalid amount")
)

const (
	opMolarMass   = "MolarMass"
	opCalculate   = "Calculate"
	opParseAmount = "ParseAmount"
)

func stoichErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
