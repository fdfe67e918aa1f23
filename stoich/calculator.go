// SPDX-License-Identifier: MIT
// Package stoich - limiting reagent calculation.
//
// Model:
//   - Reaction extent ξ = min over reactants with a finite amount of
//     n_i / ν_i (moles over coefficient). Excess and unknown reactants never
//     limit.
//   - Reactant with finite amount: remaining n_i − ξ·ν_i.
//   - Reactant in excess or unknown: consumed ξ·ν_i.
//   - Product with finite amount: n_i + ξ·ν_i.
//   - Product in excess or unknown: produced ξ·ν_i.

package stoich

import (
	"fmt"
	"math"

	"github.com/katalvlaran/stoic/balance"
	"github.com/katalvlaran/stoic/equation"
)

// Role describes what the reported quantity of a compound means.
type Role int

const (
	RoleRemaining Role = iota // reactant left over after the reaction
	RoleConsumed              // reactant used up by the reaction
	RoleProduced              // product formed by the reaction
	RoleFinal                 // product amount after the reaction, incl. initial
)

// String implements fmt.Stringer.
func (r Role) String() string {
	switch r {
	case RoleRemaining:
		return "remaining"
	case RoleConsumed:
		return "consumed"
	case RoleProduced:
		return "produced"
	default:
		return "final"
	}
}

// Result is the computed quantity for one compound.
type Result struct {
	Compound  equation.Compound
	Input     Amount
	MolarMass float64 // g/mol
	Moles     float64
	Grams     float64
	Role      Role
	Limiting  bool // this reactant fixed the extent
}

// Report is the outcome of Calculate.
type Report struct {
	Extent  float64  // reaction extent ξ in mol
	Results []Result // one per compound, equation order
}

// Calculate runs the limiting-reagent computation on a balanced equation.
// Implementation:
//   - Stage 1: validate conservation (balance.Verify), positive
//     coefficients and the amounts count.
//   - Stage 2: molar mass of every compound.
//   - Stage 3: extent from the finite reactants; the first minimum wins.
//   - Stage 4: per-compound quantities by side and amount kind.
//
// Errors:
//   - ErrAmountCount, ErrUnknownElement, ErrNoLimiting, ErrInvalidAmount
//     (negative input), balance.ErrUnbalanced / balance.ErrNilEquation,
//     balance.ErrNonPositive for a coefficient below 1.
func Calculate(eq *equation.Equation, amounts []Amount) (*Report, error) {
	if err := balance.Verify(eq); err != nil {
		return nil, stoichErrorf(opCalculate, err)
	}
	for _, c := range eq.Compounds {
		if c.Coefficient < 1 {
			return nil, fmt.Errorf("%s: %w: %s has coefficient %d",
				opCalculate, balance.ErrNonPositive, c.Formula(), c.Coefficient)
		}
	}
	if len(amounts) != eq.Len() {
		return nil, fmt.Errorf("%s: %w: got %d, want %d", opCalculate, ErrAmountCount, len(amounts), eq.Len())
	}

	masses := make([]float64, eq.Len())
	var err error
	for i, c := range eq.Compounds {
		if amounts[i].finite() && amounts[i].Value < 0 {
			return nil, fmt.Errorf("%s: %w: %s", opCalculate, ErrInvalidAmount, amounts[i])
		}
		if masses[i], err = MolarMass(c); err != nil {
			return nil, stoichErrorf(opCalculate, err)
		}
	}

	extent, limiting := math.Inf(1), -1
	for i, c := range eq.Left() {
		if !amounts[i].finite() {
			continue
		}
		if x := amounts[i].moles(masses[i]) / float64(c.Coefficient); x < extent {
			extent, limiting = x, i
		}
	}
	if limiting < 0 {
		return nil, stoichErrorf(opCalculate, ErrNoLimiting)
	}

	rep := &Report{Extent: extent, Results: make([]Result, eq.Len())}
	for i, c := range eq.Compounds {
		a := amounts[i]
		delta := extent * float64(c.Coefficient)
		r := Result{Compound: c, Input: a, MolarMass: masses[i], Limiting: i == limiting}
		switch {
		case c.Side == equation.Left && a.finite():
			r.Role, r.Moles = RoleRemaining, a.moles(masses[i])-delta
		case c.Side == equation.Left:
			r.Role, r.Moles = RoleConsumed, delta
		case a.finite():
			r.Role, r.Moles = RoleFinal, a.moles(masses[i])+delta
		default:
			r.Role, r.Moles = RoleProduced, delta
		}
		if i == limiting {
			r.Moles = 0 // exact, avoids a rounding residue
		}
		r.Grams = r.Moles * masses[i]
		rep.Results[i] = r
	}

	return rep, nil
}
