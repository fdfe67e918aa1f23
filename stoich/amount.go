// SPDX-License-Identifier: MIT

package stoich

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit tells how an Amount is expressed.
type Unit int

const (
	UnitUnknown Unit = iota // to be computed
	UnitGrams               // mass in g
	UnitMoles               // amount of substance in mol
	UnitExcess              // never limiting
)

// String implements fmt.Stringer with the suffix used by ParseAmount.
func (u Unit) String() string {
	switch u {
	case UnitGrams:
		return "g"
	case UnitMoles:
		return "mol"
	case UnitExcess:
		return "excess"
	default:
		return "?"
	}
}

// Amount is the input quantity of one compound.
type Amount struct {
	Unit  Unit
	Value float64 // meaningful for UnitGrams and UnitMoles
}

// Grams returns an Amount of g grams.
func Grams(g float64) Amount { return Amount{Unit: UnitGrams, Value: g} }

// Moles returns an Amount of n moles.
func Moles(n float64) Amount { return Amount{Unit: UnitMoles, Value: n} }

// Excess returns an Amount that never limits the reaction.
func Excess() Amount { return Amount{Unit: UnitExcess} }

// Unknown returns an Amount to be computed.
func Unknown() Amount { return Amount{} }

// String renders the amount the way ParseAmount reads it.
func (a Amount) String() string {
	switch a.Unit {
	case UnitGrams, UnitMoles:
		return strconv.FormatFloat(a.Value, 'g', -1, 64) + a.Unit.String()
	default:
		return a.Unit.String()
	}
}

// moles converts a finite amount to moles using the molar mass.
func (a Amount) moles(molarMass float64) float64 {
	if a.Unit == UnitGrams {
		return a.Value / molarMass
	}

	return a.Value
}

// finite reports whether the amount carries a number.
func (a Amount) finite() bool { return a.Unit == UnitGrams || a.Unit == UnitMoles }

// ParseAmount reads "12.5g", "0.3 mol", "excess" or "?" (also "").
// Matching is case-insensitive; values must be non-negative.
func ParseAmount(s string) (Amount, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	switch t {
	case "", "?", "unknown":
		return Unknown(), nil
	case "excess", "xs":
		return Excess(), nil
	}

	var unit Unit
	var num string
	switch {
	case strings.HasSuffix(t, "mol"):
		unit, num = UnitMoles, strings.TrimSuffix(t, "mol")
	case strings.HasSuffix(t, "g"):
		unit, num = UnitGrams, strings.TrimSuffix(t, "g")
	default:
		return Amount{}, fmt.Errorf("%s: %w: %q lacks a unit (g or mol)", opParseAmount, ErrInvalidAmount, s)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return Amount{}, fmt.Errorf("%s: %w: %q", opParseAmount, ErrInvalidAmount, s)
	}

	return Amount{Unit: unit, Value: v}, nil
}
