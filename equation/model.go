// SPDX-License-Identifier: MIT

package equation

import (
	"fmt"

	"github.com/katalvlaran/stoic/rational"
)

// Side tags a compound as reactant (Left) or product (Right).
type Side int

const (
	Left Side = iota
	Right
)

// String implements fmt.Stringer.
func (s Side) String() string {
	if s == Right {
		return "right"
	}

	return "left"
}

// Element is one symbol with its atom count inside a compound.
type Element struct {
	Symbol string
	Count  int64
}

// Compound is an ordered symbol→count mapping plus its side and coefficient.
// Elements keep the order of first appearance; repeated symbols accumulate.
type Compound struct {
	Elements    []Element
	Side        Side
	Coefficient int64 // 1 until balanced
}

// add accumulates count for symbol, appending it on first sight.
// Errors: rational.ErrOverflow when the running count leaves int64.
func (c *Compound) add(symbol string, count int64) error {
	for i := range c.Elements {
		if c.Elements[i].Symbol == symbol {
			sum, err := rational.CheckedAdd(c.Elements[i].Count, count)
			if err != nil {
				return fmt.Errorf("equation: count of %s: %w", symbol, err)
			}
			c.Elements[i].Count = sum
			return nil
		}
	}
	c.Elements = append(c.Elements, Element{Symbol: symbol, Count: count})

	return nil
}

// Count returns the atom count of symbol, or 0 when absent.
func (c Compound) Count(symbol string) int64 {
	for _, e := range c.Elements {
		if e.Symbol == symbol {
			return e.Count
		}
	}

	return 0
}

// clone deep-copies the element list.
func (c Compound) clone() Compound {
	els := make([]Element, len(c.Elements))
	copy(els, c.Elements)
	c.Elements = els

	return c
}

// Equation is the ordered list of compounds, left side first.
// Compounds[:RightIndex] are reactants, Compounds[RightIndex:] products.
type Equation struct {
	Compounds  []Compound
	RightIndex int
}

// Left returns the reactant compounds (shared backing array).
func (e *Equation) Left() []Compound { return e.Compounds[:e.RightIndex] }

// Right returns the product compounds (shared backing array).
func (e *Equation) Right() []Compound { return e.Compounds[e.RightIndex:] }

// Len returns the total compound count.
func (e *Equation) Len() int { return len(e.Compounds) }

// Clone returns a deep copy; mutating it never affects e.
func (e *Equation) Clone() *Equation {
	out := &Equation{Compounds: make([]Compound, len(e.Compounds)), RightIndex: e.RightIndex}
	for i, c := range e.Compounds {
		out.Compounds[i] = c.clone()
	}

	return out
}

// Symbols lists distinct element symbols over all compounds in first-seen
// order (left to right, then within each compound).
func (e *Equation) Symbols() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, c := range e.Compounds {
		for _, el := range c.Elements {
			if _, ok := seen[el.Symbol]; ok {
				continue
			}
			seen[el.Symbol] = struct{}{}
			out = append(out, el.Symbol)
		}
	}

	return out
}

// Coefficients returns the coefficient of every compound in column order.
func (e *Equation) Coefficients() []int64 {
	out := make([]int64, len(e.Compounds))
	for i, c := range e.Compounds {
		out[i] = c.Coefficient
	}

	return out
}
