// SPDX-License-Identifier: MIT

package equation

import (
	"strconv"
	"strings"
)

// Rendering literals.
const (
	termSep = " + "
	sideSep = " = "
)

// Formula renders the compound without its coefficient, e.g. "H2O".
func (c Compound) Formula() string {
	var b strings.Builder
	for _, e := range c.Elements {
		b.WriteString(e.Symbol)
		if e.Count != 1 {
			b.WriteString(strconv.FormatInt(e.Count, 10))
		}
	}

	return b.String()
}

// String renders "[coefficient if ≠1][formula]", e.g. "2H2O".
func (c Compound) String() string {
	if c.Coefficient == 1 {
		return c.Formula()
	}

	return strconv.FormatInt(c.Coefficient, 10) + c.Formula()
}

// String renders the equation as "2H2 + O2 = 2H2O".
// An equation without compounds renders as "".
func (e *Equation) String() string {
	if e == nil || len(e.Compounds) == 0 {
		return ""
	}
	var b strings.Builder
	for i, c := range e.Compounds {
		switch {
		case i == 0:
		case i == e.RightIndex:
			b.WriteString(sideSep)
		default:
			b.WriteString(termSep)
		}
		b.WriteString(c.String())
	}

	return b.String()
}
