// SPDX-License-Identifier: MIT
// Package matrix provides the exact Gaussian-Jordan kernel: reduction to
// reduced row-echelon form (RREF) over rationals and null-space extraction.
//
// Purpose:
//   - Reduce an R×C matrix with exact arithmetic; no rounding, no epsilon.
//   - Report pivot columns, free columns and one null-space basis vector per
//     free column.
//
// Notes:
//   - Kernels never mutate their input: Reduce clones once and then owns that
//     buffer exclusively, performing every swap/scale/eliminate in place.
//   - Loop orders are fixed, so the same input always yields the same pivots
//     and the same basis, independent of map iteration or scheduling.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/stoic/rational"
)

// Operation name constants for unified error wrapping.
const (
	opReduce    = "Reduce"
	opNullSpace = "NullSpace"
	opScaleRow  = "scaleRow"
	opEliminate = "eliminate"
	opNegateCol = "negateCol"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Echelon is the result of a Gaussian-Jordan reduction.
//   - R holds the reduced row-echelon form with all-zero rows removed, so
//     R.Rows() equals the rank (R may have zero rows for a zero input).
//   - Pivots[i] is the pivot column of row i; strictly increasing.
type Echelon struct {
	R      *Dense // reduced matrix (owned; callers must not mutate)
	Pivots []int  // pivot column per row of R
}

// Reduce computes the reduced row-echelon form of a.
// MAIN DESCRIPTION:
//   - Forward elimination (REF) with the leftmost-column rule, then
//     back-substitution (RREF), then removal of redundant zero rows.
//
// Implementation:
//   - Stage 1: validate a; clone it into an exclusively owned buffer.
//   - Stage 2 (REF): for each pivot position i, find the leftmost leading
//     column among rows i..R-1, pick the working row by the pivoting policy,
//     swap it to i, scale the pivot to exactly 1, eliminate below.
//   - Stage 3 (RREF): from the last pivot row upward, eliminate the pivot
//     column from every row above.
//   - Stage 4: drop all-zero rows.
//
// Errors:
//   - ErrNilMatrix for a nil input.
//   - rational.ErrOverflow when an intermediate fraction leaves int64.
//
// Determinism:
//   - Ties in PivotMaxAbs keep the topmost row; loops run in index order.
//
// Complexity:
//   - Time O(R²·C) rational ops, Space O(R·C) for the owned copy.
func Reduce(a *Dense, opts ...Option) (*Echelon, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opReduce, err)
	}
	o := gatherOptions(opts...)

	// Stage 1: owned buffer.
	m := a.Clone()

	// Stage 2: forward elimination.
	pivots, err := m.forwardEliminate(o.pivoting)
	if err != nil {
		return nil, matrixErrorf(opReduce, err)
	}

	// Stage 3: back-substitution.
	if err = m.backSubstitute(pivots); err != nil {
		return nil, matrixErrorf(opReduce, err)
	}

	// Stage 4: drop redundant rows.
	var zero []int
	for i := 0; i < m.r; i++ {
		if m.isZeroRow(i) {
			zero = append(zero, i)
		}
	}
	if err = m.removeRows(zero); err != nil {
		return nil, matrixErrorf(opReduce, err)
	}

	return &Echelon{R: m, Pivots: pivots}, nil
}

// Rank returns the number of pivot rows.
func (e *Echelon) Rank() int { return len(e.Pivots) }

// Nullity returns the number of free columns (dimension of the null space).
func (e *Echelon) Nullity() int { return e.R.c - len(e.Pivots) }

// FreeColumns lists the column indices without a pivot, ascending.
// Complexity: O(C).
func (e *Echelon) FreeColumns() []int {
	isPivot := make([]bool, e.R.c)
	for _, p := range e.Pivots {
		isPivot[p] = true
	}
	free := make([]int, 0, e.R.c-len(e.Pivots))
	for j := 0; j < e.R.c; j++ {
		if !isPivot[j] {
			free = append(free, j)
		}
	}

	return free
}

// NullSpace returns one basis vector per free column of the reduced matrix.
// The Echelon is left untouched (the extraction runs on a private copy).
//
// Errors:
//   - ErrNoNullSpace when there is no free column.
//   - rational.ErrOverflow from column negation.
func (e *Echelon) NullSpace() ([][]rational.Rat, error) {
	owned := &Echelon{R: e.R.Clone(), Pivots: e.Pivots}

	return owned.extractNullSpace()
}

// NullSpace reduces a and returns a basis of {x : a·x = 0}.
// Thin composition of Reduce and the in-place extraction (single clone).
//
// Errors:
//   - ErrNilMatrix, ErrNoNullSpace, rational.ErrOverflow.
//
// Complexity:
//   - Time O(R²·C + F·C) for F free columns.
func NullSpace(a *Dense, opts ...Option) ([][]rational.Rat, error) {
	e, err := Reduce(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opNullSpace, err)
	}

	return e.extractNullSpace()
}

// extractNullSpace reads the basis directly off the RREF, mutating e.R.
// Implementation:
//   - Stage 1: free = columns without pivot; empty ⇒ ErrNoNullSpace.
//   - Stage 2: negate every free column in place. For pivot row i and free
//     column x the equation reads x_{p_i} + a_{ix}·x_x + … = 0, so the
//     negated entry is exactly the pivot variable's value when x_x = 1.
//   - Stage 3: for each free column x build v with v[p_i] = R[i][x],
//     v[x] = 1 and every other free position = 0.
func (e *Echelon) extractNullSpace() ([][]rational.Rat, error) {
	free := e.FreeColumns()
	if len(free) == 0 {
		return nil, matrixErrorf(opNullSpace, ErrNoNullSpace)
	}

	m := e.R
	for _, x := range free {
		if err := m.negateCol(x); err != nil {
			return nil, matrixErrorf(opNullSpace, err)
		}
	}

	basis := make([][]rational.Rat, len(free))
	var i, k, y int
	for k = range free {
		x := free[k]
		v := make([]rational.Rat, m.c)
		for i = range e.Pivots { // pivot variables
			v[e.Pivots[i]] = m.data[i*m.c+x]
		}
		for _, y = range free { // free variables: 1 for x, 0 otherwise
			if y == x {
				v[y] = rational.One
			} else {
				v[y] = rational.Zero
			}
		}
		basis[k] = v
	}

	return basis, nil
}

// ---------- elimination stages ----------

// forwardEliminate brings m to row-echelon form in place and returns the
// pivot column of each pivot row, in row order.
func (m *Dense) forwardEliminate(policy Pivoting) ([]int, error) {
	limit := m.r
	if m.c < limit {
		limit = m.c
	}
	pivots := make([]int, 0, limit)

	var i, u int
	for i = 0; i < m.r; i++ {
		top, col := m.leftmostRow(i)
		if top < 0 {
			break // rows i..R-1 are all zero
		}
		sel := m.selectPivotRow(top, col, policy)
		m.swapRows(i, sel)
		if err := m.scaleRowToPivot(i, col); err != nil {
			return nil, err
		}
		for u = i + 1; u < m.r; u++ {
			if err := m.eliminate(u, i, col); err != nil {
				return nil, err
			}
		}
		pivots = append(pivots, col)
	}

	return pivots, nil
}

// backSubstitute clears every pivot column above its pivot row.
func (m *Dense) backSubstitute(pivots []int) error {
	var i, u int
	for i = len(pivots) - 1; i >= 0; i-- {
		for u = i - 1; u >= 0; u-- {
			if err := m.eliminate(u, i, pivots[i]); err != nil {
				return err
			}
		}
	}

	return nil
}

// leftmostRow returns the row in [from, R) whose leading nonzero entry has
// the smallest column index, together with that column; (-1, -1) when every
// remaining row is zero. Ties keep the topmost row.
func (m *Dense) leftmostRow(from int) (row, col int) {
	row, col = -1, -1
	for i := from; i < m.r; i++ {
		lc := m.leadingCol(i)
		if lc < 0 {
			continue
		}
		if col < 0 || lc < col {
			row, col = i, lc
		}
	}

	return row, col
}

// selectPivotRow picks the working row among rows in [top, R) that are
// nonzero in col. Since col is the leftmost leading column, those are exactly
// the rows whose leading entry sits in col; rows above top are zero there.
func (m *Dense) selectPivotRow(top, col int, policy Pivoting) int {
	if policy == PivotFirst {
		return top
	}
	best := top
	for k := top + 1; k < m.r; k++ {
		if m.data[k*m.c+col].CmpAbs(m.data[best*m.c+col]) > 0 {
			best = k
		}
	}

	return best
}

// scaleRowToPivot divides row i by its entry in col so the pivot becomes 1.
func (m *Dense) scaleRowToPivot(i, col int) error {
	base := i * m.c
	inv, err := m.data[base+col].Inv()
	if err != nil {
		return matrixErrorf(opScaleRow, err)
	}
	for j := 0; j < m.c; j++ {
		if m.data[base+j].IsZero() {
			continue
		}
		if m.data[base+j], err = m.data[base+j].Mul(inv); err != nil {
			return matrixErrorf(opScaleRow, err)
		}
	}

	return nil
}

// eliminate performs row[dst] -= row[dst][col] · row[src] in place.
// row[src] must already have a 1 in col.
func (m *Dense) eliminate(dst, src, col int) error {
	f := m.data[dst*m.c+col]
	if f.IsZero() {
		return nil
	}
	db, sb := dst*m.c, src*m.c
	var (
		j    int
		prod rational.Rat
		err  error
	)
	for j = 0; j < m.c; j++ {
		if m.data[sb+j].IsZero() {
			continue
		}
		if prod, err = f.Mul(m.data[sb+j]); err != nil {
			return matrixErrorf(opEliminate, err)
		}
		if m.data[db+j], err = m.data[db+j].Sub(prod); err != nil {
			return matrixErrorf(opEliminate, err)
		}
	}

	return nil
}

// negateCol multiplies column j by -1 in place.
func (m *Dense) negateCol(j int) error {
	var err error
	for i := 0; i < m.r; i++ {
		off := i*m.c + j
		if m.data[off], err = m.data[off].Neg(); err != nil {
			return matrixErrorf(opNegateCol, err)
		}
	}

	return nil
}
