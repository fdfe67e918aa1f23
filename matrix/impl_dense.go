// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer of exact rationals with the explicit index
//     formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Give the elimination kernels exclusive, in-place ownership of one buffer
//     (row swap / scale / eliminate never alias another matrix).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); swapRows: O(c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/stoic/rational"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"         // method tag used in error wrappers
	ctxSet       = "Set"        // method tag used in error wrappers
	ctxRow       = "Row"        // method tag used in error wrappers
	ctxFromInts  = "FromInts"   // ctor tag for NewDenseFromInts
	ctxRemoveRow = "removeRows" // internal tag for zero-row compaction
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel stays reachable via errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of exact rationals.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int            // row and column counts (r may drop to 0 after compaction)
	data []rational.Rat // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer (the zero Rat reads as 0/1).
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]rational.Rat, rows*cols)}, nil
}

// NewDenseFromInts builds a Dense from integer rows (all rows equal length).
// MAIN DESCRIPTION:
//   - Convenience ingestion for integer incidence data (stoichiometric counts).
//
// Implementation:
//   - Stage 1: validate non-empty, rectangular input.
//   - Stage 2: allocate via NewDense and copy values as n/1.
//
// Errors:
//   - ErrInvalidDimensions for empty input, ErrDimensionMismatch for ragged rows.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromInts(rows [][]int64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("Dense.%s: %w", ctxFromInts, ErrInvalidDimensions)
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxFromInts, err)
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		if len(rows[i]) != m.c {
			return nil, fmt.Errorf("Dense.%s: row %d has %d cols, want %d: %w",
				ctxFromInts, i, len(rows[i]), m.c, ErrDimensionMismatch)
		}
		for j = 0; j < m.c; j++ {
			m.data[i*m.c+j] = rational.FromInt(rows[i][j])
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel.
// Complexity: O(1).
func (m *Dense) At(row, col int) (rational.Rat, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return rational.Rat{}, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v rational.Rat) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange for invalid i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]rational.Rat, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]rational.Rat, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy (new buffer).
// Mutations on the clone never affect the original.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]rational.Rat, len(m.data)) // allocate same length
	copy(cp, m.data)                        // Rat is a value type: shallow copy is deep

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Values print as "n" or "n/d". Fixed traversal order.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(m.data[base+j].String())
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
// Complexity: O(r*c).
func (m *Dense) Do(f func(i, j int, v rational.Rat) bool) {
	var i, j, base int

	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// ---------- in-place row primitives (kernel-internal, indices pre-validated) ----------

// swapRows exchanges rows a and b in place.
// Complexity: O(c).
func (m *Dense) swapRows(a, b int) {
	if a == b {
		return
	}
	ra := m.data[a*m.c : (a+1)*m.c]
	rb := m.data[b*m.c : (b+1)*m.c]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}

// isZeroRow reports whether every entry of row i is zero.
func (m *Dense) isZeroRow(i int) bool {
	for _, v := range m.data[i*m.c : (i+1)*m.c] {
		if !v.IsZero() {
			return false
		}
	}

	return true
}

// leadingCol returns the column of the first nonzero entry in row i, or -1.
func (m *Dense) leadingCol(i int) int {
	base := i * m.c
	for j := 0; j < m.c; j++ {
		if !m.data[base+j].IsZero() {
			return j
		}
	}

	return -1
}

// removeRows drops the listed row indices (ascending, unique) in place and
// shrinks r. The buffer is compacted; capacity is kept.
// Errors: ErrOutOfRange for an invalid index.
// Complexity: O(r*c).
func (m *Dense) removeRows(idx []int) error {
	if len(idx) == 0 {
		return nil
	}
	drop := make(map[int]struct{}, len(idx))
	for _, i := range idx {
		if i < 0 || i >= m.r {
			return denseErrorf(ctxRemoveRow, i, 0, ErrOutOfRange)
		}
		drop[i] = struct{}{}
	}
	w := 0 // next write row
	for i := 0; i < m.r; i++ {
		if _, ok := drop[i]; ok {
			continue
		}
		if w != i {
			copy(m.data[w*m.c:(w+1)*m.c], m.data[i*m.c:(i+1)*m.c])
		}
		w++
	}
	m.r = w
	m.data = m.data[:w*m.c]

	return nil
}
