package rational_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/stoic/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustRat is a test helper building num/den or failing the test.
func mustRat(t *testing.T, num, den int64) rational.Rat {
	t.Helper()
	r, err := rational.New(num, den)
	require.NoError(t, err)

	return r
}

// TestNew_Normalizes verifies lowest terms and a positive denominator.
func TestNew_Normalizes(t *testing.T) {
	r := mustRat(t, 6, -8)
	assert.Equal(t, int64(-3), r.Num())
	assert.Equal(t, int64(4), r.Denom())
	assert.Equal(t, "-3/4", r.String())

	z := mustRat(t, 0, -5)
	assert.True(t, z.IsZero())
	assert.Equal(t, int64(1), z.Denom(), "zero is always 0/1")
}

// TestNew_ZeroDenominator ensures a zero denominator is rejected.
func TestNew_ZeroDenominator(t *testing.T) {
	_, err := rational.New(1, 0)
	assert.ErrorIs(t, err, rational.ErrZeroDenominator)
}

// TestZeroValue checks the zero value reads as 0/1.
func TestZeroValue(t *testing.T) {
	var r rational.Rat
	assert.True(t, r.IsZero())
	assert.Equal(t, int64(1), r.Denom())
	assert.True(t, r.Equal(rational.Zero))
	assert.Equal(t, "0", r.String())
}

// TestArithmetic covers Add/Sub/Mul/Quo on small fractions.
func TestArithmetic(t *testing.T) {
	half := mustRat(t, 1, 2)
	third := mustRat(t, 1, 3)

	sum, err := half.Add(third)
	require.NoError(t, err)
	assert.Equal(t, "5/6", sum.String())

	diff, err := third.Sub(half)
	require.NoError(t, err)
	assert.Equal(t, "-1/6", diff.String())

	prod, err := half.Mul(mustRat(t, 4, 3))
	require.NoError(t, err)
	assert.Equal(t, "2/3", prod.String())

	quo, err := third.Quo(half)
	require.NoError(t, err)
	assert.Equal(t, "2/3", quo.String())

	back, err := quo.Mul(half)
	require.NoError(t, err)
	assert.True(t, back.Equal(third), "(1/3 ÷ 1/2) × 1/2 == 1/3")
}

// TestQuo_DivisionByZero ensures division by zero is an error, not a panic.
func TestQuo_DivisionByZero(t *testing.T) {
	_, err := rational.One.Quo(rational.Zero)
	assert.ErrorIs(t, err, rational.ErrDivisionByZero)

	_, err = rational.Zero.Inv()
	assert.ErrorIs(t, err, rational.ErrDivisionByZero)
}

// TestOverflow verifies that int64 overflow is reported and never wraps.
func TestOverflow(t *testing.T) {
	big := rational.FromInt(math.MaxInt64)

	_, err := big.Add(rational.One)
	assert.ErrorIs(t, err, rational.ErrOverflow)

	_, err = big.Mul(rational.FromInt(2))
	assert.ErrorIs(t, err, rational.ErrOverflow)

	_, err = rational.FromInt(math.MinInt64).Neg()
	assert.ErrorIs(t, err, rational.ErrOverflow)

	// Denominators overflow too: 1/p + 1/q with large coprime p, q.
	a := mustRat(t, 1, math.MaxInt64)
	b := mustRat(t, 1, math.MaxInt64-1)
	_, err = a.Add(b)
	assert.ErrorIs(t, err, rational.ErrOverflow)
}

// TestMul_CrossReduces checks that cross reduction avoids spurious overflow.
func TestMul_CrossReduces(t *testing.T) {
	a := mustRat(t, math.MaxInt64, 3)
	b := mustRat(t, 3, math.MaxInt64)

	p, err := a.Mul(b)
	require.NoError(t, err)
	assert.True(t, p.Equal(rational.One))
}

// TestCmp covers ordering across signs and magnitudes.
func TestCmp(t *testing.T) {
	assert.Equal(t, -1, mustRat(t, 1, 3).Cmp(mustRat(t, 1, 2)))
	assert.Equal(t, 1, mustRat(t, -1, 3).Cmp(mustRat(t, -1, 2)))
	assert.Equal(t, -1, mustRat(t, -5, 1).Cmp(rational.Zero))
	assert.Equal(t, 0, mustRat(t, 2, 4).Cmp(mustRat(t, 1, 2)))

	assert.Equal(t, 1, mustRat(t, -3, 1).CmpAbs(mustRat(t, 2, 1)))
	assert.Equal(t, -1, mustRat(t, 1, 3).CmpAbs(mustRat(t, 1, 2)))
	assert.Equal(t, 1, mustRat(t, -1, 2).CmpAbs(mustRat(t, 1, 3)))
	assert.Equal(t, 0, mustRat(t, -2, 6).CmpAbs(mustRat(t, 1, 3)))
	assert.Equal(t, 0, rational.FromInt(math.MinInt64+1).CmpAbs(rational.FromInt(math.MaxInt64)))
}

// TestGCDLCM covers the integer helpers.
func TestGCDLCM(t *testing.T) {
	assert.Equal(t, int64(6), rational.GCD(12, -18))
	assert.Equal(t, int64(5), rational.GCD(0, 5))
	assert.Equal(t, int64(0), rational.GCD(0, 0))

	l, err := rational.LCM(4, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(12), l)

	l, err = rational.LCM(-4, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(12), l, "LCM is non-negative")

	_, err = rational.LCM(math.MaxInt64, math.MaxInt64-1)
	assert.ErrorIs(t, err, rational.ErrOverflow)
}

// TestChecked covers the checked integer primitives at their edges.
func TestChecked(t *testing.T) {
	_, err := rational.CheckedAdd(math.MaxInt64, 1)
	assert.ErrorIs(t, err, rational.ErrOverflow)

	_, err = rational.CheckedSub(0, math.MinInt64)
	assert.ErrorIs(t, err, rational.ErrOverflow)

	v, err := rational.CheckedSub(-1, math.MinInt64)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), v)

	_, err = rational.CheckedMul(-1, math.MinInt64)
	assert.ErrorIs(t, err, rational.ErrOverflow)

	v, err = rational.CheckedMul(-7, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(-42), v)
}

// TestAbs covers sign removal and the MinInt64 edge.
func TestAbs(t *testing.T) {
	a, err := mustRat(t, -5, 7).Abs()
	require.NoError(t, err)
	assert.Equal(t, "5/7", a.String())

	a, err = mustRat(t, 5, 7).Abs()
	require.NoError(t, err)
	assert.Equal(t, "5/7", a.String())

	_, err = rational.FromInt(math.MinInt64).Abs()
	assert.ErrorIs(t, err, rational.ErrOverflow)
}
