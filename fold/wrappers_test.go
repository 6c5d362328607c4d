package fold_test

import (
	"testing"

	"github.com/katalvlaran/lvlfold/fold"
	"github.com/stretchr/testify/assert"
)

// TestWrappers_Sums verifies the additive specializations on [1,2,3].
func TestWrappers_Sums(t *testing.T) {
	xs := []int{1, 2, 3}

	assert.Equal(t, 6, fold.Sum(xs), "1+2+3")
	assert.Equal(t, 14, fold.SumOfSquares(xs), "1+4+9")
	assert.Equal(t, 36, fold.SumOfCubes(xs), "1+8+27")
}

// TestWrappers_Products verifies the multiplicative specializations carry
// the multiplicative identity and do not collapse to zero.
func TestWrappers_Products(t *testing.T) {
	assert.Equal(t, 6, fold.Product([]int{1, 2, 3}), "1*2*3")
	assert.Equal(t, 36, fold.ProductOfSquares([]int{2, 3}), "4*9")
	assert.Equal(t, 216, fold.ProductOfCubes([]int{2, 3}), "8*27")
}

// TestWrappers_Empty verifies each wrapper returns its combiner's identity
// for the empty slice: 0 for sums, 1 for products.
func TestWrappers_Empty(t *testing.T) {
	var none []int

	assert.Equal(t, 0, fold.Sum(none), "empty sum is 0")
	assert.Equal(t, 0, fold.SumOfSquares(none), "empty sum of squares is 0")
	assert.Equal(t, 0, fold.SumOfCubes(none), "empty sum of cubes is 0")
	assert.Equal(t, 1, fold.Product(none), "empty product is 1")
	assert.Equal(t, 1, fold.ProductOfSquares(none), "empty product of squares is 1")
	assert.Equal(t, 1, fold.ProductOfCubes(none), "empty product of cubes is 1")
}

// TestWrappers_BuildingBlocks verifies Square, Cube, Keep, Add and Mul behave as named.
func TestWrappers_BuildingBlocks(t *testing.T) {
	assert.Equal(t, 9, fold.Square(3))
	assert.Equal(t, -27, fold.Cube(-3))
	assert.Equal(t, 5, fold.Keep(5))
	assert.Equal(t, 7, fold.Add(3, 4))
	assert.Equal(t, 12, fold.Mul(3, 4))
}

// TestWrappers_Float64 verifies the wrappers work across Numeric types.
func TestWrappers_Float64(t *testing.T) {
	xs := []float64{0.5, 2}

	assert.InDelta(t, 2.5, fold.Sum(xs), 1e-12)
	assert.InDelta(t, 4.25, fold.SumOfSquares(xs), 1e-12, "0.25+4")
	assert.InDelta(t, 1.0, fold.ProductOfSquares(xs), 1e-12, "0.25*4")
}
