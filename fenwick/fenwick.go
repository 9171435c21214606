// Package fenwick provides an integer index supporting prefix sums.
//
// A Fenwick tree, or binary indexed tree, stores a fixed-size list of
// numbers so that updating an element and summing a prefix both run in
// O(log n) time, using the same amount of memory as the list itself.
// The list is represented as an implicit tree in which every node holds
// the sum of the numbers in its subtree.
//
// Public indices are 0-based. Violating an index or range precondition
// is a programming error and panics.
package fenwick

import "fmt"

// Index holds partial sums over a fixed-size list of int64 values.
// The zero value is an empty index.
type Index struct {
	// The tree slice is 1-based; tree[0] is unused. Node i stores the
	// sum of the model values in the half-open interval
	// (i - lsb(i), i], counted from 1.
	//
	// For example, the prefix sum of the first 13 values is found by
	// walking 13 = 1101₂, 12 = 1100₂ and 8 = 1000₂: those nodes hold the
	// sums of value 13, values 9..12 and values 1..8 respectively.
	//
	tree []int64
}

// lsb returns the value of the lowest set bit of i.
func lsb(i int) int {
	return int(uint(i) & -uint(i))
}

// New creates an index of n zero values.
func New(n int) *Index {
	if n < 0 {
		panic(fmt.Sprintf("fenwick: negative size %d", n))
	}
	return &Index{
		tree: make([]int64, n+1),
	}
}

// Build creates an index holding the given values in O(n) time.
func Build(values ...int64) *Index {
	n := len(values)
	t := make([]int64, n+1)
	copy(t[1:], values)
	for i := 1; i <= n; i++ {
		if p := i + lsb(i); p <= n {
			t[p] += t[i]
		}
	}
	return &Index{
		tree: t,
	}
}

// Len returns the number of values in the index.
func (x *Index) Len() int {
	if len(x.tree) == 0 {
		return 0
	}
	return len(x.tree) - 1
}

func (x *Index) checkIndex(index int) {
	if index < 0 || index >= x.Len() {
		panic(fmt.Sprintf("fenwick: index %d out of range [0,%d)", index, x.Len()))
	}
}

func (x *Index) checkRange(i, j int) {
	if i > j {
		panic(fmt.Sprintf("fenwick: invalid range [%d,%d]", i, j))
	}
	x.checkIndex(i)
	x.checkIndex(j)
}

// add walks the update chain starting at the 1-based node i.
func (x *Index) add(i int, delta int64) {
	for n := x.Len(); i <= n; i += lsb(i) {
		x.tree[i] += delta
	}
}

// Update adds delta to the value at index.
func (x *Index) Update(index int, delta int64) {
	x.checkIndex(index)
	x.add(index+1, delta)
}

// UpdateRange adds delta to every value in the inclusive range [i, j].
//
// The index is then read as a difference array: the projected value at
// k is PrefixSum(k), while Value(k) returns the raw difference. Mixing
// range updates with Value or RangeSum queries is only meaningful when
// the caller tracks that projection.
func (x *Index) UpdateRange(i, j int, delta int64) {
	x.checkRange(i, j)
	x.add(j+2, -delta)
	x.add(i+1, delta)
}

// PrefixSum returns the sum of the values from index 0 to index,
// inclusive. PrefixSum(-1) is the empty sum.
func (x *Index) PrefixSum(index int) int64 {
	if index != -1 {
		x.checkIndex(index)
	}
	var sum int64
	for i := index + 1; i > 0; i -= lsb(i) {
		sum += x.tree[i]
	}
	return sum
}

// RangeSum returns the sum of the values from index i to index j,
// inclusive.
func (x *Index) RangeSum(i, j int) int64 {
	x.checkRange(i, j)
	return x.PrefixSum(j) - x.PrefixSum(i-1)
}

// Value returns the value at index.
//
// Node i covers (i - lsb(i), i]; subtracting the nodes that chain down
// from i-1 to that lower bound leaves the single value at i. The loop
// runs once per trailing one bit below i.
func (x *Index) Value(index int) int64 {
	x.checkIndex(index)
	i := index + 1
	sum := x.tree[i]
	stop := i - lsb(i)
	for k := i - 1; k > stop; k -= lsb(k) {
		sum -= x.tree[k]
	}
	return sum
}

// Set sets the value at index to v.
func (x *Index) Set(index int, v int64) {
	x.Update(index, v-x.Value(index))
}

// Values returns a copy of all values in the index.
func (x *Index) Values() []int64 {
	vs := make([]int64, x.Len())
	for i := range vs {
		vs[i] = x.Value(i)
	}
	return vs
}
