// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package selsort implements selection sort over slices of ints.
//
// Selection sort repeatedly selects the minimum of the unsorted suffix and
// moves it to the end of the sorted prefix with a single swap. It performs
// O(n²) comparisons and at most n-1 swaps, and never allocates.
package selsort

// Sort sorts x in place in non-decreasing order.
//
// The result is a permutation of the original contents. Sort is not
// guaranteed to be stable, which is unobservable for plain ints.
func Sort(x []int) {
	selectionSort(x)
}

// IsSorted reports whether x is sorted in non-decreasing order.
func IsSorted(x []int) bool {
	for i := len(x) - 1; i > 0; i-- {
		if x[i] < x[i-1] {
			return false
		}
	}
	return true
}

// selectionSort sorts x and returns the number of swaps it made.
// The scan keeps the first occurrence of the minimum, and elements
// already in place are not swapped.
func selectionSort(x []int) (swaps int) {
	n := len(x)
	for i := 0; i < n; i++ {
		min := i
		for j := i; j < n; j++ {
			if x[j] < x[min] {
				min = j
			}
		}
		if min != i {
			x[i], x[min] = x[min], x[i]
			swaps++
		}
	}
	return swaps
}
