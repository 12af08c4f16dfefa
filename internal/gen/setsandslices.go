//    textanalytics
//    Copyright: B L Shields 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"sort"
)

//
// SETS AND SLICES
//

// ToSet - returns a blank map of a slice
func ToSet[T comparable](sl []T) map[T]struct{} {
	m := make(map[T]struct{})
	for i := 0; i < len(sl); i++ {
		m[sl[i]] = struct{}{}
	}
	return m
}

// MapKeysIntoSlice - extract the keys of a map into a slice
func MapKeysIntoSlice[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// SortedMapKeys - extract the keys of a string-keyed map into a sorted slice
func SortedMapKeys[V any](m map[string]V) []string {
	keys := MapKeysIntoSlice(m)
	sort.Strings(keys)
	return keys
}

// DescendingOrder - indices of a float slice sorted by value, high to low; ties keep low indices first
func DescendingOrder(vals []float64) []int {
	idx := make([]int, len(vals))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return vals[idx[a]] > vals[idx[b]]
	})
	return idx
}
