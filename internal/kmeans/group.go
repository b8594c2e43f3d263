package kmeans

import "iter"

// Group is a distinct data point together with the number of times it
// occurred in the input.
type Group[I comparable] struct {
	Value I
	Count uint32
}

// Collect consumes items once and returns one Group per distinct value.
// Groups are returned in the order their value was first seen, so the
// same input always produces the same groups.
func Collect[I comparable](items iter.Seq[I]) []Group[I] {
	index := make(map[I]int)
	var groups []Group[I]

	for item := range items {
		if i, ok := index[item]; ok {
			groups[i].Count++
			continue
		}
		index[item] = len(groups)
		groups = append(groups, Group[I]{Value: item, Count: 1})
	}

	return groups
}

// TotalCount returns the sum of all group counts.
func TotalCount[I comparable](groups []Group[I]) uint64 {
	var total uint64
	for _, g := range groups {
		total += uint64(g.Count)
	}
	return total
}
