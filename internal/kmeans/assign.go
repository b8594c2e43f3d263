package kmeans

import (
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/jmylchreest/smash/internal/numeric"
)

// neighbour is another center and its distance from the owning center.
type neighbour struct {
	center   int
	distance float64
}

// neighboursOf returns every center other than center, sorted by increasing
// distance from it. Ties keep index order.
func neighboursOf[I comparable, O any](space Space[I, O], centers []O, center int) []neighbour {
	neighbours := make([]neighbour, 0, len(centers)-1)
	for j, c := range centers {
		if j == center {
			continue
		}
		neighbours = append(neighbours, neighbour{center: j, distance: space.CenterDistance(centers[center], c)})
	}

	slices.SortStableFunc(neighbours, func(a, b neighbour) int {
		return numeric.Compare(a.distance, b.distance)
	})
	return neighbours
}

// nearestFrom finds the nearest center to in, starting from its prior
// center. Neighbours are scanned in increasing distance from the prior
// center; once that distance reaches four times the distance to the prior
// center no remaining center can be closer, so the scan stops.
func nearestFrom[I comparable, O any](space Space[I, O], in I, prior int, centers []O, neighbours []neighbour) int {
	priorDistance := space.Distance(in, centers[prior])
	best, bestDistance := prior, priorDistance

	for _, n := range neighbours {
		if priorDistance*4 <= n.distance {
			break
		}
		if d := space.Distance(in, centers[n.center]); d < bestDistance {
			best, bestDistance = n.center, d
		}
	}
	return best
}

// assign moves every group to its nearest center and returns the new
// partition. With more than one worker the clusters of the prior partition
// are scanned concurrently; the result does not depend on the worker count.
// Neighbour lists are built per non-empty cluster, so memory stays linear in
// the number of centers.
func (e *Engine[I, O]) assign(groups []Group[I], centers []O, prior *Partition) *Partition {
	assignment := make([]int, len(groups))

	members := make([][]uint32, prior.Len())
	for i := range members {
		members[i] = prior.Members(i)
	}

	scan := func(cluster int) {
		if len(members[cluster]) == 0 {
			return
		}
		neighbours := neighboursOf(e.space, centers, cluster)
		for _, g := range members[cluster] {
			assignment[g] = nearestFrom(e.space, groups[g].Value, cluster, centers, neighbours)
		}
	}

	if e.workers <= 1 {
		for cluster := range members {
			scan(cluster)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(e.workers)
		for cluster := range members {
			g.Go(func() error {
				scan(cluster)
				return nil
			})
		}
		_ = g.Wait()
	}

	return partitionFrom(assignment, len(centers))
}

// reposition moves each non-empty cluster's center to the weighted mean of
// its members. Empty clusters keep their previous center.
func (e *Engine[I, O]) reposition(groups []Group[I], centers []O, partition *Partition) error {
	var members []Group[I]
	for i := range centers {
		indices := partition.Members(i)
		if len(indices) == 0 {
			continue
		}

		members = members[:0]
		for _, g := range indices {
			members = append(members, groups[g])
		}

		center, err := e.space.Mean(members)
		if err != nil {
			return fmt.Errorf("failed to reposition center %d: %w", i, err)
		}
		centers[i] = center
	}
	return nil
}
