package kmeans

import (
	"github.com/jmylchreest/smash/internal/numeric"
)

// seeding tracks, for every group, the normalized distance to its nearest
// center so far and that center's index, and for every cluster the weighted
// cost and member count.
type seeding[I comparable, O any] struct {
	space  Space[I, O]
	groups []Group[I]

	centers  []O
	distance []float64
	cluster  []int
	cost     []float64
	size     []int
}

// seed picks k initial centers. The first is the heaviest group; each next
// center is the worst served member of the cluster with the largest cost.
func (e *Engine[I, O]) seed(groups []Group[I], k int) ([]O, []int) {
	s := &seeding[I, O]{
		space:    e.space,
		groups:   groups,
		centers:  make([]O, 0, k),
		distance: make([]float64, len(groups)),
		cluster:  make([]int, len(groups)),
		cost:     make([]float64, 0, k),
		size:     make([]int, 0, k),
	}

	first := s.space.AsOutput(groups[heaviest(groups)].Value)
	s.centers = append(s.centers, first)
	s.cost = append(s.cost, 0)
	s.size = append(s.size, len(groups))
	for i, g := range groups {
		d := s.space.NormalizedDistance(g.Value, first)
		s.distance[i] = d
		s.cost[0] += d * float64(g.Count)
	}

	for len(s.centers) < k {
		split := s.worstCluster()
		farthest := s.farthestMember(split)
		center := s.space.AsOutput(groups[farthest].Value)

		if s.contains(center) {
			e.logger.Warn("created duplicate center", "center", center, "centers", len(s.centers))
		}
		s.add(center)
	}

	return s.centers, s.cluster
}

// heaviest returns the index of the first group with the largest count.
func heaviest[I comparable](groups []Group[I]) int {
	best := 0
	for i, g := range groups {
		if g.Count > groups[best].Count {
			best = i
		}
	}
	return best
}

// worstCluster returns the non-empty cluster with the largest cost, the
// first one on ties.
func (s *seeding[I, O]) worstCluster() int {
	var clusters []int
	var costs []float64
	for i, c := range s.cost {
		if s.size[i] > 0 {
			clusters = append(clusters, i)
			costs = append(costs, c)
		}
	}
	return clusters[numeric.MaxIndex(costs)]
}

// farthestMember returns the member of cluster with the largest distance to
// its center, the first one on ties.
func (s *seeding[I, O]) farthestMember(cluster int) int {
	var members []int
	var distances []float64
	for i, c := range s.cluster {
		if c == cluster {
			members = append(members, i)
			distances = append(distances, s.distance[i])
		}
	}
	return members[numeric.MaxIndex(distances)]
}

func (s *seeding[I, O]) contains(center O) bool {
	for _, c := range s.centers {
		if s.space.Equal(c, center) {
			return true
		}
	}
	return false
}

// add appends center and moves every group that is now closer to it,
// keeping the cluster costs in step.
func (s *seeding[I, O]) add(center O) {
	index := len(s.centers)
	s.centers = append(s.centers, center)
	s.cost = append(s.cost, 0)
	s.size = append(s.size, 0)

	for i, g := range s.groups {
		d := s.space.NormalizedDistance(g.Value, center)
		if d >= s.distance[i] {
			continue
		}
		weight := float64(g.Count)
		old := s.cluster[i]
		s.cost[old] -= s.distance[i] * weight
		s.size[old]--

		s.cluster[i] = index
		s.distance[i] = d
		s.cost[index] += d * weight
		s.size[index]++
	}
}
