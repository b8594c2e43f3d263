package kmeans

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Partition records which groups belong to which cluster. Group indices
// refer to the slice passed to Engine.Run.
type Partition struct {
	clusters []*roaring.Bitmap
}

// NewPartition returns an empty partition with k clusters.
func NewPartition(k int) *Partition {
	clusters := make([]*roaring.Bitmap, k)
	for i := range clusters {
		clusters[i] = roaring.New()
	}
	return &Partition{clusters: clusters}
}

// partitionFrom builds a partition from a per-group cluster assignment.
func partitionFrom(assignment []int, k int) *Partition {
	p := NewPartition(k)
	for group, cluster := range assignment {
		p.Add(cluster, group)
	}
	return p
}

// Add assigns group to cluster.
func (p *Partition) Add(cluster, group int) {
	p.clusters[cluster].Add(uint32(group))
}

// Len returns the number of clusters.
func (p *Partition) Len() int {
	return len(p.clusters)
}

// Members returns the group indices of cluster in ascending order.
func (p *Partition) Members(cluster int) []uint32 {
	return p.clusters[cluster].ToArray()
}

// Size returns the number of groups in cluster.
func (p *Partition) Size(cluster int) int {
	return int(p.clusters[cluster].GetCardinality())
}

// EmptyClusters counts clusters without members.
func (p *Partition) EmptyClusters() int {
	empty := 0
	for _, c := range p.clusters {
		if c.IsEmpty() {
			empty++
		}
	}
	return empty
}

// Equal reports whether both partitions assign every group to the same
// cluster.
func (p *Partition) Equal(other *Partition) bool {
	if len(p.clusters) != len(other.clusters) {
		return false
	}
	for i, c := range p.clusters {
		if !c.Equals(other.clusters[i]) {
			return false
		}
	}
	return true
}
