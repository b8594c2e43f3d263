package kmeans

// NearestFrom runs the pruned nearest-center search for in, starting from
// the prior center.
func NearestFrom[I comparable, O any](space Space[I, O], in I, prior int, centers []O) int {
	return nearestFrom(space, in, prior, centers, neighboursOf(space, centers, prior))
}
