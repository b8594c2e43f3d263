package kmeans

// Space is the capability the engine needs from a data representation.
// I is the input data point and O the quantized representative.
type Space[I comparable, O any] interface {
	// Distance is the metric distance from an input to a representative.
	Distance(in I, out O) float64

	// NormalizedDistance is Distance minus the error that cannot be avoided
	// when in is quantized on its own. It is used only while seeding.
	NormalizedDistance(in I, out O) float64

	// CenterDistance is the metric distance between two representatives.
	CenterDistance(a, b O) float64

	// AsOutput quantizes a single input.
	AsOutput(in I) O

	// Mean returns the weighted mean of a non-empty set of groups.
	Mean(groups []Group[I]) (O, error)

	// Equal reports whether two representatives are identical.
	Equal(a, b O) bool
}
