package iso

// Grid is the geometric frame of one equilateral triangular face in a
// larger world mesh. The kernel only ever consumes this contract;
// concrete faces, their sizes and their adjacency graph are owned by
// the embedding mesh and injected into points.
//
// Implementations are expected to be pointer types, so that comparing
// two Grid values with == is face identity.
type Grid interface {
	// SideLength returns the length of one edge of the face.
	SideLength() float64

	// Apothem returns the distance from the face's center to an edge,
	// side_length / (2*sqrt(3)).
	Apothem() float64

	// Altitude returns 3 * apothem. The three axis coordinates of
	// every valid point on the face sum to this constant.
	Altitude() float64

	// IsAdjacentTo reports whether this face shares an edge with other.
	IsAdjacentTo(other Grid) bool

	// DirectionAwayFrom returns this face's own label for the edge it
	// shares with other. Only meaningful when IsAdjacentTo(other).
	DirectionAwayFrom(other Grid) Direction
}
