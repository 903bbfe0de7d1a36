package iso

// Direction labels one of the three coordinate axes of a triangular
// face. The axes are arranged cyclically 120 degrees apart, so rotating
// a label clockwise steps through the cycle B -> S -> D -> B.
type Direction int

const (
	B Direction = 0
	S Direction = 1
	D Direction = 2
)

// numDirections is the size of the axis cycle.
const numDirections = 3

// RotatedCW returns the direction n steps clockwise from d.
func (d Direction) RotatedCW(n int) Direction {
	return Direction(mod(int(d)+n, numDirections))
}

// RotatedCCW returns the direction n steps counter-clockwise from d.
func (d Direction) RotatedCCW(n int) Direction {
	return Direction(mod(int(d)-n, numDirections))
}

// Valid reports whether d is one of B, S or D.
func (d Direction) Valid() bool { return d >= B && d <= D }

func (d Direction) String() string {
	switch d {
	case B:
		return "b"
	case S:
		return "s"
	case D:
		return "d"
	}
	return "invalid"
}

// mod is the Euclidean remainder, always in [0, m).
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
