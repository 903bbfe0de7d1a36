// Package isotest provides concrete iso.Grid implementations backed by
// a small in-memory mesh, for tests and for validating cross-face
// geometry against known-good adjacency fixtures. It stands in for the
// world-mesh collaborator that owns faces and their adjacency graph in
// a full game.
package isotest

import (
	"math"

	"github.com/gravitas-015/isocore/iso"
)

// Face is one equilateral triangular face of a Mesh. It implements
// iso.Grid; adjacency queries are answered from the owning mesh's edge
// table.
type Face struct {
	name string
	side float64
	mesh *Mesh
}

// Name returns the face's name within its mesh.
func (f *Face) Name() string { return f.name }

// SideLength returns the face's edge length.
func (f *Face) SideLength() float64 { return f.side }

// Apothem returns side_length / (2*sqrt(3)).
func (f *Face) Apothem() float64 { return f.side / (2 * math.Sqrt(3)) }

// Altitude returns 3 * apothem.
func (f *Face) Altitude() float64 { return 3 * f.Apothem() }

// IsAdjacentTo reports whether other is a face of the same mesh
// sharing an edge with f.
func (f *Face) IsAdjacentTo(other iso.Grid) bool {
	o, ok := other.(*Face)
	if !ok || o.mesh != f.mesh {
		return false
	}
	_, ok = f.mesh.edges[f.name][o.name]
	return ok
}

// DirectionAwayFrom returns f's label for the edge shared with other,
// or the zero Direction for a grid that is not a face of this mesh.
func (f *Face) DirectionAwayFrom(other iso.Grid) iso.Direction {
	o, ok := other.(*Face)
	if !ok || o.mesh != f.mesh {
		return 0
	}
	return f.mesh.edges[f.name][o.name]
}

// Mesh is a registry of faces plus the shared-edge labels between
// adjacent pairs. Each face names the shared edge in its own frame, so
// an edge is recorded once per side.
type Mesh struct {
	faces map[string]*Face
	edges map[string]map[string]iso.Direction
}

// NewMesh returns an empty mesh.
func NewMesh() *Mesh {
	return &Mesh{
		faces: make(map[string]*Face),
		edges: make(map[string]map[string]iso.Direction),
	}
}

// AddFace registers a face with the given name and side length and
// returns it. Re-adding a name replaces the previous face.
func (m *Mesh) AddFace(name string, side float64) *Face {
	f := &Face{name: name, side: side, mesh: m}
	m.faces[name] = f
	return f
}

// Face returns the face registered under name, or nil.
func (m *Mesh) Face(name string) *Face { return m.faces[name] }

// Connect records that faces a and b share an edge, labelled dirA in
// a's frame and dirB in b's frame.
func (m *Mesh) Connect(a, b string, dirA, dirB iso.Direction) {
	if m.edges[a] == nil {
		m.edges[a] = make(map[string]iso.Direction)
	}
	if m.edges[b] == nil {
		m.edges[b] = make(map[string]iso.Direction)
	}
	m.edges[a][b] = dirA
	m.edges[b][a] = dirB
}
