package isotest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gravitas-015/isocore/iso"
)

// meshFile mirrors the YAML fixture layout:
//
//	faces:
//	  - name: alpha
//	    side: 12.0
//	edges:
//	  - {a: alpha, b: beta, dir_a: d, dir_b: d}
type meshFile struct {
	Faces []faceEntry `yaml:"faces"`
	Edges []edgeEntry `yaml:"edges"`
}

type faceEntry struct {
	Name string  `yaml:"name"`
	Side float64 `yaml:"side"`
}

type edgeEntry struct {
	A    string `yaml:"a"`
	B    string `yaml:"b"`
	DirA string `yaml:"dir_a"`
	DirB string `yaml:"dir_b"`
}

// Parse builds a mesh from YAML fixture data.
func Parse(data []byte) (*Mesh, error) {
	var file meshFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing mesh fixture: %w", err)
	}
	mesh := NewMesh()
	for _, f := range file.Faces {
		if f.Name == "" {
			return nil, fmt.Errorf("mesh fixture: face with empty name")
		}
		if f.Side <= 0 {
			return nil, fmt.Errorf("mesh fixture: face %q has side %v", f.Name, f.Side)
		}
		mesh.AddFace(f.Name, f.Side)
	}
	for _, e := range file.Edges {
		if mesh.Face(e.A) == nil || mesh.Face(e.B) == nil {
			return nil, fmt.Errorf("mesh fixture: edge %s-%s references unknown face", e.A, e.B)
		}
		dirA, err := parseDirection(e.DirA)
		if err != nil {
			return nil, fmt.Errorf("mesh fixture: edge %s-%s: %w", e.A, e.B, err)
		}
		dirB, err := parseDirection(e.DirB)
		if err != nil {
			return nil, fmt.Errorf("mesh fixture: edge %s-%s: %w", e.A, e.B, err)
		}
		mesh.Connect(e.A, e.B, dirA, dirB)
	}
	return mesh, nil
}

// Load reads a YAML mesh fixture from disk.
func Load(path string) (*Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mesh fixture: %w", err)
	}
	return Parse(data)
}

func parseDirection(s string) (iso.Direction, error) {
	switch s {
	case "b":
		return iso.B, nil
	case "s":
		return iso.S, nil
	case "d":
		return iso.D, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}
