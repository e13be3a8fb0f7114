package render

import (
	"github.com/hoguej/Dust-Collection-3d-Print-Generator/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle3 is a triangle in 3D space addressed by its vertices in
// millimetres. Vertex winding order determines the facet orientation by the
// right-hand rule; there is no separate orientation flag.
type Triangle3 struct {
	V [3]r3.Vec
}

// Normal returns the unit normal derived from vertex winding,
// normalize(cross(V1-V0, V2-V0)). A degenerate triangle yields the zero
// vector, never NaN.
func (t Triangle3) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return d3.Unit(r3.Cross(e1, e2))
}

// Centroid returns the triangle's center of mass.
func (t Triangle3) Centroid() r3.Vec {
	sum := r3.Add(t.V[0], r3.Add(t.V[1], t.V[2]))
	return r3.Scale(1.0/3.0, sum)
}

// Degenerate returns true if two vertices coincide within tol.
func (t Triangle3) Degenerate(tol float64) bool {
	return d3.EqualWithin(t.V[0], t.V[1], tol) ||
		d3.EqualWithin(t.V[1], t.V[2], tol) ||
		d3.EqualWithin(t.V[2], t.V[0], tol)
}

// Mesh is a named, ordered collection of triangles. It is built once per
// generation call and not modified afterwards; the caller that requested it
// owns it exclusively until handed to a writer.
type Mesh struct {
	Name      string
	Triangles []Triangle3
}

// NewMesh assembles a mesh from a name and a complete triangle list.
func NewMesh(name string, triangles []Triangle3) *Mesh {
	return &Mesh{Name: name, Triangles: triangles}
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int { return len(m.Triangles) }

// Bounds returns the axis aligned bounding box enclosing all vertices.
func (m *Mesh) Bounds() d3.Box {
	bb := d3.EmptyBox()
	for _, t := range m.Triangles {
		for _, v := range t.V {
			bb = bb.Include(v)
		}
	}
	return bb
}

// Renderer returns a streaming reader over the mesh's triangles. Each call
// returns an independent cursor; the mesh itself is not modified.
func (m *Mesh) Renderer() Renderer {
	return &meshReader{remaining: m.Triangles}
}
