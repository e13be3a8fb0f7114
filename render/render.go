// Package render provides triangle mesh types for directly constructed
// geometry and serialization to STL interchange formats.
package render

// Renderer wraps a source of triangles, such as a fully built Mesh.
// ReadTriangles returns io.EOF once the source is exhausted.
type Renderer interface {
	ReadTriangles(t []Triangle3) (int, error)
}
