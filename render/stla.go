package render

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// WriteTextSTL writes a mesh to w in the textual (ASCII) STL format:
//
//	solid <name>
//	facet normal nx ny nz
//	  outer loop
//	    vertex x y z
//	    ...
//	  endloop
//	endfacet
//	endsolid <name>
//
// Every triangle repeats its vertices verbatim in original winding order;
// no vertex deduplication is performed. Numbers are written with the
// shortest decimal representation that parses back to the same value.
func WriteTextSTL(w io.Writer, m *Mesh) error {
	if m == nil || len(m.Triangles) == 0 {
		return errors.New("empty mesh")
	}
	bw := bufio.NewWriter(w)
	bw.WriteString("solid ")
	bw.WriteString(m.Name)
	bw.WriteByte('\n')
	for _, t := range m.Triangles {
		bw.WriteString("facet normal ")
		writeVec(bw, t.Normal())
		bw.WriteString("\n  outer loop\n")
		for _, v := range t.V {
			bw.WriteString("    vertex ")
			writeVec(bw, v)
			bw.WriteByte('\n')
		}
		bw.WriteString("  endloop\nendfacet\n")
	}
	bw.WriteString("endsolid ")
	bw.WriteString(m.Name)
	bw.WriteByte('\n')
	return bw.Flush()
}

// CreateTextSTL writes a mesh to path in textual STL format. The whole file
// is serialized in memory first so no partial file is left behind on error.
func CreateTextSTL(path string, m *Mesh) error {
	var buf bytes.Buffer
	if m != nil {
		buf.Grow(64 + 200*len(m.Triangles))
	}
	if err := WriteTextSTL(&buf, m); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0666); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

func writeVec(bw *bufio.Writer, v r3.Vec) {
	var b [32]byte
	bw.Write(strconv.AppendFloat(b[:0], v.X, 'g', -1, 64))
	bw.WriteByte(' ')
	bw.Write(strconv.AppendFloat(b[:0], v.Y, 'g', -1, 64))
	bw.WriteByte(' ')
	bw.Write(strconv.AppendFloat(b[:0], v.Z, 'g', -1, 64))
}

// ReadTextSTL parses a textual STL mesh from r. Facet normals are consumed
// but discarded since orientation is carried by vertex winding.
func ReadTextSTL(r io.Reader) (*Mesh, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1<<16), 1<<20)
	m := &Mesh{}
	var (
		verts   []r3.Vec
		inLoop  bool
		sawEnd  bool
		started bool
		lineNo  int
	)
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "solid":
			if started {
				return nil, fmt.Errorf("line %d: repeated solid marker", lineNo)
			}
			started = true
			if len(fields) > 1 {
				m.Name = strings.Join(fields[1:], " ")
			}
		case "facet":
			if !started || inLoop {
				return nil, fmt.Errorf("line %d: unexpected facet", lineNo)
			}
		case "outer":
			inLoop = true
			verts = verts[:0]
		case "vertex":
			if !inLoop || len(fields) != 4 {
				return nil, fmt.Errorf("line %d: malformed vertex", lineNo)
			}
			v, err := parseVec(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			verts = append(verts, v)
		case "endloop":
			if !inLoop || len(verts) != 3 {
				return nil, fmt.Errorf("line %d: loop does not hold exactly 3 vertices", lineNo)
			}
			inLoop = false
			m.Triangles = append(m.Triangles, Triangle3{V: [3]r3.Vec{verts[0], verts[1], verts[2]}})
		case "endfacet":
			// nothing to close; vertices were captured at endloop.
		case "endsolid":
			sawEnd = true
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !started {
		return nil, errors.New("missing solid marker")
	}
	if !sawEnd {
		return nil, errors.New("missing endsolid marker")
	}
	if len(m.Triangles) == 0 {
		return nil, errors.New("textual STL contains no facets")
	}
	return m, nil
}

func parseVec(fields []string) (r3.Vec, error) {
	var v r3.Vec
	var err error
	if v.X, err = strconv.ParseFloat(fields[0], 64); err != nil {
		return v, err
	}
	if v.Y, err = strconv.ParseFloat(fields[1], 64); err != nil {
		return v, err
	}
	v.Z, err = strconv.ParseFloat(fields[2], 64)
	return v, err
}
