package render

import "io"

// RenderAll reads the full contents of a Renderer and returns the slice read.
// It does not return error on io.EOF, like the io.ReadAll implementation.
func RenderAll(r Renderer) ([]Triangle3, error) {
	var err error
	var nt int
	result := make([]Triangle3, 0, 1<<12)
	buf := make([]Triangle3, 1024)
	for {
		nt, err = r.ReadTriangles(buf)
		result = append(result, buf[:nt]...)
		if err != nil {
			break
		}
	}
	if err == io.EOF {
		return result, nil
	}
	return result, err
}

// meshReader is a read cursor over an already built triangle list.
type meshReader struct {
	remaining []Triangle3
}

func (r *meshReader) ReadTriangles(dst []Triangle3) (int, error) {
	if len(r.remaining) == 0 {
		return 0, io.EOF
	}
	n := copy(dst, r.remaining)
	r.remaining = r.remaining[n:]
	return n, nil
}
