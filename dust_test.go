package dust

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestInnerDiameterInverse(t *testing.T) {
	// Dyadic values make every intermediate exactly representable, so the
	// inverse identity holds with float equality, as constructed parts
	// require: modeled walls must close up exactly.
	outers := []float64{16, 50, 100.5, 203.25}
	thicknesses := []float64{0.5, 1.25, 2, 3.75}
	for _, o := range outers {
		for _, th := range thicknesses {
			inner := InnerDiameter(o, th)
			if inner <= 0 {
				t.Fatalf("test values produced non-positive bore %g", inner)
			}
			if got := OuterDiameter(inner, th); got != o {
				t.Errorf("OuterDiameter(InnerDiameter(%g, %g), %g) = %g, want exact %g", o, th, th, got, o)
			}
			if inner+2*th != o {
				t.Errorf("inner %g + 2*%g != %g", inner, th, o)
			}
		}
	}
}

func TestClearanceStrictlyDecreasing(t *testing.T) {
	diameters := []float64{2, 10, 32, 57.5, 100, 101, 250}
	for i := 1; i < len(diameters); i++ {
		c1 := Clearance(diameters[i-1])
		c2 := Clearance(diameters[i])
		if c1 <= c2 {
			t.Errorf("clearance(%g)=%g not greater than clearance(%g)=%g",
				diameters[i-1], c1, diameters[i], c2)
		}
		if c2 <= 0 {
			t.Errorf("clearance(%g)=%g must stay positive", diameters[i], c2)
		}
	}
}

func TestMaterialFit(t *testing.T) {
	for _, port := range []float64{32, 57.5, 100} {
		bore := PLA.FitBoreDiameter(port)
		if bore <= port {
			t.Errorf("fit bore %g must exceed port %g", bore, port)
		}
	}
	if PLA.InternalDimScale(50) <= 50 {
		t.Error("internal dimensions must be modeled oversize")
	}
}

func TestRingSpecValidate(t *testing.T) {
	good := RingSpec{InnerRadius: 25, OuterRadius: 27, Height: 20, Segments: 128}
	if err := good.Validate(); err != nil {
		t.Fatalf("valid spec rejected: %v", err)
	}
	for name, s := range map[string]RingSpec{
		"negative inner":      {InnerRadius: -1, OuterRadius: 27, Height: 20, Segments: 128},
		"outer below inner":   {InnerRadius: 27, OuterRadius: 25, Height: 20, Segments: 128},
		"outer equal inner":   {InnerRadius: 25, OuterRadius: 25, Height: 20, Segments: 128},
		"zero height":         {InnerRadius: 25, OuterRadius: 27, Segments: 128},
		"few segments":        {InnerRadius: 25, OuterRadius: 27, Height: 20, Segments: 15},
		"NaN radius":          {InnerRadius: math.NaN(), OuterRadius: 27, Height: 20, Segments: 128},
		"infinite outer":      {InnerRadius: 25, OuterRadius: math.Inf(1), Height: 20, Segments: 128},
		"infinite height":     {InnerRadius: 25, OuterRadius: 27, Height: math.Inf(1), Segments: 128},
		"label on solid bore": {OuterRadius: 10, Height: 5, Segments: 16, Label: "X", LabelOnInner: true},
	} {
		if err := s.Validate(); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
		if _, err := s.Mesh(); err == nil {
			t.Errorf("%s: Mesh must refuse invalid spec", name)
		}
	}
}

func TestRingMeshEndToEnd(t *testing.T) {
	plain := RingSpec{InnerRadius: 25, OuterRadius: 27, Height: 20, Segments: 128}
	m, err := plain.Mesh()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := m.TriangleCount(), 8*plain.Segments; got != want {
		t.Fatalf("shell holds %d triangles, want %d", got, want)
	}
	const tol = 1e-9
	bb := m.Bounds()
	if bb.Min.Z != 0 || bb.Max.Z != plain.Height {
		t.Errorf("z-range [%g, %g], want [0, %g]", bb.Min.Z, bb.Max.Z, plain.Height)
	}
	for _, tri := range m.Triangles {
		for _, v := range tri.V {
			r := math.Hypot(v.X, v.Y)
			if r < plain.InnerRadius-tol || r > plain.OuterRadius+tol {
				t.Fatalf("shell vertex radius %g outside [%g, %g]", r, plain.InnerRadius, plain.OuterRadius)
			}
		}
	}

	labeled := plain
	labeled.Label = "ID50MM"
	labeled.LabelOnInner = true
	lm, err := labeled.Mesh()
	if err != nil {
		t.Fatal(err)
	}
	if lm.TriangleCount() <= m.TriangleCount() {
		t.Fatal("label added no geometry")
	}
	lbb := lm.Bounds()
	if lbb.Min.Z < -tol || lbb.Max.Z > labeled.Height+tol {
		t.Errorf("label escaped the ring height: z-range [%g, %g]", lbb.Min.Z, lbb.Max.Z)
	}
	// Raised bore text protrudes into the hole by the label depth.
	minR := math.Inf(1)
	for _, tri := range lm.Triangles {
		for _, v := range tri.V {
			minR = math.Min(minR, math.Hypot(v.X, v.Y))
		}
	}
	if want := labeled.InnerRadius - 0.6; math.Abs(minR-want) > tol {
		t.Errorf("bore text reaches radius %g, want %g", minR, want)
	}
}

func TestSolidCylinderSpec(t *testing.T) {
	s := RingSpec{OuterRadius: 10, Height: 5, Segments: 16}
	m, err := s.Mesh()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := m.TriangleCount(), 4*s.Segments; got != want {
		t.Errorf("solid cylinder holds %d triangles, want %d", got, want)
	}
	for i, tri := range m.Triangles {
		if tri.Degenerate(1e-12) {
			t.Errorf("triangle %d degenerate", i)
		}
		n := tri.Normal()
		if math.IsNaN(n.X) || math.IsNaN(n.Y) || math.IsNaN(n.Z) {
			t.Errorf("triangle %d normal has NaN", i)
		}
	}
}

func TestSaveSTLNoPartialFile(t *testing.T) {
	dir := t.TempDir()
	bad := RingSpec{InnerRadius: 5, OuterRadius: 4, Height: 2, Segments: 64}
	path := filepath.Join(dir, "bad.stl")
	if err := bad.SaveSTL(path); err == nil {
		t.Fatal("expected generation failure")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("failed generation left a file on disk")
	}

	good := RingSpec{InnerRadius: 25, OuterRadius: 27, Height: 20, Segments: 64, Label: "OD54MM"}
	path = filepath.Join(dir, "good.stl")
	if err := good.SaveSTL(path); err != nil {
		t.Fatal(err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("expected non-empty mesh file, err=%v", err)
	}
}
