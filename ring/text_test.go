package ring

import (
	"math"
	"sort"
	"strings"
	"testing"

	"github.com/hoguej/Dust-Collection-3d-Print-Generator/render"
)

func baseLabel(text string) LabelParms {
	return LabelParms{
		Text:      text,
		Radius:    20,
		Depth:     0.5,
		ZBottom:   5,
		ZTop:      15,
		CharWidth: 6.5,
	}
}

func TestLabelArcClamp(t *testing.T) {
	// 19 characters at 6.5mm pitch on r=20 span 6.175 rad raw, well over
	// the cap. Every rendered vertex must stay inside the clamped arc.
	p := baseLabel(strings.Repeat("8", 19))
	tris := Label(p)
	if len(tris) == 0 {
		t.Fatal("no geometry produced")
	}
	limit := maxLabelArc/2 + 1e-9
	for _, tri := range tris {
		for _, v := range tri.V {
			if a := math.Abs(math.Atan2(v.Y, v.X)); a > limit {
				t.Fatalf("vertex angle %g exceeds clamped half-arc %g", a, limit)
			}
		}
	}
}

func TestLabelShortTextNotClamped(t *testing.T) {
	p := baseLabel("50")
	tris := Label(p)
	// Raw span: 2 chars * 6.5mm / 20mm = 0.65 rad, centered about zero.
	halfSpan := 0.65 / 2
	for _, tri := range tris {
		for _, v := range tri.V {
			if a := math.Abs(math.Atan2(v.Y, v.X)); a > halfSpan+1e-9 {
				t.Fatalf("vertex angle %g outside unclamped span %g", a, halfSpan)
			}
		}
	}
}

func TestLabelSpacingPreservedForUnknownGlyphs(t *testing.T) {
	// '?' has no glyph and must behave exactly like a space: no geometry,
	// slot kept.
	unknown := Label(baseLabel("1?1"))
	spaced := Label(baseLabel("1 1"))
	if len(unknown) != len(spaced) {
		t.Fatalf("unknown glyph geometry differs from space: %d vs %d triangles", len(unknown), len(spaced))
	}
	bbUnknown := render.NewMesh("a", unknown).Bounds()
	bbSpaced := render.NewMesh("b", spaced).Bounds()
	if !bbUnknown.Equals(bbSpaced, 1e-12) {
		t.Errorf("bounding boxes differ: %+v vs %+v", bbUnknown, bbSpaced)
	}
	if dense := Label(baseLabel("111")); len(dense) <= len(spaced) {
		t.Errorf("expected middle glyph to add geometry: %d <= %d", len(dense), len(spaced))
	}
}

func TestLabelRadialOffsets(t *testing.T) {
	for _, tc := range []struct {
		name       string
		inner      bool
		engrave    bool
		rMin, rMax float64
	}{
		{"outer raised", false, false, 20, 20.5},
		{"outer engraved", false, true, 19.5, 20},
		{"inner raised", true, false, 19.5, 20},
		{"inner engraved", true, true, 20, 20.5},
	} {
		p := baseLabel("ID50MM")
		p.OnInner = tc.inner
		p.Engrave = tc.engrave
		tris := Label(p)
		if len(tris) == 0 {
			t.Fatalf("%s: no geometry", tc.name)
		}
		for _, tri := range tris {
			for _, v := range tri.V {
				r := math.Hypot(v.X, v.Y)
				if r < tc.rMin-1e-9 || r > tc.rMax+1e-9 {
					t.Fatalf("%s: vertex radius %g outside [%g, %g]", tc.name, r, tc.rMin, tc.rMax)
				}
			}
		}
	}
}

func TestLabelInnerMirrorsOuter(t *testing.T) {
	// Inner-surface traversal reverses the angular increment so the text
	// reads correctly from inside the bore: same geometry, mirrored angles.
	outer := baseLabel("12")
	inner := outer
	inner.OnInner = true
	angOut := sortedAngles(Label(outer))
	angIn := sortedAngles(Label(inner))
	if len(angOut) != len(angIn) {
		t.Fatalf("triangle vertex counts differ: %d vs %d", len(angOut), len(angIn))
	}
	for i := range angOut {
		mirrored := -angIn[len(angIn)-1-i]
		if math.Abs(angOut[i]-mirrored) > 1e-12 {
			t.Fatalf("angle %d: outer %g, mirrored inner %g", i, angOut[i], mirrored)
		}
	}
}

func sortedAngles(tris []render.Triangle3) []float64 {
	var angles []float64
	for _, tri := range tris {
		for _, v := range tri.V {
			angles = append(angles, math.Atan2(v.Y, v.X))
		}
	}
	sort.Float64s(angles)
	return angles
}

func TestLabelEmptyText(t *testing.T) {
	p := baseLabel("")
	if tris := Label(p); tris != nil {
		t.Errorf("empty text produced %d triangles", len(tris))
	}
	p.Text = "??  ??"
	if tris := Label(p); len(tris) != 0 {
		t.Errorf("unrenderable text produced %d triangles", len(tris))
	}
}

func TestLabelInvariantViolations(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(*LabelParms)
	}{
		{"zero radius", func(p *LabelParms) { p.Radius = 0 }},
		{"zero depth", func(p *LabelParms) { p.Depth = 0 }},
		{"inverted band", func(p *LabelParms) { p.ZTop = p.ZBottom }},
		{"zero char width", func(p *LabelParms) { p.CharWidth = 0 }},
		{"depth through axis", func(p *LabelParms) { p.OnInner = true; p.Depth = 25 }},
	} {
		p := baseLabel("1")
		tc.mutate(&p)
		if !panics(func() { Label(p) }) {
			t.Errorf("%s: expected panic", tc.name)
		}
	}
}

func TestGlyphCatalog(t *testing.T) {
	for _, c := range "0123456789" {
		if len(glyphs[c]) == 0 {
			t.Errorf("digit %q missing from glyph catalog", c)
		}
	}
	for _, c := range "CDILMNOPSTU-." {
		if len(glyphs[c]) == 0 {
			t.Errorf("%q missing from glyph catalog", c)
		}
	}
	if _, ok := glyphs[' ']; !ok {
		t.Error("space must be in the catalog with an empty pattern")
	}
	for c, rects := range glyphs {
		for i, rc := range rects {
			if rc.x0 >= rc.x1 || rc.y0 >= rc.y1 {
				t.Errorf("%q rect %d is inverted: %+v", c, i, rc)
			}
			if rc.x0 < 0 || rc.y0 < 0 || rc.x1 > 1 || rc.y1 > 1 {
				t.Errorf("%q rect %d escapes the unit square: %+v", c, i, rc)
			}
		}
	}
}
