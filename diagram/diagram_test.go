package diagram

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"pipguide/plate"
	"pipguide/surface/htmldom"
)

const page = `<!DOCTYPE html><html><body><div id="from_plate"></div><div id="to_plate"></div></body></html>`

func newPlate(t *testing.T, container string) *htmldom.Document {
	t.Helper()
	doc, err := htmldom.ParseString(page)
	if err != nil {
		t.Fatalf("parse page: %v", err)
	}
	if _, err := Generate(doc, container, 52); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return doc
}

func fillOf(t *testing.T, doc *htmldom.Document, container, label string) string {
	t.Helper()
	color, ok, err := WellColor(doc, container, label)
	if err != nil || !ok {
		t.Fatalf("WellColor(%s): ok=%v err=%v", label, ok, err)
	}
	return color
}

func allLabels() []string {
	labels := make([]string, 0, plate.Wells)
	for w := 1; w <= plate.Wells; w++ {
		l, _ := plate.WellToID(w)
		labels = append(labels, l)
	}
	return labels
}

func TestGenerate(t *testing.T) {
	doc := newPlate(t, "from_plate")

	svg, ok := doc.ElementByID(SurfaceID("from_plate"))
	if !ok {
		t.Fatal("svg not generated")
	}
	attrs := map[string]string{"viewBox": "0 0 115 80", "width": "598", "height": "416"}
	for name, want := range attrs {
		if got, _ := svg.Attr(name); got != want {
			t.Errorf("svg %s = %q, want %q", name, got, want)
		}
	}
	if n := len(svg.ByClass(ClassWell)); n != plate.Wells {
		t.Errorf("got %d wells, want %d", n, plate.Wells)
	}
	if n := len(svg.ByClass(ClassColumnHeaders)); n != plate.Columns {
		t.Errorf("got %d column headers", n)
	}
	if n := len(svg.ByClass(ClassRowHeaders)); n != plate.Rows {
		t.Errorf("got %d row headers", n)
	}

	p24, ok := doc.ElementByID("plate_from_plate_well_P24")
	if !ok {
		t.Fatal("well P24 missing")
	}
	for name, want := range map[string]string{"cx": "111.9", "cy": "71.5", "r": "1", "stroke": "black", "stroke-width": "0.1", "fill": "white"} {
		if got, _ := p24.Attr(name); got != want {
			t.Errorf("P24 %s = %q, want %q", name, got, want)
		}
	}

	if _, ok := doc.ElementByID(SurfaceID("to_plate")); ok {
		t.Error("to_plate should be untouched")
	}
}

func TestGenerateErrors(t *testing.T) {
	doc, _ := htmldom.ParseString(page)
	if _, err := Generate(doc, "missing", 52); !errors.Is(err, ErrContainerNotFound) {
		t.Errorf("missing container: got %v", err)
	}
	for _, ppcm := range []float64{0, -52, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := Generate(doc, "from_plate", ppcm); !errors.Is(err, plate.ErrInvalidArgument) {
			t.Errorf("ppcm %v: got %v", ppcm, err)
		}
	}
	if strings.Contains(doc.String(), "<svg") {
		t.Error("failed generate must not draw")
	}
}

func TestReset(t *testing.T) {
	doc := newPlate(t, "from_plate")
	if err := SetWellColor(doc, "from_plate", "B03", "green"); err != nil {
		t.Fatal(err)
	}
	if err := Reset(doc, "from_plate"); err != nil {
		t.Fatal(err)
	}
	for _, l := range allLabels() {
		if got := fillOf(t, doc, "from_plate", l); got != White {
			t.Fatalf("%s fill = %q after reset", l, got)
		}
	}
	if err := Reset(doc, "to_plate"); !errors.Is(err, ErrContainerNotFound) {
		t.Errorf("reset without plate: got %v", err)
	}
}

func TestSetWellColor(t *testing.T) {
	doc := newPlate(t, "from_plate")
	if err := SetWellColor(doc, "from_plate", "D11", "red"); err != nil {
		t.Fatal(err)
	}
	for _, l := range allLabels() {
		got := fillOf(t, doc, "from_plate", l)
		var want string
		switch {
		case l == "D11":
			want = Highlight
		case l[0] == 'D' || l[1:] == "11":
			want = "red"
		default:
			want = White
		}
		if got != want {
			t.Errorf("%s fill = %q, want %q", l, got, want)
		}
	}
}

func TestSetWellColorInvalidLabel(t *testing.T) {
	doc := newPlate(t, "from_plate")
	for _, label := range []string{"Z01", "A99", "A1", ""} {
		if err := SetWellColor(doc, "from_plate", label, "red"); !errors.Is(err, plate.ErrInvalidArgument) {
			t.Errorf("SetWellColor(%q): got %v", label, err)
		}
	}
	// A plate that was never drawn has no shapes: nothing happens.
	if err := SetWellColor(doc, "to_plate", "A01", "red"); err != nil {
		t.Errorf("missing shapes: got %v", err)
	}
}

func TestSetAlignmentMode(t *testing.T) {
	doc := newPlate(t, "from_plate")
	_ = SetWellColor(doc, "from_plate", "H12", "red")
	if err := SetAlignmentMode(doc, "from_plate", "blue"); err != nil {
		t.Fatal(err)
	}
	corners := map[string]bool{"A01": true, "A24": true, "P01": true, "P24": true}
	colored := 0
	for _, l := range allLabels() {
		got := fillOf(t, doc, "from_plate", l)
		if got == White {
			continue
		}
		colored++
		if !corners[l] || got != "blue" {
			t.Errorf("%s fill = %q", l, got)
		}
	}
	if colored != 4 {
		t.Errorf("%d wells colored, want 4", colored)
	}
}

func TestResize(t *testing.T) {
	doc := newPlate(t, "from_plate")
	size := func() string {
		svg, _ := doc.ElementByID(SurfaceID("from_plate"))
		w, _ := svg.Attr("width")
		h, _ := svg.Attr("height")
		return fmt.Sprintf("%sx%s", w, h)
	}

	if err := ResizeByPPCM(doc, "from_plate", 100); err != nil {
		t.Fatal(err)
	}
	byPPCM := size()
	if byPPCM != "1150x800" {
		t.Errorf("ResizeByPPCM(100) = %s", byPPCM)
	}
	if err := ResizeByPPCM(doc, "from_plate", 52); err != nil {
		t.Fatal(err)
	}
	if err := ResizeByDPI(doc, "from_plate", 254); err != nil {
		t.Fatal(err)
	}
	if got := size(); got != byPPCM {
		t.Errorf("ResizeByDPI(254) = %s, want %s", got, byPPCM)
	}

	for _, v := range []float64{-1, 0, math.NaN(), math.Inf(1)} {
		if err := ResizeByPPCM(doc, "from_plate", v); !errors.Is(err, plate.ErrInvalidArgument) {
			t.Errorf("ResizeByPPCM(%v): got %v", v, err)
		}
		if err := ResizeByDPI(doc, "from_plate", v); !errors.Is(err, plate.ErrInvalidArgument) {
			t.Errorf("ResizeByDPI(%v): got %v", v, err)
		}
	}
	if got := size(); got != byPPCM {
		t.Errorf("rejected resize changed size to %s", got)
	}

	d, err := Open(doc, "from_plate")
	if err != nil {
		t.Fatal(err)
	}
	if err := d.ResizeByPPCM(10); err != nil {
		t.Fatal(err)
	}
	viaHandle := size()
	if err := ResizeByPPCM(doc, "from_plate", 10); err != nil {
		t.Fatal(err)
	}
	if got := size(); got != viaHandle || got != "115x80" {
		t.Errorf("handle resize = %s, free resize = %s, want 115x80", viaHandle, got)
	}
	if err := ResizeByDPI(doc, "to_plate", 96); !errors.Is(err, ErrContainerNotFound) {
		t.Errorf("missing plate: got %v", err)
	}
}

func TestDiagramHandle(t *testing.T) {
	doc, _ := htmldom.ParseString(page)
	d, err := Generate(doc, "to_plate", 104)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.SetWellColor("a02", "green"); err != nil {
		t.Fatal(err)
	}
	if got, _, _ := d.WellColor("A02"); got != Highlight {
		t.Errorf("A02 = %q", got)
	}
	if err := d.FillWell("C05", "orange"); err != nil {
		t.Fatal(err)
	}
	if got, _, _ := d.WellColor("C05"); got != "orange" {
		t.Errorf("C05 = %q", got)
	}
	if err := d.ResizeByDPI(254); err != nil {
		t.Fatal(err)
	}

	opened, err := Open(doc, "to_plate")
	if err != nil {
		t.Fatal(err)
	}
	if err := opened.Reset(); err != nil {
		t.Fatal(err)
	}
	if got, _, _ := d.WellColor("C05"); got != White {
		t.Errorf("C05 after reset = %q", got)
	}

	d.Remove()
	if _, err := Open(doc, "to_plate"); !errors.Is(err, ErrContainerNotFound) {
		t.Errorf("Open after Remove: got %v", err)
	}
}

func TestGenerateTwiceReplacesPlate(t *testing.T) {
	doc := newPlate(t, "from_plate")
	if err := SetWellColor(doc, "from_plate", "C03", "red"); err != nil {
		t.Fatal(err)
	}
	if _, err := Generate(doc, "from_plate", 104); err != nil {
		t.Fatal(err)
	}

	page := doc.String()
	if n := strings.Count(page, `id="plate_from_plate_SVG"`); n != 1 {
		t.Errorf("%d svgs in container, want 1", n)
	}
	if n := strings.Count(page, `id="plate_from_plate_well_C03"`); n != 1 {
		t.Errorf("%d C03 shapes, want 1", n)
	}
	if got := fillOf(t, doc, "from_plate", "C03"); got != White {
		t.Errorf("C03 on new plate = %q", got)
	}
	svg, _ := doc.ElementByID(SurfaceID("from_plate"))
	if w, _ := svg.Attr("width"); w != "1196" {
		t.Errorf("width = %q, want 1196", w)
	}
	if err := SetWellColor(doc, "from_plate", "C03", "blue"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(doc.String(), `id="plate_from_plate_well_C04" cx="21.9" cy="13" stroke="black" stroke-width="0.1" fill="blue"`) {
		t.Error("recolor did not reach the new plate")
	}
}
