package diagram

import (
	"fmt"

	"pipguide/plate"
	"pipguide/surface"
)

// Reset paints every well of the plate in containerID white.
func Reset(s surface.Surface, containerID string) error {
	svg, ok := s.ElementByID(SurfaceID(containerID))
	if !ok {
		return fmt.Errorf("reset plate in %q: %w", containerID, ErrContainerNotFound)
	}
	for _, w := range svg.ByClass(ClassWell) {
		w.SetAttr("fill", White)
	}
	return nil
}

// SetWellColor paints the whole row and column of the well labelled label
// with color, then marks the well itself with the Highlight colour so the
// crossing point stands out whatever color is.
func SetWellColor(s surface.Surface, containerID, label, color string) error {
	row, col, err := plate.ParseLabel(label)
	if err != nil {
		return fmt.Errorf("set well color in %q: %w", containerID, err)
	}
	rowLabels, _ := plate.RowLabels(row)
	colLabels, _ := plate.ColumnLabels(col)
	for _, l := range rowLabels {
		fill(s, containerID, l, color)
	}
	for _, l := range colLabels {
		fill(s, containerID, l, color)
	}
	target, _ := plate.Label(row, col)
	fill(s, containerID, target, Highlight)
	return nil
}

// FillWell paints a single well, leaving its row and column alone.
func FillWell(s surface.Surface, containerID, label, color string) error {
	canonical, err := plate.NormalizeLabel(label)
	if err != nil {
		return fmt.Errorf("fill well in %q: %w", containerID, err)
	}
	fill(s, containerID, canonical, color)
	return nil
}

// SetAlignmentMode resets the plate and paints the four corner wells with
// color, for lining the screen up with a physical plate.
func SetAlignmentMode(s surface.Surface, containerID, color string) error {
	if err := Reset(s, containerID); err != nil {
		return err
	}
	for _, l := range plate.Corners() {
		fill(s, containerID, l, color)
	}
	return nil
}

// WellColor returns the current fill of a well. ok is false when the well
// has no shape in containerID.
func WellColor(s surface.Surface, containerID, label string) (color string, ok bool, err error) {
	canonical, err := plate.NormalizeLabel(label)
	if err != nil {
		return "", false, err
	}
	shape, found := s.ElementByID(ShapeID(containerID, canonical))
	if !found {
		return "", false, nil
	}
	color, ok = shape.Attr("fill")
	return color, ok, nil
}

// fill is a no-op when the shape does not exist.
func fill(s surface.Surface, containerID, label, color string) {
	if shape, ok := s.ElementByID(ShapeID(containerID, label)); ok {
		shape.SetAttr("fill", color)
	}
}

func (d *Diagram) Reset() error { return Reset(d.s, d.containerID) }

func (d *Diagram) SetWellColor(label, color string) error {
	return SetWellColor(d.s, d.containerID, label, color)
}

func (d *Diagram) FillWell(label, color string) error {
	return FillWell(d.s, d.containerID, label, color)
}

func (d *Diagram) SetAlignmentMode(color string) error {
	return SetAlignmentMode(d.s, d.containerID, color)
}

func (d *Diagram) WellColor(label string) (string, bool, error) {
	return WellColor(d.s, d.containerID, label)
}
