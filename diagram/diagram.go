// Package diagram draws a 384-well plate into a host surface and colours
// its wells.
//
// Every function re-resolves elements by id on the surface, so a diagram
// may be drawn by one caller and coloured by another. Generate also returns
// a *Diagram handle bound to the container for callers that keep it.
package diagram

import (
	"fmt"
	"strconv"

	"pipguide/plate"
	"pipguide/surface"
)

// Diagram is a plate drawn into one container of a surface.
type Diagram struct {
	s           surface.Surface
	containerID string
}

// ContainerID returns the id of the container the plate was drawn into.
func (d *Diagram) ContainerID() string { return d.containerID }

// Generate draws the plate inside the container with id containerID,
// sized at ppcm pixels per centimetre. A plate already drawn there is
// replaced.
func Generate(s surface.Surface, containerID string, ppcm float64) (*Diagram, error) {
	g := plate.DefaultGeometry()
	container, ok := s.ElementByID(containerID)
	if !ok {
		return nil, fmt.Errorf("generate plate in %q: %w", containerID, ErrContainerNotFound)
	}
	scale, err := plate.Scale(ppcm)
	if err != nil {
		return nil, fmt.Errorf("generate plate in %q: %w", containerID, err)
	}
	width, height, err := g.DevicePixels(scale)
	if err != nil {
		return nil, fmt.Errorf("generate plate in %q: %w", containerID, err)
	}

	if old, ok := s.ElementByID(SurfaceID(containerID)); ok {
		old.Remove()
	}
	svg := container.Append("svg")
	svg.SetAttr("id", SurfaceID(containerID))
	svg.SetAttr("viewBox", g.ViewBox())
	svg.SetAttr("width", width.String())
	svg.SetAttr("height", height.String())

	for col := 1; col <= plate.Columns; col++ {
		t := svg.Append("text")
		t.SetAttr("class", ClassColumnHeaders)
		t.SetAttr("x", g.ColumnHeaderX(col).String())
		t.SetAttr("y", g.ColumnHeaderY.String())
		headerStyle(t, g)
		t.SetAttr("text-anchor", "middle")
		t.SetAttr("alignment-baseline", "hanging")
		t.SetText(strconv.Itoa(col))
	}

	for row := 1; row <= plate.Rows; row++ {
		name, _ := plate.RowName(row)
		t := svg.Append("text")
		t.SetAttr("class", ClassRowHeaders)
		t.SetAttr("x", "0")
		t.SetAttr("y", g.RowHeaderY(row).String())
		headerStyle(t, g)
		t.SetAttr("alignment-baseline", "middle")
		t.SetText(name)
	}

	grid := g.Grid()
	radius := g.WellRadius.String()
	stroke := g.StrokeWidth.String()
	for well := 1; well <= plate.Wells; well++ {
		label, _ := plate.WellToID(well)
		pos, err := grid.Well(well)
		if err != nil {
			return nil, fmt.Errorf("generate plate in %q: %w", containerID, err)
		}
		c := svg.Append("circle")
		c.SetAttr("class", ClassWell)
		c.SetAttr("r", radius)
		c.SetAttr("id", ShapeID(containerID, label))
		c.SetAttr("cx", pos.X.String())
		c.SetAttr("cy", pos.Y.String())
		c.SetAttr("stroke", Black)
		c.SetAttr("stroke-width", stroke)
		c.SetAttr("fill", White)
	}

	return &Diagram{s: s, containerID: containerID}, nil
}

func headerStyle(t surface.Element, g plate.Geometry) {
	t.SetAttr("fill", HeaderInk)
	t.SetAttr("font-size", g.FontSize.String())
	t.SetAttr("font-family", "sans-serif")
}

// Open binds to a plate previously generated in containerID.
func Open(s surface.Surface, containerID string) (*Diagram, error) {
	if _, ok := s.ElementByID(SurfaceID(containerID)); !ok {
		return nil, fmt.Errorf("open plate in %q: %w", containerID, ErrContainerNotFound)
	}
	return &Diagram{s: s, containerID: containerID}, nil
}

// Remove deletes the generated svg from its container.
func (d *Diagram) Remove() {
	if svg, ok := d.s.ElementByID(SurfaceID(d.containerID)); ok {
		svg.Remove()
	}
}
