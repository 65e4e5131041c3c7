package diagram

// Fixed colours of the diagram.
const (
	White     = "white"
	Black     = "black"
	Highlight = "#944DFF"
	HeaderInk = "red"
)

// Element classes of the generated svg.
const (
	ClassWell          = "well"
	ClassColumnHeaders = "column_headers"
	ClassRowHeaders    = "row_headers"
)

// SurfaceID is the id of the svg generated inside containerID.
func SurfaceID(containerID string) string {
	return "plate_" + containerID + "_SVG"
}

// ShapeID is the id of the circle drawn for the well labelled label.
func ShapeID(containerID, label string) string {
	return "plate_" + containerID + "_well_" + label
}
