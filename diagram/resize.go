package diagram

import (
	"fmt"

	"github.com/shopspring/decimal"

	"pipguide/plate"
	"pipguide/surface"
)

// ResizeByPPCM re-applies the pixel size of the plate in containerID for a
// new pixels-per-centimetre value. Nothing but width and height changes.
func ResizeByPPCM(s surface.Surface, containerID string, ppcm float64) error {
	scale, err := plate.Scale(ppcm)
	if err != nil {
		return fmt.Errorf("resize plate in %q: %w", containerID, err)
	}
	return resize(s, containerID, scale)
}

// ResizeByDPI is ResizeByPPCM for a dots-per-inch value.
func ResizeByDPI(s surface.Surface, containerID string, dpi float64) error {
	scale, err := plate.Scale(dpi)
	if err != nil {
		return fmt.Errorf("resize plate in %q: %w", containerID, err)
	}
	return resize(s, containerID, plate.DPIToPPCM(scale))
}

func (d *Diagram) ResizeByPPCM(ppcm float64) error {
	return ResizeByPPCM(d.s, d.containerID, ppcm)
}

func (d *Diagram) ResizeByDPI(dpi float64) error {
	return ResizeByDPI(d.s, d.containerID, dpi)
}

func resize(s surface.Surface, containerID string, ppcm decimal.Decimal) error {
	svg, ok := s.ElementByID(SurfaceID(containerID))
	if !ok {
		return fmt.Errorf("resize plate in %q: %w", containerID, ErrContainerNotFound)
	}
	width, height, err := plate.DefaultGeometry().DevicePixels(ppcm)
	if err != nil {
		return fmt.Errorf("resize plate in %q: %w", containerID, err)
	}
	svg.SetAttr("width", width.String())
	svg.SetAttr("height", height.String())
	return nil
}
