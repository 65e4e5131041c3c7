package plate

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var (
	cmPerInch = decimal.RequireFromString("2.54")
	mmPerCm   = decimal.NewFromInt(10)
)

// Position is a point on the diagram, in millimetres.
type Position struct {
	X decimal.Decimal
	Y decimal.Decimal
}

// Geometry holds every physical dimension of the plate diagram. Diagram
// construction and resizing both read it, so the two can never disagree.
type Geometry struct {
	WidthCm  decimal.Decimal
	HeightCm decimal.Decimal

	WellRadius  decimal.Decimal // mm
	WellGap     decimal.Decimal // mm
	BorderLeft  decimal.Decimal // mm
	BorderTop   decimal.Decimal // mm
	StrokeWidth decimal.Decimal // mm

	ColumnHeaderOffset decimal.Decimal // mm
	RowHeaderOffset    decimal.Decimal // mm
	ColumnHeaderY      decimal.Decimal // mm
	RowHeaderNudge     decimal.Decimal // mm
	FontSize           decimal.Decimal // mm
}

// DefaultGeometry matches a standard 384-well plate.
func DefaultGeometry() Geometry {
	return Geometry{
		WidthCm:            decimal.RequireFromString("11.5"),
		HeightCm:           decimal.NewFromInt(8),
		WellRadius:         decimal.NewFromInt(1),
		WellGap:            decimal.RequireFromString("4.5"),
		BorderLeft:         decimal.RequireFromString("8.4"),
		BorderTop:          decimal.NewFromInt(4),
		StrokeWidth:        decimal.RequireFromString("0.1"),
		ColumnHeaderOffset: decimal.Zero,
		RowHeaderOffset:    decimal.Zero,
		ColumnHeaderY:      decimal.NewFromInt(-1),
		RowHeaderNudge:     decimal.NewFromInt(1),
		FontSize:           decimal.NewFromInt(3),
	}
}

// PlateWidth returns the width of the plate in cm.
func PlateWidth() float64 {
	w, _ := DefaultGeometry().WidthCm.Float64()
	return w
}

// PlateHeight returns the height of the plate in cm.
func PlateHeight() float64 {
	h, _ := DefaultGeometry().HeightCm.Float64()
	return h
}

// ViewBox spans the plate in millimetres so that every element can be
// placed in mm user units.
func (g Geometry) ViewBox() string {
	return fmt.Sprintf("0 0 %s %s", g.WidthCm.Mul(mmPerCm), g.HeightCm.Mul(mmPerCm))
}

// DevicePixels returns the on-screen size of the diagram at ppcm pixels
// per centimetre.
func (g Geometry) DevicePixels(ppcm decimal.Decimal) (width, height decimal.Decimal, err error) {
	if !ppcm.IsPositive() {
		return decimal.Zero, decimal.Zero, fmt.Errorf("DevicePixels: invalid ppcm %s: %w", ppcm, ErrInvalidArgument)
	}
	return ppcm.Mul(g.WidthCm), ppcm.Mul(g.HeightCm), nil
}

// Scale converts a pixels-per-cm or dots-per-inch value to a decimal. It
// must be finite and positive.
func Scale(v float64) (decimal.Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return decimal.Zero, fmt.Errorf("invalid scale %v: %w", v, ErrInvalidArgument)
	}
	return decimal.NewFromFloat(v), nil
}

// DPIToPPCM converts dots per inch to pixels per centimetre.
func DPIToPPCM(dpi decimal.Decimal) decimal.Decimal {
	return dpi.Div(cmPerInch)
}

// ColumnHeaderX is the x of the header above column col.
func (g Geometry) ColumnHeaderX(col int) decimal.Decimal {
	return g.RowHeaderOffset.Add(g.BorderLeft).Add(g.WellGap.Mul(decimal.NewFromInt(int64(col - 1))))
}

// RowHeaderY is the y of the header left of row.
func (g Geometry) RowHeaderY(row int) decimal.Decimal {
	return g.ColumnHeaderOffset.Add(g.BorderTop).
		Add(g.WellGap.Mul(decimal.NewFromInt(int64(row - 1)))).
		Add(g.RowHeaderNudge)
}

// Grid lays the wells out from the geometry.
func (g Geometry) Grid() *Grid {
	home := &Position{
		X: g.RowHeaderOffset.Add(g.BorderLeft),
		Y: g.ColumnHeaderOffset.Add(g.BorderTop),
	}
	return NewGrid(home, g.WellGap, g.WellGap, Rows, Columns)
}
