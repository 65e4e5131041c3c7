package plate

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Grid is a rectangular arrangement of well centres. Cells are indexed
// [row][col] from zero.
type Grid struct {
	Cells   [][]*Position
	Home    *Position
	Rows    int
	Columns int
}

func NewGrid(home *Position, rowSpace, colSpace decimal.Decimal, nRow, nCol int) *Grid {
	g := &Grid{
		Cells:   make([][]*Position, nRow),
		Home:    home,
		Rows:    nRow,
		Columns: nCol,
	}
	for row := 0; row < nRow; row++ {
		g.Cells[row] = make([]*Position, nCol)
		for col := 0; col < nCol; col++ {
			g.Cells[row][col] = &Position{
				X: home.X.Add(colSpace.Mul(decimal.NewFromInt(int64(col)))),
				Y: home.Y.Add(rowSpace.Mul(decimal.NewFromInt(int64(row)))),
			}
		}
	}
	return g
}

// Well returns the centre of a well by number.
func (g *Grid) Well(well int) (*Position, error) {
	row, err := WellToRow(well)
	if err != nil {
		return nil, err
	}
	col, _ := WellToColumn(well)
	if row > g.Rows || col > g.Columns {
		return nil, fmt.Errorf("Grid.Well: well %d outside %dx%d grid: %w", well, g.Rows, g.Columns, ErrInvalidArgument)
	}
	return g.Cells[row-1][col-1], nil
}
