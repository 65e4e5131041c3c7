// Package plate holds the fixed geometry and well numbering of a
// 384-well plate.
//
// Wells are numbered 1..384 column-major: the row varies fastest, so
// well 1 is A01, well 16 is P01 and well 17 is A02.
package plate

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	Rows    = 16
	Columns = 24
	Wells   = Rows * Columns
)

var rowNames = [Rows]string{
	"A", "B", "C", "D", "E", "F", "G", "H",
	"I", "J", "K", "L", "M", "N", "O", "P",
}

var upper = cases.Upper(language.Und)

func checkWell(fn string, well int) error {
	if well < 1 || well > Wells {
		return fmt.Errorf("%s: invalid well value %d: %w", fn, well, ErrInvalidArgument)
	}
	return nil
}

// WellToRow returns the row (1-16) of a well.
func WellToRow(well int) (int, error) {
	if err := checkWell("WellToRow", well); err != nil {
		return 0, err
	}
	return (well-1)%Rows + 1, nil
}

// WellToColumn returns the column (1-24) of a well.
func WellToColumn(well int) (int, error) {
	if err := checkWell("WellToColumn", well); err != nil {
		return 0, err
	}
	return (well-1)/Rows + 1, nil
}

// RowName returns the letter ("A" to "P") of a row.
func RowName(row int) (string, error) {
	if row < 1 || row > Rows {
		return "", fmt.Errorf("RowName: invalid row value %d: %w", row, ErrInvalidArgument)
	}
	return rowNames[row-1], nil
}

// RowNameFloat is RowName for a row held as a float. Fractional rows such
// as 1.5 are rejected.
func RowNameFloat(row float64) (string, error) {
	if math.Trunc(row) != row || math.IsInf(row, 0) {
		return "", fmt.Errorf("RowName: invalid row value %v: %w", row, ErrInvalidArgument)
	}
	if row < 1 || row > Rows {
		return "", fmt.Errorf("RowName: invalid row value %v: %w", row, ErrInvalidArgument)
	}
	return RowName(int(row))
}

// WellToID returns the label of a well, e.g. "A01" or "P24".
func WellToID(well int) (string, error) {
	if err := checkWell("WellToID", well); err != nil {
		return "", err
	}
	row, _ := WellToRow(well)
	col, _ := WellToColumn(well)
	return Label(row, col)
}

// Label composes the label of the well at row, col.
func Label(row, col int) (string, error) {
	name, err := RowName(row)
	if err != nil {
		return "", err
	}
	if col < 1 || col > Columns {
		return "", fmt.Errorf("Label: invalid column value %d: %w", col, ErrInvalidArgument)
	}
	return fmt.Sprintf("%s%02d", name, col), nil
}

// ParseLabel splits a label into its row and column. The first character
// is the row letter and the rest is the two-digit column; a lowercase row
// letter is accepted.
func ParseLabel(label string) (row, col int, err error) {
	if len(label) != 3 {
		return 0, 0, fmt.Errorf("ParseLabel: invalid label %q: %w", label, ErrInvalidArgument)
	}
	letter := upper.String(label[:1])
	row = strings.Index(strings.Join(rowNames[:], ""), letter) + 1
	if row < 1 {
		return 0, 0, fmt.Errorf("ParseLabel: invalid row in label %q: %w", label, ErrInvalidArgument)
	}
	col, perr := strconv.Atoi(label[1:])
	if perr != nil || col < 1 || col > Columns || label[1] == '+' || label[1] == '-' {
		return 0, 0, fmt.Errorf("ParseLabel: invalid column in label %q: %w", label, ErrInvalidArgument)
	}
	return row, col, nil
}

// NormalizeLabel returns the canonical form of label ("d11" becomes "D11").
func NormalizeLabel(label string) (string, error) {
	row, col, err := ParseLabel(label)
	if err != nil {
		return "", err
	}
	return Label(row, col)
}

// LabelToWell is the inverse of WellToID.
func LabelToWell(label string) (int, error) {
	row, col, err := ParseLabel(label)
	if err != nil {
		return 0, err
	}
	return (col-1)*Rows + row, nil
}

// RowLabels returns the labels of the 24 wells in the given row.
func RowLabels(row int) ([]string, error) {
	if _, err := RowName(row); err != nil {
		return nil, err
	}
	labels := make([]string, 0, Columns)
	for col := 1; col <= Columns; col++ {
		l, _ := Label(row, col)
		labels = append(labels, l)
	}
	return labels, nil
}

// ColumnLabels returns the labels of the 16 wells in the given column.
func ColumnLabels(col int) ([]string, error) {
	labels := make([]string, 0, Rows)
	for row := 1; row <= Rows; row++ {
		l, err := Label(row, col)
		if err != nil {
			return nil, err
		}
		labels = append(labels, l)
	}
	return labels, nil
}

// Corners returns the labels of the four corner wells used for plate
// alignment.
func Corners() []string {
	return []string{"A01", "A24", "P01", "P24"}
}
