package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/costmap/grid"
)

// ErrParse indicates malformed occupancy text.
var ErrParse = errors.New("render: parse error")

// ParseOccupancy reads whitespace-separated integer rows, the layout
// Occupancy writes: the first data line is the top row (y=H-1).
// "X" reads as grid.Lethal. Blank lines, "#" comments and "===" headers are
// skipped. Ragged rows yield grid.ErrNonRectangular.
func ParseOccupancy(r io.Reader) (*grid.Occupancy, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") || strings.HasPrefix(text, "===") {
			continue
		}
		fields := strings.Fields(text)
		row := make([]int, len(fields))
		for i, f := range fields {
			if f == "X" {
				row[i] = grid.Lethal
				continue
			}
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d: %q: %w", line, i+1, f, ErrParse)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	// Flip so rows[y] is row y.
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}

	return grid.FromRows(rows)
}
