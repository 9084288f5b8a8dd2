package store

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/viant/pointset/geom"
)

// ReadPoints parses one "x y" pair per line. Fields may be separated by any
// whitespace or a comma; blank lines and lines starting with '#' are skipped.
func ReadPoints(r io.Reader) ([]geom.Point, error) {
	var out []geom.Point
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(c rune) bool {
			return c == ',' || c == ' ' || c == '\t'
		})
		if len(fields) != 2 {
			return nil, fmt.Errorf("store: line %d: want 2 coordinates, got %d", line, len(fields))
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("store: line %d: x: %w", line, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("store: line %d: y: %w", line, err)
		}
		out = append(out, geom.Point{X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("store: read points: %w", err)
	}
	return out, nil
}

// WritePoints writes pts in the format ReadPoints accepts.
func WritePoints(w io.Writer, pts []geom.Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range pts {
		bw.WriteString(strconv.FormatFloat(p.X, 'g', -1, 64))
		bw.WriteByte(' ')
		bw.WriteString(strconv.FormatFloat(p.Y, 'g', -1, 64))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
