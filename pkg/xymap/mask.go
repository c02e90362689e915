package xymap

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/go-errors/errors"
)

// Mask marks which positions of a bounding rectangle carry an LED. Cells are
// stored row-major.
type Mask struct {
	w, h int
	bits []bool
}

// NewMask returns an empty w by h mask.
func NewMask(w, h int) Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Mask{w: w, h: h, bits: make([]bool, w*h)}
}

// MaskOf returns the visible positions of l.
func MaskOf(l *Layout) Mask {
	m := NewMask(int(l.w), int(l.h))
	for i, idx := range l.table {
		m.bits[i] = l.IsVisible(idx)
	}
	return m
}

// Width returns the number of columns.
func (m Mask) Width() int { return m.w }

// Height returns the number of rows.
func (m Mask) Height() int { return m.h }

// At reports whether (x, y) carries an LED. Positions outside the mask do not.
func (m Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.bits[y*m.w+x]
}

// Set marks (x, y). Positions outside the mask are ignored.
func (m Mask) Set(x, y int, on bool) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	m.bits[y*m.w+x] = on
}

// Count returns the number of LEDs.
func (m Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Equal reports whether both masks have the same size and cells.
func (m Mask) Equal(o Mask) bool {
	if m.w != o.w || m.h != o.h {
		return false
	}
	for i := range m.bits {
		if m.bits[i] != o.bits[i] {
			return false
		}
	}
	return true
}

// ParseMask reads a layout drawing. Each row is a line of whitespace
// separated cells: a number, '#' or 'X' is an LED and '.' is a hole. Runs
// such as "####.." are read one cell per character. Blank lines and lines
// starting with "//" or ";" are skipped.
//
// The diagram written by Format is accepted as well: when any line carries a
// "N |" row label, only labelled lines are rows and the rest (column header,
// rule) is ignored.
func ParseMask(r io.Reader) (Mask, error) {
	type line struct {
		no   int
		text string
	}
	var (
		lines    []line
		labelled bool
	)
	sc := bufio.NewScanner(r)
	for no := 1; sc.Scan(); no++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "//") || strings.HasPrefix(text, ";") || isRule(text) {
			continue
		}
		if body, ok := cutRowLabel(text); ok {
			if !labelled {
				lines = lines[:0]
				labelled = true
			}
			lines = append(lines, line{no, body})
			continue
		}
		if !labelled {
			lines = append(lines, line{no, text})
		}
	}
	if err := sc.Err(); err != nil {
		return Mask{}, errors.Wrap(err, 0)
	}
	if len(lines) == 0 {
		return Mask{}, errors.New(ErrEmptyLayout)
	}

	var rows [][]bool
	for _, ln := range lines {
		row, err := parseRow(ln.text)
		if err != nil {
			return Mask{}, errors.Errorf("line %d: %w", ln.no, err)
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return Mask{}, errors.Errorf("line %d: %w: %d cells, want %d", ln.no, ErrRaggedMask, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}

	m := NewMask(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, on := range row {
			m.Set(x, y, on)
		}
	}
	Logger().Debug("xymap: mask parsed", "width", m.w, "height", m.h, "leds", m.Count())
	return m, nil
}

func parseRow(text string) ([]bool, error) {
	var row []bool
	for _, tok := range strings.Fields(text) {
		if _, err := strconv.Atoi(tok); err == nil {
			row = append(row, true)
			continue
		}
		for _, c := range tok {
			switch c {
			case '.':
				row = append(row, false)
			case '#', 'X', 'x':
				row = append(row, true)
			default:
				return nil, errors.Errorf("%w %q", ErrBadToken, tok)
			}
		}
	}
	return row, nil
}

// cutRowLabel strips a "N |" prefix.
func cutRowLabel(text string) (string, bool) {
	label, body, ok := strings.Cut(text, "|")
	if !ok {
		return text, false
	}
	if _, err := strconv.Atoi(strings.TrimSpace(label)); err != nil {
		return text, false
	}
	return body, true
}

func isRule(text string) bool {
	return strings.Trim(text, "+-") == ""
}

// Format writes l as a diagram with column numbers across the top, row
// numbers down the side, the index of every LED and '.' for holes.
func Format(w io.Writer, l *Layout) error {
	label := len(strconv.Itoa(int(l.h) - 1))
	cell := max(2, len(strconv.Itoa(int(l.LastVisible()))), len(strconv.Itoa(int(l.w)-1)))

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", label+2))
	for x := 0; x < int(l.w); x++ {
		b.WriteString(" ")
		b.WriteString(pad(strconv.Itoa(x), cell))
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", label+1))
	b.WriteString("+")
	b.WriteString(strings.Repeat("-", int(l.w)*(cell+1)))
	b.WriteString("\n")

	for y := uint8(0); y < l.h; y++ {
		b.WriteString(pad(strconv.Itoa(int(y)), label))
		b.WriteString(" |")
		for x := uint8(0); x < l.w; x++ {
			s := "."
			if idx := l.Index(x, y); l.IsVisible(idx) {
				s = strconv.Itoa(int(idx))
			}
			b.WriteString(" ")
			b.WriteString(pad(s, cell))
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	if err != nil {
		return errors.Wrap(err, 0)
	}
	return nil
}

func pad(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return strings.Repeat(" ", n-len(s)) + s
}
