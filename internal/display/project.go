package display

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/hammamikhairi/commentscreen/internal/domain"
)

// frame is a terminal-cell projection of the overlay.
type frame struct {
	cols, rows int
	cells      []rune   // 0 marks the trailing half of a wide rune
	ink        []string // hex color per cell, "" for empty cells
}

func newFrame(cols, rows int) frame {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	f := frame{
		cols:  cols,
		rows:  rows,
		cells: make([]rune, cols*rows),
		ink:   make([]string, cols*rows),
	}
	for i := range f.cells {
		f.cells[i] = ' '
	}
	return f
}

// project scales the pixel region onto a cols x rows grid and writes each
// visual's text at its lane position, clipped to the lane width and the
// grid. Later visuals overwrite earlier ones.
func project(visuals []domain.Visual, region domain.Rect, cols, rows int) frame {
	f := newFrame(cols, rows)
	if region.Empty() || cols == 0 || rows == 0 {
		return f
	}

	for _, v := range visuals {
		top := v.Rect.Top(region.Height)
		// Use the lane's vertical center so thin lanes still land on a row.
		row := (top + v.Rect.Height/2) * rows / region.Height
		if row < 0 || row >= rows {
			continue
		}
		col := floorDiv(v.Rect.X*cols, region.Width)
		span := v.Rect.Width * cols / region.Width
		if span < 1 {
			span = 1
		}
		f.write(row, col, span, v.Text, hexColor(v.Style.Color))
	}
	return f
}

func (f *frame) write(row, col, span int, s, ink string) {
	used := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if used+w > span {
			return
		}
		c := col + used
		used += w
		if c < 0 || c+w > f.cols {
			continue
		}
		i := row*f.cols + c
		f.cells[i] = r
		f.ink[i] = ink
		if w == 2 {
			f.cells[i+1] = 0
			f.ink[i+1] = ink
		}
	}
}

// lines returns the unstyled rows.
func (f frame) lines() []string {
	out := make([]string, f.rows)
	for r := 0; r < f.rows; r++ {
		var b strings.Builder
		for _, c := range f.cells[r*f.cols : (r+1)*f.cols] {
			if c != 0 {
				b.WriteRune(c)
			}
		}
		out[r] = b.String()
	}
	return out
}

// render returns the rows with runs of equal color styled by Lip Gloss.
func (f frame) render() string {
	var b strings.Builder
	for r := 0; r < f.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		start := r * f.cols
		end := start + f.cols
		for i := start; i < end; {
			j := i
			var run strings.Builder
			for j < end && f.ink[j] == f.ink[i] {
				if f.cells[j] != 0 {
					run.WriteRune(f.cells[j])
				}
				j++
			}
			if f.ink[i] == "" {
				b.WriteString(run.String())
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(f.ink[i])).Render(run.String()))
			}
			i = j
		}
	}
	return b.String()
}

func hexColor(c color.Color) string {
	if c == nil {
		return "#ffffff"
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		// Fully transparent; draw it anyway rather than lose the comment.
		return "#ffffff"
	}
	return cf.Hex()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
