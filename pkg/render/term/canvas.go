// Package term rasterizes galaxies into character grids for terminals.
package term

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/starmap/pkg/galaxy"
	"github.com/matzehuels/starmap/pkg/geom"
)

// Kind is what occupies a cell. Higher kinds are drawn over lower ones.
type Kind uint8

const (
	Empty Kind = iota
	Link
	Nearest
	GroupMerge
	Star
)

var runes = [...]rune{
	Empty:      ' ',
	Link:       '·',
	Nearest:    '·',
	GroupMerge: '·',
	Star:       '✦',
}

var cellStyles = [...]lipgloss.Style{
	Empty:      lipgloss.NewStyle(),
	Link:       lipgloss.NewStyle().Foreground(lipgloss.Color("124")),
	Nearest:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	GroupMerge: lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	Star:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")),
}

// CellAspect is the height of a terminal cell divided by its width.
const CellAspect = 2.0

// Canvas is a width x height grid of cells.
type Canvas struct {
	width, height int
	cells         []Kind
}

// NewCanvas creates an empty canvas. Sizes below 1 are raised to 1.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 1), max(height, 1)
	return &Canvas{width: width, height: height, cells: make([]Kind, width*height)}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// At returns the kind of the cell at column x, row y. Out of range is Empty.
func (c *Canvas) At(x, y int) Kind {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return Empty
	}
	return c.cells[y*c.width+x]
}

func (c *Canvas) set(x, y int, k Kind) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	if i := y*c.width + x; k > c.cells[i] {
		c.cells[i] = k
	}
}

// Clear empties every cell.
func (c *Canvas) Clear() {
	clear(c.cells)
}

// Draw clears the canvas and draws g scaled to fit, keeping proportions.
func (c *Canvas) Draw(g *galaxy.Galaxy) {
	c.Clear()
	b := g.Bounds()
	if b.IsEmpty() {
		return
	}
	project := c.projection(b)

	for _, s := range g.Segments() {
		kind := Nearest
		switch s.Kind {
		case galaxy.SegmentGroupMerge:
			kind = GroupMerge
		case galaxy.SegmentLink:
			kind = Link
		}
		x0, y0 := project(s.A)
		x1, y1 := project(s.B)
		c.line(x0, y0, x1, y1, kind)
	}
	for _, con := range g.Constellations {
		for _, p := range con.Stars {
			x, y := project(p)
			c.set(x, y, Star)
		}
	}
}

// projection maps galaxy coordinates onto cells, centering the drawing.
func (c *Canvas) projection(b geom.Rect) func(geom.Point) (int, int) {
	cols, rows := float64(c.width-1), float64(c.height-1)
	scale := math.Inf(1)
	if w := b.Width(); w > 0 {
		scale = cols / w
	}
	if h := b.Height(); h > 0 {
		scale = min(scale, rows*CellAspect/h)
	}
	if math.IsInf(scale, 1) {
		scale = 1
	}

	offX := (cols - b.Width()*scale) / 2
	offY := (rows - b.Height()*scale/CellAspect) / 2
	return func(p geom.Point) (int, int) {
		x := (p.X-b.Min.X)*scale + offX
		y := (p.Y-b.Min.Y)*scale/CellAspect + offY
		return int(math.Round(x)), int(math.Round(y))
	}
}

// line draws with Bresenham's algorithm.
func (c *Canvas) line(x0, y0, x1, y1 int, k Kind) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.set(x0, y0, k)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// String returns the grid as plain text, one line per row.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := range c.height {
		for x := range c.width {
			sb.WriteRune(runes[c.At(x, y)])
		}
		if y < c.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Render returns the grid with terminal colors. Runs of equal cells share
// one style call.
func (c *Canvas) Render() string {
	var sb strings.Builder
	for y := range c.height {
		x := 0
		for x < c.width {
			k := c.At(x, y)
			end := x
			for end < c.width && c.At(end, y) == k {
				end++
			}
			run := strings.Repeat(string(runes[k]), end-x)
			if k == Empty {
				sb.WriteString(run)
			} else {
				sb.WriteString(cellStyles[k].Render(run))
			}
			x = end
		}
		if y < c.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
