package tetris

// Grid is the playfield. Row 0 is the floor and rows grow upward; cells are
// stored row-major so a whole row is one contiguous slice.
type Grid struct {
	width  int
	height int
	cells  []CellType
}

// NewGrid returns an empty width x height grid.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]CellType, width*height),
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) addresses a stored cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the cell at (x, y). Coordinates outside the grid read as Empty.
func (g *Grid) At(x, y int) CellType {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.cells[y*g.width+x]
}

// Set writes c at (x, y). Out of bounds writes are ignored.
func (g *Grid) Set(x, y int, c CellType) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.width+x] = c
}

// Row returns row y backed by the grid's storage.
func (g *Grid) Row(y int) []CellType {
	return g.cells[y*g.width : (y+1)*g.width]
}

// Clear empties every cell.
func (g *Grid) Clear() {
	clear(g.cells)
}

// Rows copies the grid into a fresh [y][x] matrix.
func (g *Grid) Rows() [][]CellType {
	rows := make([][]CellType, g.height)
	for y := range rows {
		rows[y] = make([]CellType, g.width)
		copy(rows[y], g.Row(y))
	}
	return rows
}

// Collides reports whether kind, in the given rotation with its box anchored
// at (x, y), overlaps a wall, the floor or an occupied cell. Cells above the
// top row never collide so pieces can enter from above the board.
func (g *Grid) Collides(kind Kind, rotation, x, y int) bool {
	shape := ShapeOf(kind, rotation)
	for bit := 0; bit < 16; bit++ {
		if shape&(1<<bit) == 0 {
			continue
		}

		cx := x + bit%4
		cy := y + bit/4

		if cx < 0 || cx >= g.width || cy < 0 {
			return true
		}

		if cy < g.height && g.cells[cy*g.width+cx] != Empty {
			return true
		}
	}

	return false
}

// fullRows returns the indices of up to max full rows, scanning bottom to top.
func (g *Grid) fullRows(max int) []int {
	full := make([]int, 0, max)
	for y := 0; y < g.height && len(full) < max; y++ {
		complete := true
		for _, c := range g.Row(y) {
			if c == Empty {
				complete = false
				break
			}
		}
		if complete {
			full = append(full, y)
		}
	}
	return full
}

// removeRows empties the given rows, then collapses each of them, highest
// index first, by shifting every row above it down one step. rows must be in
// ascending order.
func (g *Grid) removeRows(rows []int) {
	for _, y := range rows {
		clear(g.Row(y))
	}

	for i := len(rows) - 1; i >= 0; i-- {
		for y := rows[i]; y < g.height-1; y++ {
			copy(g.Row(y), g.Row(y+1))
		}
		clear(g.Row(g.height - 1))
	}
}
