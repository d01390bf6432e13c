package tetris

// Kind identifies one of the seven tetrominoes. The order is canonical: it
// fixes the color tag a kind writes into the grid and the draw order of the
// piece generator.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindL
	KindJ
	KindS
	KindZ
	KindT
)

// KindCount is the number of distinct piece kinds.
const KindCount = 7

var kindNames = [KindCount]string{"I", "O", "L", "J", "S", "Z", "T"}

// Valid reports whether k names one of the seven pieces.
func (k Kind) Valid() bool {
	return k < KindCount
}

func (k Kind) String() string {
	if !k.Valid() {
		return "?"
	}
	return kindNames[k]
}

// Cell returns the color tag the piece writes into the grid when it locks.
func (k Kind) Cell() CellType {
	if !k.Valid() {
		return Empty
	}
	return CellType(k + 1)
}

// CellType is the content of one grid cell.
type CellType uint8

const (
	Empty CellType = iota
	CellI
	CellO
	CellL
	CellJ
	CellS
	CellZ
	CellT
)

// Kind returns the piece kind that produced the cell. ok is false for Empty.
func (c CellType) Kind() (Kind, bool) {
	if c == Empty || c > CellT {
		return 0, false
	}
	return Kind(c - 1), true
}

func (c CellType) String() string {
	if k, ok := c.Kind(); ok {
		return k.String()
	}
	return "."
}

// Shape is a 4x4 occupancy mask. Bit 4*dy+dx is set when the cell at column
// dx, row dy of the box is filled. Row 0 is the bottom of the box.
type Shape uint16

// Has reports whether the box cell at (dx, dy) is filled.
func (s Shape) Has(dx, dy int) bool {
	if dx < 0 || dx > 3 || dy < 0 || dy > 3 {
		return false
	}
	return s&(1<<(4*dy+dx)) != 0
}

// Offset is a filled cell of a Shape relative to the box anchor.
type Offset struct {
	DX, DY int
}

// Cells returns the offsets of every filled cell, bottom row first.
func (s Shape) Cells() []Offset {
	cells := make([]Offset, 0, 4)
	for bit := 0; bit < 16; bit++ {
		if s&(1<<bit) != 0 {
			cells = append(cells, Offset{DX: bit % 4, DY: bit / 4})
		}
	}
	return cells
}

// shapes holds the rotation states of every kind. Each literal reads as four
// box rows from top (dy=3) to bottom (dy=0); within a row the rightmost bit is
// dx=0, so the drawings appear mirrored horizontally.
var shapes = [KindCount][]Shape{
	KindI: {
		0b0000_0000_1111_0000,
		0b0010_0010_0010_0010,
	},
	KindO: {
		0b0000_0000_0110_0110,
	},
	KindL: {
		0b0000_0100_0111_0000,
		0b0000_0011_0010_0010,
		0b0000_0000_0111_0001,
		0b0000_0010_0010_0110,
	},
	KindJ: {
		0b0000_0001_0111_0000,
		0b0000_0010_0010_0011,
		0b0000_0000_0111_0100,
		0b0000_0110_0010_0010,
	},
	KindS: {
		0b0000_0000_1100_0110,
		0b0000_0010_0110_0100,
	},
	KindZ: {
		0b0000_0000_0110_1100,
		0b0000_0100_0110_0010,
	},
	KindT: {
		0b0000_0010_0111_0000,
		0b0000_0010_0011_0010,
		0b0000_0000_0111_0010,
		0b0000_0010_0110_0010,
	},
}

// Rotations returns how many rotation states kind has, or 0 for an invalid kind.
func Rotations(kind Kind) int {
	if !kind.Valid() {
		return 0
	}
	return len(shapes[kind])
}

// ShapeOf returns the mask of kind in the given rotation state. Out of range
// arguments yield the empty shape, which never collides.
func ShapeOf(kind Kind, rotation int) Shape {
	if !kind.Valid() || rotation < 0 || rotation >= len(shapes[kind]) {
		return 0
	}
	return shapes[kind][rotation]
}
