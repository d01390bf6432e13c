package tetris

// maxClearRows is the most rows a single lock can complete.
const maxClearRows = 4

// lineScores maps the number of rows cleared by one lock to the score award.
var lineScores = [maxClearRows + 1]int{0, 40, 100, 300, 1200}

// settle ends the active piece's life: lock it, bring in the next piece,
// clear completed rows and drop whatever else is queued, since those commands
// were aimed at the piece that just locked.
func (e *Engine) settle() {
	locked := e.active.Kind

	e.lock()
	e.spawn()
	rows := e.resolveLines()

	e.stats.recordLock(locked, rows)
	e.stats.commandsDiscarded += int64(e.queue.Clear())
	e.batchEnded = true
}

// lock writes the active piece into the grid. Any cell at or above the top
// row loses the game; the remaining cells are still written.
func (e *Engine) lock() {
	p := e.active
	cell := p.Kind.Cell()

	for _, off := range p.Shape().Cells() {
		x, y := p.X+off.DX, p.Y+off.DY

		if y >= e.height {
			e.lose()
			continue
		}

		if e.grid.InBounds(x, y) {
			e.grid.Set(x, y, cell)
		}
	}
}

func (e *Engine) lose() {
	if e.state == Lost {
		return
	}

	e.state = Lost
	e.gravity.paused.Store(true)
	e.logf("[Engine] game lost: score=%d lines=%d", e.score, e.lines)
}

// spawn replaces the active piece with the pre-selected next kind, centered
// above the board, and draws the kind after it.
func (e *Engine) spawn() {
	e.active = ActivePiece{
		Kind:     e.next,
		Rotation: 0,
		X:        e.width/2 - 2,
		Y:        e.height,
	}
	e.next = e.drawKind()
	e.gravity.resetCounter()
}

func (e *Engine) drawKind() Kind {
	return Kind(e.rng.IntN(KindCount))
}

// resolveLines clears completed rows, compacts the grid and awards points.
// It returns the number of rows cleared.
func (e *Engine) resolveLines() int {
	rows := e.grid.fullRows(maxClearRows)
	if len(rows) == 0 {
		return 0
	}

	e.grid.removeRows(rows)

	e.score += lineScores[len(rows)]
	e.lines += len(rows)
	e.gravity.lines.Store(int64(e.lines))

	return len(rows)
}
