// Package tetris implements a falling-block puzzle engine: the playfield, the
// falling piece, collision, locking, line clears and scoring.
//
// The engine is driven by its host. Commands submitted from any goroutine are
// buffered, and a gravity ticker running on its own goroutine adds MoveDown
// commands to the same buffer. Nothing changes until the host calls Update,
// which applies every buffered command in order and then notifies listeners
// once. Update, Reset and all read queries must be called from a single
// goroutine.
package tetris

import (
	"context"
	"log"
	"math/rand/v2"
	"time"
)

// ActivePiece is the falling piece. X and Y anchor the lower-left corner of
// its 4x4 box in grid coordinates; Y may be at or above the board height
// while the piece is still entering.
type ActivePiece struct {
	Kind     Kind
	Rotation int
	X, Y     int
}

// Shape returns the mask of the piece in its current rotation.
func (p ActivePiece) Shape() Shape {
	return ShapeOf(p.Kind, p.Rotation)
}

type listener struct {
	id int
	fn func()
}

// Engine is a single game board.
type Engine struct {
	width  int
	height int
	seed   uint64

	grid   *Grid
	active ActivePiece
	next   Kind
	score  int
	lines  int
	state  GameState

	rng     *rand.Rand
	queue   *CommandQueue
	gravity *gravity

	listeners      []listener
	nextListenerID int
	version        uint64

	// batchEnded is set when a lock invalidates the rest of the batch being
	// processed by Update.
	batchEnded bool

	stats  *statsCollector
	logger *log.Logger
}

// New validates cfg, spawns the first piece and starts the gravity ticker.
// Call Close to stop the ticker.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := newEngine(cfg)
	e.gravity.start(context.Background())
	return e, nil
}

// NewDefault returns a running engine with DefaultConfig.
func NewDefault() *Engine {
	e, err := New(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return e
}

func newEngine(cfg Config) *Engine {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64() | 1
	}

	queue := newCommandQueue()
	e := &Engine{
		width:   cfg.Width,
		height:  cfg.Height,
		seed:    seed,
		grid:    NewGrid(cfg.Width, cfg.Height),
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		queue:   queue,
		gravity: newGravity(queue, cfg),
		stats:   newStatsCollector(),
		logger:  cfg.Logger,
		state:   Active,
	}

	e.next = e.drawKind()
	e.spawn()
	e.stats.games++
	return e
}

// Close stops the gravity ticker. It is safe to call more than once.
func (e *Engine) Close() error {
	e.gravity.stop()
	return nil
}

// Submit buffers a command for the next Update. It never blocks and may be
// called from any goroutine.
func (e *Engine) Submit(cmd Command) {
	e.queue.Push(cmd)
}

// Update applies every buffered command in arrival order and notifies
// listeners once if there was at least one. It does nothing once the game is
// lost.
func (e *Engine) Update() {
	if e.state != Active {
		return
	}
	e.stats.updates++

	batch := e.queue.Drain()
	if len(batch) == 0 {
		return
	}

	start := time.Now()
	e.batchEnded = false

	processed := 0
	for i, cmd := range batch {
		if e.batchEnded || e.state != Active {
			e.stats.commandsDiscarded += int64(len(batch) - i)
			break
		}
		e.dispatch(cmd)
		processed++
	}

	e.stats.recordBatch(processed, time.Since(start))
	e.notify()
}

func (e *Engine) dispatch(cmd Command) {
	switch cmd {
	case Rotate:
		e.rotate()
	case MoveLeft:
		e.move(-1, true)
	case MoveRight:
		e.move(1, true)
	case HardDrop:
		e.move(-e.hardDropDistance(), false)
	case MoveDown:
		e.move(-1, false)
	}
}

// Reset starts a new game in place: empty grid, fresh piece, zero score, no
// buffered commands.
func (e *Engine) Reset() {
	e.grid.Clear()
	e.score = 0
	e.lines = 0
	e.gravity.lines.Store(0)

	e.queue.Clear()
	e.state = Active
	e.gravity.paused.Store(false)

	e.spawn()
	e.stats.games++
	e.logf("[Engine] reset: game %d", e.stats.games)

	e.notify()
}

// OnChange registers fn to run after every non-empty batch and after Reset.
// Listeners run synchronously on the Update goroutine and should only read
// engine state. The returned function unregisters fn.
func (e *Engine) OnChange(fn func()) (cancel func()) {
	e.nextListenerID++
	id := e.nextListenerID
	e.listeners = append(e.listeners, listener{id: id, fn: fn})

	return func() {
		for i, l := range e.listeners {
			if l.id == id {
				e.listeners = append(e.listeners[:i:i], e.listeners[i+1:]...)
				return
			}
		}
	}
}

func (e *Engine) notify() {
	e.version++
	for _, l := range e.listeners {
		l.fn()
	}
}

func (e *Engine) logf(format string, args ...any) {
	if e.logger != nil {
		e.logger.Printf(format, args...)
	}
}

// Version increases by one with every change notification.
func (e *Engine) Version() uint64 { return e.version }

func (e *Engine) Width() int        { return e.width }
func (e *Engine) Height() int       { return e.height }
func (e *Engine) Score() int        { return e.score }
func (e *Engine) LinesCleared() int { return e.lines }
func (e *Engine) State() GameState  { return e.state }
func (e *Engine) Active() ActivePiece {
	return e.active
}

// NextKind is the kind the next spawned piece will have.
func (e *Engine) NextKind() Kind { return e.next }

// Seed returns the seed of the piece generator.
func (e *Engine) Seed() uint64 { return e.seed }

// Pending returns the number of buffered commands.
func (e *Engine) Pending() int { return e.queue.Len() }

// GravityThreshold returns the current number of ticks between gravity drops.
func (e *Engine) GravityThreshold() int { return e.gravity.threshold() }

// Cell returns the locked content at (x, y), ignoring the active piece.
func (e *Engine) Cell(x, y int) CellType { return e.grid.At(x, y) }

// Grid returns a copy of the locked cells indexed [y][x], row 0 at the floor.
func (e *Engine) Grid() [][]CellType {
	return e.grid.Rows()
}

// Overlay returns a copy of the grid with the active piece drawn in. Cells of
// the piece above the top row are left out.
func (e *Engine) Overlay() [][]CellType {
	rows := e.grid.Rows()
	if e.state != Active {
		return rows
	}

	cell := e.active.Kind.Cell()
	for _, off := range e.active.Shape().Cells() {
		x, y := e.active.X+off.DX, e.active.Y+off.DY
		if e.grid.InBounds(x, y) {
			rows[y][x] = cell
		}
	}
	return rows
}

// GhostY returns the Y the active piece would lock at after a hard drop.
func (e *Engine) GhostY() int {
	y := e.active.Y
	for !e.grid.Collides(e.active.Kind, e.active.Rotation, e.active.X, y-1) {
		y--
	}
	return y
}

// Stats returns a snapshot of the engine statistics.
func (e *Engine) Stats() Stats {
	return e.stats.snapshot(e.gravity.fired.Load())
}
