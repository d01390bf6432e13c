package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/tetris"
)

// Keys is the held state of the game keys for one frame.
type Keys struct {
	Left   bool
	Right  bool
	Rotate bool
	Drop   bool
	Down   bool
}

func pollKeys() Keys {
	return Keys{
		Left:   ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:  ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Rotate: ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Drop:   ebiten.IsKeyPressed(ebiten.KeySpace),
		Down:   ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS),
	}
}

// RepeatConfig holds key repeat delays in frames.
type RepeatConfig struct {
	MoveFirst int
	MoveNext  int
	Rotate    int
	Drop      int
	Down      int
}

// DefaultRepeat returns the delays at 60 frames per second: 100ms before the
// first move repeat, 25ms between repeats, 125ms between rotations and 75ms
// between hard drops.
func DefaultRepeat() RepeatConfig {
	return RepeatConfig{
		MoveFirst: 6,
		MoveNext:  2,
		Rotate:    8,
		Drop:      5,
		Down:      2,
	}
}

// Repeater turns held keys into a stream of discrete commands. A fresh press
// always fires at once; holding a key fires again after its cooldown.
type Repeater struct {
	cfg  RepeatConfig
	tick int

	moveDir   int
	moveCount int
	lastMove  int

	rotate holdState
	drop   holdState
	down   holdState
}

type holdState struct {
	held bool
	last int
}

// fire reports whether a key with the given cooldown emits this frame.
func (h *holdState) fire(pressed bool, tick, cooldown int) bool {
	defer func() { h.held = pressed }()

	if !pressed {
		return false
	}
	if h.held && tick-h.last < cooldown {
		return false
	}
	h.last = tick
	return true
}

func NewRepeater(cfg RepeatConfig) *Repeater {
	return &Repeater{cfg: cfg}
}

// Step advances one frame and returns the commands to submit for it.
func (r *Repeater) Step(keys Keys) []tetris.Command {
	defer func() { r.tick++ }()

	var commands []tetris.Command

	dir := 0
	if keys.Right {
		dir++
	}
	if keys.Left {
		dir--
	}

	if dir != r.moveDir {
		r.moveDir = dir
		r.moveCount = 0
	}

	if dir != 0 {
		delay := r.cfg.MoveNext
		if r.moveCount == 1 {
			delay = r.cfg.MoveFirst
		}

		if r.moveCount == 0 || r.tick-r.lastMove >= delay {
			if dir > 0 {
				commands = append(commands, tetris.MoveRight)
			} else {
				commands = append(commands, tetris.MoveLeft)
			}
			r.lastMove = r.tick
			r.moveCount++
		}
	}

	if r.rotate.fire(keys.Rotate, r.tick, r.cfg.Rotate) {
		commands = append(commands, tetris.Rotate)
	}
	if r.down.fire(keys.Down, r.tick, r.cfg.Down) {
		commands = append(commands, tetris.MoveDown)
	}
	if r.drop.fire(keys.Drop, r.tick, r.cfg.Drop) {
		commands = append(commands, tetris.HardDrop)
	}

	return commands
}
