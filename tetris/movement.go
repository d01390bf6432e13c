package tetris

// hardDropDistance is a step count that reaches the floor from any height a
// piece can occupy, so a hard drop always ends in a lock.
func (e *Engine) hardDropDistance() int {
	return e.height + 5
}

// move steps the active piece |distance| cells, left/right when horizontal is
// set and down otherwise. A blocked horizontal step drops the remaining
// steps. A blocked downward step locks the piece, spawns the next one,
// resolves lines and ends the current batch. It reports whether the piece
// locked.
func (e *Engine) move(distance int, horizontal bool) bool {
	if distance == 0 {
		return false
	}

	step := 1
	if distance < 0 {
		step = -1
		distance = -distance
	}

	dx, dy := 0, 0
	if horizontal {
		dx = step
	} else {
		dy = step
	}

	for range distance {
		p := e.active
		if e.grid.Collides(p.Kind, p.Rotation, p.X+dx, p.Y+dy) {
			if horizontal {
				return false
			}

			e.settle()
			return true
		}

		e.active.X += dx
		e.active.Y += dy
	}

	return false
}

// rotate turns the active piece to its previous rotation state in place. No
// offsets are tried; a blocked rotation leaves the piece untouched.
func (e *Engine) rotate() bool {
	p := e.active

	rotation := p.Rotation - 1
	if rotation < 0 {
		rotation = Rotations(p.Kind) - 1
	}

	if e.grid.Collides(p.Kind, rotation, p.X, p.Y) {
		return false
	}

	e.active.Rotation = rotation
	return true
}
