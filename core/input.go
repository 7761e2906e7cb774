package core

// Input is the per-tick snapshot of held controls
type Input struct {
	Up, Down, Left, Right bool
	Dash, Special         bool
}

// Horizontal returns -1, 0 or 1; opposite keys cancel
func (in Input) Horizontal() int {
	h := 0
	if in.Left {
		h--
	}
	if in.Right {
		h++
	}
	return h
}

// Vertical returns -1 (up), 0 or 1 (down); opposite keys cancel
func (in Input) Vertical() int {
	v := 0
	if in.Up {
		v--
	}
	if in.Down {
		v++
	}
	return v
}
