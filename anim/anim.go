// Package anim holds the single piece of session state in the whole core:
// the previous animation target, used to interpolate one slider change into
// a short sequence of frames.
package anim

// Sequence returns steps+1 values from previous to target inclusive by
// linear interpolation. It is a pure function of its inputs; a non-positive
// step count degenerates to the single target frame.
func Sequence(previous, target float64, steps int) []float64 {
	if steps <= 0 {
		return []float64{target}
	}
	values := make([]float64, steps+1)
	for i := 0; i <= steps; i++ {
		values[i] = previous + (target-previous)*float64(i)/float64(steps)
	}
	return values
}

// State remembers the previous target across interactions of one session.
// It starts unset, is overwritten after each render and cleared when the
// session ends. It is passed explicitly, never ambient.
type State struct {
	previous float64
	set      bool
}

func NewState() *State {
	return &State{}
}

// Previous returns the value to interpolate from. On the first interaction
// of a session there is no previous value, so the target substitutes for it
// and the sequence degenerates to a single static frame.
func (s *State) Previous(target float64) float64 {
	if !s.set {
		return target
	}
	return s.previous
}

// Update overwrites the remembered target after a render.
func (s *State) Update(target float64) {
	s.previous = target
	s.set = true
}

// Clear resets the state to unset.
func (s *State) Clear() {
	s.previous = 0
	s.set = false
}
