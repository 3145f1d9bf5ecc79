package anim

import "testing"

func TestSequence(t *testing.T) {
	got := Sequence(0, 10, 4)
	want := []float64{0, 2.5, 5, 7.5, 10}
	if len(got) != len(want) {
		t.Fatalf("length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("frame %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSequenceConstant(t *testing.T) {
	got := Sequence(7, 7, 5)
	if len(got) != 6 {
		t.Fatalf("length = %d, want 6", len(got))
	}
	for i, v := range got {
		if v != 7 {
			t.Errorf("frame %d = %v, want 7", i, v)
		}
	}
}

func TestSequenceRestartable(t *testing.T) {
	a := Sequence(-3, 9, 8)
	b := Sequence(-3, 9, 8)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("frame %d differs on restart", i)
		}
	}
	if a[0] != -3 || a[len(a)-1] != 9 {
		t.Errorf("endpoints = %v, %v, want -3 and 9", a[0], a[len(a)-1])
	}
}

func TestSequenceDegenerateSteps(t *testing.T) {
	got := Sequence(1, 5, 0)
	if len(got) != 1 || got[0] != 5 {
		t.Errorf("zero steps = %v, want single target frame", got)
	}
}

func TestStateLifecycle(t *testing.T) {
	s := NewState()
	// unset: previous substitutes the target, one static frame
	if got := s.Previous(4); got != 4 {
		t.Errorf("unset previous = %v, want target 4", got)
	}
	s.Update(4)
	if got := s.Previous(9); got != 4 {
		t.Errorf("previous = %v, want remembered 4", got)
	}
	s.Update(9)
	s.Clear()
	if got := s.Previous(2); got != 2 {
		t.Errorf("cleared previous = %v, want target 2", got)
	}
}
