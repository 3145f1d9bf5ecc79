package server

import (
	"encoding/json"
	"testing"

	"fluidlab/anim"
	"fluidlab/model"
)

func TestBuildCapillaryFramesFirstInteraction(t *testing.T) {
	state := anim.NewState()
	req := model.CapillaryReq{Fluid: "water", ContactAngleDeg: 0, TubeDiameterMM: 1}

	// no previous value: a single static frame
	replies, err := buildCapillaryFrames(req, state, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(replies) != 1 {
		t.Fatalf("first interaction produced %d frames, want 1", len(replies))
	}

	// widen the tube: the rise height changes and the transition animates
	req.TubeDiameterMM = 2
	replies, err = buildCapillaryFrames(req, state, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(replies) != 5 {
		t.Fatalf("transition produced %d frames, want steps+1 = 5", len(replies))
	}

	var first, last capillaryReply
	if err := json.Unmarshal([]byte(replies[0].Content), &first); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(replies[4].Content), &last); err != nil {
		t.Fatal(err)
	}
	if first.Frame != 0 || last.Frame != 4 || last.Frames != 5 {
		t.Errorf("frame numbering off: first %d, last %d/%d", first.Frame, last.Frame, last.Frames)
	}
	if len(last.Scene.Primitives) == 0 {
		t.Error("final frame has no scene")
	}
}

func TestBuildCapillaryFramesBadFluid(t *testing.T) {
	state := anim.NewState()
	req := model.CapillaryReq{Fluid: "lava"}
	if _, err := buildCapillaryFrames(req, state, 4); err == nil {
		t.Error("unknown fluid should fail at the boundary")
	}
}
