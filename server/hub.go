package server

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"fluidlab/anim"
	"fluidlab/geometry"
	"fluidlab/hydro"
	"fluidlab/model"
)

// Hub serves one calculator session. Every parameter message triggers
// exactly one evaluate → build pass; the resulting scene (or frame
// sequence, for the animated capillary page) goes back to the UI, which
// does the actual drawing.
type Hub struct {
	conn *websocket.Conn
	rise *anim.State // capillary animation state, one per session

	// request
	msg chan model.Msg
	// response
	capillary chan model.Msg
	manometer chan model.Msg
	wall      chan model.Msg
	pipeBend  chan model.Msg
	errs      chan model.Msg
}

func NewHub() *Hub {
	return &Hub{
		rise:      anim.NewState(),
		msg:       make(chan model.Msg, 10),
		capillary: make(chan model.Msg, 64),
		manometer: make(chan model.Msg, 10),
		wall:      make(chan model.Msg, 10),
		pipeBend:  make(chan model.Msg, 10),
		errs:      make(chan model.Msg, 10),
	}
}

func (h *Hub) handleRequest() {
	for msg := range h.msg {
		switch msg.Type {
		case "capillary":
			h.handleCapillary(msg)
		case "manometer":
			h.handleManometer(msg)
		case "wall":
			h.handleWall(msg)
		case "pipebend":
			h.handlePipeBend(msg)
		default:
			log.WithField("type", msg.Type).Warn("no such type")
		}
	}
	close(h.capillary)
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply, ok := <-h.capillary:
			if !ok {
				return
			}
			h.write(reply)
			// advisory inter-frame delay, cosmetic only
			time.Sleep(srvCfg.FrameDelay)
		case reply := <-h.manometer:
			h.write(reply)
		case reply := <-h.wall:
			h.write(reply)
		case reply := <-h.pipeBend:
			h.write(reply)
		case reply := <-h.errs:
			h.write(reply)
		}
	}
}

func (h *Hub) write(reply model.Msg) {
	if err := h.conn.WriteJSON(&reply); err != nil {
		log.WithField("err", err).Error("write reply")
	}
}

func (h *Hub) fail(err error) {
	h.errs <- model.Msg{Type: "error", Content: err.Error()}
}

// capillaryReply carries one animation frame. Frame counts up to Frames-1
// so the UI knows when the transition is done.
type capillaryReply struct {
	Result model.CapillaryResult `json:"result"`
	Scene  model.Scene           `json:"scene"`
	Frame  int                   `json:"frame"`
	Frames int                   `json:"frames"`
}

type sceneReply struct {
	Result interface{} `json:"result"`
	Scene  model.Scene `json:"scene"`
}

func (h *Hub) handleCapillary(msg model.Msg) {
	var req model.CapillaryReq
	if err := json.Unmarshal([]byte(msg.Content), &req); err != nil {
		h.fail(err)
		return
	}
	replies, err := buildCapillaryFrames(req, h.rise, srvCfg.AnimSteps)
	if err != nil {
		h.fail(err)
		return
	}
	for _, reply := range replies {
		h.capillary <- reply
	}
}

// buildCapillaryFrames runs the full capillary pass: resolve parameters,
// evaluate, interpolate from the session's previous rise height and build
// one scene per frame. The state is read then overwritten within this one
// pass; on the first interaction the sequence degenerates to a single
// static frame.
func buildCapillaryFrames(req model.CapillaryReq, state *anim.State, steps int) ([]model.Msg, error) {
	params, err := hydro.CapillaryParamsFrom(req)
	if err != nil {
		return nil, err
	}
	result := hydro.EvaluateCapillary(params)

	previous := state.Previous(result.RiseHeight)
	if previous == result.RiseHeight {
		steps = 0
	}
	heights := anim.Sequence(previous, result.RiseHeight, steps)
	state.Update(result.RiseHeight)

	replies := make([]model.Msg, 0, len(heights))
	for i, height := range heights {
		scene := geometry.BuildCapillary(params, model.CapillaryResult{RiseHeight: height})
		content, err := json.Marshal(capillaryReply{
			Result: result,
			Scene:  scene,
			Frame:  i,
			Frames: len(heights),
		})
		if err != nil {
			return nil, err
		}
		replies = append(replies, model.Msg{Type: "capillary", Content: string(content)})
	}
	return replies, nil
}

func (h *Hub) handleManometer(msg model.Msg) {
	var req model.ManometerReq
	if err := json.Unmarshal([]byte(msg.Content), &req); err != nil {
		h.fail(err)
		return
	}
	params := hydro.ManometerParamsFrom(req)
	result := hydro.EvaluateManometer(params)
	scene := geometry.BuildManometer(params, result)
	h.reply(h.manometer, "manometer", sceneReply{Result: result, Scene: scene})
}

func (h *Hub) handleWall(msg model.Msg) {
	var req model.WallReq
	if err := json.Unmarshal([]byte(msg.Content), &req); err != nil {
		h.fail(err)
		return
	}
	params := hydro.WallParamsFrom(req)
	result := hydro.EvaluateWall(params)
	scene := geometry.BuildWall(params, result)
	h.reply(h.wall, "wall", sceneReply{Result: result, Scene: scene})
}

func (h *Hub) handlePipeBend(msg model.Msg) {
	var req model.PipeBendReq
	if err := json.Unmarshal([]byte(msg.Content), &req); err != nil {
		h.fail(err)
		return
	}
	params, err := hydro.PipeBendParamsFrom(req)
	if err != nil {
		h.fail(err)
		return
	}
	result := hydro.EvaluatePipeBend(params)
	scene := geometry.BuildPipeBend(params, result)
	h.reply(h.pipeBend, "pipebend", sceneReply{Result: result, Scene: scene})
}

func (h *Hub) reply(ch chan model.Msg, msgType string, payload sceneReply) {
	content, err := json.Marshal(payload)
	if err != nil {
		h.fail(err)
		return
	}
	ch <- model.Msg{Type: msgType, Content: string(content)}
}
