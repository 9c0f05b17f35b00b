package server

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"

	"pipenet/model"
	"pipenet/solver"
)

// Hub owns one client connection: it parses request frames, runs the solver
// and queues typed replies for the write loop.
type Hub struct {
	conn *websocket.Conn

	net      *solver.Network
	settings solver.Settings

	// request
	msg chan model.Msg
	// response
	networkSet chan model.Msg
	solved     chan model.Msg
	sweepDone  chan model.Msg
	stopped    chan model.Msg
	failed     chan model.Msg
	// closed when the connection goes away, releases both loops
	done chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		msg:        make(chan model.Msg, 10),
		networkSet: make(chan model.Msg, 10),
		solved:     make(chan model.Msg, 10),
		sweepDone:  make(chan model.Msg, 10),
		stopped:    make(chan model.Msg, 10),
		failed:     make(chan model.Msg, 10),
		done:       make(chan struct{}),
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case <-h.done:
			return
		case reply := <-h.networkSet:
			h.write(reply)
		case reply := <-h.solved:
			h.write(reply)
		case reply := <-h.sweepDone:
			h.write(reply)
		case reply := <-h.stopped:
			h.write(reply)
		case reply := <-h.failed:
			h.write(reply)
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}

func (h *Hub) write(reply model.Msg) {
	err := h.conn.WriteJSON(&reply)
	if err != nil {
		log.Println("err: ", err)
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case <-h.done:
			return
		case msg := <-h.msg:
			switch msg.Type {
			case "network":
				h.setNetwork(msg.Content)
			case "solve":
				h.solve()
			case "sweep":
				h.sweep(msg.Content)
			case "stop":
				h.net = nil
				h.stopped <- model.Msg{Type: "stopped", Content: "network cleared"}
			default:
				h.failed <- model.Msg{Type: "error", Content: "unknown message type: " + msg.Type}
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}

func (h *Hub) setNetwork(content string) {
	var env model.Env
	if err := json.Unmarshal([]byte(content), &env); err != nil {
		h.failed <- model.Msg{Type: "error", Content: "bad env message: " + err.Error()}
		return
	}
	net, err := solver.NewNetworkFromEnv(env)
	if err != nil {
		h.failed <- model.Msg{Type: "error", Content: err.Error()}
		return
	}
	h.net = net
	h.settings = solver.Settings{
		InitialGuess:  env.Solver.InitialGuess,
		TolerancePct:  env.Solver.TolerancePct,
		MaxIterations: env.Solver.MaxIterations,
		TraceDepth:    env.Solver.TraceDepth,
	}
	h.networkSet <- model.Msg{Type: "networkSet", Content: "network is set"}
}

func (h *Hub) solve() {
	if h.net == nil {
		h.failed <- model.Msg{Type: "error", Content: "no network set"}
		return
	}
	res, err := solver.Solve(h.net, h.settings)
	if err != nil {
		h.failed <- model.Msg{Type: "error", Content: err.Error()}
		return
	}
	if !res.Converged {
		log.Println("solve did not converge, final error ", res.FinalErrorPct, "%")
	}
	data, err := json.Marshal(res)
	if err != nil {
		log.Println("err: ", err)
		return
	}
	h.solved <- model.Msg{Type: "solved", Content: string(data)}
}

// sweepOutcome is the wire form of solver.Outcome, with errors flattened.
type sweepOutcome struct {
	Index  int            `json:"index"`
	Result *solver.Result `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (h *Hub) sweep(content string) {
	if h.net == nil {
		h.failed <- model.Msg{Type: "error", Content: "no network set"}
		return
	}
	var req model.SweepReq
	if err := json.Unmarshal([]byte(content), &req); err != nil {
		h.failed <- model.Msg{Type: "error", Content: "bad sweep message: " + err.Error()}
		return
	}
	variants := make([]solver.Settings, len(req.Variants))
	for i, v := range req.Variants {
		variants[i] = solver.Settings{
			InitialGuess:  v.InitialGuess,
			TolerancePct:  v.TolerancePct,
			MaxIterations: v.MaxIterations,
			TraceDepth:    v.TraceDepth,
		}
	}
	outcomes := solver.Sweep(h.net, variants, req.Workers, false)
	wire := make([]sweepOutcome, len(outcomes))
	for i, o := range outcomes {
		wire[i] = sweepOutcome{Index: o.Index, Result: o.Result}
		if o.Err != nil {
			wire[i].Error = o.Err.Error()
		}
	}
	data, err := json.Marshal(wire)
	if err != nil {
		log.Println("err: ", err)
		return
	}
	h.sweepDone <- model.Msg{Type: "sweepDone", Content: string(data)}
}
