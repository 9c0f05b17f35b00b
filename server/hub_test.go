package server

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipenet/model"
	"pipenet/solver"
)

func referenceEnv() model.Env {
	return model.Env{
		Fluid: model.FluidSpec{Name: "water", TemperatureC: 20},
		Segments: [3]model.SegmentSpec{
			{Diameter: 0.0254, Length: 10, Roughness: 4.5e-5},
			{Diameter: 0.0127, Length: 8, Roughness: 1.5e-6},
			{Diameter: 0.0095, Length: 1, Roughness: 1.5e-6},
		},
		MinorLoss: [3]float64{0, 2*1.5 + 2*0.9 + 10 + 0.41, 1.5 + 0.22},
		Boundary:  model.BoundarySpec{PressureIn: 550000, PressureOut: 101325, ElevationOut: 7},
		Solver:    model.SolverSpec{InitialGuess: 10, TolerancePct: 1, MaxIterations: 200},
	}
}

func envContent(t *testing.T, env model.Env) string {
	data, err := json.Marshal(env)
	require.NoError(t, err)
	return string(data)
}

func TestHubSetNetworkAndSolve(t *testing.T) {
	h := NewHub()
	h.setNetwork(envContent(t, referenceEnv()))

	reply := <-h.networkSet
	assert.Equal(t, "networkSet", reply.Type)
	require.NotNil(t, h.net)

	h.solve()
	reply = <-h.solved
	require.Equal(t, "solved", reply.Type)

	var res solver.Result
	require.NoError(t, json.Unmarshal([]byte(reply.Content), &res))
	assert.True(t, res.Converged)
	assert.InEpsilon(t, 1.034, res.Velocities[0], 0.01)
}

func TestHubRejectsBadEnv(t *testing.T) {
	h := NewHub()
	h.setNetwork("{not json")
	reply := <-h.failed
	assert.Equal(t, "error", reply.Type)

	env := referenceEnv()
	env.Boundary.PressureIn = env.Boundary.PressureOut
	env.Boundary.ElevationOut = 0
	h.setNetwork(envContent(t, env))
	reply = <-h.failed
	assert.Equal(t, "error", reply.Type)
	assert.Contains(t, reply.Content, "infeasible")
}

func TestHubSolveWithoutNetwork(t *testing.T) {
	h := NewHub()
	h.solve()
	reply := <-h.failed
	assert.Equal(t, "error", reply.Type)
	assert.Contains(t, reply.Content, "no network set")
}

func TestHubLoopsExitWhenDone(t *testing.T) {
	h := NewHub()
	exited := make(chan struct{}, 2)
	go func() {
		h.handleRequest()
		exited <- struct{}{}
	}()
	go func() {
		h.handleResponse()
		exited <- struct{}{}
	}()

	close(h.done)
	for i := 0; i < 2; i++ {
		select {
		case <-exited:
		case <-time.After(time.Second):
			t.Fatal("hub goroutine still running after done was closed")
		}
	}
}

func TestHubSweep(t *testing.T) {
	h := NewHub()
	h.setNetwork(envContent(t, referenceEnv()))
	<-h.networkSet

	req := model.SweepReq{Variants: []model.SolverSpec{
		{InitialGuess: 10, TolerancePct: 1, MaxIterations: 200},
		{InitialGuess: 10, TolerancePct: 1, MaxIterations: 1},
	}}
	data, err := json.Marshal(req)
	require.NoError(t, err)
	h.sweep(string(data))

	reply := <-h.sweepDone
	require.Equal(t, "sweepDone", reply.Type)

	var outcomes []sweepOutcome
	require.NoError(t, json.Unmarshal([]byte(reply.Content), &outcomes))
	require.Len(t, outcomes, 2)
	assert.True(t, outcomes[0].Result.Converged)
	assert.False(t, outcomes[1].Result.Converged)
	assert.Empty(t, outcomes[0].Error)
}
