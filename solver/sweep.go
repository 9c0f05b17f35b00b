package solver

import (
	"sync"

	"github.com/gosuri/uiprogress"
)

// Outcome is the result of one sweep variant. An infeasible variant fails
// alone without aborting the rest of the sweep.
type Outcome struct {
	Index    int      `json:"index"`
	Settings Settings `json:"settings"`
	Result   *Result  `json:"result,omitempty"`
	Err      error    `json:"-"`
}

// Sweep solves the same network once per settings variant on a fixed worker
// pool, e.g. to map convergence sensitivity to the initial guess or
// tolerance. Outcomes come back in variant order. With progress set, a
// terminal progress bar tracks completion.
func Sweep(net *Network, variants []Settings, workers int, progress bool) []Outcome {
	if workers <= 0 {
		workers = solverCfg.SweepWorkers
	}
	out := make([]Outcome, len(variants))
	if len(variants) == 0 {
		return out
	}

	var bar *uiprogress.Bar
	if progress {
		uiprogress.Start()
		bar = uiprogress.AddBar(len(variants)).AppendCompleted().PrependElapsed()
	}

	jobs := make(chan int, len(variants))
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := Solve(net, variants[i])
				out[i] = Outcome{Index: i, Settings: variants[i], Result: res, Err: err}
				if bar != nil {
					bar.Incr()
				}
			}
		}()
	}
	for i := range variants {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if progress {
		uiprogress.Stop()
	}
	return out
}
