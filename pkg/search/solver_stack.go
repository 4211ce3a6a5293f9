package search

import "github.com/limaJavier/itinerary/pkg/model"

type frame struct {
	leg        int
	candidates []model.Flight
	next       int  // Index of the next candidate to try
	entry      int  // Trail snapshot taken when the frame was pushed
	saved      int  // Trail snapshot taken after binding the current candidate
	bound      bool // Whether a candidate of this frame is currently bound
}

// stackSolver explores the same tree as backtrackingSolver with an explicit frame stack instead of recursion
type stackSolver struct {
	options Options
}

func NewStackSolver(options Options) Solver {
	return &stackSolver{options: options}
}

func (solver *stackSolver) Solve(itinerary *model.Itinerary) (Solution, error) {
	return solve(itinerary, solver.options, solver.search)
}

func (solver *stackSolver) search(engine *engine) (bool, error) {
	stack := []frame{solver.push(engine, 0)}

	for len(stack) > 0 {
		f := &stack[len(stack)-1]

		// The candidate bound by this frame did not lead to a solution
		if f.bound {
			engine.store.undo(f.saved)
			engine.unbind(f.leg)
			f.bound = false
		}

		// Advance to the next consistent candidate
		for f.next < len(f.candidates) && !engine.consistent(f.leg, f.candidates[f.next]) {
			f.next++
		}
		if f.next == len(f.candidates) {
			engine.store.undo(f.entry)
			stack = stack[:len(stack)-1]
			continue
		}

		candidate := f.candidates[f.next]
		f.next++
		if err := engine.bind(f.leg, candidate); err != nil {
			return false, err
		}
		f.saved = engine.store.snapshot()
		f.bound = true

		if !engine.forwardCheck(f.leg, candidate) {
			continue
		}

		if f.leg == engine.legs()-1 {
			if engine.withinBudget() {
				return true, nil
			}
			continue
		}

		stack = append(stack, solver.push(engine, f.leg+1))
	}

	return false, nil
}

func (solver *stackSolver) push(engine *engine, leg int) frame {
	return frame{
		leg:        leg,
		candidates: engine.store.domain(leg),
		entry:      engine.store.snapshot(),
	}
}
