package search

import "github.com/limaJavier/itinerary/pkg/model"

type backtrackingSolver struct {
	options Options
}

func NewBacktrackingSolver(options Options) Solver {
	return &backtrackingSolver{options: options}
}

func (solver *backtrackingSolver) Solve(itinerary *model.Itinerary) (Solution, error) {
	return solve(itinerary, solver.options, func(engine *engine) (bool, error) {
		return solver.search(engine, 0)
	})
}

func (solver *backtrackingSolver) search(engine *engine, leg int) (bool, error) {
	// Every leg is bound
	if leg == engine.legs() {
		return engine.withinBudget(), nil
	}

	entry := engine.store.snapshot() // Restores this leg's domain once every candidate failed

	for _, candidate := range engine.store.domain(leg) {
		if !engine.consistent(leg, candidate) {
			continue
		}
		if err := engine.bind(leg, candidate); err != nil {
			return false, err
		}

		saved := engine.store.snapshot() // Downstream domains before forward checking
		if engine.forwardCheck(leg, candidate) {
			found, err := solver.search(engine, leg+1)
			if err != nil {
				return false, err
			} else if found {
				return true, nil
			}
		}

		engine.store.undo(saved)
		engine.unbind(leg)
	}

	engine.store.undo(entry)
	return false, nil
}
