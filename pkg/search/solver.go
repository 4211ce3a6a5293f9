package search

import (
	"errors"
	"fmt"
	"slices"

	"github.com/limaJavier/itinerary/pkg/model"
	"go.uber.org/zap"
)

// ErrNodeLimit is returned when a search binds more candidates than Options.MaxNodes allows
var ErrNodeLimit = errors.New("search: node limit exceeded")

type Solver interface {
	// Solve returns the first feasible plan in ascending-day, left-to-right order.
	// A Solution with nil Flights and a nil error means that the itinerary has no solution
	Solve(itinerary *model.Itinerary) (Solution, error)
}

type Options struct {
	// MaxNodes caps the number of candidate bindings; 0 means unlimited
	MaxNodes int
	Logger   *zap.Logger
}

type Outcome int

const (
	Unknown Outcome = iota
	Solved
	StructuralInfeasibility
	SearchInfeasibility
	Aborted // The node limit was reached before the search finished
)

func (outcome Outcome) String() string {
	switch outcome {
	case Solved:
		return "solved"
	case StructuralInfeasibility:
		return "empty-domain"
	case SearchInfeasibility:
		return "exhausted"
	case Aborted:
		return "aborted"
	case Unknown:
		return "unknown"
	}
	return fmt.Sprintf("outcome(%d)", int(outcome))
}

type Stats struct {
	Nodes      int // Candidates bound into the assignment
	Backtracks int // Bindings undone
	Prunes     int // Forward-checking wipe-outs
	Outcome    Outcome
}

type Solution struct {
	Flights []model.Flight
	Cost    int
	Stats   Stats
}

var constructors = map[string]func(Options) Solver{
	"recursive": NewBacktrackingSolver,
	"stack":     NewStackSolver,
}

func SolverNames() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func NewSolver(name string, options Options) (Solver, error) {
	constructor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("%v is not a valid solver: allowed values are %v", name, SolverNames())
	}
	return constructor(options), nil
}

// solve runs the shared pre-search check and the given driver
func solve(itinerary *model.Itinerary, options Options, driver func(*engine) (bool, error)) (Solution, error) {
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// An empty initial domain can never be filled, so the search is skipped
	if leg, ok := itinerary.EmptyLeg(); ok {
		logger.Debug("no flights for leg",
			zap.Int("leg", leg),
			zap.Stringer("route", itinerary.Leg(leg).Route),
		)
		return Solution{Stats: Stats{Outcome: StructuralInfeasibility}}, nil
	}

	engine := newEngine(itinerary, options.MaxNodes)
	found, err := driver(engine)
	if err != nil {
		engine.stats.Outcome = Aborted
		logger.Debug("search aborted", zap.Error(err), zap.Int("nodes", engine.stats.Nodes))
		return Solution{Stats: engine.stats}, err
	} else if !found {
		engine.stats.Outcome = SearchInfeasibility
		logger.Debug("search exhausted",
			zap.Int("nodes", engine.stats.Nodes),
			zap.Int("backtracks", engine.stats.Backtracks),
			zap.Int("prunes", engine.stats.Prunes),
		)
		return Solution{Stats: engine.stats}, nil
	}

	flights := engine.flights()
	engine.stats.Outcome = Solved
	logger.Debug("itinerary found",
		zap.Int("nodes", engine.stats.Nodes),
		zap.Int("backtracks", engine.stats.Backtracks),
		zap.Int("cost", model.TotalCost(flights)),
	)
	return Solution{Flights: flights, Cost: model.TotalCost(flights), Stats: engine.stats}, nil
}
