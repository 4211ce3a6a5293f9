package search

import (
	"github.com/limaJavier/itinerary/pkg/model"
	"github.com/samber/lo"
)

// Slot is one leg's position in the assignment; Flight is meaningful only when Bound is set
type Slot struct {
	Flight model.Flight
	Bound  bool
}

type Assignment []Slot

func (assignment Assignment) Complete() bool {
	return lo.EveryBy(assignment, func(slot Slot) bool { return slot.Bound })
}

// engine is the state owned by a single Solve call
type engine struct {
	itinerary  *model.Itinerary
	store      *domainStore
	assignment Assignment
	maxNodes   int
	stats      Stats
}

func newEngine(itinerary *model.Itinerary, maxNodes int) *engine {
	return &engine{
		itinerary:  itinerary,
		store:      newDomainStore(itinerary),
		assignment: make(Assignment, itinerary.LegCount()),
		maxNodes:   maxNodes,
	}
}

func (engine *engine) legs() int {
	return len(engine.assignment)
}

// consistent checks the candidate against the bound prefix: the gap from the previous leg must be within
// that leg's stay window and the candidate must leave strictly after every bound flight
func (engine *engine) consistent(leg int, candidate model.Flight) bool {
	if leg > 0 && engine.assignment[leg-1].Bound {
		previous := engine.assignment[leg-1].Flight
		if !engine.itinerary.Leg(leg - 1).Stay.Contains(candidate.Day - previous.Day) {
			return false
		}
	}

	for _, slot := range engine.assignment[:leg] {
		if slot.Bound && slot.Flight.Day >= candidate.Day {
			return false
		}
	}
	return true
}

// forwardCheck prunes the next leg's domain to the flights reachable from bound within leg's stay window.
// It reports false when nothing is left
func (engine *engine) forwardCheck(leg int, bound model.Flight) bool {
	if leg >= engine.legs()-1 {
		return true
	}

	stay := engine.itinerary.Leg(leg).Stay
	pruned := lo.Filter(engine.store.domain(leg+1), func(candidate model.Flight, _ int) bool {
		return stay.Contains(candidate.Day - bound.Day)
	})
	engine.store.replace(leg+1, pruned)

	if len(pruned) == 0 {
		engine.stats.Prunes++
		return false
	}
	return true
}

func (engine *engine) bind(leg int, flight model.Flight) error {
	if engine.stats.Nodes++; engine.maxNodes > 0 && engine.stats.Nodes > engine.maxNodes {
		return ErrNodeLimit
	}
	engine.assignment[leg] = Slot{Flight: flight, Bound: true}
	return nil
}

func (engine *engine) unbind(leg int) {
	engine.assignment[leg] = Slot{}
	engine.stats.Backtracks++
}

// withinBudget is evaluated on complete assignments only
func (engine *engine) withinBudget() bool {
	if !engine.assignment.Complete() {
		return false
	}
	return engine.itinerary.Budget().Contains(model.TotalCost(engine.flights()))
}

func (engine *engine) flights() []model.Flight {
	return lo.Map(engine.assignment, func(slot Slot, _ int) model.Flight { return slot.Flight })
}
