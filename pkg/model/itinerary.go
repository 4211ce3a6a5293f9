package model

import (
	"cmp"
	"errors"
	"slices"

	"github.com/samber/lo"
)

// Itinerary holds the static trip data and the search-ready legs with their initial domains.
// It is never mutated after construction; solvers work on copies obtained through Domain
type Itinerary struct {
	cities  []string
	budget  Budget
	legs    []Leg
	catalog map[Route][]Flight
	domains [][]Flight
}

func NewItinerary(cities []string, budget Budget, stays []StayWindow, flights []Flight) (*Itinerary, error) {
	//** Validate configuration
	if len(cities) < 2 {
		return nil, configurationErrorf("cities", "at least two cities are required, got %d", len(cities))
	} else if len(stays) != len(cities)-1 {
		return nil, configurationErrorf("stays", "expected %d stay windows (one per leg), got %d", len(cities)-1, len(stays))
	} else if budget.Min > budget.Max {
		return nil, configurationErrorf("budget", "minimum price %d is greater than maximum price %d", budget.Min, budget.Max)
	}
	// The last leg's window is never read by the search, so it is not checked either
	for i, stay := range stays[:len(stays)-1] {
		if stay.Min > stay.Max {
			return nil, configurationErrorf("stays", "leg %d: minimum stay %d is greater than maximum stay %d", i, stay.Min, stay.Max)
		}
	}
	if _, ok := lo.Find(flights, func(flight Flight) bool { return flight.Origin == "" || flight.Destination == "" }); ok {
		return nil, &ConfigurationError{Field: "flights", Err: errors.New("flight with an empty origin or destination")}
	}

	//** Build route catalog (insertion order is kept inside every route)
	catalog := lo.GroupBy(flights, func(flight Flight) Route { return flight.Route() })

	//** Derive legs and their initial domains
	legs := make([]Leg, 0, len(cities)-1)
	domains := make([][]Flight, 0, len(cities)-1)
	for i := range len(cities) - 1 {
		route := Route{Origin: cities[i], Destination: cities[i+1]}
		legs = append(legs, Leg{Index: i, Route: route, Stay: stays[i]})

		domain := slices.Clone(catalog[route]) // Empty if the route has no flights
		slices.SortStableFunc(domain, func(a, b Flight) int { return cmp.Compare(a.Day, b.Day) })
		domains = append(domains, domain)
	}

	return &Itinerary{
		cities:  slices.Clone(cities),
		budget:  budget,
		legs:    legs,
		catalog: catalog,
		domains: domains,
	}, nil
}

func (itinerary *Itinerary) Cities() []string {
	return slices.Clone(itinerary.cities)
}

func (itinerary *Itinerary) Budget() Budget {
	return itinerary.budget
}

func (itinerary *Itinerary) Legs() []Leg {
	return slices.Clone(itinerary.legs)
}

func (itinerary *Itinerary) Leg(index int) Leg {
	return itinerary.legs[index]
}

func (itinerary *Itinerary) LegCount() int {
	return len(itinerary.legs)
}

// Domain returns a copy of the leg's initial candidate flights sorted by ascending day
func (itinerary *Itinerary) Domain(index int) []Flight {
	return slices.Clone(itinerary.domains[index])
}

// Flights returns a copy of the catalog entries for the given route, in insertion order
func (itinerary *Itinerary) Flights(route Route) []Flight {
	return slices.Clone(itinerary.catalog[route])
}

func (itinerary *Itinerary) FlightCount() int {
	return lo.SumBy(lo.Values(itinerary.catalog), func(flights []Flight) int { return len(flights) })
}

// EmptyLeg returns the first leg whose initial domain is empty. Such a leg makes the itinerary infeasible
func (itinerary *Itinerary) EmptyLeg() (int, bool) {
	index := slices.IndexFunc(itinerary.domains, func(domain []Flight) bool { return len(domain) == 0 })
	return index, index >= 0
}
