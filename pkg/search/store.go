package search

import (
	"slices"

	"github.com/limaJavier/itinerary/pkg/model"
)

type domainChange struct {
	leg    int
	domain []model.Flight // Contents before the change
}

// domainStore keeps the working domain of every leg and an undo trail.
// A stored domain is never written in place: replace installs a new slice and saves a copy of the old one
type domainStore struct {
	domains [][]model.Flight
	trail   []domainChange
}

func newDomainStore(itinerary *model.Itinerary) *domainStore {
	domains := make([][]model.Flight, itinerary.LegCount())
	for i := range domains {
		domains[i] = itinerary.Domain(i)
	}
	return &domainStore{
		domains: domains,
		trail:   make([]domainChange, 0, len(domains)),
	}
}

func (store *domainStore) domain(leg int) []model.Flight {
	return store.domains[leg]
}

func (store *domainStore) replace(leg int, domain []model.Flight) {
	store.trail = append(store.trail, domainChange{leg: leg, domain: slices.Clone(store.domains[leg])})
	store.domains[leg] = domain
}

// snapshot returns the current trail size to undo to
func (store *domainStore) snapshot() int {
	return len(store.trail)
}

func (store *domainStore) undo(to int) {
	for i := len(store.trail) - 1; i >= to; i-- {
		change := store.trail[i]
		store.domains[change.leg] = change.domain
		store.trail = store.trail[:i]
	}
}
