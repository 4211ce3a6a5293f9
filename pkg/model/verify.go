package model

import "github.com/samber/lo"

// Verify checks that flights is a complete plan for the itinerary
func Verify(itinerary *Itinerary, flights []Flight) bool {
	if len(flights) != itinerary.LegCount() {
		return false
	}

	for i, flight := range flights {
		leg := itinerary.Leg(i)
		// Check that:
		// - Flight serves the leg's route
		// - Flight leaves strictly after every earlier flight (days are sorted, so comparing with the previous one suffices)
		// - The gap from the previous flight lies within the previous leg's stay window
		if flight.Route() != leg.Route {
			return false
		}
		if i > 0 {
			previous := flights[i-1]
			if flight.Day <= previous.Day || !itinerary.Leg(i-1).Stay.Contains(flight.Day-previous.Day) {
				return false
			}
		}
	}

	return itinerary.Budget().Contains(TotalCost(flights))
}

func TotalCost(flights []Flight) int {
	return lo.SumBy(flights, func(flight Flight) int { return flight.Price })
}
