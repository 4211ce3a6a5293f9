package model

import "fmt"

type Flight struct {
	Origin      string
	Destination string
	Day         int
	Price       int
}

func (flight Flight) Route() Route {
	return Route{Origin: flight.Origin, Destination: flight.Destination}
}

// Field order matches the input line: origin, destination, day, price
func (flight Flight) String() string {
	return fmt.Sprintf("%v %v %v %v", flight.Origin, flight.Destination, flight.Day, flight.Price)
}

// Route groups flights sharing the same origin and destination
type Route struct {
	Origin      string
	Destination string
}

func (route Route) String() string {
	return fmt.Sprintf("%v->%v", route.Origin, route.Destination)
}

// StayWindow is the inclusive range of days allowed between a leg's flight and the next leg's flight
type StayWindow struct {
	Min int
	Max int
}

func (window StayWindow) Contains(gap int) bool {
	return window.Min <= gap && gap <= window.Max
}

// Budget is the inclusive range of acceptable total trip prices
type Budget struct {
	Min int
	Max int
}

func (budget Budget) Contains(cost int) bool {
	return budget.Min <= cost && cost <= budget.Max
}

type Leg struct {
	Index int
	Route Route
	Stay  StayWindow
}
