package model

import (
	"fmt"
	"io"
)

const NoSolution = "No Solution"

// WriteSolution prints one flight per leg followed by the total cost line
func WriteSolution(w io.Writer, flights []Flight) error {
	for _, flight := range flights {
		if _, err := fmt.Fprintln(w, flight); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Total Cost: %d\n", TotalCost(flights))
	return err
}

func WriteNoSolution(w io.Writer) error {
	_, err := fmt.Fprintln(w, NoSolution)
	return err
}
