package aco

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"
)

// Report writes the best tour, its cost and the pheromone matrix to w.
//
//	Best path: 0 -> 2 -> 1
//	Best path labels: A -> C -> B     (only when labels were given)
//	Best path distance: 17
//	Pheromones:
//	⎡...⎤
//
// Before the first Run the best path is empty and the distance is +Inf.
func (c *Colony) Report(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Best path: %s\n", c.best); err != nil {
		return err
	}
	if c.labels != nil {
		if _, err := fmt.Fprintf(w, "Best path labels: %s\n", c.best.Format(c.labels)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Best path distance: %v\n", c.bestCost); err != nil {
		return err
	}

	pher := mat.NewDense(c.n, c.n, c.pher.RawData())
	_, err := fmt.Fprintf(w, "Pheromones:\n%v\n", mat.Formatted(pher, mat.Squeeze()))

	return err
}

// Cities writes one "index: label" line per city. Without labels the index
// doubles as the name.
func (c *Colony) Cities(w io.Writer) error {
	if _, err := io.WriteString(w, "Cities:\n"); err != nil {
		return err
	}
	var i int
	for i = 0; i < c.n; i++ {
		label := fmt.Sprint(i)
		if c.labels != nil {
			label = c.labels[i]
		}
		if _, err := fmt.Fprintf(w, "%d: %s\n", i, label); err != nil {
			return err
		}
	}

	return nil
}
