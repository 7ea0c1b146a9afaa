package task

import "fmt"

// Coordinate is a pixel position; Column grows to the right and Row grows downward from the top left.
type Coordinate struct {
	Column int
	Row    int
}

func (c *Coordinate) String() string {
	output := "{Coordinate "
	output += fmt.Sprintf("Column: %d ", c.Column)
	output += fmt.Sprintf("Row: %d}", c.Row)
	return output
}
