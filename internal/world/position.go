package world

// Position is a (row, column) cell address.
type Position struct {
	Row, Col int
}

// Delta is a row/column step.
type Delta struct {
	DRow, DCol int
}

// Cardinal steps, in the order monsters are scanned.
var (
	Up    = Delta{DRow: -1}
	Down  = Delta{DRow: 1}
	Left  = Delta{DCol: -1}
	Right = Delta{DCol: 1}
)

// Add returns p moved by d.
func (p Position) Add(d Delta) Position {
	return Position{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}
