package game

import "fmt"

// BoardSize is the width and height of the square board.
const BoardSize = 5

// Position is a board square or, on a card, a relative offset from a piece.
type Position struct {
	X int `json:"X"`
	Y int `json:"Y"`
}

// Add translates p by offset.
func (p Position) Add(offset Position) Position {
	return Position{X: p.X + offset.X, Y: p.Y + offset.Y}
}

// Negate rotates an offset by 180 degrees.
func (p Position) Negate() Position {
	return Position{X: -p.X, Y: -p.Y}
}

// InBounds reports whether p lies on the 5x5 board.
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < BoardSize && p.Y >= 0 && p.Y < BoardSize
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
