package game

import "fmt"

type PieceType int

const (
	Pawn PieceType = iota
	Master
)

var pieceTypeNames = map[PieceType]string{
	Pawn:   "Pawn",
	Master: "MasterPawn",
}

// Piece is a value: relocating it yields a new Piece.
type Piece struct {
	Owner    Player    `json:"Owner"`
	Type     PieceType `json:"Type"`
	Position Position  `json:"PositionOnBoard"`
}

// MoveTo returns a copy of the piece standing on pos.
func (p Piece) MoveTo(pos Position) Piece {
	p.Position = pos
	return p
}

func (p Piece) IsMaster() bool {
	return p.Type == Master
}

func (t PieceType) String() string {
	if name, ok := pieceTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("PieceType(%d)", int(t))
}

func (t PieceType) MarshalText() ([]byte, error) {
	name, ok := pieceTypeNames[t]
	if !ok {
		return nil, fmt.Errorf("unknown piece type %d", int(t))
	}
	return []byte(name), nil
}

func (t *PieceType) UnmarshalText(text []byte) error {
	for pieceType, name := range pieceTypeNames {
		if name == string(text) {
			*t = pieceType
			return nil
		}
	}
	return fmt.Errorf("unknown piece type %q", text)
}
