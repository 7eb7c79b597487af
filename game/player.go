package game

import "fmt"

// Player identifies one of the two sides.
type Player int

const (
	NoPlayer Player = iota
	Player1
	Player2
)

var playerNames = map[Player]string{
	Player1: "Player1",
	Player2: "Player2",
}

// Opponent returns the other side. NoPlayer has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return NoPlayer
	}
}

// Temple returns the square p starts its master on. The opposing master
// standing there wins the game.
func (p Player) Temple() Position {
	if p == Player1 {
		return Position{X: 2, Y: 0}
	}
	return Position{X: 2, Y: BoardSize - 1}
}

func (p Player) Valid() bool {
	return p == Player1 || p == Player2
}

func (p Player) String() string {
	if name, ok := playerNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Player(%d)", int(p))
}

func (p Player) MarshalText() ([]byte, error) {
	name, ok := playerNames[p]
	if !ok {
		return nil, fmt.Errorf("unknown player %d", int(p))
	}
	return []byte(name), nil
}

func (p *Player) UnmarshalText(text []byte) error {
	for player, name := range playerNames {
		if name == string(text) {
			*p = player
			return nil
		}
	}
	return fmt.Errorf("unknown player %q", text)
}
