package game

import "fmt"

type CardType int

const (
	Tiger    CardType = iota // 0
	Crab                     // 1
	Monkey                   // 2
	Crane                    // 3
	Dragon                   // 4
	Elephant                 // 5
	Mantis                   // 6
	Boar                     // 7
	Frog                     // 8
	Goose                    // 9
	Horse                    // 10
	Eel                      // 11
	Rabbit                   // 12
	Rooster                  // 13
	Ox                       // 14
	Cobra                    // 15
)

var cardNames = []string{
	"Tiger", "Crab", "Monkey", "Crane", "Dragon", "Elephant", "Mantis", "Boar",
	"Frog", "Goose", "Horse", "Eel", "Rabbit", "Rooster", "Ox", "Cobra",
}

// Card is a movement pattern. Targets are relative to the moving piece and
// oriented for whoever currently holds the card.
type Card struct {
	Type    CardType   `json:"Type"`
	Targets []Position `json:"Targets"`
}

// NewCard builds a card from explicit offsets.
func NewCard(t CardType, targets ...Position) Card {
	return Card{Type: t, Targets: targets}
}

// Flip returns the card rotated by 180 degrees, as seen from the other side
// of the board. The receiver is left untouched.
func (c Card) Flip() Card {
	flipped := make([]Position, len(c.Targets))
	for i, target := range c.Targets {
		flipped[i] = target.Negate()
	}
	return Card{Type: c.Type, Targets: flipped}
}

func (c Card) String() string {
	return c.Type.String()
}

func (t CardType) String() string {
	if t < 0 || int(t) >= len(cardNames) {
		return fmt.Sprintf("CardType(%d)", int(t))
	}
	return cardNames[t]
}

func (t CardType) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(cardNames) {
		return nil, fmt.Errorf("unknown card type %d", int(t))
	}
	return []byte(cardNames[t]), nil
}

func (t *CardType) UnmarshalText(text []byte) error {
	for i, name := range cardNames {
		if name == string(text) {
			*t = CardType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown card type %q", text)
}
