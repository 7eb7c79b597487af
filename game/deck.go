package game

// Offsets of every card as printed, from Player1's side of the board:
// +y is forward and -x is left.
var standardTargets = map[CardType][]Position{
	Tiger:    {{0, 2}, {0, -1}},
	Crab:     {{0, 1}, {-2, 0}, {2, 0}},
	Monkey:   {{-1, 1}, {1, 1}, {-1, -1}, {1, -1}},
	Crane:    {{0, 1}, {-1, -1}, {1, -1}},
	Dragon:   {{-2, 1}, {2, 1}, {-1, -1}, {1, -1}},
	Elephant: {{-1, 1}, {1, 1}, {-1, 0}, {1, 0}},
	Mantis:   {{-1, 1}, {1, 1}, {0, -1}},
	Boar:     {{0, 1}, {-1, 0}, {1, 0}},
	Frog:     {{-2, 0}, {-1, 1}, {1, -1}},
	Goose:    {{-1, 1}, {-1, 0}, {1, 0}, {1, -1}},
	Horse:    {{0, 1}, {-1, 0}, {0, -1}},
	Eel:      {{-1, 1}, {-1, -1}, {1, 0}},
	Rabbit:   {{2, 0}, {1, 1}, {-1, -1}},
	Rooster:  {{1, 1}, {1, 0}, {-1, 0}, {-1, -1}},
	Ox:       {{0, 1}, {1, 0}, {0, -1}},
	Cobra:    {{-1, 0}, {1, 1}, {1, -1}},
}

// Starting player stamped on each card. The side matching the stamp of the
// first floating card moves first.
var stamps = map[CardType]Player{
	Tiger: Player1, Crab: Player1, Monkey: Player1, Crane: Player1,
	Goose: Player1, Eel: Player1, Rabbit: Player1, Ox: Player1,
	Dragon: Player2, Elephant: Player2, Mantis: Player2, Boar: Player2,
	Frog: Player2, Horse: Player2, Rooster: Player2, Cobra: Player2,
}

// AllCardTypes lists the full deck.
func AllCardTypes() []CardType {
	types := make([]CardType, len(cardNames))
	for i := range types {
		types[i] = CardType(i)
	}
	return types
}

// StandardCard returns the card in Player1's orientation.
func StandardCard(t CardType) Card {
	targets, ok := standardTargets[t]
	if !ok {
		panic("unexpected card type")
	}
	return NewCard(t, append([]Position(nil), targets...)...)
}

// OrientedFor returns the card as it has to be held by p.
func OrientedFor(t CardType, p Player) Card {
	card := StandardCard(t)
	if p == Player2 {
		return card.Flip()
	}
	return card
}

// Stamp returns the starting player printed on the card.
func Stamp(t CardType) Player {
	return stamps[t]
}
