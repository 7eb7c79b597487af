package engine

import (
	"onitama/game"

	"golang.org/x/exp/rand"
)

// NewGame deals five distinct cards on the standard setup, seen by
// Player1. The floating card's stamp decides who starts.
func NewGame(rng *rand.Rand) game.GameState {
	deck := game.AllCardTypes()
	order := rng.Perm(len(deck))
	dealt := make([]game.CardType, 2*game.HandSize+1)
	for i := range dealt {
		dealt[i] = deck[order[i]]
	}

	fifth := dealt[2*game.HandSize]
	starter := game.Stamp(fifth)
	return game.GameState{
		CurrentlyPlaying: starter,
		MyHand:           orient(dealt[:game.HandSize], game.Player1),
		OpponentsHand:    orient(dealt[game.HandSize:2*game.HandSize], game.Player2),
		FifthCard:        game.OrientedFor(fifth, starter),
		Pieces:           standardSetup(),
		Me:               game.Player1,
	}
}

func orient(types []game.CardType, holder game.Player) []game.Card {
	cards := make([]game.Card, len(types))
	for i, t := range types {
		cards[i] = game.OrientedFor(t, holder)
	}
	return cards
}

// standardSetup puts each side on its home row with the master on its
// temple.
func standardSetup() []game.Piece {
	pieces := make([]game.Piece, 0, 2*game.BoardSize)
	for _, owner := range []game.Player{game.Player1, game.Player2} {
		temple := owner.Temple()
		for x := 0; x < game.BoardSize; x++ {
			pieceType := game.Pawn
			if x == temple.X {
				pieceType = game.Master
			}
			pieces = append(pieces, game.Piece{
				Owner:    owner,
				Type:     pieceType,
				Position: game.Position{X: x, Y: temple.Y},
			})
		}
	}
	return pieces
}
