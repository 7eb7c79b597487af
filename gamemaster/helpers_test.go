package gamemaster

import "onitama/game"

func pawn(owner game.Player, x, y int) game.Piece {
	return game.Piece{Owner: owner, Type: game.Pawn, Position: game.Position{X: x, Y: y}}
}

func master(owner game.Player, x, y int) game.Piece {
	return game.Piece{Owner: owner, Type: game.Master, Position: game.Position{X: x, Y: y}}
}

// newState deals Monkey and Elephant to Player1 and Dragon and Rooster to
// Player2, seen by Player1 with Player1 to move.
func newState(pieces ...game.Piece) game.GameState {
	return game.GameState{
		CurrentlyPlaying: game.Player1,
		MyHand:           []game.Card{game.OrientedFor(game.Monkey, game.Player1), game.OrientedFor(game.Elephant, game.Player1)},
		OpponentsHand:    []game.Card{game.OrientedFor(game.Dragon, game.Player2), game.OrientedFor(game.Rooster, game.Player2)},
		FifthCard:        game.OrientedFor(game.Frog, game.Player1),
		Pieces:           pieces,
		Me:               game.Player1,
	}
}

func startingState() game.GameState {
	pieces := []game.Piece{}
	for _, owner := range []game.Player{game.Player1, game.Player2} {
		row := owner.Temple().Y
		for x := 0; x < game.BoardSize; x++ {
			if x == 2 {
				pieces = append(pieces, master(owner, x, row))
			} else {
				pieces = append(pieces, pawn(owner, x, row))
			}
		}
	}
	return newState(pieces...)
}
