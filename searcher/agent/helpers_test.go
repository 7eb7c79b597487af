package agent

import "onitama/game"

func master(owner game.Player, x, y int) game.Piece {
	return game.Piece{Owner: owner, Type: game.Master, Position: game.Position{X: x, Y: y}}
}

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

// stuckState leaves Player1 without any play.
func stuckState() game.GameState {
	state := newState(master(game.Player1, 0, 4), master(game.Player2, 4, 0))
	state.MyHand = []game.Card{game.NewCard(game.Crab, game.Position{X: 0, Y: 1}), game.NewCard(game.Ox, game.Position{X: 0, Y: 2})}
	return state
}
