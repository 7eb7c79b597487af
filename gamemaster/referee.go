package gamemaster

import (
	"errors"
	"fmt"

	"onitama/game"

	"golang.org/x/exp/slices"
)

var (
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrIllegalMove = errors.New("illegal move")
)

// Referee owns the authoritative state of a local game. The state is kept
// from Player1's point of view.
type Referee struct {
	state    game.GameState
	moves    []game.Move
	gameOver bool
}

func NewReferee(state game.GameState) (*Referee, error) {
	if err := state.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create referee: %w", err)
	}
	return &Referee{
		state:    perspective(state, game.Player1),
		gameOver: game.IsTerminal(state),
	}, nil
}

// State returns a copy of the authoritative state.
func (r *Referee) State() game.GameState {
	return r.state.Copy()
}

// View returns the state as seen by p, with p's cards in MyHand.
func (r *Referee) View(p game.Player) game.GameState {
	return perspective(r.state, p)
}

// Moves returns the moves played so far.
func (r *Referee) Moves() []game.Move {
	return slices.Clone(r.moves)
}

func (r *Referee) Winner() (game.Player, bool) {
	return game.Winner(r.state)
}

// Play applies move for the side to move.
func (r *Referee) Play(move game.Move) error {
	if r.gameOver {
		return ErrGameOver
	}
	if move == nil || !slices.Contains(r.state.LegalMoves(), move) {
		return fmt.Errorf("%w: %v by %s", ErrIllegalMove, move, r.state.CurrentlyPlaying)
	}

	r.state = r.state.Play(move)
	r.moves = append(r.moves, move)
	r.gameOver = game.IsTerminal(r.state)
	return nil
}

func perspective(state game.GameState, p game.Player) game.GameState {
	view := state.Copy()
	if view.Me != p {
		view.MyHand, view.OpponentsHand = view.OpponentsHand, view.MyHand
		view.Me = p
	}
	return view
}
