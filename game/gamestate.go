package game

import (
	"errors"
	"fmt"
)

// HandSize is the number of cards each side holds.
const HandSize = 2

// ErrMalformedState is wrapped by every Validate failure.
var ErrMalformedState = errors.New("malformed game state")

// GameState is a snapshot of a game as seen by Me. It is treated as
// immutable: Play returns a new snapshot with its own hands and pieces.
type GameState struct {
	CurrentlyPlaying Player  `json:"CurrentlyPlaying"`
	MyHand           []Card  `json:"MyHand"`
	OpponentsHand    []Card  `json:"OpponentsHand"`
	FifthCard        Card    `json:"FifthCard"`
	Pieces           []Piece `json:"Pieces"`

	// Me owns MyHand. It comes from the game info handshake, not from the
	// state message.
	Me Player `json:"-"`
}

// Copy returns a snapshot that shares no slices with gs. Card offsets are
// shared since cards are never modified in place.
func (gs GameState) Copy() GameState {
	myHand := make([]Card, len(gs.MyHand))
	copy(myHand, gs.MyHand)

	opponentsHand := make([]Card, len(gs.OpponentsHand))
	copy(opponentsHand, gs.OpponentsHand)

	pieces := make([]Piece, len(gs.Pieces))
	copy(pieces, gs.Pieces)

	return GameState{
		CurrentlyPlaying: gs.CurrentlyPlaying,
		MyHand:           myHand,
		OpponentsHand:    opponentsHand,
		FifthCard:        gs.FifthCard,
		Pieces:           pieces,
		Me:               gs.Me,
	}
}

// Hand returns the cards held by p.
func (gs GameState) Hand(p Player) []Card {
	if p == gs.Me {
		return gs.MyHand
	}
	return gs.OpponentsHand
}

// PieceAt returns the piece standing on pos, if any.
func (gs GameState) PieceAt(pos Position) (Piece, bool) {
	for _, piece := range gs.Pieces {
		if piece.Position == pos {
			return piece, true
		}
	}
	return Piece{}, false
}

// Masters returns the masters still on the board.
func (gs GameState) Masters() []Piece {
	var masters []Piece
	for _, piece := range gs.Pieces {
		if piece.IsMaster() {
			masters = append(masters, piece)
		}
	}
	return masters
}

// Validate checks the invariants the search relies on.
func (gs GameState) Validate() error {
	if !gs.Me.Valid() {
		return fmt.Errorf("%w: unknown own identity %s", ErrMalformedState, gs.Me)
	}
	if !gs.CurrentlyPlaying.Valid() {
		return fmt.Errorf("%w: unknown player to move %s", ErrMalformedState, gs.CurrentlyPlaying)
	}
	if len(gs.MyHand) != HandSize || len(gs.OpponentsHand) != HandSize {
		return fmt.Errorf("%w: hands hold %d and %d cards, want %d each",
			ErrMalformedState, len(gs.MyHand), len(gs.OpponentsHand), HandSize)
	}

	seen := make(map[CardType]bool, 2*HandSize+1)
	cards := append(append([]Card{gs.FifthCard}, gs.MyHand...), gs.OpponentsHand...)
	for _, card := range cards {
		if seen[card.Type] {
			return fmt.Errorf("%w: card %s is in play twice", ErrMalformedState, card.Type)
		}
		seen[card.Type] = true
	}

	occupied := make(map[Position]bool, len(gs.Pieces))
	masters := make(map[Player]int, 2)
	for _, piece := range gs.Pieces {
		if !piece.Owner.Valid() {
			return fmt.Errorf("%w: piece on %s has no owner", ErrMalformedState, piece.Position)
		}
		if !piece.Position.InBounds() {
			return fmt.Errorf("%w: piece off the board at %s", ErrMalformedState, piece.Position)
		}
		if occupied[piece.Position] {
			return fmt.Errorf("%w: two pieces on %s", ErrMalformedState, piece.Position)
		}
		occupied[piece.Position] = true
		if piece.IsMaster() {
			masters[piece.Owner]++
			if masters[piece.Owner] > 1 {
				return fmt.Errorf("%w: %s has more than one master", ErrMalformedState, piece.Owner)
			}
		}
	}
	return nil
}
