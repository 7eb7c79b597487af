package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// GenerateMoves lists the plays available to player with hand, in piece
// order, then hand order, then target order. The search relies on this
// order: the first play is its fallback choice.
func GenerateMoves(gs GameState, hand []Card, player Player) []Play {
	var moves []Play
	for _, piece := range gs.Pieces {
		if piece.Owner != player {
			continue
		}
		for _, card := range hand {
			for _, target := range card.Targets {
				play := Play{
					UsedCard: card.Type,
					From:     piece.Position,
					To:       piece.Position.Add(target),
				}
				if isPlayValid(gs, play) {
					moves = append(moves, play)
				}
			}
		}
	}
	return moves
}

// isPlayValid only checks the destination: it must be on the board and not
// hold a piece of the side to move.
func isPlayValid(gs GameState, play Play) bool {
	if !play.To.InBounds() {
		return false
	}
	if piece, ok := gs.PieceAt(play.To); ok {
		return piece.Owner != gs.CurrentlyPlaying
	}
	return true
}

// LegalMoves returns every move the side to move may make: its plays, or a
// pass with each of its cards when it cannot move any piece.
func (gs GameState) LegalMoves() []Move {
	hand := gs.Hand(gs.CurrentlyPlaying)
	plays := GenerateMoves(gs, hand, gs.CurrentlyPlaying)

	moves := make([]Move, 0, max(len(plays), len(hand)))
	for _, play := range plays {
		moves = append(moves, play)
	}
	if len(moves) == 0 {
		for _, card := range hand {
			moves = append(moves, Pass{UsedCard: card.Type})
		}
	}
	return moves
}

// Play applies move for the side to move and returns the resulting state.
// The used card leaves the hand rotated by 180 degrees to become the new
// floating card, and the old floating card joins the hand as it is. Flipping
// on every hand-off keeps each card oriented for whoever holds it.
func (gs GameState) Play(move Move) GameState {
	next := gs.Copy()

	hand := &next.OpponentsHand
	if gs.CurrentlyPlaying == gs.Me {
		hand = &next.MyHand
	}
	i := slices.IndexFunc(*hand, func(c Card) bool { return c.Type == move.Card() })
	if i < 0 {
		panic(fmt.Sprintf("card %s is not in the hand of %s", move.Card(), gs.CurrentlyPlaying))
	}
	used := (*hand)[i]
	*hand = append(slices.Delete(*hand, i, i+1), gs.FifthCard)
	next.FifthCard = used.Flip()

	switch m := move.(type) {
	case Play:
		next.Pieces = movePiece(next.Pieces, m.From, m.To)
	case Pass:
	default:
		panic("unexpected move type")
	}

	next.CurrentlyPlaying = gs.CurrentlyPlaying.Opponent()
	return next
}

// movePiece captures whatever stands on to and relocates the piece on from
// to the end of pieces. pieces must not be shared.
func movePiece(pieces []Piece, from, to Position) []Piece {
	pieces = slices.DeleteFunc(pieces, func(p Piece) bool { return p.Position == to })
	i := slices.IndexFunc(pieces, func(p Piece) bool { return p.Position == from })
	if i < 0 {
		panic(fmt.Sprintf("no piece to move on %s", from))
	}
	mover := pieces[i]
	pieces = slices.Delete(pieces, i, i+1)
	return append(pieces, mover.MoveTo(to))
}
