package game

func pawn(owner Player, x, y int) Piece {
	return Piece{Owner: owner, Type: Pawn, Position: Position{X: x, Y: y}}
}

func master(owner Player, x, y int) Piece {
	return Piece{Owner: owner, Type: Master, Position: Position{X: x, Y: y}}
}

// newState deals Monkey and Elephant to Player1, Dragon and Rooster to
// Player2 and Frog as floating card, all oriented for their holder.
func newState(current, me Player, pieces ...Piece) GameState {
	mine := []Card{OrientedFor(Monkey, Player1), OrientedFor(Elephant, Player1)}
	theirs := []Card{OrientedFor(Dragon, Player2), OrientedFor(Rooster, Player2)}
	if me == Player2 {
		mine, theirs = theirs, mine
	}
	return GameState{
		CurrentlyPlaying: current,
		MyHand:           mine,
		OpponentsHand:    theirs,
		FifthCard:        OrientedFor(Frog, current),
		Pieces:           pieces,
		Me:               me,
	}
}

func startingPieces() []Piece {
	pieces := []Piece{}
	for _, owner := range []Player{Player1, Player2} {
		row := owner.Temple().Y
		for x := 0; x < BoardSize; x++ {
			if x == 2 {
				pieces = append(pieces, master(owner, x, row))
			} else {
				pieces = append(pieces, pawn(owner, x, row))
			}
		}
	}
	return pieces
}
