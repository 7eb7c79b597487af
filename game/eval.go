package game

const (
	MasterValue = 100
	PawnValue   = 10
)

// Evaluator scores a state from player's perspective.
type Evaluator func(gs GameState, player Player) Score

// Winner reports the side that has already won: the only side with a master
// left, or the side whose master stands on the opposing temple. A board with
// no master at all has no winner and is scored on material.
func Winner(gs GameState) (Player, bool) {
	masters := gs.Masters()
	if len(masters) == 1 {
		return masters[0].Owner, true
	}
	for _, master := range masters {
		if onOpposingTemple(master) {
			return master.Owner, true
		}
	}
	return NoPlayer, false
}

// IsTerminal reports whether the game is over.
func IsTerminal(gs GameState) bool {
	_, over := Winner(gs)
	return over
}

// Evaluate scores gs for player: Win or Loss once the game is decided,
// otherwise the material balance. Position and mobility are not scored.
func Evaluate(gs GameState, player Player) Score {
	if winner, over := Winner(gs); over {
		if winner == player {
			return Win
		}
		return Loss
	}

	score := 0
	for _, piece := range gs.Pieces {
		score += pieceValue(piece, player)
	}
	return Value(score)
}

func onOpposingTemple(piece Piece) bool {
	return piece.IsMaster() && piece.Position == piece.Owner.Opponent().Temple()
}

func pieceValue(piece Piece, player Player) int {
	value := PawnValue
	if piece.IsMaster() {
		value = MasterValue
	}
	if piece.Owner == player {
		return value
	}
	return -value
}
