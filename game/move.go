package game

import "fmt"

// Move is either a Play or a Pass. Both exchange the named card with the
// floating card.
type Move interface {
	Card() CardType
}

// Play moves the piece on From to To using UsedCard.
type Play struct {
	UsedCard CardType `json:"UsedCard"`
	From     Position `json:"From"`
	To       Position `json:"To"`
}

// Pass gives up moving but still hands UsedCard over. Only legal when the
// side to move has no Play.
type Pass struct {
	UsedCard CardType `json:"UsedCard"`
}

func (p Play) Card() CardType {
	return p.UsedCard
}

func (p Play) String() string {
	return fmt.Sprintf("%s %s -> %s", p.UsedCard, p.From, p.To)
}

func (p Pass) Card() CardType {
	return p.UsedCard
}

func (p Pass) String() string {
	return fmt.Sprintf("%s pass", p.UsedCard)
}
