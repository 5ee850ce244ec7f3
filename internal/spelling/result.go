package spelling

// Rejection explains why a submission had no effect.
type Rejection int

const (
	RejectNone Rejection = iota
	// RejectNotInWord: the character does not occur in the target.
	RejectNotInWord
	// RejectUnknownTile: the tile ID is not in the pool or bears another character.
	RejectUnknownTile
	// RejectNoTile: every tile with this character is already in use.
	RejectNoTile
	// RejectConsumed: the chosen tile already fills a position.
	RejectConsumed
	// RejectFull: nothing left to fill.
	RejectFull
)

func (r Rejection) String() string {
	switch r {
	case RejectNone:
		return "none"
	case RejectNotInWord:
		return "not-in-word"
	case RejectUnknownTile:
		return "unknown-tile"
	case RejectNoTile:
		return "no-tile"
	case RejectConsumed:
		return "consumed"
	case RejectFull:
		return "full"
	}
	return "unknown"
}

// Result describes the outcome of Session.Submit.
type Result struct {
	Accepted  bool
	Rejection Rejection
	Position  int
	TileID    string
	Correct   bool
	Completed bool
}

func rejected(r Rejection) Result {
	return Result{Rejection: r, Position: -1}
}
