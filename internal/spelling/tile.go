package spelling

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// Tile is one selectable letter of the pool. Two tiles bearing the same
// character are still distinct: each has its own ID and is consumed on its
// own.
type Tile struct {
	ID   string
	Char rune
}

// buildTiles creates one tile per rune of key, in key order.
func buildTiles(key []rune, newID func() string) []Tile {
	tiles := make([]Tile, len(key))
	for i, r := range key {
		tiles[i] = Tile{ID: newID(), Char: r}
	}
	return tiles
}

// shuffle applies a Fisher–Yates permutation in place: for i from the last
// index down to 1, swap with a uniformly chosen index in [0, i].
func shuffle(tiles []Tile, intN func(int) int) {
	for i := len(tiles) - 1; i > 0; i-- {
		j := intN(i + 1)
		tiles[i], tiles[j] = tiles[j], tiles[i]
	}
}

func defaultIntN(rng *rand.Rand) func(int) int {
	if rng == nil {
		return rand.IntN
	}
	return rng.IntN
}

func newTileID() string {
	return uuid.NewString()
}
