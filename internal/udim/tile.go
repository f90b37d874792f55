package udim

import (
	"fmt"
	"math"
)

// relocateBelow is the coverage threshold of the tile correction: the
// initial guess is abandoned only when it covers less than 49% of the
// island's bounding box and some neighbor strictly beats it. The value was
// tuned against the bbox coverage proxy below; do not "improve" either
// without retuning the other.
const relocateBelow = 0.49

// Tile addresses one integer unit cell of flipped UV space. Tile (0,0)
// covers u in [0,1), v in [0,1).
type Tile struct {
	U, V int
}

func (t Tile) String() string {
	return fmt.Sprintf("%d_%d", t.U, t.V)
}

// Compare orders tiles by (U, V) ascending. The batch relies on this order
// to assign palette colors reproducibly.
func (t Tile) Compare(o Tile) int {
	if t.U != o.U {
		return t.U - o.U
	}
	return t.V - o.V
}

// AssignTile maps island bounds to exactly one UDIM tile.
//
// The initial guess is the tile containing the bbox center. Each candidate
// tile in the 3x3 neighborhood around the guess is scored by the product of
// the 1-D overlap fractions between the bbox and the tile cell on each axis,
// a cheap proxy for the area fraction of the bbox inside the cell. The guess
// is only displaced when it scores below relocateBelow and a neighbor
// strictly beats it; ties always keep the guess.
func AssignTile(b Bounds) Tile {
	guess := Tile{
		U: int(math.Floor(b.CenterU)),
		V: int(math.Floor(b.CenterV)),
	}

	home := coverage(b, guess)
	best := home
	bestTile := guess

	for du := -1; du <= 1; du++ {
		for dv := -1; dv <= 1; dv++ {
			cand := Tile{U: guess.U + du, V: guess.V + dv}
			if f := coverage(b, cand); f > best {
				best = f
				bestTile = cand
			}
		}
	}

	if home < relocateBelow && bestTile != guess {
		return bestTile
	}
	return guess
}

// coverage scores how much of the bbox falls inside the cell of t.
func coverage(b Bounds, t Tile) float64 {
	return axisOverlap(b.MinU, b.MaxU, t.U) * axisOverlap(b.MinV, b.MaxV, t.V)
}

// axisOverlap returns the fraction of [min, max] covered by the unit cell
// starting at tile coordinate tc. A zero-length interval scores 0 rather
// than dividing by zero.
func axisOverlap(min, max float64, tc int) float64 {
	total := max - min
	if total <= 0 {
		return 0
	}
	c := math.Min(max, float64(tc)+1) - math.Max(min, float64(tc))
	if c < 0 {
		c = 0
	}
	return c / total
}
