package udim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func bounds(minU, maxU, minV, maxV float64) Bounds {
	return Bounds{
		CenterU: (minU + maxU) * 0.5,
		CenterV: (minV + maxV) * 0.5,
		MinU:    minU, MaxU: maxU,
		MinV: minV, MaxV: maxV,
	}
}

func TestAssignTileFullyInsideCell(t *testing.T) {
	b := bounds(2.1, 2.9, 1.2, 1.8)
	assert.Equal(t, Tile{U: 2, V: 1}, AssignTile(b))
	assert.InDelta(t, 1.0, coverage(b, Tile{U: 2, V: 1}), 1e-12,
		"bbox inside one cell must score full coverage")
}

func TestAssignTileBorderMajorityStays(t *testing.T) {
	// u [0.9, 1.3], v [0, 1]: center (1.1, 0.5), guess tile (1,0) covers
	// 0.3/0.4 = 0.75 of the bbox on u, all of it on v. 0.75 >= 0.49 so
	// the guess stays even though the bbox leaks into tile (0,0).
	b := bounds(0.9, 1.3, 0, 1)
	assert.Equal(t, Tile{U: 1, V: 0}, AssignTile(b))
	assert.InDelta(t, 0.75, coverage(b, Tile{U: 1, V: 0}), 1e-12)
}

func TestAssignTileThresholdBoundary(t *testing.T) {
	// u [0.95, 1.05]: guess tile (1,0) scores exactly 0.5, just above the
	// relocation threshold, so it is kept.
	b := bounds(0.95, 1.05, 0, 1)
	assert.Equal(t, Tile{U: 1, V: 0}, AssignTile(b))
	assert.InDelta(t, 0.5, coverage(b, Tile{U: 1, V: 0}), 1e-12)
}

func TestAssignTileRelocatesLowCoverage(t *testing.T) {
	// Constructed case where the reported center disagrees with the bbox:
	// the center falls in tile (0,0) but the box lies entirely in tile
	// (1,0). The guess scores 0 < 0.49 and the neighbor scores 1, so the
	// island is relocated.
	b := Bounds{
		CenterU: 0.98, CenterV: 0.5,
		MinU: 1.02, MaxU: 1.9,
		MinV: 0.2, MaxV: 0.8,
	}
	assert.InDelta(t, 0.0, coverage(b, Tile{U: 0, V: 0}), 1e-12)
	assert.Equal(t, Tile{U: 1, V: 0}, AssignTile(b))
}

func TestAssignTileDegenerateBBoxKeepsGuess(t *testing.T) {
	// Zero-length axes score 0 everywhere; no neighbor can strictly beat
	// the guess, which must survive.
	b := Bounds{CenterU: 1.5, CenterV: 2.5, MinU: 1.5, MaxU: 1.5, MinV: 2.5, MaxV: 2.5}
	assert.Equal(t, Tile{U: 1, V: 2}, AssignTile(b))
}

func TestAssignTileNegativeTiles(t *testing.T) {
	b := bounds(-1.9, -1.1, -0.8, -0.2)
	assert.Equal(t, Tile{U: -2, V: -1}, AssignTile(b))
}

func TestAxisOverlapZeroLength(t *testing.T) {
	assert.Equal(t, 0.0, axisOverlap(0.5, 0.5, 0))
}

func TestTileCompare(t *testing.T) {
	assert.Negative(t, Tile{U: 0, V: 5}.Compare(Tile{U: 1, V: 0}))
	assert.Negative(t, Tile{U: 1, V: 0}.Compare(Tile{U: 1, V: 1}))
	assert.Zero(t, Tile{U: 3, V: 3}.Compare(Tile{U: 3, V: 3}))
	assert.Positive(t, Tile{U: 2, V: 0}.Compare(Tile{U: 1, V: 9}))
}

func TestTileString(t *testing.T) {
	assert.Equal(t, "2_-1", Tile{U: 2, V: -1}.String())
}
