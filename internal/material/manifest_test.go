package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"udim-splitter/internal/palette"
	"udim-splitter/internal/splitter"
	"udim-splitter/internal/udim"
)

func TestBuild(t *testing.T) {
	t00 := udim.Tile{U: 0, V: 0}
	t10 := udim.Tile{U: 1, V: 0}

	out := &splitter.Output{
		Tiles: []udim.Tile{t00, t10},
		Colors: map[udim.Tile]palette.Color{
			t00: {R: 1, G: 0.8, B: 0.7},
			t10: {R: 0.7, G: 1, B: 0.8},
		},
		FallbackTiles: []udim.Tile{t10},
		Results: []splitter.Result{
			{
				Name:    "body",
				Islands: 2,
				Groups: map[udim.Tile][]int{
					t00: {0, 1},
					t10: {2},
				},
			},
			{Name: "bare", Skipped: true, Reason: "no UV layer"},
		},
	}

	man := Build(out)

	require.Len(t, man.Materials, 2)
	assert.Equal(t, "Mat_UDIM_0_0", man.Materials[0].Name)
	assert.Equal(t, [2]int{0, 0}, man.Materials[0].Tile)
	assert.Equal(t, [3]float64{1, 0.8, 0.7}, man.Materials[0].Color)
	assert.False(t, man.Materials[0].FallbackColor)
	assert.True(t, man.Materials[1].FallbackColor)

	require.Len(t, man.Meshes, 2)
	body := man.Meshes[0]
	require.Len(t, body.Selections, 2)
	assert.Equal(t, "body_UDIM_0_0", body.Selections[0].Name)
	assert.Equal(t, "Mat_UDIM_0_0", body.Selections[0].Material)
	assert.Equal(t, []int{0, 1}, body.Selections[0].Polygons)
	assert.Equal(t, "body_UDIM_1_0", body.Selections[1].Name)

	bare := man.Meshes[1]
	assert.True(t, bare.Skipped)
	assert.Equal(t, "no UV layer", bare.Reason)
	assert.Empty(t, bare.Selections)
}

func TestNaming(t *testing.T) {
	tile := udim.Tile{U: 3, V: -2}
	assert.Equal(t, "Mat_UDIM_3_-2", MaterialName(tile))
	assert.Equal(t, "head_UDIM_3_-2", SelectionName("head", tile))
}
