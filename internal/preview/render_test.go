package preview

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"udim-splitter/internal/mesh"
	"udim-splitter/internal/palette"
	"udim-splitter/internal/splitter"
	"udim-splitter/internal/udim"
)

func TestRenderFillsPolygonWithTileColor(t *testing.T) {
	m := &mesh.Mesh{
		Name:  "plane",
		Quads: []bool{true},
		UVs: [][4]mesh.UV{{
			{U: 0.1, V: 0.1},
			{U: 0.9, V: 0.1},
			{U: 0.9, V: 0.9},
			{U: 0.1, V: 0.9},
		}},
	}
	t00 := udim.Tile{U: 0, V: 0}
	res := splitter.Result{
		Name:   "plane",
		Groups: map[udim.Tile][]int{t00: {0}},
	}
	colors := map[udim.Tile]palette.Color{t00: {R: 1, G: 0.5, B: 0.25}}

	img := Render(m, res, colors, 16, 1)
	require.Equal(t, 16, img.Bounds().Dx())
	require.Equal(t, 16, img.Bounds().Dy())

	assert.Equal(t, color.NRGBA{R: 255, G: 128, B: 64, A: 255}, img.NRGBAAt(8, 8),
		"polygon interior must carry the tile color")
	assert.Equal(t, gridColor, img.NRGBAAt(0, 8), "tile boundary must show the grid")
	assert.Equal(t, background, img.NRGBAAt(15, 15), "outside the polygon stays background")
}

func TestRenderSpansAllTiles(t *testing.T) {
	m := &mesh.Mesh{
		Name:  "two",
		Quads: []bool{true, true},
		UVs: [][4]mesh.UV{
			{{U: 0.2, V: 0.2}, {U: 0.8, V: 0.2}, {U: 0.8, V: 0.8}, {U: 0.2, V: 0.8}},
			{{U: 1.2, V: 0.2}, {U: 1.8, V: 0.2}, {U: 1.8, V: 0.8}, {U: 1.2, V: 0.8}},
		},
	}
	res := splitter.Result{
		Name: "two",
		Groups: map[udim.Tile][]int{
			{U: 0, V: 0}: {0},
			{U: 1, V: 0}: {1},
		},
	}
	colors := map[udim.Tile]palette.Color{
		{U: 0, V: 0}: {R: 1, G: 0.7, B: 0.7},
		{U: 1, V: 0}: {R: 0.7, G: 1, B: 0.7},
	}

	img := Render(m, res, colors, 8, 2)
	assert.Equal(t, 16, img.Bounds().Dx(), "two tiles wide")
	assert.Equal(t, 8, img.Bounds().Dy(), "one tile tall")
}

func TestRenderHigherUDIMRowDrawnAbove(t *testing.T) {
	// One quad per row: row 0 at flipped v in [0.2, 0.8], row 1 at
	// flipped v in [1.2, 1.8] (stored v is top-down, hence negative).
	m := &mesh.Mesh{
		Name:  "rows",
		Quads: []bool{true, true},
		UVs: [][4]mesh.UV{
			{{U: 0.2, V: 0.8}, {U: 0.8, V: 0.8}, {U: 0.8, V: 0.2}, {U: 0.2, V: 0.2}},
			{{U: 0.2, V: -0.2}, {U: 0.8, V: -0.2}, {U: 0.8, V: -0.8}, {U: 0.2, V: -0.8}},
		},
	}
	t00 := udim.Tile{U: 0, V: 0}
	t01 := udim.Tile{U: 0, V: 1}
	res := splitter.Result{
		Name:   "rows",
		Groups: map[udim.Tile][]int{t00: {0}, t01: {1}},
	}
	colors := map[udim.Tile]palette.Color{
		t00: {R: 1, G: 0.7, B: 0.7},
		t01: {R: 0.7, G: 0.7, B: 1},
	}

	img := Render(m, res, colors, 8, 1)
	require.Equal(t, 8, img.Bounds().Dx())
	require.Equal(t, 16, img.Bounds().Dy(), "two tile rows stacked")

	assert.Equal(t, toNRGBA(colors[t01]), img.NRGBAAt(4, 4),
		"row 1 must occupy the upper half")
	assert.Equal(t, toNRGBA(colors[t00]), img.NRGBAAt(4, 12),
		"row 0 must occupy the lower half")
}

func TestRenderUnassignedPolygonsDrawnGray(t *testing.T) {
	m := &mesh.Mesh{
		Name:  "mixed",
		Quads: []bool{true},
		UVs: [][4]mesh.UV{{
			{U: 0.1, V: 0.1},
			{U: 0.9, V: 0.1},
			{U: 0.9, V: 0.9},
			{U: 0.1, V: 0.9},
		}},
	}
	res := splitter.Result{Name: "mixed", Groups: map[udim.Tile][]int{}}

	img := Render(m, res, nil, 16, 1)
	assert.Equal(t, toNRGBA(unassigned), img.NRGBAAt(8, 8))
}
