// Package preview renders a mesh's UV layout as an image, with every
// polygon filled in the pastel color of its assigned UDIM tile.
package preview

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"udim-splitter/internal/mesh"
	"udim-splitter/internal/palette"
	"udim-splitter/internal/splitter"
	"udim-splitter/internal/udim"
)

var (
	background = color.NRGBA{255, 255, 255, 255}
	gridColor  = color.NRGBA{90, 90, 90, 255}
	// Polygons whose island had no valid UV bounds still get drawn, in a
	// neutral gray, so holes in the layout stay visible.
	unassigned = palette.Color{R: 0.78, G: 0.78, B: 0.78}
)

// Render draws the UV layout of m at tileSize pixels per tile unit,
// rasterized at tileSize*supersample and downsampled for clean edges. The
// view covers the bounding range of all tiles present in res.Groups, padded
// to at least tile (0,0).
func Render(m *mesh.Mesh, res splitter.Result, colors map[udim.Tile]palette.Color, tileSize, supersample int) *image.NRGBA {
	if supersample < 1 {
		supersample = 1
	}

	minTU, minTV, maxTU, maxTV := 0, 0, 0, 0
	polyColor := make([]palette.Color, m.PolygonCount())
	assigned := make([]bool, m.PolygonCount())
	for t, polys := range res.Groups {
		minTU = min(minTU, t.U)
		minTV = min(minTV, t.V)
		maxTU = max(maxTU, t.U)
		maxTV = max(maxTV, t.V)
		for _, p := range polys {
			polyColor[p] = colors[t]
			assigned[p] = true
		}
	}

	tilesU := maxTU - minTU + 1
	tilesV := maxTV - minTV + 1
	ss := tileSize * supersample
	w, h := tilesU*ss, tilesV*ss

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	fill(img, background)

	// Flipped v is a bottom-up axis, so higher UDIM rows must render
	// above lower ones: map v against the top edge of the tile range.
	toPx := func(c mesh.UV) (float64, float64) {
		u := c.U
		v := 1.0 - c.V
		return (u - float64(minTU)) * float64(ss), (float64(maxTV+1) - v) * float64(ss)
	}

	for i := 0; m.HasUVLayer() && i < m.PolygonCount(); i++ {
		col := unassigned
		if assigned[i] {
			col = polyColor[i]
		}
		nrgba := toNRGBA(col)

		corners := m.CornerUVs(i)
		var px, py [4]float64
		for c, uv := range corners {
			px[c], py[c] = toPx(uv)
		}

		fillTriangle(img, px[0], py[0], px[1], py[1], px[2], py[2], nrgba)
		if len(corners) == 4 {
			fillTriangle(img, px[0], py[0], px[2], py[2], px[3], py[3], nrgba)
		}
	}

	drawGrid(img, ss, supersample)

	if supersample > 1 {
		img = downsample(img, tilesU*tileSize, tilesV*tileSize)
	}
	return img
}

// fillTriangle rasterizes one flat-colored triangle with the edge-function
// loop: bounding box scan plus barycentric inside test.
func fillTriangle(img *image.NRGBA, x0, y0, x1, y1, x2, y2 float64, col color.NRGBA) {
	b := img.Bounds()

	minX := int(math.Floor(math.Min(math.Min(x0, x1), x2)))
	maxX := int(math.Ceil(math.Max(math.Max(x0, x1), x2)))
	minY := int(math.Floor(math.Min(math.Min(y0, y1), y2)))
	maxY := int(math.Ceil(math.Max(math.Max(y0, y1), y2)))

	minX = max(minX, b.Min.X)
	minY = max(minY, b.Min.Y)
	maxX = min(maxX, b.Max.X-1)
	maxY = min(maxY, b.Max.Y-1)
	if minX > maxX || minY > maxY {
		return
	}

	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-9 && det < 1e-9 {
		return
	}
	invDet := 1.0 / det
	dy12, dx21 := y1-y2, x2-x1
	dy20, dx02 := y2-y0, x0-x2

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1
			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}
			img.SetNRGBA(sx, sy, col)
		}
	}
}

// drawGrid overlays the tile boundaries at every integer UV unit.
func drawGrid(img *image.NRGBA, ss, supersample int) {
	b := img.Bounds()
	thick := supersample
	for x := 0; x < b.Max.X; x += ss {
		for t := 0; t < thick; t++ {
			for y := 0; y < b.Max.Y; y++ {
				img.SetNRGBA(x+t, y, gridColor)
			}
		}
	}
	for y := 0; y < b.Max.Y; y += ss {
		for t := 0; t < thick; t++ {
			for x := 0; x < b.Max.X; x++ {
				img.SetNRGBA(x, y+t, gridColor)
			}
		}
	}
}

// downsample scales the supersampled render to its final size with
// CatmullRom filtering. The render is fully opaque so no premultiplication
// pass is needed.
func downsample(img *image.NRGBA, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

func fill(img *image.NRGBA, col color.NRGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetNRGBA(x, y, col)
		}
	}
}

func toNRGBA(c palette.Color) color.NRGBA {
	return color.NRGBA{
		R: clamp255(c.R * 255),
		G: clamp255(c.G * 255),
		B: clamp255(c.B * 255),
		A: 255,
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
