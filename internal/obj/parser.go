// Package obj loads polygon meshes with their UV layer from Wavefront OBJ
// files. Only the directives the splitter needs are handled: o, v, vt, f.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"udim-splitter/internal/mesh"
)

// Load reads an OBJ file and returns one mesh per object ("o" directive),
// or a single mesh named after the file when the directive is absent.
func Load(path string) ([]*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("obj: open %s: %w", path, err)
	}
	defer f.Close()

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	meshes, err := Parse(f, base)
	if err != nil {
		return nil, fmt.Errorf("obj: parse %s: %w", path, err)
	}
	return meshes, nil
}

// builder accumulates one object's polygons while scanning.
type builder struct {
	name  string
	quads []bool
	uvs   [][4]mesh.UV
	sawVT bool
}

func (b *builder) finish() *mesh.Mesh {
	if len(b.quads) == 0 {
		return nil
	}
	m := &mesh.Mesh{Name: b.name, Quads: b.quads}
	// No face referenced a vt index: the object has no UV layer.
	if b.sawVT {
		m.UVs = b.uvs
	}
	return m
}

// Parse reads OBJ data from r. defaultName names the mesh when no "o"
// directive appears. Faces with more than four corners are fan-split into
// triangles; face corners without a vt reference get the placeholder UV
// (-1,-1), which downstream treats as unmapped.
func Parse(r io.Reader, defaultName string) ([]*mesh.Mesh, error) {
	var (
		texcoords []mesh.UV
		meshes    []*mesh.Mesh
		cur       = &builder{name: defaultName}
		lineNo    int
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "o":
			if m := cur.finish(); m != nil {
				meshes = append(meshes, m)
			}
			name := defaultName
			if len(fields) > 1 {
				name = fields[1]
			}
			cur = &builder{name: name}

		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: short vt directive", lineNo)
			}
			u, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: vt u: %w", lineNo, err)
			}
			v, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: vt v: %w", lineNo, err)
			}
			// OBJ vt has a bottom-left origin (v grows upward, UDIM row 1
			// at v in [1,2)). Mesh storage carries top-down v that the
			// bounds pass re-flips, so convert here or upper rows would
			// flip to negative v and be dropped as unmapped.
			texcoords = append(texcoords, mesh.UV{U: u, V: 1 - v})

		case "f":
			corners := fields[1:]
			if len(corners) < 3 {
				return nil, fmt.Errorf("line %d: face with %d corners", lineNo, len(corners))
			}
			uvs := make([]mesh.UV, len(corners))
			for i, c := range corners {
				uv, used, err := cornerUV(c, texcoords)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				uvs[i] = uv
				if used {
					cur.sawVT = true
				}
			}
			cur.addFace(uvs)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if m := cur.finish(); m != nil {
		meshes = append(meshes, m)
	}
	return meshes, nil
}

// addFace stores one polygon: a quad as-is, anything else as a triangle
// fan. Triangles duplicate their third corner into the padding slot.
func (b *builder) addFace(uvs []mesh.UV) {
	if len(uvs) == 4 {
		b.quads = append(b.quads, true)
		b.uvs = append(b.uvs, [4]mesh.UV{uvs[0], uvs[1], uvs[2], uvs[3]})
		return
	}
	for i := 2; i < len(uvs); i++ {
		b.quads = append(b.quads, false)
		b.uvs = append(b.uvs, [4]mesh.UV{uvs[0], uvs[i-1], uvs[i], uvs[i]})
	}
}

// cornerUV resolves the vt reference of one face corner ("v", "v/vt",
// "v//vn" or "v/vt/vn"). used reports whether a vt index was present.
func cornerUV(corner string, texcoords []mesh.UV) (uv mesh.UV, used bool, err error) {
	uv = mesh.UV{U: -1, V: -1}

	parts := strings.Split(corner, "/")
	if len(parts) < 2 || parts[1] == "" {
		return uv, false, nil
	}

	idx, err := strconv.Atoi(parts[1])
	if err != nil {
		return uv, false, fmt.Errorf("face corner %q: %w", corner, err)
	}
	if idx < 0 {
		idx = len(texcoords) + idx + 1
	}
	if idx < 1 || idx > len(texcoords) {
		return uv, false, fmt.Errorf("face corner %q: vt index out of range", corner)
	}
	return texcoords[idx-1], true, nil
}
