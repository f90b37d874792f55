// Package scene discovers mesh files on disk and loads them through the
// format loaders.
package scene

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"udim-splitter/internal/gltfmesh"
	"udim-splitter/internal/mesh"
	"udim-splitter/internal/obj"
)

// Scan walks dir and returns all supported mesh files (.gltf, .glb, .obj),
// sorted for stable batch order.
func Scan(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".gltf", ".glb", ".obj":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scene: scan %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// LoadFile loads all meshes from one file, dispatching on extension.
func LoadFile(path string) ([]*mesh.Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gltf", ".glb":
		return gltfmesh.Load(path)
	case ".obj":
		return obj.Load(path)
	default:
		return nil, fmt.Errorf("scene: unsupported file type: %s", path)
	}
}
