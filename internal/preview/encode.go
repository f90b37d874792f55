package preview

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Formats lists the supported preview encodings.
var Formats = []string{"webp", "tga"}

// Ext returns the file extension for a preview format, defaulting to webp.
func Ext(format string) string {
	if format == "tga" {
		return ".tga"
	}
	return ".webp"
}

// Save encodes img to path in the given format ("webp" or "tga"), creating
// parent directories as needed.
func Save(path string, img *image.NRGBA, format string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	defer f.Close()

	switch format {
	case "tga":
		err = tga.Encode(f, img)
	case "webp", "":
		err = nativewebp.Encode(f, img, nil)
	default:
		return fmt.Errorf("preview: unknown format %q", format)
	}
	if err != nil {
		return fmt.Errorf("preview: encode %s: %w", path, err)
	}
	return nil
}
