package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"udim-splitter/internal/config"
	"udim-splitter/internal/material"
	"udim-splitter/internal/mesh"
	"udim-splitter/internal/preview"
	"udim-splitter/internal/scene"
	"udim-splitter/internal/splitter"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	inputDir := flag.String("input", "", "Directory with .gltf/.glb/.obj files (default: cwd)")
	outputDir := flag.String("output", "", "Output directory (default: <input>/udim-split)")
	seed := flag.Uint64("seed", 0, "Random seed for reproducible colors (0 = random)")
	minDist := flag.Float64("mindist", 0, "Minimum RGB distance between tile colors (default: 0.28)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	noPreview := flag.Bool("nopreview", false, "Skip UV layout preview images")
	format := flag.String("format", "", "Preview format: webp or tga (default: webp)")
	size := flag.Int("size", 0, "Preview pixels per tile unit (default: 256)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		InputDir:     *inputDir,
		OutputDir:    *outputDir,
		MinColorDist: *minDist,
		Seed:         *seed,
		Workers:      *workers,
	})
	if *noPreview {
		cfg.SkipPreviews = true
	}
	if *format != "" {
		cfg.PreviewFormat = *format
	}
	if *size > 0 {
		cfg.PreviewSize = *size
	}

	// Discover and load meshes
	paths, err := scene.Scan(cfg.InputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var meshes []*mesh.Mesh
	for _, p := range paths {
		loaded, err := scene.LoadFile(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			continue
		}
		meshes = append(meshes, loaded...)
	}

	if len(meshes) == 0 {
		fmt.Println("Nothing to do: no meshes found.")
		os.Exit(0)
	}

	var rng *rand.Rand
	if cfg.Seed > 0 {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}

	fmt.Printf("UDIM Material Splitter\n")
	fmt.Printf("Meshes: %d, Workers: %d\n", len(meshes), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	out := splitter.Run(splitter.Config{
		MinColorDist: cfg.MinColorDist,
		Rand:         rng,
		Workers:      cfg.Workers,
	}, meshes)

	ok := 0
	for _, res := range out.Results {
		if res.Skipped {
			fmt.Printf("[SKIP] %s - %s\n", res.Name, res.Reason)
			continue
		}
		ok++
		fmt.Printf("[OK] %s: %d islands, %d tiles\n", res.Name, res.Islands, len(res.Groups))
	}
	for _, t := range out.FallbackTiles {
		fmt.Printf("Warning: palette saturated, tile %s reuses a close color\n", t)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := material.Write(manifestPath, out); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing manifest: %v\n", err)
		os.Exit(1)
	}

	if !cfg.SkipPreviews {
		for i, res := range out.Results {
			if res.Skipped {
				continue
			}
			img := preview.Render(meshes[i], res, out.Colors, cfg.PreviewSize, cfg.Supersample)
			name := res.Name + preview.Ext(cfg.PreviewFormat)
			if err := preview.Save(filepath.Join(cfg.OutputDir, "previews", name), img, cfg.PreviewFormat); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			}
		}
	}

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done: %d/%d meshes, %d tiles in %.2fs\n",
		ok, len(meshes), len(out.Tiles), time.Since(start).Seconds())
}
