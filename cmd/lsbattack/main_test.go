package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"lsbattack/pkg/config"
)

func writeImage(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return path
}

func testConfig(outputDir string) *config.Config {
	cfg := config.Default()
	cfg.OutputDir = outputDir
	cfg.Workers = 2
	return cfg
}

func TestRunVisualAttack_WritesPlanes(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	path := writeImage(t, dir, "in.png", img)

	out := filepath.Join(dir, "planes")
	if !runVisualAttack(path, testConfig(out)) {
		t.Fatalf("runVisualAttack returned false")
	}
	for i := 1; i <= 8; i++ {
		name := filepath.Join(out, fmt.Sprintf("output_bitplane(%d).png", i))
		if _, err := os.Stat(name); err != nil {
			t.Errorf("stat %s: %v", name, err)
		}
	}
}

func TestRunSamplePairs_RejectsAlpha(t *testing.T) {
	dir := t.TempDir()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 3, A: 128})
		}
	}
	path := writeImage(t, dir, "alpha.png", img)

	if runSamplePairs(path, testConfig(dir)) {
		t.Fatalf("runSamplePairs accepted a four-channel image")
	}
}

func TestRunSamplePairs_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("plain text"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if runSamplePairs(path, testConfig(".")) {
		t.Fatalf("runSamplePairs accepted a text file")
	}
	if runVisualAttack(path, testConfig(".")) {
		t.Fatalf("runVisualAttack accepted a text file")
	}
}
