package filehandler

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/tiff"
)

func TestDetectFileFormat_Extension(t *testing.T) {
	for path, want := range map[string]string{
		"a.PNG":  "png",
		"b.jpg":  "jpeg",
		"c.tiff": "tiff",
		"d.bmp":  "bmp",
	} {
		got, err := DetectFileFormat(path)
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		if got != want {
			t.Errorf("%s: got %q, want %q", path, got, want)
		}
	}
}

func TestDetectFileFormat_Content(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "noext")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := DetectFileFormat(path)
	if err != nil || got != "png" {
		t.Fatalf("got %q, %v; want png", got, err)
	}

	text := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(text, []byte("hello"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := DetectFileFormat(text); err == nil {
		t.Fatalf("expected error for text file")
	}
}

func TestDetectFileFormat_TIFFContent(t *testing.T) {
	var buf bytes.Buffer
	if err := tiff.Encode(&buf, image.NewGray(image.Rect(0, 0, 2, 2)), nil); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	dir := t.TempDir()

	for name, data := range map[string][]byte{
		"encoded":    buf.Bytes(),
		"big_endian": append([]byte("MM\x00*"), make([]byte, 12)...),
	} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		got, err := DetectFileFormat(path)
		if err != nil || got != "tiff" {
			t.Errorf("%s: got %q, %v; want tiff", name, got, err)
		}
	}
}

func TestBitplaneFilename(t *testing.T) {
	if got, want := BitplaneFilename("out", 0), filepath.Join("out", "output_bitplane(1).png"); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
	if got, want := BitplaneFilename(".", 7), "output_bitplane(8).png"; got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}
