package filehandler

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// SupportedImageFormats maps file extensions to the decoder format names
var SupportedImageFormats = map[string]string{
	".png":  "png",
	".jpg":  "jpeg",
	".jpeg": "jpeg",
	".gif":  "gif",
	".bmp":  "bmp",
	".tif":  "tiff",
	".tiff": "tiff",
	".webp": "webp",
}

// net/http does not sniff TIFF
var tiffMagic = [][]byte{
	[]byte("II*\x00"),
	[]byte("MM\x00*"),
}

// DetectFileFormat detects the format of a file, first by extension and then by content
func DetectFileFormat(filePath string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	if format, ok := SupportedImageFormats[ext]; ok {
		return format, nil
	}

	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Read first 512 bytes to detect content type
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	for _, magic := range tiffMagic {
		if bytes.HasPrefix(buffer[:n], magic) {
			return "tiff", nil
		}
	}

	contentType := http.DetectContentType(buffer[:n])

	switch {
	case strings.Contains(contentType, "image/png"):
		return "png", nil
	case strings.Contains(contentType, "image/jpeg"):
		return "jpeg", nil
	case strings.Contains(contentType, "image/gif"):
		return "gif", nil
	case strings.Contains(contentType, "image/bmp"):
		return "bmp", nil
	case strings.Contains(contentType, "image/webp"):
		return "webp", nil
	default:
		return "", fmt.Errorf("unsupported file format: %s", contentType)
	}
}

// BitplaneFilename returns the output name for a zero-based bit index.
// Names are one-based: index 0 becomes output_bitplane(1).png.
func BitplaneFilename(outputDir string, bit int) string {
	return filepath.Join(outputDir, fmt.Sprintf("output_bitplane(%d).png", bit+1))
}

// EnsureDir creates dirPath and any missing parents
func EnsureDir(dirPath string) error {
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}
