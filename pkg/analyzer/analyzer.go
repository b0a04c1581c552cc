package analyzer

import (
	"image"

	"lsbattack/pkg/models"
)

/*
Analyzer.go contains the interface and base implementation for statistical analyzers.
FileAnalyzer: interface implemented by every analyzer that works from a file path.
ImageAnalyzer: extends FileAnalyzer with analysis of an already decoded image.
BaseAnalyzer: name, description and supported formats shared by concrete analyzers.
AnalysisOptions: per-run settings such as the detection threshold and worker count.
*/

// AnalysisOptions holds configuration options for analysis
type AnalysisOptions struct {
	Format    string
	Threshold float64 // change-rate above which a channel is flagged
	Workers   int     // goroutines used for per-channel work
}

// FileAnalyzer is the interface that all file analyzers must implement
type FileAnalyzer interface {
	// CanAnalyze checks if this analyzer can handle the given format
	CanAnalyze(format string) bool

	// Analyze performs analysis on a file and returns results
	Analyze(filePath string, options AnalysisOptions) (*models.AnalysisResult, error)

	// Name returns the name of the analyzer
	Name() string

	// Description returns a detailed description of what the analyzer does
	Description() string

	// SupportedFormats returns a list of file formats this analyzer supports
	SupportedFormats() []string
}

// ImageAnalyzer is an interface for analyzers that work with image files
type ImageAnalyzer interface {
	FileAnalyzer

	// AnalyzeImage performs analysis directly on an image object
	AnalyzeImage(img image.Image, options AnalysisOptions) (*models.AnalysisResult, error)
}

// BaseAnalyzer provides common functionality for analyzers
type BaseAnalyzer struct {
	name        string
	description string
	formats     []string
}

// NewBaseAnalyzer creates a new BaseAnalyzer
func NewBaseAnalyzer(name, description string, formats []string) BaseAnalyzer {
	return BaseAnalyzer{
		name:        name,
		description: description,
		formats:     formats,
	}
}

// Name returns the analyzer name
func (b *BaseAnalyzer) Name() string {
	return b.name
}

// Description returns the analyzer description
func (b *BaseAnalyzer) Description() string {
	return b.description
}

// SupportedFormats returns the supported formats
func (b *BaseAnalyzer) SupportedFormats() []string {
	return b.formats
}

// CanAnalyze checks if the analyzer supports the given format
func (b *BaseAnalyzer) CanAnalyze(format string) bool {
	for _, f := range b.formats {
		if f == format {
			return true
		}
	}
	return false
}
