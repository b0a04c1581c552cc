package spa

import (
	"errors"
	"fmt"
	"image"
	"time"

	"lsbattack/pkg/analyzer"
	"lsbattack/pkg/config"
	"lsbattack/pkg/imageio"
	"lsbattack/pkg/models"
)

// SPAAnalyzer implements the ImageAnalyzer interface with Sample Pairs Analysis
type SPAAnalyzer struct {
	analyzer.BaseAnalyzer
}

// NewSPAAnalyzer creates a new SPA analyzer
func NewSPAAnalyzer() *SPAAnalyzer {
	return &SPAAnalyzer{
		BaseAnalyzer: analyzer.NewBaseAnalyzer(
			"Sample Pairs Analysis",
			"Estimates the LSB change-rate of each colour plane from adjacent pixel pairs",
			[]string{"png", "bmp", "tiff", "jpeg", "webp", "gif"},
		),
	}
}

// Analyze loads the file, splits it into colour planes and analyses each of them
func (a *SPAAnalyzer) Analyze(filePath string, options analyzer.AnalysisOptions) (*models.AnalysisResult, error) {
	start := time.Now()

	load, err := imageio.LoadChannels(filePath)
	if err != nil {
		return nil, err
	}

	result, err := a.analyzeLoad(load, options)
	if err != nil {
		return nil, err
	}

	result.Filename = filePath
	if result.FileType == "" {
		result.FileType = load.Format
	}
	result.AnalysisTime = start
	result.AnalysisDuration = time.Since(start)
	return result, nil
}

// AnalyzeImage analyses an already decoded image
func (a *SPAAnalyzer) AnalyzeImage(img image.Image, options analyzer.AnalysisOptions) (*models.AnalysisResult, error) {
	if img == nil {
		return nil, errors.New("nil image provided")
	}

	start := time.Now()
	result, err := a.analyzeLoad(imageio.SplitChannels(img), options)
	if err != nil {
		return nil, err
	}
	result.AnalysisTime = start
	result.AnalysisDuration = time.Since(start)
	return result, nil
}

func (a *SPAAnalyzer) analyzeLoad(load imageio.Load, options analyzer.AnalysisOptions) (*models.AnalysisResult, error) {
	red, green, blue, ok := load.Channels()
	if !ok {
		return nil, load.Err()
	}

	threshold := options.Threshold
	if threshold <= 0 {
		threshold = config.DefaultThreshold
	}

	channels, err := AnalyzeChannels(red, green, blue, threshold, options.Workers)
	if err != nil {
		return nil, err
	}

	result := &models.AnalysisResult{
		FileType:  options.Format,
		Width:     load.Width,
		Height:    load.Height,
		Threshold: threshold,
		Channels:  channels,
		Findings:  []models.Finding{},
	}

	for _, c := range channels {
		if !c.Suspicious {
			continue
		}
		result.Suspicious = true
		result.AddFinding(
			fmt.Sprintf("Steganographic content in the %s plane", c.Channel),
			c.Channel, c.ChangeRate,
			fmt.Sprintf("change-rate=%.4f (>%.3f), estimated payload %.2f bpp", c.ChangeRate, threshold, c.EmbeddingRate))
	}

	return result, nil
}
