package bitplane

import (
	"errors"
	"image"

	"lsbattack/pkg/extractor"
	"lsbattack/pkg/filehandler"
	"lsbattack/pkg/imageio"
	"lsbattack/pkg/logger"
	"lsbattack/pkg/models"
)

// ExtractorName is the registry name of the visual attack
const ExtractorName = "Bitplane Extractor"

// BitplaneExtractor implements the ImageExtractor interface for the visual attack
type BitplaneExtractor struct {
	extractor.BaseExtractor
}

// NewBitplaneExtractor creates a new bitplane extractor
func NewBitplaneExtractor() *BitplaneExtractor {
	formats := []string{"png", "bmp", "tiff", "jpeg", "webp", "gif"}
	algorithms := []string{"bitplane-enhance"}

	return &BitplaneExtractor{
		BaseExtractor: extractor.NewBaseExtractor(ExtractorName, formats, algorithms),
	}
}

// Extract implements the DataExtractor interface
func (e *BitplaneExtractor) Extract(filePath string, options extractor.ExtractionOptions) (*models.ExtractionResult, error) {
	img, format, err := imageio.Decode(filePath)
	if err != nil {
		return nil, err
	}

	result, err := e.ExtractFromImage(img, options)
	if err != nil {
		return nil, err
	}
	result.FileType = format
	return result, nil
}

// ExtractFromImage enhances every bitplane of img and saves one PNG per plane
func (e *BitplaneExtractor) ExtractFromImage(img image.Image, options extractor.ExtractionOptions) (*models.ExtractionResult, error) {
	if img == nil {
		return nil, errors.New("nil image provided")
	}

	src := imageio.ToPixelMap(img)
	planes, err := EnhanceAll(src, options.Workers)
	if err != nil {
		return nil, err
	}

	outputDir := options.OutputDir
	if outputDir == "" {
		outputDir = "."
	}
	if err := filehandler.EnsureDir(outputDir); err != nil {
		return nil, err
	}

	result := &models.ExtractionResult{
		Algorithm: "bitplane-enhance",
		Planes:    len(planes),
		MimeType:  "image/png",
		Details: map[string]interface{}{
			"width":    src.Width,
			"height":   src.Height,
			"channels": src.Channels,
		},
	}

	for bit, plane := range planes {
		path := filehandler.BitplaneFilename(outputDir, bit)
		if err := imageio.SavePNG(path, plane); err != nil {
			return nil, err
		}
		logger.WithField("file", path).Debug("bitplane saved")
		result.OutputFiles = append(result.OutputFiles, path)
	}

	result.Success = true
	return result, nil
}
