package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedChannelLayout is returned when an image does not decode to exactly 3 channels
var ErrUnsupportedChannelLayout = errors.New("unsupported channel layout: image must have exactly 3 channels (no alpha)")

// Decode opens and decodes an image file, returning the decoder's format name
func Decode(filePath string) (image.Image, string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return img, format, nil
}

// ChannelCount reports how many bands the decoded image carries.
// Palette and grey images are single band; anything with an explicit alpha is four.
// Premultiplied RGBA (PNG truecolor, BMP, TIFF with associated alpha) is three only when
// every pixel is opaque.
func ChannelCount(img image.Image) int {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16, *image.Paletted:
		return 1
	case *image.RGBA:
		if !m.Opaque() {
			return 4
		}
		return 3
	case *image.RGBA64:
		if !m.Opaque() {
			return 4
		}
		return 3
	case *image.YCbCr:
		return 3
	case *image.NRGBA, *image.NRGBA64, *image.NYCbCrA, *image.CMYK:
		return 4
	}

	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		return 1
	case color.RGBAModel, color.RGBA64Model, color.YCbCrModel:
		return 3
	default:
		return 4
	}
}

// at returns the non-premultiplied 8-bit components of the pixel at (x, y)
func at(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}
