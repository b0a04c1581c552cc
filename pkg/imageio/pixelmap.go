package imageio

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"lsbattack/pkg/models"
)

// LoadPixelMap decodes filePath into a combined height x width x channel map
func LoadPixelMap(filePath string) (models.PixelMap, error) {
	img, _, err := Decode(filePath)
	if err != nil {
		return models.PixelMap{}, err
	}
	return ToPixelMap(img), nil
}

// ToPixelMap copies a decoded image into a PixelMap.
// Palette images are expanded to RGB.
func ToPixelMap(img image.Image) models.PixelMap {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	channels := ChannelCount(img)
	if _, ok := img.(*image.Paletted); ok {
		channels = 3
	}

	pm := models.NewPixelMap(width, height, channels)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			x, y := bounds.Min.X+col, bounds.Min.Y+row
			if channels == 1 {
				pm.Set(row, col, 0, color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y)
				continue
			}
			c := at(img, x, y)
			pm.Set(row, col, 0, c.R)
			pm.Set(row, col, 1, c.G)
			pm.Set(row, col, 2, c.B)
			if channels == 4 {
				pm.Set(row, col, 3, c.A)
			}
		}
	}
	return pm
}

// ToImage converts a PixelMap back into an image for encoding.
// Maps with 1, 3 or 4 channels are supported.
func ToImage(pm models.PixelMap) (image.Image, error) {
	rect := image.Rect(0, 0, pm.Width, pm.Height)

	switch pm.Channels {
	case 1:
		img := image.NewGray(rect)
		for row := 0; row < pm.Height; row++ {
			copy(img.Pix[row*img.Stride:], pm.Pix[row*pm.Width:(row+1)*pm.Width])
		}
		return img, nil
	case 3:
		img := image.NewRGBA(rect)
		for row := 0; row < pm.Height; row++ {
			for col := 0; col < pm.Width; col++ {
				img.SetRGBA(col, row, color.RGBA{
					R: pm.At(row, col, 0),
					G: pm.At(row, col, 1),
					B: pm.At(row, col, 2),
					A: 255,
				})
			}
		}
		return img, nil
	case 4:
		img := image.NewNRGBA(rect)
		for row := 0; row < pm.Height; row++ {
			copy(img.Pix[row*img.Stride:], pm.Pix[row*pm.Width*4:(row+1)*pm.Width*4])
		}
		return img, nil
	default:
		return nil, fmt.Errorf("cannot encode pixel map with %d channels", pm.Channels)
	}
}

// SavePNG encodes pm as a PNG file at filePath
func SavePNG(filePath string, pm models.PixelMap) error {
	img, err := ToImage(pm)
	if err != nil {
		return err
	}

	out, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := png.Encode(out, img); err != nil {
		out.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
