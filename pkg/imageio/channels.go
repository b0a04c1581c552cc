package imageio

import (
	"fmt"
	"image"

	"lsbattack/pkg/models"
)

// LoadKind tags the two possible outcomes of LoadChannels
type LoadKind int

const (
	// KindUnsupported means the image does not have exactly 3 channels
	KindUnsupported LoadKind = iota
	// KindChannels means the red, green and blue matrices are available
	KindChannels
)

func (k LoadKind) String() string {
	if k == KindChannels {
		return "Channels"
	}
	return "Unsupported"
}

// Load is the result of splitting an image into colour planes.
// Check Kind before calling Channels.
type Load struct {
	kind         LoadKind
	channelCount int
	red          models.PixelMatrix
	green        models.PixelMatrix
	blue         models.PixelMatrix
	Format       string
	Width        int
	Height       int
}

// Kind reports which case the result holds
func (l Load) Kind() LoadKind {
	return l.kind
}

// ChannelCount is the number of bands the source image decoded to
func (l Load) ChannelCount() int {
	return l.channelCount
}

// Channels returns the red, green and blue matrices. ok is false for an Unsupported result.
func (l Load) Channels() (red, green, blue models.PixelMatrix, ok bool) {
	if l.kind != KindChannels {
		return models.PixelMatrix{}, models.PixelMatrix{}, models.PixelMatrix{}, false
	}
	return l.red, l.green, l.blue, true
}

// Err returns nil for a Channels result and a wrapped ErrUnsupportedChannelLayout otherwise
func (l Load) Err() error {
	if l.kind == KindChannels {
		return nil
	}
	return fmt.Errorf("%w (got %d)", ErrUnsupportedChannelLayout, l.channelCount)
}

// LoadChannels decodes filePath and splits it into colour planes.
// The returned error covers I/O and decoding only; a wrong channel layout is reported
// through the Unsupported case.
func LoadChannels(filePath string) (Load, error) {
	img, format, err := Decode(filePath)
	if err != nil {
		return Load{}, err
	}
	l := SplitChannels(img)
	l.Format = format
	return l, nil
}

// SplitChannels splits a decoded image into its red, green and blue planes
func SplitChannels(img image.Image) Load {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	l := Load{
		kind:         KindUnsupported,
		channelCount: ChannelCount(img),
		Width:        width,
		Height:       height,
	}
	if l.channelCount != 3 {
		return l
	}

	red := models.NewPixelMatrix(width, height)
	green := models.NewPixelMatrix(width, height)
	blue := models.NewPixelMatrix(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := at(img, bounds.Min.X+x, bounds.Min.Y+y)
			red.Set(x, y, c.R)
			green.Set(x, y, c.G)
			blue.Set(x, y, c.B)
		}
	}

	l.kind = KindChannels
	l.red, l.green, l.blue = red, green, blue
	return l
}
