package bitplane

import (
	"errors"
	"fmt"

	"lsbattack/pkg/models"
	"lsbattack/pkg/workerpool"
)

// Planes is the number of bit positions in an 8-bit intensity
const Planes = 8

// ErrInvalidBitplane is returned for a bit index outside [0, 7]
var ErrInvalidBitplane = errors.New("bitplane index must be in [0, 7]")

// IsSet reports whether value has a 1 at bit index bit, where index 0 is the most
// significant bit.
func IsSet(value uint8, bit int) bool {
	return value>>(7-uint(bit))&1 == 1
}

// Enhance returns a copy of src in which every intensity with a 1 at bit index bit is
// forced to 255. Intensities with a 0 keep their original value. src is not modified.
func Enhance(src models.PixelMap, bit int) (models.PixelMap, error) {
	if bit < 0 || bit >= Planes {
		return models.PixelMap{}, fmt.Errorf("%w (got %d)", ErrInvalidBitplane, bit)
	}

	out := src.Clone()
	for i, v := range out.Pix {
		if IsSet(v, bit) {
			out.Pix[i] = 255
		}
	}
	return out, nil
}

// EnhanceAll computes all eight planes concurrently, each from the untouched src.
// The result is indexed by bit index.
func EnhanceAll(src models.PixelMap, workers int) ([]models.PixelMap, error) {
	planes := make([]models.PixelMap, Planes)
	errs := make([]error, Planes)

	workerpool.Run(workers, Planes, func(bit int) {
		planes[bit], errs[bit] = Enhance(src, bit)
	})

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return planes, nil
}
