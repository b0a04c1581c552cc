// Package spa implements Sample Pairs Analysis, a statistical estimate of how many
// least significant bits of a colour channel were flipped by an embedding process.
//
// Pairs are formed from vertically adjacent pixels of each column. Every pair is
// assigned to X, Y or K; the estimate is the smaller root of
//
//	2K·p² + 2(2X − N)·p + (Y − X) = 0
//
// where N is the total number of pairs.
package spa

import (
	"errors"
	"math/cmplx"

	"lsbattack/pkg/models"
)

var (
	// ErrDegenerateAnalysis is returned when no pair falls in a shared LSB block (K = 0)
	ErrDegenerateAnalysis = errors.New("sample pairs analysis failed because K = 0")

	// ErrInvalidDimensions is returned for matrices too small to form a pair
	ErrInvalidDimensions = errors.New("invalid dimensions: need width >= 1 and height >= 2")
)

type pairClass int

const (
	classX pairClass = iota
	classY
	classK
	classNone
)

// classifyPair assigns (r, s) to the first matching set.
// When r != s one of X or Y always matches, so K only ever receives r == s and classNone
// is unreachable.
func classifyPair(r, s int) pairClass {
	even := s%2 == 0
	switch {
	case (even && r < s) || (!even && r > s):
		return classX
	case (even && r > s) || (!even && r < s):
		return classY
	case r/2 == s/2:
		return classK
	default:
		return classNone
	}
}

func validate(m models.PixelMatrix) error {
	if m.Width < 1 || m.Height < 2 || len(m.Pix) != m.Width*m.Height {
		return ErrInvalidDimensions
	}
	return nil
}

// Classify counts the X, Y and K pairs of a channel. Pairs are taken down each column:
// (At(i, j), At(i, j+1)) for i in [0, Width) and j in [0, Height-1).
func Classify(m models.PixelMatrix) (models.ClassificationCounts, error) {
	if err := validate(m); err != nil {
		return models.ClassificationCounts{}, err
	}

	counts := models.ClassificationCounts{Pairs: m.Width * (m.Height - 1)}
	for i := 0; i < m.Width; i++ {
		for j := 0; j < m.Height-1; j++ {
			switch classifyPair(int(m.At(i, j)), int(m.At(i, j+1))) {
			case classX:
				counts.X++
			case classY:
				counts.Y++
			case classK:
				counts.K++
			default:
				counts.Unclassified++
			}
		}
	}
	return counts, nil
}

// Solve returns the smaller root of the SPA quadratic for the given counts.
// Roots are compared by real part; a negative discriminant yields the shared real part.
func Solve(counts models.ClassificationCounts) (float64, error) {
	if counts.K == 0 {
		return 0, ErrDegenerateAnalysis
	}

	a := float64(2 * counts.K)
	b := float64(2 * (2*counts.X - counts.Pairs))
	c := float64(counts.Y - counts.X)
	d := b*b - 4*a*c

	p1, p2 := complex(-1, 0), complex(-1, 0)
	if a > 0 {
		sq := cmplx.Sqrt(complex(d, 0))
		p1 = (complex(-b, 0) + sq) / complex(2*a, 0)
		p2 = (complex(-b, 0) - sq) / complex(2*a, 0)
	}

	if real(p2) < real(p1) {
		return real(p2), nil
	}
	return real(p1), nil
}

// Estimate classifies the pairs of m and returns the change-rate estimate
func Estimate(m models.PixelMatrix) (float64, models.ClassificationCounts, error) {
	counts, err := Classify(m)
	if err != nil {
		return 0, counts, err
	}
	p, err := Solve(counts)
	if err != nil {
		return 0, counts, err
	}
	return p, counts, nil
}
