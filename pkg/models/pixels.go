package models

import "encoding/json"

// ColorChannel identifies one plane of an RGB image
type ColorChannel int

const (
	Red ColorChannel = iota
	Green
	Blue
)

// RGBChannels lists the channels in decode order
var RGBChannels = []ColorChannel{Red, Green, Blue}

func (c ColorChannel) String() string {
	switch c {
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	default:
		return "Unknown"
	}
}

// MarshalJSON writes the channel by name
func (c ColorChannel) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// PixelMatrix is a single colour channel of Width x Height 8-bit intensities.
// Pix is row-major: the value at column x, row y lives at Pix[y*Width+x].
type PixelMatrix struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewPixelMatrix allocates a zeroed matrix
func NewPixelMatrix(width, height int) PixelMatrix {
	return PixelMatrix{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// At returns the intensity at column x, row y
func (m PixelMatrix) At(x, y int) uint8 {
	return m.Pix[y*m.Width+x]
}

// Set stores the intensity at column x, row y
func (m PixelMatrix) Set(x, y int, v uint8) {
	m.Pix[y*m.Width+x] = v
}

// PixelMap is a combined Height x Width x Channels matrix of 8-bit intensities.
// The value for (row, col, ch) lives at Pix[(row*Width+col)*Channels+ch].
type PixelMap struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// NewPixelMap allocates a zeroed map
func NewPixelMap(width, height, channels int) PixelMap {
	return PixelMap{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]uint8, width*height*channels),
	}
}

func (p PixelMap) offset(row, col, ch int) int {
	return (row*p.Width+col)*p.Channels + ch
}

// At returns the intensity at (row, col, ch)
func (p PixelMap) At(row, col, ch int) uint8 {
	return p.Pix[p.offset(row, col, ch)]
}

// Set stores the intensity at (row, col, ch)
func (p PixelMap) Set(row, col, ch int, v uint8) {
	p.Pix[p.offset(row, col, ch)] = v
}

// Clone returns a deep copy that shares no storage with p
func (p PixelMap) Clone() PixelMap {
	out := p
	out.Pix = make([]uint8, len(p.Pix))
	copy(out.Pix, p.Pix)
	return out
}
