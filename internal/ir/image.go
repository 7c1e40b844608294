package ir

// RGBImage is the intermediate representation passed between the gradient
// renderer and the PNG encoder. Pixels are stored as interleaved R,G,B
// bytes (3 bytes per pixel, row-major order).
type RGBImage struct {
	Width  int
	Height int
	Pixels []byte // len = Width * Height * 3
}

// At returns the color of the pixel at (x, y). Out-of-range coordinates
// are the caller's responsibility.
func (img *RGBImage) At(x, y int) RGB {
	i := (y*img.Width + x) * 3
	return RGB{R: img.Pixels[i], G: img.Pixels[i+1], B: img.Pixels[i+2]}
}
