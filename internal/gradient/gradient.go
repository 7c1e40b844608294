package gradient

import (
	"fmt"
	"math"

	"github.com/davesmith10/pwaicons/internal/ir"
)

// Render produces a width×height RGB image of the base color with radial
// shading: full strength at the image center, attenuated linearly with
// distance down to 70% at the farthest corner.
//
// The center is the real-valued midpoint (width/2, height/2), so for even
// dimensions one pixel sits exactly on it. Channel values are truncated,
// not rounded, when the attenuation factor is applied.
func Render(width, height int, base ir.RGB) (*ir.RGBImage, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}

	centerX := float64(width) / 2
	centerY := float64(height) / 2
	maxDist := math.Sqrt(centerX*centerX + centerY*centerY)

	pixels := make([]byte, 0, width*height*3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx := float64(x) - centerX
			dy := float64(y) - centerY
			dist := math.Sqrt(dx*dx + dy*dy)
			factor := 1 - (dist/maxDist)*0.3

			pixels = append(pixels,
				uint8(float64(base.R)*factor),
				uint8(float64(base.G)*factor),
				uint8(float64(base.B)*factor))
		}
	}

	return &ir.RGBImage{Width: width, Height: height, Pixels: pixels}, nil
}
