package pipeline

import (
	"fmt"

	"github.com/davesmith10/pwaicons/internal/gradient"
	"github.com/davesmith10/pwaicons/internal/ir"
	"github.com/davesmith10/pwaicons/internal/png"
)

// Options controls a single icon generation.
type Options struct {
	Width  int
	Height int
	Base   ir.RGB // base color, full strength at the image center
}

// Result holds the output of a pipeline run.
type Result struct {
	Data   []byte // encoded PNG
	Width  int
	Height int
}

// Run executes the full icon pipeline: render the radial gradient, then
// encode it as a PNG.
func Run(opts Options) (*Result, error) {
	img, err := gradient.Render(opts.Width, opts.Height, opts.Base)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	data, err := png.Encode(img)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return &Result{
		Data:   data,
		Width:  opts.Width,
		Height: opts.Height,
	}, nil
}
