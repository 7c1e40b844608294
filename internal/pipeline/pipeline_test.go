package pipeline

import (
	"testing"

	"github.com/davesmith10/pwaicons/internal/ir"
	"github.com/davesmith10/pwaicons/internal/png"
)

func TestRun(t *testing.T) {
	result, err := Run(Options{
		Width:  192,
		Height: 192,
		Base:   ir.RGB{R: 99, G: 102, B: 241},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	info, err := png.GetInfo(result.Data)
	if err != nil {
		t.Fatalf("GetInfo on pipeline output: %v", err)
	}
	if info.Width != 192 || info.Height != 192 {
		t.Errorf("dimensions = %dx%d, want 192x192", info.Width, info.Height)
	}
	if info.BitDepth != 8 || info.ColorType != 2 {
		t.Errorf("format = %d-bit color type %d, want 8-bit truecolor", info.BitDepth, info.ColorType)
	}
	if result.Width != 192 || result.Height != 192 {
		t.Errorf("result reports %dx%d, want 192x192", result.Width, result.Height)
	}

	rawSize := 192 * (1 + 192*3)
	t.Logf("Pipeline output: %d bytes (raw scanlines %d bytes, ratio %.1f%%)",
		len(result.Data), rawSize, float64(len(result.Data))/float64(rawSize)*100)
}

func TestRunInvalidGeometry(t *testing.T) {
	if _, err := Run(Options{Width: 0, Height: 192}); err == nil {
		t.Fatal("expected error for zero width")
	}
}
