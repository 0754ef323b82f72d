package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var iPhone = Size{Width: 375, Height: 812}

func TestComputeLayoutClampsPaletteLeft(t *testing.T) {
	got := ComputeLayout(iPhone, Rect{X: 20, Y: 500, Width: 220, Height: 80})

	assert.Equal(t, Layout{
		CenteredY:   366,
		TranslateY:  -134,
		PaletteLeft: 16,
		PaletteTop:  306,
		MenuLeft:    20,
		MenuTop:     456,
	}, got)
}

func TestComputeLayoutClampsPaletteRight(t *testing.T) {
	got := ComputeLayout(iPhone, Rect{X: 200, Y: 100, Width: 160, Height: 40})

	assert.Equal(t, 59.0, got.PaletteLeft)
	// right-hand bubble: menu aligns with the bubble's right edge
	assert.Equal(t, 160.0, got.MenuLeft)
	assert.Equal(t, 386.0, got.CenteredY)
	assert.Equal(t, 286.0, got.TranslateY)
}

func TestComputeLayoutPaletteWithinMargins(t *testing.T) {
	for x := 0.0; x <= iPhone.Width; x += 5 {
		for _, w := range []float64{40, 120, 280} {
			got := ComputeLayout(iPhone, Rect{X: x, Y: 300, Width: w, Height: 60})
			assert.GreaterOrEqual(t, got.PaletteLeft, float64(EdgeMargin))
			assert.LessOrEqual(t, got.PaletteLeft, iPhone.Width-PaletteWidth-EdgeMargin)
		}
	}
}

func TestComputeLayoutCentredPalette(t *testing.T) {
	// wide screen, nothing to clamp
	got := ComputeLayout(Size{Width: 1000, Height: 800}, Rect{X: 300, Y: 0, Width: 200, Height: 100})

	assert.Equal(t, 250.0, got.PaletteLeft)
	assert.Equal(t, 300.0, got.MenuLeft)
}

func TestComputeLayoutMenuAtHalfWidth(t *testing.T) {
	got := ComputeLayout(iPhone, Rect{X: 187.5, Y: 0, Width: 100, Height: 50})
	assert.Equal(t, 187.5, got.MenuLeft)
}
