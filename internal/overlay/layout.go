package overlay

const (
	PaletteWidth = 300
	MenuWidth    = 200
	EdgeMargin   = 16

	paletteGap = 60
	menuGap    = 10
)

// Rect is an on-screen bounding box.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Layout is where the overlay pieces land once the pressed message has been
// moved to the vertical centre of the screen.
type Layout struct {
	CenteredY   float64 `json:"centered_y"`
	TranslateY  float64 `json:"translate_y"`
	PaletteLeft float64 `json:"palette_left"`
	PaletteTop  float64 `json:"palette_top"`
	MenuLeft    float64 `json:"menu_left"`
	MenuTop     float64 `json:"menu_top"`
}

func ComputeLayout(screen Size, target Rect) Layout {
	centeredY := (screen.Height - target.Height) / 2

	paletteLeft := target.X + target.Width/2 - PaletteWidth/2
	if paletteLeft < EdgeMargin {
		paletteLeft = EdgeMargin
	}
	if paletteLeft+PaletteWidth > screen.Width-EdgeMargin {
		paletteLeft = screen.Width - PaletteWidth - EdgeMargin
	}

	menuLeft := target.X
	if target.X > screen.Width/2 {
		menuLeft = target.X + target.Width - MenuWidth
	}

	return Layout{
		CenteredY:   centeredY,
		TranslateY:  centeredY - target.Y,
		PaletteLeft: paletteLeft,
		PaletteTop:  centeredY - paletteGap,
		MenuLeft:    menuLeft,
		MenuTop:     centeredY + target.Height + menuGap,
	}
}
