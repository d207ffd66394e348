package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the fortress renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorOrange
	ColorGray
)

// HealthColor picks a color for a health bar from the remaining ratio.
func HealthColor(ratio float64) Color {
	switch {
	case ratio > 0.6:
		return ColorBrightGreen
	case ratio > 0.3:
		return ColorBrightYellow
	default:
		return ColorBrightRed
	}
}
