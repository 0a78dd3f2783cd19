package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	primaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C00"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00CFCF"))
	silentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	textStyle    = lipgloss.NewStyle()
)

func Primary(text string) string { return primaryStyle.Render(text) }
func Error(text string) string   { return errorStyle.Render(text) }
func Warning(text string) string { return warningStyle.Render(text) }
func Info(text string) string    { return infoStyle.Render(text) }
func Silent(text string) string  { return silentStyle.Render(text) }
func Text(text string) string    { return textStyle.Render(text) }

// Swatch renders a colored block for a palette token so lists show each
// client and activity in its assigned color.
func Swatch(token string) string {
	hex, ok := hslTokenToHex(token)
	if !ok {
		return "■"
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("■")
}

// hslTokenToHex converts a palette token like "0 75% 55%" to "#d93636".
// Tokens that do not parse are reported as-is rather than guessed at.
func hslTokenToHex(token string) (string, bool) {
	fields := strings.Fields(token)
	if len(fields) != 3 {
		return "", false
	}
	var h, s, l float64
	if _, err := fmt.Sscanf(fields[0], "%f", &h); err != nil {
		return "", false
	}
	if _, err := fmt.Sscanf(strings.TrimSuffix(fields[1], "%"), "%f", &s); err != nil {
		return "", false
	}
	if _, err := fmt.Sscanf(strings.TrimSuffix(fields[2], "%"), "%f", &l); err != nil {
		return "", false
	}
	r, g, b := hslToRGB(h, s/100, l/100)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b), true
}

func hslToRGB(h, s, l float64) (uint8, uint8, uint8) {
	c := (1 - math.Abs(2*l-1)) * s
	hp := math.Mod(h, 360) / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := l - c/2
	return uint8(math.Round((r + m) * 255)), uint8(math.Round((g + m) * 255)), uint8(math.Round((b + m) * 255))
}
