package palette

// Color tokens are HSL triplets ("hue saturation% lightness%") so the UI can
// derive tints and full-strength variants from a single value.

// Client is the fixed 20-entry client palette. Hues are spread across the
// wheel with varied saturation/lightness so adjacent picks stay telling apart.
var Client = []string{
	"0 75% 55%",   // red
	"15 80% 55%",  // vermillion
	"30 85% 55%",  // orange
	"45 80% 50%",  // amber
	"60 70% 45%",  // yellow
	"90 55% 50%",  // lime
	"120 45% 45%", // green
	"150 55% 45%", // teal
	"175 60% 42%", // cyan
	"195 75% 45%", // sky
	"210 70% 50%", // blue
	"230 65% 55%", // indigo
	"255 55% 55%", // violet
	"280 60% 55%", // purple
	"300 50% 50%", // magenta
	"330 65% 55%", // pink
	"350 70% 55%", // rose
	"20 60% 40%",  // brown
	"200 15% 45%", // slate
	"160 40% 40%", // emerald
}

// Activity is the fixed 10-entry activity palette.
var Activity = []string{
	"210 90% 55%", // bright blue
	"150 70% 45%", // green
	"30 90% 55%",  // orange
	"280 70% 55%", // purple
	"350 80% 55%", // red
	"180 60% 45%", // teal
	"45 85% 50%",  // amber
	"330 70% 55%", // pink
	"120 50% 40%", // forest
	"255 60% 50%", // indigo
}

// Assign picks the color for the next entity: the first palette token not in
// used, or, when every token is taken, the token at count modulo the palette
// size. It is a pure function; count is the number of entities that already
// exist.
func Assign(palette []string, used []string, count int) string {
	taken := make(map[string]bool, len(used))
	for _, c := range used {
		taken[c] = true
	}
	for _, c := range palette {
		if !taken[c] {
			return c
		}
	}
	return palette[count%len(palette)]
}
