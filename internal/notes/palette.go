package notes

import "math/rand"

// palette holds the ARGB colors a new note may be assigned when its draft
// carries no color. Collisions between notes are fine.
var palette = [...]uint32{
	0xFFE57373, // red
	0xFF64B5F6, // blue
	0xFF81C784, // green
	0xFFFFB74D, // orange
	0xFFBA68C8, // purple
	0xFF4DB6AC, // teal
	0xFFF06292, // pink
	0xFFFFD54F, // amber
}

// pickColor draws one palette entry from the given source.
func pickColor(r *rand.Rand) uint32 {
	return palette[r.Intn(len(palette))]
}
