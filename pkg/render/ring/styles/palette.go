package styles

// palette holds section fill colors. Sections beyond its length wrap around.
var palette = []string{
	"#4e79a7", "#f28e2b", "#e15759", "#76b7b2", "#59a14f",
	"#edc948", "#b07aa1", "#ff9da7", "#9c755f", "#bab0ac",
}

// SectionColor returns the fill color for section i.
func SectionColor(i int) string {
	if i < 0 {
		i = -i
	}
	return palette[i%len(palette)]
}
