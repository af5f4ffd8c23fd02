package styles

import (
	"bytes"
	"encoding/xml"
)

const (
	fontDiameterRatio = 0.35
	fontCharWidth     = 0.55
	fontSizeMin       = 8.0
	fontSizeMax       = 18.0
)

// FontSize returns the label font size for an item, shrinking long labels so
// they fit inside the item circle.
func FontSize(it Item) float64 {
	n := max(1, len(it.Label))
	byDiameter := it.Diameter * fontDiameterRatio
	byWidth := it.Diameter * 0.9 / (float64(n) * fontCharWidth)
	return max(fontSizeMin, min(fontSizeMax, min(byDiameter, byWidth)))
}

// TruncateLabel shortens an item label to what fits across its diameter.
func TruncateLabel(it Item) string {
	maxChars := max(3, int(it.Diameter*0.9/(FontSize(it)*fontCharWidth)))
	if len(it.Label) <= maxChars {
		return it.Label
	}
	return it.Label[:maxChars-2] + ".."
}

// EscapeXML escapes s for use in SVG text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
