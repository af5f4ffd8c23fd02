package pipeline

import (
	"github.com/matzehuels/ringlayout/pkg/circle"
	"github.com/matzehuels/ringlayout/pkg/render/ring/sink"
	"github.com/matzehuels/ringlayout/pkg/scene"
)

// =============================================================================
// Layout Generation
// =============================================================================

// GenerateLayout computes the placements for sc. The layout does not depend
// on the visualization type; only rendering does.
func GenerateLayout(sc *scene.Scene) circle.Layout {
	return sc.Layout()
}

// MarshalLayout serializes a layout for caching and JSON output.
func MarshalLayout(l circle.Layout, sc *scene.Scene) ([]byte, error) {
	return sink.RenderJSON(l, jsonOptions(sc)...)
}

// UnmarshalLayout restores a layout written by [MarshalLayout].
func UnmarshalLayout(data []byte) (circle.Layout, error) {
	l, _, err := sink.ParseJSON(data)
	return l, err
}

func jsonOptions(sc *scene.Scene) []sink.JSONOption {
	if sc == nil {
		return nil
	}
	return []sink.JSONOption{
		sink.WithJSONName(sc.Name),
		sink.WithJSONLabels(sc.Label),
		sink.WithJSONSectionNames(sc.SectionName),
	}
}
