package pipeline

import "math"

const teamJSON = `{
  "name": "team",
  "center": {"x": 100, "y": 100},
  "radius": 50,
  "diameter": 20,
  "sections": [
    {"name": "backend", "count": 3},
    {"name": "frontend", "items": [{"label": "web"}, {"label": "ios", "diameter": 30}]}
  ]
}`

func inf() float64 { return math.Inf(1) }

func inlineOpts(formats ...string) Options {
	return Options{
		SceneData:   []byte(teamJSON),
		SceneFormat: "json",
		Formats:     formats,
	}
}
