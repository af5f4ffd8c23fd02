// Package pkg provides the core libraries for ringlayout, which places items
// grouped into sections on a circle.
//
// # Overview
//
// The pkg directory is organized by stage:
//
//  1. [circle] - the placement calculator (pure, no I/O)
//  2. [scene] - scene files: sections, items, diameters and parameters
//  3. [render] - sinks that turn a layout into SVG, PNG, PDF, JSON or DOT
//  4. [cache] - layout and artifact caches (file, Redis, MongoDB)
//  5. [pipeline] - orchestration (load → layout → render) with caching
//
// # Data Flow
//
//	scene file (TOML, YAML, JSON)
//	         ↓
//	    [scene] package (decode + validate)
//	         ↓
//	    [circle] package (Compute)
//	         ↓
//	    [render/ring/sink] or [render/nodelink]
//	         ↓
//	SVG/PNG/PDF/JSON/DOT output
//
// # Quick Start
//
// Compute a layout directly:
//
//	l := circle.Compute(
//	    circle.NewSections(3, 2),
//	    circle.UniformDiameter(40),
//	    circle.Params{Center: circle.Point{X: 400, Y: 300}, Radius: 200, Clustering: 0.5},
//	)
//	for _, it := range l.Items {
//	    fmt.Println(it.ID, it.Center, it.Degrees())
//	}
//
// Or run the whole pipeline on a scene file:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, nil)
//	res, err := runner.Execute(ctx, pipeline.Options{
//	    ScenePath: "team.toml",
//	    Formats:   []string{pipeline.FormatSVG, pipeline.FormatJSON},
//	})
//
// Supporting packages: [errors] defines structured error codes shared by the
// CLI and server, [observability] exposes hooks around pipeline stages and
// cache access, and [buildinfo] carries version metadata.
//
// [circle]: https://pkg.go.dev/github.com/matzehuels/ringlayout/pkg/circle
// [scene]: https://pkg.go.dev/github.com/matzehuels/ringlayout/pkg/scene
// [render]: https://pkg.go.dev/github.com/matzehuels/ringlayout/pkg/render
// [render/ring/sink]: https://pkg.go.dev/github.com/matzehuels/ringlayout/pkg/render/ring/sink
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/ringlayout/pkg/render/nodelink
// [cache]: https://pkg.go.dev/github.com/matzehuels/ringlayout/pkg/cache
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/ringlayout/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/ringlayout/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/ringlayout/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/ringlayout/pkg/buildinfo
package pkg
