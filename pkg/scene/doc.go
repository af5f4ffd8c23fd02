// Package scene loads the sectioned item data that ringlayout places on a
// circle.
//
// A scene is the host-side data source for [circle.Compute]: it answers how
// many items each section has and how large each item is. Scenes are read
// from TOML, YAML or JSON files:
//
//	name = "team"
//	radius = 200
//	clustering = 0.4
//	diameter = 40
//
//	[center]
//	x = 400
//	y = 300
//
//	[[sections]]
//	name = "backend"
//	count = 3
//
//	[[sections]]
//	name = "frontend"
//	items = [{ label = "web", diameter = 60 }, { label = "ios" }]
//
// A section lists either a count of anonymous items or explicit items with
// optional labels and diameters. Missing center and radius fall back to
// [circle.ParamsForViewport] for the scene's viewport.
//
// [circle.Compute]: github.com/matzehuels/ringlayout/pkg/circle.Compute
// [circle.ParamsForViewport]: github.com/matzehuels/ringlayout/pkg/circle.ParamsForViewport
package scene
