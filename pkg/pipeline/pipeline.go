// Package pipeline provides the load → layout → render pipeline for ringlayout.
//
// The CLI and the HTTP server both run scenes through this package, so
// defaults, validation and caching behave the same at every entry point.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read and validate a scene, then apply parameter overrides
//  2. Layout: Compute item placements with [circle.Compute]
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON, DOT)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    ScenePath: "team.toml",
//	    Formats:   []string{"svg", "json"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// [circle.Compute]: github.com/matzehuels/ringlayout/pkg/circle#Compute
package pipeline

import (
	"io"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ringlayout/pkg/cache"
	"github.com/matzehuels/ringlayout/pkg/circle"
	"github.com/matzehuels/ringlayout/pkg/errors"
	"github.com/matzehuels/ringlayout/pkg/scene"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultScale is the PNG resolution multiplier.
	DefaultScale = 2.0

	// DefaultVizType is the default visualization type.
	DefaultVizType = VizTypeRing
)

// Visualization types.
const (
	VizTypeRing     = "ring"
	VizTypeNodelink = "nodelink"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizTypeRing:     true,
	VizTypeNodelink: true,
}

// ContentTypes maps output formats to HTTP content types.
var ContentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatPDF:  "application/pdf",
	FormatJSON: "application/json",
	FormatDOT:  "text/vnd.graphviz",
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options. Exactly one source is used, in the order Scene,
	// SceneData, ScenePath.
	ScenePath   string `json:"scene_path,omitempty"`
	SceneData   []byte `json:"-"`
	SceneFormat string `json:"scene_format,omitempty"`

	// Layout overrides. Nil keeps the scene's own value.
	Center     *circle.Point `json:"center,omitempty"`
	Radius     *float64      `json:"radius,omitempty"`
	Clustering *float64      `json:"clustering,omitempty"`
	Diameter   *float64      `json:"diameter,omitempty"`

	// DefaultViewport is used for scenes that do not set a viewport.
	DefaultViewport *scene.Viewport `json:"default_viewport,omitempty"`

	// Render options
	VizType  string   `json:"viz_type,omitempty"`
	Formats  []string `json:"formats,omitempty"`
	Width    float64  `json:"width,omitempty"`
	Height   float64  `json:"height,omitempty"`
	NoLabels bool     `json:"no_labels,omitempty"`
	Guide    bool     `json:"guide,omitempty"`
	Outline  bool     `json:"outline,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // angles in DOT/nodelink labels
	Scale    float64  `json:"scale,omitempty"`
	Refresh  bool     `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Scene  *scene.Scene `json:"-"`
	Logger *log.Logger  `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Scene is the loaded scene with overrides applied.
	Scene *scene.Scene

	// SceneHash is the content hash of the scene.
	SceneHash string

	// Layout contains the computed placements.
	Layout circle.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Items      int
	Sections   int
	Overlaps   int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errors.New(errors.ErrCodeInvalidVizType, "invalid viz_type: %q (must be one of: ring, nodelink)", vizType)
	}
	return nil
}

// ParseFormats splits a comma-separated format list, dropping blanks and
// duplicates.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks that a scene source is present.
func (o *Options) ValidateForLoad() error {
	switch {
	case o.Scene != nil:
	case len(o.SceneData) > 0:
		if o.SceneFormat == "" {
			return errors.New(errors.ErrCodeInvalidInput, "scene_format is required for inline scenes")
		}
		if _, err := scene.ParseFormat(o.SceneFormat); err != nil {
			return err
		}
	case o.ScenePath != "":
		if err := errors.ValidatePath(o.ScenePath); err != nil {
			return err
		}
	default:
		return errors.New(errors.ErrCodeInvalidInput, "scene is required")
	}
	o.setLogger()
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	o.setLogger()
}

// ValidateForLayout validates the layout overrides.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if o.Center != nil {
		if err := finite("center.x", o.Center.X); err != nil {
			return err
		}
		if err := finite("center.y", o.Center.Y); err != nil {
			return err
		}
	}
	if o.Radius != nil {
		if err := nonNegative("radius", *o.Radius); err != nil {
			return err
		}
	}
	if o.Clustering != nil {
		if err := finite("clustering", *o.Clustering); err != nil {
			return err
		}
	}
	if o.Diameter != nil {
		if err := nonNegative("diameter", *o.Diameter); err != nil {
			return err
		}
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale <= 0 || math.IsNaN(o.Scale) {
		o.Scale = DefaultScale
	}
	o.setLogger()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := nonNegative("width", o.Width); err != nil {
		return err
	}
	if err := nonNegative("height", o.Height); err != nil {
		return err
	}
	return nil
}

// IsNodelink returns true if this is a nodelink visualization.
func (o *Options) IsNodelink() bool {
	return o.VizType == VizTypeNodelink
}

// LayoutKeyOpts returns cache key options for the layout of sc.
func (o *Options) LayoutKeyOpts(sc *scene.Scene) cache.LayoutKeyOpts {
	p := sc.Params().Normalized()
	return cache.LayoutKeyOpts{
		CenterX:    p.Center.X,
		CenterY:    p.Center.Y,
		Radius:     p.Radius,
		Clustering: p.Clustering,
		Diameter:   sc.DefaultDiameter(),
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:   format,
		VizType:  o.VizType,
		Width:    o.Width,
		Height:   o.Height,
		Labels:   !o.NoLabels,
		Guide:    o.Guide,
		Outline:  o.Outline,
		Detailed: o.Detailed,
		Scale:    o.Scale,
	}
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// finite and nonNegative report bad option values as invalid input rather
// than an invalid scene.
func finite(field string, v float64) error {
	if err := errors.ValidateFinite(field, v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "option")
	}
	return nil
}

func nonNegative(field string, v float64) error {
	if err := errors.ValidateNonNegative(field, v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "option")
	}
	return nil
}
