package scene

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/ringlayout/pkg/circle"
	"github.com/matzehuels/ringlayout/pkg/errors"
)

const (
	// DefaultWidth is the viewport width used when a scene has none.
	DefaultWidth = 800.0

	// DefaultHeight is the viewport height used when a scene has none.
	DefaultHeight = 600.0

	// MaxItems bounds the total item count of a scene. Overlap detection
	// is quadratic in it.
	MaxItems = 5000
)

// Scene is a named collection of sections plus the layout parameters to
// place them with.
type Scene struct {
	Name       string        `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`
	Viewport   *Viewport     `json:"viewport,omitempty" toml:"viewport,omitempty" yaml:"viewport,omitempty"`
	Center     *circle.Point `json:"center,omitempty" toml:"center,omitempty" yaml:"center,omitempty"`
	Radius     *float64      `json:"radius,omitempty" toml:"radius,omitempty" yaml:"radius,omitempty"`
	Clustering float64       `json:"clustering,omitempty" toml:"clustering,omitempty" yaml:"clustering,omitempty"`
	Diameter   *float64      `json:"diameter,omitempty" toml:"diameter,omitempty" yaml:"diameter,omitempty"`
	Sections   []Section     `json:"sections" toml:"sections" yaml:"sections"`
}

// Viewport is the drawing area a scene is laid out in.
type Viewport struct {
	Width  float64 `json:"width" toml:"width" yaml:"width"`
	Height float64 `json:"height" toml:"height" yaml:"height"`
}

// Section groups items that share adjacency on the circle.
type Section struct {
	Name  string `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`
	Count *int   `json:"count,omitempty" toml:"count,omitempty" yaml:"count,omitempty"`
	Items []Item `json:"items,omitempty" toml:"items,omitempty" yaml:"items,omitempty"`
}

// Item is one placed element. Both fields are optional.
type Item struct {
	Label    string   `json:"label,omitempty" toml:"label,omitempty" yaml:"label,omitempty"`
	Diameter *float64 `json:"diameter,omitempty" toml:"diameter,omitempty" yaml:"diameter,omitempty"`
}

// Len returns the number of items in the section.
func (s Section) Len() int {
	if s.Count != nil {
		return *s.Count
	}
	return len(s.Items)
}

// Validate checks the scene for values the layout cannot use.
func (s *Scene) Validate() error {
	if err := errors.ValidateName(s.Name); err != nil {
		return err
	}
	if s.Viewport != nil {
		if err := errors.ValidateNonNegative("viewport.width", s.Viewport.Width); err != nil {
			return err
		}
		if err := errors.ValidateNonNegative("viewport.height", s.Viewport.Height); err != nil {
			return err
		}
	}
	if s.Center != nil {
		if err := errors.ValidateFinite("center.x", s.Center.X); err != nil {
			return err
		}
		if err := errors.ValidateFinite("center.y", s.Center.Y); err != nil {
			return err
		}
	}
	if s.Radius != nil {
		if err := errors.ValidateNonNegative("radius", *s.Radius); err != nil {
			return err
		}
	}
	if err := errors.ValidateFinite("clustering", s.Clustering); err != nil {
		return err
	}
	if s.Diameter != nil {
		if err := errors.ValidateNonNegative("diameter", *s.Diameter); err != nil {
			return err
		}
	}
	total := 0
	for i, sec := range s.Sections {
		if err := validateSection(sec); err != nil {
			return errors.Wrap(errors.GetCode(err), err, "section %d", i)
		}
		if sec.Len() > MaxItems-total {
			return errors.New(errors.ErrCodeInvalidScene, "scene has more than %d items", MaxItems)
		}
		total += sec.Len()
	}
	return nil
}

func validateSection(sec Section) error {
	if err := errors.ValidateName(sec.Name); err != nil {
		return err
	}
	if sec.Count != nil {
		if *sec.Count < 0 {
			return errors.New(errors.ErrCodeInvalidScene, "count must not be negative (got %d)", *sec.Count)
		}
		if len(sec.Items) > 0 && len(sec.Items) != *sec.Count {
			return errors.New(errors.ErrCodeInvalidScene, "count %d does not match %d listed items", *sec.Count, len(sec.Items))
		}
	}
	for j, it := range sec.Items {
		if it.Diameter != nil {
			if err := errors.ValidateNonNegative(fmt.Sprintf("items[%d].diameter", j), *it.Diameter); err != nil {
				return err
			}
		}
	}
	return nil
}

// Counts snapshots the item count of every section.
func (s *Scene) Counts() circle.Sections {
	return circle.Snapshot(len(s.Sections), func(i int) int {
		return s.Sections[i].Len()
	})
}

// DefaultDiameter returns the scene-wide item diameter.
func (s *Scene) DefaultDiameter() float64 {
	if s.Diameter != nil {
		return *s.Diameter
	}
	return circle.DefaultDiameter
}

// DiameterOf returns the diameter of the item at (section, item). It
// satisfies [circle.DiameterFunc].
func (s *Scene) DiameterOf(section, item int) float64 {
	if it, ok := s.item(section, item); ok && it.Diameter != nil {
		return *it.Diameter
	}
	return s.DefaultDiameter()
}

// Label returns the display label of an item. Unlabeled items are named
// after their section.
func (s *Scene) Label(section, item int) string {
	if it, ok := s.item(section, item); ok && it.Label != "" {
		return it.Label
	}
	if section >= 0 && section < len(s.Sections) && s.Sections[section].Name != "" {
		return fmt.Sprintf("%s %d", s.Sections[section].Name, item+1)
	}
	return fmt.Sprintf("%d.%d", section, item)
}

// SectionName returns the name of section i, or a positional name.
func (s *Scene) SectionName(i int) string {
	if i >= 0 && i < len(s.Sections) && s.Sections[i].Name != "" {
		return s.Sections[i].Name
	}
	return fmt.Sprintf("section %d", i)
}

func (s *Scene) item(section, item int) (Item, bool) {
	if section < 0 || section >= len(s.Sections) {
		return Item{}, false
	}
	items := s.Sections[section].Items
	if item < 0 || item >= len(items) {
		return Item{}, false
	}
	return items[item], true
}

// Size returns the viewport, defaulting to DefaultWidth x DefaultHeight.
func (s *Scene) Size() (w, h float64) {
	if s.Viewport != nil && s.Viewport.Width > 0 && s.Viewport.Height > 0 {
		return s.Viewport.Width, s.Viewport.Height
	}
	return DefaultWidth, DefaultHeight
}

// Params returns the layout parameters described by the scene.
func (s *Scene) Params() circle.Params {
	p := circle.ParamsForViewport(s.Size())
	if s.Center != nil {
		p.Center = *s.Center
	}
	if s.Radius != nil {
		p.Radius = *s.Radius
	}
	p.Clustering = s.Clustering
	return p
}

// Layout computes the placements for the scene.
func (s *Scene) Layout() circle.Layout {
	return circle.Compute(s.Counts(), s.DiameterOf, s.Params())
}

// Canonical returns a deterministic JSON encoding of the scene, used for
// content hashing.
func (s *Scene) Canonical() ([]byte, error) {
	return json.Marshal(s)
}
