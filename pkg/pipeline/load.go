package pipeline

import (
	"github.com/matzehuels/ringlayout/pkg/errors"
	"github.com/matzehuels/ringlayout/pkg/scene"
)

// LoadScene reads the scene named by opts and applies its overrides.
// The returned scene is a copy; opts.Scene is never modified.
func LoadScene(opts Options) (*scene.Scene, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}

	var (
		sc  *scene.Scene
		err error
	)
	switch {
	case opts.Scene != nil:
		if err := opts.Scene.Validate(); err != nil {
			return nil, err
		}
		sc = opts.Scene
	case len(opts.SceneData) > 0:
		format, ferr := scene.ParseFormat(opts.SceneFormat)
		if ferr != nil {
			return nil, ferr
		}
		sc, err = scene.Parse(opts.SceneData, format)
	default:
		sc, err = scene.Load(opts.ScenePath)
	}
	if err != nil {
		return nil, err
	}
	return ApplyOverrides(sc, opts)
}

// ApplyOverrides returns a copy of sc with the layout overrides of opts
// applied, validated again as a whole.
func ApplyOverrides(sc *scene.Scene, opts Options) (*scene.Scene, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return nil, err
	}
	out := *sc
	if out.Viewport == nil && opts.DefaultViewport != nil {
		vp := *opts.DefaultViewport
		out.Viewport = &vp
	}
	if opts.Center != nil {
		c := *opts.Center
		out.Center = &c
	}
	if opts.Radius != nil {
		r := *opts.Radius
		out.Radius = &r
	}
	if opts.Clustering != nil {
		out.Clustering = *opts.Clustering
	}
	if opts.Diameter != nil {
		d := *opts.Diameter
		out.Diameter = &d
	}
	if err := out.Validate(); err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "apply overrides")
	}
	return &out, nil
}
