package cache

// Keyer builds cache keys for each pipeline stage.
type Keyer interface {
	// LayoutKey identifies a computed layout of a scene.
	LayoutKey(sceneHash string, opts LayoutKeyOpts) string

	// ArtifactKey identifies a rendered artifact of a layout.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts are the parameters that change a layout.
type LayoutKeyOpts struct {
	CenterX    float64 `json:"cx"`
	CenterY    float64 `json:"cy"`
	Radius     float64 `json:"r"`
	Clustering float64 `json:"k"`
	Diameter   float64 `json:"d,omitempty"`
}

// ArtifactKeyOpts are the parameters that change a rendered artifact.
type ArtifactKeyOpts struct {
	Format   string  `json:"format"`
	VizType  string  `json:"viz_type"`
	Width    float64 `json:"w,omitempty"`
	Height   float64 `json:"h,omitempty"`
	Labels   bool    `json:"labels,omitempty"`
	Guide    bool    `json:"guide,omitempty"`
	Outline  bool    `json:"outline,omitempty"`
	Detailed bool    `json:"detailed,omitempty"`
	Scale    float64 `json:"scale,omitempty"`
}

// DefaultKeyer hashes key options into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey implements Keyer.
func (DefaultKeyer) LayoutKey(sceneHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", sceneHash, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
