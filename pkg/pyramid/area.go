package pyramid

// AreaDescription is one named area from areas.yml.
type AreaDescription struct {
	Name    string    `yaml:"name"`
	Key     string    `yaml:"key"`
	MinZoom int       `yaml:"minZoom"`
	MaxZoom int       `yaml:"maxZoom"`
	Bounds  []float64 `yaml:"bounds"`
}

// NewAreaGenerator builds a generator for a described area.
func NewAreaGenerator(a *AreaDescription) (*Generator, error) {
	return New(Config{
		MinZoom:  a.MinZoom,
		MaxZoom:  a.MaxZoom,
		Bounds:   a.Bounds,
		Strategy: Parallel,
	})
}
