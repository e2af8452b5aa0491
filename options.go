package stepspiral

// ModelOption configures a Model during creation.
//
// Example:
//
//	m, err := stepspiral.NewModel(stepspiral.DefaultConfig(),
//	    stepspiral.WithPalette(stepspiral.Palette{stepspiral.Green, stepspiral.Blue}))
type ModelOption func(*modelOptions)

// modelOptions holds optional configuration for Model creation.
type modelOptions struct {
	palette Palette
}

// defaultModelOptions returns options seeded from cfg.
func defaultModelOptions(cfg Config) modelOptions {
	return modelOptions{
		palette: cfg.palette(),
	}
}

// WithPalette overrides the palette from Config.
// An empty palette falls back to DefaultPalette.
func WithPalette(p Palette) ModelOption {
	return func(o *modelOptions) {
		o.palette = append(Palette(nil), p...)
	}
}
