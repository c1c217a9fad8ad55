package render

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the form model pipeline.
type RenderOptions struct {
	// Values pre-populates rendered controls using dotted binding keys (e.g.
	// "credentials.access_key").
	Values map[string]any
	// Errors surfaces server-side validation feedback keyed by binding key.
	Errors map[string][]string
}
