package streaming

// Option configures a Renderer.
type Option func(*Renderer)

// WithMarkdown toggles markdown rendering. When disabled, Feed is the
// identity function and Flush returns empty.
func WithMarkdown(enabled bool) Option {
	return func(r *Renderer) {
		r.markdown = enabled
	}
}

// WithPalette sets the styling palette.
func WithPalette(p *Palette) Option {
	return func(r *Renderer) {
		r.palette = p
	}
}

// WithRuleWidth sets the width of horizontal rules and fence borders.
func WithRuleWidth(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.ruleWidth = width
		}
	}
}
