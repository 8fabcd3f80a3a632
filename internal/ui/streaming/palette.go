package streaming

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette maps semantic style names to lipgloss styles. Styles built from
// an Ascii-profile renderer are identity transforms, which is how colors
// are turned off without branching in the render path.
type Palette struct {
	Bold       lipgloss.Style
	Italic     lipgloss.Style
	InlineCode lipgloss.Style
	Link       lipgloss.Style
	Strike     lipgloss.Style

	Heading1 lipgloss.Style
	Heading2 lipgloss.Style
	Heading3 lipgloss.Style

	ListMarker lipgloss.Style
	QuoteBar   lipgloss.Style
	RuleBar    lipgloss.Style

	FenceBorder lipgloss.Style
	FenceLabel  lipgloss.Style
	FenceBody   lipgloss.Style
}

// NewPalette builds the default palette (gruvbox) bound to the given
// lipgloss renderer. The renderer's color profile decides how the colors
// degrade on less capable terminals.
func NewPalette(r *lipgloss.Renderer) *Palette {
	var (
		green  = lipgloss.Color("#b8bb26")
		aqua   = lipgloss.Color("#83a598")
		yellow = lipgloss.Color("#fabd2f")
		gray   = lipgloss.Color("#928374")
		purple = lipgloss.Color("#d3869b")
		orange = lipgloss.Color("#fe8019")
	)

	return &Palette{
		Bold:       r.NewStyle().Bold(true).Foreground(green),
		Italic:     r.NewStyle().Italic(true).Foreground(yellow),
		InlineCode: r.NewStyle().Foreground(orange),
		Link:       r.NewStyle().Foreground(aqua).Underline(true),
		Strike:     r.NewStyle().Strikethrough(true).Foreground(gray),

		Heading1: r.NewStyle().Bold(true).Foreground(aqua),
		Heading2: r.NewStyle().Bold(true).Foreground(aqua),
		Heading3: r.NewStyle().Foreground(aqua),

		ListMarker: r.NewStyle().Foreground(purple),
		QuoteBar:   r.NewStyle().Foreground(gray),
		RuleBar:    r.NewStyle().Foreground(gray),

		FenceBorder: r.NewStyle().Foreground(gray),
		FenceLabel:  r.NewStyle().Foreground(yellow),
		FenceBody:   r.NewStyle().Foreground(green),
	}
}

// PlainPalette returns a palette whose styles are identity transforms.
// Used when colors are disabled or output is not a terminal. The profile is
// pinned with SetColorProfile; lipgloss re-detects the profile from the
// writer and ignores renderer options for it.
func PlainPalette() *Palette {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return NewPalette(r)
}
