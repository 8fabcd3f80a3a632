// Package streaming renders markdown from a live text stream into ANSI
// terminal output. It buffers arbitrarily chunked input into complete lines
// and decorates each line as soon as it resolves, so output appears before
// the full document is known. Output depends only on complete lines plus
// the final flush, which makes it byte-identical regardless of how the
// input was chunked.
package streaming

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const defaultRuleWidth = 60

// Renderer is the streaming markdown renderer. One instance serves exactly
// one streamed response: construct, Feed each chunk, Flush once, discard.
// Not safe for concurrent use.
type Renderer struct {
	markdown  bool
	palette   *Palette
	ruleWidth int

	// pending holds the tail after the last newline. Never contains '\n'.
	pending string

	// Fence state. fenceLines is non-empty only while fenceActive.
	fenceActive bool
	fenceLang   string
	fenceLines  []string

	flushed bool
}

// New creates a renderer. Defaults: markdown enabled, plain palette.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		markdown:  true,
		palette:   PlainPalette(),
		ruleWidth: defaultRuleWidth,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Feed consumes one chunk and returns displayable output for every complete
// line the chunk resolved. May return empty. Performs no I/O and never
// fails; malformed markdown degrades to literal text.
func (r *Renderer) Feed(chunk string) string {
	if !r.markdown {
		return chunk
	}

	r.pending += chunk

	var out strings.Builder
	for {
		idx := strings.IndexByte(r.pending, '\n')
		if idx < 0 {
			break
		}
		line := r.pending[:idx]
		r.pending = r.pending[idx+1:]
		out.WriteString(r.renderLine(line))
	}
	return out.String()
}

// Flush drains the buffered partial line and any open fence. Call once at
// end of stream; later calls return empty.
func (r *Renderer) Flush() string {
	if !r.markdown || r.flushed {
		return ""
	}
	r.flushed = true

	var out strings.Builder
	if r.pending != "" {
		line := r.pending
		r.pending = ""
		out.WriteString(r.renderLine(line))
	}
	// Unterminated fence: close it rather than drop accumulated content.
	if r.fenceActive {
		out.WriteString(r.closeFence())
	}
	return out.String()
}

// renderLine routes one complete line through the fence tracker and, when
// outside a fence, the block classifier.
func (r *Renderer) renderLine(line string) string {
	if r.fenceActive {
		if isFenceDelimiter(line) {
			return r.closeFence()
		}
		r.fenceLines = append(r.fenceLines, line)
		return ""
	}

	if lang, ok := parseFenceOpen(line); ok {
		r.fenceActive = true
		r.fenceLang = lang
		return ""
	}

	return r.renderBlock(line) + "\n"
}

// parseFenceOpen reports whether the line opens a code fence, and the info
// string after the delimiter. A line with further backticks after the info
// string is inline code, not a fence.
func parseFenceOpen(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "```") {
		return "", false
	}
	rest := strings.TrimLeft(trimmed, "`")
	if strings.Contains(rest, "`") {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

// isFenceDelimiter reports whether a line inside a fence closes it: only
// backticks, at least three. Code lines that merely start with backticks
// stay verbatim content.
func isFenceDelimiter(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 3 {
		return false
	}
	for _, ch := range trimmed {
		if ch != '`' {
			return false
		}
	}
	return true
}

// closeFence emits the bordered code block and resets fence state.
func (r *Renderer) closeFence() string {
	var out strings.Builder
	out.WriteString(r.fenceTopBorder())
	out.WriteString("\n")
	for _, line := range r.fenceLines {
		out.WriteString(r.palette.FenceBorder.Render("│"))
		out.WriteString(" ")
		out.WriteString(r.palette.FenceBody.Render(line))
		out.WriteString("\n")
	}
	out.WriteString(r.palette.FenceBorder.Render("╰" + strings.Repeat("─", r.ruleWidth-1)))
	out.WriteString("\n")

	r.fenceActive = false
	r.fenceLang = ""
	r.fenceLines = nil
	return out.String()
}

func (r *Renderer) fenceTopBorder() string {
	if r.fenceLang == "" {
		return r.palette.FenceBorder.Render("╭" + strings.Repeat("─", r.ruleWidth-1))
	}
	fill := r.ruleWidth - 4 - runewidth.StringWidth(r.fenceLang)
	if fill < 1 {
		fill = 1
	}
	return r.palette.FenceBorder.Render("╭─ ") +
		r.palette.FenceLabel.Render(r.fenceLang) +
		r.palette.FenceBorder.Render(" "+strings.Repeat("─", fill))
}
