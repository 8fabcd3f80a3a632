package streaming

import "regexp"

// Inline span patterns, applied in fixed order. Order matters: bold consumes
// double asterisks before the italic rule sees them, and the italic guard
// requires the span to start and end on non-space so list-marker asterisks
// never match.
var (
	boldRe   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe = regexp.MustCompile(`(^|[^*])\*([^*\s](?:[^*]*[^*\s])?)\*`)
	codeRe   = regexp.MustCompile("`([^`]+)`")
	linkRe   = regexp.MustCompile(`\[([^\]]+)\]\(([^)]*)\)`)
	strikeRe = regexp.MustCompile(`~~(.+?)~~`)
)

// transformInline rewrites inline markdown spans in a single complete line.
// Stray unmatched delimiters stay literal. Fenced code never reaches here.
func transformInline(line string, p *Palette) string {
	line = boldRe.ReplaceAllStringFunc(line, func(m string) string {
		sub := boldRe.FindStringSubmatch(m)
		return p.Bold.Render(sub[1])
	})

	line = italicRe.ReplaceAllStringFunc(line, func(m string) string {
		sub := italicRe.FindStringSubmatch(m)
		return sub[1] + p.Italic.Render(sub[2])
	})

	line = codeRe.ReplaceAllStringFunc(line, func(m string) string {
		sub := codeRe.FindStringSubmatch(m)
		return p.InlineCode.Render(sub[1])
	})

	// Keep the link text, drop the URL. Terminals can't follow links anyway.
	line = linkRe.ReplaceAllStringFunc(line, func(m string) string {
		sub := linkRe.FindStringSubmatch(m)
		return p.Link.Render(sub[1])
	})

	line = strikeRe.ReplaceAllStringFunc(line, func(m string) string {
		sub := strikeRe.FindStringSubmatch(m)
		return p.Strike.Render(sub[1])
	})

	return line
}
