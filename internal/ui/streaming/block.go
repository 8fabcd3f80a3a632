package streaming

import (
	"regexp"
	"strings"
)

// lineKind is the structural classification of a complete non-fence line.
type lineKind int

const (
	kindParagraph lineKind = iota
	kindHeading1
	kindHeading2
	kindHeading3
	kindRule
	kindUnorderedItem
	kindOrderedItem
	kindBlockquote
)

var (
	ruleRe      = regexp.MustCompile(`^\s*(-{3,}|\*{3,}|_{3,})\s*$`)
	unorderedRe = regexp.MustCompile(`^(\s*)([*-]) `)
	orderedRe   = regexp.MustCompile(`^(\s*)(\d+)\. `)
)

// classifyLine inspects the ORIGINAL line and returns its kind plus the
// byte length of the structural prefix. Detection must run on the raw line;
// inline styling escapes would otherwise corrupt prefix matching.
func classifyLine(original string) (lineKind, int) {
	switch {
	case strings.HasPrefix(original, "### "):
		return kindHeading3, 4
	case strings.HasPrefix(original, "## "):
		return kindHeading2, 3
	case strings.HasPrefix(original, "# "):
		return kindHeading1, 2
	}

	if ruleRe.MatchString(original) {
		return kindRule, 0
	}
	if m := unorderedRe.FindStringSubmatch(original); m != nil {
		return kindUnorderedItem, len(m[0])
	}
	if m := orderedRe.FindStringSubmatch(original); m != nil {
		return kindOrderedItem, len(m[0])
	}
	if strings.HasPrefix(original, "> ") {
		return kindBlockquote, 2
	}
	return kindParagraph, 0
}

// renderBlock decorates one complete line. The original line drives
// structural detection; the transformed line supplies the content. The
// inline pass never touches structural prefixes, so stripping the same
// byte count from both views is safe.
func (r *Renderer) renderBlock(original string) string {
	transformed := transformInline(original, r.palette)
	kind, prefixLen := classifyLine(original)
	content := transformed[prefixLen:]

	switch kind {
	case kindHeading1:
		return r.palette.Heading1.Render(content)
	case kindHeading2:
		return r.palette.Heading2.Render(content)
	case kindHeading3:
		return r.palette.Heading3.Render(content)
	case kindRule:
		return r.palette.RuleBar.Render(strings.Repeat("─", r.ruleWidth))
	case kindUnorderedItem:
		indent := leadingWhitespace(original)
		return indent + r.palette.ListMarker.Render("•") + " " + content
	case kindOrderedItem:
		indent := leadingWhitespace(original)
		m := orderedRe.FindStringSubmatch(original)
		return indent + r.palette.ListMarker.Render(m[2]+".") + " " + content
	case kindBlockquote:
		return r.palette.QuoteBar.Render("│") + " " + content
	default:
		return transformed
	}
}

func leadingWhitespace(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return s[:i]
		}
	}
	return s
}
