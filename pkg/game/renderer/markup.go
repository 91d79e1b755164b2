package renderer

import (
	"regexp"
	"strings"
)

// markupRegex matches FUNCTION{content}
var markupRegex = regexp.MustCompile(`([A-Z][A-Z0-9_]*)\{([^}]*)\}`)

// Segment is a run of text sharing one style
type Segment struct {
	Text  string
	Style TextStyle
}

// StyleFor maps a markup function name to a style. Unknown functions render
// as normal text.
func StyleFor(function string) TextStyle {
	switch function {
	case "ITEM":
		return StyleItem
	case "ACTION":
		return StyleAction
	case "DENIED":
		return StyleDenied
	case "WIN":
		return StyleWin
	default:
		return StyleNormal
	}
}

// ParseMarkup splits a message with markup (ITEM{}, ACTION{}, DENIED{},
// WIN{}) into styled segments. Empty segments are dropped.
func ParseMarkup(msg string) []Segment {
	var segments []Segment
	lastIndex := 0

	for _, match := range markupRegex.FindAllStringSubmatchIndex(msg, -1) {
		if match[0] > lastIndex {
			segments = append(segments, Segment{Text: msg[lastIndex:match[0]], Style: StyleNormal})
		}

		function := msg[match[2]:match[3]]
		content := msg[match[4]:match[5]]
		if content != "" {
			segments = append(segments, Segment{Text: content, Style: StyleFor(function)})
		}
		lastIndex = match[1]
	}

	if lastIndex < len(msg) {
		segments = append(segments, Segment{Text: msg[lastIndex:], Style: StyleNormal})
	}
	return segments
}

// StripMarkup returns msg with markup functions removed and their content kept
func StripMarkup(msg string) string {
	var b strings.Builder
	for _, seg := range ParseMarkup(msg) {
		b.WriteString(seg.Text)
	}
	return b.String()
}
