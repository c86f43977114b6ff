// Package textutil provides plain-text normalization for feed content.
package textutil

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML extracts the text content of an HTML fragment and collapses
// whitespace. Feed descriptions routinely embed markup (thumbnails, line
// breaks, tracking pixels); only the readable text survives.
func StripHTML(fragment string) string {
	if fragment == "" {
		return ""
	}

	var b strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(fragment))

	for {
		tt := tokenizer.Next()
		switch tt {
		case html.ErrorToken:
			// io.EOF or malformed markup; either way we keep what we have.
			return CollapseWhitespace(b.String())
		case html.TextToken:
			b.Write(tokenizer.Text())
			b.WriteByte(' ')
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			switch string(name) {
			case "script", "style":
				skipUntilClose(tokenizer, string(name))
			}
		}
	}
}

// skipUntilClose discards tokens until the matching close tag or EOF.
func skipUntilClose(tokenizer *html.Tokenizer, tag string) {
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if string(name) == tag {
				return
			}
		}
	}
}

// CollapseWhitespace trims the string and folds runs of whitespace,
// including newlines and tabs, into single spaces.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate shortens s to at most max runes, appending "..." when it had to
// cut. Runes, not bytes: Vietnamese text is multi-byte throughout.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
