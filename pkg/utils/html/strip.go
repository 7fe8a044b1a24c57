// ABOUTME: HTML utilities for turning article abstracts and snippets into plain text
// ABOUTME: Parses fragments with goquery so tags are dropped and entities decoded

package html

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML returns the visible text of an HTML fragment with whitespace
// collapsed. Script and style contents are removed. Text without markup is
// returned trimmed and otherwise unchanged.
func StripHTML(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return CollapseWhitespace(fragment)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return CollapseWhitespace(fragment)
	}

	doc.Find("script, style, noscript").Remove()
	doc.Find("br, p, div, li").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml(" ")
	})

	return CollapseWhitespace(doc.Text())
}

// CollapseWhitespace trims s and replaces every whitespace run with one space
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
