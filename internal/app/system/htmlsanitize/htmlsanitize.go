// Package htmlsanitize cleans HTML fragments that arrive through the
// runtime settings document before they are rendered in the shell.
package htmlsanitize

import (
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// footerPolicy allows inline formatting and links only. Block layout
// belongs to the footer template, not the settings document.
var footerPolicy = newFooterPolicy()

func newFooterPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "strong", "i", "em", "u", "small", "br", "span")
	p.AllowAttrs("href").OnElements("a")
	p.AllowURLSchemes("http", "https", "mailto", "tel")
	p.RequireParseableURLs(true)
	p.RequireNoFollowOnLinks(true)
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("span", "a")
	return p
}

// Footer sanitizes a footer fragment and returns it as a string.
func Footer(s string) string {
	if s == "" {
		return ""
	}
	return footerPolicy.Sanitize(s)
}

// FooterHTML sanitizes a footer fragment for direct use in templates.
func FooterHTML(s string) template.HTML {
	return template.HTML(Footer(s))
}

// IsPlainText reports whether s contains no markup.
func IsPlainText(s string) bool {
	return !strings.ContainsAny(s, "<>")
}
