// Package render performs template placeholder substitution for campaign
// sends and converts the result into sendable HTML.
//
// Substitution is deliberately literal: only tokens named in the template's
// declared variable list are replaced. A `{{token}}` present in the content
// but absent from the list is left untouched — the variable list is the
// contract, not the content.
package render

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// Render substitutes `{{name}}` for each declared variable, in listed order,
// replacing all occurrences. Absent values substitute as the empty string.
func Render(content string, variables []string, values map[string]any) string {
	out := content
	for _, name := range variables {
		token := "{{" + name + "}}"
		out = strings.ReplaceAll(out, token, stringify(values[name]))
	}
	return out
}

// RenderHTML substitutes variables and converts the result to HTML markup.
func RenderHTML(content string, variables []string, values map[string]any) string {
	return ToHTML(Render(content, variables, values))
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		// JSON numbers decode as float64; keep integral values clean.
		if s == float64(int64(s)) {
			return fmt.Sprintf("%d", int64(s))
		}
		return fmt.Sprintf("%v", s)
	default:
		return fmt.Sprintf("%v", v)
	}
}

var htmlTagRegex = regexp.MustCompile(`(?s)<[a-zA-Z!/][^>]*>`)

// ToHTML converts plain-text content to HTML: blank-line-separated blocks
// become paragraphs, single newlines become <br>. Content that already
// contains markup passes through unchanged.
func ToHTML(content string) string {
	if htmlTagRegex.MatchString(content) {
		return content
	}

	blocks := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n\n")
	var b strings.Builder
	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(strings.ReplaceAll(html.EscapeString(block), "\n", "<br>"))
		b.WriteString("</p>")
	}
	return b.String()
}
