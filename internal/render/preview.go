package render

import (
	"fmt"
	"html"
	"net/url"
	"strings"
	"sync"

	"github.com/osteele/liquid"
)

// PreviewEngine renders template previews with the full Liquid language and a
// small set of marketing filters. It exists for authoring-time previews only;
// the campaign send path uses the literal Render above so that declared
// variable lists stay authoritative.
type PreviewEngine struct {
	engine *liquid.Engine
	cache  sync.Map // template source → *liquid.Template
}

// NewPreviewEngine creates a preview engine with custom filters registered.
func NewPreviewEngine() *PreviewEngine {
	pe := &PreviewEngine{engine: liquid.NewEngine()}
	pe.registerFilters()
	return pe
}

func (pe *PreviewEngine) registerFilters() {
	// {{ first_name | default: "Friend" }}
	pe.engine.RegisterFilter("default", func(value any, fallback string) any {
		s := fmt.Sprintf("%v", value)
		if value == nil || s == "" || s == "<nil>" {
			return fallback
		}
		return value
	})

	// {{ name | titlecase }}
	pe.engine.RegisterFilter("titlecase", func(s string) string {
		words := strings.Fields(strings.ToLower(s))
		for i, w := range words {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
		return strings.Join(words, " ")
	})

	// {{ bio | truncate: 50 }}
	pe.engine.RegisterFilter("truncate", func(s string, length int) string {
		if len(s) <= length {
			return s
		}
		if length <= 3 {
			return s[:length]
		}
		return s[:length-3] + "..."
	})

	// {{ email | urlencode }}
	pe.engine.RegisterFilter("urlencode", url.QueryEscape)

	// {{ user_input | escape }}
	pe.engine.RegisterFilter("escape", html.EscapeString)

	// {{ email | email_domain }}
	pe.engine.RegisterFilter("email_domain", func(email string) string {
		if at := strings.LastIndex(email, "@"); at >= 0 {
			return email[at+1:]
		}
		return ""
	})
}

// Preview parses and renders a template against the given context. Parsed
// templates are cached by source so repeated previews of the same draft are
// cheap.
func (pe *PreviewEngine) Preview(source string, ctx map[string]any) (string, error) {
	if cached, ok := pe.cache.Load(source); ok {
		return cached.(*liquid.Template).RenderString(ctx)
	}

	tpl, err := pe.engine.ParseString(source)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}
	pe.cache.Store(source, tpl)
	return tpl.RenderString(ctx)
}

// Validate reports template syntax errors without rendering.
func (pe *PreviewEngine) Validate(source string) error {
	_, err := pe.engine.ParseString(source)
	return err
}
