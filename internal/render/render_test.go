package render

import (
	"strings"
	"testing"
)

func TestRenderSubstitutesDeclaredVariables(t *testing.T) {
	got := Render("Hi {{name}}, welcome to {{plan}}!", []string{"name", "plan"},
		map[string]any{"name": "Ana", "plan": "Pro"})
	want := "Hi Ana, welcome to Pro!"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderLeavesUnlistedPlaceholders(t *testing.T) {
	got := Render("Hi {{name}}, {{unused}}!", []string{"name"}, map[string]any{"name": "Ana"})
	want := "Hi Ana, {{unused}}!"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderAbsentValueIsEmpty(t *testing.T) {
	got := Render("Hello {{name}}.", []string{"name"}, map[string]any{})
	if got != "Hello ." {
		t.Errorf("got %q", got)
	}
}

func TestRenderReplacesAllOccurrences(t *testing.T) {
	got := Render("{{x}} and {{x}}", []string{"x"}, map[string]any{"x": "y"})
	if got != "y and y" {
		t.Errorf("got %q", got)
	}
}

func TestRenderStringifiesNumbers(t *testing.T) {
	got := Render("Total: {{count}}", []string{"count"}, map[string]any{"count": float64(7)})
	if got != "Total: 7" {
		t.Errorf("got %q", got)
	}
}

func TestToHTMLPlainText(t *testing.T) {
	got := ToHTML("Hello Ana,\nwelcome.\n\nSee you soon.")
	want := "<p>Hello Ana,<br>welcome.</p><p>See you soon.</p>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestToHTMLPassesMarkupThrough(t *testing.T) {
	src := "<html><body><h1>Hi</h1></body></html>"
	if got := ToHTML(src); got != src {
		t.Errorf("markup was transformed: %q", got)
	}
}

func TestPreviewEngineFilters(t *testing.T) {
	pe := NewPreviewEngine()

	out, err := pe.Preview(`Hi {{ first_name | default: "Friend" }}`, map[string]any{})
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if out != "Hi Friend" {
		t.Errorf("got %q", out)
	}

	out, err = pe.Preview(`{{ name | titlecase }}`, map[string]any{"name": "ana lima"})
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if out != "Ana Lima" {
		t.Errorf("got %q", out)
	}
}

func TestPreviewEngineValidate(t *testing.T) {
	pe := NewPreviewEngine()
	if err := pe.Validate(`{% if x %}ok{% endif %}`); err != nil {
		t.Errorf("valid template rejected: %v", err)
	}
	if err := pe.Validate(`{% if x %}broken`); err == nil {
		t.Error("expected syntax error for unterminated tag")
	}
}

func TestPreviewEngineCachesParsedTemplates(t *testing.T) {
	pe := NewPreviewEngine()
	src := `Hello {{ name }}`
	if _, err := pe.Preview(src, map[string]any{"name": "a"}); err != nil {
		t.Fatal(err)
	}
	if _, ok := pe.cache.Load(src); !ok {
		t.Error("template not cached after first render")
	}
	out, err := pe.Preview(src, map[string]any{"name": "b"})
	if err != nil || !strings.Contains(out, "b") {
		t.Errorf("cached render wrong: %q, %v", out, err)
	}
}
