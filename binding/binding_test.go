package binding

import "testing"

func TestInterpolate(t *testing.T) {
	cases := []struct {
		text string
		vars map[string]any
		want string
	}{
		{"- ${page} -", map[string]any{"page": 12}, "- 12 -"},
		{"${alt} (under '${title}')", map[string]any{"alt": "Other", "title": "Main"}, "Other (under 'Main')"},
		{"${ missing }", map[string]any{"page": 1}, "${ missing }"},
		{"${song.title}", map[string]any{"song": map[string]any{"title": "Nested"}}, "Nested"},
		{"${}", map[string]any{"page": 1}, "${}"},
		{"no placeholders", nil, "no placeholders"},
	}
	for _, tc := range cases {
		if got := Interpolate(tc.text, tc.vars); got != tc.want {
			t.Fatalf("Interpolate(%q) = %q want %q", tc.text, got, tc.want)
		}
	}
}

func TestTemplateReuse(t *testing.T) {
	tpl := Compile("Fret ${fret}")
	if got := tpl.Execute(map[string]any{"fret": 2}); got != "Fret 2" {
		t.Fatalf("got %q", got)
	}
	if got := tpl.Execute(map[string]any{"fret": 5}); got != "Fret 5" {
		t.Fatalf("got %q", got)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate("${alt} / ${title}", "alt", "title"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate("${page} of ${total}", "page"); err == nil {
		t.Fatalf("expected error for unknown placeholder")
	}
}
