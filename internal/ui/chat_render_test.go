package ui

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []string
		notWant []string
	}{
		{"heading", "# Title", []string{"Title"}, []string{"#"}},
		{"bold", "this is **loud**", []string{"this is loud"}, []string{"**"}},
		{"inline code", "run `go test`", []string{"go test"}, []string{"`"}},
		{"bullet", "- item one", []string{"• item one"}, nil},
		{"ordered", "2. second", []string{"2. second"}, nil},
		{"link", "see [docs](https://example.com)", []string{"docs"}, []string{"]("}},
		{"rule", "---", []string{"─"}, nil},
		{"fenced code", "```go\nfunc main() {}\n```", []string{"func", "main"}, []string{"```"}},
		{"unterminated fence", "```\nstill code", []string{"still code"}, []string{"```"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := stripANSI(renderMarkdown(tt.in, 60))
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output %q missing %q", out, w)
				}
			}
			for _, nw := range tt.notWant {
				if strings.Contains(out, nw) {
					t.Errorf("output %q should not contain %q", out, nw)
				}
			}
		})
	}
}

func TestRenderMarkdown_Wraps(t *testing.T) {
	long := strings.Repeat("word ", 40)
	out := stripANSI(renderMarkdown(long, 30))

	for _, line := range strings.Split(out, "\n") {
		if len([]rune(line)) > 30 {
			t.Errorf("line %q exceeds wrap width", line)
		}
	}
}

func TestHighlightCode_UnknownLanguage(t *testing.T) {
	out := stripANSI(highlightCode("plain text here", "no-such-language"))
	if !strings.Contains(out, "plain text here") {
		t.Errorf("fallback highlighting lost the text: %q", out)
	}
}
