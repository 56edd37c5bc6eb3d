package ui

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/x/ansi"
)

// Inline and block markdown patterns understood by the reply renderer
var (
	boldPattern       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	underscoreItalic  = regexp.MustCompile(`(^|[^a-zA-Z0-9_])_([^_]+)_([^a-zA-Z0-9_]|$)`)
	inlineCodePattern = regexp.MustCompile("`([^`]+)`")
	linkPattern       = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	orderedItem       = regexp.MustCompile(`^(\d{1,3})\. (.*)$`)
	headingPattern    = regexp.MustCompile(`^(#{1,4}) (.*)$`)
)

// highlightCode applies syntax highlighting to code using chroma and the
// active palette's code style
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(CurrentPalette().ChromaStyle())
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return strings.TrimRight(buf.String(), "\n")
}

// renderInline applies bold, italic, inline code and link formatting.
// Code spans are rendered first and shielded from the other rules.
func renderInline(line string) string {
	var spans []string
	line = inlineCodePattern.ReplaceAllStringFunc(line, func(match string) string {
		code := inlineCodePattern.FindStringSubmatch(match)[1]
		spans = append(spans, MarkdownInlineCodeStyle.Render(code))
		return fmt.Sprintf("\x00%d\x00", len(spans)-1)
	})

	line = boldPattern.ReplaceAllStringFunc(line, func(match string) string {
		return MarkdownBoldStyle.Render(boldPattern.FindStringSubmatch(match)[1])
	})
	line = underscoreItalic.ReplaceAllStringFunc(line, func(match string) string {
		m := underscoreItalic.FindStringSubmatch(match)
		return m[1] + MarkdownItalicStyle.Render(m[2]) + m[3]
	})
	line = linkPattern.ReplaceAllStringFunc(line, func(match string) string {
		m := linkPattern.FindStringSubmatch(match)
		return MarkdownLinkStyle.Render(m[1]) + " (" + MarkdownLinkStyle.Render(m[2]) + ")"
	})

	for i, span := range spans {
		line = strings.Replace(line, fmt.Sprintf("\x00%d\x00", i), span, 1)
	}
	return line
}

// wrapText wraps text to width, preserving ANSI sequences
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return ansi.Wordwrap(text, width, "")
}

// hangingIndent wraps body and indents continuation lines under the marker
func hangingIndent(marker, body string, width int) string {
	indent := strings.Repeat(" ", ansi.StringWidth(marker)+3)
	lines := strings.Split(wrapText(body, width-len(indent)), "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = indent + lines[i]
	}
	return "  " + marker + " " + strings.Join(lines, "\n")
}

// renderMarkdownLine renders one non-code line
func renderMarkdownLine(line string, width int) string {
	trimmed := strings.TrimSpace(line)

	if m := headingPattern.FindStringSubmatch(trimmed); m != nil {
		switch len(m[1]) {
		case 1:
			return MarkdownH1Style.Render(m[2])
		case 2:
			return MarkdownH2Style.Render(m[2])
		case 3:
			return MarkdownH3Style.Render(m[2])
		default:
			return MarkdownH4Style.Render(m[2])
		}
	}

	switch {
	case trimmed == "---" || trimmed == "***" || trimmed == "___":
		return MarkdownHRStyle.Render(strings.Repeat("─", min(max(width, 8), 32)))
	case strings.HasPrefix(trimmed, "> "):
		return MarkdownBlockquoteStyle.Render(wrapText(renderInline(trimmed[2:]), width-4))
	case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
		return hangingIndent(MarkdownListBulletStyle.Render("•"), renderInline(trimmed[2:]), width)
	}

	if m := orderedItem.FindStringSubmatch(trimmed); m != nil {
		return hangingIndent(MarkdownListBulletStyle.Render(m[1]+"."), renderInline(m[2]), width)
	}

	return wrapText(renderInline(line), width)
}

// renderMarkdown renders a reply with highlighted fenced code blocks. An
// unterminated fence is highlighted up to the end of the content.
func renderMarkdown(content string, width int) string {
	if width <= 0 {
		width = DefaultWrapWidth
	}

	var out []string
	var code []string
	lang := ""
	inFence := false

	flush := func() {
		out = append(out, highlightCode(strings.Join(code, "\n"), lang))
		code = code[:0]
		lang = ""
	}

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "```") {
			if inFence {
				flush()
			} else {
				lang = strings.TrimSpace(strings.TrimPrefix(line, "```"))
			}
			inFence = !inFence
			continue
		}
		if inFence {
			code = append(code, line)
			continue
		}
		out = append(out, renderMarkdownLine(line, width))
	}
	if inFence {
		flush()
	}

	return strings.TrimRight(strings.Join(out, "\n"), "\n")
}
