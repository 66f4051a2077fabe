package widgets

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const defaultHighlightStyle = "github"

// SetHighlightStyle selects the chroma style used by Highlight, e.g.
// "github-dark".
func (b *TextBuffer) SetHighlightStyle(name string) {
	b.highlightStyle = name
}

// Highlight colours the current content as source code. An empty lang lets
// chroma guess from the content.
func (b *TextBuffer) Highlight(lang string) error {
	content := b.Value()
	b.ClearHighlight()
	if content == "" {
		return nil
	}
	lexer := lexerFor(lang, content)
	style := styles.Get(b.highlightStyle)
	if style == nil {
		style = styles.Fallback
	}
	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return fmt.Errorf("tokenise %s: %w", lexer.Config().Name, err)
	}
	pos := TextIndex{Line: 1}
	for _, token := range iterator.Tokens() {
		color := colorFromEntry(style.Get(token.Type))
		for i, part := range strings.Split(token.Value, "\n") {
			if i > 0 {
				pos = TextIndex{Line: pos.Line + 1}
			}
			length := utf8.RuneCountInString(part)
			if length == 0 {
				continue
			}
			end := TextIndex{Line: pos.Line, Col: pos.Col + length}
			if tag := b.syntaxTagForColor(color); tag != "" {
				b.widget.TagAdd(tag, pos, end)
			}
			pos = end
		}
	}
	return nil
}

// ClearHighlight removes every colour tag added by Highlight.
func (b *TextBuffer) ClearHighlight() {
	for _, tag := range b.syntaxTags {
		b.widget.TagRemove(tag)
	}
}

func (b *TextBuffer) syntaxTagForColor(color string) string {
	if color == "" {
		return ""
	}
	if b.syntaxTags == nil {
		b.syntaxTags = make(map[string]string)
	}
	if tag, ok := b.syntaxTags[color]; ok {
		return tag
	}
	tag := fmt.Sprintf("syntax_%d", len(b.syntaxTags))
	b.widget.TagConfigure(tag, color)
	b.syntaxTags[color] = tag
	return tag
}

func lexerFor(lang, content string) chroma.Lexer {
	var lexer chroma.Lexer
	if lang != "" {
		lexer = lexers.Get(lang)
	} else {
		lexer = lexers.Analyse(content)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

func colorFromEntry(entry chroma.StyleEntry) string {
	if !entry.Colour.IsSet() {
		return ""
	}
	col := strings.TrimPrefix(strings.ToLower(entry.Colour.String()), "#")
	return "#" + col
}
