// Package tcl quotes and splits Tcl lists without needing an interpreter.
package tcl

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnbalanced = errors.New("unbalanced list")

// List joins elements into a well-formed Tcl list.
func List(elems ...string) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = Quote(e)
		// A leading # would read as a comment when the list is evaluated.
		if i == 0 && strings.HasPrefix(parts[i], "#") {
			if canBrace(e) {
				parts[i] = "{" + e + "}"
			} else {
				parts[i] = `\` + parts[i]
			}
		}
	}
	return strings.Join(parts, " ")
}

// Quote returns s as a single Tcl word.
func Quote(s string) string {
	if s == "" {
		return "{}"
	}
	if !needsQuoting(s) {
		return s
	}
	if canBrace(s) {
		return "{" + s + "}"
	}
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\v':
			b.WriteString(`\v`)
		case '\f':
			b.WriteString(`\f`)
		case ' ', '{', '}', '[', ']', '$', ';', '"', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsQuoting(s string) bool {
	return strings.ContainsAny(s, " \t\n\r\v\f{}[]$;\"\\")
}

// canBrace reports whether wrapping s in braces preserves it verbatim.
func canBrace(s string) bool {
	if strings.Contains(s, `\`) {
		return false
	}
	depth := 0
	for _, r := range s {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// Split parses a Tcl list into its elements.
func Split(list string) ([]string, error) {
	var out []string
	p := parser{src: list}
	for {
		p.skipSpace()
		if p.done() {
			return out, nil
		}
		var (
			elem string
			err  error
		)
		switch p.peek() {
		case '{':
			elem, err = p.braced()
		case '"':
			elem, err = p.quoted()
		default:
			elem = p.bare()
		}
		if err != nil {
			return nil, fmt.Errorf("split %q: %w", list, err)
		}
		out = append(out, elem)
	}
}

type parser struct {
	src string
	pos int
}

func (p *parser) done() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte { return p.src[p.pos] }

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func (p *parser) skipSpace() {
	for !p.done() && isSpace(p.peek()) {
		p.pos++
	}
}

func (p *parser) braced() (string, error) {
	p.pos++
	start := p.pos
	depth := 1
	for !p.done() {
		c := p.peek()
		switch c {
		case '\\':
			p.pos += 2
			continue
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				elem := p.src[start:p.pos]
				p.pos++
				if !p.done() && !isSpace(p.peek()) {
					return "", errors.New("text after closing brace")
				}
				return elem, nil
			}
		}
		p.pos++
	}
	return "", ErrUnbalanced
}

func (p *parser) quoted() (string, error) {
	p.pos++
	var b strings.Builder
	for !p.done() {
		c := p.peek()
		switch c {
		case '"':
			p.pos++
			if !p.done() && !isSpace(p.peek()) {
				return "", errors.New("text after closing quote")
			}
			return b.String(), nil
		case '\\':
			p.escape(&b)
			continue
		}
		b.WriteByte(c)
		p.pos++
	}
	return "", errors.New("missing closing quote")
}

func (p *parser) bare() string {
	var b strings.Builder
	for !p.done() && !isSpace(p.peek()) {
		if p.peek() == '\\' {
			p.escape(&b)
			continue
		}
		b.WriteByte(p.peek())
		p.pos++
	}
	return b.String()
}

func (p *parser) escape(b *strings.Builder) {
	p.pos++
	if p.done() {
		b.WriteByte('\\')
		return
	}
	c := p.peek()
	p.pos++
	switch c {
	case 'n':
		b.WriteByte('\n')
	case 't':
		b.WriteByte('\t')
	case 'r':
		b.WriteByte('\r')
	case 'v':
		b.WriteByte('\v')
	case 'f':
		b.WriteByte('\f')
	default:
		b.WriteByte(c)
	}
}
