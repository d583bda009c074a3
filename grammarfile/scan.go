// Package grammarfile parses the grammar source format from spec.md §6: a
// `%%`-delimited text with a definitions section, a productions section, and
// optional trailing free text.
//
// Grounded in shape on the teacher's internal/ictiobus/fishi.go
// (read-whole-source, hand-rolled scan over a grammar-bearing document), but
// without its markdown-fenced-code-block extraction: grouper's grammar
// source is not embedded in markdown, per spec.md's external-interface
// description. This package is deliberately not built atop the lex/lr
// machinery it feeds — "no part of [the compiler-compiler] is self-hosted,"
// per the teacher's own comment on RegexToNFA.
package grammarfile

import (
	"strings"

	"github.com/hhenn/grouper/ccerrors"
)

type tokKind int

const (
	tIdent tokKind = iota
	tColon
	tPipe
	tSemi
	tLBrace
	tRBrace
	tEOF
)

type tok struct {
	kind tokKind
	text string
	pos  int
}

// prodScanner tokenizes the productions section: identifiers plus the
// structural punctuation `: | ; { }`.
type prodScanner struct {
	src string
	pos int
}

func newProdScanner(src string) *prodScanner {
	return &prodScanner{src: src}
}

func (s *prodScanner) next() (tok, error) {
	for s.pos < len(s.src) && isSpace(s.src[s.pos]) {
		s.pos++
	}
	if s.pos >= len(s.src) {
		return tok{kind: tEOF, pos: s.pos}, nil
	}

	start := s.pos
	c := s.src[s.pos]

	switch c {
	case ':':
		s.pos++
		return tok{kind: tColon, pos: start}, nil
	case '|':
		s.pos++
		return tok{kind: tPipe, pos: start}, nil
	case ';':
		s.pos++
		return tok{kind: tSemi, pos: start}, nil
	case '{':
		s.pos++
		return tok{kind: tLBrace, pos: start}, nil
	case '}':
		s.pos++
		return tok{kind: tRBrace, pos: start}, nil
	case '\'':
		s.pos++
		qstart := s.pos
		for s.pos < len(s.src) && s.src[s.pos] != '\'' {
			s.pos++
		}
		if s.pos >= len(s.src) {
			return tok{}, ccerrors.NewAt(ccerrors.GrammarReference, start, "unterminated quoted symbol")
		}
		text := s.src[qstart:s.pos]
		s.pos++ // closing quote
		return tok{kind: tIdent, text: text, pos: start}, nil
	}

	for s.pos < len(s.src) && !isSpace(s.src[s.pos]) && !isPunct(s.src[s.pos]) {
		s.pos++
	}
	if s.pos == start {
		return tok{}, ccerrors.NewAt(ccerrors.GrammarReference, start, "unexpected character %q", string(c))
	}
	return tok{kind: tIdent, text: s.src[start:s.pos], pos: start}, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isPunct(c byte) bool {
	switch c {
	case ':', '|', ';', '{', '}', '\'':
		return true
	}
	return false
}

// splitSections splits src on the first one or two `%%` delimiters into
// definitions, productions, and an optional trailing free-text section.
func splitSections(src string) (defs, prods, trailer string, err error) {
	first := strings.Index(src, "%%")
	if first < 0 {
		return "", "", "", ccerrors.New(ccerrors.GrammarReference, "grammar source missing %%%% section separator")
	}
	defs = src[:first]
	rest := src[first+2:]

	second := strings.Index(rest, "%%")
	if second < 0 {
		prods = rest
		return defs, prods, "", nil
	}
	prods = rest[:second]
	trailer = rest[second+2:]
	return defs, prods, trailer, nil
}
