package grammarfile

import (
	"strings"

	"github.com/hhenn/grouper/ccerrors"
	"github.com/hhenn/grouper/grammar"
	"github.com/hhenn/grouper/lex"
)

// Parsed is the result of parsing a grammar source document: a populated
// Grammar, the lexer token definitions in declaration order, and any
// trailing free text found after the second %% separator.
type Parsed struct {
	Grammar *grammar.Grammar
	Tokens  []lex.TokenDef
	Trailer string
}

// Parse parses src per spec.md §6's grammar source format.
func Parse(src string) (*Parsed, error) {
	defsSrc, prodsSrc, trailer, err := splitSections(src)
	if err != nil {
		return nil, err
	}

	g := grammar.New()
	var tokens []lex.TokenDef
	var startName string

	if err := parseDefinitions(defsSrc, g, &tokens, &startName); err != nil {
		return nil, err
	}

	if err := parseProductions(prodsSrc, g); err != nil {
		return nil, err
	}

	if startName != "" {
		if err := g.SetStart(startName); err != nil {
			return nil, ccerrors.Wrap(ccerrors.GrammarReference, err, "%%start directive")
		}
	}

	if err := g.Validate(); err != nil {
		return nil, ccerrors.Wrap(ccerrors.GrammarReference, err, "grammar validation failed")
	}

	return &Parsed{Grammar: g, Tokens: tokens, Trailer: trailer}, nil
}

// parseDefinitions handles the %token/%left/%right/%nonassoc/%start
// directives, one per non-blank, non-comment line.
func parseDefinitions(src string, g *grammar.Grammar, tokens *[]lex.TokenDef, startName *string) error {
	for _, line := range strings.Split(src, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		fields := strings.Fields(trimmed)
		directive := fields[0]

		switch directive {
		case "%start":
			if len(fields) != 2 {
				return ccerrors.New(ccerrors.GrammarReference, "%%start requires exactly one non-terminal name")
			}
			*startName = fields[1]

		case "%token", "%left", "%right", "%nonassoc":
			assoc := assocFor(directive)
			rest := fields[1:]
			// optional <tag> is accepted and ignored: the reference exposes
			// associativity on the terminal record without using it in
			// conflict resolution (spec.md §9).
			if len(rest) > 0 && strings.HasPrefix(rest[0], "<") && strings.HasSuffix(rest[0], ">") {
				rest = rest[1:]
			}
			if len(rest) < 2 {
				return ccerrors.New(ccerrors.GrammarReference, "%s requires a NAME and a REGEX", directive)
			}
			name := rest[0]
			regexPattern := strings.Join(rest[1:], " ")
			if _, err := g.AddTerm(name, regexPattern, assoc); err != nil {
				return ccerrors.Wrap(ccerrors.GrammarReference, err, "declaring token %q", name)
			}
			*tokens = append(*tokens, lex.TokenDef{Name: name, Regex: regexPattern})

		default:
			return ccerrors.New(ccerrors.GrammarReference, "unknown directive %q", directive)
		}
	}
	return nil
}

func assocFor(directive string) grammar.Assoc {
	switch directive {
	case "%left":
		return grammar.AssocLeft
	case "%right":
		return grammar.AssocRight
	case "%nonassoc":
		return grammar.AssocNonAssoc
	default:
		return grammar.AssocNone
	}
}

// parseProductions parses `NAME : symbol* { action } | ... ;` rules.
func parseProductions(src string, g *grammar.Grammar) error {
	s := newProdScanner(src)

	for {
		t, err := s.next()
		if err != nil {
			return err
		}
		if t.kind == tEOF {
			return nil
		}
		if t.kind != tIdent {
			return ccerrors.NewAt(ccerrors.GrammarReference, t.pos, "expected non-terminal name")
		}
		lhs := t.text

		colon, err := s.next()
		if err != nil {
			return err
		}
		if colon.kind != tColon {
			return ccerrors.NewAt(ccerrors.GrammarReference, colon.pos, "expected ':' after %q", lhs)
		}

		for {
			var symbols []string
			action := ""

			for {
				pt, err := s.next()
				if err != nil {
					return err
				}
				switch pt.kind {
				case tIdent:
					symbols = append(symbols, pt.text)
				case tLBrace:
					at, err := s.next()
					if err != nil {
						return err
					}
					if at.kind != tIdent {
						return ccerrors.NewAt(ccerrors.GrammarReference, at.pos, "expected action name inside { }")
					}
					action = at.text
					rb, err := s.next()
					if err != nil {
						return err
					}
					if rb.kind != tRBrace {
						return ccerrors.NewAt(ccerrors.GrammarReference, rb.pos, "expected '}' after action name")
					}
				case tPipe, tSemi:
					g.AddRule(lhs, symbols, action)
					if pt.kind == tSemi {
						goto nextRule
					}
					goto nextAlt
				default:
					return ccerrors.NewAt(ccerrors.GrammarReference, pt.pos, "unexpected token in production body")
				}
			}
		nextAlt:
		}
	nextRule:
	}
}
