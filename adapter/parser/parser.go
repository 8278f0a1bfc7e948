// Package parser contains the default [domain.Parser] implementation. It
// compiles boolean query strings such as
//
//	">2[legs] and (*er[name] or >1990-01-01[caught])"
//
// into a [domain.Node] tree. NOT binds tighter than AND, AND binds tighter
// than OR; keywords are case-insensitive and parentheses group.
package parser

import (
	"strings"

	"github.com/vinicius-lino-figueiredo/boolq/domain"
)

// parser implements [domain.Parser].
type parser struct {
	spec domain.FieldSpecification
}

// New returns a new implementation of domain.Parser that validates field
// references against the given specification.
func New(spec domain.FieldSpecification) domain.Parser {
	return &parser{spec: spec}
}

// Parse implements domain.Parser.
func (p *parser) Parse(query string) (domain.Node, error) {
	if err := checkBalance(query); err != nil {
		return nil, err
	}
	s := &scanner{query: query}
	node, err := s.parseOr()
	if err != nil {
		return nil, err
	}
	s.skipSpace()
	if !s.eof() {
		return nil, s.syntaxError("unexpected trailing input")
	}
	if unknown := p.unknownFields(node); len(unknown) > 0 {
		return nil, domain.ErrQuerySyntax{Query: query, Unknown: unknown}
	}
	return node, nil
}

// unknownFields returns every field referenced by the tree that the
// specification does not recognise, in source order, without duplicates.
func (p *parser) unknownFields(node domain.Node) []string {
	var unknown []string
	seen := map[string]struct{}{}
	for _, field := range domain.Fields(node) {
		if _, err := p.spec.Match(field); err == nil {
			continue
		}
		lower := strings.ToLower(field)
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}
		unknown = append(unknown, field)
	}
	return unknown
}

// checkBalance rejects queries with unbalanced parentheses, brackets or
// quotes before any parsing happens. Delimiters inside quoted terms do not
// count.
func checkBalance(query string) error {
	var quote byte
	parens, brackets := 0, 0
	for i := 0; i < len(query); i++ {
		c := query[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '(':
			parens++
		case ')':
			parens--
			if parens < 0 {
				return domain.ErrQuerySyntax{Query: query, Reason: "unbalanced parentheses"}
			}
		case '[':
			brackets++
		case ']':
			brackets--
			if brackets < 0 {
				return domain.ErrQuerySyntax{Query: query, Reason: "unbalanced brackets"}
			}
		}
	}
	if quote != 0 {
		return domain.ErrQuerySyntax{Query: query, Reason: "unterminated quote"}
	}
	if parens != 0 {
		return domain.ErrQuerySyntax{Query: query, Reason: "unbalanced parentheses"}
	}
	if brackets != 0 {
		return domain.ErrQuerySyntax{Query: query, Reason: "unbalanced brackets"}
	}
	return nil
}
