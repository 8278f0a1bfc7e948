package parser

import (
	"strings"

	"github.com/vinicius-lino-figueiredo/boolq/domain"
)

// scanner is a single-use recursive descent pass over one query string.
type scanner struct {
	query string
	pos   int
}

// parseOr parses a disjunction of one or more conjunctions.
func (s *scanner) parseOr() (domain.Node, error) {
	first, err := s.parseAnd()
	if err != nil {
		return nil, err
	}
	operands := []domain.Node{first}
	for s.keyword("or") {
		next, err := s.parseAnd()
		if err != nil {
			return nil, err
		}
		operands = append(operands, next)
	}
	if len(operands) == 1 {
		return first, nil
	}
	return domain.Or{Operands: operands}, nil
}

// parseAnd parses a conjunction of one or more negations.
func (s *scanner) parseAnd() (domain.Node, error) {
	first, err := s.parseNot()
	if err != nil {
		return nil, err
	}
	operands := []domain.Node{first}
	for s.keyword("and") {
		next, err := s.parseNot()
		if err != nil {
			return nil, err
		}
		operands = append(operands, next)
	}
	if len(operands) == 1 {
		return first, nil
	}
	return domain.And{Operands: operands}, nil
}

// parseNot parses zero or more stacked NOT keywords followed by an atom.
// NOT is right-associative, so "not not x" negates twice.
func (s *scanner) parseNot() (domain.Node, error) {
	if s.keyword("not") {
		operand, err := s.parseNot()
		if err != nil {
			return nil, err
		}
		return domain.Not{Operand: operand}, nil
	}
	return s.parseAtom()
}

// parseAtom parses a parenthesised group or a search leaf.
func (s *scanner) parseAtom() (domain.Node, error) {
	s.skipSpace()
	if s.peek() == '(' {
		s.pos++
		node, err := s.parseOr()
		if err != nil {
			return nil, err
		}
		s.skipSpace()
		if s.peek() != ')' {
			return nil, s.syntaxError("expected closing parenthesis")
		}
		s.pos++
		return node, nil
	}
	return s.parseLeaf()
}

// parseLeaf parses a single search term: a comparator leaf, a list leaf, a
// quoted string leaf or a bare string leaf, each followed by a bracketed
// field name.
func (s *scanner) parseLeaf() (domain.Node, error) {
	s.skipSpace()
	switch c := s.peek(); c {
	case '>', '<', '=':
		s.pos++
		term := s.word(isNumberChar)
		if term == "" {
			return nil, s.syntaxError("expected numeric search term")
		}
		field, err := s.parseField()
		if err != nil {
			return nil, err
		}
		comp := domain.Eq
		switch c {
		case '>':
			comp = domain.Gt
		case '<':
			comp = domain.Lt
		}
		return domain.NumberSearch{Comp: comp, Term: term, Field: field}, nil
	case '!', '?':
		s.pos++
		term := s.word(isListChar)
		if term == "" {
			return nil, s.syntaxError("expected list search term")
		}
		field, err := s.parseField()
		if err != nil {
			return nil, err
		}
		comp := domain.SetEquals
		if c == '?' {
			comp = domain.SetContains
		}
		return domain.ListSearch{Comp: comp, Term: term, Field: field}, nil
	case '\'', '"':
		term, err := s.quoted(c)
		if err != nil {
			return nil, err
		}
		field, err := s.parseField()
		if err != nil {
			return nil, err
		}
		return domain.StringSearch{Term: term, Field: field}, nil
	default:
		term := s.word(isStringChar)
		if term == "" {
			return nil, s.syntaxError("expected search term")
		}
		field, err := s.parseField()
		if err != nil {
			return nil, err
		}
		return domain.StringSearch{Term: term, Field: field}, nil
	}
}

// parseField parses a bracketed field name.
func (s *scanner) parseField() (string, error) {
	s.skipSpace()
	if s.peek() != '[' {
		return "", s.syntaxError("expected bracketed field name")
	}
	s.pos++
	field := s.word(isAlpha)
	if field == "" {
		return "", s.syntaxError("expected field name")
	}
	if s.peek() != ']' {
		return "", s.syntaxError("expected closing bracket")
	}
	s.pos++
	return field, nil
}

// keyword consumes the given keyword, case-insensitively, if the text at
// the cursor is the keyword and not a search term that merely starts with
// it. A word immediately followed by a term character or an opening
// bracket is a term, never a keyword.
func (s *scanner) keyword(kw string) bool {
	s.skipSpace()
	if s.pos+len(kw) > len(s.query) {
		return false
	}
	if !strings.EqualFold(s.query[s.pos:s.pos+len(kw)], kw) {
		return false
	}
	if next := s.pos + len(kw); next < len(s.query) {
		c := s.query[next]
		if isStringChar(c) || c == '[' {
			return false
		}
	}
	s.pos += len(kw)
	return true
}

// quoted consumes a term delimited by the given quote character.
func (s *scanner) quoted(quote byte) (string, error) {
	s.pos++
	start := s.pos
	for s.pos < len(s.query) && s.query[s.pos] != quote {
		s.pos++
	}
	if s.pos >= len(s.query) {
		return "", s.syntaxError("unterminated quote")
	}
	term := s.query[start:s.pos]
	s.pos++
	return term, nil
}

// word consumes the longest run of characters matching the class.
func (s *scanner) word(match func(byte) bool) string {
	start := s.pos
	for s.pos < len(s.query) && match(s.query[s.pos]) {
		s.pos++
	}
	return s.query[start:s.pos]
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.query) && (s.query[s.pos] == ' ' || s.query[s.pos] == '\t' || s.query[s.pos] == '\n' || s.query[s.pos] == '\r') {
		s.pos++
	}
}

func (s *scanner) peek() byte {
	if s.pos >= len(s.query) {
		return 0
	}
	return s.query[s.pos]
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.query)
}

func (s *scanner) syntaxError(reason string) error {
	fragment := s.query[s.pos:]
	if len(fragment) > 20 {
		fragment = fragment[:20]
	}
	return domain.ErrQuerySyntax{Query: s.query, Fragment: fragment, Reason: reason}
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isAlnum(c byte) bool {
	return isAlpha(c) || c >= '0' && c <= '9'
}

func isStringChar(c byte) bool {
	return isAlnum(c) || c == '*'
}

func isNumberChar(c byte) bool {
	return c >= '0' && c <= '9' || c == ':' || c == '.' || c == '-'
}

func isListChar(c byte) bool {
	return isAlnum(c) || c == ','
}
