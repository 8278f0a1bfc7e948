package domain

import "strings"

// Node is a node of a parsed query tree. The concrete types are Not, And,
// Or, StringSearch, NumberSearch and ListSearch; the union is sealed.
type Node interface {
	node()
}

// Not negates its operand.
type Not struct {
	Operand Node
}

// And is the conjunction of two or more operands, in source order.
type And struct {
	Operands []Node
}

// Or is the disjunction of two or more operands, in source order.
type Or struct {
	Operands []Node
}

// StringSearch is a <term>[<field>] leaf. The term may carry * wildcards
// for glob matching on string fields, or be a truthiness word for boolean
// fields.
type StringSearch struct {
	Term  string
	Field string
}

// NumberSearch is a <comparator><term>[<field>] leaf against a number or
// datetime field.
type NumberSearch struct {
	Comp  Comparator
	Term  string
	Field string
}

// ListSearch is a <comparator><term>[<field>] leaf against a list field.
// The term is a comma-delimited list of values.
type ListSearch struct {
	Comp  ListComparator
	Term  string
	Field string
}

func (Not) node()          {}
func (And) node()          {}
func (Or) node()           {}
func (StringSearch) node() {}
func (NumberSearch) node() {}
func (ListSearch) node()   {}

// Comparator is the relational operator of a number or datetime leaf.
type Comparator uint8

// Comparators accepted by number and datetime leaves. Gt and Lt are
// inclusive: they admit values equal to the bound.
const (
	Eq Comparator = iota
	Gt
	Lt
)

// String returns the query-syntax symbol of the comparator.
func (c Comparator) String() string {
	switch c {
	case Eq:
		return "="
	case Gt:
		return ">"
	case Lt:
		return "<"
	}
	return "?"
}

// ListComparator is the set operator of a list leaf.
type ListComparator uint8

// List comparators. SetEquals requires the record's list to equal the term
// list as a set; SetContains requires it to contain every term value.
const (
	SetEquals ListComparator = iota
	SetContains
)

// String returns the query-syntax symbol of the list comparator.
func (c ListComparator) String() string {
	switch c {
	case SetEquals:
		return "!"
	case SetContains:
		return "?"
	}
	return "?"
}

// Evaluate walks the query tree bottom-up and dispatches each node to the
// backend. Children of interior nodes are evaluated left to right; the
// first error aborts the walk.
func Evaluate[R any](n Node, b Backend[R]) (R, error) {
	var zero R
	switch t := n.(type) {
	case Not:
		operand, err := Evaluate(t.Operand, b)
		if err != nil {
			return zero, err
		}
		return b.SearchNot(operand)
	case And:
		operands, err := evaluateAll(t.Operands, b)
		if err != nil {
			return zero, err
		}
		return b.SearchAnd(operands)
	case Or:
		operands, err := evaluateAll(t.Operands, b)
		if err != nil {
			return zero, err
		}
		return b.SearchOr(operands)
	case StringSearch:
		return b.SearchString(t.Term, t.Field)
	case NumberSearch:
		return b.SearchNumber(t.Comp, t.Term, t.Field)
	case ListSearch:
		return b.SearchList(t.Comp, t.Term, t.Field)
	}
	return zero, ErrUnknownNode{Node: n}
}

func evaluateAll[R any](nodes []Node, b Backend[R]) ([]R, error) {
	results := make([]R, len(nodes))
	for i, n := range nodes {
		r, err := Evaluate(n, b)
		if err != nil {
			return nil, err
		}
		results[i] = r
	}
	return results, nil
}

// Fields returns the field names referenced by the leaves of a query tree,
// in source order, with duplicates preserved.
func Fields(n Node) []string {
	var fields []string
	collectFields(n, &fields)
	return fields
}

func collectFields(n Node, fields *[]string) {
	switch t := n.(type) {
	case Not:
		collectFields(t.Operand, fields)
	case And:
		for _, op := range t.Operands {
			collectFields(op, fields)
		}
	case Or:
		for _, op := range t.Operands {
			collectFields(op, fields)
		}
	case StringSearch:
		*fields = append(*fields, t.Field)
	case NumberSearch:
		*fields = append(*fields, t.Field)
	case ListSearch:
		*fields = append(*fields, t.Field)
	}
}

// Format renders a query tree back to query syntax. The output is
// normalised: keywords upper-cased, interior nodes parenthesised.
func Format(n Node) string {
	var sb strings.Builder
	formatNode(n, &sb)
	return sb.String()
}

func formatNode(n Node, sb *strings.Builder) {
	switch t := n.(type) {
	case Not:
		sb.WriteString("NOT ")
		formatNode(t.Operand, sb)
	case And:
		formatJoin(t.Operands, " AND ", sb)
	case Or:
		formatJoin(t.Operands, " OR ", sb)
	case StringSearch:
		sb.WriteString(t.Term)
		sb.WriteString("[")
		sb.WriteString(t.Field)
		sb.WriteString("]")
	case NumberSearch:
		sb.WriteString(t.Comp.String())
		sb.WriteString(t.Term)
		sb.WriteString("[")
		sb.WriteString(t.Field)
		sb.WriteString("]")
	case ListSearch:
		sb.WriteString(t.Comp.String())
		sb.WriteString(t.Term)
		sb.WriteString("[")
		sb.WriteString(t.Field)
		sb.WriteString("]")
	}
}

func formatJoin(operands []Node, sep string, sb *strings.Builder) {
	sb.WriteString("(")
	for i, op := range operands {
		if i > 0 {
			sb.WriteString(sep)
		}
		formatNode(op, sb)
	}
	sb.WriteString(")")
}
