// Package domain contains domain-specific interfaces, the query AST and
// typed errors for boolq.
//
// This package defines the core interfaces that must be implemented by
// adapters: the six-method search backend that gives meaning to a parsed
// query, the field specification that resolves and converts search terms,
// and the parser that compiles query text into an AST.
package domain

import (
	"context"
	"io"
	"iter"
)

// Backend evaluates the search primitives a query tree dispatches to. R is
// the backend-defined result type: a set of record identifiers for an
// in-memory backend, a WHERE-clause fragment for a relational backend, a
// filter document for a document-store backend.
//
// Interior AST nodes receive the already-evaluated results of their
// children, in source order, so text-rendering backends can join fragments
// deterministically without knowing about AST nodes.
type Backend[R any] interface {
	// SearchNot negates an already-evaluated operand result.
	SearchNot(operand R) (R, error)
	// SearchAnd combines two or more already-evaluated results with AND.
	SearchAnd(operands []R) (R, error)
	// SearchOr combines two or more already-evaluated results with OR.
	SearchOr(operands []R) (R, error)
	// SearchString evaluates a <term>[<field>] leaf. The term may be a
	// glob pattern for string fields or a truthiness word for boolean
	// fields. Term and field are raw query text, unresolved.
	SearchString(term, field string) (R, error)
	// SearchNumber evaluates a <comparator><term>[<field>] leaf against a
	// number or datetime field.
	SearchNumber(comp Comparator, term, field string) (R, error)
	// SearchList evaluates a <comparator><term>[<field>] leaf against a
	// list field. The term is a comma-delimited list of values.
	SearchList(comp ListComparator, term, field string) (R, error)
}

// FieldSpecification resolves field names referenced by query leaves and
// converts raw search terms into typed values in a standardised manner.
type FieldSpecification interface {
	// Match resolves a full or abbreviated field name, case-insensitively.
	// Returns ErrUnknownField if the name matches no registered field.
	Match(name string) (FieldSpec, error)
	// Convert parses a raw search term into the field's declared type.
	// Returns ErrTypeMismatch if the field's type is not among the
	// allowed tags for the leaf kind, ErrTermConversion if the term
	// cannot be parsed into the declared type.
	Convert(spec FieldSpec, term string, allowed ...TypeTag) (Value, error)
	// Specs returns all registered field specs, in registration order.
	Specs() iter.Seq[FieldSpec]
}

// Parser compiles a boolean query string into an AST. The grammar is built
// once at construction and reused for every query; a parser is safe for
// concurrent use.
type Parser interface {
	// Parse returns the root node of the query tree. Syntax failures and
	// references to unregistered fields (all of them, not just the
	// first) are reported as ErrQuerySyntax. Parse never receives an
	// empty query: callers treat it as match-everything.
	Parse(query string) (Node, error)
}

// Comparer provides ordering and comparison operations for index key types.
type Comparer interface {
	// Compare returns -1, 0, or 1 based on the comparison of two values.
	Compare(any, any) (int, error)
	// Comparable returns true if two values can be compared.
	Comparable(any, any) bool
}

// FieldNavigator extracts values from records using dot-path notation.
type FieldNavigator interface {
	// GetValue follows a dot-delimited path into a record (a map or a
	// struct, arbitrarily nested) and returns the value found there.
	// The second return is false if any path segment is missing.
	GetValue(record any, path string) (any, bool)
}

// Decoder converts between different data representations.
type Decoder interface {
	// Decode converts from one data format to another.
	Decode(source any, target any) error
}

// IDGenerator creates unique identifiers for records added to an in-memory
// collection without an identifier of their own.
type IDGenerator interface {
	// GenerateID returns a new unique identifier.
	GenerateID() (string, error)
}

// Loader reads a collection of records from a raw stream.
type Loader interface {
	// Load parses a record stream and returns the records found in it.
	Load(ctx context.Context, r io.Reader) ([]any, error)
}
