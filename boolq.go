// Package boolq compiles boolean query strings into an AST and evaluates
// them against pluggable search backends.
//
// A query is built from search terms bound to bracketed field names, such
// as ">2[legs]" or "*er[name]", combined with the case-insensitive
// keywords NOT, AND and OR and grouped with parentheses. NOT binds tighter
// than AND, AND binds tighter than OR.
//
// The basic usage starts with describing the searchable fields through
// [NewFieldSpecification] or [FieldSpecificationFromYAML], then handing
// the specification to a backend: [NewMemQuery] to search in-memory
// records, [NewSQLQuery] to render SQL WHERE clauses, [NewDocQuery] to
// render document-store filters. Custom backends implement [Backend] and
// run query trees through [Evaluate].
package boolq

import (
	"io"

	"github.com/vinicius-lino-figueiredo/boolq/adapter/docquery"
	"github.com/vinicius-lino-figueiredo/boolq/adapter/fieldspec"
	"github.com/vinicius-lino-figueiredo/boolq/adapter/loader"
	"github.com/vinicius-lino-figueiredo/boolq/adapter/memquery"
	"github.com/vinicius-lino-figueiredo/boolq/adapter/parser"
	"github.com/vinicius-lino-figueiredo/boolq/adapter/sqlquery"
	"github.com/vinicius-lino-figueiredo/boolq/domain"
)

// ErrQuerySyntax is returned by [Parser.Parse] when a query cannot be
// compiled, including when it references unregistered fields.
type ErrQuerySyntax = domain.ErrQuerySyntax

// ErrUnknownField is returned when a field name matches no registered
// field spec.
type ErrUnknownField = domain.ErrUnknownField

// ErrTypeMismatch is returned when a leaf searches a field whose declared
// type the leaf kind does not support.
type ErrTypeMismatch = domain.ErrTypeMismatch

// ErrTermConversion is returned when a search term cannot be parsed into
// the field's declared type.
type ErrTermConversion = domain.ErrTermConversion

// ErrDuplicateField is returned by [NewFieldSpecification] when two specs
// register the same name.
type ErrDuplicateField = domain.ErrDuplicateField

// ErrTargetNil is returned when a decode target is nil, for example when
// calling [MemQuery.Find] with a nil target.
type ErrTargetNil = domain.ErrTargetNil

// Node is a node of a parsed query tree.
type Node = domain.Node

// Backend evaluates the search primitives a query tree dispatches to.
type Backend[R any] = domain.Backend[R]

// FieldSpec describes one searchable field.
type FieldSpec = domain.FieldSpec

// FieldSpecification resolves field names and converts search terms.
type FieldSpecification = domain.FieldSpecification

// Parser compiles query strings into query trees.
type Parser = domain.Parser

// Comparer provides ordering and comparison for index key types.
type Comparer = domain.Comparer

// FieldNavigator extracts values from records using dot-path notation.
type FieldNavigator = domain.FieldNavigator

// Decoder converts between different data representations.
type Decoder = domain.Decoder

// IDGenerator creates unique identifiers for records.
type IDGenerator = domain.IDGenerator

// Loader reads a collection of records from a raw stream.
type Loader = domain.Loader

// TypeTag identifies the declared type of a searchable field.
type TypeTag = domain.TypeTag

// Field types accepted by [FieldSpec].
const (
	String   = domain.String
	Boolean  = domain.Boolean
	Number   = domain.Number
	DateTime = domain.DateTime
	List     = domain.List
)

// MemQuery searches an indexed in-memory record collection.
type MemQuery = memquery.MemQuery

// Set is a set of record identifiers, the result type of [MemQuery].
type Set = memquery.Set

// SQLQuery renders query trees as SQL WHERE clauses.
type SQLQuery = sqlquery.SQLQuery

// DocQuery renders query trees as document-store filters.
type DocQuery = docquery.DocQuery

// M is a filter document produced by [DocQuery].
type M = docquery.M

// NewFieldSpecification returns a specification holding the given field
// specs. Names are matched case-insensitively and must be unique.
func NewFieldSpecification(specs ...FieldSpec) (FieldSpecification, error) {
	return fieldspec.New(specs...)
}

// FieldSpecificationFromYAML reads field specs from a YAML document.
func FieldSpecificationFromYAML(r io.Reader) (FieldSpecification, error) {
	return fieldspec.FromYAML(r)
}

// NewParser returns a parser validating field references against the given
// specification.
func NewParser(spec FieldSpecification) Parser {
	return parser.New(spec)
}

// NewMemQuery returns an in-memory backend searching fields described by
// the given specification:
//
// - [memquery.WithParser]: replaces the default query parser.
//
// - [memquery.WithComparer]: replaces the default key comparer.
//
// - [memquery.WithFieldNavigator]: replaces the default field navigator.
//
// - [memquery.WithDecoder]: replaces the default result decoder.
//
// - [memquery.WithIDGenerator]: replaces the default identifier generator.
//
// - [memquery.WithIDFunc]: sets how record identifiers are extracted.
//
// - [memquery.WithFieldGetter]: overrides value extraction for one field.
func NewMemQuery(spec FieldSpecification, options ...memquery.Option) *MemQuery {
	return memquery.New(spec, options...)
}

// NewSQLQuery returns a backend rendering SQL WHERE clauses for fields
// described by the given specification.
func NewSQLQuery(spec FieldSpecification, options ...sqlquery.Option) *SQLQuery {
	return sqlquery.New(spec, options...)
}

// NewDocQuery returns a backend rendering document-store filters for
// fields described by the given specification.
func NewDocQuery(spec FieldSpecification, options ...docquery.Option) *DocQuery {
	return docquery.New(spec, options...)
}

// NewLoader returns a loader reading JSON-lines record streams.
func NewLoader() Loader {
	return loader.NewLoader()
}

// Evaluate walks a query tree bottom-up and dispatches each node to the
// backend.
func Evaluate[R any](n Node, b domain.Backend[R]) (R, error) {
	return domain.Evaluate(n, b)
}

// Format renders a query tree back to normalised query syntax.
func Format(n Node) string {
	return domain.Format(n)
}
