// Package docquery contains the document-store search backend. It
// compiles query trees into filter documents in the MongoDB query dialect,
// without executing anything.
package docquery

import (
	"strings"
	"time"

	"github.com/vinicius-lino-figueiredo/boolq/adapter/parser"
	"github.com/vinicius-lino-figueiredo/boolq/domain"
	"github.com/vinicius-lino-figueiredo/boolq/pkg/glob"
)

// M is a filter document, the result type of this backend.
type M = map[string]any

// DocQuery implements [domain.Backend] by building filter documents. Field
// paths become document key paths.
type DocQuery struct {
	fields domain.FieldSpecification
	parser domain.Parser
}

// Option configures a DocQuery.
type Option func(*DocQuery)

// WithParser replaces the default query parser.
func WithParser(parser domain.Parser) Option {
	return func(q *DocQuery) {
		q.parser = parser
	}
}

// New returns a DocQuery rendering searches on fields described by the
// given specification.
func New(fields domain.FieldSpecification, options ...Option) *DocQuery {
	q := &DocQuery{fields: fields}
	for _, option := range options {
		option(q)
	}
	if q.parser == nil {
		q.parser = parser.New(fields)
	}
	return q
}

// Filter compiles a query into a filter document. An empty query renders
// the empty filter, which matches every document.
func (q *DocQuery) Filter(query string) (M, error) {
	if strings.TrimSpace(query) == "" {
		return M{}, nil
	}
	node, err := q.parser.Parse(query)
	if err != nil {
		return nil, err
	}
	return domain.Evaluate(node, q)
}

// SearchNot implements domain.Backend.
func (q *DocQuery) SearchNot(operand M) (M, error) {
	return M{"$nor": []M{operand}}, nil
}

// SearchAnd implements domain.Backend.
func (q *DocQuery) SearchAnd(operands []M) (M, error) {
	return M{"$and": operands}, nil
}

// SearchOr implements domain.Backend.
func (q *DocQuery) SearchOr(operands []M) (M, error) {
	return M{"$or": operands}, nil
}

// SearchString implements domain.Backend. Wildcarded string terms render
// as anchored regular expressions, plain ones as equality.
func (q *DocQuery) SearchString(term, field string) (M, error) {
	spec, err := q.fields.Match(field)
	if err != nil {
		return nil, err
	}
	value, err := q.fields.Convert(spec, term, domain.String, domain.Boolean)
	if err != nil {
		return nil, err
	}
	switch v := value.(type) {
	case domain.StringValue:
		if glob.HasWildcard(string(v)) {
			return M{spec.Path: M{"$regex": glob.Translate(string(v))}}, nil
		}
		return M{spec.Path: string(v)}, nil
	case domain.BoolValue:
		return M{spec.Path: bool(v)}, nil
	}
	return nil, domain.ErrTypeMismatch{Field: spec.FullName, Type: spec.Type, Allowed: []domain.TypeTag{domain.String, domain.Boolean}}
}

// SearchNumber implements domain.Backend.
func (q *DocQuery) SearchNumber(comp domain.Comparator, term, field string) (M, error) {
	spec, err := q.fields.Match(field)
	if err != nil {
		return nil, err
	}
	value, err := q.fields.Convert(spec, term, domain.Number, domain.DateTime)
	if err != nil {
		return nil, err
	}
	op := "$eq"
	switch comp {
	case domain.Gt:
		op = "$gt"
	case domain.Lt:
		op = "$lt"
	}
	switch v := value.(type) {
	case domain.NumberValue:
		return M{spec.Path: M{op: float64(v)}}, nil
	case domain.TimeValue:
		return M{spec.Path: M{op: time.Time(v)}}, nil
	}
	return nil, domain.ErrTypeMismatch{Field: spec.FullName, Type: spec.Type, Allowed: []domain.TypeTag{domain.Number, domain.DateTime}}
}

// SearchList implements domain.Backend. Both list comparators render as an
// $in over the term values.
func (q *DocQuery) SearchList(comp domain.ListComparator, term, field string) (M, error) {
	spec, err := q.fields.Match(field)
	if err != nil {
		return nil, err
	}
	value, err := q.fields.Convert(spec, term, domain.List)
	if err != nil {
		return nil, err
	}
	return M{spec.Path: M{"$in": []string(value.(domain.ListValue))}}, nil
}
