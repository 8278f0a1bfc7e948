// Package sqlquery contains the SQL search backend. It compiles query
// trees into WHERE-clause text for SQLite-compatible databases, without
// executing anything.
package sqlquery

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vinicius-lino-figueiredo/boolq/adapter/parser"
	"github.com/vinicius-lino-figueiredo/boolq/domain"
)

// SQLQuery implements [domain.Backend] by rendering WHERE-clause
// fragments. Column names come from each field's path.
type SQLQuery struct {
	fields domain.FieldSpecification
	parser domain.Parser
}

// Option configures a SQLQuery.
type Option func(*SQLQuery)

// WithParser replaces the default query parser.
func WithParser(parser domain.Parser) Option {
	return func(q *SQLQuery) {
		q.parser = parser
	}
}

// New returns a SQLQuery rendering searches on fields described by the
// given specification.
func New(fields domain.FieldSpecification, options ...Option) *SQLQuery {
	q := &SQLQuery{fields: fields}
	for _, option := range options {
		option(q)
	}
	if q.parser == nil {
		q.parser = parser.New(fields)
	}
	return q
}

// Where compiles a query into a WHERE clause body. An empty query renders
// a clause that matches every row.
func (q *SQLQuery) Where(query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "1 = 1", nil
	}
	node, err := q.parser.Parse(query)
	if err != nil {
		return "", err
	}
	return domain.Evaluate(node, q)
}

// SelectStatement compiles a query into a full SELECT over one table.
func (q *SQLQuery) SelectStatement(table, query string) (string, error) {
	where, err := q.Where(query)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("SELECT * FROM %s WHERE %s", quoteIdent(table), where), nil
}

// SearchNot implements domain.Backend.
func (q *SQLQuery) SearchNot(operand string) (string, error) {
	return fmt.Sprintf("NOT (%s)", operand), nil
}

// SearchAnd implements domain.Backend.
func (q *SQLQuery) SearchAnd(operands []string) (string, error) {
	return fmt.Sprintf("(%s)", strings.Join(operands, " AND ")), nil
}

// SearchOr implements domain.Backend.
func (q *SQLQuery) SearchOr(operands []string) (string, error) {
	return fmt.Sprintf("(%s)", strings.Join(operands, " OR ")), nil
}

// SearchString implements domain.Backend. String fields render as LIKE
// with glob wildcards mapped to SQL ones; boolean fields render as integer
// equality.
func (q *SQLQuery) SearchString(term, field string) (string, error) {
	spec, err := q.fields.Match(field)
	if err != nil {
		return "", err
	}
	value, err := q.fields.Convert(spec, term, domain.String, domain.Boolean)
	if err != nil {
		return "", err
	}
	column := quoteIdent(spec.Path)
	switch v := value.(type) {
	case domain.StringValue:
		return fmt.Sprintf("%s LIKE %s", column, quoteString(likePattern(string(v)))), nil
	case domain.BoolValue:
		n := 0
		if v {
			n = 1
		}
		return fmt.Sprintf("%s = %d", column, n), nil
	}
	return "", domain.ErrTypeMismatch{Field: spec.FullName, Type: spec.Type, Allowed: []domain.TypeTag{domain.String, domain.Boolean}}
}

// SearchNumber implements domain.Backend. The comparator renders as its
// SQL symbol; datetime columns are compared as unix timestamps.
func (q *SQLQuery) SearchNumber(comp domain.Comparator, term, field string) (string, error) {
	spec, err := q.fields.Match(field)
	if err != nil {
		return "", err
	}
	value, err := q.fields.Convert(spec, term, domain.Number, domain.DateTime)
	if err != nil {
		return "", err
	}
	op := comp.String()
	column := quoteIdent(spec.Path)
	switch v := value.(type) {
	case domain.NumberValue:
		return fmt.Sprintf("%s %s %s", column, op, strconv.FormatFloat(float64(v), 'f', -1, 64)), nil
	case domain.TimeValue:
		ts := time.Time(v).Unix()
		return fmt.Sprintf("CAST(strftime('%%s', %s) AS INT) %s %d", column, op, ts), nil
	}
	return "", domain.ErrTypeMismatch{Field: spec.FullName, Type: spec.Type, Allowed: []domain.TypeTag{domain.Number, domain.DateTime}}
}

// SearchList implements domain.Backend. Both list comparators render as an
// IN over the term values.
func (q *SQLQuery) SearchList(comp domain.ListComparator, term, field string) (string, error) {
	spec, err := q.fields.Match(field)
	if err != nil {
		return "", err
	}
	value, err := q.fields.Convert(spec, term, domain.List)
	if err != nil {
		return "", err
	}
	list := value.(domain.ListValue)
	quoted := make([]string, len(list))
	for i, item := range list {
		quoted[i] = quoteString(item)
	}
	return fmt.Sprintf("%s IN (%s)", quoteIdent(spec.Path), strings.Join(quoted, ", ")), nil
}

// likePattern maps glob wildcards onto LIKE wildcards.
func likePattern(pattern string) string {
	pattern = strings.ReplaceAll(pattern, "*", "%")
	return strings.ReplaceAll(pattern, "?", "_")
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
