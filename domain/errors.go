package domain

import (
	"fmt"
	"strings"
)

// ErrQuerySyntax is returned when a query cannot be compiled: unbalanced
// delimiters, malformed leaves, trailing text or references to fields that
// are not registered. Unknown holds every unregistered field name found in
// the query, in source order.
type ErrQuerySyntax struct {
	Query    string
	Fragment string
	Reason   string
	Unknown  []string
}

// Error implements the error interface.
func (e ErrQuerySyntax) Error() string {
	if len(e.Unknown) > 0 {
		return fmt.Sprintf("invalid query %q: unknown fields: %s", e.Query, strings.Join(e.Unknown, ", "))
	}
	if e.Fragment != "" {
		return fmt.Sprintf("invalid query %q: %s at %q", e.Query, e.Reason, e.Fragment)
	}
	return fmt.Sprintf("invalid query %q: %s", e.Query, e.Reason)
}

// ErrUnknownField is returned when a field name matches no registered
// field spec.
type ErrUnknownField struct {
	Field string
}

// Error implements the error interface.
func (e ErrUnknownField) Error() string {
	return fmt.Sprintf("field %s not recognised", e.Field)
}

// ErrTypeMismatch is returned when a leaf searches a field whose declared
// type the leaf kind does not support, such as >5[name] against a string
// field.
type ErrTypeMismatch struct {
	Field   string
	Type    TypeTag
	Allowed []TypeTag
}

// Error implements the error interface.
func (e ErrTypeMismatch) Error() string {
	allowed := make([]string, len(e.Allowed))
	for i, t := range e.Allowed {
		allowed[i] = t.String()
	}
	return fmt.Sprintf("field %s is not a %s", e.Field, strings.Join(allowed, " or "))
}

// ErrTermConversion is returned when a search term cannot be parsed into
// the field's declared type.
type ErrTermConversion struct {
	Field string
	Term  string
	Type  TypeTag
}

// Error implements the error interface.
func (e ErrTermConversion) Error() string {
	return fmt.Sprintf("field %s: %s cannot be converted into a %s", e.Field, e.Term, e.Type)
}

// ErrDuplicateField is returned when two field specs register the same
// name, compared case-insensitively.
type ErrDuplicateField struct {
	Name string
}

// Error implements the error interface.
func (e ErrDuplicateField) Error() string {
	return fmt.Sprintf("duplicate field name %s", e.Name)
}

// ErrUnknownNode is returned when evaluation meets a Node type it does not
// recognise.
type ErrUnknownNode struct {
	Node Node
}

// Error implements the error interface.
func (e ErrUnknownNode) Error() string {
	return fmt.Sprintf("unknown query node type %T", e.Node)
}

// ErrTargetNil is returned when a decode target is nil.
type ErrTargetNil struct{}

// Error implements the error interface.
func (e ErrTargetNil) Error() string {
	return "target cannot be nil"
}

// ErrCannotCompare is returned when two values have no defined ordering.
type ErrCannotCompare struct {
	A any
	B any
}

// Error implements the error interface.
func (e ErrCannotCompare) Error() string {
	return fmt.Sprintf("cannot compare unexpected types %T and %T", e.A, e.B)
}
