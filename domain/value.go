package domain

import "time"

// TypeTag identifies the declared type of a searchable field.
type TypeTag uint8

// Field types. A leaf's kind constrains which types it can search: plain
// leaves accept String and Boolean, comparator leaves accept Number and
// DateTime, list leaves accept List.
const (
	String TypeTag = iota
	Boolean
	Number
	DateTime
	List
)

// String returns the lower-case name of the type tag.
func (t TypeTag) String() string {
	switch t {
	case String:
		return "string"
	case Boolean:
		return "boolean"
	case Number:
		return "number"
	case DateTime:
		return "datetime"
	case List:
		return "list"
	}
	return "unknown"
}

// FieldSpec describes one searchable field: its full and abbreviated query
// names, its declared type, and the dot-delimited path to its value inside
// a record.
type FieldSpec struct {
	FullName string
	AbbrName string
	Type     TypeTag
	Path     string
}

// Value is a converted search term. The concrete types are StringValue,
// BoolValue, NumberValue, TimeValue and ListValue; the union is sealed.
type Value interface {
	value()
}

// StringValue is a converted string term, possibly carrying * wildcards.
type StringValue string

// BoolValue is a converted boolean term.
type BoolValue bool

// NumberValue is a converted numeric term.
type NumberValue float64

// TimeValue is a converted datetime term.
type TimeValue time.Time

// ListValue is a converted comma-delimited list term.
type ListValue []string

func (StringValue) value() {}
func (BoolValue) value()   {}
func (NumberValue) value() {}
func (TimeValue) value()   {}
func (ListValue) value()   {}
