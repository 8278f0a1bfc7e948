// Package fieldnavigator contains the default [domain.FieldNavigator]
// implementation. It extracts field values from records using
// dot-delimited paths, stepping through nested maps and structs.
package fieldnavigator

import (
	"strings"

	"github.com/goccy/go-reflect"
	"github.com/vinicius-lino-figueiredo/boolq/domain"
)

// tagName is the struct tag consulted before falling back to field names.
const tagName = "boolq"

// FieldNavigator implements domain.FieldNavigator.
type FieldNavigator struct{}

// NewFieldNavigator returns a new implementation of domain.FieldNavigator.
func NewFieldNavigator() domain.FieldNavigator {
	return &FieldNavigator{}
}

// GetValue implements domain.FieldNavigator.
func (f *FieldNavigator) GetValue(record any, path string) (any, bool) {
	current := record
	for _, segment := range strings.Split(path, ".") {
		next, ok := f.step(current, segment)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// step resolves one path segment against a map or struct value.
func (f *FieldNavigator) step(current any, segment string) (any, bool) {
	if m, ok := current.(map[string]any); ok {
		v, ok := m[segment]
		return v, ok
	}

	v := reflect.ValueOf(current)
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		entry := v.MapIndex(reflect.ValueOf(segment))
		if !entry.IsValid() {
			return nil, false
		}
		return entry.Interface(), true
	case reflect.Struct:
		return f.structField(v, segment)
	}
	return nil, false
}

// structField finds a struct field by tag or by case-insensitive name.
// Unexported fields are never matched.
func (f *FieldNavigator) structField(v reflect.Value, segment string) (any, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue
		}
		name := field.Name
		if tag, ok := field.Tag.Lookup(tagName); ok {
			name, _, _ = strings.Cut(tag, ",")
			if name == "-" {
				continue
			}
		}
		if strings.EqualFold(name, segment) {
			return v.Field(i).Interface(), true
		}
	}
	return nil, false
}
