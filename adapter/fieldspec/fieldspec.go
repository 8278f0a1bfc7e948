// Package fieldspec contains the default [domain.FieldSpecification]
// implementation.
package fieldspec

import (
	"iter"
	"strconv"
	"strings"
	"time"

	"github.com/vinicius-lino-figueiredo/boolq/domain"
)

// dateLayout is the only accepted datetime term format.
const dateLayout = "2006-01-02"

// fieldSpecification implements [domain.FieldSpecification].
type fieldSpecification struct {
	specs []domain.FieldSpec
}

// New returns a new implementation of domain.FieldSpecification holding
// the given field specs. Names are matched case-insensitively; a name
// registered twice, as full name or abbreviation, returns
// ErrDuplicateField. A spec with an empty Path defaults to its full name.
func New(specs ...domain.FieldSpec) (domain.FieldSpecification, error) {
	seen := map[string]struct{}{}
	normalized := make([]domain.FieldSpec, 0, len(specs))
	for _, spec := range specs {
		spec.FullName = strings.ToLower(spec.FullName)
		spec.AbbrName = strings.ToLower(spec.AbbrName)
		if spec.Path == "" {
			spec.Path = spec.FullName
		}
		for _, name := range []string{spec.FullName, spec.AbbrName} {
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				return nil, domain.ErrDuplicateField{Name: name}
			}
			seen[name] = struct{}{}
		}
		normalized = append(normalized, spec)
	}
	return &fieldSpecification{specs: normalized}, nil
}

// Match implements domain.FieldSpecification.
func (f *fieldSpecification) Match(name string) (domain.FieldSpec, error) {
	lower := strings.ToLower(name)
	for _, spec := range f.specs {
		if spec.FullName == lower || spec.AbbrName == lower {
			return spec, nil
		}
	}
	return domain.FieldSpec{}, domain.ErrUnknownField{Field: name}
}

// Convert implements domain.FieldSpecification.
func (f *fieldSpecification) Convert(spec domain.FieldSpec, term string, allowed ...domain.TypeTag) (domain.Value, error) {
	if len(allowed) > 0 && !contains(allowed, spec.Type) {
		return nil, domain.ErrTypeMismatch{Field: spec.FullName, Type: spec.Type, Allowed: allowed}
	}
	switch spec.Type {
	case domain.String:
		return domain.StringValue(term), nil
	case domain.Boolean:
		return domain.BoolValue(strings.HasPrefix(strings.ToLower(term), "t")), nil
	case domain.Number:
		n, err := strconv.ParseFloat(term, 64)
		if err != nil {
			return nil, domain.ErrTermConversion{Field: spec.FullName, Term: term, Type: spec.Type}
		}
		return domain.NumberValue(n), nil
	case domain.DateTime:
		t, err := time.Parse(dateLayout, term)
		if err != nil {
			return nil, domain.ErrTermConversion{Field: spec.FullName, Term: term, Type: spec.Type}
		}
		return domain.TimeValue(t), nil
	case domain.List:
		return domain.ListValue(strings.Split(term, ",")), nil
	}
	return nil, domain.ErrTermConversion{Field: spec.FullName, Term: term, Type: spec.Type}
}

// Specs implements domain.FieldSpecification.
func (f *fieldSpecification) Specs() iter.Seq[domain.FieldSpec] {
	return func(yield func(domain.FieldSpec) bool) {
		for _, spec := range f.specs {
			if !yield(spec) {
				return
			}
		}
	}
}

func contains(tags []domain.TypeTag, t domain.TypeTag) bool {
	for _, tag := range tags {
		if tag == t {
			return true
		}
	}
	return false
}
