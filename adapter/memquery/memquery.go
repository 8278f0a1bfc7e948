// Package memquery contains the in-memory search backend. It evaluates
// query trees against an indexed record collection, producing sets of
// record identifiers.
package memquery

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/vinicius-lino-figueiredo/boolq/adapter/comparer"
	"github.com/vinicius-lino-figueiredo/boolq/adapter/decoder"
	"github.com/vinicius-lino-figueiredo/boolq/adapter/fieldnavigator"
	"github.com/vinicius-lino-figueiredo/boolq/adapter/idgenerator"
	"github.com/vinicius-lino-figueiredo/boolq/adapter/parser"
	"github.com/vinicius-lino-figueiredo/boolq/domain"
	"github.com/vinicius-lino-figueiredo/boolq/pkg/glob"
)

// Set is a set of record identifiers, the result type of this backend.
type Set map[string]struct{}

// MemQuery implements [domain.Backend] over an in-memory record
// collection. Number and datetime fields are indexed in balanced trees;
// the other field kinds are scanned.
type MemQuery struct {
	spec      domain.FieldSpecification
	parser    domain.Parser
	comparer  domain.Comparer
	navigator domain.FieldNavigator
	decoder   domain.Decoder
	generator domain.IDGenerator
	idFunc    func(record any) (string, bool)
	getters   map[string]func(record any) (any, bool)

	mu      sync.RWMutex
	records map[string]any
	order   []string
	indexes map[string]*fieldIndex
}

// New returns a MemQuery searching fields described by the given
// specification. The collection starts empty; load it with SetRecords.
func New(spec domain.FieldSpecification, options ...Option) *MemQuery {
	m := &MemQuery{
		spec:      spec,
		comparer:  comparer.NewComparer(),
		navigator: fieldnavigator.NewFieldNavigator(),
		decoder:   decoder.NewDecoder(),
		generator: idgenerator.NewIDGenerator(),
		records:   map[string]any{},
		indexes:   map[string]*fieldIndex{},
		getters:   map[string]func(record any) (any, bool){},
	}
	for _, option := range options {
		option(m)
	}
	if m.parser == nil {
		m.parser = parser.New(spec)
	}
	if m.idFunc == nil {
		m.idFunc = func(record any) (string, bool) {
			v, ok := m.navigator.GetValue(record, "_id")
			if !ok {
				return "", false
			}
			id, ok := v.(string)
			return id, ok
		}
	}
	return m
}

// SetRecords replaces the whole collection and rebuilds every field index
// from scratch. Records without an identifier of their own get a generated
// one.
func (m *MemQuery) SetRecords(ctx context.Context, records ...any) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = make(map[string]any, len(records))
	m.order = make([]string, 0, len(records))
	m.indexes = map[string]*fieldIndex{}
	for spec := range m.spec.Specs() {
		m.indexes[spec.FullName] = newFieldIndex(spec, m.comparer)
	}

	for _, record := range records {
		id, ok := m.idFunc(record)
		if !ok {
			var err error
			id, err = m.generator.GenerateID()
			if err != nil {
				return err
			}
		}
		m.records[id] = record
		m.order = append(m.order, id)
		for _, idx := range m.indexes {
			value, ok := m.extract(record, idx.spec)
			if !ok {
				continue
			}
			if err := idx.add(id, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// extract reads one field's raw value from a record, preferring a getter
// override registered for the field.
func (m *MemQuery) extract(record any, spec domain.FieldSpec) (any, bool) {
	if getter, ok := m.getters[spec.FullName]; ok {
		return getter(record)
	}
	return m.navigator.GetValue(record, spec.Path)
}

// Find compiles and evaluates a query and decodes the matching records
// into target, in insertion order. An empty query matches the whole
// collection.
func (m *MemQuery) Find(ctx context.Context, query string, target any) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	var matched Set
	if strings.TrimSpace(query) == "" {
		matched = m.UniversalSet()
	} else {
		node, err := m.parser.Parse(query)
		if err != nil {
			return err
		}
		matched, err = domain.Evaluate(node, m)
		if err != nil {
			return err
		}
	}

	m.mu.RLock()
	results := make([]any, 0, len(matched))
	for _, id := range m.order {
		if _, ok := matched[id]; ok {
			results = append(results, m.records[id])
		}
	}
	m.mu.RUnlock()

	return m.decoder.Decode(results, target)
}

// UniversalSet returns the identifiers of every record in the collection.
func (m *MemQuery) UniversalSet() Set {
	m.mu.RLock()
	defer m.mu.RUnlock()
	all := make(Set, len(m.records))
	for id := range m.records {
		all[id] = struct{}{}
	}
	return all
}

// Record returns the record stored under an identifier.
func (m *MemQuery) Record(id string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	record, ok := m.records[id]
	return record, ok
}

// SearchNot implements domain.Backend. The complement is taken against the
// whole collection.
func (m *MemQuery) SearchNot(operand Set) (Set, error) {
	result := m.UniversalSet()
	for id := range operand {
		delete(result, id)
	}
	return result, nil
}

// SearchAnd implements domain.Backend.
func (m *MemQuery) SearchAnd(operands []Set) (Set, error) {
	if len(operands) == 0 {
		return Set{}, nil
	}
	smallest := operands[0]
	for _, operand := range operands[1:] {
		if len(operand) < len(smallest) {
			smallest = operand
		}
	}
	result := Set{}
	for id := range smallest {
		if inAll(id, operands) {
			result[id] = struct{}{}
		}
	}
	return result, nil
}

func inAll(id string, operands []Set) bool {
	for _, operand := range operands {
		if _, ok := operand[id]; !ok {
			return false
		}
	}
	return true
}

// SearchOr implements domain.Backend.
func (m *MemQuery) SearchOr(operands []Set) (Set, error) {
	result := Set{}
	for _, operand := range operands {
		for id := range operand {
			result[id] = struct{}{}
		}
	}
	return result, nil
}

// SearchString implements domain.Backend. String fields match the term as
// an anchored glob; boolean fields match the term's truthiness.
func (m *MemQuery) SearchString(term, field string) (Set, error) {
	spec, err := m.spec.Match(field)
	if err != nil {
		return nil, err
	}
	value, err := m.spec.Convert(spec, term, domain.String, domain.Boolean)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	idx, ok := m.indexes[spec.FullName]
	if !ok {
		return Set{}, nil
	}

	result := Set{}
	switch v := value.(type) {
	case domain.StringValue:
		pattern, err := glob.Compile(string(v))
		if err != nil {
			return nil, err
		}
		for id, indexed := range idx.values {
			if pattern.MatchString(indexed.(string)) {
				result[id] = struct{}{}
			}
		}
	case domain.BoolValue:
		for id, indexed := range idx.values {
			if indexed.(bool) == bool(v) {
				result[id] = struct{}{}
			}
		}
	}
	return result, nil
}

// SearchNumber implements domain.Backend. Greater and lower searches
// include records equal to the bound.
func (m *MemQuery) SearchNumber(comp domain.Comparator, term, field string) (Set, error) {
	spec, err := m.spec.Match(field)
	if err != nil {
		return nil, err
	}
	value, err := m.spec.Convert(spec, term, domain.Number, domain.DateTime)
	if err != nil {
		return nil, err
	}

	var key any
	switch v := value.(type) {
	case domain.NumberValue:
		key = float64(v)
	case domain.TimeValue:
		key = time.Time(v)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	idx, ok := m.indexes[spec.FullName]
	if !ok {
		return Set{}, nil
	}
	if comp == domain.Eq {
		return idx.searchEqual(key)
	}
	return idx.searchBound(comp, key)
}

// SearchList implements domain.Backend.
func (m *MemQuery) SearchList(comp domain.ListComparator, term, field string) (Set, error) {
	spec, err := m.spec.Match(field)
	if err != nil {
		return nil, err
	}
	value, err := m.spec.Convert(spec, term, domain.List)
	if err != nil {
		return nil, err
	}
	terms := toSet(value.(domain.ListValue))

	m.mu.RLock()
	defer m.mu.RUnlock()
	idx, ok := m.indexes[spec.FullName]
	if !ok {
		return Set{}, nil
	}

	result := Set{}
	for id, indexed := range idx.values {
		indexedSet := toSet(indexed.([]string))
		if matchList(comp, indexedSet, terms) {
			result[id] = struct{}{}
		}
	}
	return result, nil
}

// matchList decides whether an indexed value set satisfies the term set:
// equality for SetEquals, superset for SetContains.
func matchList(comp domain.ListComparator, indexed, terms map[string]struct{}) bool {
	if comp == domain.SetEquals && len(indexed) != len(terms) {
		return false
	}
	for term := range terms {
		if _, ok := indexed[term]; !ok {
			return false
		}
	}
	return true
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
