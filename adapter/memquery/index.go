package memquery

import (
	"time"

	"github.com/vinicius-lino-figueiredo/bst"
	"github.com/vinicius-lino-figueiredo/bst/adapter/avl"
	"github.com/vinicius-lino-figueiredo/boolq/domain"
)

// fieldIndex holds the extracted values of one searchable field across the
// whole collection. Number and datetime fields are kept in a balanced tree
// so range searches walk only the matching keys; string, boolean and list
// fields are kept as a flat id-to-value map and scanned.
type fieldIndex struct {
	spec     domain.FieldSpec
	comparer domain.Comparer
	tree     bst.BST[any, string]
	values   map[string]any
}

func newFieldIndex(spec domain.FieldSpec, comparer domain.Comparer) *fieldIndex {
	idx := &fieldIndex{spec: spec, comparer: comparer}
	switch spec.Type {
	case domain.Number, domain.DateTime:
		idx.tree = avl.NewBST(false, 8, newBSTComparer(comparer))
	default:
		idx.values = map[string]any{}
	}
	return idx
}

// add indexes one record's value for this field. Records whose value is
// missing or of an unusable type are left out of the index and can never
// match a leaf on this field.
func (idx *fieldIndex) add(id string, value any) error {
	coerced, ok := idx.coerce(value)
	if !ok {
		return nil
	}
	if idx.tree != nil {
		return idx.tree.Insert(coerced, id)
	}
	idx.values[id] = coerced
	return nil
}

// coerce validates a raw record value against the field's declared type.
// Datetime fields accept both time.Time values and date-formatted strings,
// so records loaded from JSON streams index the same way as native ones.
func (idx *fieldIndex) coerce(value any) (any, bool) {
	switch idx.spec.Type {
	case domain.Number:
		if idx.comparer.Comparable(value, float64(0)) {
			return value, true
		}
	case domain.DateTime:
		switch v := value.(type) {
		case time.Time:
			return v, true
		case string:
			if t, err := time.Parse("2006-01-02", v); err == nil {
				return t, true
			}
		}
	case domain.String:
		if s, ok := value.(string); ok {
			return s, true
		}
	case domain.Boolean:
		if b, ok := value.(bool); ok {
			return b, true
		}
	case domain.List:
		return coerceList(value)
	}
	return nil, false
}

func coerceList(value any) (any, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []any:
		list := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			list[i] = s
		}
		return list, true
	}
	return nil, false
}

// searchEqual returns the ids whose key equals the given key.
func (idx *fieldIndex) searchEqual(key any) (Set, error) {
	found, err := idx.tree.Search(key)
	if err != nil {
		return nil, err
	}
	result := Set{}
	if found == nil {
		return result, nil
	}
	for _, id := range found.Values() {
		result[id] = struct{}{}
	}
	return result, nil
}

// searchBound returns the ids whose key is greater or lower than the given
// key. Both directions include keys equal to the bound.
func (idx *fieldIndex) searchBound(comp domain.Comparator, key any) (Set, error) {
	var qry bst.Query[any]
	bound := &bst.Bound[any]{Value: key, IncludeEqual: true}
	if comp == domain.Gt {
		qry.GreaterThan = bound
	} else {
		qry.LowerThan = bound
	}
	result := Set{}
	for id, err := range idx.tree.Query(qry) {
		if err != nil {
			return nil, err
		}
		result[id] = struct{}{}
	}
	return result, nil
}

// bstComparer adapts [domain.Comparer] to the tree's comparer contract.
type bstComparer struct {
	comparer domain.Comparer
}

func newBSTComparer(comparer domain.Comparer) bst.Comparer[any, string] {
	return &bstComparer{comparer: comparer}
}

// CompareKeys implements bst.Comparer.
func (bc *bstComparer) CompareKeys(a any, b any) (int, error) {
	return bc.comparer.Compare(a, b)
}

// CompareValues implements bst.Comparer.
func (bc *bstComparer) CompareValues(a string, b string) (bool, error) {
	return a == b, nil
}
