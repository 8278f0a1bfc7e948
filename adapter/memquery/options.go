package memquery

import "github.com/vinicius-lino-figueiredo/boolq/domain"

// Option configures a MemQuery.
type Option func(*MemQuery)

// WithParser replaces the default query parser.
func WithParser(parser domain.Parser) Option {
	return func(m *MemQuery) {
		m.parser = parser
	}
}

// WithComparer replaces the default key comparer.
func WithComparer(comparer domain.Comparer) Option {
	return func(m *MemQuery) {
		m.comparer = comparer
	}
}

// WithFieldNavigator replaces the default field navigator.
func WithFieldNavigator(navigator domain.FieldNavigator) Option {
	return func(m *MemQuery) {
		m.navigator = navigator
	}
}

// WithDecoder replaces the default result decoder.
func WithDecoder(decoder domain.Decoder) Option {
	return func(m *MemQuery) {
		m.decoder = decoder
	}
}

// WithIDGenerator replaces the default identifier generator used for
// records the id function does not claim.
func WithIDGenerator(generator domain.IDGenerator) Option {
	return func(m *MemQuery) {
		m.generator = generator
	}
}

// WithFieldGetter overrides value extraction for one field. The getter
// receives the raw record and reports whether the value exists; fields
// without an override use the navigator on the field's path.
func WithFieldGetter(field string, getter func(record any) (any, bool)) Option {
	return func(m *MemQuery) {
		m.getters[field] = getter
	}
}

// WithIDFunc sets the function that extracts an identifier from a record.
// Records for which the function returns false are assigned a generated
// identifier. The default reads a string "_id" entry.
func WithIDFunc(idFunc func(record any) (string, bool)) Option {
	return func(m *MemQuery) {
		m.idFunc = idFunc
	}
}
