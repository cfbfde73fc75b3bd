package domain

// OrderedMap is a name-keyed collection preserving first-insertion order.
//
// Put is last-write-wins: inserting a value under an existing name replaces
// the value but keeps the name's original position. This is the documented
// merge policy for every name-keyed collection in the model (fields, structs,
// schemas, fieldsets, rank profiles, imported fields).
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

// NewOrderedMap creates an empty ordered map.
func NewOrderedMap[V any]() OrderedMap[V] {
	return OrderedMap[V]{values: map[string]V{}}
}

// Put returns a copy of the map with value stored under name.
// An existing entry with the same name is overwritten in place.
func (m OrderedMap[V]) Put(name string, value V) OrderedMap[V] {
	out := m.clone()
	if _, ok := out.values[name]; !ok {
		out.keys = append(out.keys, name)
	}
	out.values[name] = value
	return out
}

// Get returns the value stored under name, if any.
func (m OrderedMap[V]) Get(name string) (V, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Has reports whether name is present.
func (m OrderedMap[V]) Has(name string) bool {
	_, ok := m.values[name]
	return ok
}

// Len returns the number of entries.
func (m OrderedMap[V]) Len() int {
	return len(m.keys)
}

// Names returns the keys in insertion order.
func (m OrderedMap[V]) Names() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Values returns the values in insertion order.
func (m OrderedMap[V]) Values() []V {
	out := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.values[k])
	}
	return out
}

func (m OrderedMap[V]) clone() OrderedMap[V] {
	out := OrderedMap[V]{
		keys:   make([]string, len(m.keys)),
		values: make(map[string]V, len(m.values)),
	}
	copy(out.keys, m.keys)
	for k, v := range m.values {
		out.values[k] = v
	}
	return out
}
