package ledger

// Metadata is a set of key/value annotations attached to a directive or
// posting. Unlike a plain map it remembers insertion order, so emission
// is deterministic and follows document order. Keys are unique. The zero
// value is empty and ready to use.
type Metadata struct {
	keys   []string
	values map[string]string
}

// Set stores value under key. Setting an existing key replaces its value
// but keeps its original position.
func (m *Metadata) Set(key, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key and whether it was present.
func (m *Metadata) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Len returns the number of entries.
func (m *Metadata) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (m *Metadata) Keys() []string {
	if len(m.keys) == 0 {
		return nil
	}
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}
