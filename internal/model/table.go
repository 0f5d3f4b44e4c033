package model

// StringTable is an ordered key/value table, the in-memory form of one
// string-table file. Keys keep the position they were first set at;
// overwriting a value does not move its key.
type StringTable struct {
	keys   []string
	values map[string]string
}

// NewStringTable returns an empty table.
func NewStringTable() *StringTable {
	return &StringTable{values: make(map[string]string)}
}

// Get returns the value for key and whether the key is present.
func (t *StringTable) Get(key string) (string, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Set stores value under key, appending the key if it is new.
func (t *StringTable) Set(key, value string) {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
}

// Has reports whether key is present.
func (t *StringTable) Has(key string) bool {
	_, ok := t.values[key]
	return ok
}

// Delete removes key from the table. Removing an absent key is a no-op.
func (t *StringTable) Delete(key string) {
	if _, ok := t.values[key]; !ok {
		return
	}
	delete(t.values, key)
	for i, k := range t.keys {
		if k == key {
			t.keys = append(t.keys[:i], t.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the table's keys in order. The returned slice is a copy.
func (t *StringTable) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Len returns the number of keys in the table.
func (t *StringTable) Len() int {
	return len(t.keys)
}
