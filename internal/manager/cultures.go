package manager

import (
	"github.com/mlindgren/locman/internal/culture"
	"github.com/mlindgren/locman/internal/model"
)

// cultureIndex tracks the distinct culture keys observed across all loaded
// entities, in discovery order. Between full loads it only grows; adding a
// language appends its key, nothing ever removes one. A full load rebuilds
// the index to exactly the keys present in the new entity set.
type cultureIndex struct {
	keys []culture.Key
	seen map[culture.Key]struct{}
}

func newCultureIndex() *cultureIndex {
	return &cultureIndex{seen: make(map[culture.Key]struct{})}
}

// rebuild replaces the index contents with the distinct culture keys of the
// given entities.
func (x *cultureIndex) rebuild(entities []*model.Entity) {
	x.keys = nil
	x.seen = make(map[culture.Key]struct{})
	for _, e := range entities {
		for _, c := range e.Cultures() {
			x.add(c)
		}
	}
}

// add appends c if not already present. Returns true when the key is new.
func (x *cultureIndex) add(c culture.Key) bool {
	if _, ok := x.seen[c]; ok {
		return false
	}
	x.seen[c] = struct{}{}
	x.keys = append(x.keys, c)
	return true
}

// list returns the observed keys in discovery order. The slice is a copy.
func (x *cultureIndex) list() []culture.Key {
	out := make([]culture.Key, len(x.keys))
	copy(out, x.keys)
	return out
}
