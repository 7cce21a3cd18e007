package storage

import (
	"golang.org/x/exp/slices"
)

// table is one entity collection. It remembers insertion order so listings
// come back in the order records were created.
type table[T any] struct {
	rows  map[string]*T
	order []string
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]*T)}
}

func (t *table[T]) get(id string) (*T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) put(id string, row *T) {
	if _, exists := t.rows[id]; !exists {
		t.order = append(t.order, id)
	}
	t.rows[id] = row
}

func (t *table[T]) remove(id string) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	t.order = slices.DeleteFunc(t.order, func(k string) bool { return k == id })
	return true
}

// removeWhere deletes every row matching drop and returns how many went.
func (t *table[T]) removeWhere(drop func(*T) bool) int {
	removed := 0
	t.order = slices.DeleteFunc(t.order, func(k string) bool {
		if drop(t.rows[k]) {
			delete(t.rows, k)
			removed++
			return true
		}
		return false
	})
	return removed
}

func (t *table[T]) find(match func(*T) bool) (*T, bool) {
	idx := slices.IndexFunc(t.order, func(k string) bool { return match(t.rows[k]) })
	if idx < 0 {
		return nil, false
	}
	return t.rows[t.order[idx]], true
}

// filter returns copies of the matching rows. A nil keep matches everything.
func (t *table[T]) filter(keep func(*T) bool) []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		row := t.rows[id]
		if keep == nil || keep(row) {
			out = append(out, *row)
		}
	}
	return out
}
