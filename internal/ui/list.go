package ui

import (
	"reflect"
	"strings"
)

// Row is one rendered list entry with its stable identity.
type Row struct {
	Key     string
	Content string
}

// List renders one row per item using caller-supplied extraction and
// rendering functions, caching rendered rows by key so unchanged items are
// not redrawn. Keys must be unique within a rendered sequence; a duplicated
// key is a caller error and yields undefined row identity (the cache keeps
// whichever row rendered last), never a failure.
type List[T any] struct {
	render func(item T, selected bool) string
	key    func(item T) string
	equal  func(a, b T) bool

	cache map[string]listEntry[T]
}

type listEntry[T any] struct {
	item     T
	selected bool
	content  string
}

// NewList builds a list renderer. equal may be nil, in which case items are
// compared with reflect.DeepEqual.
func NewList[T any](render func(T, bool) string, key func(T) string, equal func(a, b T) bool) *List[T] {
	if equal == nil {
		equal = func(a, b T) bool { return reflect.DeepEqual(a, b) }
	}
	return &List[T]{
		render: render,
		key:    key,
		equal:  equal,
		cache:  make(map[string]listEntry[T]),
	}
}

// Rows renders the items in sequence order. selectedKey names the row drawn
// as selected; pass an empty string for none. Rows whose key, item, and
// selection state match the previous call are served from the cache.
func (l *List[T]) Rows(items []T, selectedKey string) []Row {
	rows := make([]Row, 0, len(items))
	next := make(map[string]listEntry[T], len(items))

	for _, item := range items {
		k := l.key(item)
		selected := k != "" && k == selectedKey

		if entry, ok := l.cache[k]; ok && entry.selected == selected && l.equal(entry.item, item) {
			rows = append(rows, Row{Key: k, Content: entry.content})
			next[k] = entry
			continue
		}

		content := l.render(item, selected)
		rows = append(rows, Row{Key: k, Content: content})
		next[k] = listEntry[T]{item: item, selected: selected, content: content}
	}

	// Rows that disappeared are dropped from the cache.
	l.cache = next
	return rows
}

// View renders the items as newline-joined rows.
func (l *List[T]) View(items []T, selectedKey string) string {
	rows := l.Rows(items, selectedKey)
	parts := make([]string, len(rows))
	for i, r := range rows {
		parts[i] = r.Content
	}
	return strings.Join(parts, "\n")
}
