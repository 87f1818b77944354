// Package view derives the filtered, sorted projection of the roster that
// the dashboard renders. The projection is never a source of truth; it is
// recomputed from the canonical collection whenever one of its inputs
// changes and served from a memo cell otherwise.
package view

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/kgrieve/rosterdeck/internal/roster"
)

// SortField selects the user projection the comparator runs on.
type SortField string

const (
	FieldName  SortField = "name"
	FieldEmail SortField = "email"
	FieldRole  SortField = "role"
)

// Fields lists the sortable fields in cycle order.
func Fields() []SortField {
	return []SortField{FieldName, FieldEmail, FieldRole}
}

// Next returns the field after f in cycle order.
func (f SortField) Next() SortField {
	fields := Fields()
	for i, cur := range fields {
		if cur == f {
			return fields[(i+1)%len(fields)]
		}
	}
	return FieldName
}

// Direction orders the sorted output.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Toggle flips the direction.
func (d Direction) Toggle() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Inputs is the full set of values the projection depends on. Version
// stands in for the collection itself: the store bumps it on every change,
// so equal Inputs mean an identical projection.
type Inputs struct {
	Version    uint64
	FilterText string
	Field      SortField
	Dir        Direction
}

// Pipeline computes projections with a last-inputs/last-output memo cell.
// It is not safe for concurrent use; the dashboard drives it from the
// program loop only.
type Pipeline struct {
	collator *collate.Collator

	memoValid  bool
	memoInputs Inputs
	memoOut    roster.Collection
}

// New creates a pipeline with a locale-aware collator for string fields.
func New() *Pipeline {
	return &Pipeline{
		collator: collate.New(language.Und, collate.Loose),
	}
}

// Apply returns the filtered, sorted projection of users for the given
// inputs. When the inputs match the previous call, the cached output is
// returned unchanged (callers must treat it as read-only).
func (p *Pipeline) Apply(users roster.Collection, in Inputs) roster.Collection {
	if p.memoValid && p.memoInputs == in {
		return p.memoOut
	}

	out := p.filter(users, in.FilterText)
	p.sortUsers(out, in.Field, in.Dir)

	p.memoValid = true
	p.memoInputs = in
	p.memoOut = out
	return out
}

// filter keeps users whose name or email contains the case-folded filter
// text. Empty filter text matches everything.
func (p *Pipeline) filter(users roster.Collection, text string) roster.Collection {
	needle := strings.ToLower(strings.TrimSpace(text))
	out := make(roster.Collection, 0, len(users))
	for _, u := range users {
		if needle == "" ||
			strings.Contains(strings.ToLower(u.Name), needle) ||
			strings.Contains(strings.ToLower(u.Email), needle) {
			out = append(out, u)
		}
	}
	return out
}

// sortUsers stably sorts in place. Pairs whose projections have mixed or
// unsupported types compare equal and keep their filtered order.
func (p *Pipeline) sortUsers(users roster.Collection, field SortField, dir Direction) {
	sort.SliceStable(users, func(i, j int) bool {
		c := p.compare(fieldValue(users[i], field), fieldValue(users[j], field))
		if dir == Descending {
			c = -c
		}
		return c < 0
	})
}

// compare orders two projections: strings through the collator, numbers
// numerically, anything else as equal.
func (p *Pipeline) compare(a, b any) int {
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return p.collator.CompareString(av, bv)
		}
	case float64:
		if bv, ok := b.(float64); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		}
	case int64:
		if bv, ok := b.(int64); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		}
	}
	return 0
}

func fieldValue(u roster.User, field SortField) any {
	switch field {
	case FieldEmail:
		return u.Email
	case FieldRole:
		return string(u.Role)
	default:
		return u.Name
	}
}
