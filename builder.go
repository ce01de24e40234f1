package morse

import (
	"sort"
	"strings"
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
)

// TableSet is one merged, rendered materialization of the code tables for
// a given glyph configuration: every canonical pattern substituted into
// the configured dot/dash glyphs, the Latin table extended with the
// separator→word-space entry, and (optionally) a copy of the priority
// script's table filed under Undefined so that it precedes every concrete
// script. A TableSet is immutable after construction and may be shared
// freely between goroutines.
type TableSet struct {
	tables  *treemap.Map // CharSet -> map[string]string, rendered
	once    sync.Once
	reverse map[string]string
}

// charSetComparator orders treemap keys by canonical CharSet precedence.
func charSetComparator(a, b interface{}) int {
	ca, cb := a.(CharSet), b.(CharSet)
	switch {
	case ca < cb:
		return -1
	case ca > cb:
		return 1
	}
	return 0
}

// tableKey is the projection of Options that a TableSet depends on.
// The invalid policy plays no part in table construction, so two Options
// differing only there share one cached set.
type tableKey struct {
	dash, dot, space, separator string
	priority                    CharSet
	overlay                     bool
}

var tableCache sync.Map // tableKey -> *TableSet

// BuildTables returns the merged table set for opts, rendered into the
// configured glyphs. With includePriorityOverlay set, a copy of the
// priority script's table is included under the Undefined tag; a priority
// without a base table (Undefined itself, or an out-of-range value)
// simply produces no overlay.
//
// Table sets are cached per glyph configuration. Concurrent first calls
// may build the same set redundantly, but the construction is
// deterministic and exactly one result wins the cache slot. Callers must
// treat the returned set as read-only.
func BuildTables(opts Options, includePriorityOverlay bool) *TableSet {
	key := tableKey{opts.Dash, opts.Dot, opts.Space, opts.Separator, opts.Priority, includePriorityOverlay}
	if ts, ok := tableCache.Load(key); ok {
		return ts.(*TableSet)
	}
	ts, _ := tableCache.LoadOrStore(key, buildTableSet(opts, includePriorityOverlay))
	return ts.(*TableSet)
}

func buildTableSet(opts Options, includePriorityOverlay bool) *TableSet {
	render := strings.NewReplacer("0", opts.Dot, "1", opts.Dash)
	m := treemap.NewWith(charSetComparator)
	for i, base := range baseTables {
		if base == nil {
			continue
		}
		cs := CharSet(i)
		rendered := make(map[string]string, len(base)+1)
		for ch, pattern := range base {
			rendered[ch] = render.Replace(pattern)
		}
		if cs == Latin {
			// a literal separator in input text re-emits as word space
			rendered[opts.Separator] = render.Replace(opts.Space)
		}
		m.Put(cs, rendered)
	}
	if includePriorityOverlay && opts.Priority > Undefined && int(opts.Priority) < charSetCount {
		if base := baseTables[opts.Priority]; base != nil {
			rendered := make(map[string]string, len(base))
			for ch, pattern := range base {
				rendered[ch] = render.Replace(pattern)
			}
			m.Put(Undefined, rendered)
		}
	}
	T().Debugf("morse: built table set, %d scripts, priority %v", m.Size(), opts.Priority)
	return &TableSet{tables: m}
}

// Sets returns the script tags present in this set, in lookup order.
func (ts *TableSet) Sets() []CharSet {
	sets := make([]CharSet, 0, ts.tables.Size())
	it := ts.tables.Iterator()
	for it.Next() {
		sets = append(sets, it.Key().(CharSet))
	}
	return sets
}

// Table returns a copy of the rendered character table for one script
// tag, or nil if the tag is not present in this set.
func (ts *TableSet) Table(cs CharSet) map[string]string {
	v, found := ts.tables.Get(cs)
	if !found {
		return nil
	}
	table := v.(map[string]string)
	cp := make(map[string]string, len(table))
	for ch, pattern := range table {
		cp[ch] = pattern
	}
	return cp
}

// Lookup resolves a character against the tables in lookup order and
// returns its rendered pattern together with the script tag that claimed
// it. The overlay tag Undefined is consulted first when present.
func (ts *TableSet) Lookup(ch string) (pattern string, cs CharSet, ok bool) {
	it := ts.tables.Iterator()
	for it.Next() {
		if pattern, ok = it.Value().(map[string]string)[ch]; ok {
			return pattern, it.Key().(CharSet), true
		}
	}
	return "", Undefined, false
}

// ReverseIndex returns the pattern→character index used for decoding.
// Collisions resolve deterministically: scripts are visited in lookup
// order and characters within a script in code point order, and the first
// writer of a pattern wins. The index is built once per table set.
func (ts *TableSet) ReverseIndex() map[string]string {
	ts.once.Do(func() {
		index := make(map[string]string)
		it := ts.tables.Iterator()
		for it.Next() {
			table := it.Value().(map[string]string)
			keys := make([]string, 0, len(table))
			for ch := range table {
				keys = append(keys, ch)
			}
			sort.Strings(keys)
			for _, ch := range keys {
				if _, claimed := index[table[ch]]; !claimed {
					index[table[ch]] = ch
				}
			}
		}
		ts.reverse = index
	})
	return ts.reverse
}
