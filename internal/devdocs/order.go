package devdocs

import (
	"cmp"
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// stemRank orders the conventional entry point files ahead of the rest of a
// directory.
var stemRank = map[string]int{
	"main": 0,
	"lib":  1,
	"mod":  2,
}

const otherRank = 3

type sortKey struct {
	inSubdir bool
	parents  []string
	rank     int
	noSuffix bool
	lower    string
}

func keyFor(e Entry, caser cases.Caser) sortKey {
	lower := caser.String(e.Path())
	rank, ok := stemRank[e.Stem()]
	if !ok {
		rank = otherRank
	}
	return sortKey{
		inSubdir: e.InSubdir(),
		parents:  ancestors(lower),
		rank:     rank,
		noSuffix: e.Suffix() == "",
		lower:    lower,
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func compareKeys(a, b sortKey) int {
	if c := compareBool(a.inSubdir, b.inSubdir); c != 0 {
		return c
	}
	if c := slices.Compare(a.parents, b.parents); c != 0 {
		return c
	}
	if c := cmp.Compare(a.rank, b.rank); c != 0 {
		return c
	}
	if c := compareBool(a.noSuffix, b.noSuffix); c != 0 {
		return c
	}
	return cmp.Compare(a.lower, b.lower)
}

// Sort orders entries for the index: root files first, then directories in
// lowercase order, main/lib/mod ahead of their siblings, files with an
// extension ahead of those without, and finally the lowercase path.
func Sort(entries []Entry) {
	caser := cases.Lower(language.Und)
	keys := make(map[string]sortKey, len(entries))
	for _, e := range entries {
		keys[e.Path()] = keyFor(e, caser)
	}
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return compareKeys(keys[a.Path()], keys[b.Path()])
	})
}
