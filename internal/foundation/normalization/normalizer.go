// Package normalization maps loosely written configuration values onto enums.
package normalization

import (
	"fmt"
	"sort"
	"strings"
)

// Normalizer resolves case, surrounding space and '_' versus '-' spelling
// differences before looking a value up.
type Normalizer[T comparable] struct {
	values map[string]T
	keys   []string // sorted, for error messages
}

// New creates a normalizer over the given spelling to value table.
func New[T comparable](values map[string]T) *Normalizer[T] {
	n := &Normalizer[T]{values: make(map[string]T, len(values))}
	for k, v := range values {
		key := clean(k)
		n.values[key] = v
		n.keys = append(n.keys, key)
	}
	sort.Strings(n.keys)
	return n
}

// Lookup returns the value for raw and whether it was recognized.
func (n *Normalizer[T]) Lookup(raw string) (T, bool) {
	v, ok := n.values[clean(raw)]
	return v, ok
}

// Parse is Lookup with an error naming the accepted spellings.
func (n *Normalizer[T]) Parse(raw string) (T, error) {
	if v, ok := n.Lookup(raw); ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid value %q, valid options: %v", raw, n.keys)
}

func clean(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
}
