// Package lexicon holds the fixed vocabulary the analyzers match against:
// pattern tables, keyword sets, relationship rules and scoring weights.
// Nothing in here has behavior beyond defaulted lookups.
package lexicon

// Lookup returns m[key], or fallback when key is absent. Every table miss in
// the analyzers goes through here; a miss is never an error.
func Lookup[K comparable, V any](m map[K]V, key K, fallback V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}

// Keywords pairs a key with the surface forms that signal it.
type Keywords struct {
	Key      string
	Variants []string
}
