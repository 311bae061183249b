package objectutil

import "strings"

// ValueFromObject resolves a dot-delimited path against nested mappings and
// returns the value at the last key verbatim. A missing last key yields
// Undefined.
//
// It returns nil when obj or path is empty, when obj is not a Mapping (a
// sequence root is rejected), or when an intermediate segment does not
// resolve to a non-empty Mapping. It never panics on a miss.
func ValueFromObject(obj any, path string, opts ...Option) any {
	return valueFromObject(obj, path, buildOptions(opts).Observer)
}

func valueFromObject(obj any, path string, obs Observer) any {
	if isEmpty(obj, obs) || isEmpty(path, obs) || Classify(obj) != KindMapping {
		return nil
	}

	first, rest, more := strings.Cut(path, ".")
	v, ok := objectOf(obj).get(first)
	if !ok {
		v = Undefined
	}
	if !more {
		return v
	}
	return valueFromObject(v, rest, obs)
}
