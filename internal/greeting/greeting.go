// Package greeting formats Korean greeting lines for one or more names.
package greeting

import "strings"

// Single returns the greeting line for one name. It is total over all
// string inputs and performs no lookup.
func Single(name string) string {
	return "안녕하세요, " + name + "님!"
}

// Multiple greets every name in input order, one bullet line per name.
// Duplicates each produce their own line; an empty input produces an
// empty string.
func Multiple(names []string) string {
	if len(names) == 0 {
		return ""
	}

	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = "• " + Single(name)
	}
	return strings.Join(lines, "\n")
}
