// Package density reports how crowded well-known Seoul places are, backed
// by a fixed in-process table. All lookups and formatters are pure and
// total; unknown places degrade to a fallback message instead of an error.
package density

import (
	"fmt"
	"strings"
)

// Single returns the two-line status message for one place name.
func Single(name string) string {
	p, ok := Lookup(name)
	if !ok {
		return fmt.Sprintf("%s의 현재 밀집 정보를 찾을 수 없습니다.\n등록되지 않은 장소예요. 장소 이름을 다시 확인해 주세요.", name)
	}
	return fmt.Sprintf("%s의 현재 밀집 정도는 %s상태입니다.\n%s", p.Name, p.Level.Label(), p.Description)
}

// Multiple reports every place in input order, one bulleted entry per
// name. Duplicates each produce their own entry; an empty input produces
// an empty string.
func Multiple(names []string) string {
	if len(names) == 0 {
		return ""
	}

	entries := make([]string, len(names))
	for i, name := range names {
		entries[i] = "• " + Single(name)
	}
	return strings.Join(entries, "\n")
}
