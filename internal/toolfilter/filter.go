// Package toolfilter restricts which registered tools a server run exposes,
// driven by the serve command's --include-tools / --exclude-tools flags.
package toolfilter

import (
	"fmt"
	"strings"
)

// Tool is the name/description pair the filter operates on.
type Tool struct {
	Name        string
	Description string
}

// ParseToolList splits a comma-separated flag value into a deduplicated,
// trimmed list of tool names. Empty entries are removed and order is
// preserved (first occurrence wins on duplicates).
func ParseToolList(csv string) []string {
	if csv == "" {
		return nil
	}

	parts := strings.Split(csv, ",")
	seen := make(map[string]struct{})
	var result []string

	for _, p := range parts {
		name := strings.TrimSpace(p)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}

	return result
}

// Filter applies include or exclude filtering to the registered tools.
//
// Rules:
//   - Include and exclude are mutually exclusive; the flag layer rejects
//     the combination, and this function rejects it again.
//   - Include mode: only named tools are kept. An include name that does
//     not match any registered tool is an error, with a suggestion when a
//     close name exists (Levenshtein <= 3).
//   - Exclude mode: named tools are removed. Excluding everything is an
//     error, since a server with zero tools is useless.
//   - With both lists empty, all tools pass through unchanged.
//
// The returned slice follows include-list order in include mode and
// registration order in exclude mode.
func Filter(tools []Tool, include, exclude []string) ([]Tool, error) {
	if len(include) > 0 && len(exclude) > 0 {
		return nil, fmt.Errorf("--include-tools and --exclude-tools cannot be used together")
	}

	if len(include) == 0 && len(exclude) == 0 {
		return tools, nil
	}

	byName := make(map[string]Tool, len(tools))
	registered := make([]string, 0, len(tools))
	for _, t := range tools {
		byName[t.Name] = t
		registered = append(registered, t.Name)
	}

	if len(include) > 0 {
		var result []Tool
		for _, name := range include {
			t, ok := byName[name]
			if !ok {
				msg := fmt.Sprintf("unknown tool '%s'. Registered tools: %s",
					name, strings.Join(registered, ", "))
				if suggestion := SuggestTool(name, registered); suggestion != "" {
					msg += fmt.Sprintf(" Did you mean '%s'?", suggestion)
				}
				return nil, fmt.Errorf("%s", msg)
			}
			result = append(result, t)
		}
		return result, nil
	}

	excludeSet := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		excludeSet[name] = struct{}{}
	}

	var result []Tool
	for _, t := range tools {
		if _, skip := excludeSet[t.Name]; !skip {
			result = append(result, t)
		}
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("all tools excluded: nothing to serve")
	}

	return result, nil
}
