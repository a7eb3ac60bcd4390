package ids

import (
	"strings"

	internalstrings "github.com/al-prieto/todo-list-app/internal/strings"
)

// NormalizeUniqueIDs lowercases ids and drops empty values and duplicates,
// keeping the first occurrence order.
func NormalizeUniqueIDs(ids []string) []string {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = internalstrings.NormalizeKeyword(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}
	return unique
}

// MatchPrefix finds the id in normalized that starts with prefix.
// An exact match always wins; otherwise more than one candidate is ambiguous.
func MatchPrefix(normalized []string, prefix string) (match string, found bool, ambiguous bool) {
	prefix = internalstrings.NormalizeKeyword(prefix)
	if prefix == "" {
		return "", false, false
	}

	for _, id := range normalized {
		if id == prefix {
			return id, true, false
		}
	}

	for _, id := range normalized {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		if found {
			return "", true, true
		}
		match = id
		found = true
	}
	return match, found, false
}

// UniquePrefixLengths returns the shortest unique prefix length for each ID.
func UniquePrefixLengths(ids []string) map[string]int {
	normalized := NormalizeUniqueIDs(ids)
	lengths := make(map[string]int, len(normalized))
	for _, id := range normalized {
		lengths[id] = uniquePrefixLength(id, normalized)
	}
	return lengths
}

func uniquePrefixLength(id string, ids []string) int {
	for length := 1; length <= len(id); length++ {
		prefix := id[:length]
		unique := true
		for _, other := range ids {
			if other == id {
				continue
			}
			if strings.HasPrefix(other, prefix) {
				unique = false
				break
			}
		}
		if unique {
			return length
		}
	}

	return len(id)
}
