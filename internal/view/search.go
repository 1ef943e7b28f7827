package view

import (
	"strings"
	"unicode/utf8"

	"homestock/internal/model"
)

// SearchItems returns items whose name matches the query case-insensitively.
// Exact substring matches always qualify; otherwise a bounded edit distance
// against the name and its tokens tolerates minor typos, so "mlk" still
// finds "Milk". An empty query returns the input unchanged.
func SearchItems(items []model.InventoryItem, query string) []model.InventoryItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}

	maxDist := 1
	if utf8.RuneCountInString(q) >= 5 {
		maxDist = 2
	}

	out := make([]model.InventoryItem, 0, len(items))
	for _, item := range items {
		if matchesQuery(strings.ToLower(item.Name), q, maxDist) {
			out = append(out, item)
		}
	}
	return out
}

func matchesQuery(name, query string, maxDist int) bool {
	if strings.Contains(name, query) {
		return true
	}
	if editDistance(name, query) <= maxDist {
		return true
	}
	for _, token := range strings.Fields(name) {
		if editDistance(token, query) <= maxDist {
			return true
		}
	}
	return false
}

// editDistance is the Levenshtein distance between two strings, computed
// with a single rolling row.
func editDistance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
