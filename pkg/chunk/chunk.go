// Package chunk splits lists of strings into chunks under a cumulative byte
// budget. Used to paginate long listings into embed-field-sized pages.
package chunk

// ByBudget concatenates items in order into chunks whose length stays within
// budget. An item that alone exceeds the budget is emitted as its own chunk
// rather than dropped. Empty input yields no chunks.
func ByBudget(items []string, budget int) []string {
	var chunks []string
	var current string

	for _, item := range items {
		if current != "" && len(current)+len(item) > budget {
			chunks = append(chunks, current)
			current = ""
		}
		current += item
	}
	if current != "" {
		chunks = append(chunks, current)
	}
	return chunks
}
