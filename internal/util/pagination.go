package util

import "strings"

func Calculate(page, size int) (from, limit int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 10
	}
	from = (page - 1) * size
	return from, size
}

// Page slices items for one page of a client-side table.
func Page[T any](items []T, page, size int) []T {
	from, limit := Calculate(page, size)
	if from >= len(items) {
		return nil
	}
	to := from + limit
	if to > len(items) {
		to = len(items)
	}
	return items[from:to]
}

// Filter keeps items whose searchable text contains the query, case-insensitive.
// An empty query keeps everything.
func Filter[T any](items []T, query string, text func(T) string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(text(it)), q) {
			out = append(out, it)
		}
	}
	return out
}
