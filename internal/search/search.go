// Package search implements the case-insensitive substring filter shared by
// every list view.
package search

import "strings"

// Normalize lowercases and trims a query.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Matches reports whether query occurs in any of fields, ignoring case. An
// empty query matches everything.
func Matches(query string, fields ...string) bool {
	q := Normalize(query)
	if q == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// Filter returns the items whose fields match query, preserving order.
func Filter[T any](items []T, query string, fields func(T) []string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if Matches(query, fields(item)...) {
			out = append(out, item)
		}
	}
	return out
}
