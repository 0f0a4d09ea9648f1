// Package search finds lines of text containing a query.
package search

import "strings"

// Search returns the lines of contents that contain query.
func Search(query, contents string) []string {
	results := make([]string, 0)
	for _, line := range lines(contents) {
		if strings.Contains(line, query) {
			results = append(results, line)
		}
	}
	return results
}

// SearchCaseInsensitive is Search with both sides lower-cased first.
func SearchCaseInsensitive(query, contents string) []string {
	query = strings.ToLower(query)
	results := make([]string, 0)
	for _, line := range lines(contents) {
		if strings.Contains(strings.ToLower(line), query) {
			results = append(results, line)
		}
	}
	return results
}

func lines(contents string) []string {
	if contents == "" {
		return nil
	}
	out := strings.Split(strings.TrimSuffix(contents, "\n"), "\n")
	for i, l := range out {
		out[i] = strings.TrimSuffix(l, "\r")
	}
	return out
}
