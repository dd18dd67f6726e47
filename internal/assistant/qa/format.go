package qa

import "strings"

// cell is one labeled value inside a list row.
type cell struct {
	label string
	value string
}

// formatRows renders nested record lists: cells joined with " - " inside a
// row, rows joined with newlines. An empty list reads "אין נתונים".
func formatRows(rows [][]cell) string {
	if len(rows) == 0 {
		return "אין נתונים"
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		parts := make([]string, 0, len(row))
		for _, c := range row {
			parts = append(parts, c.label+": "+c.value)
		}
		lines = append(lines, strings.Join(parts, " - "))
	}
	return strings.Join(lines, "\n")
}

// bulletList renders plain string lists as dashed bullets, or the given
// empty-text when there is nothing to show.
func bulletList(items []string, emptyText string) string {
	if len(items) == 0 {
		return emptyText
	}
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}
