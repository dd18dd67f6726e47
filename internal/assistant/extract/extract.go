// Package extract pulls query values out of free-text questions: the value
// following a trigger keyword, a 4-digit year token, and purchase-order
// numbers. Questions are expected lowercased by the caller.
package extract

import (
	"strconv"
	"strings"
)

// ValueAfterKeyword normalizes internal whitespace and, when keyword occurs
// in the question, returns the trimmed remainder up to the next '?'. The
// first occurrence wins. Returns "" when the keyword is absent.
func ValueAfterKeyword(question, keyword string) string {
	clean := strings.Join(strings.Fields(question), " ")
	idx := strings.Index(clean, keyword)
	if idx < 0 {
		return ""
	}
	rest := strings.TrimSpace(clean[idx+len(keyword):])
	value, _, _ := strings.Cut(rest, "?")
	return strings.TrimSpace(value)
}

// FirstValueAfter returns the value following the first keyword that yields
// a non-empty extraction.
func FirstValueAfter(question string, keywords ...string) string {
	for _, kw := range keywords {
		if v := ValueAfterKeyword(question, kw); v != "" {
			return v
		}
	}
	return ""
}

// Year scans whitespace-delimited tokens and returns the first purely
// numeric 4-character token as an integer. No range validation is applied.
// The second return is false when no such token exists.
func Year(question string) (int, bool) {
	for _, tok := range strings.Fields(question) {
		if len(tok) == 4 && isDigits(tok) {
			y, err := strconv.Atoi(tok)
			if err == nil {
				return y, true
			}
		}
	}
	return 0, false
}

// PurchaseOrder returns the first token carrying the purchase-order prefix,
// e.g. "PO-2024-117". Matching is case-insensitive on the prefix but the
// token is returned as written.
func PurchaseOrder(question string) string {
	for _, tok := range strings.Fields(question) {
		if strings.Contains(strings.ToLower(tok), "po-") {
			return tok
		}
	}
	return ""
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
