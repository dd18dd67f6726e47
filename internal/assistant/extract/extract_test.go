package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueAfterKeyword(t *testing.T) {
	tests := []struct {
		name     string
		question string
		keyword  string
		expected string
	}{
		{
			name:     "value up to question mark",
			question: "מה התקציב של מחלקת שיווק?",
			keyword:  "מחלקת",
			expected: "שיווק",
		},
		{
			name:     "value at end of question",
			question: "מה הטלפון של לקוח דוד לוי",
			keyword:  "לקוח",
			expected: "דוד לוי",
		},
		{
			name:     "internal whitespace normalized",
			question: "מה   התקציב של    מחלקת   שיווק ?",
			keyword:  "מחלקת",
			expected: "שיווק",
		},
		{
			name:     "keyword absent",
			question: "מה שלומך?",
			keyword:  "מחלקת",
			expected: "",
		},
		{
			name:     "first occurrence wins",
			question: "פרויקט אלפא או פרויקט בטא?",
			keyword:  "פרויקט",
			expected: "אלפא או פרויקט בטא",
		},
		{
			name:     "keyword at very end yields empty",
			question: "ספר לי על מחלקת",
			keyword:  "מחלקת",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValueAfterKeyword(tt.question, tt.keyword))
		})
	}
}

func TestFirstValueAfter(t *testing.T) {
	q := "מה תקציב פרויקט אלפא?"
	assert.Equal(t, "אלפא", FirstValueAfter(q, "מחלקת", "פרויקט"))
	assert.Equal(t, "", FirstValueAfter(q, "מחלקת", "לקוח"))
}

func TestYear(t *testing.T) {
	tests := []struct {
		name     string
		question string
		year     int
		found    bool
	}{
		{"year present", "תקציב מחלקת שיווק 2023", 2023, true},
		{"no 4-digit token", "מה התקציב של מחלקת שיווק?", 0, false},
		{"out of range accepted", "תקציב לשנת 9999", 9999, true},
		{"5-digit token skipped", "מספר 12345 בלי שנה", 0, false},
		{"first of several wins", "בין 2021 ל 2023", 2021, true},
		{"digits glued to text skipped", "שנת2023 בלי רווח", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, ok := Year(tt.question)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.year, y)
		})
	}
}

func TestPurchaseOrder(t *testing.T) {
	assert.Equal(t, "po-2024-117", PurchaseOrder("מה הספק של תעודת הרכש po-2024-117"))
	assert.Equal(t, "PO-55", PurchaseOrder("status of PO-55 please"))
	assert.Equal(t, "", PurchaseOrder("אין כאן מספר תעודה"))
}
