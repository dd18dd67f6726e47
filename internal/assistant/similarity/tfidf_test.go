package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "drops single character tokens",
			text:     "a bb ccc",
			expected: []string{"bb", "ccc"},
		},
		{
			name:     "lowercases",
			text:     "Marketing BUDGET",
			expected: []string{"marketing", "budget"},
		},
		{
			name:     "hebrew words survive",
			text:     "תקציב שיווק 2024",
			expected: []string{"תקציב", "שיווק", "2024"},
		},
		{
			name:     "punctuation splits tokens",
			text:     "status: active, done.",
			expected: []string{"status", "active", "done"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.text))
		})
	}
}

func TestBestMatch(t *testing.T) {
	docs := []string{
		`{"name": "תקציב שיווק", "amount": 50000, "status": "פעיל"}`,
		`{"name": "פרויקט הקמה", "manager": "דנה לוי", "status": "בתהליך"}`,
		`{"product": "מחשב נייד", "quantity": 12, "warehouse": "מרכז"}`,
	}

	t.Run("picks the overlapping document", func(t *testing.T) {
		idx, score := BestMatch("מי מנהל את פרויקט הקמה", docs)
		assert.Equal(t, 1, idx)
		assert.Greater(t, score, 0.1)
	})

	t.Run("unrelated question scores near zero", func(t *testing.T) {
		idx, score := BestMatch("xyzzy plugh", docs)
		assert.Equal(t, -1, idx)
		assert.Zero(t, score)
	})

	t.Run("empty corpus", func(t *testing.T) {
		idx, score := BestMatch("תקציב", nil)
		assert.Equal(t, -1, idx)
		assert.Zero(t, score)
	})

	t.Run("identical document scores highest", func(t *testing.T) {
		idx, score := BestMatch(docs[0], docs)
		assert.Equal(t, 0, idx)
		assert.InDelta(t, 1.0, score, 0.05)
	})
}
