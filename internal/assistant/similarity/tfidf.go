// Package similarity ranks corpus documents against a free-text question
// using TF-IDF weighted cosine similarity.
package similarity

import (
	"math"
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}][\p{L}\p{N}]+`)

// Tokenize lowercases the text and keeps tokens of two or more word
// characters, so single-letter Hebrew prefixes never dominate the match.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

type vector map[string]float64

func (v vector) normalize() {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for t, w := range v {
		v[t] = w / norm
	}
}

func dot(a, b vector) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for t, w := range a {
		sum += w * b[t]
	}
	return sum
}

// BestMatch fits a TF-IDF model over docs, projects the question into the
// same space and returns the index and cosine score of the closest document.
// It returns index -1 when docs is empty or the question shares no vocabulary
// with the corpus. Inverse document frequencies are smoothed, so terms that
// appear in every document still carry a small weight.
func BestMatch(question string, docs []string) (int, float64) {
	if len(docs) == 0 {
		return -1, 0
	}

	counts := make([]map[string]int, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		counts[i] = make(map[string]int)
		for _, tok := range Tokenize(doc) {
			counts[i][tok]++
		}
		for tok := range counts[i] {
			df[tok]++
		}
	}

	n := float64(len(docs))
	idf := make(map[string]float64, len(df))
	for tok, d := range df {
		idf[tok] = math.Log((1+n)/(1+float64(d))) + 1
	}

	query := make(vector)
	for _, tok := range Tokenize(question) {
		if w, ok := idf[tok]; ok {
			query[tok] += w
		}
	}
	if len(query) == 0 {
		return -1, 0
	}
	query.normalize()

	best, bestScore := -1, 0.0
	for i, c := range counts {
		v := make(vector, len(c))
		for tok, tf := range c {
			v[tok] = float64(tf) * idf[tok]
		}
		v.normalize()
		if score := dot(query, v); best == -1 || score > bestScore {
			best, bestScore = i, score
		}
	}
	return best, bestScore
}
