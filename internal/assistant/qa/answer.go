// Package qa answers natural-language questions about a company's business
// records. Questions are routed by keyword to a domain handler; each handler
// narrows to one record and phrases a Hebrew answer for the asked field.
package qa

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Outcome classifies what a handler produced.
type Outcome string

const (
	// OutcomeAnswered means a record was found and an answer was phrased.
	OutcomeAnswered Outcome = "answered"
	// OutcomeNotFound means the domain matched but no record did.
	OutcomeNotFound Outcome = "not_found"
)

// Answer is a routed handler's reply.
type Answer struct {
	Domain  string
	Outcome Outcome
	Text    string
}

// Question is a normalized user question scoped to one company.
type Question struct {
	CompanyID primitive.ObjectID
	Text      string
	Tokens    []string
}

// NewQuestion lowercases and trims the message and splits it into tokens.
func NewQuestion(companyID primitive.ObjectID, message string) *Question {
	text := strings.ToLower(strings.TrimSpace(message))
	return &Question{
		CompanyID: companyID,
		Text:      text,
		Tokens:    strings.Fields(text),
	}
}

// Has reports whether the question contains the phrase.
func (q *Question) Has(phrase string) bool {
	return strings.Contains(q.Text, phrase)
}

func answered(text string) *Answer {
	return &Answer{Outcome: OutcomeAnswered, Text: text}
}

func notFound(text string) *Answer {
	return &Answer{Outcome: OutcomeNotFound, Text: text}
}
