package qa

import (
	"encoding/json"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Fixed answer fragments used across every domain.
const (
	unknown         = "לא ידוע"
	unavailable     = "לא זמין"
	noNotes         = "אין הערות"
	defaultCurrency = `ש"ח`
)

func orUnknown(s string) string {
	if s == "" {
		return unknown
	}
	return s
}

func orUnavailable(s string) string {
	if s == "" {
		return unavailable
	}
	return s
}

func orText(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func currencyOf(s string) string {
	if s == "" {
		return defaultCurrency
	}
	return s
}

func fmtAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// fmtDim renders a physical dimension; zero means the field was never set.
func fmtDim(f float64) string {
	if f == 0 {
		return unavailable
	}
	return fmtAmount(f)
}

func fmtInt(n int) string {
	return strconv.Itoa(n)
}

func fmtBool(b bool) string {
	return strconv.FormatBool(b)
}

func fmtDate(t time.Time) string {
	if t.IsZero() {
		return unavailable
	}
	return t.Format("2006-01-02 15:04:05")
}

func yearRange(year int) bson.M {
	return bson.M{
		"$gte": time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		"$lte": time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

// dump serializes a record for the catch-all "here is everything I found"
// answers.
func dump(v interface{}) string {
	buf, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(buf)
}
