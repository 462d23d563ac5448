package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Amount is a user-entered number. The questionnaire posts numbers as JSON
// numbers or as raw form strings, so both are accepted. Blanks, garbage and
// non-finite values ("NaN", "Inf") decode to zero.
type Amount float64

// UnmarshalJSON implements json.Unmarshaler
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*a = 0
			return nil
		}
		*a = Amount(parseLoose(s))
		return nil
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		*a = 0
		return nil
	}
	*a = Amount(finite(f))
	return nil
}

// Float returns the amount as float64
func (a Amount) Float() float64 {
	return float64(a)
}

// parseLoose accepts "1,20,000", " 5000 " and "₹2500"
func parseLoose(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "₹")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return finite(f)
}

// finite maps NaN and ±Inf to zero; ParseFloat accepts both spellings
func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
