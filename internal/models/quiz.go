package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// RiskQuiz is the free-form answer bag posted by the risk assessment quiz.
// The client has shipped several shapes over time, so nothing is enforced
// and every read goes through the lookup helpers below.
type RiskQuiz map[string]interface{}

// UnmarshalJSON follows the client's truthiness check on the quiz: null,
// false, "" and 0 mean the quiz was not taken and leave q nil. Any other
// non-object value counts as a taken quiz with no answers.
func (q *RiskQuiz) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var m map[string]interface{}
		if err := json.Unmarshal(data, &m); err != nil {
			return err
		}
		*q = m
		return nil
	}

	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch v := v.(type) {
	case nil:
		*q = nil
	case bool:
		*q = emptyUnless(v)
	case string:
		*q = emptyUnless(v != "")
	case float64:
		*q = emptyUnless(v != 0)
	default:
		*q = RiskQuiz{}
	}
	return nil
}

func emptyUnless(taken bool) RiskQuiz {
	if !taken {
		return nil
	}
	return RiskQuiz{}
}

// Lookup returns the first non-empty string value among keys. Nested
// objects are searched with dotted keys ("demographics.ageGroup").
func (q RiskQuiz) Lookup(keys ...string) string {
	for _, key := range keys {
		if v := q.lookup(strings.Split(key, ".")); v != "" {
			return v
		}
	}
	return ""
}

func (q RiskQuiz) lookup(path []string) string {
	var cur interface{} = map[string]interface{}(q)
	for _, p := range path {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return ""
		}
		cur, ok = m[p]
		if !ok {
			return ""
		}
	}

	switch v := cur.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return fmt.Sprintf("%g", v)
	case bool:
		return fmt.Sprintf("%t", v)
	default:
		return ""
	}
}

// AgeGroup returns the age bracket label
func (q RiskQuiz) AgeGroup() string {
	return q.Lookup("ageGroup", "demographics.ageGroup")
}

// Knowledge returns the self-rated knowledge level
func (q RiskQuiz) Knowledge() string {
	return q.Lookup("knowledge", "knowledgeLevel")
}

// Behaviour returns the stated behavioural tendency
func (q RiskQuiz) Behaviour() string {
	return q.Lookup("behaviour", "behavior")
}

// Attitude returns the free-text investment attitude statement
func (q RiskQuiz) Attitude() string {
	return q.Lookup("attitude", "investmentAttitude", "appetite")
}

// Reaction returns the answer to the market-downturn question
func (q RiskQuiz) Reaction() string {
	return q.Lookup("reaction", "downturnReaction")
}

// SavingsRate returns the savings-rate bucket
func (q RiskQuiz) SavingsRate() string {
	return q.Lookup("savingsRate")
}

// Goal returns the main financial goal
func (q RiskQuiz) Goal() string {
	return q.Lookup("goal")
}
