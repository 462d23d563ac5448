// Package persona assigns a narrative investor persona from a handful of
// categorical quiz answers.
package persona

import (
	"github.com/Dan9191/finance-sage/internal/finance"
	"github.com/Dan9191/finance-sage/internal/models"
)

// General is returned for every combination the table does not name
var General = models.PersonaResult{
	Code:        "GEN",
	Label:       "General Persona",
	Description: "Your profile is unique. Consider a custom financial plan.",
}

// Input is one fully-parsed persona query
type Input struct {
	Age       AgeBucket
	DTI       finance.DTIBand
	Knowledge Knowledge
	Behaviour Behaviour
	Reaction  Reaction
}

// ParseInput builds an Input from raw answer labels. Unrecognised labels
// become the Unknown value of their dimension.
func ParseInput(ageGroup, dtiBand, knowledge, behaviour, reaction string) Input {
	return Input{
		Age:       ParseAgeBucket(ageGroup),
		DTI:       finance.ParseDTIBand(dtiBand),
		Knowledge: ParseKnowledge(knowledge),
		Behaviour: ParseBehaviour(behaviour),
		Reaction:  ParseReaction(reaction),
	}
}

// lookup maps every named combination to its index in rules
var lookup = compile(rules)

func compile(rs []rule) map[Input]int {
	m := make(map[Input]int)
	for i, r := range rs {
		for _, d := range r.dti {
			for _, k := range r.knowledge {
				for _, b := range r.behaviour {
					for _, re := range r.reaction {
						key := Input{Age: r.age, DTI: d, Knowledge: k, Behaviour: b, Reaction: re}
						if _, taken := m[key]; !taken {
							m[key] = i
						}
					}
				}
			}
		}
	}
	return m
}

// Classify returns the persona for in, or General when no rule names it
func Classify(in Input) models.PersonaResult {
	i, ok := lookup[in]
	if !ok {
		return General
	}
	r := rules[i]
	return models.PersonaResult{Code: r.code, Label: r.label, Description: r.description}
}

// Coverage describes how much of the input space the table names
type Coverage struct {
	Combinations int      // every tuple of known values
	Named        int      // tuples that resolve to a table persona
	Shadowed     []string // codes of rules that never win a tuple
}

// Inspect reports table coverage over all known enum values
func Inspect() Coverage {
	c := Coverage{
		Combinations: len(AgeBuckets()) * len(finance.DTIBands()) * len(KnowledgeLevels()) * len(Behaviours()) * len(Reactions()),
		Named:        len(lookup),
	}

	wins := make(map[int]bool, len(rules))
	for _, i := range lookup {
		wins[i] = true
	}
	for i, r := range rules {
		if !wins[i] {
			c.Shadowed = append(c.Shadowed, r.code)
		}
	}
	return c
}

// Codes lists every persona code in table order, General last
func Codes() []string {
	codes := make([]string, 0, len(rules)+1)
	for _, r := range rules {
		codes = append(codes, r.code)
	}
	return append(codes, General.Code)
}
