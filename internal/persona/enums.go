package persona

import (
	"strings"

	"github.com/Dan9191/finance-sage/internal/finance"
)

// AgeBucket is the life stage derived from the age-group label
type AgeBucket int

const (
	AgeUnknown AgeBucket = iota
	Age18To25
	Age26To35
	Age36To50
	Age51To65
	AgeOver65
)

// AgeBuckets lists the known buckets
func AgeBuckets() []AgeBucket {
	return []AgeBucket{Age18To25, Age26To35, Age36To50, Age51To65, AgeOver65}
}

func (a AgeBucket) String() string {
	switch a {
	case Age18To25:
		return "A"
	case Age26To35:
		return "B"
	case Age36To50:
		return "C"
	case Age51To65:
		return "D"
	case AgeOver65:
		return "E"
	}
	return "?"
}

// ParseAgeBucket matches the leading part of labels such as
// "18–25 years (Early Career)" or "65+".
func ParseAgeBucket(label string) AgeBucket {
	label = strings.TrimSpace(label)
	switch {
	case strings.HasPrefix(label, "18"):
		return Age18To25
	case strings.HasPrefix(label, "26"):
		return Age26To35
	case strings.HasPrefix(label, "36"):
		return Age36To50
	case strings.HasPrefix(label, "51"):
		return Age51To65
	case strings.HasPrefix(label, "Over"), strings.HasPrefix(label, "65"):
		return AgeOver65
	}
	return AgeUnknown
}

// Knowledge is the self-rated investing knowledge
type Knowledge int

const (
	KnowledgeUnknown Knowledge = iota
	Minimal
	ModerateKnowledge
	Advanced
)

// KnowledgeLevels lists the known levels
func KnowledgeLevels() []Knowledge {
	return []Knowledge{Minimal, ModerateKnowledge, Advanced}
}

func (k Knowledge) String() string {
	switch k {
	case Minimal:
		return "Minimal"
	case ModerateKnowledge:
		return "Moderate"
	case Advanced:
		return "Advanced"
	}
	return "Unknown"
}

// ParseKnowledge also understands the quiz's Low/Medium/High wording
func ParseKnowledge(s string) Knowledge {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minimal", "low", "beginner":
		return Minimal
	case "moderate", "medium", "intermediate":
		return ModerateKnowledge
	case "advanced", "high", "expert":
		return Advanced
	}
	return KnowledgeUnknown
}

// Behaviour is the investor's stated risk tendency
type Behaviour int

const (
	BehaviourUnknown Behaviour = iota
	Cautious
	ModerateBehaviour
	Aggressive
)

// Behaviours lists the known tendencies
func Behaviours() []Behaviour {
	return []Behaviour{Cautious, ModerateBehaviour, Aggressive}
}

func (b Behaviour) String() string {
	switch b {
	case Cautious:
		return "Cautious"
	case ModerateBehaviour:
		return "Moderate"
	case Aggressive:
		return "Aggressive"
	}
	return "Unknown"
}

// ParseBehaviour maps a tendency label to its value
func ParseBehaviour(s string) Behaviour {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cautious", "conservative":
		return Cautious
	case "moderate", "balanced":
		return ModerateBehaviour
	case "aggressive":
		return Aggressive
	}
	return BehaviourUnknown
}

// Reaction is the answer to "what do you do when markets fall 20%?"
type Reaction int

const (
	ReactionUnknown Reaction = iota
	Sell
	Hold
	BuyMore
	Unsure
	SellOrUnsure
	HoldOrBuyMore
)

// Reactions lists the known answers, combined ones included
func Reactions() []Reaction {
	return []Reaction{Sell, Hold, BuyMore, Unsure, SellOrUnsure, HoldOrBuyMore}
}

func (r Reaction) String() string {
	switch r {
	case Sell:
		return "Sell"
	case Hold:
		return "Hold"
	case BuyMore:
		return "Buy More"
	case Unsure:
		return "Unsure"
	case SellOrUnsure:
		return "Sell/Unsure"
	case HoldOrBuyMore:
		return "Hold/Buy More"
	}
	return "Unknown"
}

// ParseReaction maps a reaction label to its value
func ParseReaction(s string) Reaction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sell":
		return Sell
	case "hold":
		return Hold
	case "buy more", "buymore", "buy":
		return BuyMore
	case "unsure", "not sure":
		return Unsure
	case "sell/unsure":
		return SellOrUnsure
	case "hold/buy more":
		return HoldOrBuyMore
	}
	return ReactionUnknown
}

// shorthands for the rule table
const (
	dtiLow      = finance.DTIUnder36
	dtiMid      = finance.DTI36To43
	dtiHigh     = finance.DTI43To50
	dtiVeryHigh = finance.DTIOver50
)
