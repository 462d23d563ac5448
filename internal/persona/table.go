package persona

import "github.com/Dan9191/finance-sage/internal/finance"

// rule matches when every dimension of the input is in the rule's set
type rule struct {
	code        string
	label       string
	description string
	age         AgeBucket
	dti         []finance.DTIBand
	knowledge   []Knowledge
	behaviour   []Behaviour
	reaction    []Reaction
}

func dti(b ...finance.DTIBand) []finance.DTIBand { return b }
func know(k ...Knowledge) []Knowledge            { return k }
func beh(b ...Behaviour) []Behaviour             { return b }
func react(r ...Reaction) []Reaction             { return r }

// Shared wording for personas that recur across age groups
const (
	learningLabel = "Moderate debt, learning, open to risk."
	learningDesc  = "You have moderate debt and are learning, open to some risk."
	riskyLabel    = "Risky, low knowledge, high leverage."
	riskyDesc     = "You are taking high risks with little knowledge and high leverage."
	outlierLabel  = "Exceptionally rare, high risk, high skill, high leverage."
	outlierDesc   = "You are an outlier: high risk, high skill, and high leverage."
	safetyLabel   = "Expert, but prefers safety."
	safetyDesc    = "You have advanced knowledge but prefer to play it safe."
	skilledLabel  = "High debt, skilled but cautious."
	skilledDesc   = "You have high debt, are skilled, but remain cautious."
)

// rules is ordered; within an age bucket the first matching rule wins.
var rules = []rule{
	// 18–25
	{"A1", "Low debt, conservative, just starting out.", "You are starting your financial journey with low debt and a conservative approach.",
		Age18To25, dti(dtiLow), know(Minimal), beh(Cautious), react(Unsure, Sell)},
	{"A2", "Student/saver, balances small loan & risk.", "You are balancing small loans and moderate risk as a student or early saver.",
		Age18To25, dti(dtiMid), know(Minimal), beh(ModerateBehaviour), react(Hold)},
	{"A3", "Somewhat high debt, careful but informed.", "You have somewhat high debt but are careful and informed.",
		Age18To25, dti(dtiHigh), know(ModerateKnowledge), beh(Cautious), react(Hold)},
	{"A4", "High debt, but aggressive risk taker.", "You have high debt but are an aggressive risk taker.",
		Age18To25, dti(dtiVeryHigh), know(ModerateKnowledge), beh(Aggressive), react(BuyMore)},
	{"A5", "Rare case, high skill and low debt.", "You are a rare case: highly skilled, aggressive, and with low debt.",
		Age18To25, dti(dtiLow), know(Advanced), beh(Aggressive), react(BuyMore)},
	{"A6", "Financially stretched, struggles with volatility.", "You are financially stretched and may struggle with market volatility.",
		Age18To25, dti(dtiVeryHigh), know(Minimal, ModerateKnowledge), beh(Cautious), react(Sell, Unsure)},
	{"A7", "Low debt, learning, open to moderate risk.", "You are starting out, learning, and open to moderate risk.",
		Age18To25, dti(dtiLow), know(Minimal), beh(ModerateBehaviour), react(Hold, Unsure)},
	{"A8", "Low debt, some experience, steady approach.", "You have low debt and some experience, taking a steady approach.",
		Age18To25, dti(dtiLow), know(ModerateKnowledge), beh(ModerateBehaviour), react(Hold)},
	{"A9", "Moderate debt, cautious, needs guidance.", "You have moderate debt and are cautious, needing more guidance.",
		Age18To25, dti(dtiMid), know(Minimal), beh(Cautious), react(Sell, Unsure)},
	{"A10", "High risk, low knowledge, vulnerable.", "You are taking high risks with little knowledge and are financially vulnerable.",
		Age18To25, dti(dtiHigh), know(Minimal), beh(Aggressive), react(BuyMore)},
	{"A11", outlierLabel, outlierDesc,
		Age18To25, dti(dtiVeryHigh), know(Advanced), beh(Aggressive), react(BuyMore)},
	{"A12", "Young, skilled, but over-leveraged.", "You are young and skilled, but may be over-leveraged.",
		Age18To25, dti(dtiHigh), know(Advanced), beh(ModerateBehaviour), react(Hold, BuyMore)},

	// 26–35
	{"B1", "Young family, heavy loans, low risk appetite.", "You have a young family, heavy loans, and a low risk appetite.",
		Age26To35, dti(dtiVeryHigh), know(Minimal), beh(Cautious), react(Sell)},
	{"B2", "Growing family, higher loans, decent control.", "You have a growing family, higher loans, and decent control.",
		Age26To35, dti(dtiHigh), know(ModerateKnowledge), beh(ModerateBehaviour), react(Hold)},
	{"B3", "Financially strong, confident investor.", "You are financially strong and a confident investor.",
		Age26To35, dti(dtiLow), know(ModerateKnowledge), beh(Aggressive), react(BuyMore)},
	{"B4", "Entrepreneur, high income, accepts risk & leverage.", "You are an entrepreneur with high income, accepting risk and leverage.",
		Age26To35, dti(dtiMid), know(Advanced), beh(Aggressive), react(BuyMore)},
	{"B5", "High risk, skills & awareness, but at credit limits.", "You have high risk, skills, and awareness, but are at your credit limits.",
		Age26To35, dti(dtiVeryHigh), know(Advanced), beh(Aggressive), react(Hold, BuyMore)},
	{"B6", learningLabel, learningDesc,
		Age26To35, dti(dtiMid), know(Minimal), beh(ModerateBehaviour), react(Hold, Unsure)},
	{"B7", riskyLabel, "You are taking high risks with little knowledge and high leverage. Consider more education and risk management.",
		Age26To35, dti(dtiHigh), know(Minimal), beh(Aggressive), react(BuyMore)},
	{"B8", safetyLabel, safetyDesc,
		Age26To35, dti(dtiLow), know(Advanced), beh(Cautious), react(Hold, Unsure)},
	{"B9", "High leverage, moderate skill, aggressive.", "You are highly leveraged, moderately skilled, and aggressive.",
		Age26To35, dti(dtiVeryHigh), know(ModerateKnowledge), beh(Aggressive), react(BuyMore)},
	{"B10", skilledLabel, skilledDesc,
		Age26To35, dti(dtiHigh), know(Advanced), beh(Cautious), react(Sell, Unsure)},

	// 36–50
	{"C1", "Stable earner, prudent risk management.", "You are a stable earner with prudent risk management.",
		Age36To50, dti(dtiLow), know(ModerateKnowledge), beh(ModerateBehaviour), react(Hold)},
	{"C2", "Professional, tactically uses debt for wealth creation.", "You are a professional who tactically uses debt for wealth creation.",
		Age36To50, dti(dtiMid), know(Advanced), beh(Aggressive), react(BuyMore)},
	{"C3", "High DTI, but experience helps manage risk.", "You have high DTI, but your experience helps you manage risk.",
		Age36To50, dti(dtiHigh), know(Advanced), beh(ModerateBehaviour), react(Hold)},
	{"C4", "Stressed, at risk of financial strain and caution.", "You are stressed, at risk of financial strain, and cautious.",
		Age36To50, dti(dtiVeryHigh), know(ModerateKnowledge, Advanced), beh(Cautious), react(Sell, Unsure)},
	{"C5", "Low debt, cautious, prefers stability.", "You have low debt and prefer stability.",
		Age36To50, dti(dtiLow), know(Minimal), beh(Cautious), react(Hold, Unsure)},
	{"C6", learningLabel, learningDesc,
		Age36To50, dti(dtiMid), know(Minimal), beh(ModerateBehaviour), react(Hold, Unsure)},
	{"C7", riskyLabel, riskyDesc,
		Age36To50, dti(dtiHigh), know(Minimal), beh(Aggressive), react(BuyMore)},
	{"C8", outlierLabel, outlierDesc,
		Age36To50, dti(dtiVeryHigh), know(Advanced), beh(Aggressive), react(BuyMore)},
	{"C9", skilledLabel, skilledDesc,
		Age36To50, dti(dtiHigh), know(Advanced), beh(Cautious), react(Sell, Unsure)},

	// 51–65
	{"D1", "Conservative, solid finances, prepping for retirement.", "You are conservative, have solid finances, and are prepping for retirement.",
		Age51To65, dti(dtiLow), know(ModerateKnowledge), beh(Cautious), react(Hold)},
	{"D2", "Still optimizing, but aware of limits.", "You are still optimizing your finances, but are aware of your limits.",
		Age51To65, dti(dtiMid), know(Advanced), beh(ModerateBehaviour), react(Hold, BuyMore)},
	{"D3", "Late-career, high DTI, prioritizes stability.", "You are late-career, have high DTI, and prioritize stability.",
		Age51To65, dti(dtiVeryHigh), know(Minimal, ModerateKnowledge), beh(Cautious), react(Sell)},
	{"D4", safetyLabel, safetyDesc,
		Age51To65, dti(dtiLow), know(Advanced), beh(Cautious), react(Hold, Unsure)},
	{"D5", learningLabel, learningDesc,
		Age51To65, dti(dtiMid), know(Minimal), beh(ModerateBehaviour), react(Hold, Unsure)},
	{"D6", riskyLabel, riskyDesc,
		Age51To65, dti(dtiHigh), know(Minimal), beh(Aggressive), react(BuyMore)},
	{"D7", outlierLabel, outlierDesc,
		Age51To65, dti(dtiVeryHigh), know(Advanced), beh(Aggressive), react(BuyMore)},
	{"D8", skilledLabel, skilledDesc,
		Age51To65, dti(dtiHigh), know(Advanced), beh(Cautious), react(Sell, Unsure)},

	// 65+
	{"E1", "Low/no debt, avoids risk, preserves capital.", "You have low or no debt, avoid risk, and focus on preserving capital.",
		AgeOver65, dti(dtiLow), know(Minimal), beh(Cautious), react(Sell)},
	{"E2", "Light debt, manages with care, income focus.", "You have light debt, manage with care, and focus on income.",
		AgeOver65, dti(dtiMid), know(ModerateKnowledge), beh(Cautious), react(Hold, Unsure)},
	{"E3", "Exceptionally financially active, takes measured risks.", "You are exceptionally financially active and take measured risks.",
		AgeOver65, dti(dtiVeryHigh), know(Advanced), beh(ModerateBehaviour), react(Hold, BuyMore)},
	{"E4", learningLabel, learningDesc,
		AgeOver65, dti(dtiMid), know(Minimal), beh(ModerateBehaviour), react(Hold, Unsure)},
	{"E5", riskyLabel, riskyDesc,
		AgeOver65, dti(dtiHigh), know(Minimal), beh(Aggressive), react(BuyMore)},
	{"E6", safetyLabel, safetyDesc,
		AgeOver65, dti(dtiLow), know(Advanced), beh(Cautious), react(Hold, Unsure)},
	{"E7", outlierLabel, outlierDesc,
		AgeOver65, dti(dtiVeryHigh), know(Advanced), beh(Aggressive), react(BuyMore)},
	{"E8", skilledLabel, skilledDesc,
		AgeOver65, dti(dtiHigh), know(Advanced), beh(Cautious), react(Sell, Unsure)},
}
