package models

// FinanceRequest is the body of POST /api/finance
type FinanceRequest struct {
	FinancialProfile
	RiskQuiz RiskQuiz `json:"riskQuiz,omitempty"`
}

// FinanceResponse is the text-first answer rendered by the dashboard
type FinanceResponse struct {
	Success        bool        `json:"success"`
	Recommendation string      `json:"recommendation"`
	Persona        string      `json:"persona"`
	IdealStrategy  string      `json:"idealStrategy"`
	Comparison     string      `json:"comparison"`
	Strategies     *Strategies `json:"strategies,omitempty"`
}

// PersonaResult is a persona catalogue entry
type PersonaResult struct {
	Code        string `json:"code"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Strategy is a target allocation with supporting narrative
type Strategy struct {
	Title              string             `json:"title"`
	RiskBand           string             `json:"riskBand"`
	TargetAllocation   map[string]float64 `json:"targetAllocation"`
	Instruments        []string           `json:"instruments"`
	Narrative          string             `json:"narrative"`
	ImplementationTips []string           `json:"implementationTips"`
	ComparisonNote     string             `json:"comparisonNote,omitempty"`
}

// Strategies is the structured part of a finance response
type Strategies struct {
	Persona    PersonaResult `json:"persona"`
	Strategy   Strategy      `json:"strategy"`
	Allocation *Allocation   `json:"allocation"`
	Metrics    Metrics       `json:"metrics"`
}

// EMIRequest is the body of POST /api/finance/emi
type EMIRequest struct {
	Principal    Amount `json:"principal"`
	InterestRate Amount `json:"interest"`
	TenureValue  Amount `json:"tenureValue"`
	TenureType   string `json:"tenureType"`
}

// EMIResponse carries a single loan's monthly installment
type EMIResponse struct {
	EMI          float64 `json:"emi"`
	TenureMonths int     `json:"tenureMonths"`
}
