package models

// Income holds monthly in-hand income figures
type Income struct {
	Primary Amount `json:"inhandIncome"`
	Other   Amount `json:"otherIncome"`
}

// MutualFund is a single fund holding
type MutualFund struct {
	Name   string `json:"name"`
	Amount Amount `json:"amount"`
}

// Investments holds current holdings per asset category
type Investments struct {
	Gold          Amount       `json:"gold"`
	RealEstate    Amount       `json:"realEstate"`
	MutualFunds   []MutualFund `json:"mutualFunds"`
	RSU           Amount       `json:"rsu"`
	ESOPs         Amount       `json:"esops"`
	FixedDeposits Amount       `json:"fd"`
	Other         Amount       `json:"other"`
}

// MutualFundTotal sums all fund holdings
func (i Investments) MutualFundTotal() float64 {
	var total float64
	for _, mf := range i.MutualFunds {
		total += mf.Amount.Float()
	}
	return total
}

// Expenses holds monthly spending excluding loan EMIs
type Expenses struct {
	Monthly Amount `json:"monthlyExpenses"`
}

// Loan represents an outstanding loan as entered by the user
type Loan struct {
	Type         string `json:"type"`
	Principal    Amount `json:"principal"`
	InterestRate Amount `json:"interest"` // annual, percent
	TenureValue  Amount `json:"tenureValue"`
	TenureType   string `json:"tenureType"` // "months" or "years"
}

// Debt groups the user's loans
type Debt struct {
	HasDebt string `json:"hasDebt"`
	Loans   []Loan `json:"loans"`
}

// Contribution is a recurring investment such as a SIP
type Contribution struct {
	Name   string `json:"name"`
	Amount Amount `json:"amount"`
}

// FinancialProfile is everything collected by the questionnaire wizard
type FinancialProfile struct {
	Income               Income         `json:"income"`
	Investments          Investments    `json:"investments"`
	Expenses             Expenses       `json:"expenses"`
	Debt                 Debt           `json:"debt"`
	RecurringInvestments []Contribution `json:"recurringInvestments"`
}
