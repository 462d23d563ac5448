package models

// Allocation is the percentage split of current holdings. A nil *Allocation
// means there was nothing to split.
type Allocation struct {
	Gold          float64 `json:"gold"`
	RealEstate    float64 `json:"realEstate"`
	MutualFunds   float64 `json:"mutualFunds"`
	RSU           float64 `json:"rsu"`
	ESOPs         float64 `json:"esops"`
	FixedDeposits float64 `json:"fd"`
	Other         float64 `json:"other"`
}

// Equity is the market-linked share: mutual funds plus employer stock
func (a Allocation) Equity() float64 {
	return a.MutualFunds + a.RSU + a.ESOPs
}

// Total sums every category; 100 for any computed allocation
func (a Allocation) Total() float64 {
	return a.Gold + a.RealEstate + a.MutualFunds + a.RSU + a.ESOPs + a.FixedDeposits + a.Other
}

// LoanSummary is one loan with its computed installment
type LoanSummary struct {
	Type         string  `json:"type"`
	Principal    float64 `json:"principal"`
	InterestRate float64 `json:"interestRate"`
	TenureMonths int     `json:"tenureMonths"`
	EMI          float64 `json:"emi"`
}

// Metrics are the dashboard figures derived from a profile
type Metrics struct {
	MonthlyIncome        float64       `json:"monthlyIncome"`
	AnnualIncome         float64       `json:"annualIncome"`
	Loans                []LoanSummary `json:"loans"`
	TotalEMI             float64       `json:"totalEmi"`
	TotalDebt            float64       `json:"totalDebt"`
	BaseExpenses         float64       `json:"baseExpenses"`
	TotalMonthlyExpenses float64       `json:"totalMonthlyExpenses"`
	RecurringInvestments float64       `json:"recurringInvestments"`
	MonthlySavings       float64       `json:"monthlySavings"`
	SavingsRate          float64       `json:"savingsRate"`
	TotalInvestments     float64       `json:"totalInvestments"`
	NetWorth             float64       `json:"netWorth"`
	DebtToIncomeRatio    float64       `json:"debtToIncomeRatio"`
	DebtToIncomeBand     string        `json:"debtToIncomeBand"`
}
