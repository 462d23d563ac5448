package finance

import "github.com/Dan9191/finance-sage/internal/models"

// SummarizeLoan computes the installment for a single loan entry
func SummarizeLoan(loan models.Loan) models.LoanSummary {
	months := TenureMonths(loan.TenureValue.Float(), loan.TenureType)
	return models.LoanSummary{
		Type:         loan.Type,
		Principal:    loan.Principal.Float(),
		InterestRate: loan.InterestRate.Float(),
		TenureMonths: months,
		EMI:          EMI(loan.Principal.Float(), loan.InterestRate.Float(), months),
	}
}

// Summarize derives the dashboard metrics of a profile. All figures are
// monthly except AnnualIncome, TotalDebt, TotalInvestments and NetWorth.
func Summarize(p models.FinancialProfile) models.Metrics {
	m := models.Metrics{
		MonthlyIncome:    p.Income.Primary.Float() + p.Income.Other.Float(),
		BaseExpenses:     p.Expenses.Monthly.Float(),
		TotalInvestments: TotalInvestments(p.Investments),
		Loans:            make([]models.LoanSummary, 0, len(p.Debt.Loans)),
	}

	for _, loan := range p.Debt.Loans {
		ls := SummarizeLoan(loan)
		m.Loans = append(m.Loans, ls)
		m.TotalEMI += ls.EMI
		m.TotalDebt += ls.Principal
	}

	for _, c := range p.RecurringInvestments {
		m.RecurringInvestments += c.Amount.Float()
	}

	m.AnnualIncome = m.MonthlyIncome * 12
	m.TotalMonthlyExpenses = m.BaseExpenses + m.TotalEMI
	m.MonthlySavings = m.MonthlyIncome - m.TotalMonthlyExpenses
	if m.MonthlyIncome > 0 {
		m.SavingsRate = m.MonthlySavings / m.MonthlyIncome * 100
	}
	m.NetWorth = m.TotalInvestments - m.TotalDebt
	m.DebtToIncomeRatio = DTIRatio(m.AnnualIncome, m.TotalDebt)
	m.DebtToIncomeBand = string(BucketDTI(m.DebtToIncomeRatio))

	return m
}
