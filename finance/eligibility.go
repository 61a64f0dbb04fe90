// Package finance holds the loan eligibility and debt risk rules. All
// functions are pure and safe to call from any number of handlers.
package finance

import "math"

// Accepted input ranges, checked before any computation.
const (
	IncomeMax   = 1_000_000
	LoanMax     = 5_000_000
	DepositMax  = 1_000_000
	ExpensesMax = 50_000
)

const (
	repaymentShare  = 0.3 // share of disposable income that may service a loan
	horizonYears    = 5
	minDepositShare = 0.1
)

type EligibilityResult struct {
	Eligible         bool
	MaxLoan          float64
	DisposableIncome float64
}

// ValidateEligibilityInput checks the four amounts against their accepted
// ranges. It returns a *ValidationError naming the first offending field.
func ValidateEligibilityInput(income, loan, deposit, expenses float64) error {
	if income < 0 || income > IncomeMax {
		return rangeError("income", 0, IncomeMax)
	}
	if loan < 0 || loan > LoanMax {
		return rangeError("loan", 0, LoanMax)
	}
	if deposit < 0 || deposit > DepositMax {
		return rangeError("deposit", 0, DepositMax)
	}
	if expenses < 0 || expenses > ExpensesMax {
		return rangeError("expenses", 0, ExpensesMax)
	}
	return nil
}

// Eligibility applies the lending rule: 30% of monthly disposable income,
// annualized over a 5 year horizon, with a 10% deposit requirement.
// Disposable income is floored at zero, so callers with expenses above
// income are never eligible for a positive loan.
func Eligibility(income, loan, deposit, expenses float64) EligibilityResult {
	disposable := income - expenses
	if disposable < 0 {
		disposable = 0
	}

	maxLoan := disposable * repaymentShare * 12 * horizonYears
	eligible := loan <= maxLoan && deposit >= minDepositShare*loan && disposable > 0

	return EligibilityResult{
		Eligible:         eligible,
		MaxLoan:          round2(maxLoan),
		DisposableIncome: round2(disposable),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
