package finance

// Risk levels by debt-to-income ratio. Boundary values belong to the higher
// band: exactly 20 is Medium, exactly 40 is High.
const (
	RiskLow    = "Low Risk"
	RiskMedium = "Medium Risk"
	RiskHigh   = "High Risk"

	mediumRiskFloor = 20
	highRiskFloor   = 40
)

type RiskResult struct {
	Level        string
	DebtToIncome float64
}

// ValidateRiskInput checks the risk inputs. Income must be reported
// explicitly; an absent value is rejected upstream rather than defaulted.
func ValidateRiskInput(debt, income float64) error {
	if debt < 0 || debt > LoanMax {
		return rangeError("debt", 0, LoanMax)
	}
	if income < 0 || income > IncomeMax {
		return rangeError("income", 0, IncomeMax)
	}
	return nil
}

// Risk buckets the debt-to-income ratio into a risk level. A zero income
// yields a zero ratio rather than a division by zero.
func Risk(debt, income float64) RiskResult {
	ratio := 0.0
	if income > 0 {
		ratio = debt / income * 100
	}

	level := RiskHigh
	switch {
	case ratio < mediumRiskFloor:
		level = RiskLow
	case ratio < highRiskFloor:
		level = RiskMedium
	}

	return RiskResult{Level: level, DebtToIncome: round2(ratio)}
}
