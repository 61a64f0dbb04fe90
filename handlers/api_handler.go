package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/SUDD-dawg/Low-Risk/finance"

	"go.uber.org/zap"
)

// APIHandler exposes the two calculators as JSON endpoints.
type APIHandler struct {
	Log *zap.Logger
}

type eligibilityRequest struct {
	Income   *float64 `json:"income"`
	Loan     *float64 `json:"loan"`
	Deposit  *float64 `json:"deposit"`
	Expenses *float64 `json:"expenses"`
}

type eligibilityResponse struct {
	Eligible         bool    `json:"eligible"`
	MaxLoan          float64 `json:"max_loan"`
	DisposableIncome float64 `json:"disposable_income"`
}

type riskRequest struct {
	Debt   *float64 `json:"debt"`
	Income *float64 `json:"income"`
}

type riskResponse struct {
	RiskLevel    string  `json:"risk_level"`
	DebtToIncome float64 `json:"debt_to_income"`
}

func (h *APIHandler) Eligibility(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, ApiResponse{Success: false, Message: "Invalid request method"})
		return
	}

	var req eligibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}

	if msg := firstMissing(map[string]*float64{
		"income": req.Income, "loan": req.Loan, "deposit": req.Deposit, "expenses": req.Expenses,
	}, "income", "loan", "deposit", "expenses"); msg != "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: msg})
		return
	}

	if err := finance.ValidateEligibilityInput(*req.Income, *req.Loan, *req.Deposit, *req.Expenses); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: err.Error()})
		return
	}

	result := finance.Eligibility(*req.Income, *req.Loan, *req.Deposit, *req.Expenses)
	writeJSON(w, http.StatusOK, eligibilityResponse{
		Eligible:         result.Eligible,
		MaxLoan:          result.MaxLoan,
		DisposableIncome: result.DisposableIncome,
	})
}

func (h *APIHandler) Risk(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, ApiResponse{Success: false, Message: "Invalid request method"})
		return
	}

	var req riskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}

	// An absent income is an error, not an assumed value.
	if msg := firstMissing(map[string]*float64{
		"debt": req.Debt, "income": req.Income,
	}, "debt", "income"); msg != "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: msg})
		return
	}

	if err := finance.ValidateRiskInput(*req.Debt, *req.Income); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: err.Error()})
		return
	}

	result := finance.Risk(*req.Debt, *req.Income)
	writeJSON(w, http.StatusOK, riskResponse{
		RiskLevel:    result.Level,
		DebtToIncome: result.DebtToIncome,
	})
}

func firstMissing(fields map[string]*float64, order ...string) string {
	for _, name := range order {
		if fields[name] == nil {
			return name + " is required"
		}
	}
	return ""
}
