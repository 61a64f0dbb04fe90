package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAPIEligibility_Scenario(t *testing.T) {
	t.Parallel()

	h := &APIHandler{Log: zap.NewNop()}
	rec := postJSON(t, h.Eligibility, `{"income":5000,"loan":50000,"deposit":6000,"expenses":1000}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Eligible         bool    `json:"eligible"`
		MaxLoan          float64 `json:"max_loan"`
		DisposableIncome float64 `json:"disposable_income"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Eligible)
	assert.Equal(t, 72000.0, resp.MaxLoan)
	assert.Equal(t, 4000.0, resp.DisposableIncome)
}

func TestAPIEligibility_MissingField(t *testing.T) {
	t.Parallel()

	h := &APIHandler{Log: zap.NewNop()}
	rec := postJSON(t, h.Eligibility, `{"loan":50000,"deposit":6000,"expenses":1000}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ApiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "income is required")
}

func TestAPIEligibility_OutOfRange(t *testing.T) {
	t.Parallel()

	h := &APIHandler{Log: zap.NewNop()}
	rec := postJSON(t, h.Eligibility, `{"income":2000000,"loan":0,"deposit":0,"expenses":0}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ApiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "income")
}

func TestAPIRisk_Scenario(t *testing.T) {
	t.Parallel()

	h := &APIHandler{Log: zap.NewNop()}
	rec := postJSON(t, h.Risk, `{"debt":1000,"income":2000}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		RiskLevel    string  `json:"risk_level"`
		DebtToIncome float64 `json:"debt_to_income"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "High Risk", resp.RiskLevel)
	assert.Equal(t, 50.0, resp.DebtToIncome)
}

func TestAPIRisk_Boundary(t *testing.T) {
	t.Parallel()

	h := &APIHandler{Log: zap.NewNop()}
	rec := postJSON(t, h.Risk, `{"debt":20,"income":100}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		RiskLevel    string  `json:"risk_level"`
		DebtToIncome float64 `json:"debt_to_income"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Medium Risk", resp.RiskLevel)
	assert.Equal(t, 20.0, resp.DebtToIncome)
}

func TestAPIRisk_MissingIncome(t *testing.T) {
	t.Parallel()

	h := &APIHandler{Log: zap.NewNop()}
	rec := postJSON(t, h.Risk, `{"debt":1000}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ApiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "income is required")
}

func TestAPIRisk_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	h := &APIHandler{Log: zap.NewNop()}
	req := httptest.NewRequest(http.MethodGet, "/api/risk", nil)
	rec := httptest.NewRecorder()
	h.Risk(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
