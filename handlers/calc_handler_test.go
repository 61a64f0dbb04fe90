package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

func newCalcHandler(t *testing.T) *CalcHandler {
	t.Helper()
	tmpl, err := NewTemplates(zap.NewNop())
	require.NoError(t, err)
	return &CalcHandler{Log: zap.NewNop(), Tmpl: tmpl}
}

func TestEligibilityForm_RendersResult(t *testing.T) {
	t.Parallel()

	h := newCalcHandler(t)
	rec := postForm(h.Eligibility, "/eligibility", url.Values{
		"income":   {"5000"},
		"loan":     {"50000"},
		"deposit":  {"6000"},
		"expenses": {"1000"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "You are eligible")
	assert.Contains(t, body, "72000")
	assert.Contains(t, body, "4000")
}

func TestEligibilityForm_ParseErrorClearsOffendingValue(t *testing.T) {
	t.Parallel()

	h := newCalcHandler(t)
	rec := postForm(h.Eligibility, "/eligibility", url.Values{
		"income":   {"abc"},
		"loan":     {"50000"},
		"deposit":  {"6000"},
		"expenses": {"1000"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "income must be a number")
	// offending value cleared, the rest retained for correction
	assert.NotContains(t, body, `value="abc"`)
	assert.Contains(t, body, `value="50000"`)
	assert.Contains(t, body, `value="6000"`)
}

func TestEligibilityForm_RangeError(t *testing.T) {
	t.Parallel()

	h := newCalcHandler(t)
	rec := postForm(h.Eligibility, "/eligibility", url.Values{
		"income":   {"2000000"},
		"loan":     {"50000"},
		"deposit":  {"6000"},
		"expenses": {"1000"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "income must be between 0 and 1000000")
}

func TestRiskForm_RendersResult(t *testing.T) {
	t.Parallel()

	h := newCalcHandler(t)
	rec := postForm(h.Risk, "/risk", url.Values{
		"debt":   {"1000"},
		"income": {"2000"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "High Risk")
	assert.Contains(t, body, "50")
}

func TestRiskForm_MissingIncome(t *testing.T) {
	t.Parallel()

	h := newCalcHandler(t)
	rec := postForm(h.Risk, "/risk", url.Values{
		"debt": {"1000"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "income is required")
}

func TestHome_UnknownPathIs404(t *testing.T) {
	t.Parallel()

	h := newCalcHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	h.Home(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
