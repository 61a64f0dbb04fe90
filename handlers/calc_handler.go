package handlers

import (
	"errors"
	"net/http"

	"github.com/SUDD-dawg/Low-Risk/auth"
	"github.com/SUDD-dawg/Low-Risk/finance"

	"go.uber.org/zap"
)

// CalcHandler serves the landing page and the two calculator forms. The
// calculations themselves are pure; nothing here touches storage.
type CalcHandler struct {
	Log  *zap.Logger
	Tmpl *Templates
}

type homePage struct {
	Username string
}

type eligibilityPage struct {
	Username string
	Error    string
	Values   map[string]string
	Result   *finance.EligibilityResult
}

type riskPage struct {
	Username string
	Error    string
	Values   map[string]string
	Result   *finance.RiskResult
}

func (h *CalcHandler) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && r.URL.Path != "/home" {
		http.NotFound(w, r)
		return
	}
	h.Tmpl.Render(w, "home.html", homePage{Username: sessionUsername(r)})
}

func (h *CalcHandler) Eligibility(w http.ResponseWriter, r *http.Request) {
	page := eligibilityPage{Username: sessionUsername(r), Values: map[string]string{}}
	if r.Method == http.MethodGet {
		h.Tmpl.Render(w, "eligibility.html", page)
		return
	}

	fields := []string{"income", "loan", "deposit", "expenses"}
	amounts := make(map[string]float64, len(fields))
	for _, f := range fields {
		page.Values[f] = r.FormValue(f)
	}

	for _, f := range fields {
		v, err := finance.ParseAmount(f, r.FormValue(f))
		if err != nil {
			applyFormError(&page.Error, page.Values, err)
			h.Tmpl.Render(w, "eligibility.html", page)
			return
		}
		amounts[f] = v
	}

	if err := finance.ValidateEligibilityInput(amounts["income"], amounts["loan"], amounts["deposit"], amounts["expenses"]); err != nil {
		applyFormError(&page.Error, page.Values, err)
		h.Tmpl.Render(w, "eligibility.html", page)
		return
	}

	result := finance.Eligibility(amounts["income"], amounts["loan"], amounts["deposit"], amounts["expenses"])
	page.Result = &result
	h.Tmpl.Render(w, "eligibility.html", page)
}

func (h *CalcHandler) Risk(w http.ResponseWriter, r *http.Request) {
	page := riskPage{Username: sessionUsername(r), Values: map[string]string{}}
	if r.Method == http.MethodGet {
		h.Tmpl.Render(w, "risk.html", page)
		return
	}

	page.Values["debt"] = r.FormValue("debt")
	page.Values["income"] = r.FormValue("income")

	debt, err := finance.ParseAmount("debt", r.FormValue("debt"))
	if err == nil {
		var income float64
		income, err = finance.ParseAmount("income", r.FormValue("income"))
		if err == nil {
			err = finance.ValidateRiskInput(debt, income)
			if err == nil {
				result := finance.Risk(debt, income)
				page.Result = &result
				h.Tmpl.Render(w, "risk.html", page)
				return
			}
		}
	}

	applyFormError(&page.Error, page.Values, err)
	h.Tmpl.Render(w, "risk.html", page)
}

// applyFormError fills the page error message and clears the offending
// value while leaving the others for correction.
func applyFormError(msg *string, values map[string]string, err error) {
	*msg = err.Error()
	if field := errorField(err); field != "" {
		values[field] = ""
	}
}

func errorField(err error) string {
	var pe *finance.ParseError
	if errors.As(err, &pe) {
		return pe.Field
	}
	var ve *finance.ValidationError
	if errors.As(err, &ve) {
		return ve.Field
	}
	return ""
}

func sessionUsername(r *http.Request) string {
	if claims := auth.FromContext(r.Context()); claims != nil {
		return claims.Username
	}
	return ""
}
