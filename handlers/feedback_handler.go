package handlers

import (
	"net/http"
	"strings"

	"github.com/SUDD-dawg/Low-Risk/classifier"
	"github.com/SUDD-dawg/Low-Risk/models"
	"github.com/SUDD-dawg/Low-Risk/repository"

	"go.uber.org/zap"
)

type FeedbackHandler struct {
	Repo       repository.FeedbackRepository
	Classifier classifier.Classifier
	Log        *zap.Logger
	Tmpl       *Templates
}

type feedbackPage struct {
	Username         string
	Error            string
	Submitted        bool
	Values           map[string]string
	ExperienceLevels []string
	HelpfulLevels    []string
}

type dashboardPage struct {
	Username  string
	Dashboard *models.Dashboard
}

func newFeedbackPage(username string) feedbackPage {
	return feedbackPage{
		Username: username,
		Values:   map[string]string{},
		ExperienceLevels: []string{
			models.ExperienceExcellent, models.ExperienceGood,
			models.ExperienceAverage, models.ExperiencePoor,
		},
		HelpfulLevels: []string{
			models.HelpfulVery, models.HelpfulGood,
			models.HelpfulAverage, models.HelpfulPoor,
		},
	}
}

// Feedback serves the feedback form. A POST persists the record and then
// runs the categorization step, which stamps category, confidence and the
// processed flag in a single update.
func (h *FeedbackHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	page := newFeedbackPage(sessionUsername(r))
	if r.Method == http.MethodGet {
		h.Tmpl.Render(w, "feedback.html", page)
		return
	}

	overallExp := r.FormValue("overall_exp")
	helpfulRating := r.FormValue("helpful_rating")
	suggestions := strings.TrimSpace(r.FormValue("suggestions"))

	page.Values["overall_exp"] = overallExp
	page.Values["helpful_rating"] = helpfulRating
	page.Values["suggestions"] = suggestions

	switch {
	case !models.ValidExperience(overallExp):
		page.Error = "overall experience rating is invalid"
	case !models.ValidHelpfulRating(helpfulRating):
		page.Error = "helpfulness rating is invalid"
	case suggestions == "":
		page.Error = "suggestions are required"
	}
	if page.Error != "" {
		h.Tmpl.Render(w, "feedback.html", page)
		return
	}

	fb := &models.Feedback{
		OverallExperience: overallExp,
		HelpfulRating:     helpfulRating,
		Suggestions:       suggestions,
	}
	if err := h.Repo.Create(r.Context(), fb); err != nil {
		h.Log.Error("feedback creation failed", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	category, confidence := h.Classifier.Classify(fb.OverallExperience, fb.HelpfulRating)
	if err := h.Repo.UpdateCategory(r.Context(), fb.ID, category, confidence); err != nil {
		h.Log.Error("feedback categorization failed", zap.Int64("id", fb.ID), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.Log.Info("feedback recorded",
		zap.Int64("id", fb.ID),
		zap.String("category", category),
		zap.Float64("confidence", confidence),
	)

	page.Submitted = true
	h.Tmpl.Render(w, "feedback.html", page)
}

// Dashboard lists all feedback split into good and constructive buckets.
// Records that missed the categorization step are classified on the way in.
func (h *FeedbackHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if err := h.classifyPending(r); err != nil {
		h.Log.Error("pending feedback classification failed", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	all, err := h.Repo.GetAll(r.Context())
	if err != nil {
		h.Log.Error("feedback listing failed", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.Tmpl.Render(w, "dashboard.html", dashboardPage{
		Username:  sessionUsername(r),
		Dashboard: buildDashboard(all),
	})
}

func (h *FeedbackHandler) classifyPending(r *http.Request) error {
	pending, err := h.Repo.GetUnprocessed(r.Context())
	if err != nil {
		return err
	}
	for _, fb := range pending {
		category, confidence := h.Classifier.Classify(fb.OverallExperience, fb.HelpfulRating)
		if err := h.Repo.UpdateCategory(r.Context(), fb.ID, category, confidence); err != nil {
			return err
		}
	}
	return nil
}

func buildDashboard(all []*models.Feedback) *models.Dashboard {
	d := &models.Dashboard{Total: len(all)}
	for _, fb := range all {
		if fb.Category != nil && *fb.Category == classifier.CategoryGood {
			d.Good = append(d.Good, fb)
		} else {
			d.Constructive = append(d.Constructive, fb)
		}
	}
	return d
}
