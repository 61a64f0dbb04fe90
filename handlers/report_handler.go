package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SUDD-dawg/Low-Risk/models"
	"github.com/SUDD-dawg/Low-Risk/repository"
	"github.com/SUDD-dawg/Low-Risk/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReportHandler exports the feedback dashboard as a PDF and stores it in R2.
type ReportHandler struct {
	Repo     repository.FeedbackRepository
	Uploader *utils.R2Uploader
	Log      *zap.Logger
	Tmpl     *Templates
}

func (h *ReportHandler) DashboardReport(w http.ResponseWriter, r *http.Request) {
	if h.Uploader == nil {
		writeJSON(w, http.StatusServiceUnavailable, ApiResponse{
			Success: false,
			Message: "report storage is not configured",
		})
		return
	}

	all, err := h.Repo.GetAll(r.Context())
	if err != nil {
		h.Log.Error("feedback listing failed", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	bodyHTML, err := h.Tmpl.Execute("report.html", models.ReportData{
		Dashboard:   buildDashboard(all),
		GeneratedAt: time.Now().UTC(),
	})
	if err != nil {
		h.Log.Error("report template failed", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pdfBytes, err := utils.GenerateReportPDF(bodyHTML)
	if err != nil {
		h.Log.Error("report PDF generation failed", zap.Error(err))
		http.Error(w, "failed to generate report", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("feedback_report_%s.pdf", uuid.NewString())
	fileURL, err := h.Uploader.Upload(r.Context(), pdfBytes, filename)
	if err != nil {
		h.Log.Error("report upload failed", zap.Error(err))
		http.Error(w, "failed to store report", http.StatusInternalServerError)
		return
	}

	h.Log.Info("feedback report exported", zap.String("url", fileURL), zap.Int("records", len(all)))
	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Report generated",
		Data:    map[string]string{"url": fileURL},
	})
}
