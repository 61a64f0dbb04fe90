package repository

import (
	"context"

	"github.com/SUDD-dawg/Low-Risk/models"
)

// FeedbackRepository persists feedback records. Create inserts with
// category, confidence and processed unset; UpdateCategory sets all three
// together and returns ErrNotFound for an unknown id.
type FeedbackRepository interface {
	Create(ctx context.Context, fb *models.Feedback) error
	GetByID(ctx context.Context, id int64) (*models.Feedback, error)
	UpdateCategory(ctx context.Context, id int64, category string, confidence float64) error
	GetAll(ctx context.Context) ([]*models.Feedback, error)
	GetUnprocessed(ctx context.Context) ([]*models.Feedback, error)
}
