package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SUDD-dawg/Low-Risk/models"
)

type PostgresFeedbackRepo struct {
	DB *sql.DB
}

func NewPostgresFeedbackRepo(db *sql.DB) *PostgresFeedbackRepo {
	return &PostgresFeedbackRepo{DB: db}
}

// Create inserts a new feedback record with category, confidence and
// processed left at their defaults.
func (r *PostgresFeedbackRepo) Create(ctx context.Context, fb *models.Feedback) error {
	if fb.CreatedAt.IsZero() {
		fb.CreatedAt = time.Now().UTC()
	}

	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO feedback (overall_experience, helpful_rating, suggestions, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, fb.OverallExperience, fb.HelpfulRating, fb.Suggestions, fb.CreatedAt).Scan(&fb.ID)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresFeedbackRepo) GetByID(ctx context.Context, id int64) (*models.Feedback, error) {
	fb := &models.Feedback{}
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, overall_experience, helpful_rating, suggestions, category, confidence, processed, created_at
		FROM feedback
		WHERE id=$1
	`, id).Scan(&fb.ID, &fb.OverallExperience, &fb.HelpfulRating, &fb.Suggestions,
		&fb.Category, &fb.Confidence, &fb.Processed, &fb.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return fb, nil
}

// UpdateCategory sets category, confidence and the processed flag in one
// statement.
func (r *PostgresFeedbackRepo) UpdateCategory(ctx context.Context, id int64, category string, confidence float64) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE feedback
		SET category=$2, confidence=$3, processed=TRUE
		WHERE id=$1
	`, id, category, confidence)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetAll returns every feedback record, newest first.
func (r *PostgresFeedbackRepo) GetAll(ctx context.Context) ([]*models.Feedback, error) {
	return r.list(ctx, `
		SELECT id, overall_experience, helpful_rating, suggestions, category, confidence, processed, created_at
		FROM feedback
		ORDER BY created_at DESC, id DESC
	`)
}

func (r *PostgresFeedbackRepo) GetUnprocessed(ctx context.Context) ([]*models.Feedback, error) {
	return r.list(ctx, `
		SELECT id, overall_experience, helpful_rating, suggestions, category, confidence, processed, created_at
		FROM feedback
		WHERE processed=FALSE
		ORDER BY created_at DESC, id DESC
	`)
}

func (r *PostgresFeedbackRepo) list(ctx context.Context, query string) ([]*models.Feedback, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Feedback
	for rows.Next() {
		fb := &models.Feedback{}
		if err := rows.Scan(&fb.ID, &fb.OverallExperience, &fb.HelpfulRating, &fb.Suggestions,
			&fb.Category, &fb.Confidence, &fb.Processed, &fb.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, fb)
	}
	return result, rows.Err()
}
