package repository

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/SUDD-dawg/Low-Risk/models"

	"golang.org/x/crypto/bcrypt"
)

// MemoryUserRepo is an in-memory UserRepository used by tests and local
// development runs without a database.
type MemoryUserRepo struct {
	mu    sync.RWMutex
	users map[int64]*models.User
	next  int64
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: make(map[int64]*models.User)}
}

func (r *MemoryUserRepo) Create(ctx context.Context, user *models.User, password string) error {
	if password == "" {
		return errors.New("password cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return ErrDuplicateUsername
		}
		if u.Email == user.Email {
			return ErrDuplicateEmail
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hashed)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	r.next++
	user.ID = r.next

	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *MemoryUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			found := *u
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

// MemoryFeedbackRepo is an in-memory FeedbackRepository.
type MemoryFeedbackRepo struct {
	mu      sync.RWMutex
	records map[int64]*models.Feedback
	next    int64
}

func NewMemoryFeedbackRepo() *MemoryFeedbackRepo {
	return &MemoryFeedbackRepo{records: make(map[int64]*models.Feedback)}
}

func (r *MemoryFeedbackRepo) Create(ctx context.Context, fb *models.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if fb.CreatedAt.IsZero() {
		fb.CreatedAt = time.Now().UTC()
	}

	r.next++
	fb.ID = r.next

	stored := *fb
	r.records[fb.ID] = &stored
	return nil
}

func (r *MemoryFeedbackRepo) GetByID(ctx context.Context, id int64) (*models.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fb, ok := r.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	found := *fb
	return &found, nil
}

func (r *MemoryFeedbackRepo) UpdateCategory(ctx context.Context, id int64, category string, confidence float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	fb, ok := r.records[id]
	if !ok {
		return ErrNotFound
	}
	fb.Category = &category
	fb.Confidence = &confidence
	fb.Processed = true
	return nil
}

func (r *MemoryFeedbackRepo) GetAll(ctx context.Context) ([]*models.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(*models.Feedback) bool { return true }), nil
}

func (r *MemoryFeedbackRepo) GetUnprocessed(ctx context.Context) ([]*models.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(fb *models.Feedback) bool { return !fb.Processed }), nil
}

func (r *MemoryFeedbackRepo) collect(keep func(*models.Feedback) bool) []*models.Feedback {
	var result []*models.Feedback
	for _, fb := range r.records {
		if keep(fb) {
			found := *fb
			result = append(result, &found)
		}
	}
	// newest first, id as tiebreaker
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}
