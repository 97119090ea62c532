package storage

import (
	"context"
	"errors"

	"github.com/hongminglow/jobtracker-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// AccountStore persists accounts. Only FindCredentialsByEmail returns the hash.
type AccountStore interface {
	CreateAccount(ctx context.Context, account models.AccountWithSecret) (models.Account, error)
	FindByEmail(ctx context.Context, email string) (models.Account, error)
	FindCredentialsByEmail(ctx context.Context, email string) (models.AccountWithSecret, error)
	FindByID(ctx context.Context, id string) (models.Account, error)
	UpdateProfile(ctx context.Context, account models.Account) (models.Account, error)
}

// JobStore persists job records. Listing and aggregation are scoped by owner.
type JobStore interface {
	CreateJob(ctx context.Context, job models.Job) (models.Job, error)
	FindJob(ctx context.Context, id string) (models.Job, error)
	ListJobsByOwner(ctx context.Context, ownerID string) ([]models.Job, error)
	UpdateJob(ctx context.Context, job models.Job) (models.Job, error)
	DeleteJob(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, ownerID string) (map[models.JobStatus]int, error)
	// CountByMonth returns at most limit buckets, newest first.
	CountByMonth(ctx context.Context, ownerID string, limit int) ([]models.MonthCount, error)
}
