// Package memory provides map-backed stores for development and tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hongminglow/jobtracker-be/internal/models"
	"github.com/hongminglow/jobtracker-be/internal/storage"
)

var (
	_ storage.AccountStore = (*Store)(nil)
	_ storage.JobStore     = (*Store)(nil)
)

// Store keeps accounts and jobs in memory.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]models.AccountWithSecret
	emails   map[string]string
	jobs     map[string]models.Job
}

func NewStore() *Store {
	return &Store{
		accounts: make(map[string]models.AccountWithSecret),
		emails:   make(map[string]string),
		jobs:     make(map[string]models.Job),
	}
}

func (s *Store) CreateAccount(_ context.Context, account models.AccountWithSecret) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.emails[account.Email]; taken {
		return models.Account{}, storage.ErrAlreadyExists
	}
	if _, taken := s.accounts[account.ID]; taken {
		return models.Account{}, storage.ErrAlreadyExists
	}
	s.accounts[account.ID] = account
	s.emails[account.Email] = account.ID
	return account.Account, nil
}

func (s *Store) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	acc, err := s.FindCredentialsByEmail(ctx, email)
	return acc.Account, err
}

func (s *Store) FindCredentialsByEmail(_ context.Context, email string) (models.AccountWithSecret, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.emails[email]
	if !ok {
		return models.AccountWithSecret{}, storage.ErrNotFound
	}
	return s.accounts[id], nil
}

func (s *Store) FindByID(_ context.Context, id string) (models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[id]
	if !ok {
		return models.Account{}, storage.ErrNotFound
	}
	return acc.Account, nil
}

// UpdateProfile replaces the profile fields; the hash and CreatedAt are kept.
func (s *Store) UpdateProfile(_ context.Context, account models.Account) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.accounts[account.ID]
	if !ok {
		return models.Account{}, storage.ErrNotFound
	}
	if owner, taken := s.emails[account.Email]; taken && owner != account.ID {
		return models.Account{}, storage.ErrAlreadyExists
	}
	delete(s.emails, current.Email)
	s.emails[account.Email] = account.ID

	current.Email = account.Email
	current.Name = account.Name
	current.LastName = account.LastName
	current.Location = account.Location
	s.accounts[account.ID] = current
	return current.Account, nil
}

func (s *Store) CreateJob(_ context.Context, job models.Job) (models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.jobs[job.ID]; taken {
		return models.Job{}, storage.ErrAlreadyExists
	}
	s.jobs[job.ID] = job
	return job, nil
}

func (s *Store) FindJob(_ context.Context, id string) (models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return models.Job{}, storage.ErrNotFound
	}
	return job, nil
}

func (s *Store) ListJobsByOwner(_ context.Context, ownerID string) ([]models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Job, 0)
	for _, job := range s.jobs {
		if job.CreatedBy == ownerID {
			out = append(out, job)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// UpdateJob never changes CreatedBy or CreatedAt.
func (s *Store) UpdateJob(_ context.Context, job models.Job) (models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.jobs[job.ID]
	if !ok {
		return models.Job{}, storage.ErrNotFound
	}
	job.CreatedBy = current.CreatedBy
	job.CreatedAt = current.CreatedAt
	s.jobs[job.ID] = job
	return job, nil
}

func (s *Store) DeleteJob(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.jobs, id)
	return nil
}

func (s *Store) CountByStatus(_ context.Context, ownerID string) (map[models.JobStatus]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[models.JobStatus]int)
	for _, job := range s.jobs {
		if job.CreatedBy == ownerID {
			counts[job.Status]++
		}
	}
	return counts, nil
}

func (s *Store) CountByMonth(_ context.Context, ownerID string, limit int) ([]models.MonthCount, error) {
	s.mu.RLock()
	type bucket struct {
		year  int
		month int
	}
	counts := make(map[bucket]int)
	for _, job := range s.jobs {
		if job.CreatedBy != ownerID {
			continue
		}
		created := job.CreatedAt.UTC()
		counts[bucket{created.Year(), int(created.Month())}]++
	}
	s.mu.RUnlock()

	out := make([]models.MonthCount, 0, len(counts))
	for b, n := range counts {
		out = append(out, models.MonthCount{Year: b.year, Month: time.Month(b.month), Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].Month > out[j].Month
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
