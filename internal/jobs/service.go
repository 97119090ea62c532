// Package jobs implements owner-scoped CRUD and statistics for job records.
package jobs

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/hongminglow/jobtracker-be/internal/apperr"
	"github.com/hongminglow/jobtracker-be/internal/auth"
	"github.com/hongminglow/jobtracker-be/internal/models"
	"github.com/hongminglow/jobtracker-be/internal/storage"
)

const (
	maxPositionLen = 100
	maxCompanyLen  = 50

	// MonthlyBuckets is how many (year, month) buckets Stats reports.
	MonthlyBuckets = 6
	monthLabel     = "Jan 2006"
)

type CreateInput struct {
	Position    string
	Company     string
	Status      string
	JobType     string
	JobLocation string
}

// UpdateInput requires Position and Company; nil fields keep their stored values.
type UpdateInput struct {
	Position    string
	Company     string
	Status      *string
	JobType     *string
	JobLocation *string
}

// MonthlyCount is one labelled bucket of the monthly series.
type MonthlyCount struct {
	Date  string
	Year  int
	Month time.Month
	Count int
}

// Stats aggregates one owner's jobs. ByStatus has an entry for every status.
type Stats struct {
	ByStatus map[models.JobStatus]int
	Monthly  []MonthlyCount
}

type Service struct {
	store storage.JobStore
	now   func() time.Time
}

func NewService(store storage.JobStore) *Service {
	return &Service{store: store, now: time.Now}
}

// Create stores a new job owned by the caller. CreatedBy always comes from owner.
func (s *Service) Create(ctx context.Context, owner auth.Identity, in CreateInput) (models.Job, error) {
	if err := requireIdentity(owner); err != nil {
		return models.Job{}, err
	}
	in.Position = strings.TrimSpace(in.Position)
	in.Company = strings.TrimSpace(in.Company)
	if in.Position == "" || in.Company == "" {
		return models.Job{}, apperr.New(apperr.Validation, "Please provide all values")
	}

	now := s.now().UTC()
	job := models.Job{
		ID:          uuid.NewString(),
		Position:    in.Position,
		Company:     in.Company,
		Status:      models.StatusPending,
		JobType:     models.JobTypeFullTime,
		JobLocation: models.DefaultJobLocation,
		CreatedBy:   owner.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	var msgs []string
	msgs = append(msgs, validateText(job.Position, job.Company)...)
	if in.Status != "" {
		job.Status = models.JobStatus(in.Status)
		msgs = append(msgs, validateStatus(job.Status)...)
	}
	if in.JobType != "" {
		job.JobType = models.JobType(in.JobType)
		msgs = append(msgs, validateJobType(job.JobType)...)
	}
	if loc := strings.TrimSpace(in.JobLocation); loc != "" {
		job.JobLocation = loc
	}
	if err := apperr.Validationf(msgs); err != nil {
		return models.Job{}, err
	}

	created, err := s.store.CreateJob(ctx, job)
	if err != nil {
		return models.Job{}, apperr.Wrap(apperr.Internal, "create job", err)
	}
	return created, nil
}

// ListByOwner returns only jobs created by owner, newest first.
func (s *Service) ListByOwner(ctx context.Context, owner auth.Identity) ([]models.Job, error) {
	if err := requireIdentity(owner); err != nil {
		return nil, err
	}
	jobs, err := s.store.ListJobsByOwner(ctx, owner.UserID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "list jobs", err)
	}
	return jobs, nil
}

// Update applies in to the job after the ownership check. A non-owner gets
// Unauthorized before the input is even validated.
func (s *Service) Update(ctx context.Context, owner auth.Identity, jobID string, in UpdateInput) (models.Job, error) {
	job, err := s.ownedJob(ctx, owner, jobID)
	if err != nil {
		return models.Job{}, err
	}

	in.Position = strings.TrimSpace(in.Position)
	in.Company = strings.TrimSpace(in.Company)
	if in.Position == "" || in.Company == "" {
		return models.Job{}, apperr.New(apperr.Validation, "Please provide all values")
	}
	job.Position = in.Position
	job.Company = in.Company

	msgs := validateText(job.Position, job.Company)
	if in.Status != nil {
		job.Status = models.JobStatus(*in.Status)
		msgs = append(msgs, validateStatus(job.Status)...)
	}
	if in.JobType != nil {
		job.JobType = models.JobType(*in.JobType)
		msgs = append(msgs, validateJobType(job.JobType)...)
	}
	if in.JobLocation != nil {
		if loc := strings.TrimSpace(*in.JobLocation); loc != "" {
			job.JobLocation = loc
		} else {
			msgs = append(msgs, "Please provide job location")
		}
	}
	if err := apperr.Validationf(msgs); err != nil {
		return models.Job{}, err
	}
	job.UpdatedAt = s.now().UTC()

	updated, err := s.store.UpdateJob(ctx, job)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Job{}, notFound(jobID)
		}
		return models.Job{}, apperr.Wrap(apperr.Internal, "update job", err)
	}
	return updated, nil
}

// Delete removes the job after the ownership check.
func (s *Service) Delete(ctx context.Context, owner auth.Identity, jobID string) error {
	if _, err := s.ownedJob(ctx, owner, jobID); err != nil {
		return err
	}
	if err := s.store.DeleteJob(ctx, jobID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return notFound(jobID)
		}
		return apperr.Wrap(apperr.Internal, "delete job", err)
	}
	return nil
}

// Stats counts the owner's jobs per status and per creation month. The
// monthly series holds the newest MonthlyBuckets months, oldest first.
func (s *Service) Stats(ctx context.Context, owner auth.Identity) (Stats, error) {
	if err := requireIdentity(owner); err != nil {
		return Stats{}, err
	}

	counts, err := s.store.CountByStatus(ctx, owner.UserID)
	if err != nil {
		return Stats{}, apperr.Wrap(apperr.Internal, "count jobs by status", err)
	}
	byStatus := make(map[models.JobStatus]int, len(models.JobStatuses))
	for _, st := range models.JobStatuses {
		byStatus[st] = counts[st]
	}

	buckets, err := s.store.CountByMonth(ctx, owner.UserID, MonthlyBuckets)
	if err != nil {
		return Stats{}, apperr.Wrap(apperr.Internal, "count jobs by month", err)
	}
	if len(buckets) > MonthlyBuckets {
		buckets = buckets[:MonthlyBuckets]
	}
	monthly := make([]MonthlyCount, 0, len(buckets))
	for i := len(buckets) - 1; i >= 0; i-- {
		b := buckets[i]
		monthly = append(monthly, MonthlyCount{
			Date:  time.Date(b.Year, b.Month, 1, 0, 0, 0, 0, time.UTC).Format(monthLabel),
			Year:  b.Year,
			Month: b.Month,
			Count: b.Count,
		})
	}
	return Stats{ByStatus: byStatus, Monthly: monthly}, nil
}

func (s *Service) ownedJob(ctx context.Context, owner auth.Identity, jobID string) (models.Job, error) {
	if err := requireIdentity(owner); err != nil {
		return models.Job{}, err
	}
	if _, err := uuid.Parse(jobID); err != nil {
		return models.Job{}, notFound(jobID)
	}
	job, err := s.store.FindJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Job{}, notFound(jobID)
		}
		return models.Job{}, apperr.Wrap(apperr.Internal, "find job", err)
	}
	if err := auth.CheckOwner(owner, job.CreatedBy); err != nil {
		return models.Job{}, err
	}
	return job, nil
}

func requireIdentity(id auth.Identity) error {
	if id.UserID == "" {
		return apperr.New(apperr.Unauthenticated, "Authentication invalid")
	}
	return nil
}

func notFound(jobID string) error {
	return apperr.New(apperr.NotFound, "No job with id: "+jobID)
}

func validateText(position, company string) []string {
	var msgs []string
	if utf8.RuneCountInString(position) > maxPositionLen {
		msgs = append(msgs, "Position must be at most 100 characters")
	}
	if utf8.RuneCountInString(company) > maxCompanyLen {
		msgs = append(msgs, "Company must be at most 50 characters")
	}
	return msgs
}

func validateStatus(st models.JobStatus) []string {
	if !st.Valid() {
		return []string{"Status must be one of pending, interview, declined"}
	}
	return nil
}

func validateJobType(jt models.JobType) []string {
	if !jt.Valid() {
		return []string{"Job type must be one of full-time, part-time, remote, internship"}
	}
	return nil
}
