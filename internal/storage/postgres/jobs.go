package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hongminglow/jobtracker-be/internal/models"
	"github.com/hongminglow/jobtracker-be/internal/storage"
)

const jobColumns = `id, position, company, status, job_type, job_location, created_by, created_at, updated_at`

func (s *Store) CreateJob(ctx context.Context, job models.Job) (models.Job, error) {
	const query = `
		INSERT INTO jobs (id, position, company, status, job_type, job_location, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + jobColumns
	row := s.pool.QueryRow(ctx, query,
		job.ID, job.Position, job.Company, string(job.Status), string(job.JobType), job.JobLocation,
		job.CreatedBy, job.CreatedAt, job.UpdatedAt)
	return scanJob(row)
}

func (s *Store) FindJob(ctx context.Context, id string) (models.Job, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	return scanJob(row)
}

// ListJobsByOwner returns the owner's jobs, newest first.
func (s *Store) ListJobsByOwner(ctx context.Context, ownerID string) ([]models.Job, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+jobColumns+`
		FROM jobs
		WHERE created_by = $1
		ORDER BY created_at DESC, id DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, job)
	}
	return out, rows.Err()
}

// UpdateJob rewrites the mutable columns; created_by and created_at are never touched.
func (s *Store) UpdateJob(ctx context.Context, job models.Job) (models.Job, error) {
	const query = `
		UPDATE jobs
		SET position = $2, company = $3, status = $4, job_type = $5, job_location = $6, updated_at = $7
		WHERE id = $1
		RETURNING ` + jobColumns
	row := s.pool.QueryRow(ctx, query,
		job.ID, job.Position, job.Company, string(job.Status), string(job.JobType), job.JobLocation, job.UpdatedAt)
	return scanJob(row)
}

func (s *Store) DeleteJob(ctx context.Context, id string) error {
	cmd, err := s.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) CountByStatus(ctx context.Context, ownerID string) (map[models.JobStatus]int, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT status, COUNT(*)
		FROM jobs
		WHERE created_by = $1
		GROUP BY status`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[models.JobStatus]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[models.JobStatus(status)] = n
	}
	return counts, rows.Err()
}

// CountByMonth groups by the UTC (year, month) of created_at, newest first.
func (s *Store) CountByMonth(ctx context.Context, ownerID string, limit int) ([]models.MonthCount, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT EXTRACT(YEAR FROM created_at AT TIME ZONE 'UTC')::int AS year,
			EXTRACT(MONTH FROM created_at AT TIME ZONE 'UTC')::int AS month,
			COUNT(*)
		FROM jobs
		WHERE created_by = $1
		GROUP BY year, month
		ORDER BY year DESC, month DESC
		LIMIT $2`, ownerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.MonthCount
	for rows.Next() {
		var year, month, n int
		if err := rows.Scan(&year, &month, &n); err != nil {
			return nil, err
		}
		out = append(out, models.MonthCount{Year: year, Month: time.Month(month), Count: n})
	}
	return out, rows.Err()
}

func scanJob(row pgx.Row) (models.Job, error) {
	var job models.Job
	var status, jobType string
	err := row.Scan(&job.ID, &job.Position, &job.Company, &status, &jobType, &job.JobLocation,
		&job.CreatedBy, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return models.Job{}, translate(err)
	}
	job.Status = models.JobStatus(status)
	job.JobType = models.JobType(jobType)
	job.CreatedAt = job.CreatedAt.UTC()
	job.UpdatedAt = job.UpdatedAt.UTC()
	return job, nil
}
