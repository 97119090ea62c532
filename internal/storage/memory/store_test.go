package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/jobtracker-be/internal/models"
	"github.com/hongminglow/jobtracker-be/internal/storage"
)

func newAccount(id, email string) models.AccountWithSecret {
	return models.AccountWithSecret{
		Account: models.Account{
			ID:        id,
			Email:     email,
			Name:      "Test",
			LastName:  models.DefaultLastName,
			Location:  models.DefaultLocation,
			CreatedAt: time.Now().UTC(),
		},
		PasswordHash: "hash-" + id,
	}
}

func TestAccounts(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_, err := s.CreateAccount(ctx, newAccount("1", "a@example.com"))
	require.NoError(t, err)

	_, err = s.CreateAccount(ctx, newAccount("2", "a@example.com"))
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)

	_, err = s.FindByEmail(ctx, "A@example.com")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	creds, err := s.FindCredentialsByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hash-1", creds.PasswordHash)

	_, err = s.CreateAccount(ctx, newAccount("2", "b@example.com"))
	require.NoError(t, err)

	_, err = s.UpdateProfile(ctx, models.Account{ID: "2", Email: "a@example.com", Name: "Bob"})
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)

	updated, err := s.UpdateProfile(ctx, models.Account{ID: "2", Email: "c@example.com", Name: "Bob", LastName: "Smith", Location: "Oslo"})
	require.NoError(t, err)
	assert.Equal(t, "Smith", updated.LastName)

	_, err = s.FindByEmail(ctx, "b@example.com")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	creds, err = s.FindCredentialsByEmail(ctx, "c@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hash-2", creds.PasswordHash)

	_, err = s.UpdateProfile(ctx, models.Account{ID: "missing", Email: "x@example.com"})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestJobs_CRUD(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	base := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		_, err := s.CreateJob(ctx, models.Job{
			ID:        fmt.Sprintf("job-%d", i),
			Position:  "Dev",
			Company:   "Acme",
			Status:    models.StatusPending,
			CreatedBy: "owner",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	list, err := s.ListJobsByOwner(ctx, "owner")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "job-2", list[0].ID)
	assert.Equal(t, "job-0", list[2].ID)

	updated, err := s.UpdateJob(ctx, models.Job{ID: "job-0", Position: "Lead", CreatedBy: "intruder"})
	require.NoError(t, err)
	assert.Equal(t, "owner", updated.CreatedBy)
	assert.True(t, base.Equal(updated.CreatedAt))

	require.NoError(t, s.DeleteJob(ctx, "job-0"))
	assert.ErrorIs(t, s.DeleteJob(ctx, "job-0"), storage.ErrNotFound)
	_, err = s.FindJob(ctx, "job-0")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCountByMonth_NewestFirst(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	months := []time.Time{
		time.Date(2023, time.December, 31, 23, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
	}
	for i, at := range months {
		_, err := s.CreateJob(ctx, models.Job{ID: fmt.Sprint(i), CreatedBy: "owner", CreatedAt: at})
		require.NoError(t, err)
	}
	_, err := s.CreateJob(ctx, models.Job{ID: "other", CreatedBy: "someone", CreatedAt: months[0]})
	require.NoError(t, err)

	got, err := s.CountByMonth(ctx, "owner", 2)
	require.NoError(t, err)
	assert.Equal(t, []models.MonthCount{
		{Year: 2024, Month: time.February, Count: 1},
		{Year: 2024, Month: time.January, Count: 2},
	}, got)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = s.CreateJob(ctx, models.Job{ID: fmt.Sprint(i), CreatedBy: "owner", Status: models.StatusPending, CreatedAt: time.Now()})
			_, _ = s.ListJobsByOwner(ctx, "owner")
			_, _ = s.CountByStatus(ctx, "owner")
		}(i)
	}
	wg.Wait()

	counts, err := s.CountByStatus(ctx, "owner")
	require.NoError(t, err)
	assert.Equal(t, 20, counts[models.StatusPending])
}
