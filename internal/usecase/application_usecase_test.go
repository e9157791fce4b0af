package usecase_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"net/http"
	"sync"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/repository/memory"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type seededRepos struct {
	users    domain.UserRepository
	jobs     domain.JobRepository
	apps     domain.ApplicationRepository
	profiles domain.ProfileRepository
}

func newSeededRepos(t *testing.T) seededRepos {
	t.Helper()
	seed, err := memory.DefaultSeed()
	require.NoError(t, err)
	store := memory.NewStore(seed)
	return seededRepos{
		users:    memory.NewUserRepository(store),
		jobs:     memory.NewJobRepository(store),
		apps:     memory.NewApplicationRepository(store),
		profiles: memory.NewProfileRepository(store),
	}
}

func strPtr(s string) *string { return &s }

func TestApply(t *testing.T) {
	ctx := context.Background()
	r := newSeededRepos(t)
	uc := usecase.NewApplicationUsecase(r.apps, r.jobs, r.users)

	t.Run("Should create an applied record with the default resume", func(t *testing.T) {
		app, err := uc.Apply(ctx, "job3", "user1", strPtr("Keen on data work"), nil)
		require.NoError(t, err)
		assert.Equal(t, "app3", app.ID)
		assert.Equal(t, domain.ApplicationStatusApplied, app.Status)
		assert.Equal(t, domain.DefaultResumeURL, app.ResumeURL)
		require.NotNil(t, app.CoverLetter)

		job, _ := r.jobs.GetByID(ctx, "job3")
		assert.Equal(t, 33, job.ApplicationsCount)

		mine, _ := uc.ApplicationsForUser(ctx, "user1")
		assert.Equal(t, []string{"app1", "app3"}, []string{mine[0].ID, mine[1].ID})
	})

	t.Run("Should reject a second application to the same job", func(t *testing.T) {
		failures := testutil.ToFloat64(metrics.ApplicationsSubmitted.WithLabelValues(metrics.ResultFailure))
		_, err := uc.Apply(ctx, "job1", "user1", nil, nil)
		assert.ErrorIs(t, err, domain.ErrAlreadyApplied)
		assert.Equal(t, failures+1, testutil.ToFloat64(metrics.ApplicationsSubmitted.WithLabelValues(metrics.ResultFailure)))

		job, _ := r.jobs.GetByID(ctx, "job1")
		assert.Equal(t, 45, job.ApplicationsCount)
	})

	t.Run("Should return not found for an unknown job", func(t *testing.T) {
		_, err := uc.Apply(ctx, "job42", "user1", nil, nil)
		assertAppError(t, err, http.StatusNotFound)
	})

	t.Run("Should keep a supplied resume and drop an empty cover letter", func(t *testing.T) {
		app, err := uc.Apply(ctx, "job4", "user2", strPtr(""), strPtr("/resumes/jane.pdf"))
		require.NoError(t, err)
		assert.Nil(t, app.CoverLetter)
		assert.Equal(t, "/resumes/jane.pdf", app.ResumeURL)
	})
}

func TestApplyInactiveJob(t *testing.T) {
	ctx := context.Background()
	seed, err := memory.DefaultSeed()
	require.NoError(t, err)
	for i := range seed.Jobs {
		if seed.Jobs[i].ID == "job4" {
			seed.Jobs[i].IsActive = false
		}
	}
	store := memory.NewStore(seed)
	jobs := memory.NewJobRepository(store)
	apps := memory.NewApplicationRepository(store)
	uc := usecase.NewApplicationUsecase(apps, jobs, memory.NewUserRepository(store))

	_, err = uc.Apply(ctx, "job4", "user1", nil, nil)
	assertAppError(t, err, http.StatusBadRequest)

	exists, err := apps.CheckExists(ctx, "job4", "user1")
	require.NoError(t, err)
	assert.False(t, exists)
	job, _ := jobs.GetByID(ctx, "job4")
	assert.Equal(t, 18, job.ApplicationsCount)
}

func TestApplyConcurrentDuplicates(t *testing.T) {
	ctx := context.Background()
	r := newSeededRepos(t)
	uc := usecase.NewApplicationUsecase(r.apps, r.jobs, r.users)

	var wg sync.WaitGroup
	var mu sync.Mutex
	okCount := 0
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.Apply(ctx, "job2", "user1", nil, nil); err == nil {
				mu.Lock()
				okCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, okCount)
	job, _ := r.jobs.GetByID(ctx, "job2")
	assert.Equal(t, 28, job.ApplicationsCount)
}

func TestApplicationsForJobOwnership(t *testing.T) {
	ctx := context.Background()
	r := newSeededRepos(t)
	uc := usecase.NewApplicationUsecase(r.apps, r.jobs, r.users)

	apps, err := uc.ApplicationsForJob(ctx, "employer1", "job1")
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "app1", apps[0].ID)

	_, err = uc.ApplicationsForJob(ctx, "employer2", "job1")
	assertAppError(t, err, http.StatusForbidden)

	_, err = uc.ApplicationsForJob(ctx, "employer1", "job77")
	assertAppError(t, err, http.StatusNotFound)
}

func TestUpdateApplicationStatus(t *testing.T) {
	ctx := context.Background()
	r := newSeededRepos(t)
	uc := usecase.NewApplicationUsecase(r.apps, r.jobs, r.users)

	t.Run("Should reject unknown status", func(t *testing.T) {
		err := uc.UpdateStatus(ctx, "employer2", "app2", "archived", nil)
		assertAppError(t, err, http.StatusBadRequest)
	})

	t.Run("Should reject a non-owner", func(t *testing.T) {
		err := uc.UpdateStatus(ctx, "employer1", "app2", domain.ApplicationStatusHired, nil)
		assertAppError(t, err, http.StatusForbidden)
	})

	t.Run("Should return not found for unknown application", func(t *testing.T) {
		err := uc.UpdateStatus(ctx, "employer2", "app99", domain.ApplicationStatusHired, nil)
		assertAppError(t, err, http.StatusNotFound)
	})

	t.Run("Should allow any transition and attach notes", func(t *testing.T) {
		require.NoError(t, uc.UpdateStatus(ctx, "employer2", "app2", domain.ApplicationStatusHired, strPtr("Great fit")))
		require.NoError(t, uc.UpdateStatus(ctx, "employer2", "app2", domain.ApplicationStatusApplied, nil))

		app, _ := r.apps.GetByID(ctx, "app2")
		assert.Equal(t, domain.ApplicationStatusApplied, app.Status)
		require.NotNil(t, app.Notes)
		assert.Equal(t, "Great fit", *app.Notes)
	})
}

func TestExportJobApplications(t *testing.T) {
	ctx := context.Background()
	r := newSeededRepos(t)
	uc := usecase.NewApplicationUsecase(r.apps, r.jobs, r.users)

	t.Run("csv", func(t *testing.T) {
		data, filename, err := uc.ExportJobApplications(ctx, "employer1", "job1", usecase.ExportFormatCSV)
		require.NoError(t, err)
		assert.Contains(t, filename, "job1_applications_")
		assert.Contains(t, filename, ".csv")

		rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "APPLICATION ID", rows[0][0])
		assert.Equal(t, []string{"app1", "John Doe", "john.doe@example.com", "shortlisted", "2024-01-20"}, rows[1][:5])
	})

	t.Run("xlsx", func(t *testing.T) {
		data, filename, err := uc.ExportJobApplications(ctx, "employer2", "job2", "")
		require.NoError(t, err)
		assert.Contains(t, filename, ".xlsx")

		f, err := excelize.OpenReader(bytes.NewReader(data))
		require.NoError(t, err)
		defer f.Close()
		rows, err := f.GetRows("Applications")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "app2", rows[1][0])
		assert.Equal(t, "Jane Smith", rows[1][1])
	})

	t.Run("rejects other employers and unknown formats", func(t *testing.T) {
		_, _, err := uc.ExportJobApplications(ctx, "employer2", "job1", usecase.ExportFormatCSV)
		assertAppError(t, err, http.StatusForbidden)

		_, _, err = uc.ExportJobApplications(ctx, "employer1", "job1", "pdf")
		assertAppError(t, err, http.StatusBadRequest)
	})
}
