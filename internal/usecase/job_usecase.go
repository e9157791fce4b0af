package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/metrics"
)

type jobUsecase struct {
	jobRepo     domain.JobRepository
	profileRepo domain.ProfileRepository
	userRepo    domain.UserRepository
	now         func() time.Time
}

func NewJobUsecase(
	jobRepo domain.JobRepository,
	profileRepo domain.ProfileRepository,
	userRepo domain.UserRepository,
) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
		now:         time.Now,
	}
}

// ListJobs recomputes the filtered view from the full catalog on every call.
func (u *jobUsecase) ListJobs(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	jobs, err := u.jobRepo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	result := domain.FilterJobs(jobs, filter, u.now())
	metrics.JobSearches.Inc()
	metrics.JobSearchResults.Observe(float64(len(result)))
	return result, nil
}

func (u *jobUsecase) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) PostJob(ctx context.Context, employerID string, job *domain.Job) error {
	employer, err := u.userRepo.GetByID(ctx, employerID)
	if err != nil {
		return apperror.Unauthorized("User not found")
	}
	if employer.Role != domain.RoleEmployer {
		return apperror.Forbidden("Only employers can post jobs")
	}

	// Business Validation
	job.Title = strings.TrimSpace(job.Title)
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.Salary.Min < 0 || job.Salary.Max < 0 {
		return apperror.BadRequest("Salary cannot be negative")
	}
	if job.Salary.Min > job.Salary.Max {
		return apperror.BadRequest("SalaryMin cannot be greater than SalaryMax")
	}
	if job.JobType == "" {
		job.JobType = domain.JobTypeFullTime
	}
	if !validJobType(job.JobType) {
		return apperror.BadRequest("Invalid job type")
	}
	if job.WorkMode == "" {
		job.WorkMode = domain.WorkModeOnsite
	}
	if !validWorkMode(job.WorkMode) {
		return apperror.BadRequest("Invalid work mode")
	}
	if job.Salary.Currency == "" {
		job.Salary.Currency = "INR"
	}

	if profile, err := u.profileRepo.GetEmployerProfile(ctx, employerID); err == nil {
		job.Company = profile.Summary()
	} else {
		job.Company = domain.CompanySummary{ID: employerID, Name: employer.Name}
	}

	job.ID = ""
	job.PostedDate = today(u.now())
	job.ApplicationsCount = 0
	job.IsActive = true

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	logger.Log.Info("job posted", zap.String("job_id", job.ID), zap.String("employer_id", employerID))
	return nil
}

func (u *jobUsecase) ListEmployerJobs(ctx context.Context, employerID string) ([]domain.Job, error) {
	jobs, err := u.jobRepo.FetchByCompanyID(ctx, employerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func validJobType(t string) bool {
	switch t {
	case domain.JobTypeFullTime, domain.JobTypePartTime, domain.JobTypeContract,
		domain.JobTypeInternship, domain.JobTypeRemote:
		return true
	}
	return false
}

func validWorkMode(m string) bool {
	switch m {
	case domain.WorkModeOnsite, domain.WorkModeRemote, domain.WorkModeHybrid:
		return true
	}
	return false
}
