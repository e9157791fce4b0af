package usecase

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/metrics"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	userRepo        domain.UserRepository
	now             func() time.Time
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	userRepo domain.UserRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
		userRepo:        userRepo,
		now:             time.Now,
	}
}

// Apply records a new application for an active job
func (uc *applicationUsecase) Apply(ctx context.Context, jobID, userID string, coverLetter, resumeURL *string) (app *domain.Application, err error) {
	defer func() {
		metrics.ApplicationsSubmitted.WithLabelValues(metrics.Outcome(err)).Inc()
	}()

	// 1. Validate job exists and is active
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}
	if !job.IsActive {
		return nil, apperror.BadRequest("Cannot apply to inactive job")
	}

	// 2. Check for duplicate application
	exists, err := uc.applicationRepo.CheckExists(ctx, jobID, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, domain.ErrAlreadyApplied
	}

	// 3. Create application; the repository re-checks the pair under its lock
	resume := domain.DefaultResumeURL
	if resumeURL != nil && *resumeURL != "" {
		resume = *resumeURL
	}
	if coverLetter != nil && *coverLetter == "" {
		coverLetter = nil
	}

	app = &domain.Application{
		JobID:       jobID,
		UserID:      userID,
		AppliedDate: today(uc.now()),
		Status:      domain.ApplicationStatusApplied,
		CoverLetter: coverLetter,
		ResumeURL:   resume,
	}

	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyApplied):
			return nil, domain.ErrAlreadyApplied
		case errors.Is(err, domain.ErrNotFound):
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	logger.Log.Info("application submitted",
		zap.String("application_id", app.ID),
		zap.String("job_id", jobID),
		zap.String("user_id", userID),
	)
	return app, nil
}

// ApplicationsForUser returns the user's applications in submission order
func (uc *applicationUsecase) ApplicationsForUser(ctx context.Context, userID string) ([]domain.Application, error) {
	apps, err := uc.applicationRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// ApplicationsForJob returns all applications for a job owned by the employer
func (uc *applicationUsecase) ApplicationsForJob(ctx context.Context, employerID, jobID string) ([]domain.Application, error) {
	if _, err := uc.validateJobOwnership(ctx, employerID, jobID); err != nil {
		return nil, err
	}

	apps, err := uc.applicationRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// UpdateStatus lets the owning employer move an application to any status
func (uc *applicationUsecase) UpdateStatus(ctx context.Context, employerID, applicationID, status string, notes *string) error {
	// 1. Validate status
	if !domain.ValidApplicationStatus(status) {
		return apperror.BadRequest("Invalid status. Must be: applied, shortlisted, rejected, or hired")
	}

	// 2. Get application
	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return apperror.NotFound("Application not found")
	}

	// 3. Validate employer owns the job
	if _, err := uc.validateJobOwnership(ctx, employerID, app.JobID); err != nil {
		return err
	}

	// 4. Update status
	if err := uc.applicationRepo.UpdateStatus(ctx, applicationID, status, notes); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return apperror.Internal(err)
	}

	metrics.ApplicationStatusChanges.WithLabelValues(status).Inc()
	logger.Log.Info("application status updated",
		zap.String("application_id", applicationID),
		zap.String("status", status),
	)
	return nil
}

// validateJobOwnership checks that the job's company is the employer
func (uc *applicationUsecase) validateJobOwnership(ctx context.Context, employerID, jobID string) (*domain.Job, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}
	if job.Company.ID != employerID {
		return nil, apperror.Forbidden("You can only manage applications for your own jobs")
	}
	return job, nil
}
