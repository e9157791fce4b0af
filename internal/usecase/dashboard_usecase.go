package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

const recommendedJobsLimit = 3

type dashboardUsecase struct {
	jobRepo         domain.JobRepository
	applicationRepo domain.ApplicationRepository
	profileRepo     domain.ProfileRepository
}

func NewDashboardUsecase(
	jobRepo domain.JobRepository,
	applicationRepo domain.ApplicationRepository,
	profileRepo domain.ProfileRepository,
) domain.DashboardUsecase {
	return &dashboardUsecase{
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
		profileRepo:     profileRepo,
	}
}

func (u *dashboardUsecase) JobSeekerDashboard(ctx context.Context, userID string) (*domain.JobSeekerDashboard, error) {
	apps, err := u.applicationRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	profile, err := u.profileRepo.GetJobSeekerProfile(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	jobs, err := u.jobRepo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.JobSeekerDashboard{
		Applications:        apps,
		Stats:               domain.CountApplications(apps),
		RecommendedJobs:     recommendJobs(jobs, profile, recommendedJobsLimit),
		ProfileCompleteness: profile.Completeness(),
	}, nil
}

func (u *dashboardUsecase) EmployerDashboard(ctx context.Context, userID string) (*domain.EmployerDashboard, error) {
	profile, err := u.profileRepo.GetEmployerProfile(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Internal(err)
		}
		profile = nil
	}

	jobs, err := u.jobRepo.FetchByCompanyID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	dash := &domain.EmployerDashboard{
		Profile:      profile,
		Jobs:         jobs,
		Applications: []domain.Application{},
	}
	for _, job := range jobs {
		if job.IsActive {
			dash.ActiveJobs++
		}
		apps, err := u.applicationRepo.GetByJobID(ctx, job.ID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		dash.Applications = append(dash.Applications, apps...)
	}
	dash.Stats = domain.CountApplications(dash.Applications)
	return dash, nil
}

// recommendJobs picks the first jobs in catalog order that share an exact
// skill with the profile.
func recommendJobs(jobs []domain.Job, profile *domain.JobSeekerProfile, limit int) []domain.Job {
	out := make([]domain.Job, 0, limit)
	if profile == nil || len(profile.Skills) == 0 {
		return out
	}

	have := make(map[string]struct{}, len(profile.Skills))
	for _, s := range profile.Skills {
		have[s] = struct{}{}
	}

	for _, job := range jobs {
		if len(out) == limit {
			break
		}
		for _, s := range job.Skills {
			if _, ok := have[s]; ok {
				out = append(out, job)
				break
			}
		}
	}
	return out
}
