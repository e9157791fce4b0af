package memory

import (
	"context"

	"go-jobboard-backend/internal/domain"
)

type profileRepo struct {
	store *Store
}

func NewProfileRepository(store *Store) domain.ProfileRepository {
	return &profileRepo{store: store}
}

func (r *profileRepo) GetJobSeekerProfile(ctx context.Context, userID string) (*domain.JobSeekerProfile, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.jobSeekerProfiles[userID]
	if !ok {
		return nil, notFound("jobseeker profile", userID)
	}
	out := cloneJobSeekerProfile(p)
	return &out, nil
}

func (r *profileRepo) UpsertJobSeekerProfile(ctx context.Context, profile *domain.JobSeekerProfile) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobSeekerProfiles[profile.UserID] = cloneJobSeekerProfile(*profile)
	return nil
}

func (r *profileRepo) GetEmployerProfile(ctx context.Context, userID string) (*domain.EmployerProfile, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.employerProfiles {
		if p.UserID == userID {
			out := p
			return &out, nil
		}
	}
	return nil, notFound("employer profile", userID)
}

func (r *profileRepo) UpsertEmployerProfile(ctx context.Context, profile *domain.EmployerProfile) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.employerProfiles {
		if s.employerProfiles[i].UserID == profile.UserID {
			s.employerProfiles[i] = *profile
			return nil
		}
	}
	s.employerProfiles = append(s.employerProfiles, *profile)
	return nil
}

func (r *profileRepo) ListEmployerProfiles(ctx context.Context) ([]domain.EmployerProfile, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.EmployerProfile, len(s.employerProfiles))
	copy(out, s.employerProfiles)
	return out, nil
}
