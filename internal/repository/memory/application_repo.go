package memory

import (
	"context"

	"go-jobboard-backend/internal/domain"
)

type applicationRepo struct {
	store *Store
}

func NewApplicationRepository(store *Store) domain.ApplicationRepository {
	return &applicationRepo{store: store}
}

// Create assigns the next free "app<N>" id when app.ID is empty.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	jobIdx := -1
	for i := range s.jobs {
		if s.jobs[i].ID == app.JobID {
			jobIdx = i
			break
		}
	}
	if jobIdx < 0 {
		return notFound("job", app.JobID)
	}

	for _, a := range s.applications {
		if a.JobID == app.JobID && a.UserID == app.UserID {
			return domain.ErrAlreadyApplied
		}
	}

	if app.ID == "" {
		app.ID = nextID("app", idSet(s.applications, func(a domain.Application) string { return a.ID }))
	}
	s.applications = append(s.applications, cloneApplication(*app))
	s.jobs[jobIdx].ApplicationsCount++
	return nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.applications {
		if a.ID == id {
			out := cloneApplication(a)
			return &out, nil
		}
	}
	return nil, notFound("application", id)
}

func (r *applicationRepo) GetByJobID(ctx context.Context, jobID string) ([]domain.Application, error) {
	return r.filter(func(a *domain.Application) bool { return a.JobID == jobID }), nil
}

func (r *applicationRepo) GetByUserID(ctx context.Context, userID string) ([]domain.Application, error) {
	return r.filter(func(a *domain.Application) bool { return a.UserID == userID }), nil
}

func (r *applicationRepo) CheckExists(ctx context.Context, jobID, userID string) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.applications {
		if a.JobID == jobID && a.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id, status string, notes *string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.applications {
		if s.applications[i].ID != id {
			continue
		}
		s.applications[i].Status = status
		if notes != nil {
			v := *notes
			s.applications[i].Notes = &v
		}
		return nil
	}
	return notFound("application", id)
}

func (r *applicationRepo) filter(keep func(a *domain.Application) bool) []domain.Application {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	apps := make([]domain.Application, 0)
	for i := range s.applications {
		if keep(&s.applications[i]) {
			apps = append(apps, cloneApplication(s.applications[i]))
		}
	}
	return apps
}
