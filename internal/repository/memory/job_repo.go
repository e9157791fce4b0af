package memory

import (
	"context"

	"go-jobboard-backend/internal/domain"
)

type jobRepo struct {
	store *Store
}

func NewJobRepository(store *Store) domain.JobRepository {
	return &jobRepo{store: store}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if job.ID == "" {
		job.ID = nextID("job", idSet(s.jobs, func(j domain.Job) string { return j.ID }))
	}
	s.jobs = append(s.jobs, cloneJob(*job))
	return nil
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, j := range s.jobs {
		if j.ID == id {
			out := cloneJob(j)
			return &out, nil
		}
	}
	return nil, notFound("job", id)
}

func (r *jobRepo) Fetch(ctx context.Context) ([]domain.Job, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make([]domain.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		jobs = append(jobs, cloneJob(j))
	}
	return jobs, nil
}

func (r *jobRepo) FetchByCompanyID(ctx context.Context, companyID string) ([]domain.Job, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make([]domain.Job, 0)
	for _, j := range s.jobs {
		if j.Company.ID == companyID {
			jobs = append(jobs, cloneJob(j))
		}
	}
	return jobs, nil
}
