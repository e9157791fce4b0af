package memory

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"go-jobboard-backend/internal/domain"
)

// Store holds every collection of the job board in process memory.
// A single RWMutex guards all of them so that cross-collection writes
// (an application plus its job's counter) are observed atomically.
type Store struct {
	mu sync.RWMutex

	users             []domain.User
	jobs              []domain.Job
	applications      []domain.Application
	jobSeekerProfiles map[string]domain.JobSeekerProfile
	employerProfiles  []domain.EmployerProfile
}

// NewStore builds a store populated from seed. A nil seed yields an empty store.
func NewStore(seed *Seed) *Store {
	s := &Store{jobSeekerProfiles: make(map[string]domain.JobSeekerProfile)}
	if seed == nil {
		return s
	}

	s.users = append(s.users, seed.Users...)
	for _, j := range seed.Jobs {
		s.jobs = append(s.jobs, cloneJob(j))
	}
	for _, a := range seed.Applications {
		s.applications = append(s.applications, cloneApplication(a))
	}
	for _, p := range seed.JobSeekerProfiles {
		s.jobSeekerProfiles[p.UserID] = cloneJobSeekerProfile(p)
	}
	s.employerProfiles = append(s.employerProfiles, seed.EmployerProfiles...)
	return s
}

// nextID returns prefix+N for the smallest N >= 1 not already taken.
// Caller must hold the write lock.
func nextID(prefix string, taken func(id string) bool) string {
	for n := 1; ; n++ {
		id := prefix + strconv.Itoa(n)
		if !taken(id) {
			return id
		}
	}
}

func idSet[T any](items []T, id func(T) string) func(string) bool {
	return func(candidate string) bool {
		for _, it := range items {
			if id(it) == candidate {
				return true
			}
		}
		return false
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, domain.ErrNotFound)
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneJob(j domain.Job) domain.Job {
	j.Skills = cloneStrings(j.Skills)
	j.Requirements = cloneStrings(j.Requirements)
	j.Responsibilities = cloneStrings(j.Responsibilities)
	j.Benefits = cloneStrings(j.Benefits)
	if j.Deadline != nil {
		d := *j.Deadline
		j.Deadline = &d
	}
	return j
}

func cloneApplication(a domain.Application) domain.Application {
	if a.CoverLetter != nil {
		v := *a.CoverLetter
		a.CoverLetter = &v
	}
	if a.Notes != nil {
		v := *a.Notes
		a.Notes = &v
	}
	return a
}

func cloneJobSeekerProfile(p domain.JobSeekerProfile) domain.JobSeekerProfile {
	p.Skills = cloneStrings(p.Skills)
	if p.Education != nil {
		p.Education = append([]domain.Education(nil), p.Education...)
	}
	if p.WorkExperience != nil {
		p.WorkExperience = append([]domain.WorkExperience(nil), p.WorkExperience...)
	}
	return p
}
