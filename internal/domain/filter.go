package domain

import (
	"strings"
	"time"
)

// JobFilter is a set of optional predicates over the job catalog.
// A zero value field places no restriction on the result.
type JobFilter struct {
	Search       string   `json:"search,omitempty"`
	Location     string   `json:"location,omitempty"`
	JobTypes     []string `json:"jobType,omitempty"`
	WorkModes    []string `json:"workMode,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	SalaryMin    *int64   `json:"salaryMin,omitempty"`
	SalaryMax    *int64   `json:"salaryMax,omitempty"`
	PostedWithin int      `json:"postedWithin,omitempty"` // days
}

// IsEmpty reports whether no predicate is active.
func (f JobFilter) IsEmpty() bool {
	return f.Search == "" && f.Location == "" &&
		len(f.JobTypes) == 0 && len(f.WorkModes) == 0 && len(f.Skills) == 0 &&
		f.SalaryMin == nil && f.SalaryMax == nil && f.PostedWithin <= 0
}

// Matches reports whether job satisfies every active predicate of f.
func (f JobFilter) Matches(job *Job, now time.Time) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(job.Title), q) &&
			!strings.Contains(strings.ToLower(job.Company.Name), q) &&
			!anyContains(job.Skills, q) {
			return false
		}
	}

	if f.Location != "" && !strings.Contains(strings.ToLower(job.Location), strings.ToLower(f.Location)) {
		return false
	}

	if len(f.JobTypes) > 0 && !contains(f.JobTypes, job.JobType) {
		return false
	}

	if len(f.WorkModes) > 0 && !contains(f.WorkModes, job.WorkMode) {
		return false
	}

	if len(f.Skills) > 0 && !sharesSkill(job.Skills, f.Skills) {
		return false
	}

	if f.SalaryMin != nil && job.Salary.Min < *f.SalaryMin {
		return false
	}
	if f.SalaryMax != nil && job.Salary.Max > *f.SalaryMax {
		return false
	}

	if f.PostedWithin > 0 {
		cutoff := startOfDay(now).AddDate(0, 0, -f.PostedWithin)
		if startOfDay(job.PostedDate).Before(cutoff) {
			return false
		}
	}

	return true
}

// FilterJobs returns the jobs matching f, preserving catalog order.
// The result is never nil.
func FilterJobs(jobs []Job, f JobFilter, now time.Time) []Job {
	result := make([]Job, 0, len(jobs))
	for i := range jobs {
		if f.Matches(&jobs[i], now) {
			result = append(result, jobs[i])
		}
	}
	return result
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func anyContains(values []string, lowerQuery string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), lowerQuery) {
			return true
		}
	}
	return false
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func sharesSkill(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}
