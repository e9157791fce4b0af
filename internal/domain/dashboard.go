package domain

import "context"

// JobSeekerDashboard is the overview shown to a logged-in job seeker.
type JobSeekerDashboard struct {
	Applications        []Application    `json:"applications"`
	Stats               ApplicationStats `json:"stats"`
	RecommendedJobs     []Job            `json:"recommendedJobs"`
	ProfileCompleteness int              `json:"profileCompleteness"`
}

// EmployerDashboard is the overview shown to a logged-in employer.
type EmployerDashboard struct {
	Profile      *EmployerProfile `json:"profile,omitempty"`
	Jobs         []Job            `json:"jobs"`
	ActiveJobs   int              `json:"activeJobs"`
	Applications []Application    `json:"applications"`
	Stats        ApplicationStats `json:"stats"`
}

type DashboardUsecase interface {
	JobSeekerDashboard(ctx context.Context, userID string) (*JobSeekerDashboard, error)
	EmployerDashboard(ctx context.Context, userID string) (*EmployerDashboard, error)
}
