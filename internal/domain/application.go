package domain

import (
	"context"
	"errors"
	"time"
)

// Application status constants
const (
	ApplicationStatusApplied     = "applied"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusRejected    = "rejected"
	ApplicationStatusHired       = "hired"
)

// DefaultResumeURL is used when an applicant does not supply one.
const DefaultResumeURL = "/resumes/default-resume.pdf"

var ErrAlreadyApplied = errors.New("already applied")

// ValidApplicationStatus reports whether status is one of the four known values.
func ValidApplicationStatus(status string) bool {
	switch status {
	case ApplicationStatusApplied, ApplicationStatusShortlisted, ApplicationStatusRejected, ApplicationStatusHired:
		return true
	}
	return false
}

// Application links a user to a job they applied for.
type Application struct {
	ID          string    `json:"id" yaml:"id"`
	JobID       string    `json:"jobId" yaml:"jobId"`
	UserID      string    `json:"userId" yaml:"userId"`
	AppliedDate time.Time `json:"appliedDate" yaml:"appliedDate"`
	Status      string    `json:"status" yaml:"status"`
	CoverLetter *string   `json:"coverLetter,omitempty" yaml:"coverLetter"`
	ResumeURL   string    `json:"resumeUrl" yaml:"resumeUrl"`
	Notes       *string   `json:"notes,omitempty" yaml:"notes"`
}

// ApplicationStats counts applications per status.
type ApplicationStats struct {
	Total       int `json:"total"`
	Applied     int `json:"applied"`
	Shortlisted int `json:"shortlisted"`
	Rejected    int `json:"rejected"`
	Hired       int `json:"hired"`
}

// CountApplications tallies apps by status.
func CountApplications(apps []Application) ApplicationStats {
	stats := ApplicationStats{Total: len(apps)}
	for _, app := range apps {
		switch app.Status {
		case ApplicationStatusApplied:
			stats.Applied++
		case ApplicationStatusShortlisted:
			stats.Shortlisted++
		case ApplicationStatusRejected:
			stats.Rejected++
		case ApplicationStatusHired:
			stats.Hired++
		}
	}
	return stats
}

// ApplicationRepository defines data access methods for applications
type ApplicationRepository interface {
	// Create appends app and bumps the job's applicationsCount in one step.
	// It returns ErrAlreadyApplied when the (job, user) pair already exists.
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id string) (*Application, error)
	GetByJobID(ctx context.Context, jobID string) ([]Application, error)
	GetByUserID(ctx context.Context, userID string) ([]Application, error)
	CheckExists(ctx context.Context, jobID, userID string) (bool, error)
	UpdateStatus(ctx context.Context, id, status string, notes *string) error
}

// ApplicationUsecase defines business logic for applications
type ApplicationUsecase interface {
	// Job seeker operations
	Apply(ctx context.Context, jobID, userID string, coverLetter, resumeURL *string) (*Application, error)
	ApplicationsForUser(ctx context.Context, userID string) ([]Application, error)

	// Employer operations
	ApplicationsForJob(ctx context.Context, employerID, jobID string) ([]Application, error)
	UpdateStatus(ctx context.Context, employerID, applicationID, status string, notes *string) error
	ExportJobApplications(ctx context.Context, employerID, jobID, format string) ([]byte, string, error)
}
