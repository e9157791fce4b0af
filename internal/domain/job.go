package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Job types
const (
	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
	JobTypeRemote     = "remote"
)

// Work modes
const (
	WorkModeOnsite = "onsite"
	WorkModeRemote = "remote"
	WorkModeHybrid = "hybrid"
)

// CompanySummary is the slice of an employer profile embedded in every job.
type CompanySummary struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Logo     string `json:"logo,omitempty" yaml:"logo"`
	Size     string `json:"size" yaml:"size"`
	Industry string `json:"industry" yaml:"industry"`
}

type Salary struct {
	Min      int64  `json:"min" yaml:"min"`
	Max      int64  `json:"max" yaml:"max"`
	Currency string `json:"currency" yaml:"currency"`
}

type Job struct {
	ID                string         `json:"id" yaml:"id"`
	Title             string         `json:"title" yaml:"title"`
	Company           CompanySummary `json:"company" yaml:"company"`
	Location          string         `json:"location" yaml:"location"`
	Salary            Salary         `json:"salary" yaml:"salary"`
	Experience        string         `json:"experience" yaml:"experience"`
	JobType           string         `json:"jobType" yaml:"jobType"`
	WorkMode          string         `json:"workMode" yaml:"workMode"`
	Skills            []string       `json:"skills" yaml:"skills"`
	Description       string         `json:"description" yaml:"description"`
	Requirements      []string       `json:"requirements" yaml:"requirements"`
	Responsibilities  []string       `json:"responsibilities" yaml:"responsibilities"`
	Benefits          []string       `json:"benefits" yaml:"benefits"`
	PostedDate        time.Time      `json:"postedDate" yaml:"postedDate"`
	Deadline          *time.Time     `json:"deadline,omitempty" yaml:"deadline"`
	ApplicationsCount int            `json:"applicationsCount" yaml:"applicationsCount"`
	IsActive          bool           `json:"isActive" yaml:"isActive"`
}

type JobRepository interface {
	// Create assigns the next free "job<N>" id when job.ID is empty.
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id string) (*Job, error)
	// Fetch returns the whole catalog in seed/insertion order.
	Fetch(ctx context.Context) ([]Job, error)
	FetchByCompanyID(ctx context.Context, companyID string) ([]Job, error)
}

type JobUsecase interface {
	ListJobs(ctx context.Context, filter JobFilter) ([]Job, error)
	GetJob(ctx context.Context, id string) (*Job, error)
	PostJob(ctx context.Context, employerID string, job *Job) error
	ListEmployerJobs(ctx context.Context, employerID string) ([]Job, error)
}
