package domain

import (
	"context"
)

type Education struct {
	ID           string `json:"id" yaml:"id"`
	Institution  string `json:"institution" yaml:"institution" validate:"required,max=200"`
	Degree       string `json:"degree" yaml:"degree" validate:"required,max=100"`
	FieldOfStudy string `json:"fieldOfStudy" yaml:"fieldOfStudy" validate:"max=100"`
	StartDate    string `json:"startDate" yaml:"startDate"`
	EndDate      string `json:"endDate" yaml:"endDate"`
	Grade        string `json:"grade,omitempty" yaml:"grade"`
	Description  string `json:"description,omitempty" yaml:"description"`
}

type WorkExperience struct {
	ID          string `json:"id" yaml:"id"`
	Company     string `json:"company" yaml:"company" validate:"required,max=200"`
	Title       string `json:"title" yaml:"title" validate:"required,max=100"`
	Location    string `json:"location" yaml:"location"`
	StartDate   string `json:"startDate" yaml:"startDate"`
	EndDate     string `json:"endDate,omitempty" yaml:"endDate"`
	Current     bool   `json:"current" yaml:"current"`
	Description string `json:"description" yaml:"description" validate:"max=1000"`
}

// JobSeekerProfile is the résumé-style profile of a job seeker.
type JobSeekerProfile struct {
	UserID          string           `json:"userId" yaml:"userId"`
	Name            string           `json:"name" yaml:"name" validate:"required,min=2,max=100,valid_name"`
	Headline        string           `json:"headline" yaml:"headline" validate:"max=200,no_emoji"`
	Phone           string           `json:"phone" yaml:"phone" validate:"valid_phone"`
	Location        string           `json:"location" yaml:"location" validate:"max=100"`
	Experience      int              `json:"experience" yaml:"experience" validate:"gte=0,lte=60"`
	CurrentSalary   int64            `json:"currentSalary" yaml:"currentSalary" validate:"gte=0"`
	ExpectedSalary  int64            `json:"expectedSalary" yaml:"expectedSalary" validate:"gte=0"`
	Skills          []string         `json:"skills" yaml:"skills" validate:"required,min=1,dive,required"`
	Summary         string           `json:"summary" yaml:"summary" validate:"max=2000"`
	Education       []Education      `json:"education" yaml:"education" validate:"dive"`
	WorkExperience  []WorkExperience `json:"workExperience" yaml:"workExperience" validate:"dive"`
	ResumeURL       string           `json:"resumeUrl,omitempty" yaml:"resumeUrl"`
	ProfileImageURL string           `json:"profileImageUrl,omitempty" yaml:"profileImageUrl" validate:"omitempty,url"`
}

// Completeness scores the profile out of 100 over five sections.
func (p *JobSeekerProfile) Completeness() int {
	if p == nil {
		return 0
	}
	const totalFields = 5
	score := 0
	if len(p.Skills) > 0 {
		score++
	}
	if len(p.Education) > 0 {
		score++
	}
	if len(p.WorkExperience) > 0 {
		score++
	}
	if len(p.Summary) > 20 {
		score++
	}
	if p.ResumeURL != "" {
		score++
	}
	return score * 100 / totalFields
}

// EmployerProfile describes the company behind an employer account.
type EmployerProfile struct {
	UserID        string `json:"userId" yaml:"userId"`
	CompanyName   string `json:"companyName" yaml:"companyName" validate:"required,min=2,max=100,valid_name"`
	Industry      string `json:"industry" yaml:"industry" validate:"required,max=100"`
	CompanySize   string `json:"companySize" yaml:"companySize" validate:"max=50"`
	FoundedYear   int    `json:"foundedYear" yaml:"foundedYear" validate:"omitempty,gte=1800,max_current_year"`
	Website       string `json:"website" yaml:"website" validate:"omitempty,url"`
	About         string `json:"about" yaml:"about" validate:"max=2000,no_emoji"`
	Headquarters  string `json:"headquarters" yaml:"headquarters" validate:"max=100"`
	LogoURL       string `json:"logoUrl,omitempty" yaml:"logoUrl" validate:"omitempty,url"`
	CoverImageURL string `json:"coverImageUrl,omitempty" yaml:"coverImageUrl" validate:"omitempty,url"`
}

// Summary projects the profile onto the company block embedded in jobs.
func (p *EmployerProfile) Summary() CompanySummary {
	return CompanySummary{
		ID:       p.UserID,
		Name:     p.CompanyName,
		Logo:     p.LogoURL,
		Size:     p.CompanySize,
		Industry: p.Industry,
	}
}

type ProfileRepository interface {
	GetJobSeekerProfile(ctx context.Context, userID string) (*JobSeekerProfile, error)
	UpsertJobSeekerProfile(ctx context.Context, profile *JobSeekerProfile) error
	GetEmployerProfile(ctx context.Context, userID string) (*EmployerProfile, error)
	UpsertEmployerProfile(ctx context.Context, profile *EmployerProfile) error
	ListEmployerProfiles(ctx context.Context) ([]EmployerProfile, error)
}

type ProfileUsecase interface {
	GetJobSeekerProfile(ctx context.Context, userID string) (*JobSeekerProfile, error)
	UpdateJobSeekerProfile(ctx context.Context, profile *JobSeekerProfile) error
	GetEmployerProfile(ctx context.Context, userID string) (*EmployerProfile, error)
	UpdateEmployerProfile(ctx context.Context, profile *EmployerProfile) error
}

type CompanyUsecase interface {
	ListCompanies(ctx context.Context) ([]EmployerProfile, error)
	GetCompany(ctx context.Context, id string) (*EmployerProfile, error)
}
