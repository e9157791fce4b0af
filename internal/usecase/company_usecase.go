package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type companyUsecase struct {
	profileRepo domain.ProfileRepository
}

// NewCompanyUsecase serves the public company directory built from employer profiles
func NewCompanyUsecase(profileRepo domain.ProfileRepository) domain.CompanyUsecase {
	return &companyUsecase{profileRepo: profileRepo}
}

func (uc *companyUsecase) ListCompanies(ctx context.Context) ([]domain.EmployerProfile, error) {
	companies, err := uc.profileRepo.ListEmployerProfiles(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return companies, nil
}

func (uc *companyUsecase) GetCompany(ctx context.Context, id string) (*domain.EmployerProfile, error) {
	profile, err := uc.profileRepo.GetEmployerProfile(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}
