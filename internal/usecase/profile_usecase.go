package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
	userRepo    domain.UserRepository
	validate    *validator.Validate
}

func NewProfileUsecase(profileRepo domain.ProfileRepository, userRepo domain.UserRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		validate:    validate,
	}
}

func (u *profileUsecase) GetJobSeekerProfile(ctx context.Context, userID string) (*domain.JobSeekerProfile, error) {
	if err := requireSelf(ctx, userID); err != nil {
		return nil, err
	}

	profile, err := u.profileRepo.GetJobSeekerProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// New job seekers start from an empty profile
			return &domain.JobSeekerProfile{UserID: userID, Skills: []string{}}, nil
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *profileUsecase) UpdateJobSeekerProfile(ctx context.Context, profile *domain.JobSeekerProfile) error {
	userID, err := callerID(ctx)
	if err != nil {
		return err
	}

	// Force the UserID to be the context user
	profile.UserID = userID

	if err := u.validate.Struct(profile); err != nil {
		return apperror.BadRequest(validation.Message(err))
	}

	if err := u.profileRepo.UpsertJobSeekerProfile(ctx, profile); err != nil {
		return apperror.Internal(err)
	}
	return u.markProfileComplete(ctx, userID)
}

func (u *profileUsecase) GetEmployerProfile(ctx context.Context, userID string) (*domain.EmployerProfile, error) {
	if err := requireSelf(ctx, userID); err != nil {
		return nil, err
	}

	profile, err := u.profileRepo.GetEmployerProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.EmployerProfile{UserID: userID}, nil
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *profileUsecase) UpdateEmployerProfile(ctx context.Context, profile *domain.EmployerProfile) error {
	userID, err := callerID(ctx)
	if err != nil {
		return err
	}
	profile.UserID = userID

	if err := u.validate.Struct(profile); err != nil {
		return apperror.BadRequest(validation.Message(err))
	}

	if err := u.profileRepo.UpsertEmployerProfile(ctx, profile); err != nil {
		return apperror.Internal(err)
	}
	return u.markProfileComplete(ctx, userID)
}

func (u *profileUsecase) markProfileComplete(ctx context.Context, userID string) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return apperror.NotFound("User not found")
	}
	if user.ProfileComplete {
		return nil
	}
	user.ProfileComplete = true
	if err := u.userRepo.Update(ctx, user); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func callerID(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || userID == "" {
		return "", apperror.Unauthorized("User not authenticated")
	}
	return userID, nil
}

// requireSelf rejects access to another user's profile.
func requireSelf(ctx context.Context, userID string) error {
	ctxUserID, err := callerID(ctx)
	if err != nil {
		return err
	}
	if ctxUserID != userID {
		return apperror.Forbidden("You can only view your own profile")
	}
	return nil
}
