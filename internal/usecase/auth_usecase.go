package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/metrics"
)

type authUsecase struct {
	userRepo       domain.UserRepository
	sessions       domain.SessionStore
	tokens         *auth.TokenIssuer
	verifyPassword bool
	now            func() time.Time
}

// NewAuthUsecase creates the session holder. With verifyPassword false any
// password is accepted for a known email.
func NewAuthUsecase(
	userRepo domain.UserRepository,
	sessions domain.SessionStore,
	tokens *auth.TokenIssuer,
	verifyPassword bool,
) domain.AuthUsecase {
	return &authUsecase{
		userRepo:       userRepo,
		sessions:       sessions,
		tokens:         tokens,
		verifyPassword: verifyPassword,
		now:            time.Now,
	}
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (session *domain.Session, err error) {
	defer func() {
		metrics.AuthAttempts.WithLabelValues("login", metrics.Outcome(err)).Inc()
	}()

	user, err := u.userRepo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, apperror.Internal(err)
	}

	if u.verifyPassword {
		if user.PasswordHash == "" || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
			return nil, domain.ErrInvalidCredentials
		}
	}

	return u.startSession(ctx, user)
}

func (u *authUsecase) Register(ctx context.Context, email, password, name, role string) (session *domain.Session, err error) {
	defer func() {
		metrics.AuthAttempts.WithLabelValues("register", metrics.Outcome(err)).Inc()
	}()

	if role != domain.RoleJobSeeker && role != domain.RoleEmployer {
		return nil, apperror.BadRequest("Role must be jobseeker or employer")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		Email:           strings.TrimSpace(email),
		Name:            strings.TrimSpace(name),
		Role:            role,
		ProfileComplete: false,
		CreatedAt:       today(u.now()),
		PasswordHash:    string(hash),
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailInUse) {
			return nil, domain.ErrEmailInUse
		}
		return nil, apperror.Internal(err)
	}

	logger.Log.Info("user registered", zap.String("user_id", user.ID), zap.String("role", user.Role))
	return u.startSession(ctx, user)
}

func (u *authUsecase) Logout(ctx context.Context, sessionID string) error {
	if err := u.sessions.Delete(ctx, sessionID); err != nil {
		return apperror.Internal(err)
	}
	metrics.AuthAttempts.WithLabelValues("logout", metrics.ResultSuccess).Inc()
	return nil
}

// ResetPassword only confirms the account exists; no mail is sent.
func (u *authUsecase) ResetPassword(ctx context.Context, email string) (err error) {
	defer func() {
		metrics.AuthAttempts.WithLabelValues("reset_password", metrics.Outcome(err)).Inc()
	}()

	user, err := u.userRepo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNoAccount
		}
		return apperror.Internal(err)
	}

	logger.Log.Info("password reset requested", zap.String("user_id", user.ID))
	return nil
}

// CurrentUser returns the session's user, refreshed from the user store
// when the account still exists there.
func (u *authUsecase) CurrentUser(ctx context.Context, sessionID string) (*domain.User, error) {
	user, err := u.sessions.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Session expired or not found")
		}
		return nil, apperror.Internal(err)
	}

	if fresh, err := u.userRepo.GetByID(ctx, user.ID); err == nil {
		fresh.PasswordHash = ""
		return fresh, nil
	}
	return user, nil
}

func (u *authUsecase) startSession(ctx context.Context, user *domain.User) (*domain.Session, error) {
	snapshot := *user
	snapshot.PasswordHash = ""

	sessionID := uuid.NewString()
	token, expiresAt, err := u.tokens.Issue(sessionID, snapshot.ID, snapshot.Email, snapshot.Role)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if err := u.sessions.Save(ctx, sessionID, &snapshot, u.tokens.TTL()); err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.Session{
		ID:        sessionID,
		Token:     token,
		ExpiresAt: expiresAt,
		User:      &snapshot,
	}, nil
}

// today truncates t to midnight UTC; dates in this domain carry no time of day.
func today(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
