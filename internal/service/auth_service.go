package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/buyitapp/buyit-server/internal/auth"
	"github.com/buyitapp/buyit-server/internal/config"
	"github.com/buyitapp/buyit-server/internal/domain"
	"github.com/buyitapp/buyit-server/internal/mailer"
	"github.com/buyitapp/buyit-server/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthService struct {
	userRepo repository.UserRepository
	mail     mailer.Mailer
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, mail mailer.Mailer, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		mail:     mail,
		cfg:      cfg,
	}
}

type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthResult struct {
	User  *domain.User
	Token string
}

func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailExists
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Two signups racing for the same email: the loser hits the unique
		// constraint and gets the same conflict as the sequential path.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrEmailExists
		}
		return nil, err
	}

	return s.issueToken(user)
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	user.UpdatedAt = time.Now()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

func (s *AuthService) issueToken(user *domain.User) (*AuthResult, error) {
	token, err := auth.GenerateToken(s.cfg.JWTSecret, s.cfg.JWTDuration, auth.Identity{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	})
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

// VerifyToken decodes the session cookie value; nil means rejected.
func (s *AuthService) VerifyToken(token string) *auth.Claims {
	return auth.VerifyToken(s.cfg.JWTSecret, token)
}

// RequestPasswordReset stores an opaque reset token on the account and mails
// a link embedding it. Unknown emails surface ErrUserNotFound.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	token := uuid.NewString()
	user.PasswordResetToken = &token
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/%s/create-password", s.cfg.AppBaseURL, token)
	return s.mail.Send(user.Email, "Password Reset",
		fmt.Sprintf("Here is the link to reset your password: %s", link))
}

// CompletePasswordReset consumes the reset token and replaces the password
// hash. The new password has already passed the strength check upstream.
func (s *AuthService) CompletePasswordReset(ctx context.Context, token, password, confirm string) error {
	user, err := s.userRepo.GetByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInvalidResetToken
		}
		return err
	}

	if password != confirm {
		return domain.ErrPasswordMismatch
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	user.PasswordResetToken = nil
	user.PasswordHash = hash
	user.UpdatedAt = time.Now()
	return s.userRepo.Update(ctx, user)
}

// RecentUsers returns the newest signups for the dashboard's members panel.
func (s *AuthService) RecentUsers(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.GetRecent(ctx, 10)
}

func (s *AuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the account and returns it so callers can report who
// was deleted.
func (s *AuthService) DeleteUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// SeedAdmin creates the bootstrap admin account if it does not exist yet.
func (s *AuthService) SeedAdmin(ctx context.Context, input SignupInput) (*domain.User, error) {
	result, err := s.Signup(ctx, input)
	if err != nil {
		return nil, err
	}
	return result.User, nil
}
