package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"campusevents/internal/auth"
	apperrors "campusevents/internal/errors"
	"campusevents/internal/model"
	"campusevents/internal/monitoring"
	"campusevents/internal/repository"
)

// AuthService handles registration and login for both roles.
type AuthService interface {
	RegisterUser(ctx context.Context, studentID, password string) (*model.User, error)
	LoginUser(ctx context.Context, studentID, password string) (token string, user *model.User, err error)
	LoginAdmin(ctx context.Context, username, password string) (token string, admin *model.Admin, err error)
}

type authService struct {
	userRepo  repository.UserRepository
	adminRepo repository.AdminRepository
	sessions  *auth.SessionService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, adminRepo repository.AdminRepository, sessions *auth.SessionService) AuthService {
	return &authService{
		userRepo:  userRepo,
		adminRepo: adminRepo,
		sessions:  sessions,
	}
}

// RegisterUser creates a student account with a hashed password. Uniqueness of
// the student id is enforced by the database index; a duplicate insert comes
// back as gorm.ErrDuplicatedKey rather than being pre-checked, so concurrent
// registrations cannot race past the check.
func (s *authService) RegisterUser(ctx context.Context, studentID, password string) (*model.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		StudentID:    studentID,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrStudentIDTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	monitoring.RecordRegistration()
	return user, nil
}

// LoginUser authenticates a student and returns a session token whose only
// identity slot is the user id.
func (s *authService) LoginUser(ctx context.Context, studentID, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByStudentID(ctx, studentID)
	if err != nil {
		monitoring.RecordLogin("user", "failure")
		return "", nil, apperrors.ErrIncorrectStudentID
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		monitoring.RecordLogin("user", "failure")
		return "", nil, apperrors.ErrIncorrectPassword
	}

	token, err := s.sessions.IssueUser(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issue session: %w", err)
	}

	monitoring.RecordLogin("user", "success")
	return token, user, nil
}

// LoginAdmin authenticates an administrator and returns a session token whose
// only identity slot is the admin id.
func (s *authService) LoginAdmin(ctx context.Context, username, password string) (string, *model.Admin, error) {
	admin, err := s.adminRepo.FindByUsername(ctx, username)
	if err != nil {
		monitoring.RecordLogin("admin", "failure")
		return "", nil, apperrors.ErrIncorrectUsername
	}

	if err := auth.CheckPassword(admin.PasswordHash, password); err != nil {
		monitoring.RecordLogin("admin", "failure")
		return "", nil, apperrors.ErrIncorrectPassword
	}

	token, err := s.sessions.IssueAdmin(admin.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issue session: %w", err)
	}

	monitoring.RecordLogin("admin", "success")
	return token, admin, nil
}
