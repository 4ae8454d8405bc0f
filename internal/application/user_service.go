package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/gr36/clubactiv/internal/domain/entity"
	repo "github.com/gr36/clubactiv/internal/domain/repository"
	"github.com/gr36/clubactiv/pkg/helpers"
)

type UserService struct {
	Repo   repo.UserRepository
	Roles  *RoleService
	Logger *logrus.Logger
}

func NewUserService(repo repo.UserRepository, roles *RoleService, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, Roles: roles, Logger: logger}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// Register creates a user holding ROLE_USER. The role is resolved before
// anything is written, and the user row and its role are stored in one transaction.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	role, err := s.Roles.UserRole(ctx)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Email: email, Password: hash, Name: in.Name}
	if err := s.Repo.CreateWithRole(ctx, u, role.ID); err != nil {
		// lost a race with a concurrent registration for the same email
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", email).Error("create user failed")
		}
		return nil, err
	}
	u.Roles = append(u.Roles, role.Name)
	registrationsTotal.Inc()
	return u, nil
}

// GrantAdmin adds ROLE_ADMIN to the user.
func (s *UserService) GrantAdmin(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.HasRole(entity.RoleAdmin) {
		return u, nil
	}
	role, err := s.Roles.AdminRole(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.AssignRole(ctx, u.ID, role.ID); err != nil {
		return nil, err
	}
	u.Roles = append(u.Roles, role.Name)
	return u, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
