package application

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/gr36/clubactiv/internal/domain/entity"
	repo "github.com/gr36/clubactiv/internal/domain/repository"
)

// RoleService resolves the seed roles assigned to users.
type RoleService struct {
	Repo   repo.RoleRepository
	Logger *logrus.Logger
}

func NewRoleService(repo repo.RoleRepository, logger *logrus.Logger) *RoleService {
	return &RoleService{Repo: repo, Logger: logger}
}

// AdminRole returns the ROLE_ADMIN record.
func (s *RoleService) AdminRole(ctx context.Context) (*entity.Role, error) {
	return s.resolve(ctx, entity.RoleAdmin)
}

// UserRole returns the ROLE_USER record.
func (s *RoleService) UserRole(ctx context.Context) (*entity.Role, error) {
	return s.resolve(ctx, entity.RoleUser)
}

// VerifySeedData checks that both seed roles are present.
func (s *RoleService) VerifySeedData(ctx context.Context) error {
	if _, err := s.AdminRole(ctx); err != nil {
		return err
	}
	_, err := s.UserRole(ctx)
	return err
}

func (s *RoleService) List(ctx context.Context) ([]entity.Role, error) {
	return s.Repo.List(ctx)
}

func (s *RoleService) resolve(ctx context.Context, name string) (*entity.Role, error) {
	role, err := s.Repo.FindByName(ctx, name)
	if err != nil {
		roleResolutionFailures.WithLabelValues(name, "query").Inc()
		return nil, fmt.Errorf("resolve role %s: %w", name, err)
	}
	if role == nil {
		roleResolutionFailures.WithLabelValues(name, "missing").Inc()
		if s.Logger != nil {
			s.Logger.WithField("role", name).Error("seed role missing from database")
		}
		return nil, newRoleMissing(name)
	}
	return role, nil
}
