package services

import (
	"errors"

	"cms-publisher/models"
	"cms-publisher/repositories"
)

type RoleService interface {
	GetRoles(caps models.Capabilities) ([]models.Role, error)
	AssignRoles(userID uint, roleIDs []uint, caps models.Capabilities) (*models.User, error)
}

type roleService struct {
	roleRepo repositories.RoleRepository
	userRepo repositories.UserRepository
}

func NewRoleService(roleRepo repositories.RoleRepository, userRepo repositories.UserRepository) RoleService {
	return &roleService{roleRepo: roleRepo, userRepo: userRepo}
}

func (s *roleService) GetRoles(caps models.Capabilities) ([]models.Role, error) {
	if !caps.IsAdmin() && !caps.Has(models.PermManageRoles) {
		return nil, models.ErrForbidden
	}
	return s.roleRepo.GetAll()
}

// AssignRoles replaces the target user's role set.
func (s *roleService) AssignRoles(userID uint, roleIDs []uint, caps models.Capabilities) (*models.User, error) {
	if !caps.IsAdmin() && !caps.Has(models.PermManageRoles) {
		return nil, models.ErrForbidden
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	roles, err := s.roleRepo.GetByIDs(roleIDs)
	if err != nil {
		return nil, err
	}
	if len(roles) != len(roleIDs) {
		return nil, errors.New("one or more roles not found")
	}

	if err := s.userRepo.ReplaceRoles(user, roles); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(userID)
}
