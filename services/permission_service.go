package services

import (
	"cms-publisher/models"
	"cms-publisher/repositories"
)

// PermissionService resolves an actor's full permission set once per request
// so the transition rules run as pure predicates over the result.
type PermissionService interface {
	ResolveCapabilities(userID uint) (models.Capabilities, error)
}

type permissionService struct {
	userRepo repositories.UserRepository
}

func NewPermissionService(userRepo repositories.UserRepository) PermissionService {
	return &permissionService{userRepo: userRepo}
}

func (s *permissionService) ResolveCapabilities(userID uint) (models.Capabilities, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return models.Capabilities{}, err
	}
	return user.Capabilities(), nil
}
