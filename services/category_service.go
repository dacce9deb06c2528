package services

import (
	"errors"

	"cms-publisher/models"
	"cms-publisher/repositories"
)

type CategoryService interface {
	CreateCategory(req models.CreateCategoryRequest, caps models.Capabilities) (*models.Category, error)
	GetCategory(id uint, caps models.Capabilities) (*models.Category, error)
	GetCategories(caps models.Capabilities) ([]models.Category, error)
	UpdateCategory(id uint, req models.UpdateCategoryRequest, caps models.Capabilities) (*models.Category, error)
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(req models.CreateCategoryRequest, caps models.Capabilities) (*models.Category, error) {
	if !caps.IsAdmin() && !caps.Has(models.PermManageCategories) {
		return nil, models.ErrForbidden
	}
	if !req.Type.IsValid() {
		return nil, errors.New("invalid category type")
	}

	state := true
	if req.State != nil {
		state = *req.State
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		State:       state,
		IsModerated: req.IsModerated,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetCategory(id uint, caps models.Capabilities) (*models.Category, error) {
	if !caps.IsAdmin() && !caps.Has(models.PermManageCategories) {
		return nil, models.ErrForbidden
	}
	return s.categoryRepo.GetByID(id)
}

func (s *categoryService) GetCategories(caps models.Capabilities) ([]models.Category, error) {
	if !caps.IsAdmin() && !caps.Has(models.PermManageCategories) {
		return nil, models.ErrForbidden
	}
	return s.categoryRepo.GetAll()
}

func (s *categoryService) UpdateCategory(id uint, req models.UpdateCategoryRequest, caps models.Capabilities) (*models.Category, error) {
	if !caps.IsAdmin() && !caps.Has(models.PermManageCategories) {
		return nil, models.ErrForbidden
	}

	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		category.Name = req.Name
	}
	if req.Description != "" {
		category.Description = req.Description
	}
	if req.Type != "" {
		if !req.Type.IsValid() {
			return nil, errors.New("invalid category type")
		}
		category.Type = req.Type
	}
	if req.State != nil {
		category.State = *req.State
	}
	if req.IsModerated != nil {
		category.IsModerated = *req.IsModerated
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}
