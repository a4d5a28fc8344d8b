package service

import (
	"errors"
	"fmt"

	"go-catalog-api/internal/apperr"
	"go-catalog-api/internal/model"
	"go-catalog-api/internal/repository"
	"go-catalog-api/internal/ws"

	"gorm.io/gorm"
)

type CategoryService interface {
	GetAll() ([]model.Category, error)
	GetByID(id uint) (*model.Category, error)
	Create(req *CreateCategoryRequest) (*model.Category, error)
	Update(id uint, req *UpdateCategoryRequest) (*model.Category, error)
	Delete(id uint) (*model.Category, error)
	CountProducts(categoryID uint) (int64, error)
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// UpdateCategoryRequest is a partial patch; nil fields are left untouched.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	hub          *ws.Hub
}

func NewCategoryService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository, hub *ws.Hub) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		hub:          hub,
	}
}

func (s *categoryService) GetAll() ([]model.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *categoryService) GetByID(id uint) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Create(req *CreateCategoryRequest) (*model.Category, error) {
	category := &model.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Update(id uint, req *UpdateCategoryRequest) (*model.Category, error) {
	category, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category only when no product references it. The guard
// runs in the service so the caller gets the dependent count in the error.
func (s *categoryService) Delete(id uint) (*model.Category, error) {
	category, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	count, err := s.productRepo.CountByCategory(id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("category has %d associated product(s), reassign or delete them first: %w", count, apperr.ErrConflict)
	}

	if err := s.categoryRepo.Delete(id); err != nil {
		return nil, err
	}

	if s.hub != nil {
		go s.hub.Publish("category_deleted", category)
	}
	return category, nil
}

func (s *categoryService) CountProducts(categoryID uint) (int64, error) {
	return s.productRepo.CountByCategory(categoryID)
}
