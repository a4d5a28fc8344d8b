package service

import (
	"errors"

	"go-catalog-api/internal/apperr"
	"go-catalog-api/internal/model"
	"go-catalog-api/internal/repository"
	"go-catalog-api/internal/ws"

	"gorm.io/gorm"
)

type ProductService interface {
	GetAll() ([]model.Product, error)
	GetByID(id uint) (*model.Product, error)
	GetByCategory(categoryID uint) ([]model.Product, error)
	Create(req *CreateProductRequest) (*model.Product, error)
	Update(id uint, req *UpdateProductRequest) (*model.Product, error)
	Delete(id uint) (*model.Product, error)
}

type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Image       string  `json:"image"`
	Stock       *int    `json:"stock" validate:"required,gte=0"`
	CategoryID  uint    `json:"category_id" validate:"required"`
}

// UpdateProductRequest is a partial patch; nil fields are left untouched.
type UpdateProductRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1"`
	Description *string  `json:"description" validate:"omitempty,min=1"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Image       *string  `json:"image"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
	CategoryID  *uint    `json:"category_id" validate:"omitempty,gt=0"`
}

type productService struct {
	productRepo repository.ProductRepository
	hub         *ws.Hub
}

func NewProductService(productRepo repository.ProductRepository, hub *ws.Hub) ProductService {
	return &productService{
		productRepo: productRepo,
		hub:         hub,
	}
}

func (s *productService) GetAll() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *productService) GetByID(id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) GetByCategory(categoryID uint) ([]model.Product, error) {
	return s.productRepo.FindByCategory(categoryID)
}

func (s *productService) Create(req *CreateProductRequest) (*model.Product, error) {
	product := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Stock:       *req.Stock,
		CategoryID:  req.CategoryID,
	}

	// Referential integrity of CategoryID is enforced by the store's
	// foreign key; a violation propagates as an infrastructure failure.
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	if s.hub != nil {
		go s.hub.Publish("product_created", product)
	}
	return product, nil
}

func (s *productService) Update(id uint, req *UpdateProductRequest) (*model.Product, error) {
	product, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
		product.Category = nil // stale association, reloaded below
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}

	// Reload so the response carries the current category association
	updated, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if s.hub != nil {
		go s.hub.Publish("product_updated", updated)
	}
	return updated, nil
}

func (s *productService) Delete(id uint) (*model.Product, error) {
	product, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.Delete(id); err != nil {
		return nil, err
	}

	if s.hub != nil {
		go s.hub.Publish("product_deleted", product)
	}
	return product, nil
}
