package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"notehub-be/internal/dto"
	"notehub-be/internal/entity"
	"notehub-be/internal/pkg/serverutils"
	"notehub-be/internal/repository"
)

type ICategoryService interface {
	Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	GetAll(ctx context.Context) ([]*dto.CategoryResponse, error)
	Show(ctx context.Context, id int64) (*dto.CategoryResponse, error)
	Update(ctx context.Context, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	Delete(ctx context.Context, id int64) error
}

type categoryService struct {
	categoryRepository repository.ICategoryRepository
}

func NewCategoryService(categoryRepository repository.ICategoryRepository) ICategoryService {
	return &categoryService{categoryRepository: categoryRepository}
}

func (c *categoryService) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("category name cannot be empty: %w", serverutils.ErrBadRequest)
	}

	existing, err := c.categoryRepository.GetByName(ctx, name)
	if err != nil && !errors.Is(err, serverutils.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("category name already exists: %w", serverutils.ErrBadRequest)
	}

	category := entity.Category{Name: name}
	err = c.categoryRepository.Create(ctx, &category)
	if err != nil {
		return nil, err
	}

	return &dto.CategoryResponse{Id: category.Id, Name: category.Name}, nil
}

func (c *categoryService) GetAll(ctx context.Context) ([]*dto.CategoryResponse, error) {

	categories, err := c.categoryRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		res = append(res, &dto.CategoryResponse{Id: category.Id, Name: category.Name})
	}

	return res, nil
}

func (c *categoryService) Show(ctx context.Context, id int64) (*dto.CategoryResponse, error) {

	category, err := c.categoryRepository.GetById(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.CategoryResponse{Id: category.Id, Name: category.Name}, nil
}

func (c *categoryService) Update(ctx context.Context, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {

	category, err := c.categoryRepository.GetById(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("category name cannot be empty: %w", serverutils.ErrBadRequest)
	}

	category.Name = name
	err = c.categoryRepository.Update(ctx, category)
	if err != nil {
		return nil, err
	}

	return &dto.CategoryResponse{Id: category.Id, Name: category.Name}, nil
}

func (c *categoryService) Delete(ctx context.Context, id int64) error {

	_, err := c.categoryRepository.GetById(ctx, id)
	if err != nil {
		return err
	}

	return c.categoryRepository.DeleteById(ctx, id)
}
