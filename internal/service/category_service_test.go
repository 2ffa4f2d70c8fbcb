package service

import (
	"context"
	"testing"

	"notehub-be/internal/dto"
	"notehub-be/internal/entity"
	"notehub-be/internal/pkg/serverutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategoryTrimsName(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepository())

	res, err := svc.Create(context.Background(), &dto.CreateCategoryRequest{Name: "  reading  "})
	require.NoError(t, err)
	assert.Equal(t, "reading", res.Name)
	assert.NotZero(t, res.Id)
}

func TestCreateCategoryRejectsBlankName(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepository())

	_, err := svc.Create(context.Background(), &dto.CreateCategoryRequest{Name: "   "})
	assert.ErrorIs(t, err, serverutils.ErrBadRequest)
}

func TestCreateCategoryRejectsDuplicateName(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepository(&entity.Category{Id: 1, Name: "reading"}))

	_, err := svc.Create(context.Background(), &dto.CreateCategoryRequest{Name: "reading"})
	assert.ErrorIs(t, err, serverutils.ErrBadRequest)
}

func TestUpdateCategoryUnknownId(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepository())

	_, err := svc.Update(context.Background(), &dto.UpdateCategoryRequest{Id: 99, Name: "x"})
	assert.ErrorIs(t, err, serverutils.ErrNotFound)
}
