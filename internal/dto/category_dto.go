package dto

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type UpdateCategoryRequest struct {
	Id   int64
	Name string `json:"name" validate:"required"`
}

type CategoryResponse struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}
