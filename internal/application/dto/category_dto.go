package dto

// CategoryInput referencia a una categoría por nombre dentro de un pedido.
type CategoryInput struct {
	Name string `json:"name"`
}

// CreateCategoryRequest entrada para crear una categoría directamente.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// UpdateCategoryRequest entrada para renombrar una categoría.
type UpdateCategoryRequest struct {
	Name *string `json:"name"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
