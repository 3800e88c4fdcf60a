package usecase

import (
	"time"

	"github.com/dorozco/pedidos-api/internal/application/dto"
	"github.com/dorozco/pedidos-api/internal/domain/entity"
	"github.com/dorozco/pedidos-api/internal/domain/repository"
)

// CategoryUseCase CRUD de categorías. La creación pasa por el mismo
// lookup-or-create que usan los pedidos, así un nombre repetido devuelve la
// fila existente en lugar de duplicarla.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create devuelve la categoría con ese nombre, creándola si no existe.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetOrCreateByName(in.Name)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List devuelve todas las categorías ordenadas por nombre.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	categories, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

// Update renombra una categoría. Devuelve (nil, nil) si no existe.
func (uc *CategoryUseCase) Update(id int64, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete elimina una categoría. Devuelve false si no existía. Los pedidos que
// la referencian caen por el FK en cascada.
func (uc *CategoryUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name}
}
