package repository

import "github.com/dorozco/pedidos-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	// GetOrCreateByName devuelve la categoría existente con ese nombre exacto o la crea.
	// Es atómico frente a escrituras concurrentes: nunca duplica un nombre.
	GetOrCreateByName(name string) (*entity.Category, error)
	GetByID(id int64) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Update(category *entity.Category) error
	// Delete elimina la categoría. Devuelve false si no existía.
	Delete(id int64) (bool, error)
}
