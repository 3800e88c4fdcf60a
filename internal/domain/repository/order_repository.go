package repository

import "github.com/dorozco/pedidos-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order (DIP).
// Las lecturas y borrados están acotados al dueño: un pedido de otro usuario
// es indistinguible de uno inexistente.
type OrderRepository interface {
	// Create persiste el pedido y asigna su ID.
	Create(order *entity.Order) error
	GetByIDAndUser(id int64, userID string) (*entity.Order, error)
	Update(order *entity.Order) error
	// DeleteByIDAndUser elimina el pedido del dueño. Devuelve false si no existe o no es suyo.
	DeleteByIDAndUser(id int64, userID string) (bool, error)
	// ListByUser devuelve los pedidos del usuario, más recientes primero (id descendente).
	ListByUser(userID string) ([]*entity.Order, error)
}
