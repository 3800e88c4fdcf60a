package usecase

import (
	"context"

	"github.com/dorozco/pedidos-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repositorios atados a una misma transacción.
// La resolución de categoría y la escritura del pedido forman una sola
// unidad atómica: o se persiste todo o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orders repository.OrderRepository,
		categories repository.CategoryRepository,
	) error) error
}
