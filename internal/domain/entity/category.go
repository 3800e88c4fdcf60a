package entity

import "time"

// Category agrupa pedidos por tipo. Name es único: las peticiones que referencian
// una categoría por nombre reutilizan la fila existente o crean una nueva.
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
