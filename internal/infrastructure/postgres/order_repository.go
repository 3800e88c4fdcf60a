package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dorozco/pedidos-api/internal/domain/entity"
	"github.com/dorozco/pedidos-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación sobre PostgreSQL (usable con pool o tx).
// Todas las consultas de lectura y borrado filtran por user_id: un pedido ajeno
// se comporta como inexistente.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste un nuevo pedido y asigna el ID generado por la base.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (user_id, contact_name, contact_phone, description, real_state_agency, company, deadline, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		order.UserID, order.ContactName, order.ContactPhone, order.Description,
		order.RealStateAgency, order.Company, order.Deadline, order.CategoryID,
		order.CreatedAt, order.UpdatedAt,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

const orderColumns = `
	o.id, o.user_id, o.contact_name, o.contact_phone, o.description,
	o.real_state_agency, o.company, o.deadline, o.category_id,
	o.created_at, o.updated_at, c.id, c.name, c.created_at, c.updated_at`

// GetByIDAndUser obtiene un pedido del dueño indicado con su categoría.
// Devuelve (nil, nil) si no existe o pertenece a otro usuario.
func (r *OrderRepo) GetByIDAndUser(id int64, userID string) (*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		JOIN categories c ON c.id = o.category_id
		WHERE o.id = $1 AND o.user_id = $2`
	o, err := scanOrder(r.q.QueryRow(context.Background(), query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// Update sobreescribe los campos mutables del pedido. user_id no aparece en el
// SET: la propiedad se fija al crear y no se transfiere.
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `
		UPDATE orders
		SET contact_name = $2, contact_phone = $3, description = $4,
		    real_state_agency = $5, company = $6, deadline = $7,
		    category_id = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.ContactName, order.ContactPhone, order.Description,
		order.RealStateAgency, order.Company, order.Deadline,
		order.CategoryID, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// DeleteByIDAndUser elimina un pedido del dueño. Devuelve false si no existe o no es suyo.
func (r *OrderRepo) DeleteByIDAndUser(id int64, userID string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM orders WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete order: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListByUser devuelve los pedidos del usuario con su categoría, id descendente.
func (r *OrderRepo) ListByUser(userID string) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		JOIN categories c ON c.id = o.category_id
		WHERE o.user_id = $1
		ORDER BY o.id DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	var c entity.Category
	err := row.Scan(
		&o.ID, &o.UserID, &o.ContactName, &o.ContactPhone, &o.Description,
		&o.RealStateAgency, &o.Company, &o.Deadline, &o.CategoryID,
		&o.CreatedAt, &o.UpdatedAt, &c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.Category = &c
	return &o, nil
}
