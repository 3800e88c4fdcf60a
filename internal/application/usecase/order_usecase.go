package usecase

import (
	"context"
	"time"

	"github.com/dorozco/pedidos-api/internal/application/dto"
	"github.com/dorozco/pedidos-api/internal/domain"
	"github.com/dorozco/pedidos-api/internal/domain/entity"
	"github.com/dorozco/pedidos-api/internal/domain/repository"
)

// OrderUseCase reglas de negocio de pedidos: validación de teléfono y fecha límite,
// resolución de categoría por nombre y visibilidad acotada al dueño.
type OrderUseCase struct {
	tx        TxRunner
	orderRepo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(tx TxRunner, orderRepo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{tx: tx, orderRepo: orderRepo}
}

// Create valida y persiste un pedido del usuario autenticado. La categoría se
// resuelve por nombre (reutiliza o crea) dentro de la misma transacción que el
// insert del pedido; una validación fallida no escribe nada.
func (uc *OrderUseCase) Create(ctx context.Context, userID string, in dto.CreateOrderRequest) (*dto.OrderDetailResponse, error) {
	v := domain.NewValidationError()
	if in.ContactName == "" {
		v.Add("contact_name", "es requerido")
	}
	if in.ContactPhone == "" {
		v.Add("contact_phone", "es requerido")
	} else if !domain.ValidPhone(in.ContactPhone) {
		v.Add("contact_phone", "formato inválido, se espera '+999999999' con 9 a 15 dígitos")
	}
	if in.Description == "" {
		v.Add("description", "es requerido")
	}
	if in.RealStateAgency == "" {
		v.Add("real_state_agency", "es requerido")
	}
	if in.Company == "" {
		v.Add("company", "es requerido")
	}
	if in.Deadline == nil {
		v.Add("deadline", "es requerido")
	} else if !domain.ValidDeadline(in.Deadline.Time) {
		v.Add("deadline", "no puede ser una fecha pasada")
	}
	if in.Category == nil || in.Category.Name == "" {
		v.Add("category", "es requerido")
	}
	if v.HasErrors() {
		return nil, v
	}

	now := time.Now()
	order := &entity.Order{
		UserID:          userID,
		ContactName:     in.ContactName,
		ContactPhone:    in.ContactPhone,
		Description:     in.Description,
		RealStateAgency: in.RealStateAgency,
		Company:         in.Company,
		Deadline:        in.Deadline.Time,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	err := uc.tx.Run(ctx, func(orders repository.OrderRepository, categories repository.CategoryRepository) error {
		category, err := categories.GetOrCreateByName(in.Category.Name)
		if err != nil {
			return err
		}
		order.CategoryID = category.ID
		order.Category = category
		return orders.Create(order)
	})
	if err != nil {
		return nil, err
	}
	return toOrderDetailResponse(order), nil
}

// Update aplica una actualización parcial o total sobre un pedido del usuario.
// Devuelve (nil, nil) si el pedido no existe o pertenece a otro usuario. El
// dueño nunca cambia; si el payload trae categoría se re-resuelve por nombre.
func (uc *OrderUseCase) Update(ctx context.Context, userID string, id int64, in dto.UpdateOrderRequest) (*dto.OrderDetailResponse, error) {
	order, err := uc.orderRepo.GetByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}

	v := domain.NewValidationError()
	if in.ContactPhone != nil && !domain.ValidPhone(*in.ContactPhone) {
		v.Add("contact_phone", "formato inválido, se espera '+999999999' con 9 a 15 dígitos")
	}
	if in.Deadline != nil && !domain.ValidDeadline(in.Deadline.Time) {
		v.Add("deadline", "no puede ser una fecha pasada")
	}
	if in.Category != nil && in.Category.Name == "" {
		v.Add("category", "name es requerido")
	}
	if v.HasErrors() {
		return nil, v
	}

	if in.ContactName != nil {
		order.ContactName = *in.ContactName
	}
	if in.ContactPhone != nil {
		order.ContactPhone = *in.ContactPhone
	}
	if in.Description != nil {
		order.Description = *in.Description
	}
	if in.RealStateAgency != nil {
		order.RealStateAgency = *in.RealStateAgency
	}
	if in.Company != nil {
		order.Company = *in.Company
	}
	if in.Deadline != nil {
		order.Deadline = in.Deadline.Time
	}
	order.UpdatedAt = time.Now()

	err = uc.tx.Run(ctx, func(orders repository.OrderRepository, categories repository.CategoryRepository) error {
		if in.Category != nil {
			category, err := categories.GetOrCreateByName(in.Category.Name)
			if err != nil {
				return err
			}
			order.CategoryID = category.ID
			order.Category = category
		}
		return orders.Update(order)
	})
	if err != nil {
		return nil, err
	}
	return toOrderDetailResponse(order), nil
}

// GetByID devuelve el detalle de un pedido del usuario o nil si no existe/no es suyo.
func (uc *OrderUseCase) GetByID(userID string, id int64) (*dto.OrderDetailResponse, error) {
	order, err := uc.orderRepo.GetByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderDetailResponse(order), nil
}

// List devuelve los pedidos del usuario, más recientes primero.
func (uc *OrderUseCase) List(userID string) ([]dto.OrderResponse, error) {
	orders, err := uc.orderRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out, nil
}

// Delete elimina un pedido del usuario. Devuelve false si no existe o no es suyo.
func (uc *OrderUseCase) Delete(userID string, id int64) (bool, error) {
	return uc.orderRepo.DeleteByIDAndUser(id, userID)
}

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:              o.ID,
		ContactName:     o.ContactName,
		ContactPhone:    o.ContactPhone,
		RealStateAgency: o.RealStateAgency,
		Company:         o.Company,
		Deadline:        dto.Date{Time: o.Deadline},
	}
	if o.Category != nil {
		resp.Category = dto.CategoryResponse{ID: o.Category.ID, Name: o.Category.Name}
	} else {
		resp.Category = dto.CategoryResponse{ID: o.CategoryID}
	}
	return resp
}

func toOrderDetailResponse(o *entity.Order) *dto.OrderDetailResponse {
	return &dto.OrderDetailResponse{
		OrderResponse: toOrderResponse(o),
		Description:   o.Description,
	}
}
