package dto

// CreateOrderRequest entrada para crear un pedido. El dueño nunca viene en el
// payload: se toma de la identidad autenticada.
type CreateOrderRequest struct {
	ContactName     string         `json:"contact_name"`
	ContactPhone    string         `json:"contact_phone"`
	Description     string         `json:"description"`
	RealStateAgency string         `json:"real_state_agency"`
	Company         string         `json:"company"`
	Deadline        *Date          `json:"deadline"`
	Category        *CategoryInput `json:"category"`
}

// UpdateOrderRequest actualización parcial o total; nil significa sin cambio.
// No expone el dueño: la propiedad no es transferible.
type UpdateOrderRequest struct {
	ContactName     *string        `json:"contact_name"`
	ContactPhone    *string        `json:"contact_phone"`
	Description     *string        `json:"description"`
	RealStateAgency *string        `json:"real_state_agency"`
	Company         *string        `json:"company"`
	Deadline        *Date          `json:"deadline"`
	Category        *CategoryInput `json:"category"`
}

// OrderResponse salida de un pedido en listados (sin descripción).
type OrderResponse struct {
	ID              int64            `json:"id"`
	ContactName     string           `json:"contact_name"`
	ContactPhone    string           `json:"contact_phone"`
	RealStateAgency string           `json:"real_state_agency"`
	Company         string           `json:"company"`
	Deadline        Date             `json:"deadline"`
	Category        CategoryResponse `json:"category"`
}

// OrderDetailResponse salida de un pedido en detalle (incluye descripción).
type OrderDetailResponse struct {
	OrderResponse
	Description string `json:"description"`
}
