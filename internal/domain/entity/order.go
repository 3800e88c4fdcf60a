package entity

import "time"

// Order representa un pedido. UserID se fija una sola vez al crear, a partir de la
// identidad autenticada de la petición; ninguna actualización puede cambiarlo.
type Order struct {
	ID              int64
	UserID          string
	ContactName     string
	ContactPhone    string
	Description     string
	RealStateAgency string
	Company         string
	Deadline        time.Time // solo fecha, sin hora
	CategoryID      int64
	Category        *Category // hidratada en lecturas vía JOIN
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
