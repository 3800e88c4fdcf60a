package dto

import (
	"fmt"
	"strings"
	"time"
)

// ErrorResponse cuerpo de error HTTP. Fields solo se incluye en errores de validación.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// dateLayout formato de fecha sin hora usado en la API.
const dateLayout = "2006-01-02"

// Date fecha sin componente horario, serializada como "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate construye una Date a partir de año, mes y día.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

// MarshalJSON serializa la fecha como "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON acepta "YYYY-MM-DD".
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return fmt.Errorf("fecha inválida %q (se espera YYYY-MM-DD)", s)
	}
	d.Time = t
	return nil
}
