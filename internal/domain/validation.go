package domain

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

// phoneRegex formato de teléfono aceptado: prefijo + opcional, 9 a 15 dígitos.
var phoneRegex = regexp.MustCompile(`^\+?1?\d{9,15}$`)

// ValidationError acumula errores por campo. Se mapea a HTTP 400 con el detalle
// de los campos ofensores.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError crea un acumulador vacío.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

// Add registra un error para un campo.
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = message
}

// HasErrors indica si se registró al menos un campo inválido.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// Error implementa error con los campos en orden estable.
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validación fallida: " + strings.Join(fields, ", ")
}

// ValidPhone verifica el formato del teléfono de contacto.
func ValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// ValidDeadline verifica que la fecha límite no sea anterior a hoy (fecha local del servidor).
func ValidDeadline(deadline time.Time) bool {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	d := time.Date(deadline.Year(), deadline.Month(), deadline.Day(), 0, 0, 0, 0, now.Location())
	return !d.Before(today)
}
