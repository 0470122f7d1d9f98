package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Person representa a un huésped: la persona natural que ocupa una
// habitación. El núcleo de reservas solo la referencia.
type Person struct {
	PersonID       uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	FirstSurname   string    `json:"firstSurname"`
	SecondSurname  *string   `json:"secondSurname,omitempty"` // Puntero para permitir NULL
	DocumentNumber string    `json:"documentNumber"`
	Phone          *string   `json:"phone,omitempty"`
	BirthDate      time.Time `json:"birthDate"`
	Active         bool      `json:"active"`
}

// NombreCompleto devuelve el nombre para mostrar del huésped.
func (p *Person) NombreCompleto() string {
	partes := []string{p.Name, p.FirstSurname}
	if p.SecondSurname != nil && *p.SecondSurname != "" {
		partes = append(partes, *p.SecondSurname)
	}
	return strings.Join(partes, " ")
}

// PersonRepository define las operaciones de lectura con huéspedes
type PersonRepository interface {
	// Exists indica si el huésped existe y está activo
	Exists(id uuid.UUID) (bool, error)
	// GetByID obtiene un huésped; (nil, nil) si no existe
	GetByID(id uuid.UUID) (*Person, error)
}
