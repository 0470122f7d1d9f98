package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrIDInvalido se devuelve cuando un identificador no tiene formato UUID
// válido. Los handlers lo traducen a una respuesta 400 antes de consultar
// la base de datos.
var ErrIDInvalido = errors.New("identificador inválido")

// ErrConflict se devuelve cuando una operación no puede ejecutarse por
// registros dependientes existentes. Los handlers lo traducen a 409.
var ErrConflict = errors.New("operación en conflicto con registros existentes")

// ErrHabitacionNoDisponible se devuelve cuando la transición Free→Reserved
// encuentra la habitación en otro estado. Aborta la transacción completa.
var ErrHabitacionNoDisponible = errors.New("la habitación no está disponible")

// NotFoundError indica que una entidad referenciada no existe.
type NotFoundError struct {
	Entidad string
	ID      uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s con ID %s no encontrado", e.Entidad, e.ID)
}

// NewNotFound construye un NotFoundError para la entidad indicada.
func NewNotFound(entidad string, id uuid.UUID) *NotFoundError {
	return &NotFoundError{Entidad: entidad, ID: id}
}

// CampoError es un mensaje de validación asociado a un campo de la petición.
type CampoError struct {
	Campo   string `json:"field"`
	Mensaje string `json:"message"`
}

// ValidationError agrega todas las violaciones de reglas de negocio de una
// petición, identificadas por campo. Se acumulan todas antes de responder,
// de modo que el cliente recibe cada error independiente en una sola llamada.
type ValidationError struct {
	Campos []CampoError
}

func (e *ValidationError) Error() string {
	if len(e.Campos) == 0 {
		return "error de validación"
	}
	msgs := make([]string, 0, len(e.Campos))
	for _, c := range e.Campos {
		msgs = append(msgs, fmt.Sprintf("%s: %s", c.Campo, c.Mensaje))
	}
	return "error de validación: " + strings.Join(msgs, "; ")
}

// Agregar añade un mensaje para el campo indicado.
func (e *ValidationError) Agregar(campo, mensaje string) {
	e.Campos = append(e.Campos, CampoError{Campo: campo, Mensaje: mensaje})
}

// AgregarTodos añade una lista de errores de campo ya construida.
func (e *ValidationError) AgregarTodos(campos []CampoError) {
	e.Campos = append(e.Campos, campos...)
}

// Vacio indica si no se registró ninguna violación.
func (e *ValidationError) Vacio() bool {
	return len(e.Campos) == 0
}

// PorCampo agrupa los mensajes por nombre de campo para la respuesta JSON.
func (e *ValidationError) PorCampo() map[string][]string {
	agrupado := make(map[string][]string, len(e.Campos))
	for _, c := range e.Campos {
		agrupado[c.Campo] = append(agrupado[c.Campo], c.Mensaje)
	}
	return agrupado
}
