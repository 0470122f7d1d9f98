package domain

import (
	"time"

	"github.com/google/uuid"
)

type EstadoReserva string

const (
	ReservaPending   EstadoReserva = "Pending"
	ReservaConfirmed EstadoReserva = "Confirmed"
	ReservaCancelled EstadoReserva = "Cancelled"
	ReservaCompleted EstadoReserva = "Completed"
	ReservaNoShow    EstadoReserva = "NoShow"
)

// Valido indica si el estado pertenece al conjunto permitido.
func (e EstadoReserva) Valido() bool {
	switch e {
	case ReservaPending, ReservaConfirmed, ReservaCancelled, ReservaCompleted, ReservaNoShow:
		return true
	}
	return false
}

// Reserva representa la cabecera de una reserva: el vínculo con el cliente
// que factura, su estado y el monto total indicado por el llamador.
type Reserva struct {
	ID            uuid.UUID     `json:"id"`
	ClienteID     uuid.UUID     `json:"customerId"`
	Estado        EstadoReserva `json:"status"`
	MontoTotal    float64       `json:"totalAmount"`
	FechaCreacion time.Time     `json:"createdAt"`

	// NombreCliente se resuelve con un join al leer; no se persiste aquí.
	NombreCliente string `json:"customerName,omitempty"`
}

// ReservaUpdate transporta una actualización parcial de la cabecera. Solo
// los campos no nulos se aplican sobre el registro existente.
type ReservaUpdate struct {
	ClienteID  *uuid.UUID
	Estado     *EstadoReserva
	MontoTotal *float64
}

// ReservaRepository define las operaciones disponibles con las cabeceras de reserva
type ReservaRepository interface {
	// Create persiste una nueva cabecera y asigna su ID
	Create(reserva *Reserva) error
	// GetByID obtiene una cabecera con el nombre del cliente resuelto;
	// devuelve (nil, nil) si no existe
	GetByID(id uuid.UUID) (*Reserva, error)
	// GetAll obtiene todas las cabeceras con el nombre del cliente resuelto
	GetAll() ([]Reserva, error)
	// Update sobrescribe cliente, estado y monto de una cabecera existente
	Update(reserva *Reserva) error
	// Delete elimina la cabecera y sus detalles en una sola transacción
	Delete(id uuid.UUID) error
	// UpdateExpiredReservations marca como Completed las reservas Confirmed
	// cuyo último check-out ya pasó; devuelve cuántas actualizó
	UpdateExpiredReservations() (int64, error)
}
