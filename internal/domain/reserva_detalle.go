package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReservaDetalle representa una estadía concreta: una habitación ocupada
// por un huésped durante un rango de fechas, bajo una cabecera de reserva.
// Cada par habitación+huésped de una petición masiva produce exactamente
// una fila de detalle.
type ReservaDetalle struct {
	ID           uuid.UUID `json:"id"`
	ReservaID    uuid.UUID `json:"reservationId"`
	HabitacionID uuid.UUID `json:"roomId"`
	PersonID     uuid.UUID `json:"guestId"`
	FechaEntrada time.Time `json:"checkIn"`
	FechaSalida  time.Time `json:"checkOut"`

	// Campos resueltos con joins al leer; no se persisten en la tabla.
	NumeroHabitacion string `json:"roomNumber,omitempty"`
	NombreHuesped    string `json:"guestName,omitempty"`
}

// DetalleUpdate transporta una actualización parcial de un detalle. Solo
// los campos no nulos se aplican sobre el registro existente.
type DetalleUpdate struct {
	HabitacionID *uuid.UUID
	PersonID     *uuid.UUID
	FechaEntrada *time.Time
	FechaSalida  *time.Time
}

// ReservaDetalleRepository define las operaciones con los detalles de reserva
type ReservaDetalleRepository interface {
	// CreateBulk inserta todos los detalles y aplica la transición
	// Free→Reserved sobre cada habitación indicada, dentro de una sola
	// transacción. Cualquier fallo revierte todo; no hay éxito parcial.
	// Devuelve las filas creadas con número de habitación y nombre de
	// huésped resueltos.
	CreateBulk(reservaID uuid.UUID, detalles []ReservaDetalle, habitaciones []uuid.UUID) ([]ReservaDetalle, error)
	// GetByID obtiene un detalle con sus campos resueltos; (nil, nil) si no existe
	GetByID(id uuid.UUID) (*ReservaDetalle, error)
	// GetByReservaID obtiene todos los detalles de una cabecera
	GetByReservaID(reservaID uuid.UUID) ([]ReservaDetalle, error)
	// Update sobrescribe habitación, huésped y fechas de un detalle existente
	Update(detalle *ReservaDetalle) error
	// Delete elimina un único detalle
	Delete(id uuid.UUID) error
}
