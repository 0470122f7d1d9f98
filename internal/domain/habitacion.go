package domain

import "github.com/google/uuid"

// EstadoHabitacion es el estado de ocupación de una habitación física.
type EstadoHabitacion string

const (
	HabitacionFree         EstadoHabitacion = "Free"
	HabitacionReserved     EstadoHabitacion = "Reserved"
	HabitacionOccupied     EstadoHabitacion = "Occupied"
	HabitacionOutOfService EstadoHabitacion = "OutOfService"
	HabitacionMaintenance  EstadoHabitacion = "Maintenance"
)

// TipoHabitacion representa la plantilla de tarifa y capacidad de una habitación
type TipoHabitacion struct {
	ID              uuid.UUID `json:"id"`
	Titulo          string    `json:"title"`
	CapacidadMaxima int       `json:"maxCapacity"`
	PrecioBase      float64   `json:"basePrice"`
}

// Habitacion representa una habitación física del hotel. El núcleo de
// reservas solo aplica la transición Free→Reserved; el resto de los
// estados se administra por los endpoints de mantenimiento de habitaciones.
type Habitacion struct {
	ID               uuid.UUID        `json:"id"`
	TipoHabitacionID uuid.UUID        `json:"roomTypeId"`
	Numero           string           `json:"number"`
	Piso             string           `json:"floor"`
	Estado           EstadoHabitacion `json:"status"`

	TipoHabitacion *TipoHabitacion `json:"roomType,omitempty"`
}

// HabitacionRepository define las operaciones de lectura sobre habitaciones.
// La transición de estado no se expone aquí: se aplica junto con la
// inserción de detalles, dentro de la misma transacción (ver
// ReservaDetalleRepository.CreateBulk).
type HabitacionRepository interface {
	// GetAllRooms devuelve todas las habitaciones con su tipo resuelto
	GetAllRooms() ([]Habitacion, error)
	// GetRoomByID obtiene una habitación; (nil, nil) si no existe
	GetRoomByID(id uuid.UUID) (*Habitacion, error)
	// Exists indica si la habitación existe
	Exists(id uuid.UUID) (bool, error)
}
