package application

import (
	"fmt"
	"time"

	"github.com/DoukeUCB/HotelManagement-sub000/internal/domain"
	"github.com/google/uuid"
)

// Zona horaria del hotel (UTC-4, La Paz)
var hotelLocation *time.Location

func init() {
	var err error
	hotelLocation, err = time.LoadLocation("America/La_Paz")
	if err != nil {
		hotelLocation = time.FixedZone("BOT", -4*60*60)
	}
}

// ZonaHotel devuelve la zona horaria en que opera el hotel. Las fechas de
// estadía sin hora se interpretan como medianoche en esta zona.
func ZonaHotel() *time.Location {
	return hotelLocation
}

// hoyHotel retorna la fecha de hoy a las 00:00:00 en la zona horaria del hotel
func hoyHotel() time.Time {
	now := time.Now().In(hotelLocation)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, hotelLocation)
}

// ValidarFechasEstadia aplica las reglas temporales de una estadía: la fecha
// de salida debe ser estrictamente posterior a la de entrada y, al crear, la
// entrada no puede estar en el pasado. Función pura salvo por el reloj; no
// hace I/O. Los mensajes se devuelven con el nombre del campo afectado para
// que el llamador los agregue a su ValidationError.
func ValidarFechasEstadia(entrada, salida time.Time, esCreacion bool) []domain.CampoError {
	var errores []domain.CampoError

	if !salida.After(entrada) {
		errores = append(errores, domain.CampoError{
			Campo:   "checkOut",
			Mensaje: "la fecha de salida debe ser posterior a la fecha de entrada",
		})
	}

	if esCreacion && entrada.Before(hoyHotel()) {
		errores = append(errores, domain.CampoError{
			Campo:   "checkIn",
			Mensaje: "la fecha de entrada no puede estar en el pasado",
		})
	}

	return errores
}

// RefValidator confirma que los identificadores referenciados por una
// operación de escritura correspondan a registros existentes y activos.
// No tiene efectos secundarios; se consulta siempre antes de escribir.
type RefValidator struct {
	clientes     domain.ClientRepository
	habitaciones domain.HabitacionRepository
	personas     domain.PersonRepository
}

// NewRefValidator crea una nueva instancia del validador de referencias
func NewRefValidator(
	clientes domain.ClientRepository,
	habitaciones domain.HabitacionRepository,
	personas domain.PersonRepository,
) *RefValidator {
	return &RefValidator{
		clientes:     clientes,
		habitaciones: habitaciones,
		personas:     personas,
	}
}

// ClienteExiste indica si el cliente existe y está activo
func (v *RefValidator) ClienteExiste(id uuid.UUID) (bool, error) {
	existe, err := v.clientes.Exists(id)
	if err != nil {
		return false, fmt.Errorf("error al verificar cliente: %w", err)
	}
	return existe, nil
}

// HabitacionExiste indica si la habitación existe
func (v *RefValidator) HabitacionExiste(id uuid.UUID) (bool, error) {
	existe, err := v.habitaciones.Exists(id)
	if err != nil {
		return false, fmt.Errorf("error al verificar habitación: %w", err)
	}
	return existe, nil
}

// PersonaExiste indica si el huésped existe y está activo
func (v *RefValidator) PersonaExiste(id uuid.UUID) (bool, error) {
	existe, err := v.personas.Exists(id)
	if err != nil {
		return false, fmt.Errorf("error al verificar huésped: %w", err)
	}
	return existe, nil
}
