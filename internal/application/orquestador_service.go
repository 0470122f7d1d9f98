package application

import (
	"fmt"
	"time"

	"github.com/DoukeUCB/HotelManagement-sub000/internal/domain"
	"github.com/google/uuid"
)

// EntradaHabitacion es una habitación a reservar dentro de una corrida
// masiva: un rango de fechas y la lista de huéspedes que la ocupan.
type EntradaHabitacion struct {
	HabitacionID uuid.UUID
	FechaEntrada time.Time
	FechaSalida  time.Time
	Huespedes    []uuid.UUID
}

// OrquestadorService ejecuta la corrida de reserva masiva: dada una
// cabecera y una lista de habitaciones con sus huéspedes, crea un detalle
// por cada par habitación+huésped y aplica la transición Free→Reserved una
// sola vez por habitación distinta, todo como una única unidad atómica.
// Cualquier fallo en cualquier paso descarta todo lo hecho en la corrida y
// propaga el error original sin alterar.
type OrquestadorService struct {
	detalleRepo  domain.ReservaDetalleRepository
	reservaRepo  domain.ReservaRepository
	refValidator *RefValidator
}

// NewOrquestadorService crea una nueva instancia del orquestador de reservas
func NewOrquestadorService(
	detalleRepo domain.ReservaDetalleRepository,
	reservaRepo domain.ReservaRepository,
	refValidator *RefValidator,
) *OrquestadorService {
	return &OrquestadorService{
		detalleRepo:  detalleRepo,
		reservaRepo:  reservaRepo,
		refValidator: refValidator,
	}
}

// CrearDetallesBulk crea todos los detalles de las entradas indicadas bajo
// la cabecera dada. Las validaciones corren completas antes de cualquier
// escritura; la persistencia y las transiciones de habitación ocurren en
// una sola transacción de base de datos.
func (s *OrquestadorService) CrearDetallesBulk(reservaID uuid.UUID, entradas []EntradaHabitacion) ([]domain.ReservaDetalle, error) {
	reserva, err := s.reservaRepo.GetByID(reservaID)
	if err != nil {
		return nil, fmt.Errorf("error al obtener reserva: %w", err)
	}
	if reserva == nil {
		return nil, domain.NewNotFound("reserva", reservaID)
	}

	valErr := &domain.ValidationError{}
	if len(entradas) == 0 {
		valErr.Agregar("rooms", "la reserva debe incluir al menos una habitación")
		return nil, valErr
	}

	var detalles []domain.ReservaDetalle
	var habitaciones []uuid.UUID
	vistas := make(map[uuid.UUID]bool)

	for i, entrada := range entradas {
		for _, ce := range ValidarFechasEstadia(entrada.FechaEntrada, entrada.FechaSalida, true) {
			valErr.Agregar(fmt.Sprintf("rooms[%d].%s", i, ce.Campo), ce.Mensaje)
		}

		existe, err := s.refValidator.HabitacionExiste(entrada.HabitacionID)
		if err != nil {
			return nil, err
		}
		if !existe {
			valErr.Agregar(fmt.Sprintf("rooms[%d].roomId", i), fmt.Sprintf("la habitación %s no existe", entrada.HabitacionID))
		}

		if len(entrada.Huespedes) == 0 {
			valErr.Agregar(fmt.Sprintf("rooms[%d].guestIds", i), "debe indicar al menos un huésped")
		}

		for j, personID := range entrada.Huespedes {
			existe, err := s.refValidator.PersonaExiste(personID)
			if err != nil {
				return nil, err
			}
			if !existe {
				valErr.Agregar(fmt.Sprintf("rooms[%d].guestIds[%d]", i, j), fmt.Sprintf("el huésped %s no existe", personID))
				continue
			}

			detalles = append(detalles, domain.ReservaDetalle{
				ReservaID:    reservaID,
				HabitacionID: entrada.HabitacionID,
				PersonID:     personID,
				FechaEntrada: entrada.FechaEntrada,
				FechaSalida:  entrada.FechaSalida,
			})
		}

		// La transición se aplica una sola vez por habitación distinta,
		// sin importar cuántos huéspedes o entradas la referencien.
		if !vistas[entrada.HabitacionID] {
			vistas[entrada.HabitacionID] = true
			habitaciones = append(habitaciones, entrada.HabitacionID)
		}
	}

	if !valErr.Vacio() {
		return nil, valErr
	}

	return s.detalleRepo.CreateBulk(reservaID, detalles, habitaciones)
}
