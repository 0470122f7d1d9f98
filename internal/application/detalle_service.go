package application

import (
	"fmt"

	"github.com/DoukeUCB/HotelManagement-sub000/internal/domain"
	"github.com/google/uuid"
)

// DetalleService administra los detalles individuales de una reserva:
// una habitación ocupada por un huésped durante un rango de fechas.
type DetalleService struct {
	detalleRepo  domain.ReservaDetalleRepository
	reservaRepo  domain.ReservaRepository
	refValidator *RefValidator
}

// NewDetalleService crea una nueva instancia del servicio de detalles
func NewDetalleService(
	detalleRepo domain.ReservaDetalleRepository,
	reservaRepo domain.ReservaRepository,
	refValidator *RefValidator,
) *DetalleService {
	return &DetalleService{
		detalleRepo:  detalleRepo,
		reservaRepo:  reservaRepo,
		refValidator: refValidator,
	}
}

// Create valida las tres referencias y las fechas, y persiste un detalle.
// Comparte la ruta transaccional del orquestador con una sola entrada, de
// modo que también aplica la transición Free→Reserved de la habitación.
func (s *DetalleService) Create(detalle domain.ReservaDetalle) (*domain.ReservaDetalle, error) {
	reserva, err := s.reservaRepo.GetByID(detalle.ReservaID)
	if err != nil {
		return nil, fmt.Errorf("error al obtener reserva: %w", err)
	}
	if reserva == nil {
		return nil, domain.NewNotFound("reserva", detalle.ReservaID)
	}

	valErr := &domain.ValidationError{}
	valErr.AgregarTodos(ValidarFechasEstadia(detalle.FechaEntrada, detalle.FechaSalida, true))

	if err := s.validarReferencias(&detalle, valErr, "roomId", "guestId"); err != nil {
		return nil, err
	}
	if !valErr.Vacio() {
		return nil, valErr
	}

	creados, err := s.detalleRepo.CreateBulk(
		detalle.ReservaID,
		[]domain.ReservaDetalle{detalle},
		[]uuid.UUID{detalle.HabitacionID},
	)
	if err != nil {
		return nil, err
	}

	return &creados[0], nil
}

// Update aplica una actualización parcial sobre un detalle existente. Solo
// los campos provistos se sobrescriben; las referencias que cambian y el
// par de fechas resultante se vuelven a validar. No aplica transiciones de
// estado de habitación.
func (s *DetalleService) Update(id uuid.UUID, cambios domain.DetalleUpdate) (*domain.ReservaDetalle, error) {
	detalle, err := s.detalleRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error al obtener detalle: %w", err)
	}
	if detalle == nil {
		return nil, domain.NewNotFound("detalle", id)
	}

	valErr := &domain.ValidationError{}

	if cambios.HabitacionID != nil {
		existe, err := s.refValidator.HabitacionExiste(*cambios.HabitacionID)
		if err != nil {
			return nil, err
		}
		if !existe {
			valErr.Agregar("roomId", fmt.Sprintf("la habitación %s no existe", *cambios.HabitacionID))
		} else {
			detalle.HabitacionID = *cambios.HabitacionID
		}
	}
	if cambios.PersonID != nil {
		existe, err := s.refValidator.PersonaExiste(*cambios.PersonID)
		if err != nil {
			return nil, err
		}
		if !existe {
			valErr.Agregar("guestId", fmt.Sprintf("el huésped %s no existe", *cambios.PersonID))
		} else {
			detalle.PersonID = *cambios.PersonID
		}
	}

	if cambios.FechaEntrada != nil {
		detalle.FechaEntrada = *cambios.FechaEntrada
	}
	if cambios.FechaSalida != nil {
		detalle.FechaSalida = *cambios.FechaSalida
	}
	if cambios.FechaEntrada != nil || cambios.FechaSalida != nil {
		valErr.AgregarTodos(ValidarFechasEstadia(detalle.FechaEntrada, detalle.FechaSalida, false))
	}

	if !valErr.Vacio() {
		return nil, valErr
	}

	if err := s.detalleRepo.Update(detalle); err != nil {
		return nil, fmt.Errorf("error al actualizar detalle: %w", err)
	}
	return detalle, nil
}

// Delete elimina un único detalle
func (s *DetalleService) Delete(id uuid.UUID) error {
	detalle, err := s.detalleRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("error al obtener detalle: %w", err)
	}
	if detalle == nil {
		return domain.NewNotFound("detalle", id)
	}

	if err := s.detalleRepo.Delete(id); err != nil {
		return fmt.Errorf("error al eliminar detalle: %w", err)
	}
	return nil
}

// GetByReservaID obtiene el manifiesto completo de habitaciones y huéspedes
// de una cabecera, con números de habitación y nombres resueltos.
func (s *DetalleService) GetByReservaID(reservaID uuid.UUID) ([]domain.ReservaDetalle, error) {
	reserva, err := s.reservaRepo.GetByID(reservaID)
	if err != nil {
		return nil, fmt.Errorf("error al obtener reserva: %w", err)
	}
	if reserva == nil {
		return nil, domain.NewNotFound("reserva", reservaID)
	}

	return s.detalleRepo.GetByReservaID(reservaID)
}

// validarReferencias agrega a valErr los errores de referencia de la
// habitación y el huésped del detalle, con los campos indicados.
func (s *DetalleService) validarReferencias(detalle *domain.ReservaDetalle, valErr *domain.ValidationError, campoHabitacion, campoHuesped string) error {
	existe, err := s.refValidator.HabitacionExiste(detalle.HabitacionID)
	if err != nil {
		return err
	}
	if !existe {
		valErr.Agregar(campoHabitacion, fmt.Sprintf("la habitación %s no existe", detalle.HabitacionID))
	}

	existe, err = s.refValidator.PersonaExiste(detalle.PersonID)
	if err != nil {
		return err
	}
	if !existe {
		valErr.Agregar(campoHuesped, fmt.Sprintf("el huésped %s no existe", detalle.PersonID))
	}

	return nil
}
