package application

import (
	"fmt"
	"log"
	"time"

	"github.com/DoukeUCB/HotelManagement-sub000/internal/domain"
	"github.com/DoukeUCB/HotelManagement-sub000/internal/email"
	"github.com/google/uuid"
)

// ReservaService administra las cabeceras de reserva.
type ReservaService struct {
	reservaRepo  domain.ReservaRepository
	clientRepo   domain.ClientRepository
	refValidator *RefValidator
	emailClient  *email.Client
}

// NewReservaService crea una nueva instancia del servicio de reservas
func NewReservaService(
	reservaRepo domain.ReservaRepository,
	clientRepo domain.ClientRepository,
	refValidator *RefValidator,
	emailClient *email.Client,
) *ReservaService {
	return &ReservaService{
		reservaRepo:  reservaRepo,
		clientRepo:   clientRepo,
		refValidator: refValidator,
		emailClient:  emailClient,
	}
}

// Create valida la referencia al cliente y persiste una nueva cabecera.
// El monto total lo indica el llamador; no se deriva de las tarifas.
func (s *ReservaService) Create(clienteID uuid.UUID, estado domain.EstadoReserva, montoTotal float64) (*domain.Reserva, error) {
	valErr := &domain.ValidationError{}

	if estado == "" {
		estado = domain.ReservaPending
	}
	if !estado.Valido() {
		valErr.Agregar("status", fmt.Sprintf("estado de reserva inválido: %s", estado))
	}
	if montoTotal < 0 {
		valErr.Agregar("totalAmount", "el monto total no puede ser negativo")
	}
	if !valErr.Vacio() {
		return nil, valErr
	}

	existe, err := s.refValidator.ClienteExiste(clienteID)
	if err != nil {
		return nil, err
	}
	if !existe {
		return nil, domain.NewNotFound("cliente", clienteID)
	}

	reserva := &domain.Reserva{
		ClienteID:     clienteID,
		Estado:        estado,
		MontoTotal:    montoTotal,
		FechaCreacion: time.Now(),
	}

	if err := s.reservaRepo.Create(reserva); err != nil {
		return nil, fmt.Errorf("error al crear reserva: %w", err)
	}

	return reserva, nil
}

// GetByID obtiene una cabecera con el nombre del cliente resuelto
func (s *ReservaService) GetByID(id uuid.UUID) (*domain.Reserva, error) {
	reserva, err := s.reservaRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error al obtener reserva: %w", err)
	}
	if reserva == nil {
		return nil, domain.NewNotFound("reserva", id)
	}
	return reserva, nil
}

// GetAll obtiene todas las cabeceras con el nombre del cliente resuelto
func (s *ReservaService) GetAll() ([]domain.Reserva, error) {
	return s.reservaRepo.GetAll()
}

// Update aplica una actualización parcial sobre una cabecera existente.
// Solo los campos provistos se sobrescriben; si cambia el cliente se
// vuelve a validar la referencia.
func (s *ReservaService) Update(id uuid.UUID, cambios domain.ReservaUpdate) (*domain.Reserva, error) {
	reserva, err := s.reservaRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error al obtener reserva: %w", err)
	}
	if reserva == nil {
		return nil, domain.NewNotFound("reserva", id)
	}

	estadoAnterior := reserva.Estado

	if cambios.ClienteID != nil {
		existe, err := s.refValidator.ClienteExiste(*cambios.ClienteID)
		if err != nil {
			return nil, err
		}
		if !existe {
			return nil, domain.NewNotFound("cliente", *cambios.ClienteID)
		}
		reserva.ClienteID = *cambios.ClienteID
	}

	valErr := &domain.ValidationError{}
	if cambios.Estado != nil {
		if !cambios.Estado.Valido() {
			valErr.Agregar("status", fmt.Sprintf("estado de reserva inválido: %s", *cambios.Estado))
		} else {
			reserva.Estado = *cambios.Estado
		}
	}
	if cambios.MontoTotal != nil {
		if *cambios.MontoTotal < 0 {
			valErr.Agregar("totalAmount", "el monto total no puede ser negativo")
		} else {
			reserva.MontoTotal = *cambios.MontoTotal
		}
	}
	if !valErr.Vacio() {
		return nil, valErr
	}

	if err := s.reservaRepo.Update(reserva); err != nil {
		return nil, fmt.Errorf("error al actualizar reserva: %w", err)
	}

	// El email de confirmación es best-effort: nunca falla la operación.
	if estadoAnterior != domain.ReservaConfirmed && reserva.Estado == domain.ReservaConfirmed {
		s.enviarEmailConfirmacion(reserva)
	}

	return reserva, nil
}

// Delete elimina la cabecera y, en cascada, todos sus detalles. El cliente,
// las habitaciones y los huéspedes referenciados no se tocan.
func (s *ReservaService) Delete(id uuid.UUID) error {
	reserva, err := s.reservaRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("error al obtener reserva: %w", err)
	}
	if reserva == nil {
		return domain.NewNotFound("reserva", id)
	}

	if err := s.reservaRepo.Delete(id); err != nil {
		return fmt.Errorf("error al eliminar reserva: %w", err)
	}
	return nil
}

// enviarEmailConfirmacion envía el correo de confirmación de la reserva
func (s *ReservaService) enviarEmailConfirmacion(reserva *domain.Reserva) {
	if s.emailClient == nil {
		return
	}

	cliente, err := s.clientRepo.GetByID(reserva.ClienteID)
	if err != nil || cliente == nil {
		log.Printf("error al obtener email del cliente para reserva %s: %v", reserva.ID, err)
		return
	}

	info := email.ReservaInfo{
		ID:            reserva.ID.String(),
		ClienteEmail:  cliente.Email,
		ClienteNombre: cliente.RazonSocial,
		Estado:        string(reserva.Estado),
		MontoTotal:    reserva.MontoTotal,
		FechaCreacion: reserva.FechaCreacion,
	}

	if err := s.emailClient.SendReservaConfirmacion(info); err != nil {
		log.Printf("error al enviar email de confirmación de reserva %s: %v", reserva.ID, err)
	}
}
