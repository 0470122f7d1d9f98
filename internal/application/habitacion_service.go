package application

import (
	"fmt"

	"github.com/DoukeUCB/HotelManagement-sub000/internal/domain"
	"github.com/google/uuid"
)

// HabitacionService expone las lecturas de habitaciones que el núcleo de
// reservas necesita. La única transición de estado que este núcleo ejecuta
// (Free→Reserved) viaja dentro de la transacción de creación de detalles;
// el resto de las transiciones pertenece al mantenimiento de habitaciones.
type HabitacionService struct {
	repo domain.HabitacionRepository
}

func NewHabitacionService(repo domain.HabitacionRepository) *HabitacionService {
	return &HabitacionService{
		repo: repo,
	}
}

func (s *HabitacionService) GetAllRooms() ([]domain.Habitacion, error) {
	return s.repo.GetAllRooms()
}

func (s *HabitacionService) GetRoomByID(id uuid.UUID) (*domain.Habitacion, error) {
	habitacion, err := s.repo.GetRoomByID(id)
	if err != nil {
		return nil, fmt.Errorf("error al obtener habitación: %w", err)
	}
	if habitacion == nil {
		return nil, domain.NewNotFound("habitación", id)
	}
	return habitacion, nil
}
