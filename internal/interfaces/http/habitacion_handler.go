package http

import (
	"github.com/DoukeUCB/HotelManagement-sub000/internal/application"
	"github.com/DoukeUCB/HotelManagement-sub000/internal/domain"
	"github.com/gofiber/fiber/v2"
)

// HabitacionHandler expone las lecturas de habitaciones. Las escrituras de
// estado viven en el módulo de mantenimiento de habitaciones, fuera de este
// núcleo; aquí solo se consulta la ocupación resultante de las reservas.
type HabitacionHandler struct {
	service *application.HabitacionService
}

func NewHabitacionHandler(service *application.HabitacionService) *HabitacionHandler {
	return &HabitacionHandler{
		service: service,
	}
}

// GetAllRooms devuelve todas las habitaciones con su tipo resuelto
func (h *HabitacionHandler) GetAllRooms(c *fiber.Ctx) error {
	habitaciones, err := h.service.GetAllRooms()
	if err != nil {
		return responderError(c, err)
	}
	if habitaciones == nil {
		habitaciones = []domain.Habitacion{}
	}
	return c.JSON(habitaciones)
}

// GetRoomByID obtiene una habitación por su ID
func (h *HabitacionHandler) GetRoomByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return responderError(c, err)
	}

	habitacion, err := h.service.GetRoomByID(id)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(habitacion)
}
