package http

import (
	"fmt"

	"github.com/DoukeUCB/HotelManagement-sub000/internal/application"
	"github.com/DoukeUCB/HotelManagement-sub000/internal/domain"
	"github.com/gofiber/fiber/v2"
)

type DetalleHandler struct {
	service     *application.DetalleService
	orquestador *application.OrquestadorService
}

// NewDetalleHandler crea una nueva instancia del handler de detalles
func NewDetalleHandler(service *application.DetalleService, orquestador *application.OrquestadorService) *DetalleHandler {
	return &DetalleHandler{
		service:     service,
		orquestador: orquestador,
	}
}

// CreateDetalleRequest representa la petición para crear un detalle
type CreateDetalleRequest struct {
	ReservaID    string `json:"reservationId" validate:"required"`
	HabitacionID string `json:"roomId" validate:"required"`
	PersonID     string `json:"guestId" validate:"required"`
	FechaEntrada string `json:"checkIn" validate:"required"`
	FechaSalida  string `json:"checkOut" validate:"required"`
}

// UpdateDetalleRequest representa una actualización parcial de un detalle.
// Solo los campos presentes en el JSON se aplican.
type UpdateDetalleRequest struct {
	HabitacionID *string `json:"roomId"`
	PersonID     *string `json:"guestId"`
	FechaEntrada *string `json:"checkIn"`
	FechaSalida  *string `json:"checkOut"`
}

// BulkDetalleRequest representa la corrida masiva: varias habitaciones,
// cada una con su rango de fechas y su lista de huéspedes.
type BulkDetalleRequest struct {
	ReservaID    string             `json:"reservationId" validate:"required"`
	Habitaciones []BulkEntradaRooms `json:"rooms" validate:"required,min=1,dive"`
}

// BulkEntradaRooms es una habitación dentro de la corrida masiva
type BulkEntradaRooms struct {
	HabitacionID string   `json:"roomId" validate:"required"`
	FechaEntrada string   `json:"checkIn" validate:"required"`
	FechaSalida  string   `json:"checkOut" validate:"required"`
	Huespedes    []string `json:"guestIds" validate:"required,min=1"`
}

// CreateDetalle crea un único detalle de reserva
func (h *DetalleHandler) CreateDetalle(c *fiber.Ctx) error {
	var req CreateDetalleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "formato de solicitud inválido",
		})
	}

	if err := validarDTO(&req); err != nil {
		return responderError(c, err)
	}

	valErr := &domain.ValidationError{}
	detalle := domain.ReservaDetalle{
		ReservaID:    parseUUIDCampo(req.ReservaID, "reservationId", valErr),
		HabitacionID: parseUUIDCampo(req.HabitacionID, "roomId", valErr),
		PersonID:     parseUUIDCampo(req.PersonID, "guestId", valErr),
		FechaEntrada: parseFechaCampo(req.FechaEntrada, "checkIn", valErr),
		FechaSalida:  parseFechaCampo(req.FechaSalida, "checkOut", valErr),
	}
	if !valErr.Vacio() {
		return responderError(c, valErr)
	}

	creado, err := h.service.Create(detalle)
	if err != nil {
		return responderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(creado)
}

// CreateDetallesBulk ejecuta la corrida de reserva masiva: todo o nada
func (h *DetalleHandler) CreateDetallesBulk(c *fiber.Ctx) error {
	var req BulkDetalleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "formato de solicitud inválido",
		})
	}

	if err := validarDTO(&req); err != nil {
		return responderError(c, err)
	}

	valErr := &domain.ValidationError{}
	reservaID := parseUUIDCampo(req.ReservaID, "reservationId", valErr)

	entradas := make([]application.EntradaHabitacion, len(req.Habitaciones))
	for i, hab := range req.Habitaciones {
		entrada := application.EntradaHabitacion{
			HabitacionID: parseUUIDCampo(hab.HabitacionID, fmt.Sprintf("rooms[%d].roomId", i), valErr),
			FechaEntrada: parseFechaCampo(hab.FechaEntrada, fmt.Sprintf("rooms[%d].checkIn", i), valErr),
			FechaSalida:  parseFechaCampo(hab.FechaSalida, fmt.Sprintf("rooms[%d].checkOut", i), valErr),
		}
		for j, huesped := range hab.Huespedes {
			entrada.Huespedes = append(entrada.Huespedes,
				parseUUIDCampo(huesped, fmt.Sprintf("rooms[%d].guestIds[%d]", i, j), valErr))
		}
		entradas[i] = entrada
	}

	if !valErr.Vacio() {
		return responderError(c, valErr)
	}

	detalles, err := h.orquestador.CrearDetallesBulk(reservaID, entradas)
	if err != nil {
		return responderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(detalles)
}

// UpdateDetalle aplica una actualización parcial sobre un detalle
func (h *DetalleHandler) UpdateDetalle(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return responderError(c, err)
	}

	var req UpdateDetalleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "formato de solicitud inválido",
		})
	}

	valErr := &domain.ValidationError{}
	var cambios domain.DetalleUpdate

	if req.HabitacionID != nil {
		habitacionID := parseUUIDCampo(*req.HabitacionID, "roomId", valErr)
		cambios.HabitacionID = &habitacionID
	}
	if req.PersonID != nil {
		personID := parseUUIDCampo(*req.PersonID, "guestId", valErr)
		cambios.PersonID = &personID
	}
	if req.FechaEntrada != nil {
		entrada := parseFechaCampo(*req.FechaEntrada, "checkIn", valErr)
		cambios.FechaEntrada = &entrada
	}
	if req.FechaSalida != nil {
		salida := parseFechaCampo(*req.FechaSalida, "checkOut", valErr)
		cambios.FechaSalida = &salida
	}

	if !valErr.Vacio() {
		return responderError(c, valErr)
	}

	detalle, err := h.service.Update(id, cambios)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(detalle)
}

// DeleteDetalle elimina un único detalle
func (h *DetalleHandler) DeleteDetalle(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return responderError(c, err)
	}

	if err := h.service.Delete(id); err != nil {
		return responderError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetDetallesByReserva devuelve el manifiesto completo de una cabecera
func (h *DetalleHandler) GetDetallesByReserva(c *fiber.Ctx) error {
	reservaID, err := parseUUIDParam(c, "reservationId")
	if err != nil {
		return responderError(c, err)
	}

	detalles, err := h.service.GetByReservaID(reservaID)
	if err != nil {
		return responderError(c, err)
	}
	if detalles == nil {
		detalles = []domain.ReservaDetalle{}
	}

	return c.JSON(detalles)
}
