package http

import (
	"github.com/DoukeUCB/HotelManagement-sub000/internal/application"
	"github.com/DoukeUCB/HotelManagement-sub000/internal/domain"
	"github.com/gofiber/fiber/v2"
)

type ReservaHandler struct {
	service *application.ReservaService
}

// NewReservaHandler crea una nueva instancia del handler de reservas
func NewReservaHandler(service *application.ReservaService) *ReservaHandler {
	return &ReservaHandler{
		service: service,
	}
}

// CreateReservaRequest representa la petición para crear una cabecera
type CreateReservaRequest struct {
	ClienteID  string  `json:"customerId" validate:"required"`
	Estado     string  `json:"status"`
	MontoTotal float64 `json:"totalAmount" validate:"gte=0"`
}

// UpdateReservaRequest representa una actualización parcial de la cabecera.
// Los punteros distinguen "campo ausente" de "campo con valor cero": solo
// los campos presentes en el JSON se aplican.
type UpdateReservaRequest struct {
	ClienteID  *string  `json:"customerId"`
	Estado     *string  `json:"status"`
	MontoTotal *float64 `json:"totalAmount"`
}

// CreateReserva crea una nueva cabecera de reserva
func (h *ReservaHandler) CreateReserva(c *fiber.Ctx) error {
	var req CreateReservaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "formato de solicitud inválido",
		})
	}

	if err := validarDTO(&req); err != nil {
		return responderError(c, err)
	}

	valErr := &domain.ValidationError{}
	clienteID := parseUUIDCampo(req.ClienteID, "customerId", valErr)
	if !valErr.Vacio() {
		return responderError(c, valErr)
	}

	reserva, err := h.service.Create(clienteID, domain.EstadoReserva(req.Estado), req.MontoTotal)
	if err != nil {
		return responderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(reserva)
}

// GetReservas lista todas las cabeceras con el nombre del cliente resuelto
func (h *ReservaHandler) GetReservas(c *fiber.Ctx) error {
	reservas, err := h.service.GetAll()
	if err != nil {
		return responderError(c, err)
	}
	if reservas == nil {
		reservas = []domain.Reserva{}
	}
	return c.JSON(reservas)
}

// GetReservaByID obtiene una cabecera por su ID
func (h *ReservaHandler) GetReservaByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return responderError(c, err)
	}

	reserva, err := h.service.GetByID(id)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(reserva)
}

// UpdateReserva aplica una actualización parcial sobre una cabecera
func (h *ReservaHandler) UpdateReserva(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return responderError(c, err)
	}

	var req UpdateReservaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "formato de solicitud inválido",
		})
	}

	valErr := &domain.ValidationError{}
	var cambios domain.ReservaUpdate

	if req.ClienteID != nil {
		clienteID := parseUUIDCampo(*req.ClienteID, "customerId", valErr)
		cambios.ClienteID = &clienteID
	}
	if req.Estado != nil {
		estado := domain.EstadoReserva(*req.Estado)
		cambios.Estado = &estado
	}
	cambios.MontoTotal = req.MontoTotal

	if !valErr.Vacio() {
		return responderError(c, valErr)
	}

	reserva, err := h.service.Update(id, cambios)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(reserva)
}

// DeleteReserva elimina una cabecera y, en cascada, sus detalles
func (h *ReservaHandler) DeleteReserva(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return responderError(c, err)
	}

	if err := h.service.Delete(id); err != nil {
		return responderError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
