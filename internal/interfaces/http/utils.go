package http

import (
	"errors"
	"fmt"
	"log"
	"reflect"
	"strings"
	"time"

	"github.com/DoukeUCB/HotelManagement-sub000/internal/application"
	"github.com/DoukeUCB/HotelManagement-sub000/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// validate revisa la forma de los DTOs de entrada antes de las reglas de
// negocio. Reporta los campos por su nombre JSON.
var validate = validator.New()

func init() {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// validarDTO convierte los errores del validador de structs en el
// ValidationError del dominio, agrupados por campo JSON.
func validarDTO(dto any) error {
	err := validate.Struct(dto)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	valErr := &domain.ValidationError{}
	for _, fe := range verrs {
		valErr.Agregar(fe.Field(), mensajeValidacion(fe))
	}
	return valErr
}

func mensajeValidacion(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "el campo es requerido"
	case "min":
		return fmt.Sprintf("debe tener al menos %s elementos", fe.Param())
	case "gte":
		return fmt.Sprintf("debe ser mayor o igual a %s", fe.Param())
	default:
		return fmt.Sprintf("no cumple la regla '%s'", fe.Tag())
	}
}

// parseUUIDParam lee un parámetro de ruta como UUID. Un formato inválido se
// rechaza con ErrIDInvalido antes de cualquier consulta.
func parseUUIDParam(c *fiber.Ctx, nombre string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(nombre))
	if err != nil {
		return uuid.Nil, fmt.Errorf("parámetro %s: %w", nombre, domain.ErrIDInvalido)
	}
	return id, nil
}

// parseUUIDCampo interpreta un valor de cuerpo como UUID, señalando el
// campo afectado en el error de validación acumulado.
func parseUUIDCampo(valor, campo string, valErr *domain.ValidationError) uuid.UUID {
	id, err := uuid.Parse(valor)
	if err != nil {
		valErr.Agregar(campo, "identificador con formato inválido")
		return uuid.Nil
	}
	return id
}

// parseFecha acepta fechas YYYY-MM-DD o RFC 3339 y las normaliza a la
// medianoche local del hotel cuando vienen sin hora.
func parseFecha(valor string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", valor, application.ZonaHotel()); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, valor)
	if err != nil {
		return time.Time{}, fmt.Errorf("formato de fecha inválido, use YYYY-MM-DD o RFC 3339")
	}
	return t, nil
}

// parseFechaCampo interpreta una fecha del cuerpo, señalando el campo
// afectado en el error de validación acumulado.
func parseFechaCampo(valor, campo string, valErr *domain.ValidationError) time.Time {
	t, err := parseFecha(valor)
	if err != nil {
		valErr.Agregar(campo, err.Error())
		return time.Time{}
	}
	return t
}

// responderError traduce los errores del dominio al código HTTP que el
// contrato fija: 400 para entradas malformadas y validaciones, 404 para
// referencias inexistentes, 409 para conflictos de estado.
func responderError(c *fiber.Ctx, err error) error {
	var valErr *domain.ValidationError
	var nfErr *domain.NotFoundError

	switch {
	case errors.Is(err, domain.ErrIDInvalido):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.As(err, &valErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "error de validación",
			"errors": valErr.PorCampo(),
		})
	case errors.As(err, &nfErr):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": nfErr.Error(),
		})
	case errors.Is(err, domain.ErrHabitacionNoDisponible), errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		log.Printf("error interno: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "error interno del servidor",
		})
	}
}
