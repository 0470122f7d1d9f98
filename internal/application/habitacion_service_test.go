package application

import (
	"testing"

	"github.com/DoukeUCB/HotelManagement-sub000/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHabitacionGetRoomByID(t *testing.T) {
	env := nuevoEntorno()
	habitacionID := env.agregarHabitacion("410", domain.HabitacionFree)

	habitacion, err := env.habitacionService.GetRoomByID(habitacionID)
	require.NoError(t, err)
	assert.Equal(t, "410", habitacion.Numero)
	assert.Equal(t, domain.HabitacionFree, habitacion.Estado)
}

func TestHabitacionGetRoomByIDInexistente(t *testing.T) {
	env := nuevoEntorno()

	_, err := env.habitacionService.GetRoomByID(uuid.New())

	var nfErr *domain.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "habitación", nfErr.Entidad)
}
