package application

import (
	"testing"

	"github.com/DoukeUCB/HotelManagement-sub000/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservaCreateAsignaEstadoPorDefecto(t *testing.T) {
	env := nuevoEntorno()
	clienteID := env.agregarCliente()

	reserva, err := env.reservaService.Create(clienteID, "", 500)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, reserva.ID)
	assert.Equal(t, domain.ReservaPending, reserva.Estado)
	assert.Equal(t, 500.0, reserva.MontoTotal)
	assert.False(t, reserva.FechaCreacion.IsZero())
}

func TestReservaCreateEstadoInvalido(t *testing.T) {
	env := nuevoEntorno()
	clienteID := env.agregarCliente()

	_, err := env.reservaService.Create(clienteID, "Archived", 500)

	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.PorCampo(), "status")
}

func TestReservaCreateMontoNegativo(t *testing.T) {
	env := nuevoEntorno()
	clienteID := env.agregarCliente()

	_, err := env.reservaService.Create(clienteID, domain.ReservaPending, -10)

	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.PorCampo(), "totalAmount")
}

func TestReservaCreateClienteInexistente(t *testing.T) {
	env := nuevoEntorno()

	_, err := env.reservaService.Create(uuid.New(), domain.ReservaPending, 100)

	var nfErr *domain.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "cliente", nfErr.Entidad)
	assert.Empty(t, env.reservas.reservas)
}

func TestReservaGetByIDInexistente(t *testing.T) {
	env := nuevoEntorno()

	_, err := env.reservaService.GetByID(uuid.New())

	var nfErr *domain.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "reserva", nfErr.Entidad)
}

func TestReservaUpdateParcialSoloMonto(t *testing.T) {
	env := nuevoEntorno()
	clienteID := env.agregarCliente()
	reservaID := env.agregarReserva(clienteID, domain.ReservaPending)

	nuevoMonto := 720.50
	reserva, err := env.reservaService.Update(reservaID, domain.ReservaUpdate{
		MontoTotal: &nuevoMonto,
	})
	require.NoError(t, err)

	// Los campos no provistos se conservan
	assert.Equal(t, clienteID, reserva.ClienteID)
	assert.Equal(t, domain.ReservaPending, reserva.Estado)
	assert.Equal(t, 720.50, reserva.MontoTotal)
}

func TestReservaUpdateEstadoInvalido(t *testing.T) {
	env := nuevoEntorno()
	clienteID := env.agregarCliente()
	reservaID := env.agregarReserva(clienteID, domain.ReservaPending)

	estado := domain.EstadoReserva("Archived")
	_, err := env.reservaService.Update(reservaID, domain.ReservaUpdate{
		Estado: &estado,
	})

	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)

	// El registro persistido no cambió
	assert.Equal(t, domain.ReservaPending, env.reservas.reservas[reservaID].Estado)
}

func TestReservaUpdateClienteInexistente(t *testing.T) {
	env := nuevoEntorno()
	clienteID := env.agregarCliente()
	reservaID := env.agregarReserva(clienteID, domain.ReservaPending)

	otroCliente := uuid.New()
	_, err := env.reservaService.Update(reservaID, domain.ReservaUpdate{
		ClienteID: &otroCliente,
	})

	var nfErr *domain.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "cliente", nfErr.Entidad)
	assert.Equal(t, clienteID, env.reservas.reservas[reservaID].ClienteID)
}

func TestReservaUpdateConfirmarSinEmailConfigurado(t *testing.T) {
	// Sin cliente SMTP la transición a Confirmed no debe fallar
	env := nuevoEntorno()
	clienteID := env.agregarCliente()
	reservaID := env.agregarReserva(clienteID, domain.ReservaPending)

	estado := domain.ReservaConfirmed
	reserva, err := env.reservaService.Update(reservaID, domain.ReservaUpdate{
		Estado: &estado,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ReservaConfirmed, reserva.Estado)
}

func TestReservaDeleteInexistente(t *testing.T) {
	env := nuevoEntorno()

	err := env.reservaService.Delete(uuid.New())

	var nfErr *domain.NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestReservaDeleteEnCascadaConservaReferencias(t *testing.T) {
	env := nuevoEntorno()
	clienteID := env.agregarCliente()
	reservaID := env.agregarReserva(clienteID, domain.ReservaPending)

	hab1 := env.agregarHabitacion("201", domain.HabitacionFree)
	hab2 := env.agregarHabitacion("202", domain.HabitacionFree)
	maria := env.agregarPersona("María")
	carlos := env.agregarPersona("Carlos")

	entrada := hoyHotel().AddDate(0, 0, 1)
	salida := entrada.AddDate(0, 0, 2)

	creados, err := env.orquestadorService.CrearDetallesBulk(reservaID, []EntradaHabitacion{
		{HabitacionID: hab1, FechaEntrada: entrada, FechaSalida: salida, Huespedes: []uuid.UUID{maria}},
		{HabitacionID: hab2, FechaEntrada: entrada, FechaSalida: salida, Huespedes: []uuid.UUID{carlos}},
	})
	require.NoError(t, err)
	require.Len(t, creados, 2)

	require.NoError(t, env.reservaService.Delete(reservaID))

	// La cascada elimina todos los detalles de la cabecera
	assert.Empty(t, env.detalles.detalles)

	// Pero el cliente, las habitaciones y los huéspedes siguen existiendo
	existe, err := env.clientes.Exists(clienteID)
	require.NoError(t, err)
	assert.True(t, existe)

	for _, habID := range []uuid.UUID{hab1, hab2} {
		habitacion, err := env.habitacionService.GetRoomByID(habID)
		require.NoError(t, err)
		assert.NotNil(t, habitacion)
	}
	for _, personaID := range []uuid.UUID{maria, carlos} {
		existe, err := env.personas.Exists(personaID)
		require.NoError(t, err)
		assert.True(t, existe)
	}
}

func TestReservaDeleteNoTocaOtrasReservas(t *testing.T) {
	env := nuevoEntorno()
	clienteID := env.agregarCliente()
	reserva1 := env.agregarReserva(clienteID, domain.ReservaPending)
	reserva2 := env.agregarReserva(clienteID, domain.ReservaPending)

	hab1 := env.agregarHabitacion("201", domain.HabitacionFree)
	hab2 := env.agregarHabitacion("202", domain.HabitacionFree)
	maria := env.agregarPersona("María")

	entrada := hoyHotel().AddDate(0, 0, 1)
	salida := entrada.AddDate(0, 0, 2)

	_, err := env.orquestadorService.CrearDetallesBulk(reserva1, []EntradaHabitacion{
		{HabitacionID: hab1, FechaEntrada: entrada, FechaSalida: salida, Huespedes: []uuid.UUID{maria}},
	})
	require.NoError(t, err)
	_, err = env.orquestadorService.CrearDetallesBulk(reserva2, []EntradaHabitacion{
		{HabitacionID: hab2, FechaEntrada: entrada, FechaSalida: salida, Huespedes: []uuid.UUID{maria}},
	})
	require.NoError(t, err)

	require.NoError(t, env.reservaService.Delete(reserva1))

	// Solo caen los detalles de la cabecera eliminada
	restantes, err := env.detalleService.GetByReservaID(reserva2)
	require.NoError(t, err)
	assert.Len(t, restantes, 1)
}

func TestReservaDeleteEliminaCabecera(t *testing.T) {
	env := nuevoEntorno()
	clienteID := env.agregarCliente()
	reservaID := env.agregarReserva(clienteID, domain.ReservaPending)

	require.NoError(t, env.reservaService.Delete(reservaID))

	assert.NotContains(t, env.reservas.reservas, reservaID)

	var nfErr *domain.NotFoundError
	assert.ErrorAs(t, env.reservaService.Delete(reservaID), &nfErr)
}
